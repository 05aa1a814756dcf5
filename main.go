package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"mothershipmayhem/assets"
	"mothershipmayhem/desktop"
	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

func main() {
	defaults := game.DefaultConfig()
	width := flag.Int("width", defaults.ScreenWidth, "playfield width in pixels (0 = monitor width)")
	height := flag.Int("height", defaults.ScreenHeight, "playfield height in pixels (0 = monitor height)")
	fullscreen := flag.Bool("fullscreen", true, "start in fullscreen mode")
	assetsDir := flag.String("assets", "assets", "directory holding images/ and sounds/")
	seed := flag.Int64("seed", 0, "random seed for mothership fire (0 = time based)")
	mute := flag.Bool("mute", false, "disable all audio")
	flag.Parse()

	logger.Init()
	log := logger.Log.WithField("component", "main")

	config := defaults
	config.ScreenWidth, config.ScreenHeight = *width, *height
	if config.ScreenWidth == 0 || config.ScreenHeight == 0 {
		mw, mh := ebiten.Monitor().Size()
		if config.ScreenWidth == 0 {
			config.ScreenWidth = mw
		}
		if config.ScreenHeight == 0 {
			config.ScreenHeight = mh
		}
	}

	var sink game.AudioSink = game.NopAudio{}
	if !*mute {
		a, err := desktop.NewAudio(*assetsDir)
		if err != nil {
			log.WithError(err).Warn("audio disabled")
		} else {
			sink = a
		}
	}

	g, err := game.NewGame(config, sink, newRand(*seed))
	if err != nil {
		log.WithError(err).Fatal("failed to create game")
	}

	renderer, err := desktop.NewRenderer(config, assets.LoadImages(*assetsDir, config))
	if err != nil {
		log.WithError(err).Fatal("failed to create renderer")
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Mothership Mayhem")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(config.TickRate)

	log.WithField("width", config.ScreenWidth).WithField("height", config.ScreenHeight).Info("starting")
	if err := ebiten.RunGame(desktop.NewApp(g, renderer)); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
}

// newRand returns a seeded source, or a time seeded one for seed 0
func newRand(seed int64) game.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
