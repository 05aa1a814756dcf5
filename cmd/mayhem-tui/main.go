package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
	"mothershipmayhem/sound"
	"mothershipmayhem/terminal"
)

func main() {
	assetsDir := flag.String("assets", "assets", "directory holding sounds/")
	seed := flag.Int64("seed", 0, "random seed for mothership fire (0 = time based)")
	mute := flag.Bool("mute", false, "disable all audio")
	flag.Parse()

	logger.Init()
	log := logger.Log.WithField("component", "main")

	var sink game.AudioSink = game.NopAudio{}
	if !*mute {
		bank, err := sound.LoadBank(*assetsDir)
		if err != nil {
			log.WithError(err).Warn("audio disabled")
		} else if speaker, err := sound.NewSpeakerSink(bank); err != nil {
			log.WithError(err).Warn("audio disabled")
		} else {
			sink = speaker
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	g, err := game.NewGame(game.DefaultConfig(), sink, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.WithError(err).Fatal("failed to create game")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("failed to initialize screen")
	}
	// the screen owns the terminal from here on
	logger.Silence()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := terminal.NewLoop(screen, g).Run(ctx)
	stop()
	screen.Fini()
	sink.StopAll()

	if runErr != nil && ctx.Err() == nil {
		logger.Init()
		log.WithError(runErr).Fatal("terminal loop failed")
	}
}
