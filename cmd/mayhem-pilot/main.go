package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
	"mothershipmayhem/pilot"
)

func main() {
	defaults := game.DefaultConfig()
	scriptPath := flag.String("script", "", "pilot script defining decide(ctx); built-in pilot if empty")
	maxTicks := flag.Uint64("ticks", 100000, "stop after this many ticks")
	seed := flag.Int64("seed", 1, "random seed for mothership fire (0 = time based)")
	width := flag.Int("width", defaults.ScreenWidth, "playfield width in pixels")
	height := flag.Int("height", defaults.ScreenHeight, "playfield height in pixels")
	flag.Parse()

	logger.Init()
	log := logger.Log.WithField("component", "main")

	name, code := "default.js", pilot.DefaultScript
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.WithError(err).Fatal("failed to read script")
		}
		name, code = *scriptPath, string(data)
	}

	runner, err := pilot.NewRunner(name, code)
	if err != nil {
		log.WithError(err).WithField("script", name).Fatal("failed to load script")
	}

	config := defaults
	config.ScreenWidth, config.ScreenHeight = *width, *height

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	g, err := game.NewGame(config, nil, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.WithError(err).Fatal("failed to create game")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	start := time.Now()
	res, err := pilot.New(runner).Run(ctx, g, *maxTicks)
	stop()

	log.WithFields(logrus.Fields{
		"screen":  res.Screen,
		"score":   res.Score,
		"level":   res.Level,
		"hearts":  res.Hearts,
		"ticks":   res.Ticks,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("run finished")
	if err != nil {
		log.WithError(err).Error("run interrupted")
	}

	fmt.Println(res)
	if res.Screen != game.ScreenWon {
		os.Exit(1)
	}
}
