package pilot

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

// Result summarizes a finished or interrupted run
type Result struct {
	Screen game.Screen
	Score  int
	Level  int
	Hearts int
	Ticks  uint64
}

func (r Result) String() string {
	return fmt.Sprintf("%s after %d ticks: score %d, level %d, hearts %d", r.Screen, r.Ticks, r.Score, r.Level, r.Hearts)
}

// Pilot feeds a runner's decisions into a game
type Pilot struct {
	runner *Runner
	log    *logrus.Entry
}

// New wraps a runner
func New(runner *Runner) *Pilot {
	return &Pilot{
		runner: runner,
		log:    logger.Log.WithField("component", "pilot"),
	}
}

// Step asks the script for one decision and applies it
func (p *Pilot) Step(g *game.Game) error {
	d, err := p.runner.Decide(BuildContext(g))
	if err != nil {
		return fmt.Errorf("tick %d: %w", g.Ticks(), err)
	}
	for _, a := range d.Actions() {
		g.HandleAction(a)
	}
	return nil
}

// Run starts play and alternates decisions and ticks until the game ends,
// maxTicks ticks have passed or ctx is cancelled.
func (p *Pilot) Run(ctx context.Context, g *game.Game, maxTicks uint64) (Result, error) {
	if g.Screen() == game.ScreenTitle {
		g.HandleAction(game.ActionConfirm)
	}

	lastLevel := g.Level()
	for !g.Screen().Finished() && g.Ticks() < maxTicks {
		if err := ctx.Err(); err != nil {
			return result(g), err
		}
		if err := p.Step(g); err != nil {
			return result(g), err
		}
		g.Tick()

		if g.Level() != lastLevel {
			lastLevel = g.Level()
			p.log.WithFields(logrus.Fields{
				"level": lastLevel,
				"score": g.Score(),
				"tick":  g.Ticks(),
			}).Debug("pilot reached level")
		}
	}

	return result(g), nil
}

func result(g *game.Game) Result {
	return Result{
		Screen: g.Screen(),
		Score:  g.Score(),
		Level:  g.Level(),
		Hearts: g.Hearts(),
		Ticks:  g.Ticks(),
	}
}
