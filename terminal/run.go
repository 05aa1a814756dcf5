package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

// Loop drives a game from terminal input and a fixed-rate ticker
type Loop struct {
	screen tcell.Screen
	game   *game.Game
	canvas *Canvas
	debug  bool
}

// NewLoop prepares a loop on an initialized screen
func NewLoop(screen tcell.Screen, g *game.Game) *Loop {
	return &Loop{
		screen: screen,
		game:   g,
		canvas: NewCanvas(screen, g.Config()),
	}
}

// Run processes input and ticks until the player exits or ctx is done.
// Input is applied strictly between ticks.
func (l *Loop) Run(ctx context.Context) error {
	log := logger.Log.WithField("component", "terminal")

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(l.game.Config().TickRate))
	defer tick.Stop()

	l.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				l.screen.Sync()
			case *tcell.EventKey:
				if isDebugToggle(e) {
					l.debug = !l.debug
					continue
				}
				l.game.HandleAction(ActionForKey(e))
				if l.game.Quit() {
					log.Info("exit requested")
					return nil
				}
			}

		case <-tick.C:
			l.game.Tick()
			l.draw()
		}
	}
}

func (l *Loop) draw() {
	l.game.Render(l.canvas)
	if l.debug {
		_, rows := l.screen.Size()
		l.canvas.text(0, rows-1, debugLine(l.game), styleText)
	}
	l.screen.Show()
}

func debugLine(g *game.Game) string {
	return fmt.Sprintf("tick %d  aliens %d  shots %d/%d",
		g.Ticks(), len(g.Aliens()), len(g.PlayerShots()), len(g.MothershipShots()))
}
