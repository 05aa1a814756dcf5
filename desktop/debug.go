package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"mothershipmayhem/game"
)

// debugOverlay prints loop timing and entity counts, toggled with F1
type debugOverlay struct {
	show bool
}

func (d *debugOverlay) draw(screen *ebiten.Image, g *game.Game) {
	if !d.show {
		return
	}
	ebitenutil.DebugPrintAt(screen, debugText(g, ebiten.ActualTPS(), ebiten.ActualFPS()), 10, screen.Bounds().Dy()-60)
}

func debugText(g *game.Game, tps, fps float64) string {
	ms := g.Mothership()
	return fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\nscreen: %s  tick: %d  level: %d\naliens: %d  shots: %d/%d  mothership: %v (%d hits)",
		tps, fps,
		g.Screen(), g.Ticks(), g.Level(),
		len(g.Aliens()), len(g.PlayerShots()), len(g.MothershipShots()),
		ms.Active, ms.Hits)
}
