// Package terminal runs the game inside a text terminal using tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mothershipmayhem/game"
)

// glyph is how a sprite looks in a cell
type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[game.Sprite]glyph{
	game.SpriteJet:            {'A', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)},
	game.SpriteAlien:          {'W', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	game.SpriteMothership:     {'#', tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorMaroon)},
	game.SpritePlayerShot:     {'|', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
	game.SpriteMothershipShot: {'!', tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)},
	game.SpriteHeart:          {'♥', tcell.StyleDefault.Foreground(tcell.ColorRed)},
}

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHeading = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Canvas renders the game's pixel playfield onto a grid of terminal cells
type Canvas struct {
	screen tcell.Screen
	cfg    game.Config
}

// NewCanvas draws onto screen, scaling the configured playfield to its size
func NewCanvas(screen tcell.Screen, cfg game.Config) *Canvas {
	return &Canvas{screen: screen, cfg: cfg}
}

// cellRect maps a pixel rectangle to a half-open cell range. Non-empty
// rectangles always cover at least one cell.
func (c *Canvas) cellRect(r game.Rect) (x0, y0, x1, y1 int) {
	cols, rows := c.screen.Size()
	x0 = r.X * cols / c.cfg.ScreenWidth
	y0 = r.Y * rows / c.cfg.ScreenHeight
	x1 = ceilDiv(r.Right()*cols, c.cfg.ScreenWidth)
	y1 = ceilDiv(r.Bottom()*rows, c.cfg.ScreenHeight)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return max(x0, 0), max(y0, 0), min(x1, cols), min(y1, rows)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

func (c *Canvas) DrawSprite(sprite game.Sprite, dst game.Rect) {
	if sprite == game.SpriteBackground {
		c.screen.Clear()
		return
	}
	g, ok := glyphs[sprite]
	if !ok || dst.Empty() {
		return
	}

	x0, y0, x1, y1 := c.cellRect(dst)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetContent(x, y, g.r, nil, g.style)
		}
	}
}

func (c *Canvas) DrawHUD(hud game.HUD) {
	_, rows := c.screen.Size()
	mid := rows / 2

	switch hud.Screen {
	case game.ScreenTitle:
		c.centered(mid-2, game.TitleText, styleHeading)
		c.centered(mid, game.StartPrompt, styleText)
		c.centered(mid+2, game.InfoPrompt, styleText)

	case game.ScreenInstructions:
		c.centered(1, game.InstructionsTitle, styleHeading)
		row := 3
		for _, line := range game.Instructions(c.cfg) {
			c.text(2, row, line, styleText)
			row++
		}
		c.text(2, row+1, game.InstructionsFooter, styleText)

	case game.ScreenWon, game.ScreenLost:
		c.centered(mid-1, game.EndText(hud.Screen), styleBanner)
		c.centered(mid+1, game.RestartPrompt, styleText)

	case game.ScreenPlaying:
		status := fmt.Sprintf("%s  Level %d", game.ScoreText(hud.Score), hud.Level)
		if hud.MothershipHitsToKill > 0 {
			status += fmt.Sprintf("  Mothership %d/%d", hud.MothershipHits, hud.MothershipHitsToKill)
		}
		c.text(0, 0, status, styleText)
	}
}

func (c *Canvas) centered(row int, s string, style tcell.Style) {
	cols, _ := c.screen.Size()
	c.text((cols-len([]rune(s)))/2, row, s, style)
}

// text writes s starting at col, clipped to the screen
func (c *Canvas) text(col, row int, s string, style tcell.Style) {
	cols, rows := c.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, r := range s {
		if col >= cols {
			return
		}
		if col >= 0 {
			c.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}
