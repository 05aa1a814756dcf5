package desktop

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mothershipmayhem/assets"
	"mothershipmayhem/game"
)

// Font sizes at the reference width of 1280
const (
	referenceWidth = 1280.0

	titleSize   = 100
	headingSize = 80
	promptSize  = 50
	bodySize    = 40
)

var (
	colorText    = color.White
	colorHeading = color.RGBA{0, 255, 255, 255}
	colorBanner  = color.RGBA{255, 255, 0, 255}
	colorBarBack = color.RGBA{100, 0, 0, 255}
	colorBarFill = color.RGBA{0, 255, 0, 255}
)

// Renderer draws sprites and screen text onto the frame ebiten hands to Draw
type Renderer struct {
	cfg     game.Config
	target  *ebiten.Image
	images  map[game.Sprite]*ebiten.Image
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	scale   float64
}

// NewRenderer uploads the sprite images and parses the fonts
func NewRenderer(cfg game.Config, imgs assets.Images) (*Renderer, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(assets.FontTTF()))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(assets.BoldFontTTF()))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	r := &Renderer{
		cfg:     cfg,
		images:  make(map[game.Sprite]*ebiten.Image, len(imgs)),
		regular: regular,
		bold:    bold,
		scale:   min(1, float64(cfg.ScreenWidth)/referenceWidth),
	}
	for sprite, img := range imgs {
		if img != nil {
			r.images[sprite] = ebiten.NewImageFromImage(img)
		}
	}
	return r, nil
}

// DrawSprite stretches the sprite's image over dst. Sprites without an image are skipped.
func (r *Renderer) DrawSprite(sprite game.Sprite, dst game.Rect) {
	img, ok := r.images[sprite]
	if !ok || r.target == nil || dst.Empty() {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(b.Dx()), float64(dst.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(img, op)
}

// DrawHUD draws the text for the current screen
func (r *Renderer) DrawHUD(hud game.HUD) {
	if r.target == nil {
		return
	}

	w := float64(r.cfg.ScreenWidth)
	h := float64(r.cfg.ScreenHeight)

	switch hud.Screen {
	case game.ScreenTitle:
		r.centered(game.TitleText, r.bold, titleSize, h/2-100, colorText)
		r.centered(game.StartPrompt, r.regular, promptSize, h/2, colorText)
		r.centered(game.InfoPrompt, r.regular, promptSize, h/2+100, colorText)

	case game.ScreenInstructions:
		r.centered(game.InstructionsTitle, r.bold, headingSize, 100, colorHeading)
		y := 200.0
		for _, line := range game.Instructions(r.cfg) {
			r.left(line, bodySize, 100, y)
			y += 50
		}
		r.left(game.InstructionsFooter, bodySize, 100, y+50)

	case game.ScreenWon, game.ScreenLost:
		r.centered(game.EndText(hud.Screen), r.regular, headingSize, h/2-50, colorBanner)
		r.centered(game.RestartPrompt, r.regular, promptSize, h/2+50, colorText)

	case game.ScreenPlaying:
		r.left(game.ScoreText(hud.Score), bodySize, 20, 50)
		r.right(fmt.Sprintf("Level %d", hud.Level), bodySize, w-20, 50)
		if hud.MothershipHitsToKill > 0 {
			r.healthBar(hud.MothershipHits, hud.MothershipHitsToKill)
		}
	}
}

// healthBar shows how much of the mothership is left above the playfield
func (r *Renderer) healthBar(hits, toKill int) {
	const barW, barH = 400.0, 14.0
	x := (float64(r.cfg.ScreenWidth) - barW) / 2
	y := 20.0
	left := 1 - float64(hits)/float64(toKill)

	vector.DrawFilledRect(r.target, float32(x), float32(y), barW, barH, colorBarBack, true)
	vector.DrawFilledRect(r.target, float32(x), float32(y), float32(barW*left), barH, colorBarFill, true)
}

func (r *Renderer) face(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: src, Size: size * r.scale}
}

// centered draws a line centered horizontally with its bottom at baseline
func (r *Renderer) centered(s string, src *text.GoTextFaceSource, size, baseline float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.cfg.ScreenWidth)/2, baseline)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	text.Draw(r.target, s, r.face(src, size), op)
}

func (r *Renderer) left(s string, size, x, baseline float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*r.scale, baseline)
	op.ColorScale.ScaleWithColor(colorText)
	op.SecondaryAlign = text.AlignEnd
	text.Draw(r.target, s, r.face(r.regular, size), op)
}

func (r *Renderer) right(s string, size, x, baseline float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, baseline)
	op.ColorScale.ScaleWithColor(colorText)
	op.PrimaryAlign = text.AlignEnd
	op.SecondaryAlign = text.AlignEnd
	text.Draw(r.target, s, r.face(r.regular, size), op)
}
