package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"mothershipmayhem/game"
)

//go:embed sprites/*.svg
var spriteFS embed.FS

// builtinSVG returns the embedded vector art for a sprite
func builtinSVG(sprite game.Sprite) ([]byte, error) {
	return spriteFS.ReadFile("sprites/" + sprite.String() + ".svg")
}

// svgToImage rasterizes SVG data into an RGBA image of the given size
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %dx%d", width, height)
	}

	// Parse SVG
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	// Set the target size
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	return img, nil
}

// Builtin rasterizes the embedded fallback art for a sprite at its natural draw size
func Builtin(sprite game.Sprite, cfg game.Config) (image.Image, error) {
	data, err := builtinSVG(sprite)
	if err != nil {
		return nil, fmt.Errorf("builtin %s: %w", sprite, err)
	}
	w, h := NativeSize(sprite, cfg)
	img, err := svgToImage(data, w, h)
	if err != nil {
		return nil, fmt.Errorf("builtin %s: %w", sprite, err)
	}
	return img, nil
}

// NativeSize returns the size a sprite is drawn at on the playfield
func NativeSize(sprite game.Sprite, cfg game.Config) (int, int) {
	switch sprite {
	case game.SpriteBackground:
		return cfg.ScreenWidth, cfg.ScreenHeight
	case game.SpriteJet:
		return cfg.JetWidth, cfg.JetHeight
	case game.SpriteAlien:
		return cfg.AlienWidth, cfg.AlienHeight
	case game.SpriteMothership:
		return cfg.MothershipWidth, cfg.MothershipHeight
	case game.SpritePlayerShot, game.SpriteMothershipShot:
		return cfg.ShotWidth, cfg.ShotHeight
	case game.SpriteHeart:
		return 40, 40
	default:
		return 1, 1
	}
}
