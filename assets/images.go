// Package assets locates and decodes the game's sprite images and fonts.
// Missing or unreadable files fall back to built-in vector art.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

// imageExtensions are tried in order when looking up a sprite file
var imageExtensions = []string{".png", ".gif", ".jpg", ".jpeg", ".webp", ".bmp"}

// Images maps each sprite to its decoded image. A sprite may be absent when
// neither the file nor the fallback could be produced.
type Images map[game.Sprite]image.Image

// LoadImages reads every sprite from dir/images, falling back to the embedded art.
// dir may be empty, in which case only the embedded art is used.
func LoadImages(dir string, cfg game.Config) Images {
	log := logger.Log.WithField("component", "assets")
	images := make(Images, len(game.Sprites))

	for _, sprite := range game.Sprites {
		if dir != "" {
			img, path, err := loadSpriteFile(filepath.Join(dir, "images"), sprite)
			if err == nil {
				log.WithFields(logrus.Fields{"sprite": sprite.String(), "path": path}).Debug("sprite loaded")
				images[sprite] = img
				continue
			}
			if !errors.Is(err, fs.ErrNotExist) {
				log.WithError(err).WithField("sprite", sprite.String()).Warn("sprite file unreadable, using built-in art")
			}
		}

		img, err := Builtin(sprite, cfg)
		if err != nil {
			log.WithError(err).WithField("sprite", sprite.String()).Error("sprite unavailable")
			continue
		}
		images[sprite] = img
	}

	return images
}

// loadSpriteFile decodes the first existing file for the sprite
func loadSpriteFile(dir string, sprite game.Sprite) (image.Image, string, error) {
	for _, ext := range imageExtensions {
		path := filepath.Join(dir, sprite.String()+ext)
		img, err := decodeFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return img, path, err
	}
	return nil, "", fmt.Errorf("sprite %s in %s: %w", sprite, dir, fs.ErrNotExist)
}

// decodeFile decodes an image file of any registered format
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
