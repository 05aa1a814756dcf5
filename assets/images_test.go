package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

func init() {
	logger.Silence()
}

func TestBuiltinSpritesRasterize(t *testing.T) {
	cfg := game.DefaultConfig()

	for _, sprite := range game.Sprites {
		t.Run(sprite.String(), func(t *testing.T) {
			img, err := Builtin(sprite, cfg)
			require.NoError(t, err)

			w, h := NativeSize(sprite, cfg)
			assert.Equal(t, w, img.Bounds().Dx())
			assert.Equal(t, h, img.Bounds().Dy())

			_, _, _, a := img.At(w/2, h/2).RGBA()
			assert.NotZero(t, a, "center pixel should be painted")
		})
	}
}

func TestSvgToImageRejectsBadInput(t *testing.T) {
	_, err := svgToImage([]byte("<svg"), 10, 10)
	assert.Error(t, err)

	data, err := builtinSVG(game.SpriteHeart)
	require.NoError(t, err)
	_, err = svgToImage(data, 0, 10)
	assert.Error(t, err)
}

func TestLoadImagesWithoutDirectoryUsesBuiltins(t *testing.T) {
	images := LoadImages("", game.DefaultConfig())

	for _, sprite := range game.Sprites {
		assert.NotNil(t, images[sprite], sprite.String())
	}
}

func TestLoadImagesPrefersFiles(t *testing.T) {
	dir := t.TempDir()
	imgDir := filepath.Join(dir, "images")
	require.NoError(t, os.MkdirAll(imgDir, 0o755))

	// a real jet image
	jet := image.NewRGBA(image.Rect(0, 0, 7, 9))
	jet.Set(3, 4, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(imgDir, "jet.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, jet))
	require.NoError(t, f.Close())

	// an unreadable alien image
	require.NoError(t, os.WriteFile(filepath.Join(imgDir, "alien.png"), []byte("not a png"), 0o644))

	cfg := game.DefaultConfig()
	images := LoadImages(dir, cfg)

	require.NotNil(t, images[game.SpriteJet])
	assert.Equal(t, 7, images[game.SpriteJet].Bounds().Dx())

	require.NotNil(t, images[game.SpriteAlien])
	assert.Equal(t, cfg.AlienWidth, images[game.SpriteAlien].Bounds().Dx(), "corrupt file falls back to built-in art")
}

func TestFontTTF(t *testing.T) {
	assert.NotEmpty(t, FontTTF())
	assert.NotEmpty(t, BoldFontTTF())
	assert.NotEqual(t, FontTTF(), BoldFontTTF())
}
