package assets

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontTTF returns the TrueType data of the HUD font
func FontTTF() []byte {
	return goregular.TTF
}

// BoldFontTTF returns the TrueType data used for headings
func BoldFontTTF() []byte {
	return gobold.TTF
}
