package render

import (
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Point sizes of the three typography roles.
const (
	titleSize  = 48
	bigSize    = 42
	mediumSize = 24
)

// fontSet holds the three faces used on the canvas: the wordmark/footer
// title face, the metric value face and the muted label face.
type fontSet struct {
	title  font.Face
	big    font.Face
	medium font.Face
}

// loadFonts resolves the bold/regular pair. It first tries the configured
// paths, then the bare file names (cwd lookup), and finally falls back to
// the built-in basicfont for every role. Rendering must proceed with
// degraded typography rather than fail, so this never returns an error.
func loadFonts(boldPath, regularPath string) fontSet {
	if fs, ok := tryLoad(boldPath, regularPath); ok {
		return fs
	}
	if fs, ok := tryLoad(filepath.Base(boldPath), filepath.Base(regularPath)); ok {
		return fs
	}
	face := basicfont.Face7x13
	return fontSet{title: face, big: face, medium: face}
}

func tryLoad(boldPath, regularPath string) (fontSet, bool) {
	title, err := gg.LoadFontFace(boldPath, titleSize)
	if err != nil {
		return fontSet{}, false
	}
	big, err := gg.LoadFontFace(boldPath, bigSize)
	if err != nil {
		return fontSet{}, false
	}
	medium, err := gg.LoadFontFace(regularPath, mediumSize)
	if err != nil {
		return fontSet{}, false
	}
	return fontSet{title: title, big: big, medium: medium}, true
}
