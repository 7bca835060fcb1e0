package draw

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

func regularFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		if regular, regularErr = truetype.Parse(goregular.TTF); regularErr != nil {
			regularErr = fmt.Errorf("draw: parse font: %w", regularErr)
		}
	})
	return regular, regularErr
}

func labelFace(size float64) (font.Face, error) {
	f, err := regularFont()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Label draws text in the Go Regular font at size points with its top left corner at pt.
// Glyph edges are anti-aliased onto dst, so this is for host overlays, not for
// surfaces that must hold exact packed values.
func Label(dst Image, pt image.Point, size float64, text string, c color.Color) error {
	face, err := labelFace(size)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(pt.X), Y: fixed.I(pt.Y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
	return nil
}

// LabelSize returns the size in pixels of text drawn by [Label].
func LabelSize(size float64, text string) (image.Point, error) {
	face, err := labelFace(size)
	if err != nil {
		return image.Point{}, err
	}
	defer face.Close()

	m := face.Metrics()
	return image.Pt(font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil()), nil
}
