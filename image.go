package surfmanip

import (
	"image"
	"image/color"

	"github.com/BeatGlow/surfmanip/pixel"
)

// Image adapts a locked view to [image/draw.Image], so the standard library and the
// draw package can paint on it. It is only valid while the view is.
type Image struct {
	View   pixel.View
	Format pixel.Format
}

// NewImage returns an image over v with pixels in format f.
func NewImage(v pixel.View, f pixel.Format) *Image {
	return &Image{View: v, Format: f}
}

func (p *Image) Bounds() image.Rectangle {
	return p.View.Bounds()
}

func (p *Image) ColorModel() color.Model {
	return p.Format.Model()
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.View.Bounds()) {
		return color.Transparent
	}
	r, g, b, a := p.Format.Unpack(p.View.Pix()[p.View.PixOffset(x, y)])
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.View.Bounds()) {
		return
	}
	p.View.Pix()[p.View.PixOffset(x, y)] = p.Format.Convert(c)
}

// FillRect fills r, clamped to the image bounds, with c.
func (p *Image) FillRect(r image.Rectangle, c color.Color) {
	WriteRect(p.View, p.Format.Convert(c), r)
}

// Fill the image with a single color.
func (p *Image) Fill(c color.Color) {
	Fill(p.View, p.Format.Convert(c))
}

// Clear the image to zero.
func (p *Image) Clear() {
	Fill(p.View, 0)
}
