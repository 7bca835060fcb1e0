package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/draw"
	"github.com/BeatGlow/surfmanip/pixel"
)

const labelSize = 12

type frameConfig struct {
	write   surfmanip.WriteFunc
	r, g, b uint8
	full    bool
	label   bool
}

// newFrame returns the frame drawn every tick: a cleared surface with the square
// written through the configured writer, and optionally an outline and a label.
func newFrame(config frameConfig) surfmanip.FrameFunc {
	if config.write == nil {
		config.write = surfmanip.WriteRegion
	}
	return func(v pixel.View, f pixel.Format) error {
		surfmanip.Fill(v, f.Pack(0, 0, 0))

		r := surfmanip.CenteredSquare(v.Width, v.Height)
		if config.full {
			r = v.Bounds()
		}
		config.write(v, f.Pack(config.r, config.g, config.b), r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)

		if !config.label {
			return nil
		}
		img := surfmanip.NewImage(v, f)
		draw.Rectangle(img, v.Bounds(), color.White)
		return draw.Label(img, image.Pt(4, 2), labelSize, fmt.Sprintf("%dx%d %s", v.Width, v.Height, f), color.White)
	}
}
