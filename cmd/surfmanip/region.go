package main

import (
	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/pixel"
)

func main() {}

func writeRegionChecked(v pixel.View, c pixel.Color, x0, y0, x1, y1 int) int32 {
	return int32(surfmanip.StatusOf(surfmanip.WriteRegionChecked(v, c, x0, y0, x1, y1)))
}

// fillSurfaceLen is the number of bytes fillSurface touches, up to the end of the
// square's last pixel. Zero means there is nothing to draw.
func fillSurfaceLen(width, height, strideBytes int) int {
	square := surfmanip.CenteredSquare(width, height)
	if square.Empty() || strideBytes < width*pixel.ElementSize {
		return 0
	}
	return (square.Max.Y-1)*strideBytes + square.Max.X*pixel.ElementSize
}

// fillSurface writes r, g and b into bytes 1 to 3 of every pixel of the centered
// square in pix. Byte 0 of each pixel is not touched.
func fillSurface(pix []byte, width, height, strideBytes int, r, g, b byte) {
	n := fillSurfaceLen(width, height, strideBytes)
	if n == 0 || len(pix) < n {
		return
	}

	var (
		square = surfmanip.CenteredSquare(width, height)
		rgb    = [3]byte{r, g, b}
	)
	for y := square.Min.Y; y < square.Max.Y; y++ {
		row := pix[y*strideBytes+square.Min.X*pixel.ElementSize : y*strideBytes+square.Max.X*pixel.ElementSize]
		for i := 0; i < len(row); i += pixel.ElementSize {
			copy(row[i+1:i+4], rgb[:])
		}
	}
}
