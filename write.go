package surfmanip

import (
	"image"
	"unsafe"

	"github.com/BeatGlow/surfmanip/pixel"
)

// WriteFunc writes c to the region [x0,x1) x [y0,y1) of v. [WriteRegion] is one, the
// entry point of a loaded shared library is another.
type WriteFunc func(v pixel.View, c pixel.Color, x0, y0, x1, y1 int)

// WriteRegion writes c to every pixel in [x0,x1) x [y0,y1) of v.
//
// The region is clamped to the view bounds first, so a region that is partly or
// entirely outside the view writes only what is inside, and an inverted region
// writes nothing. Pixel (x, y) is element y*v.Stride + x; row padding past v.Width is
// never touched. The color is stored as-is.
//
// WriteRegion does not validate v. A nil or dangling Base, a Stride smaller than
// Width or dimensions larger than the real allocation are undefined behavior; use
// [WriteRegionChecked] when the view comes from an untrusted source.
func WriteRegion(v pixel.View, c pixel.Color, x0, y0, x1, y1 int) {
	r := ClampRegion(v, x0, y0, x1, y1)
	if r.Empty() {
		return
	}

	var (
		stride = v.Stride
		pix    = unsafe.Slice((*pixel.Color)(v.Base), (r.Max.Y-1)*stride+r.Max.X)
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := pix[y*stride+r.Min.X : y*stride+r.Max.X]
		for i := range row {
			row[i] = c
		}
	}
}

// WriteRegionChecked validates v and then calls [WriteRegion]. Nothing is written
// when validation fails.
func WriteRegionChecked(v pixel.View, c pixel.Color, x0, y0, x1, y1 int) error {
	if err := v.Validate(); err != nil {
		return err
	}
	WriteRegion(v, c, x0, y0, x1, y1)
	return nil
}

// WriteRect is [WriteRegion] with the region given as a rectangle.
func WriteRect(v pixel.View, c pixel.Color, r image.Rectangle) {
	WriteRegion(v, c, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Fill writes c to every pixel of v.
func Fill(v pixel.View, c pixel.Color) {
	WriteRegion(v, c, 0, 0, v.Width, v.Height)
}

// ClampRegion returns the part of [x0,x1) x [y0,y1) that lies inside v. The result is
// the zero rectangle if nothing does.
func ClampRegion(v pixel.View, x0, y0, x1, y1 int) image.Rectangle {
	x0, x1 = clamp(x0, 0, v.Width), clamp(x1, 0, v.Width)
	y0, y1 = clamp(y0, 0, v.Height), clamp(y1, 0, v.Height)
	if x0 >= x1 || y0 >= y1 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x1, y1)
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(n, lo), hi)
}

// CenteredSquare returns a square with sides half the smaller surface dimension,
// centered on a width x height surface. It is empty when the square has no area or
// would reach the last row or column.
func CenteredSquare(width, height int) image.Rectangle {
	side := min(width, height) / 2
	if side <= 0 {
		return image.Rectangle{}
	}

	var (
		row = (height - side) / 2
		col = (width - side) / 2
	)
	if row < 0 || col < 0 || row+side >= height || col+side >= width {
		return image.Rectangle{}
	}
	return image.Rect(col, row, col+side, row+side)
}

// FillCenteredSquare writes c to the [CenteredSquare] of v.
func FillCenteredSquare(v pixel.View, c pixel.Color) {
	WriteRect(v, c, CenteredSquare(v.Width, v.Height))
}
