package pixel

import (
	"errors"
	"fmt"
	"image"
	"unsafe"
)

// ElementSize is the size of one pixel element in bytes.
const ElementSize = int(unsafe.Sizeof(Color(0)))

// Validation errors.
var (
	ErrNilBase    = errors.New("pixel: nil base address")
	ErrDimensions = errors.New("pixel: width and height must be positive")
	ErrStride     = errors.New("pixel: stride is smaller than width")
)

// View describes a rectangular grid of packed pixels in memory the view does not own.
//
// Pixel (x, y) lives at element Stride*y + x counted from Base. Stride is in pixel
// elements, not bytes, and may exceed Width when rows are padded.
//
// The caller must guarantee that Stride*Height*ElementSize bytes starting at Base are
// valid, writable and not touched by anyone else for as long as the view is in use.
// Nothing here can check that, because the view does not know the true size of the
// allocation; breaking it is undefined behavior, not an error.
type View struct {
	// Base is the address of pixel (0, 0).
	Base unsafe.Pointer

	// Width of the grid in pixels.
	Width int

	// Height of the grid in pixels.
	Height int

	// Stride is the number of elements between the starts of vertically adjacent rows.
	Stride int
}

// NewView returns a view over the memory at base. It never fails and never allocates.
func NewView(base unsafe.Pointer, width, height, stride int) View {
	return View{
		Base:   base,
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// ViewOf returns a view over pix, which the caller keeps owning. An empty pix gives a
// view with a nil Base.
func ViewOf(pix []Color, width, height, stride int) View {
	var base unsafe.Pointer
	if len(pix) > 0 {
		base = unsafe.Pointer(&pix[0])
	}
	return NewView(base, width, height, stride)
}

// Bounds is the view bounding box.
func (v View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// PixOffset returns the element offset of pixel (x, y).
func (v View) PixOffset(x, y int) int {
	return y*v.Stride + x
}

// Pix returns the Stride*Height elements starting at Base as a slice. The slice
// aliases the viewed memory and has the same lifetime.
func (v View) Pix() []Color {
	if v.Base == nil || v.Stride <= 0 || v.Height <= 0 {
		return nil
	}
	return unsafe.Slice((*Color)(v.Base), v.Stride*v.Height)
}

// Validate checks the invariants that can be checked without knowing the allocation.
func (v View) Validate() error {
	switch {
	case v.Base == nil:
		return ErrNilBase
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("%w (got %dx%d)", ErrDimensions, v.Width, v.Height)
	case v.Stride < v.Width:
		return fmt.Errorf("%w (stride %d, width %d)", ErrStride, v.Stride, v.Width)
	default:
		return nil
	}
}

func (v View) String() string {
	return fmt.Sprintf("%dx%d stride %d", v.Width, v.Height, v.Stride)
}
