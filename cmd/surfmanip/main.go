// Command surfmanip is the pixel writer built as a C shared library:
//
//	go build -buildmode=c-shared -o libsurfmanip.so ./cmd/surfmanip
//
// Hosts pass a pointer to pixel memory they own and keep owning; nothing is retained
// after a call returns.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/pixel"
)

func view(data unsafe.Pointer, width, height, stride C.int) pixel.View {
	return pixel.NewView(data, int(width), int(height), int(stride))
}

// write_region writes color to [x0,x1) x [y0,y1), clamped to the surface. Stride is in
// 32-bit pixel elements. The arguments are not validated.
//
//export write_region
func write_region(data unsafe.Pointer, width, height, stride C.int, color C.uint32_t, x0, y0, x1, y1 C.int) {
	surfmanip.WriteRegion(view(data, width, height, stride), pixel.Color(color), int(x0), int(y0), int(x1), int(y1))
}

// write_region_checked is write_region with validation. It returns 0 on success, -1
// for a NULL pointer, -2 for a non-positive size and -3 for a stride below the width.
//
//export write_region_checked
func write_region_checked(data unsafe.Pointer, width, height, stride C.int, color C.uint32_t, x0, y0, x1, y1 C.int) C.int32_t {
	return C.int32_t(writeRegionChecked(view(data, width, height, stride), pixel.Color(color), int(x0), int(y0), int(x1), int(y1)))
}

// fill_surface draws a square, half the smaller surface dimension, in the middle of a
// 32-bit ARGB surface with a stride in bytes. Bytes 1 to 3 of every pixel receive red,
// green and blue; byte 0 (alpha) is left as it is.
//
//export fill_surface
func fill_surface(data *C.uchar, width, height, strideBytes C.int, r, g, b C.uchar) {
	n := fillSurfaceLen(int(width), int(height), int(strideBytes))
	if n == 0 || data == nil {
		return
	}
	pix := unsafe.Slice((*byte)(unsafe.Pointer(data)), n)
	fillSurface(pix, int(width), int(height), int(strideBytes), byte(r), byte(g), byte(b))
}
