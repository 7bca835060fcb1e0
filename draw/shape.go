package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both included.
func Line(dst Image, a, b image.Point, c color.Color) {
	switch {
	case a.Y == b.Y:
		if a.X > b.X {
			a, b = b, a
		}
		fillRect(dst, image.Rect(a.X, a.Y, b.X+1, a.Y+1), c)
	case a.X == b.X:
		if a.Y > b.Y {
			a, b = b, a
		}
		fillRect(dst, image.Rect(a.X, a.Y, a.X+1, b.Y+1), c)
	default:
		bresenham(dst, a, b, c)
	}
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w > 0 {
		fillRect(dst, image.Rect(x, y, x+w, y+1), c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h > 0 {
		fillRect(dst, image.Rect(x, y, x+1, y+h), c)
	}
}

// Rectangle draws the one pixel wide outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	fillRect(dst, rect.Canon(), c)
}

func fillRect(dst Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	if f, ok := dst.(RectFiller); ok {
		f.FillRect(r, c)
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// bresenham plots the integer line from a to b in any octant.
func bresenham(dst Image, a, b image.Point, c color.Color) {
	var (
		dx, sx = abs(b.X-a.X), sign(b.X-a.X)
		dy, sy = -abs(b.Y-a.Y), sign(b.Y-a.Y)
		e      = dx + dy
	)
	for {
		dst.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
