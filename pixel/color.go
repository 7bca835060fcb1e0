package pixel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed pixel value. It is written to memory exactly as given, so its
// layout must match the Format of the surface it is written to.
type Color uint32

func (c Color) String() string {
	return fmt.Sprintf("%#08x", uint32(c))
}

// Format is the packed 32-bit layout of a surface, most significant byte first.
type Format uint8

// Supported formats.
const (
	FormatUnknown Format = iota
	XRGB8888             // 0x00RRGGBB, top byte unused
	ARGB8888             // 0xAARRGGBB, premultiplied alpha
	XBGR8888             // 0x00BBGGRR, top byte unused
	ABGR8888             // 0xAABBGGRR, premultiplied alpha; RGBA byte order in little-endian memory
)

func (f Format) String() string {
	switch f {
	case XRGB8888:
		return "XRGB8888"
	case ARGB8888:
		return "ARGB8888"
	case XBGR8888:
		return "XBGR8888"
	case ABGR8888:
		return "ABGR8888"
	default:
		return "unknown"
	}
}

// HasAlpha reports whether the top byte carries alpha.
func (f Format) HasAlpha() bool {
	return f == ARGB8888 || f == ABGR8888
}

// Pack an opaque color.
func (f Format) Pack(r, g, b uint8) Color {
	return f.PackRGBA(r, g, b, 0xff)
}

// PackRGBA packs a color with alpha. Formats without alpha leave the top byte zero.
func (f Format) PackRGBA(r, g, b, a uint8) Color {
	var v uint32
	switch f {
	case XRGB8888, ARGB8888:
		v = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	case XBGR8888, ABGR8888:
		v = uint32(b)<<16 | uint32(g)<<8 | uint32(r)
	}
	if f.HasAlpha() {
		v |= uint32(a) << 24
	}
	return Color(v)
}

// Unpack returns the channels of c. Formats without alpha always report 0xff.
func (f Format) Unpack(c Color) (r, g, b, a uint8) {
	var (
		hi  = uint8(c >> 16)
		mid = uint8(c >> 8)
		lo  = uint8(c)
	)
	switch f {
	case XRGB8888, ARGB8888:
		r, g, b = hi, mid, lo
	case XBGR8888, ABGR8888:
		r, g, b = lo, mid, hi
	}
	a = 0xff
	if f.HasAlpha() {
		a = uint8(c >> 24)
	}
	return
}

// Convert packs any color.Color into f.
func (f Format) Convert(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return f.PackRGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// Models for the supported formats, indexed by Format.
var models = [...]color.Model{
	XRGB8888: formatModel(XRGB8888),
	ARGB8888: formatModel(ARGB8888),
	XBGR8888: formatModel(XBGR8888),
	ABGR8888: formatModel(ABGR8888),
}

// Model returns a color model that rounds colors through f.
func (f Format) Model() color.Model {
	if int(f) < len(models) && models[f] != nil {
		return models[f]
	}
	return color.RGBAModel
}

func formatModel(f Format) color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		r, g, b, a := f.Unpack(f.Convert(c))
		return color.RGBA{R: r, G: g, B: b, A: a}
	})
}

// ParseHex parses an RRGGBB hex triplet, optionally prefixed with "#" or "0x".
func ParseHex(s string) (r, g, b uint8, err error) {
	v := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(v) != 6 {
		return 0, 0, 0, fmt.Errorf("pixel: invalid color %q, expected RRGGBB", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("pixel: invalid color %q: %w", s, err)
	}
	return uint8(n >> 16), uint8(n >> 8), uint8(n), nil
}
