package pixel

import (
	"image/color"
	"testing"
)

func TestFormatPack(t *testing.T) {
	tests := []struct {
		format  Format
		r, g, b uint8
		want    Color
	}{
		{XRGB8888, 0xff, 0x00, 0x00, 0x00ff0000},
		{XRGB8888, 0x12, 0x34, 0x56, 0x00123456},
		{ARGB8888, 0xff, 0x00, 0x00, 0xffff0000},
		{XBGR8888, 0xff, 0x00, 0x00, 0x000000ff},
		{XBGR8888, 0x12, 0x34, 0x56, 0x00563412},
		{ABGR8888, 0x12, 0x34, 0x56, 0xff563412},
		{FormatUnknown, 0x12, 0x34, 0x56, 0},
	}
	for _, test := range tests {
		t.Run(test.format.String(), func(it *testing.T) {
			if v := test.format.Pack(test.r, test.g, test.b); v != test.want {
				it.Errorf("expected %s, got %s", test.want, v)
			}
		})
	}
}

func TestFormatUnpack(t *testing.T) {
	for _, format := range []Format{XRGB8888, ARGB8888, XBGR8888, ABGR8888} {
		t.Run(format.String(), func(it *testing.T) {
			for _, c := range []color.RGBA{
				{R: 0xff, A: 0xff},
				{G: 0xff, A: 0xff},
				{B: 0xff, A: 0xff},
				{R: 0x12, G: 0x34, B: 0x56, A: 0xff},
			} {
				r, g, b, a := format.Unpack(format.Pack(c.R, c.G, c.B))
				if v := (color.RGBA{R: r, G: g, B: b, A: a}); v != c {
					it.Errorf("expected %#+v, got %#+v", c, v)
				}
			}
		})
	}
}

func TestFormatAlpha(t *testing.T) {
	if v := XRGB8888.PackRGBA(1, 2, 3, 0x80); v>>24 != 0 {
		t.Errorf("expected unused top byte to stay zero, got %s", v)
	}
	if v := ARGB8888.PackRGBA(1, 2, 3, 0x80); v>>24 != 0x80 {
		t.Errorf("expected alpha 0x80 in top byte, got %s", v)
	}
	if _, _, _, a := XBGR8888.Unpack(0); a != 0xff {
		t.Errorf("expected format without alpha to unpack opaque, got %#02x", a)
	}
}

func TestFormatModel(t *testing.T) {
	m := XRGB8888.Model()
	if m != XRGB8888.Model() {
		t.Error("expected the same model for the same format")
	}
	c := m.Convert(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	if v, ok := c.(color.RGBA); !ok || v != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("unexpected converted color %#+v", c)
	}
	if v := FormatUnknown.Model(); v != color.RGBAModel {
		t.Errorf("expected RGBA model for unknown format, got %T", v)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"ff0000", 0xff, 0x00, 0x00, true},
		{"0xFF0000", 0xff, 0x00, 0x00, true},
		{"#123456", 0x12, 0x34, 0x56, true},
		{"fff", 0, 0, 0, false},
		{"zzzzzz", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, test := range tests {
		t.Run(test.in, func(it *testing.T) {
			r, g, b, err := ParseHex(test.in)
			if (err == nil) != test.ok {
				it.Fatalf("expected ok=%t, got error %v", test.ok, err)
			}
			if r != test.r || g != test.g || b != test.b {
				it.Errorf("expected %02x%02x%02x, got %02x%02x%02x", test.r, test.g, test.b, r, g, b)
			}
		})
	}
}
