package surfmanip

import (
	"errors"
	"image"
	"math/rand"
	"slices"
	"testing"

	"github.com/BeatGlow/surfmanip/pixel"
)

func testView(width, height, stride int) ([]pixel.Color, pixel.View) {
	pix := make([]pixel.Color, stride*height)
	return pix, pixel.ViewOf(pix, width, height, stride)
}

// testCheckRegion verifies pix holds c inside r and zero everywhere else, padding included.
func testCheckRegion(t *testing.T, pix []pixel.Color, v pixel.View, r image.Rectangle, c pixel.Color) {
	t.Helper()
	for i, value := range pix {
		var (
			x, y = i % v.Stride, i / v.Stride
			want pixel.Color
		)
		if (image.Point{X: x, Y: y}).In(r) && x < v.Width {
			want = c
		}
		if value != want {
			t.Fatalf("element %d (%d,%d) is %s, expected %s", i, x, y, value, want)
		}
	}
}

func TestWriteRegionScenario(t *testing.T) {
	pix, v := testView(4, 3, 6)
	WriteRegion(v, 0xff0000, 1, 1, 3, 3)

	want := []pixel.Color{
		0, 0, 0, 0, 0, 0,
		0, 0xff0000, 0xff0000, 0, 0, 0,
		0, 0xff0000, 0xff0000, 0, 0, 0,
	}
	if !slices.Equal(pix, want) {
		t.Fatalf("expected\n%v\ngot\n%v", want, pix)
	}
}

func TestWriteRegionFullSurface(t *testing.T) {
	const c = pixel.Color(0x00336699)
	pix, v := testView(720, 480, 720)
	WriteRegion(v, c, 0, 0, 720, 480)

	if len(pix) != 345600 {
		t.Fatalf("expected 345600 elements, got %d", len(pix))
	}
	for i, value := range pix {
		if value != c {
			t.Fatalf("element %d is %s, expected %s", i, value, c)
		}
	}
}

func TestWriteRegion(t *testing.T) {
	testCases := []struct {
		width, height, stride int
		region                image.Rectangle
	}{
		{1, 1, 1, image.Rect(0, 0, 1, 1)},
		{4, 3, 6, image.Rect(0, 0, 4, 3)},
		{4, 3, 6, image.Rect(3, 2, 4, 3)},
		{16, 9, 16, image.Rect(2, 3, 10, 4)},
		{16, 9, 32, image.Rect(0, 8, 16, 9)},
		{33, 17, 40, image.Rect(5, 5, 5, 10)},
	}
	for _, test := range testCases {
		name := test.region.String() + "/" + pixel.View{Width: test.width, Height: test.height, Stride: test.stride}.String()
		t.Run(name, func(it *testing.T) {
			pix, v := testView(test.width, test.height, test.stride)
			c := pixel.Color(rand.Uint32())
			WriteRect(v, c, test.region)
			testCheckRegion(it, pix, v, test.region, c)
		})
	}
}

func TestWriteRegionClamp(t *testing.T) {
	testCases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           image.Rectangle
	}{
		{"right", 2, 0, 10, 2, image.Rect(2, 0, 4, 2)},
		{"bottom", 0, 1, 2, 99, image.Rect(0, 1, 2, 3)},
		{"negative", -5, -5, 2, 2, image.Rect(0, 0, 2, 2)},
		{"everything", -10, -10, 10, 10, image.Rect(0, 0, 4, 3)},
		{"outside", 5, 0, 9, 3, image.Rectangle{}},
		{"inverted", 3, 2, 1, 1, image.Rectangle{}},
		{"empty", 2, 2, 2, 3, image.Rectangle{}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			pix, v := testView(4, 3, 6)
			if r := ClampRegion(v, test.x0, test.y0, test.x1, test.y1); !r.Eq(test.want) {
				it.Errorf("expected clamped region %s, got %s", test.want, r)
			}
			WriteRegion(v, 0xabcdef, test.x0, test.y0, test.x1, test.y1)
			testCheckRegion(it, pix, v, test.want, 0xabcdef)
		})
	}
}

func TestWriteRegionStride(t *testing.T) {
	pix, v := testView(3, 4, 5)
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			WriteRegion(v, pixel.Color(y<<8|x|0x10000), x, y, x+1, y+1)
		}
	}
	for i, value := range pix {
		x, y := i%v.Stride, i/v.Stride
		if x >= v.Width {
			if value != 0 {
				t.Fatalf("padding element %d (%d,%d) was written: %s", i, x, y, value)
			}
			continue
		}
		if want := pixel.Color(y<<8 | x | 0x10000); value != want {
			t.Fatalf("element %d (%d,%d) is %s, expected %s", i, x, y, value, want)
		}
	}
}

func TestWriteRegionRowOrder(t *testing.T) {
	const c = pixel.Color(0x123456)
	full, fv := testView(7, 5, 9)
	WriteRegion(fv, c, 1, 0, 6, 5)

	rows, rv := testView(7, 5, 9)
	for _, y := range []int{4, 0, 2, 3, 1} {
		WriteRegion(rv, c, 1, y, 6, y+1)
	}

	if !slices.Equal(full, rows) {
		t.Fatal("expected writing row by row to match writing the whole region")
	}
}

func TestWriteRegionIdempotent(t *testing.T) {
	once, ov := testView(8, 8, 10)
	twice, tv := testView(8, 8, 10)
	for i := range once {
		once[i] = pixel.Color(i)
		twice[i] = pixel.Color(i)
	}

	WriteRegion(ov, 0xff00ff, 2, 1, 7, 6)
	WriteRegion(tv, 0xff00ff, 2, 1, 7, 6)
	WriteRegion(tv, 0xff00ff, 2, 1, 7, 6)

	if !slices.Equal(once, twice) {
		t.Fatal("expected a second identical write to change nothing")
	}
}

func TestWriteRegionEmptyView(t *testing.T) {
	// Nothing to write, so the nil base is never touched.
	WriteRegion(pixel.View{}, 0xffffff, 0, 0, 10, 10)
	WriteRegion(pixel.NewView(nil, -1, -1, 0), 0xffffff, 0, 0, 10, 10)
}

func TestWriteRegionChecked(t *testing.T) {
	pix, v := testView(4, 3, 4)
	if err := WriteRegionChecked(v, 1, 0, 0, 4, 3); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	testCheckRegion(t, pix, v, v.Bounds(), 1)

	short := v
	short.Stride = 2
	if err := WriteRegionChecked(short, 2, 0, 0, 4, 3); !errors.Is(err, pixel.ErrStride) {
		t.Fatalf("expected %v, got %v", pixel.ErrStride, err)
	}
	testCheckRegion(t, pix, v, v.Bounds(), 1)

	if err := WriteRegionChecked(pixel.View{Width: 4, Height: 3, Stride: 4}, 2, 0, 0, 4, 3); !errors.Is(err, pixel.ErrNilBase) {
		t.Fatalf("expected %v, got %v", pixel.ErrNilBase, err)
	}
}

func TestFill(t *testing.T) {
	pix, v := testView(5, 4, 8)
	Fill(v, 0x7f7f7f)
	testCheckRegion(t, pix, v, v.Bounds(), 0x7f7f7f)
}

func TestCenteredSquare(t *testing.T) {
	testCases := []struct {
		width, height int
		want          image.Rectangle
	}{
		{720, 480, image.Rect(240, 120, 480, 360)},
		{480, 720, image.Rect(120, 240, 360, 480)},
		{4, 4, image.Rect(1, 1, 3, 3)},
		{3, 3, image.Rect(1, 1, 2, 2)},
		{2, 2, image.Rect(0, 0, 1, 1)},
		{1, 1, image.Rectangle{}},
		{0, 100, image.Rectangle{}},
	}
	for _, test := range testCases {
		t.Run(image.Pt(test.width, test.height).String(), func(it *testing.T) {
			if r := CenteredSquare(test.width, test.height); !r.Eq(test.want) {
				it.Errorf("expected %s, got %s", test.want, r)
			}
		})
	}
}

func TestFillCenteredSquare(t *testing.T) {
	pix, v := testView(720, 480, 736)
	FillCenteredSquare(v, 0xff0000)
	testCheckRegion(t, pix, v, image.Rect(240, 120, 480, 360), 0xff0000)
}

func BenchmarkWriteRegion(b *testing.B) {
	_, v := testView(720, 480, 720)
	b.SetBytes(int64(v.Width * v.Height * pixel.ElementSize))
	for i := 0; i < b.N; i++ {
		WriteRegion(v, pixel.Color(i), 0, 0, v.Width, v.Height)
	}
}
