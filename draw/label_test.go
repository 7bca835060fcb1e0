package draw

import (
	"image"
	"image/color"
	"testing"
)

func TestLabel(t *testing.T) {
	i := image.NewRGBA(image.Rect(0, 0, 120, 40))
	if err := Label(i, image.Pt(2, 2), 16, "720x480", color.White); err != nil {
		t.Fatal(err)
	}

	var inked int
	for j := 0; j < len(i.Pix); j += 4 {
		if i.Pix[j] != 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Fatal("expected label to ink some pixels")
	}
}

func TestLabelSize(t *testing.T) {
	short, err := LabelSize(16, "ab")
	if err != nil {
		t.Fatal(err)
	}
	long, err := LabelSize(16, "abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if short.X <= 0 || long.X <= short.X {
		t.Errorf("expected width to grow with text, got %s and %s", short, long)
	}
	if short.Y != long.Y || short.Y <= 0 {
		t.Errorf("expected equal positive line heights, got %d and %d", short.Y, long.Y)
	}
}
