package loader

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"unsafe"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/pixel"
)

func TestLibraryName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "surfmanip.dll"},
		{"linux", "libsurfmanip.so"},
		{"freebsd", "libsurfmanip.so"},
		{"darwin", "libsurfmanip.dylib"},
	}
	for _, test := range tests {
		t.Run(test.goos, func(it *testing.T) {
			if v := LibraryName("surfmanip", test.goos); v != test.want {
				it.Errorf("expected %q, got %q", test.want, v)
			}
		})
	}
}

func TestFind(t *testing.T) {
	var (
		empty = t.TempDir()
		full  = t.TempDir()
		path  = filepath.Join(full, LibraryName("surfmanip", runtime.GOOS))
	)
	if err := os.WriteFile(path, []byte("not really a library"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Find("surfmanip", empty, full)
	if err != nil {
		t.Fatal(err)
	}
	if found != path {
		t.Errorf("expected %q, got %q", path, found)
	}
}

func TestFindNotFound(t *testing.T) {
	dir := t.TempDir()
	// A directory with the library name is not a library.
	if err := os.Mkdir(filepath.Join(dir, LibraryName("surfmanip", runtime.GOOS)), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Find("surfmanip", dir)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected %v, got %v", ErrNotFound, err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.Name != "surfmanip" || len(nf.Paths) != 1 || !strings.HasPrefix(nf.Paths[0], dir) {
		t.Errorf("unexpected error details %+v", nf)
	}

	if _, err = Load("surfmanip", dir); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected Load to report %v, got %v", ErrNotFound, err)
	}
}

func TestLibraryCalls(t *testing.T) {
	// A library bound to the in-process writer, as Open would bind the exported one.
	l := &Library{
		Path: "test",
		writeRegion: func(data unsafe.Pointer, width, height, stride int32, color uint32, x0, y0, x1, y1 int32) {
			surfmanip.WriteRegion(pixel.NewView(data, int(width), int(height), int(stride)), pixel.Color(color),
				int(x0), int(y0), int(x1), int(y1))
		},
	}

	pix := make([]pixel.Color, 6*3)
	v := pixel.ViewOf(pix, 4, 3, 6)
	l.WriteRegion(v, 0xff0000, 1, 1, 3, 3)
	if pix[7] != 0xff0000 || pix[6] != 0 || pix[9] != 0 {
		t.Errorf("unexpected pixels %v", pix)
	}

	if err := l.WriteRegionChecked(v, 1, 0, 0, 1, 1); err == nil {
		t.Error("expected error without a checked entry point")
	}
	if err := l.Close(); err != nil {
		t.Errorf("expected no error closing, got %v", err)
	}
}

func TestLibraryRange(t *testing.T) {
	var (
		calls  int
		bounds [4]int32
	)
	l := &Library{
		Path: "test",
		writeRegion: func(_ unsafe.Pointer, _, _, _ int32, _ uint32, x0, y0, x1, y1 int32) {
			bounds = [4]int32{x0, y0, x1, y1}
		},
		writeRegionChecked: func(_ unsafe.Pointer, _, _, _ int32, _ uint32, _, _, _, _ int32) int32 {
			calls++
			return 0
		},
	}

	pix := make([]pixel.Color, 4)
	v := pixel.ViewOf(pix, 2, 2, 2)

	t.Run("bounds", func(it *testing.T) {
		if strconv.IntSize < 64 {
			it.Skip("int is 32 bits")
		}
		var big int64 = math.MaxInt32 + 10
		l.WriteRegion(v, 1, -int(big), 0, int(big), 1)
		if want := [4]int32{math.MinInt32, 0, math.MaxInt32, 1}; bounds != want {
			it.Errorf("expected saturated bounds %v, got %v", want, bounds)
		}
		if err := l.WriteRegionChecked(v, 1, 0, int(big), 2, 2); err != nil || calls != 1 {
			it.Errorf("expected out of range bounds to reach the library, got %v after %d calls", err, calls)
		}
	})

	t.Run("dimensions", func(it *testing.T) {
		if strconv.IntSize < 64 {
			it.Skip("int is 32 bits")
		}
		calls = 0
		var big int64 = math.MaxInt32 + 1
		for _, view := range []pixel.View{
			{Base: v.Base, Width: int(big), Height: 2, Stride: int(big)},
			{Base: v.Base, Width: 2, Height: int(big), Stride: 2},
			{Base: v.Base, Width: 2, Height: 2, Stride: int(big)},
		} {
			if err := l.WriteRegionChecked(view, 1, 0, 0, 1, 1); !errors.Is(err, pixel.ErrDimensions) {
				it.Errorf("%s: expected %v, got %v", view, pixel.ErrDimensions, err)
			}
		}
		if calls != 0 {
			it.Errorf("expected no library calls, got %d", calls)
		}
	})
}
