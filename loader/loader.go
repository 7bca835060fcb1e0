// Package loader finds and binds the shared library build of the pixel writer.
//
// The library is located by the platform naming convention (libname.so, libname.dylib,
// name.dll). A missing library is reported as a [*NotFoundError], which hosts can
// show to the user instead of crashing.
package loader

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/pixel"
)

// Exported symbol names.
const (
	SymbolWriteRegion        = "write_region"
	SymbolWriteRegionChecked = "write_region_checked"
)

// ErrNotFound matches every [*NotFoundError].
var ErrNotFound = errors.New("loader: shared library not found")

// NotFoundError lists where a library was looked for.
type NotFoundError struct {
	Name  string
	Paths []string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("loader: could not find shared library %s (searched %s)", err.Name, strings.Join(err.Paths, ", "))
}

func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LibraryName returns the file name of library name on goos.
func LibraryName(name, goos string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// Find returns the path of the first dirs entry holding library name. Without dirs,
// the directory of the executable and the working directory are searched.
func Find(name string, dirs ...string) (string, error) {
	if len(dirs) == 0 {
		if exe, err := os.Executable(); err == nil {
			dirs = append(dirs, filepath.Dir(exe))
		}
		dirs = append(dirs, ".")
	}

	var (
		file  = LibraryName(name, runtime.GOOS)
		paths = make([]string, 0, len(dirs))
	)
	for _, dir := range dirs {
		path := filepath.Join(dir, file)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
		paths = append(paths, path)
	}
	return "", &NotFoundError{Name: name, Paths: paths}
}

type (
	writeRegionFunc        func(data unsafe.Pointer, width, height, stride int32, color uint32, x0, y0, x1, y1 int32)
	writeRegionCheckedFunc func(data unsafe.Pointer, width, height, stride int32, color uint32, x0, y0, x1, y1 int32) int32
)

// Library is a loaded writer library.
type Library struct {
	// Path the library was loaded from.
	Path string

	writeRegion        writeRegionFunc
	writeRegionChecked writeRegionCheckedFunc
	close              func() error
}

// Load finds library name in dirs and opens it.
func Load(name string, dirs ...string) (*Library, error) {
	path, err := Find(name, dirs...)
	if err != nil {
		return nil, err
	}
	return Open(path)
}

func (l *Library) String() string {
	return "library " + l.Path
}

// WriteRegion calls the library's write_region. It has the signature of
// [surfmanip.WriteFunc].
//
// The library takes 32-bit C ints. Region bounds outside that range are saturated,
// which clamps to the same pixels; the view dimensions must fit, use
// [Library.WriteRegionChecked] when they might not.
func (l *Library) WriteRegion(v pixel.View, c pixel.Color, x0, y0, x1, y1 int) {
	l.writeRegion(v.Base, int32(v.Width), int32(v.Height), int32(v.Stride), uint32(c),
		saturate(x0), saturate(y0), saturate(x1), saturate(y1))
}

// WriteRegionChecked calls the library's write_region_checked. View dimensions that
// do not fit a 32-bit C int are rejected with [pixel.ErrDimensions] before the call.
func (l *Library) WriteRegionChecked(v pixel.View, c pixel.Color, x0, y0, x1, y1 int) error {
	if l.writeRegionChecked == nil {
		return fmt.Errorf("loader: %s does not export %s", l.Path, SymbolWriteRegionChecked)
	}
	if !fits(v.Width) || !fits(v.Height) || !fits(v.Stride) {
		return fmt.Errorf("loader: view %s exceeds the library's 32-bit range: %w", v, pixel.ErrDimensions)
	}
	return surfmanip.Status(l.writeRegionChecked(v.Base, int32(v.Width), int32(v.Height), int32(v.Stride), uint32(c),
		saturate(x0), saturate(y0), saturate(x1), saturate(y1))).Err()
}

func fits(n int) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

func saturate(n int) int32 {
	return int32(max(math.MinInt32, min(n, math.MaxInt32)))
}

// Close unloads the library. Functions obtained from it must not be called afterwards.
func (l *Library) Close() error {
	if l.close == nil {
		return nil
	}
	return l.close()
}

var _ surfmanip.WriteFunc = (*Library)(nil).WriteRegion
