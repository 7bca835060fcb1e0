package loader

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Open loads the library at path and binds its entry points.
func Open(path string) (*Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}

	proc, err := dll.FindProc(SymbolWriteRegion)
	if err != nil {
		_ = dll.Release()
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	l := &Library{
		Path:  path,
		close: dll.Release,
		writeRegion: func(data unsafe.Pointer, width, height, stride int32, color uint32, x0, y0, x1, y1 int32) {
			_, _, _ = proc.Call(uintptr(data), uintptr(width), uintptr(height), uintptr(stride), uintptr(color),
				uintptr(x0), uintptr(y0), uintptr(x1), uintptr(y1))
		},
	}
	if checked, err := dll.FindProc(SymbolWriteRegionChecked); err == nil {
		l.writeRegionChecked = func(data unsafe.Pointer, width, height, stride int32, color uint32, x0, y0, x1, y1 int32) int32 {
			r, _, _ := checked.Call(uintptr(data), uintptr(width), uintptr(height), uintptr(stride), uintptr(color),
				uintptr(x0), uintptr(y0), uintptr(x1), uintptr(y1))
			return int32(r)
		}
	}
	return l, nil
}
