//go:build darwin || freebsd || linux

package loader

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Open loads the library at path and binds its entry points.
func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}

	sym, err := purego.Dlsym(handle, SymbolWriteRegion)
	if err != nil {
		_ = purego.Dlclose(handle)
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	l := &Library{
		Path:  path,
		close: func() error { return purego.Dlclose(handle) },
	}
	purego.RegisterFunc(&l.writeRegion, sym)
	if sym, err = purego.Dlsym(handle, SymbolWriteRegionChecked); err == nil {
		purego.RegisterFunc(&l.writeRegionChecked, sym)
	}
	return l, nil
}
