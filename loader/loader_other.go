//go:build !darwin && !freebsd && !linux && !windows

package loader

import "errors"

// Open is not supported on this platform.
func Open(path string) (*Library, error) {
	return nil, errors.New("loader: loading " + path + " is not supported on this platform")
}
