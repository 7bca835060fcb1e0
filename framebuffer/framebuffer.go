// Package framebuffer provides the operating system's native framebuffer as a host
// surface.
//
// This requires framebuffer device support in the operating system. The device memory
// is mapped into the process, and locking the surface hands out a view straight onto
// that mapping, so writes land on screen without a copy.
//
// Only 32 bits per pixel packed formats are supported.
package framebuffer

import (
	"errors"

	"github.com/BeatGlow/surfmanip"
)

// Errors
var (
	ErrNotSupported      = errors.New("framebuffer: not supported")
	ErrUnsupportedFormat = errors.New("framebuffer: unsupported pixel format")
)

// DefaultDevice is the framebuffer opened by the demo host.
const DefaultDevice = "/dev/fb0"

// Device is an opened framebuffer.
type Device interface {
	surfmanip.Host

	// Close unmaps the pixel memory and closes the device.
	Close() error

	String() string
}
