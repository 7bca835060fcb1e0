//go:build !cgo

package window

import (
	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/pixel"
)

// Format of the window surface.
const Format = pixel.ABGR8888

// Run needs cgo.
func Run(_ *Config, _ surfmanip.FrameFunc) error {
	return ErrNeedsCgo
}
