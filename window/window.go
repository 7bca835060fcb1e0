// Package window shows a host surface in a desktop window.
package window

import (
	"errors"

	"github.com/BeatGlow/surfmanip"
)

// ErrNeedsCgo is returned by [Run] in builds without cgo.
var ErrNeedsCgo = errors.New("window: window mode requires cgo (build/run with CGO_ENABLED=1)")

// Config is the window configuration.
type Config struct {
	// Title of the window.
	Title string

	// Width and Height of the surface in pixels.
	Width, Height int

	// Scale is the initial window size as a multiple of the surface size.
	Scale int

	// TPS is the number of frames per second.
	TPS int
}

// DefaultConfig is a 720x480 window drawn ten times per second.
var DefaultConfig = Config{
	Title:  "surfmanip",
	Width:  720,
	Height: 480,
	Scale:  1,
	TPS:    int(1e9 / surfmanip.DefaultRunConfig.Interval),
}

func (c *Config) withDefaults() *Config {
	out := DefaultConfig
	if c == nil {
		return &out
	}
	out = *c
	if out.Title == "" {
		out.Title = DefaultConfig.Title
	}
	if out.Width <= 0 || out.Height <= 0 {
		out.Width, out.Height = DefaultConfig.Width, DefaultConfig.Height
	}
	if out.Scale <= 0 {
		out.Scale = 1
	}
	if out.TPS <= 0 {
		out.TPS = DefaultConfig.TPS
	}
	return &out
}
