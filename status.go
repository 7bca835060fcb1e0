package surfmanip

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/surfmanip/pixel"
)

// Status is the integer result of a checked write across the shared library boundary.
type Status int32

// Status codes.
const (
	StatusOK         Status = 0
	StatusNilBase    Status = -1
	StatusDimensions Status = -2
	StatusStride     Status = -3
)

// StatusOf maps an error from [WriteRegionChecked] to its status code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, pixel.ErrNilBase):
		return StatusNilBase
	case errors.Is(err, pixel.ErrDimensions):
		return StatusDimensions
	default:
		return StatusStride
	}
}

// Err returns the error for s, nil for [StatusOK].
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusNilBase:
		return pixel.ErrNilBase
	case StatusDimensions:
		return pixel.ErrDimensions
	case StatusStride:
		return pixel.ErrStride
	default:
		return fmt.Errorf("surfmanip: unknown status %d", int32(s))
	}
}
