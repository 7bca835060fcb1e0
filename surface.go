package surfmanip

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/surfmanip/pixel"
)

// Surface errors.
var (
	ErrLocked    = errors.New("surfmanip: surface already locked")
	ErrNotLocked = errors.New("surfmanip: surface not locked")
)

// Surface is a lockable grid of pixels owned by a host.
type Surface interface {
	// Format of the packed pixels. Colors written to the surface must use it.
	Format() pixel.Format

	// Lock grants exclusive access to the pixel memory. The returned view is valid
	// until Unlock.
	Lock() (pixel.View, error)

	// Unlock releases the lock. Views obtained from Lock must not be used afterwards.
	Unlock() error
}

// Host is a surface together with the host duties around it.
type Host interface {
	Surface

	// Flip presents the surface. It is only called while the surface is unlocked.
	Flip() error

	// Poll appends pending input events to dst and returns it. It never blocks.
	Poll(dst []Event) []Event
}

// Key identifies a key in an input event.
type Key uint8

// Keys the hosts report.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyQ:
		return "q"
	default:
		return "unknown"
	}
}

// EventType is the kind of input event.
type EventType uint8

// Event types.
const (
	EventKeyDown EventType = iota + 1
	EventQuit
)

// Event is a host input event.
type Event struct {
	Type EventType
	Key  Key
}

// IsQuit reports if the event asks the host to stop.
func (e Event) IsQuit() bool {
	switch e.Type {
	case EventQuit:
		return true
	case EventKeyDown:
		return e.Key == KeyEscape || e.Key == KeyQ
	default:
		return false
	}
}

// WithLock locks s, calls fn with the locked view and unlocks s again, also when fn
// fails or panics. An unlock error is joined to the error returned by fn.
func WithLock(s Surface, fn func(pixel.View) error) (err error) {
	v, err := s.Lock()
	if err != nil {
		return fmt.Errorf("surfmanip: lock failed: %w", err)
	}
	defer func() {
		if uerr := s.Unlock(); uerr != nil {
			err = errors.Join(err, fmt.Errorf("surfmanip: unlock failed: %w", uerr))
		}
	}()
	return fn(v)
}
