package surfmanip

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/BeatGlow/surfmanip/pixel"
)

// MemorySurface is a host surface backed by Go memory.
type MemorySurface struct {
	mu     sync.Mutex
	locked bool
	format pixel.Format
	width  int
	height int
	stride int
	pix    []pixel.Color
	events []Event
}

// NewMemorySurface allocates a zeroed width x height surface. Stride is in pixel
// elements; a stride of zero means no row padding.
func NewMemorySurface(width, height, stride int, format pixel.Format) (*MemorySurface, error) {
	if stride == 0 {
		stride = width
	}
	switch {
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("surfmanip: invalid memory surface %dx%d: %w", width, height, pixel.ErrDimensions)
	case stride < width:
		return nil, fmt.Errorf("surfmanip: invalid memory surface stride %d: %w", stride, pixel.ErrStride)
	}
	return &MemorySurface{
		format: format,
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]pixel.Color, stride*height),
	}, nil
}

func (s *MemorySurface) String() string {
	return fmt.Sprintf("memory %dx%d stride %d %s", s.width, s.height, s.stride, s.format)
}

func (s *MemorySurface) Width() int           { return s.width }
func (s *MemorySurface) Height() int          { return s.height }
func (s *MemorySurface) Stride() int          { return s.stride }
func (s *MemorySurface) Format() pixel.Format { return s.format }

// Pix returns the backing elements, padding included.
func (s *MemorySurface) Pix() []pixel.Color { return s.pix }

// Bytes returns the backing memory as bytes in native byte order.
func (s *MemorySurface) Bytes() []byte {
	if len(s.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.pix[0])), len(s.pix)*pixel.ElementSize)
}

// Lock the surface.
func (s *MemorySurface) Lock() (pixel.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return pixel.View{}, ErrLocked
	}
	s.locked = true
	return pixel.ViewOf(s.pix, s.width, s.height, s.stride), nil
}

// Unlock the surface.
func (s *MemorySurface) Unlock() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.locked {
		return ErrNotLocked
	}
	s.locked = false
	return nil
}

// Locked reports if the surface is currently locked.
func (s *MemorySurface) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Flip is a no-op for memory surfaces.
func (s *MemorySurface) Flip() error {
	return nil
}

// Push queues events for the next Poll.
func (s *MemorySurface) Push(events ...Event) {
	s.mu.Lock()
	s.events = append(s.events, events...)
	s.mu.Unlock()
}

// Poll drains the queued events.
func (s *MemorySurface) Poll(dst []Event) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	dst = append(dst, s.events...)
	s.events = s.events[:0]
	return dst
}

// Interface checks.
var _ Host = (*MemorySurface)(nil)
