package surfmanip

import (
	"context"
	"fmt"
	"time"

	"github.com/BeatGlow/surfmanip/pixel"
)

// FrameFunc draws one frame into a locked view of a surface with format f.
type FrameFunc func(v pixel.View, f pixel.Format) error

// RunConfig is the host loop configuration.
type RunConfig struct {
	// Interval between frames.
	Interval time.Duration

	// Frames stops the loop after this many frames, 0 runs until a quit event.
	Frames uint64
}

// DefaultRunConfig are the default loop settings.
var DefaultRunConfig = RunConfig{
	Interval: 100 * time.Millisecond,
}

// Run drives h until a quit event arrives, the frame limit is reached or ctx is done.
//
// Every frame the surface is locked, drawn by frame and unlocked again before it is
// flipped; input is polled after the flip. Escape, Q and quit events end the loop
// with a nil error.
func Run(ctx context.Context, h Host, frame FrameFunc, config *RunConfig) error {
	if config == nil {
		config = new(RunConfig)
		*config = DefaultRunConfig
	}

	var (
		log    = Logger()
		format = h.Format()
		events []Event
		ticker *time.Ticker
	)
	if config.Interval > 0 {
		ticker = time.NewTicker(config.Interval)
		defer ticker.Stop()
	}

	log.Info("host loop started", "format", format, "interval", config.Interval)
	for n := uint64(1); ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := WithLock(h, func(v pixel.View) error {
			return frame(v, format)
		}); err != nil {
			return fmt.Errorf("surfmanip: frame %d: %w", n, err)
		}
		if err := h.Flip(); err != nil {
			return fmt.Errorf("surfmanip: flip %d: %w", n, err)
		}
		log.Debug("frame", "n", n)

		events = h.Poll(events[:0])
		for _, event := range events {
			if event.IsQuit() {
				log.Info("host loop stopped", "key", event.Key, "frames", n)
				return nil
			}
		}

		if config.Frames > 0 && n >= config.Frames {
			log.Info("host loop finished", "frames", n)
			return nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
}
