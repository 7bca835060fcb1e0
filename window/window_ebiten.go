//go:build cgo

package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/pixel"
)

// Format of the window surface: ebiten takes RGBA bytes, which is ABGR8888 read as
// little-endian words.
const Format = pixel.ABGR8888

// Run opens a window and calls frame with the locked surface every tick until the
// window is closed or Q or Escape is pressed. It blocks.
func Run(config *Config, frame surfmanip.FrameFunc) error {
	config = config.withDefaults()

	s, err := surfmanip.NewMemorySurface(config.Width, config.Height, 0, Format)
	if err != nil {
		return err
	}

	g := &game{s: s, frame: frame}
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowSize(config.Width*config.Scale, config.Height*config.Scale)
	ebiten.SetTPS(config.TPS)

	surfmanip.Logger().Info("window opened", "surface", s.String(), "tps", config.TPS)
	if err = ebiten.RunGame(g); err != nil {
		return err
	}
	return g.err
}

type game struct {
	s      *surfmanip.MemorySurface
	frame  surfmanip.FrameFunc
	events []surfmanip.Event
	keys   []ebiten.Key
	err    error
}

var keyMap = map[ebiten.Key]surfmanip.Key{
	ebiten.KeyEscape: surfmanip.KeyEscape,
	ebiten.KeyQ:      surfmanip.KeyQ,
}

func (g *game) Update() error {
	if g.err != nil {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, key := range g.keys {
		if k, ok := keyMap[key]; ok {
			g.s.Push(surfmanip.Event{Type: surfmanip.EventKeyDown, Key: k})
		}
	}
	g.events = g.s.Poll(g.events[:0])
	for _, event := range g.events {
		if event.IsQuit() {
			surfmanip.Logger().Info("window closed", "key", event.Key)
			return ebiten.Termination
		}
	}

	if err := surfmanip.WithLock(g.s, func(v pixel.View) error {
		return g.frame(v, g.s.Format())
	}); err != nil {
		g.err = fmt.Errorf("window: %w", err)
		return ebiten.Termination
	}
	return nil
}

// Draw flips the surface onto the screen.
func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.s.Bytes())
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.s.Width(), g.s.Height()
}
