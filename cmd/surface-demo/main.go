package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/framebuffer"
	"github.com/BeatGlow/surfmanip/loader"
	"github.com/BeatGlow/surfmanip/panel"
	"github.com/BeatGlow/surfmanip/pixel"
	"github.com/BeatGlow/surfmanip/window"
)

// writerLibrary is the part of [loader.Library] the demo uses.
type writerLibrary interface {
	String() string
	WriteRegion(v pixel.View, c pixel.Color, x0, y0, x1, y1 int)
	Close() error
}

// loadLibrary is replaced in tests.
var loadLibrary = func(name string, dirs ...string) (writerLibrary, error) {
	lib, err := loader.Load(name, dirs...)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fatal(err)
	}
}

// run parses args and drives the chosen backend. Resources are released before it
// returns, so callers can exit on the error.
func run(args []string) (err error) {
	flags := flag.NewFlagSet("surface-demo", flag.ContinueOnError)
	backendFlag := flags.String("backend", "window", "host backend (window, fbdev, st7789, headless)")
	fbFlag := flags.String("fb", framebuffer.DefaultDevice, "framebuffer device")
	widthFlag := flags.Int("width", window.DefaultConfig.Width, "surface width")
	heightFlag := flags.Int("height", window.DefaultConfig.Height, "surface height")
	colorFlag := flags.String("color", "0xff0000", "square color (0xRRGGBB)")
	fullFlag := flags.Bool("full", false, "write the whole surface instead of the centered square")
	libFlag := flags.String("lib", "", "writer shared library name (empty: in-process writer)")
	libDirFlag := flags.String("lib-dir", "", "directory to search for the writer library")
	framesFlag := flags.Uint64("frames", 0, "stop after this many frames (0: run until quit)")
	intervalFlag := flags.Duration("interval", surfmanip.DefaultRunConfig.Interval, "frame interval")
	labelFlag := flags.Bool("label", false, "outline the surface and label it")
	verboseFlag := flags.Bool("v", false, "verbose logging")
	spiBusFlag := flags.Int("spi-bus", panel.DefaultSPIConfig.Bus, "SPI bus (st7789)")
	spiDeviceFlag := flags.Int("spi-dev", panel.DefaultSPIConfig.Device, "SPI device (st7789)")
	spiSpeedFlag := flags.Uint("spi-speed", uint(panel.DefaultSPIConfig.SpeedHz), "SPI speed in Hz (st7789)")
	resetFlag := flags.String("reset", "GPIO25", "reset GPIO pin (st7789)")
	dcFlag := flags.String("dc", "GPIO24", "data/command GPIO pin (st7789)")
	ceFlag := flags.String("ce", "", "chip enable GPIO pin (st7789)")
	rotateFlag := flags.String("rotate", "0", "panel rotation (0, 90, 180, 270)")
	if err = flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	surfmanip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	r, g, b, err := pixel.ParseHex(*colorFlag)
	if err != nil {
		return err
	}
	config := frameConfig{r: r, g: g, b: b, full: *fullFlag, label: *labelFlag}

	if *libFlag != "" {
		var dirs []string
		if *libDirFlag != "" {
			dirs = append(dirs, *libDirFlag)
		}
		var lib writerLibrary
		if lib, err = loadLibrary(*libFlag, dirs...); err != nil {
			return fmt.Errorf("could not load shared library %s: %w", *libFlag, err)
		}
		defer func() {
			err = errors.Join(err, lib.Close())
		}()
		config.write = lib.WriteRegion
		surfmanip.Logger().Info("using writer library", "library", lib.String())
	}
	frame := newFrame(config)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	runConfig := &surfmanip.RunConfig{Interval: *intervalFlag, Frames: *framesFlag}

	switch *backendFlag {
	case "window":
		err = window.Run(&window.Config{
			Title:  "surface-demo",
			Width:  *widthFlag,
			Height: *heightFlag,
			TPS:    tps(*intervalFlag),
		}, frame)

	case "headless":
		var s *surfmanip.MemorySurface
		if s, err = surfmanip.NewMemorySurface(*widthFlag, *heightFlag, 0, pixel.XRGB8888); err != nil {
			return err
		}
		err = surfmanip.Run(ctx, s, frame, runConfig)

	case "fbdev":
		var fb framebuffer.Device
		if fb, err = framebuffer.Open(*fbFlag); err != nil {
			return err
		}
		err = errors.Join(surfmanip.Run(ctx, fb, frame, runConfig), fb.Close())

	case "st7789":
		rotation, ok := panel.ParseRotation(*rotateFlag)
		if !ok {
			return fmt.Errorf("invalid rotation %q", *rotateFlag)
		}
		if _, err = host.Init(); err != nil {
			return err
		}
		var c panel.Conn
		if c, err = panel.OpenSPI(&panel.SPIConfig{
			Bus:     *spiBusFlag,
			Device:  *spiDeviceFlag,
			SpeedHz: uint32(*spiSpeedFlag),
			Reset:   pin(*resetFlag),
			DC:      pin(*dcFlag),
			CE:      pin(*ceFlag),
		}); err != nil {
			return err
		}
		var p *panel.Panel
		if p, err = panel.ST7789(c, &panel.Config{Rotation: rotation}); err != nil {
			_ = c.Close()
			return err
		}
		err = errors.Join(surfmanip.Run(ctx, p, frame, runConfig), p.Close())

	default:
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pin resolves a GPIO pin by name, unnamed pins are invalid.
func pin(name string) gpio.PinOut {
	if name == "" {
		return gpio.INVALID
	}
	if p := gpioreg.ByName(name); p != nil {
		return p
	}
	return gpio.INVALID
}

func tps(interval time.Duration) int {
	if interval <= 0 {
		return 0
	}
	return max(1, int(time.Second/interval))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal:", err)
	os.Exit(1)
}
