package framebuffer

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/internal/ioctl"
	"github.com/BeatGlow/surfmanip/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
	fbioPanDisplay     = 0x4606
)

type linuxFrameBuffer struct {
	mu         sync.Mutex
	locked     bool
	canPan     bool
	f          *os.File
	fd         uintptr
	mem        []byte
	view       pixel.View
	format     pixel.Format
	info       linuxFixScreenInfo
	screenInfo linuxVarScreenInfo
}

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	fb := &linuxFrameBuffer{
		f:      f,
		fd:     f.Fd(),
		canPan: true,
	}
	if err = ioctl.Do(fb.fd, fbioGetFScreenInfo, unsafe.Pointer(&fb.info)); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request variable screen info.
	if err = ioctl.Do(fb.fd, fbioGetVScreenInfo, unsafe.Pointer(&fb.screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if fb.format, err = linuxParseFormat(&fb.screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel memory.
	if fb.mem, err = unix.Mmap(int(fb.fd), 0, int(fb.info.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: mmap failed: %w", err)
	}
	if fb.view, err = linuxVisibleView(fb.mem, &fb.info, &fb.screenInfo); err != nil {
		_ = unix.Munmap(fb.mem)
		_ = f.Close()
		return nil, err
	}

	surfmanip.Logger().Info("framebuffer opened", "device", name, "view", fb.view.String(), "format", fb.format)
	return fb, nil
}

func (fb *linuxFrameBuffer) String() string {
	return fmt.Sprintf("framebuffer %s %s %s", fb.f.Name(), fb.view, fb.format)
}

func (fb *linuxFrameBuffer) Format() pixel.Format {
	return fb.format
}

func (fb *linuxFrameBuffer) Lock() (pixel.View, error) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.locked {
		return pixel.View{}, surfmanip.ErrLocked
	}
	fb.locked = true
	return fb.view, nil
}

func (fb *linuxFrameBuffer) Unlock() error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if !fb.locked {
		return surfmanip.ErrNotLocked
	}
	fb.locked = false
	return nil
}

// Flip pans the display to the current offsets. Drivers without panning support are
// only asked once.
func (fb *linuxFrameBuffer) Flip() error {
	if !fb.canPan {
		return nil
	}
	if err := ioctl.Do(fb.fd, fbioPanDisplay, unsafe.Pointer(&fb.screenInfo)); err != nil {
		fb.canPan = false
		surfmanip.Logger().Warn("framebuffer panning not supported", "device", fb.f.Name(), "error", err)
	}
	return nil
}

// Poll returns dst, the framebuffer has no input.
func (fb *linuxFrameBuffer) Poll(dst []surfmanip.Event) []surfmanip.Event {
	return dst
}

// Close the framebuffer device.
func (fb *linuxFrameBuffer) Close() error {
	if err := unix.Munmap(fb.mem); err != nil {
		return err
	}
	return fb.f.Close()
}

// linuxVisibleView returns the view onto the visible area of the mapped memory.
func linuxVisibleView(mem []byte, info *linuxFixScreenInfo, screenInfo *linuxVarScreenInfo) (pixel.View, error) {
	var (
		line   = int(info.LineLength)
		width  = int(screenInfo.Xres)
		height = int(screenInfo.Yres)
		x      = int(screenInfo.Xoffset)
		y      = int(screenInfo.Yoffset)
	)
	if line%pixel.ElementSize != 0 {
		return pixel.View{}, fmt.Errorf("framebuffer: line length %d is not a whole number of pixels", line)
	}
	stride := line / pixel.ElementSize
	if width <= 0 || height <= 0 || stride < x+width {
		return pixel.View{}, fmt.Errorf("framebuffer: invalid geometry %dx%d+%d+%d with stride %d", width, height, x, y, stride)
	}

	var (
		start = (y*stride + x) * pixel.ElementSize
		end   = ((y+height-1)*stride + x + width) * pixel.ElementSize
	)
	if end > len(mem) {
		return pixel.View{}, fmt.Errorf("framebuffer: visible area needs %d bytes, device maps %d", end, len(mem))
	}
	return pixel.NewView(unsafe.Pointer(&mem[start]), width, height, stride), nil
}

type linuxFixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo is the device independent changeable video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func linuxParseFormat(info *linuxVarScreenInfo) (pixel.Format, error) {
	if info == nil {
		return pixel.FormatUnknown, fmt.Errorf("framebuffer: invalid screen info")
	}
	if info.BitsPerPixel != 32 || info.Grayscale != 0 ||
		info.Red.Length != 8 || info.Green.Length != 8 || info.Blue.Length != 8 || info.Green.Offset != 8 {
		return pixel.FormatUnknown, fmt.Errorf("%w: %d bpp", ErrUnsupportedFormat, info.BitsPerPixel)
	}

	alpha := info.Alpha.Length == 8 && info.Alpha.Offset == 24
	if info.Alpha.Length != 0 && !alpha {
		return pixel.FormatUnknown, fmt.Errorf("%w: alpha at %d+%d", ErrUnsupportedFormat, info.Alpha.Offset, info.Alpha.Length)
	}

	switch {
	case info.Red.Offset == 16 && info.Blue.Offset == 0:
		if alpha {
			return pixel.ARGB8888, nil
		}
		return pixel.XRGB8888, nil
	case info.Red.Offset == 0 && info.Blue.Offset == 16:
		if alpha {
			return pixel.ABGR8888, nil
		}
		return pixel.XBGR8888, nil
	}
	return pixel.FormatUnknown, fmt.Errorf("%w: red at %d, blue at %d", ErrUnsupportedFormat, info.Red.Offset, info.Blue.Offset)
}

// Interface checks.
var _ Device = (*linuxFrameBuffer)(nil)
