package panel

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/conn"
	"github.com/BeatGlow/surfmanip/pixel"
)

const (
	st7789DefaultWidth  = 240
	st7789DefaultHeight = 240
	st7789BatchSize     = 4096
)

// Registers (from st7789.pdf).
const (
	st7789SLPOUT    = 0x11 // Sleep Out
	st7789INVON     = 0x21 // Display Inversion On
	st7789DISPOFF   = 0x28 // Display Off
	st7789DISPON    = 0x29 // Display On
	st7789CASET     = 0x2A // Column Address Set
	st7789RASET     = 0x2B // Row Address Set
	st7789RAMWR     = 0x2C // Memory Write
	st7789MADCTL    = 0x36 // Memory Data Access Control
	st7789COLMOD    = 0x3A // Interface Pixel Format
	st7789PORCTRL   = 0xB2 // Porch Setting
	st7789GCTRL     = 0xB7 // Gate Control
	st7789VCOMS     = 0xBB // VCOM Setting
	st7789LCMCTRL   = 0xC0 // LCM Control
	st7789VDVVRHEN  = 0xC2 // VDV and VRH Command Enable
	st7789VRHS      = 0xC3 // VRH Set
	st7789VDVSET    = 0xC4 // VDV Set
	st7789VCMOFSET  = 0xC5 // VCOM Offset Set
	st7789FRCTR2    = 0xC6 // Frame Rate Control in Normal Mode
	st7789PWCTRL1   = 0xD0 // Power Control 1
	st7789PVGAMCTRL = 0xE0 // Positive Voltage Gamma Control
	st7789NVGAMCTRL = 0xE1 // Negative Voltage Gamma Control
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	st7789PageColumnOrder    byte = 1 << 5 // MV
	st7789ColumnAddressOrder byte = 1 << 6 // MX
	st7789PageAddressOrder   byte = 1 << 7 // MY
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Panel is a SPI panel driven as a host surface. Drawing goes into an XRGB8888 surface
// in memory; Flip converts it to the panel's RGB565 and streams it out.
type Panel struct {
	*surfmanip.MemorySurface
	c        Conn
	rotation Rotation
	scratch  []byte
}

// ST7789 initializes a Sitronix ST7789 panel on c.
func ST7789(c Conn, config *Config) (*Panel, error) {
	config = config.withDefaults(st7789DefaultWidth, st7789DefaultHeight)

	rotated := config.Rotation == Rotate90 || config.Rotation == Rotate270
	if !rotated && (config.Width > 240 || config.Height > 320) {
		return nil, fmt.Errorf("st7789: invalid size %dx%d, maximum size is 240x320 at %s rotation", config.Width, config.Height, config.Rotation)
	} else if rotated && (config.Width > 320 || config.Height > 240) {
		return nil, fmt.Errorf("st7789: invalid size %dx%d, maximum size is 320x240 at %s rotation", config.Width, config.Height, config.Rotation)
	}

	// Update mode and speed
	if spi, ok := c.(*spiConn); ok {
		spi.dataLow = false
		if err := spi.SetMode(conn.SPIMode3); err != nil {
			return nil, err
		}
		if err := spi.SetMaxSpeed(40_000_000); err != nil {
			return nil, err
		}
	}

	s, err := surfmanip.NewMemorySurface(config.Width, config.Height, 0, pixel.XRGB8888)
	if err != nil {
		return nil, err
	}
	p := &Panel{
		MemorySurface: s,
		c:             c,
		scratch:       make([]byte, config.Width*config.Height*2),
	}
	if err = p.init(config); err != nil {
		return nil, err
	}

	surfmanip.Logger().Info("panel initialized", "panel", p.String(), "conn", c.String())
	return p, nil
}

func (p *Panel) String() string {
	return fmt.Sprintf("ST7789 %dx%d", p.Width(), p.Height())
}

func (p *Panel) commands(commands [][]byte) error {
	for _, command := range commands {
		if err := p.c.Command(command[0], command[1:]...); err != nil {
			return err
		}
	}
	return nil
}

func (p *Panel) init(config *Config) (err error) {
	// reset the device.
	for _, level := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err = p.c.Reset(level); err != nil {
			return
		}
		sleep(100 * time.Millisecond)
	}

	if err = p.c.Command(st7789SLPOUT); err != nil {
		return
	}
	sleep(150 * time.Millisecond)

	if err = p.commands([][]byte{
		{st7789COLMOD, 0x05},        // Interface Pixel Format: 16-bit/pixel (RGB 5-6-5-bit input)
		{st7789PORCTRL, 0x0C, 0x0C}, // Porch Setting: default
		{st7789GCTRL, 0x35},         // Gate Control: 13.26V / -10.43V (default)
		{st7789VCOMS, 0x1A},         // VCOM Setting: 0.75V
		{st7789LCMCTRL, 0x2C},       // LCM Control: default
		{st7789VDVVRHEN, 0x01},      // VDV and VRH Command Enable: default
		{st7789VRHS, 0x0B},          // VRH Set
		{st7789VDVSET, 0x20},        // VDV Set: default (0V)
		{st7789VCMOFSET, 0x20},      // VCOM Offset Set: default (0V)
		{st7789FRCTR2, 0x0F},        // Frame Rate Control in Normal Mode: 60Hz (default)
		{st7789PWCTRL1, 0xA4, 0xA1}, // Power Control 1: default
		{st7789INVON},
		{st7789PVGAMCTRL, 0x00, 0x19, 0x1E, 0x0A, 0x09, 0x15, 0x3D, 0x44, 0x51, 0x12, 0x03, 0x00, 0x3F, 0x3F},
		{st7789NVGAMCTRL, 0x00, 0x18, 0x1E, 0x0A, 0x09, 0x25, 0x3F, 0x43, 0x52, 0x33, 0x03, 0x00, 0x3F, 0x3F},
		{st7789DISPON},
	}); err != nil {
		return
	}
	sleep(100 * time.Millisecond)

	return p.SetRotation(config.Rotation)
}

// Close turns the panel off and closes the connection.
func (p *Panel) Close() error {
	if err := p.Show(false); err != nil {
		_ = p.c.Close()
		return err
	}
	return p.c.Close()
}

// Show toggles the panel on or off.
func (p *Panel) Show(show bool) error {
	if show {
		return p.c.Command(st7789DISPON)
	}
	return p.c.Command(st7789DISPOFF)
}

// SetRotation adjusts the scan direction.
func (p *Panel) SetRotation(rotation Rotation) error {
	rotation &= 3

	var madctl byte
	switch rotation {
	case Rotate90:
		madctl = st7789ColumnAddressOrder | st7789PageColumnOrder
	case Rotate180:
		madctl = st7789ColumnAddressOrder | st7789PageAddressOrder
	case Rotate270:
		madctl = st7789PageAddressOrder | st7789PageColumnOrder
	}

	p.rotation = rotation
	return p.c.Command(st7789MADCTL, madctl)
}

func (p *Panel) setWindow(x0, y0, x1, y1 int) error {
	return p.commands([][]byte{
		{st7789CASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}, // Column address
		{st7789RASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}, // Row address
		{st7789RAMWR}, // Write to RAM
	})
}

// Flip sends the whole surface to the panel.
func (p *Panel) Flip() error {
	if p.Locked() {
		return surfmanip.ErrLocked
	}

	encodeRGB565(p.scratch, p.Pix(), p.Width(), p.Height(), p.Stride(), p.Format())
	if err := p.setWindow(0, 0, p.Width()-1, p.Height()-1); err != nil {
		return err
	}
	for i := 0; i < len(p.scratch); i += st7789BatchSize {
		if err := p.c.Data(p.scratch[i:min(i+st7789BatchSize, len(p.scratch))]...); err != nil {
			return err
		}
	}
	return nil
}

// encodeRGB565 converts the visible pixels of pix to big-endian RGB565 in dst.
func encodeRGB565(dst []byte, pix []pixel.Color, width, height, stride int, format pixel.Format) {
	i := 0
	for y := 0; y < height; y++ {
		for _, c := range pix[y*stride : y*stride+width] {
			r, g, b, _ := format.Unpack(c)
			v := uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b)>>3
			dst[i] = byte(v >> 8)
			dst[i+1] = byte(v)
			i += 2
		}
	}
}

// Interface checks.
var _ surfmanip.Host = (*Panel)(nil)
