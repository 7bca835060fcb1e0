package panel

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/surfmanip"
	"github.com/BeatGlow/surfmanip/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("panel: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("panel: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with a panel controller.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int
	Device    int
	SpeedHz   uint32
	DataLow   bool
	BatchSize uint
	Reset     gpio.PinOut
	DC        gpio.PinOut
	CE        gpio.PinOut
}

// DefaultSPIConfig are the default configuration values. Pins are left unset, they can
// only be resolved after the host drivers are initialized.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	SpeedHz:   8_000_000,
	BatchSize: 4096,
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	16_000_000,
	20_000_000,
	24_000_000,
	32_000_000,
	40_000_000,
	48_000_000,
	50_000_000,
}

// spiBus is the part of [conn.SPI] the connection uses.
type spiBus interface {
	String() string
	Close() error
	Write([]byte) (int, error)
	SetMode(conn.SPIMode) error
	SetMaxSpeed(int) error
}

type spiConn struct {
	bus       spiBus
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcSet     bool
	cs        gpio.PinOut
	dataLow   bool
	batchSize uint
}

// OpenSPI opens a SPI connection with a data/command pin.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.Reset == nil || config.Reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultSPIConfig.BatchSize
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.SpeedHz; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("panel: invalid SPI speed %dHz", config.SpeedHz)
	}

	bus, err := conn.OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}
	if err = bus.SetMaxSpeed(int(config.SpeedHz)); err != nil {
		_ = bus.Close()
		return nil, err
	}

	return newSPIConn(bus, config), nil
}

func newSPIConn(bus spiBus, config *SPIConfig) *spiConn {
	cs := config.CE
	if cs == gpio.INVALID {
		cs = nil
	}
	return &spiConn{
		bus:       bus,
		batchSize: config.BatchSize,
		dataLow:   config.DataLow,
		reset:     config.Reset,
		dc:        config.DC,
		cs:        cs,
	}
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) SetMode(mode conn.SPIMode) error {
	return c.bus.SetMode(mode)
}

func (c *spiConn) SetMaxSpeed(hz int) error {
	return c.bus.SetMaxSpeed(hz)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if c.dcSet && c.dcLevel == level {
		return nil
	}
	if err := c.dc.Out(level); err != nil {
		return err
	}
	c.dcLevel, c.dcSet = level, true
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) Command(cmnd byte, data ...byte) (err error) {
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	defer func() {
		if cerr := c.updateCS(gpio.High); err == nil {
			err = cerr
		}
	}()

	if err = c.updateDC(gpio.Level(c.dataLow)); err != nil {
		return
	}
	if _, err = c.bus.Write([]byte{cmnd}); err != nil {
		return
	}
	if len(data) > 0 {
		if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
			return
		}
		err = c.writeChunked(data)
	}
	return
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	defer func() {
		if cerr := c.updateCS(gpio.High); err == nil {
			err = cerr
		}
	}()
	return c.writeChunked(data)
}

func (c *spiConn) writeChunked(data []byte) error {
	size := int(c.batchSize)
	if size <= 0 || len(data) <= size {
		_, err := c.bus.Write(data)
		return err
	}

	surfmanip.Logger().Debug("SPI chunked write", "bytes", len(data), "chunks", (len(data)+size-1)/size)
	for len(data) > 0 {
		n := min(size, len(data))
		if _, err := c.bus.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
