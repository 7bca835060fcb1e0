//go:build linux

package conn

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/BeatGlow/surfmanip/internal/ioctl"
)

const spiDevPath = "/dev/spidev"

const (
	spiIOCMode        = 0x6b01
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
)

// From <linux/spi/spidev.h>
var (
	spiIOCReadMode        = ioctl.Pointer[SPIMode](ioctl.Read, spiIOCMode)
	spiIOCWriteMode       = ioctl.Pointer[SPIMode](ioctl.Write, spiIOCMode)
	spiIOCReadBitsPerWord = ioctl.Pointer[uint8](ioctl.Read, spiIOCBitsPerWord)
	spiIOCReadMaxSpeedHz  = ioctl.Pointer[uint32](ioctl.Read, spiIOCMaxSpeedHz)
	spiIOCWriteMaxSpeedHz = ioctl.Pointer[uint32](ioctl.Write, spiIOCMaxSpeedHz)
)

// SPI is a spidev bus.
type SPI struct {
	f           *os.File
	fd          uintptr
	mode        SPIMode
	bitsPerWord uint8
	maxSpeedHz  uint32
}

// OpenSPI opens /dev/spidev<bus>.<device>. The device usually is the chip select line.
func OpenSPI(bus, device int) (*SPI, error) {
	f, err := os.OpenFile(fmt.Sprintf("%s%d.%d", spiDevPath, bus, device), os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{f: f, fd: f.Fd()}
	if err = c.do(spiIOCReadMode, unsafe.Pointer(&c.mode)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = c.do(spiIOCReadBitsPerWord, unsafe.Pointer(&c.bitsPerWord)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = c.do(spiIOCReadMaxSpeedHz, unsafe.Pointer(&c.maxSpeedHz)); err != nil {
		_ = f.Close()
		return nil, err
	}
	return c, nil
}

func (c *SPI) do(command ioctl.Command, arg unsafe.Pointer) error {
	return ioctl.Do(c.fd, command, arg)
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s %s, %d bits per word, max %dHz", c.f.Name(), c.mode, c.bitsPerWord, c.maxSpeedHz)
}

func (c *SPI) Mode() SPIMode {
	return c.mode
}

// SetMode requests a SPI mode and verifies the driver accepted it.
func (c *SPI) SetMode(mode SPIMode) error {
	mode &= 0x0f
	if err := c.do(spiIOCWriteMode, unsafe.Pointer(&mode)); err != nil {
		return err
	}

	var got SPIMode
	if err := c.do(spiIOCReadMode, unsafe.Pointer(&got)); err != nil {
		return err
	}
	if got != mode {
		return fmt.Errorf("conn: SPI attempted to set %s, but %s is in use", mode, got)
	}
	c.mode = mode
	return nil
}

// SetMaxSpeed requests a bus speed. Negative values are ignored.
func (c *SPI) SetMaxSpeed(hz int) error {
	if hz < 0 {
		return nil
	}
	u := uint32(hz)
	if c.maxSpeedHz == u {
		return nil
	}
	if err := c.do(spiIOCWriteMaxSpeedHz, unsafe.Pointer(&u)); err != nil {
		return err
	}
	c.maxSpeedHz = u
	return nil
}

func (c *SPI) Write(b []byte) (n int, err error) {
	return c.f.Write(b)
}
