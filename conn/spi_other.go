//go:build !linux

package conn

// SPI is a spidev bus. It cannot be opened on this platform.
type SPI struct{}

func OpenSPI(_, _ int) (*SPI, error) {
	return nil, ErrNotSupported
}

func (*SPI) Close() error              { return ErrNotSupported }
func (*SPI) String() string            { return "SPI (not supported)" }
func (*SPI) Mode() SPIMode             { return SPIMode0 }
func (*SPI) SetMode(SPIMode) error     { return ErrNotSupported }
func (*SPI) SetMaxSpeed(int) error     { return ErrNotSupported }
func (*SPI) Write([]byte) (int, error) { return 0, ErrNotSupported }
