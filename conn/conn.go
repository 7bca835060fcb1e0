// Package conn opens the serial buses used by the panel hosts.
package conn

import "errors"

// ErrNotSupported is returned on platforms without spidev.
var ErrNotSupported = errors.New("conn: not supported")

// Definitions from <linux/spi/spidev.h>
const (
	spiCPHA = 0x01
	spiCPOL = 0x02
)

// SPIMode is the clock polarity and phase.
type SPIMode uint8

const (
	SPIMode0 SPIMode = 0
	SPIMode1 SPIMode = spiCPHA
	SPIMode2 SPIMode = spiCPOL
	SPIMode3 SPIMode = spiCPOL | spiCPHA
)

func (m SPIMode) String() string {
	return "mode " + string('0'+byte(m&3))
}
