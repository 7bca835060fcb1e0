//go:build linux

package ioctl

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		command Command
		want    Command
	}{
		// SPI_IOC_RD_MODE and SPI_IOC_WR_MAX_SPEED_HZ from <linux/spi/spidev.h>.
		{Pointer[uint8](Read, 0x6b01), 0x80016b01},
		{Pointer[uint32](Write, 0x6b04), 0x40046b04},
		{Encode(None, 0, 0x4600), 0x4600},
	}
	for _, test := range tests {
		if test.command != test.want {
			t.Errorf("expected %#08x, got %#08x", uintptr(test.want), uintptr(test.command))
		}
	}
}

func TestCommandString(t *testing.T) {
	if s := Pointer[uint32](Read|Write, 0x6b04).String(); s != "ioctl write read (4 bytes) 0x6b04" {
		t.Errorf("unexpected command string %q", s)
	}
}
