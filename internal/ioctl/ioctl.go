//go:build linux

// Package ioctl wraps the ioctl system call for device drivers in this module.
package ioctl

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mode is the IOCTL direction.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	var (
		mode = Mode(c >> 30 & 0x03)
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}

// Encode an ioctl command.
func Encode(mode Mode, size uintptr, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(cmd&0xffff)
}

// Pointer encodes a command that transfers one *T.
func Pointer[T any](mode Mode, cmd uintptr) Command {
	var v T
	return Encode(mode, unsafe.Sizeof(v), cmd)
}

// Do executes the ioctl call with arg pointing at the transferred value.
func Do(fd uintptr, command Command, arg unsafe.Pointer) error {
	return Call(fd, uintptr(command), uintptr(arg))
}

// Call does a plain ioctl system call.
func Call(fd, command, arg uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, command, arg); errno != 0 {
		return fmt.Errorf("ioctl %s failed: %w", Command(command), errno)
	}
	return nil
}
