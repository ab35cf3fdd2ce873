// hw_interface.go - Raw hardware access capabilities consumed by the driver

package vgacore

import (
	"errors"
	"fmt"
)

// PortIO is the raw I/O port capability the driver is built on. The host
// environment (boot stub, kernel, emulator) supplies an implementation; the
// driver never reaches ports any other way.
//
// Port operations are local bus cycles and cannot fail in a recoverable
// way, so the methods carry no error return. A provider that loses access
// to the hardware is a host-level fault outside this driver's detection.
type PortIO interface {
	ReadPort(port uint16) uint8
	WritePort(port uint16, value uint8)
}

// PortIO16 is the optional 16-bit port capability used by VBE-style
// devices (Bochs dispi interface). Providers that can issue word cycles
// implement it alongside PortIO.
type PortIO16 interface {
	ReadPort16(port uint16) uint16
	WritePort16(port uint16, value uint16)
}

// PortIO32 is the optional 32-bit port capability used for PCI
// configuration space access.
type PortIO32 interface {
	ReadPort32(port uint16) uint32
	WritePort32(port uint16, value uint32)
}

// MemoryIO is the video memory window capability. Addresses are physical
// bus addresses; the host must have mapped the window readable and
// writable before the driver touches it.
type MemoryIO interface {
	ReadByte(addr uint32) uint8
	WriteByte(addr uint32, value uint8)
}

// Sentinel errors matched with errors.Is.
var (
	// ErrUnsupportedOperation reports a register access the hardware
	// cannot perform, such as an indexed read of a write-only group.
	ErrUnsupportedOperation = errors.New("unsupported register operation")

	// ErrUnsupportedGlyph reports a character with no entry in the glyph
	// table. Drawing fails rather than rendering a placeholder.
	ErrUnsupportedGlyph = errors.New("unsupported glyph")

	// ErrOutOfBounds reports a coordinate outside the active mode's
	// screen for operations that check bounds (chunky-linear pixel
	// writes, text cell access).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// HardwareError carries the failed operation alongside the sentinel cause.
type HardwareError struct {
	Operation string // What was being attempted
	Details   string // Additional context
	Err       error  // Underlying sentinel if any
}

func (e *HardwareError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vga %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("vga %s failed: %s", e.Operation, e.Details)
}

func (e *HardwareError) Unwrap() error {
	return e.Err
}
