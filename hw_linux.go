//go:build linux

// hw_linux.go - Real hardware access through /dev/port and /dev/mem

/*
LinuxPortIO issues port cycles by seeking in /dev/port, which the kernel
turns into in/out instructions of the access width. LinuxMemoryIO maps a
physical window of /dev/mem. Both need root (or the matching
capabilities) and a kernel built without STRICT_DEVMEM for the legacy
video range. Every access is performed as issued: these are device
registers, nothing is cached or batched.
*/

package vgacore

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// LinuxPortIO drives I/O ports through /dev/port.
type LinuxPortIO struct {
	fd int
}

// OpenLinuxPortIO opens /dev/port for register access.
func OpenLinuxPortIO() (*LinuxPortIO, error) {
	fd, err := unix.Open("/dev/port", unix.O_RDWR, 0)
	if err != nil {
		return nil, &HardwareError{
			Operation: "OpenLinuxPortIO",
			Details:   "open /dev/port",
			Err:       err,
		}
	}
	return &LinuxPortIO{fd: fd}, nil
}

func (p *LinuxPortIO) Close() error {
	return unix.Close(p.fd)
}

func (p *LinuxPortIO) ReadPort(port uint16) uint8 {
	var buf [1]byte
	unix.Pread(p.fd, buf[:], int64(port))
	return buf[0]
}

func (p *LinuxPortIO) WritePort(port uint16, value uint8) {
	buf := [1]byte{value}
	unix.Pwrite(p.fd, buf[:], int64(port))
}

func (p *LinuxPortIO) ReadPort16(port uint16) uint16 {
	var buf [2]byte
	unix.Pread(p.fd, buf[:], int64(port))
	return uint16(buf[0]) | uint16(buf[1])<<8
}

func (p *LinuxPortIO) WritePort16(port uint16, value uint16) {
	buf := [2]byte{uint8(value), uint8(value >> 8)}
	unix.Pwrite(p.fd, buf[:], int64(port))
}

func (p *LinuxPortIO) ReadPort32(port uint16) uint32 {
	var buf [4]byte
	unix.Pread(p.fd, buf[:], int64(port))
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

func (p *LinuxPortIO) WritePort32(port uint16, value uint32) {
	buf := [4]byte{uint8(value), uint8(value >> 8), uint8(value >> 16), uint8(value >> 24)}
	unix.Pwrite(p.fd, buf[:], int64(port))
}

var (
	_ PortIO   = (*LinuxPortIO)(nil)
	_ PortIO16 = (*LinuxPortIO)(nil)
	_ PortIO32 = (*LinuxPortIO)(nil)
)

// LinuxMemoryIO maps a physical address window from /dev/mem.
type LinuxMemoryIO struct {
	base   uint32
	window []byte
	file   *os.File
}

// OpenLinuxMemoryIO maps length bytes of physical memory at base. The
// conventional video window is base 0xA0000, length 0x20000.
func OpenLinuxMemoryIO(base uint32, length int) (*LinuxMemoryIO, error) {
	file, err := os.OpenFile("/dev/mem", os.O_RDWR, 0)
	if err != nil {
		return nil, &HardwareError{
			Operation: "OpenLinuxMemoryIO",
			Details:   "open /dev/mem",
			Err:       err,
		}
	}
	window, err := unix.Mmap(int(file.Fd()), int64(base), length,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, &HardwareError{
			Operation: "OpenLinuxMemoryIO",
			Details:   fmt.Sprintf("map %#x+%#x", base, length),
			Err:       err,
		}
	}
	return &LinuxMemoryIO{base: base, window: window, file: file}, nil
}

func (m *LinuxMemoryIO) Close() error {
	err := unix.Munmap(m.window)
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func (m *LinuxMemoryIO) ReadByte(addr uint32) uint8 {
	offset := addr - m.base
	if int(offset) >= len(m.window) {
		return 0xFF
	}
	return m.window[offset]
}

func (m *LinuxMemoryIO) WriteByte(addr uint32, value uint8) {
	offset := addr - m.base
	if int(offset) >= len(m.window) {
		return
	}
	m.window[offset] = value
}

var _ MemoryIO = (*LinuxMemoryIO)(nil)
