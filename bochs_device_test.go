// bochs_device_test.go - Bochs dispi interface and PCI probe tests

package vgacore

import (
	"errors"
	"testing"
)

// fakeDispi emulates the dispi register pair and PCI configuration
// space of a QEMU standard VGA adapter.
type fakeDispi struct {
	index     uint16
	registers [16]uint16
	pciAddr   uint32
	bar0      uint32
	absent    bool
}

func newFakeDispi() *fakeDispi {
	d := &fakeDispi{bar0: 0xFD000008} // prefetchable bit set in BAR0
	d.registers[VBE_DISPI_INDEX_ID] = VBE_DISPI_ID5
	return d
}

func (d *fakeDispi) ReadPort16(port uint16) uint16 {
	if port == VBE_DISPI_DATA_PORT {
		if d.absent {
			return 0xFFFF
		}
		return d.registers[d.index&0xF]
	}
	return 0xFFFF
}

func (d *fakeDispi) WritePort16(port uint16, value uint16) {
	switch port {
	case VBE_DISPI_INDEX_PORT:
		d.index = value
	case VBE_DISPI_DATA_PORT:
		if !d.absent {
			d.registers[d.index&0xF] = value
		}
	}
}

func (d *fakeDispi) ReadPort32(port uint16) uint32 {
	if port != PCI_CONFIG_DATA_PORT {
		return 0xFFFFFFFF
	}
	device := (d.pciAddr >> 11) & 0x1F
	offset := d.pciAddr & 0xFF
	if device != 2 {
		return 0xFFFFFFFF // only slot 2 is populated
	}
	switch offset {
	case 0x00:
		return uint32(PCI_DEVICE_BOCHS)<<16 | PCI_VENDOR_BOCHS
	case 0x10:
		return d.bar0
	default:
		return 0
	}
}

func (d *fakeDispi) WritePort32(port uint16, value uint32) {
	if port == PCI_CONFIG_ADDRESS_PORT {
		d.pciAddr = value
	}
}

func TestBochs_Probe_FindsFrameBufferThroughPci(t *testing.T) {
	fake := newFakeDispi()
	mem := newRecordingMemory()

	dev, err := NewBochsDevice(fake, mem, fake, 0)
	if err != nil {
		t.Fatalf("NewBochsDevice: %v", err)
	}
	if got := dev.FrameBufferBase(); got != 0xFD000000 {
		t.Errorf("frame buffer base: got %#x, want 0xfd000000 (BAR0 flags stripped)", got)
	}
}

func TestBochs_Probe_AbsentInterface(t *testing.T) {
	fake := newFakeDispi()
	fake.absent = true

	_, err := NewBochsDevice(fake, newRecordingMemory(), nil, 0)
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("probe of missing dispi: got %v, want ErrUnsupportedOperation", err)
	}
}

func TestBochs_SetMode_ProgramsGeometryDisabled(t *testing.T) {
	fake := newFakeDispi()
	dev, err := NewBochsDevice(fake, newRecordingMemory(), nil, 0xFD000000)
	if err != nil {
		t.Fatalf("NewBochsDevice: %v", err)
	}

	if err := dev.Enable1280x800(); err != nil {
		t.Fatalf("Enable1280x800: %v", err)
	}
	if got := fake.registers[VBE_DISPI_INDEX_XRES]; got != 1280 {
		t.Errorf("xres: got %d, want 1280", got)
	}
	if got := fake.registers[VBE_DISPI_INDEX_YRES]; got != 800 {
		t.Errorf("yres: got %d, want 800", got)
	}
	if got := fake.registers[VBE_DISPI_INDEX_BPP]; got != 32 {
		t.Errorf("bpp: got %d, want 32", got)
	}
	if got := fake.registers[VBE_DISPI_INDEX_ENABLE]; got != VBE_DISPI_ENABLED|VBE_DISPI_LFB {
		t.Errorf("enable: got %#04x, want enabled with LFB", got)
	}
	if w, h := dev.Size(); w != 1280 || h != 800 {
		t.Errorf("size: got %dx%d, want 1280x800", w, h)
	}
}

func TestBochs_SetPixel_LinearSurface(t *testing.T) {
	fake := newFakeDispi()
	mem := newRecordingMemory()
	dev, err := NewBochsDevice(fake, mem, nil, 0x1000)
	if err != nil {
		t.Fatalf("NewBochsDevice: %v", err)
	}
	if err := dev.SetMode(4, 4); err != nil {
		t.Fatalf("SetMode: %v", err)
	}

	if err := dev.SetPixel(1, 1, 0x00AABBCC); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	offset := uint32(0x1000 + (1*4+1)*4)
	if mem.writes[offset] != 0xCC || mem.writes[offset+1] != 0xBB || mem.writes[offset+2] != 0xAA {
		t.Errorf("pixel bytes: got %#02x %#02x %#02x, want cc bb aa",
			mem.writes[offset], mem.writes[offset+1], mem.writes[offset+2])
	}

	if err := dev.SetPixel(4, 0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("offscreen pixel: got %v, want ErrOutOfBounds", err)
	}
}
