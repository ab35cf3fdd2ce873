// bochs_device.go - Bochs/QEMU VBE extensions for the high resolution mode

package vgacore

// Bochs dispi interface: a single 16-bit indexed register pair living in
// I/O space, very unlike the VGA's byte protocol.
const (
	VBE_DISPI_INDEX_PORT = 0x01CE
	VBE_DISPI_DATA_PORT  = 0x01CF

	VBE_DISPI_INDEX_ID          = 0x0
	VBE_DISPI_INDEX_XRES        = 0x1
	VBE_DISPI_INDEX_YRES        = 0x2
	VBE_DISPI_INDEX_BPP         = 0x3
	VBE_DISPI_INDEX_ENABLE      = 0x4
	VBE_DISPI_INDEX_BANK        = 0x5
	VBE_DISPI_INDEX_VIRT_WIDTH  = 0x6
	VBE_DISPI_INDEX_VIRT_HEIGHT = 0x7
	VBE_DISPI_INDEX_X_OFFSET    = 0x8
	VBE_DISPI_INDEX_Y_OFFSET    = 0x9

	VBE_DISPI_ID5      = 0xB0C5
	VBE_DISPI_DISABLED = 0x00
	VBE_DISPI_ENABLED  = 0x01
	VBE_DISPI_LFB      = 0x40
	VBE_DISPI_NOCLEAR  = 0x80
)

// BochsDevice drives the Bochs VBE display interface found on QEMU and
// Bochs guests, which reaches resolutions the VGA register file cannot.
// The frame buffer is a flat 32bpp surface at the address PCI BAR0
// reports.
type BochsDevice struct {
	ports           PortIO16
	mem             MemoryIO
	frameBufferBase uint32
	width           int
	height          int
}

// NewBochsDevice probes the dispi ID register and, when the interface
// answers, locates the linear frame buffer through PCI configuration
// space. pci may be nil when the caller already knows the address;
// frameBufferBase is then used as given.
func NewBochsDevice(ports PortIO16, mem MemoryIO, pci PortIO32, frameBufferBase uint32) (*BochsDevice, error) {
	d := &BochsDevice{ports: ports, mem: mem, frameBufferBase: frameBufferBase}

	if id := d.readRegister(VBE_DISPI_INDEX_ID); id < 0xB0C0 || id > 0xB0CF {
		return nil, &HardwareError{
			Operation: "NewBochsDevice",
			Details:   "dispi interface not present",
			Err:       ErrUnsupportedOperation,
		}
	}

	if pci != nil {
		base, err := findBochsFrameBuffer(pci)
		if err != nil {
			return nil, err
		}
		d.frameBufferBase = base
	}
	return d, nil
}

func (d *BochsDevice) readRegister(index uint16) uint16 {
	d.ports.WritePort16(VBE_DISPI_INDEX_PORT, index)
	return d.ports.ReadPort16(VBE_DISPI_DATA_PORT)
}

func (d *BochsDevice) writeRegister(index, value uint16) {
	d.ports.WritePort16(VBE_DISPI_INDEX_PORT, index)
	d.ports.WritePort16(VBE_DISPI_DATA_PORT, value)
}

// SetMode programs a 32bpp linear mode. The interface must be disabled
// while geometry changes.
func (d *BochsDevice) SetMode(width, height int) error {
	if width <= 0 || height <= 0 || width > 0xFFFF || height > 0xFFFF {
		return &HardwareError{
			Operation: "SetMode",
			Details:   "geometry outside the dispi register range",
			Err:       ErrOutOfBounds,
		}
	}
	d.writeRegister(VBE_DISPI_INDEX_ENABLE, VBE_DISPI_DISABLED)
	d.writeRegister(VBE_DISPI_INDEX_XRES, uint16(width))
	d.writeRegister(VBE_DISPI_INDEX_YRES, uint16(height))
	d.writeRegister(VBE_DISPI_INDEX_BPP, 32)
	d.writeRegister(VBE_DISPI_INDEX_VIRT_WIDTH, uint16(width))
	d.writeRegister(VBE_DISPI_INDEX_VIRT_HEIGHT, uint16(height))
	d.writeRegister(VBE_DISPI_INDEX_X_OFFSET, 0)
	d.writeRegister(VBE_DISPI_INDEX_Y_OFFSET, 0)
	d.writeRegister(VBE_DISPI_INDEX_ENABLE, VBE_DISPI_ENABLED|VBE_DISPI_LFB)
	d.width = width
	d.height = height
	return nil
}

// Enable1280x800 programs the stock high resolution mode.
func (d *BochsDevice) Enable1280x800() error {
	if err := d.SetMode(ModeGraphics1280x800x256.Width, ModeGraphics1280x800x256.Height); err != nil {
		return err
	}
	return nil
}

func (d *BochsDevice) Size() (int, int) {
	return d.width, d.height
}

// FrameBufferBase returns the physical address of the linear surface.
func (d *BochsDevice) FrameBufferBase() uint32 {
	return d.frameBufferBase
}

// SetPixel writes one 32bpp pixel as 0x00RRGGBB.
func (d *BochsDevice) SetPixel(x, y int, rgb uint32) error {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return ErrOutOfBounds
	}
	offset := d.frameBufferBase + uint32(y*d.width+x)*4
	d.mem.WriteByte(offset, uint8(rgb))
	d.mem.WriteByte(offset+1, uint8(rgb>>8))
	d.mem.WriteByte(offset+2, uint8(rgb>>16))
	d.mem.WriteByte(offset+3, 0)
	return nil
}
