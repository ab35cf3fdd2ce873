// pci.go - Legacy PCI configuration access for locating the display adapter

package vgacore

import "fmt"

const (
	PCI_CONFIG_ADDRESS_PORT = 0x0CF8
	PCI_CONFIG_DATA_PORT    = 0x0CFC
	PCI_CONFIG_ENABLE       = 0x80000000

	PCI_VENDOR_BOCHS = 0x1234
	PCI_DEVICE_BOCHS = 0x1111
	PCI_VENDOR_NONE  = 0xFFFF
)

// pciConfigRead32 reads one dword of a function's configuration space
// through the legacy 0xCF8/0xCFC mechanism.
func pciConfigRead32(ports PortIO32, bus, device, function, offset uint32) uint32 {
	address := PCI_CONFIG_ENABLE |
		bus<<16 | device<<11 | function<<8 | (offset &^ 3)
	ports.WritePort32(PCI_CONFIG_ADDRESS_PORT, address)
	return ports.ReadPort32(PCI_CONFIG_DATA_PORT)
}

// findBochsFrameBuffer scans bus 0 for the Bochs display adapter and
// returns BAR0 with the flag bits stripped: the physical address of its
// linear frame buffer.
func findBochsFrameBuffer(ports PortIO32) (uint32, error) {
	for device := uint32(0); device < 32; device++ {
		id := pciConfigRead32(ports, 0, device, 0, 0x00)
		vendor := id & 0xFFFF
		if vendor == PCI_VENDOR_NONE {
			continue
		}
		if vendor != PCI_VENDOR_BOCHS || id>>16 != PCI_DEVICE_BOCHS {
			continue
		}
		bar0 := pciConfigRead32(ports, 0, device, 0, 0x10)
		if bar0&0x1 != 0 {
			return 0, &HardwareError{
				Operation: "findBochsFrameBuffer",
				Details:   fmt.Sprintf("device %d BAR0 is an I/O bar", device),
				Err:       ErrUnsupportedOperation,
			}
		}
		return bar0 &^ 0xF, nil
	}
	return 0, &HardwareError{
		Operation: "findBochsFrameBuffer",
		Details:   "no Bochs display adapter on bus 0",
		Err:       ErrUnsupportedOperation,
	}
}
