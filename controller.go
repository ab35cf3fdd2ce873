// controller.go - Mode programming and shared state for one VGA card

/*
Controller owns the register file and the frame buffer window of a single
card. Every public operation takes the controller mutex for its whole
register sequence, so two goroutines can never interleave the index and
data halves of a programming step or the multi-register pixel protocol.
The screen writers in this package all route their hardware access
through a Controller.
*/

package vgacore

import (
	"fmt"
	"sync"
)

// Controller drives one VGA card through its port and memory capability.
type Controller struct {
	mu          sync.Mutex
	regs        *Registers
	mem         MemoryIO
	memoryStart uint32
	relocated   bool
	mode        *ModeDescriptor
}

// NewController wires a controller to a card. The memory window starts
// at the conventional 0xA0000 until SetMemoryStart moves it.
func NewController(ports PortIO, mem MemoryIO) *Controller {
	return &Controller{
		regs:        NewRegisters(ports),
		mem:         mem,
		memoryStart: DefaultMemoryStart,
	}
}

// Registers exposes the raw register file for callers that need access
// beyond the mode and drawing operations. Raw access bypasses the
// controller mutex.
func (c *Controller) Registers() *Registers {
	return c.regs
}

// MemoryStart returns the current base of the video memory window.
func (c *Controller) MemoryStart() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.memoryStart
}

// SetMemoryStart relocates the video memory window, for cards mapped
// somewhere other than 0xA0000. After relocation, logical offset 0 of
// the frame buffer resolves to start exactly; the memory map select
// field no longer shifts the window. The display start address
// registers are reprogrammed so scanout follows. Out-of-range values
// behave as the hardware defines, they are not validated.
func (c *Controller) SetMemoryStart(start uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memoryStart = start
	c.relocated = true
	offset := uint16(start - DefaultMemoryStart)
	mode := c.regs.EmulationMode()
	c.regs.WriteCrtc(mode, CRTC_START_ADDRESS_HIGH, uint8(offset>>8))
	c.regs.WriteCrtc(mode, CRTC_START_ADDRESS_LOW, uint8(offset))
}

// EmulationMode reports whether the card currently decodes the MDA or
// the CGA port range, from miscellaneous output bit 0.
func (c *Controller) EmulationMode() EmulationMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs.EmulationMode()
}

// ActiveMode returns the descriptor of the last mode loaded, or nil
// before the first LoadMode.
func (c *Controller) ActiveMode() *ModeDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// FrameBufferAddr returns the physical address the frame buffer decodes
// at, derived from the memory map select field and the window base.
func (c *Controller) FrameBufferAddr() (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameBufferAddr()
}

func (c *Controller) frameBufferAddr() (uint32, error) {
	if c.relocated {
		return c.memoryStart, nil
	}
	misc, err := c.regs.Read(GroupGraphics, GC_MISCELLANEOUS)
	if err != nil {
		return 0, err
	}
	switch (misc & GC_MISC_MAP_MASK) >> GC_MISC_MAP_SHIFT {
	case 0x0, 0x1:
		return c.memoryStart, nil
	case 0x2:
		return c.memoryStart + (VRAM_WINDOW_MDA - VRAM_WINDOW_64K), nil
	default:
		return c.memoryStart + (VRAM_WINDOW_CGA - VRAM_WINDOW_64K), nil
	}
}

// LoadMode programs every register of the descriptor in the required
// order and records it as the active mode. The screen is blanked for the
// attribute controller pass and re-enabled afterwards.
func (c *Controller) LoadMode(desc *ModeDescriptor) error {
	if desc.Family == FamilyLinear {
		return &HardwareError{
			Operation: "LoadMode",
			Details:   fmt.Sprintf("%s needs a VBE device, not the VGA register file", desc.Name),
			Err:       ErrUnsupportedOperation,
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Miscellaneous output first: it selects the clock and, through bit
	// 0, which CRTC port range the rest of the sequence must use.
	c.regs.WriteMSR(desc.miscOutput)
	mode := c.regs.EmulationMode()

	for _, rv := range desc.sequencer {
		c.regs.writeIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, rv.index, rv.value)
	}

	c.unlockCrtc(mode)
	for _, rv := range desc.crtc {
		c.regs.WriteCrtc(mode, rv.index, rv.value)
	}

	for _, rv := range desc.graphics {
		c.regs.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, rv.index, rv.value)
	}

	// Attribute registers are only writable with video disabled.
	c.regs.BlankScreen(mode)
	for _, rv := range desc.attribute {
		c.regs.writeAttributeRaw(mode, rv.index, rv.value)
	}
	c.regs.UnblankScreen(mode)

	c.regs.LoadPalette(&DefaultPalette)

	c.mode = desc
	return nil
}

// UnlockCrtc clears the CRTC write protect so callers reprogramming
// timing registers directly can reach CR00-CR07.
func (c *Controller) UnlockCrtc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unlockCrtc(c.regs.EmulationMode())
}

// LockCrtc restores the CRTC write protect.
func (c *Controller) LockCrtc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lockCrtc(c.regs.EmulationMode())
}

// unlockCrtc clears the write protect on CRTC 0x00-0x07 so the timing
// registers of a new mode can land.
func (c *Controller) unlockCrtc(mode EmulationMode) {
	protect := c.regs.ReadCrtc(mode, CRTC_VERTICAL_SYNC_END)
	c.regs.WriteCrtc(mode, CRTC_VERTICAL_SYNC_END, protect&^CRTC_PROTECT)
}

// lockCrtc restores the write protect after mode programming. The mode
// tables set it themselves through register 0x11, so this is only needed
// by callers poking timing registers directly.
func (c *Controller) lockCrtc(mode EmulationMode) {
	protect := c.regs.ReadCrtc(mode, CRTC_VERTICAL_SYNC_END)
	c.regs.WriteCrtc(mode, CRTC_VERTICAL_SYNC_END, protect|CRTC_PROTECT)
}

// LoadPalette programs all 256 DAC entries under the controller mutex.
func (c *Controller) LoadPalette(palette *[PALETTE_SIZE]uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regs.LoadPalette(palette)
}

// ReadPalette reads all 256 DAC entries back under the controller mutex.
func (c *Controller) ReadPalette(palette *[PALETTE_SIZE]uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regs.ReadPalette(palette)
}

// LoadFont uploads a glyph set into plane 2, where the character
// generator reads it. Text mode must be active; the plane access
// registers are saved and restored around the upload.
func (c *Controller) LoadFont(font *VGAFont) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == nil || c.mode.Family != FamilyText {
		return &HardwareError{
			Operation: "LoadFont",
			Details:   "font upload requires an active text mode",
			Err:       ErrUnsupportedOperation,
		}
	}

	base, err := c.frameBufferAddr()
	if err != nil {
		return err
	}

	// Save the registers the upload has to repurpose.
	savedPlaneMask := c.regs.readIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_PLANE_MASK)
	savedMemoryMode := c.regs.readIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_MEMORY_MODE)
	savedReadPlane := c.regs.readIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_READ_PLANE_SELECT)
	savedGraphicsMode := c.regs.readIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_GRAPHICS_MODE)
	savedMiscellaneous := c.regs.readIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_MISCELLANEOUS)

	// Plane 2, sequential addressing, odd/even off.
	c.regs.writeIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_PLANE_MASK, uint8(Plane2))
	c.regs.writeIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_MEMORY_MODE, SEQ_MEMMODE_EXT|SEQ_MEMMODE_ODD_EVEN)
	c.regs.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_READ_PLANE_SELECT, uint8(ReadPlane(2)))
	c.regs.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_GRAPHICS_MODE, 0x00)
	c.regs.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_MISCELLANEOUS, savedMiscellaneous&^uint8(GC_MISC_CHAIN_OE))

	// Each character owns a 32-byte slot regardless of glyph height.
	for ch := 0; ch < font.Characters; ch++ {
		slot := base + uint32(ch)*32
		for row := 0; row < font.Height; row++ {
			c.mem.WriteByte(slot+uint32(row), font.Data[ch*font.Height+row])
		}
		for row := font.Height; row < 32; row++ {
			c.mem.WriteByte(slot+uint32(row), 0)
		}
	}

	c.regs.writeIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_PLANE_MASK, savedPlaneMask)
	c.regs.writeIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_MEMORY_MODE, savedMemoryMode)
	c.regs.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_READ_PLANE_SELECT, savedReadPlane)
	c.regs.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_GRAPHICS_MODE, savedGraphicsMode)
	c.regs.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_MISCELLANEOUS, savedMiscellaneous)
	return nil
}
