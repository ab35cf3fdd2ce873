// controller_test.go - Mode programming and memory window tests

package vgacore

import (
	"errors"
	"sync"
	"testing"
)

func TestController_LoadMode_ProgramsRegisterFile(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	if err := ctrl.LoadMode(ModeGraphics320x200x256); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}

	if card.miscOutput != 0x63 {
		t.Errorf("misc output: got %#02x, want 0x63", card.miscOutput)
	}
	if card.seq[SEQ_MEMORY_MODE] != 0x0E {
		t.Errorf("sequencer memory mode: got %#02x, want 0x0e", card.seq[SEQ_MEMORY_MODE])
	}
	if card.crtc[CRTC_HORIZONTAL_TOTAL] != 0x5F {
		t.Errorf("CR00: got %#02x, want 0x5f (timing block stayed protected?)", card.crtc[CRTC_HORIZONTAL_TOTAL])
	}
	if card.gc[GC_GRAPHICS_MODE] != 0x40 {
		t.Errorf("graphics mode: got %#02x, want 0x40", card.gc[GC_GRAPHICS_MODE])
	}
	if card.attrIndex&ATTR_VIDEO_ENABLE == 0 {
		t.Error("video disabled after LoadMode")
	}
	if got := ctrl.ActiveMode(); got != ModeGraphics320x200x256 {
		t.Errorf("active mode: got %v, want ModeGraphics320x200x256", got)
	}
}

func TestController_LoadMode_ReloadsDefaultPalette(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	if err := ctrl.LoadMode(ModeGraphics320x200x256); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}
	var palette [PALETTE_SIZE]uint8
	ctrl.ReadPalette(&palette)
	if palette != DefaultPalette {
		t.Error("DAC does not hold the default palette after LoadMode")
	}
}

func TestController_LoadMode_LinearNeedsVbe(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	err := ctrl.LoadMode(ModeGraphics1280x800x256)
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("linear mode through the register file: got %v, want ErrUnsupportedOperation", err)
	}
}

func TestController_ModeSwitch_NoResidue(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	// Mode A, then mode B over it. The rendered geometry must be
	// entirely mode B's.
	if err := ctrl.LoadMode(ModeGraphics640x480x16); err != nil {
		t.Fatalf("LoadMode 12h: %v", err)
	}
	if err := ctrl.LoadMode(ModeGraphics320x200x256); err != nil {
		t.Fatalf("LoadMode 13h: %v", err)
	}

	frame := card.Render()
	size := frame.Bounds().Size()
	if size.X != 320 || size.Y != 200 {
		t.Errorf("rendered geometry: got %dx%d, want 320x200", size.X, size.Y)
	}
}

func TestController_FrameBufferAddr_FollowsMapSelect(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	if err := ctrl.LoadMode(ModeGraphics320x200x256); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}
	addr, err := ctrl.FrameBufferAddr()
	if err != nil {
		t.Fatalf("FrameBufferAddr: %v", err)
	}
	if addr != 0xA0000 {
		t.Errorf("graphics window: got %#x, want 0xa0000", addr)
	}

	if err := ctrl.LoadMode(ModeText80x25); err != nil {
		t.Fatalf("LoadMode text: %v", err)
	}
	addr, err = ctrl.FrameBufferAddr()
	if err != nil {
		t.Fatalf("FrameBufferAddr: %v", err)
	}
	if addr != 0xB8000 {
		t.Errorf("color text window: got %#x, want 0xb8000", addr)
	}
}

// recordingMemory captures addressed writes for window relocation tests.
type recordingMemory struct {
	writes map[uint32]uint8
}

func newRecordingMemory() *recordingMemory {
	return &recordingMemory{writes: make(map[uint32]uint8)}
}

func (m *recordingMemory) ReadByte(addr uint32) uint8 {
	return m.writes[addr]
}

func (m *recordingMemory) WriteByte(addr uint32, value uint8) {
	m.writes[addr] = value
}

func TestController_SetMemoryStart_RelocatesWindow(t *testing.T) {
	card := NewEmulatedCard()
	mem := newRecordingMemory()
	ctrl := NewController(card, mem)

	if err := ctrl.LoadMode(ModeText80x25); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}
	ctrl.SetMemoryStart(0xB0000)

	// Logical offset 0 now resolves to 0xB0000 exactly.
	screen := NewText80x25(ctrl)
	if err := screen.WriteCharacter(0, 0, NewScreenCharacter('A', White, Black)); err != nil {
		t.Fatalf("WriteCharacter: %v", err)
	}
	if got := mem.writes[0xB0000]; got != 'A' {
		t.Errorf("cell 0 character byte at 0xb0000: got %#02x, want 'A'", got)
	}
	if got := mem.writes[0xB0001]; got != uint8(NewTextAttribute(White, Black)) {
		t.Errorf("cell 0 attribute byte at 0xb0001: got %#02x", got)
	}
}

func TestController_SetMemoryStart_ProgramsStartAddress(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	if err := ctrl.LoadMode(ModeGraphics320x200x256); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}
	ctrl.SetMemoryStart(0xA2000)

	high := card.crtc[CRTC_START_ADDRESS_HIGH]
	low := card.crtc[CRTC_START_ADDRESS_LOW]
	if got := uint16(high)<<8 | uint16(low); got != 0x2000 {
		t.Errorf("CRTC start address: got %#04x, want 0x2000", got)
	}
}

func TestController_LoadFont_RequiresTextMode(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	if err := ctrl.LoadMode(ModeGraphics320x200x256); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}
	if err := ctrl.LoadFont(Font8x16); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("LoadFont in graphics mode: got %v, want ErrUnsupportedOperation", err)
	}
}

func TestController_LoadFont_FillsPlane2Slots(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	if err := ctrl.LoadMode(ModeText80x25); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}
	if err := ctrl.LoadFont(Font8x16); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	// 'A' sits in its 32-byte slot with the glyph rows first.
	glyph, err := Font8x16.Glyph('A')
	if err != nil {
		t.Fatalf("Glyph: %v", err)
	}
	slot := card.Plane(2, int('A')*32+32)[int('A')*32:]
	for row := 0; row < 16; row++ {
		if slot[row] != glyph[row] {
			t.Fatalf("plane 2 glyph row %d: got %#02x, want %#02x", row, slot[row], glyph[row])
		}
	}

	// The upload restores the text mode plane access registers.
	if card.seq[SEQ_PLANE_MASK] != 0x03 {
		t.Errorf("plane mask after LoadFont: got %#02x, want 0x03", card.seq[SEQ_PLANE_MASK])
	}
	if card.seq[SEQ_MEMORY_MODE] != 0x02 {
		t.Errorf("memory mode after LoadFont: got %#02x, want 0x02", card.seq[SEQ_MEMORY_MODE])
	}
}

func TestController_ConcurrentWriters_NoTornSequences(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)

	if err := ctrl.LoadMode(ModeGraphics640x480x16); err != nil {
		t.Fatalf("LoadMode: %v", err)
	}
	screen := NewGraphics640x480x16(ctrl)

	// Two goroutines hammer disjoint pixels of the same byte column.
	// With the guard covering the whole planar protocol, both colors
	// land intact.
	var wg sync.WaitGroup
	for worker := 0; worker < 2; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			color := uint8(worker + 1)
			for y := worker; y < 100; y += 2 {
				for x := 0; x < 16; x++ {
					screen.SetPixel(x, y, color)
				}
			}
		}(worker)
	}
	wg.Wait()

	for y := 0; y < 100; y++ {
		want := uint8(y%2 + 1)
		for x := 0; x < 16; x++ {
			got, err := screen.Pixel(x, y)
			if err != nil {
				t.Fatalf("Pixel(%d,%d): %v", x, y, err)
			}
			if got != want {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}
