// registers_test.go - Indexed register protocol tests against the emulated card

package vgacore

import (
	"errors"
	"testing"
)

func TestRegisters_WriteRead_Sequencer(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	if err := regs.Write(GroupSequencer, SEQ_PLANE_MASK, 0x0A); err != nil {
		t.Fatalf("sequencer write: %v", err)
	}
	got, err := regs.Read(GroupSequencer, SEQ_PLANE_MASK)
	if err != nil {
		t.Fatalf("sequencer read: %v", err)
	}
	if got != 0x0A {
		t.Errorf("plane mask: got %#02x, want 0x0a", got)
	}
}

func TestRegisters_WriteRead_Graphics(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	if err := regs.Write(GroupGraphics, GC_BIT_MASK, 0x81); err != nil {
		t.Fatalf("graphics write: %v", err)
	}
	got, err := regs.Read(GroupGraphics, GC_BIT_MASK)
	if err != nil {
		t.Fatalf("graphics read: %v", err)
	}
	if got != 0x81 {
		t.Errorf("bit mask: got %#02x, want 0x81", got)
	}
}

func TestRegisters_IndexPreserved_AcrossGroups(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	// Interleave two groups: each keeps its own current index.
	regs.Write(GroupSequencer, SEQ_CLOCKING_MODE, 0x01)
	regs.Write(GroupGraphics, GC_DATA_ROTATE, 0x03)

	seq, _ := regs.Read(GroupSequencer, SEQ_CLOCKING_MODE)
	gc, _ := regs.Read(GroupGraphics, GC_DATA_ROTATE)
	if seq != 0x01 || gc != 0x03 {
		t.Errorf("interleaved groups: got seq %#02x gc %#02x, want 0x01 0x03", seq, gc)
	}
}

func TestRegisters_ColorGroup_IndexedReadRefused(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	_, err := regs.Read(GroupColor, 0)
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("color group indexed read: got %v, want ErrUnsupportedOperation", err)
	}
}

func TestRegisters_StatusRegisters_WriteRefused(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	if err := regs.Write(GroupGeneral, GEN_ST00, 0xFF); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("ST00 write: got %v, want ErrUnsupportedOperation", err)
	}
	if err := regs.Write(GroupGeneral, GEN_ST01, 0xFF); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("ST01 write: got %v, want ErrUnsupportedOperation", err)
	}
}

func TestRegisters_MSR_RoundTrip(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	regs.WriteMSR(0x63)
	if got := regs.ReadMSR(); got != 0x63 {
		t.Errorf("MSR: got %#02x, want 0x63", got)
	}
	if got := regs.EmulationMode(); got != EmulationCga {
		t.Errorf("emulation mode: got %v, want EmulationCga", got)
	}

	regs.WriteMSR(0x62)
	if got := regs.EmulationMode(); got != EmulationMda {
		t.Errorf("emulation mode after clearing bit 0: got %v, want EmulationMda", got)
	}
}

func TestRegisters_Crtc_FollowsEmulationMode(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	// CGA decode: the 0x3D4 pair answers, the 0x3B4 pair floats.
	regs.WriteMSR(0x63)
	regs.WriteCrtc(EmulationCga, CRTC_START_ADDRESS_LOW, 0x55)
	if got := regs.ReadCrtc(EmulationCga, CRTC_START_ADDRESS_LOW); got != 0x55 {
		t.Errorf("CGA range CRTC: got %#02x, want 0x55", got)
	}
	if got := regs.ReadCrtc(EmulationMda, CRTC_START_ADDRESS_LOW); got != 0xFF {
		t.Errorf("MDA range while CGA decoded: got %#02x, want 0xff (floating)", got)
	}

	// Flip to MDA decode and the ranges swap.
	regs.WriteMSR(0x62)
	regs.WriteCrtc(EmulationMda, CRTC_START_ADDRESS_LOW, 0x66)
	if got := regs.ReadCrtc(EmulationMda, CRTC_START_ADDRESS_LOW); got != 0x66 {
		t.Errorf("MDA range CRTC: got %#02x, want 0x66", got)
	}
}

func TestRegisters_CrtcProtect_GuardsTimingBlock(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)
	regs.WriteMSR(0x63)

	// The card powers up protected: CR00-07 refuse writes.
	regs.WriteCrtc(EmulationCga, CRTC_HORIZONTAL_TOTAL, 0x5F)
	if got := regs.ReadCrtc(EmulationCga, CRTC_HORIZONTAL_TOTAL); got != 0x00 {
		t.Errorf("protected CR00 write landed: got %#02x, want 0x00", got)
	}

	// Clearing CR11 bit 7 opens the block.
	protect := regs.ReadCrtc(EmulationCga, CRTC_VERTICAL_SYNC_END)
	regs.WriteCrtc(EmulationCga, CRTC_VERTICAL_SYNC_END, protect&^uint8(CRTC_PROTECT))
	regs.WriteCrtc(EmulationCga, CRTC_HORIZONTAL_TOTAL, 0x5F)
	if got := regs.ReadCrtc(EmulationCga, CRTC_HORIZONTAL_TOTAL); got != 0x5F {
		t.Errorf("unprotected CR00 write: got %#02x, want 0x5f", got)
	}
}

func TestRegisters_Attribute_FlipFlopSequencing(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)
	regs.WriteMSR(0x63)

	regs.WriteAttribute(EmulationCga, ATTR_OVERSCAN_COLOR, 0x2A)
	if got := regs.ReadAttribute(EmulationCga, ATTR_OVERSCAN_COLOR); got != 0x2A {
		t.Errorf("overscan color: got %#02x, want 0x2a", got)
	}

	// A second full write works only if each access re-arms the
	// flip-flop through ST01.
	regs.WriteAttribute(EmulationCga, ATTR_MODE_CONTROL, 0x0C)
	if got := regs.ReadAttribute(EmulationCga, ATTR_MODE_CONTROL); got != 0x0C {
		t.Errorf("mode control: got %#02x, want 0x0c", got)
	}
}

func TestRegisters_BlankUnblank_TogglesVideoEnable(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)
	regs.WriteMSR(0x63)

	regs.BlankScreen(EmulationCga)
	if card.attrIndex&ATTR_VIDEO_ENABLE != 0 {
		t.Error("video enable still set after BlankScreen")
	}
	regs.UnblankScreen(EmulationCga)
	if card.attrIndex&ATTR_VIDEO_ENABLE == 0 {
		t.Error("video enable clear after UnblankScreen")
	}
}

func TestRegisters_Palette_RoundTrip(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	var out [PALETTE_SIZE]uint8
	for i := range out {
		out[i] = uint8(i) & 0x3F
	}
	regs.LoadPalette(&out)

	var in [PALETTE_SIZE]uint8
	regs.ReadPalette(&in)
	if in != out {
		t.Error("palette read back differs from palette written")
	}
}

func TestRegisters_SetWriteMode_PreservesOtherFields(t *testing.T) {
	card := NewEmulatedCard()
	regs := NewRegisters(card)

	regs.Write(GroupGraphics, GC_GRAPHICS_MODE, GC_MODE_SHIFT_256)
	regs.SetWriteMode(WriteMode2)

	got, _ := regs.Read(GroupGraphics, GC_GRAPHICS_MODE)
	if got != GC_MODE_SHIFT_256|uint8(WriteMode2) {
		t.Errorf("graphics mode: got %#02x, want shift256 with write mode 2", got)
	}
}
