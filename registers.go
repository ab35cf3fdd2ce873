// registers.go - Indexed register protocol for the VGA register groups

/*
Every VGA register group multiplexes dozens of registers behind one index
port and one data port. A register access is always the same two bus
cycles: write the register index to the index port, then transfer the data
byte through the data port. The attribute controller is the one oddball:
it shares 0x3C0 for index AND data writes, sequenced by an internal
flip-flop which reading the ST01 status register resets.

Registers performs the raw cycles only. It holds no lock of its own; the
owning Controller serializes access so that no two index/data sequences
interleave on the same port pair.
*/

package vgacore

// RegisterGroup identifies one of the multiplexed register files.
type RegisterGroup uint8

const (
	GroupSequencer RegisterGroup = iota
	GroupCrtc
	GroupGraphics
	GroupAttribute
	GroupGeneral
	GroupColor
)

func (g RegisterGroup) String() string {
	switch g {
	case GroupSequencer:
		return "sequencer"
	case GroupCrtc:
		return "crtc"
	case GroupGraphics:
		return "graphics controller"
	case GroupAttribute:
		return "attribute controller"
	case GroupGeneral:
		return "general"
	case GroupColor:
		return "color"
	default:
		return "unknown"
	}
}

// Pseudo-indices for the GroupGeneral registers, which are not behind an
// index port but still addressed uniformly through Read/Write.
const (
	GEN_MSR  = 0x00 // Miscellaneous output
	GEN_FCR  = 0x01 // Feature control
	GEN_ST00 = 0x02 // Input status 0 (read-only)
	GEN_ST01 = 0x03 // Input status 1 (read-only)
)

// EmulationMode selects between the CGA-compatible and MDA-compatible
// register ranges, per MSR bit 0.
type EmulationMode uint8

const (
	EmulationMda EmulationMode = 0x0
	EmulationCga EmulationMode = 0x1
)

// PlaneMask selects which of the four memory planes host writes reach.
type PlaneMask uint8

const (
	PlaneNone PlaneMask = 0x0
	Plane0    PlaneMask = 0x1
	Plane1    PlaneMask = 0x2
	Plane2    PlaneMask = 0x4
	Plane3    PlaneMask = 0x8
	AllPlanes PlaneMask = 0xF
)

// ReadPlane selects the plane returned by host reads in read mode 0.
type ReadPlane uint8

// WriteMode selects how the graphics controller combines host data,
// latches and set/reset on frame buffer writes.
type WriteMode uint8

const (
	// WriteMode0 writes rotated host data; planes enabled for set/reset
	// take the set/reset value instead.
	WriteMode0 WriteMode = 0x0
	// WriteMode1 copies the latches back, ignoring host data.
	WriteMode1 WriteMode = 0x1
	// WriteMode2 expands the low 4 host bits to one bit per plane, under
	// the bit mask; masked-off bits come from the latches.
	WriteMode2 WriteMode = 0x2
	// WriteMode3 ANDs host data with the bit mask and writes set/reset
	// through the result.
	WriteMode3 WriteMode = 0x3
)

// Registers drives the two-phase indexed register protocol over a raw
// port capability. It is the only component that touches ports.
type Registers struct {
	ports PortIO
}

// NewRegisters wraps the given port capability.
func NewRegisters(ports PortIO) *Registers {
	return &Registers{ports: ports}
}

// EmulationMode reports the active register range per MSR bit 0.
func (r *Registers) EmulationMode() EmulationMode {
	return EmulationMode(r.ReadMSR() & 0x1)
}

// Read returns the value of the register selected by group and index.
// The color group has no indexed read path (palette transfers stream
// through the DAC protocol); reading it reports ErrUnsupportedOperation
// rather than returning stale data.
func (r *Registers) Read(group RegisterGroup, index uint8) (uint8, error) {
	switch group {
	case GroupSequencer:
		return r.readIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, index), nil
	case GroupCrtc:
		return r.ReadCrtc(r.EmulationMode(), index), nil
	case GroupGraphics:
		return r.readIndexed(GC_INDEX_PORT, GC_DATA_PORT, index), nil
	case GroupAttribute:
		return r.ReadAttribute(r.EmulationMode(), index), nil
	case GroupGeneral:
		switch index {
		case GEN_MSR:
			return r.ReadMSR(), nil
		case GEN_FCR:
			return r.ports.ReadPort(FCR_READ_PORT), nil
		case GEN_ST00:
			return r.ports.ReadPort(ST00_READ_PORT), nil
		case GEN_ST01:
			return r.ReadST01(r.EmulationMode()), nil
		}
	case GroupColor:
		return 0, &HardwareError{
			Operation: "register read",
			Details:   "color group is stream-addressed, use ReadPalette",
			Err:       ErrUnsupportedOperation,
		}
	}
	return 0, &HardwareError{
		Operation: "register read",
		Details:   "unknown register " + group.String(),
		Err:       ErrUnsupportedOperation,
	}
}

// Write programs the register selected by group and index. The two-phase
// index/data sequence is atomic relative to other callers as long as the
// owning Controller's guard is held.
func (r *Registers) Write(group RegisterGroup, index uint8, value uint8) error {
	switch group {
	case GroupSequencer:
		r.writeIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, index, value)
		return nil
	case GroupCrtc:
		r.WriteCrtc(r.EmulationMode(), index, value)
		return nil
	case GroupGraphics:
		r.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, index, value)
		return nil
	case GroupAttribute:
		r.WriteAttribute(r.EmulationMode(), index, value)
		return nil
	case GroupGeneral:
		switch index {
		case GEN_MSR:
			r.WriteMSR(value)
			return nil
		case GEN_FCR:
			if r.EmulationMode() == EmulationCga {
				r.ports.WritePort(FCR_WRITE_CGA_PORT, value)
			} else {
				r.ports.WritePort(FCR_WRITE_MDA_PORT, value)
			}
			return nil
		case GEN_ST00, GEN_ST01:
			return &HardwareError{
				Operation: "register write",
				Details:   "status registers are read-only",
				Err:       ErrUnsupportedOperation,
			}
		}
	case GroupColor:
		return &HardwareError{
			Operation: "register write",
			Details:   "color group is stream-addressed, use LoadPalette",
			Err:       ErrUnsupportedOperation,
		}
	}
	return &HardwareError{
		Operation: "register write",
		Details:   "unknown register " + group.String(),
		Err:       ErrUnsupportedOperation,
	}
}

func (r *Registers) readIndexed(indexPort, dataPort uint16, index uint8) uint8 {
	r.ports.WritePort(indexPort, index)
	return r.ports.ReadPort(dataPort)
}

func (r *Registers) writeIndexed(indexPort, dataPort uint16, index, value uint8) {
	r.ports.WritePort(indexPort, index)
	r.ports.WritePort(dataPort, value)
}

// ReadMSR returns the miscellaneous output register.
func (r *Registers) ReadMSR() uint8 {
	return r.ports.ReadPort(MSR_READ_PORT)
}

// WriteMSR programs the miscellaneous output register.
func (r *Registers) WriteMSR(value uint8) {
	r.ports.WritePort(MSR_WRITE_PORT, value)
}

// ReadST01 returns input status 1 for the given emulation mode. Reading
// it also resets the attribute controller's index/data flip-flop.
func (r *Registers) ReadST01(mode EmulationMode) uint8 {
	if mode == EmulationCga {
		return r.ports.ReadPort(ST01_READ_CGA_PORT)
	}
	return r.ports.ReadPort(ST01_READ_MDA_PORT)
}

// ReadCrtc reads a CRTC register through the port pair matching mode.
func (r *Registers) ReadCrtc(mode EmulationMode, index uint8) uint8 {
	if mode == EmulationCga {
		return r.readIndexed(CRTC_INDEX_CGA_PORT, CRTC_DATA_CGA_PORT, index)
	}
	return r.readIndexed(CRTC_INDEX_MDA_PORT, CRTC_DATA_MDA_PORT, index)
}

// WriteCrtc writes a CRTC register through the port pair matching mode.
func (r *Registers) WriteCrtc(mode EmulationMode, index, value uint8) {
	if mode == EmulationCga {
		r.writeIndexed(CRTC_INDEX_CGA_PORT, CRTC_DATA_CGA_PORT, index, value)
	} else {
		r.writeIndexed(CRTC_INDEX_MDA_PORT, CRTC_DATA_MDA_PORT, index, value)
	}
}

// ReadAttribute reads an attribute controller register. The ST01 read
// first puts the flip-flop in a known state so the index write lands as
// an index.
func (r *Registers) ReadAttribute(mode EmulationMode, index uint8) uint8 {
	r.ReadST01(mode)
	r.ports.WritePort(ATTR_INDEX_PORT, index|ATTR_VIDEO_ENABLE)
	return r.ports.ReadPort(ATTR_DATA_PORT)
}

// WriteAttribute writes an attribute controller register. Both the index
// and the data cycle go through port 0x3C0, alternated by the flip-flop.
func (r *Registers) WriteAttribute(mode EmulationMode, index, value uint8) {
	r.ReadST01(mode)
	r.ports.WritePort(ATTR_INDEX_PORT, index|ATTR_VIDEO_ENABLE)
	r.ports.WritePort(ATTR_INDEX_PORT, value)
}

// writeAttributeRaw writes an attribute register without forcing the
// video enable bit. Mode programming uses it while the screen is blanked
// so the palette registers stay host-accessible.
func (r *Registers) writeAttributeRaw(mode EmulationMode, index, value uint8) {
	r.ReadST01(mode)
	r.ports.WritePort(ATTR_INDEX_PORT, index)
	r.ports.WritePort(ATTR_INDEX_PORT, value)
}

// BlankScreen clears the attribute video enable bit, blanking output and
// unlocking the palette registers for programming.
func (r *Registers) BlankScreen(mode EmulationMode) {
	r.ReadST01(mode)
	r.ports.WritePort(ATTR_INDEX_PORT, 0x00)
}

// UnblankScreen restores the video enable bit after mode programming.
func (r *Registers) UnblankScreen(mode EmulationMode) {
	r.ReadST01(mode)
	r.ports.WritePort(ATTR_INDEX_PORT, ATTR_VIDEO_ENABLE)
}

// SetPlaneMask programs the sequencer map mask, preserving the reserved
// high nibble.
func (r *Registers) SetPlaneMask(mask PlaneMask) {
	original := r.readIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_PLANE_MASK) & 0xF0
	r.writeIndexed(SEQ_INDEX_PORT, SEQ_DATA_PORT, SEQ_PLANE_MASK, original|uint8(mask))
}

// SetBitMask programs the graphics controller bit mask register.
func (r *Registers) SetBitMask(mask uint8) {
	r.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_BIT_MASK, mask)
}

// SetWriteMode selects the frame buffer write mode, preserving the other
// graphics mode fields.
func (r *Registers) SetWriteMode(mode WriteMode) {
	original := r.readIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_GRAPHICS_MODE) &^ uint8(GC_MODE_WRITE_MASK)
	r.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_GRAPHICS_MODE, original|uint8(mode))
}

// WriteSetReset programs the set/reset plane values with a 4-bit color.
func (r *Registers) WriteSetReset(color Color16) {
	original := r.readIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_SET_RESET) & 0xF0
	r.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_SET_RESET, original|uint8(color))
}

// WriteEnableSetReset selects which planes take the set/reset value in
// write mode 0.
func (r *Registers) WriteEnableSetReset(planes PlaneMask) {
	original := r.readIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_ENABLE_SET_RESET) & 0xF0
	r.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_ENABLE_SET_RESET, original|uint8(planes))
}

// SetReadPlane selects the plane returned by diagnostic host reads.
func (r *Registers) SetReadPlane(plane ReadPlane) {
	r.writeIndexed(GC_INDEX_PORT, GC_DATA_PORT, GC_READ_PLANE_SELECT, uint8(plane)&0x3)
}

// LoadPalette streams all 256 palette entries (6-bit R, G, B each)
// through the DAC starting at index 0.
func (r *Registers) LoadPalette(palette *[PALETTE_SIZE]uint8) {
	r.ports.WritePort(DAC_INDEX_WRITE_PORT, 0)
	for _, value := range palette {
		r.ports.WritePort(DAC_DATA_PORT, value)
	}
}

// ReadPalette fills palette with all 256 entries read back from the DAC.
func (r *Registers) ReadPalette(palette *[PALETTE_SIZE]uint8) {
	r.ports.WritePort(DAC_INDEX_READ_PORT, 0)
	for i := range palette {
		palette[i] = r.ports.ReadPort(DAC_DATA_PORT)
	}
}
