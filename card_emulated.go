// card_emulated.go - In-memory VGA card implementing the port and memory capability

/*
EmulatedCard decodes the port map and the plane memory model of a real
card: indexed register files behind shared port pairs, the attribute
flip-flop, the DAC auto-increment state machine, CRTC write protect,
and the full write mode 0-3 data path with latches, set/reset, rotate
and bit mask. It backs the demo display and doubles as the hardware
stand-in for the package tests.
*/

package vgacore

import "sync"

// EmulatedCard is a software VGA card with 256KB of plane memory.
type EmulatedCard struct {
	mu sync.Mutex

	miscOutput uint8
	featureCtl uint8

	seqIndex uint8
	seq      [8]uint8

	crtcIndex uint8
	crtc      [0x25]uint8

	gcIndex uint8
	gc      [9]uint8

	attrIndex    uint8
	attr         [0x15]uint8
	attrFlipFlop bool // false: next 0x3C0 write is an index

	dacMask       uint8
	dacReadIndex  uint8
	dacWriteIndex uint8
	dacComponent  uint8
	dacState      uint8 // 0 after read setup, 3 after write setup
	palette       [PALETTE_SIZE]uint8

	latches [PLANE_COUNT]uint8
	planes  [PLANE_COUNT][PLANE_SIZE]uint8

	retraceToggle bool
}

// NewEmulatedCard powers up a card with text mode defaults loose enough
// that a LoadMode sequence fully determines the state.
func NewEmulatedCard() *EmulatedCard {
	card := &EmulatedCard{
		miscOutput: 0x67,
		dacMask:    0xFF,
	}
	card.crtc[CRTC_VERTICAL_SYNC_END] = CRTC_PROTECT
	return card
}

var (
	_ PortIO   = (*EmulatedCard)(nil)
	_ MemoryIO = (*EmulatedCard)(nil)
)

func (c *EmulatedCard) crtcDecoded(port uint16) bool {
	// Miscellaneous output bit 0 selects which address range the CRTC
	// and input status answer on.
	cga := c.miscOutput&0x01 != 0
	switch port {
	case CRTC_INDEX_CGA_PORT, CRTC_DATA_CGA_PORT, ST01_READ_CGA_PORT:
		return cga
	case CRTC_INDEX_MDA_PORT, CRTC_DATA_MDA_PORT, ST01_READ_MDA_PORT:
		return !cga
	default:
		return false
	}
}

// WritePort decodes one host out instruction.
func (c *EmulatedCard) WritePort(port uint16, value uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch port {
	case ST00_READ_PORT: // write side is miscellaneous output
		c.miscOutput = value
	case SEQ_INDEX_PORT:
		c.seqIndex = value
	case SEQ_DATA_PORT:
		if int(c.seqIndex) < len(c.seq) {
			c.seq[c.seqIndex] = value
		}
	case GC_INDEX_PORT:
		c.gcIndex = value
	case GC_DATA_PORT:
		if int(c.gcIndex) < len(c.gc) {
			c.gc[c.gcIndex] = value
		}
	case ATTR_INDEX_PORT:
		if !c.attrFlipFlop {
			c.attrIndex = value
		} else if int(c.attrIndex&0x1F) < len(c.attr) {
			c.attr[c.attrIndex&0x1F] = value
		}
		c.attrFlipFlop = !c.attrFlipFlop
	case DAC_MASK_PORT:
		c.dacMask = value
	case DAC_INDEX_READ_PORT:
		c.dacReadIndex = value
		c.dacComponent = 0
		c.dacState = 0
	case DAC_INDEX_WRITE_PORT:
		c.dacWriteIndex = value
		c.dacComponent = 0
		c.dacState = 3
	case DAC_DATA_PORT:
		offset := int(c.dacWriteIndex)*3 + int(c.dacComponent)
		c.palette[offset] = value & 0x3F
		c.dacComponent++
		if c.dacComponent == 3 {
			c.dacComponent = 0
			c.dacWriteIndex++
		}
	case FCR_WRITE_CGA_PORT, FCR_WRITE_MDA_PORT:
		c.featureCtl = value
	default:
		if c.crtcDecoded(port) {
			switch port {
			case CRTC_INDEX_CGA_PORT, CRTC_INDEX_MDA_PORT:
				c.crtcIndex = value
			case CRTC_DATA_CGA_PORT, CRTC_DATA_MDA_PORT:
				c.writeCrtcData(value)
			}
		}
	}
}

// writeCrtcData honors the CR11 write protect over the timing block.
// Bit 4 of the overflow register stays writable while protected.
func (c *EmulatedCard) writeCrtcData(value uint8) {
	index := c.crtcIndex
	if int(index) >= len(c.crtc) {
		return
	}
	if c.crtc[CRTC_VERTICAL_SYNC_END]&CRTC_PROTECT != 0 && index <= CRTC_OVERFLOW {
		if index == CRTC_OVERFLOW {
			c.crtc[index] = (c.crtc[index] &^ uint8(0x10)) | (value & 0x10)
		}
		return
	}
	c.crtc[index] = value
}

// ReadPort decodes one host in instruction. Unmapped ports float high.
func (c *EmulatedCard) ReadPort(port uint16) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch port {
	case ST00_READ_PORT:
		return 0x10 // switch sense set, no interrupt pending
	case MSR_READ_PORT:
		return c.miscOutput
	case FCR_READ_PORT:
		return c.featureCtl
	case SEQ_INDEX_PORT:
		return c.seqIndex
	case SEQ_DATA_PORT:
		if int(c.seqIndex) < len(c.seq) {
			return c.seq[c.seqIndex]
		}
		return 0xFF
	case GC_INDEX_PORT:
		return c.gcIndex
	case GC_DATA_PORT:
		if int(c.gcIndex) < len(c.gc) {
			return c.gc[c.gcIndex]
		}
		return 0xFF
	case ATTR_INDEX_PORT:
		return c.attrIndex
	case ATTR_DATA_PORT:
		if int(c.attrIndex&0x1F) < len(c.attr) {
			return c.attr[c.attrIndex&0x1F]
		}
		return 0xFF
	case DAC_MASK_PORT:
		return c.dacMask
	case DAC_INDEX_READ_PORT:
		return c.dacState
	case DAC_DATA_PORT:
		offset := int(c.dacReadIndex)*3 + int(c.dacComponent)
		value := c.palette[offset]
		c.dacComponent++
		if c.dacComponent == 3 {
			c.dacComponent = 0
			c.dacReadIndex++
		}
		return value
	default:
		if c.crtcDecoded(port) {
			switch port {
			case CRTC_INDEX_CGA_PORT, CRTC_INDEX_MDA_PORT:
				return c.crtcIndex
			case CRTC_DATA_CGA_PORT, CRTC_DATA_MDA_PORT:
				if int(c.crtcIndex) < len(c.crtc) {
					return c.crtc[c.crtcIndex]
				}
				return 0xFF
			case ST01_READ_CGA_PORT, ST01_READ_MDA_PORT:
				// Reading input status 1 arms the attribute flip-flop
				// for an index write. The retrace bits toggle so
				// pollers make progress.
				c.attrFlipFlop = false
				c.retraceToggle = !c.retraceToggle
				if c.retraceToggle {
					return 0x09
				}
				return 0x00
			}
		}
		return 0xFF
	}
}

// windowOffset maps a physical address into the plane-relative offset of
// the currently decoded memory window, or false when the address misses
// the window.
func (c *EmulatedCard) windowOffset(addr uint32) (uint32, bool) {
	mapSelect := (c.gc[GC_MISCELLANEOUS] & GC_MISC_MAP_MASK) >> GC_MISC_MAP_SHIFT
	switch mapSelect {
	case 0x0:
		if addr >= VRAM_WINDOW_64K && addr < VRAM_WINDOW_64K+0x20000 {
			return addr - VRAM_WINDOW_64K, true
		}
	case 0x1:
		if addr >= VRAM_WINDOW_64K && addr < VRAM_WINDOW_64K+PLANE_SIZE {
			return addr - VRAM_WINDOW_64K, true
		}
	case 0x2:
		if addr >= VRAM_WINDOW_MDA && addr < VRAM_WINDOW_MDA+0x8000 {
			return addr - VRAM_WINDOW_MDA, true
		}
	case 0x3:
		if addr >= VRAM_WINDOW_CGA && addr < VRAM_WINDOW_CGA+0x8000 {
			return addr - VRAM_WINDOW_CGA, true
		}
	}
	return 0, false
}

// planeAddress applies the chaining mode to a window offset: which plane
// the host byte reaches and at what plane-internal offset.
func (c *EmulatedCard) planeAddress(offset uint32) (plane uint8, planeOffset uint32, chained bool) {
	switch {
	case c.seq[SEQ_MEMORY_MODE]&SEQ_MEMMODE_CHAIN4 != 0:
		return uint8(offset & 3), (offset >> 2) & (PLANE_SIZE - 1), true
	case c.seq[SEQ_MEMORY_MODE]&SEQ_MEMMODE_ODD_EVEN == 0:
		// Odd/even host addressing: even bytes to plane 0, odd to 1
		// (2 and 3 behind them).
		return uint8(offset & 1), (offset >> 1) & (PLANE_SIZE - 1), true
	default:
		return 0, offset & (PLANE_SIZE - 1), false
	}
}

// ReadByte runs the host read data path: the latches always load from
// all four planes, and the returned byte follows the read mode.
func (c *EmulatedCard) ReadByte(addr uint32) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	offset, ok := c.windowOffset(addr)
	if !ok {
		return 0xFF
	}
	plane, planeOffset, chained := c.planeAddress(offset)
	for i := 0; i < PLANE_COUNT; i++ {
		c.latches[i] = c.planes[i][planeOffset]
	}

	if c.gc[GC_GRAPHICS_MODE]&GC_MODE_READ_1 != 0 {
		// Read mode 1: per-bit color compare across the planes.
		compare := c.gc[GC_COLOR_COMPARE]
		dontCare := c.gc[GC_COLOR_DONT_CARE]
		var result uint8 = 0xFF
		for i := 0; i < PLANE_COUNT; i++ {
			if dontCare&(1<<i) == 0 {
				continue
			}
			planeBits := c.latches[i]
			if compare&(1<<i) == 0 {
				planeBits = ^planeBits
			}
			result &= planeBits
		}
		return result
	}

	if chained {
		return c.planes[plane][planeOffset]
	}
	return c.latches[c.gc[GC_READ_PLANE_SELECT]&0x3]
}

// WriteByte runs the host write data path for the active write mode.
func (c *EmulatedCard) WriteByte(addr uint32, value uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()

	offset, ok := c.windowOffset(addr)
	if !ok {
		return
	}
	plane, planeOffset, chained := c.planeAddress(offset)

	mapMask := c.seq[SEQ_PLANE_MASK] & 0x0F
	if chained {
		// Chained addressing steers the byte to a single plane; the map
		// mask still gates it.
		if mapMask&(1<<plane) != 0 {
			c.planes[plane][planeOffset] = value
		}
		return
	}

	writeMode := c.gc[GC_GRAPHICS_MODE] & GC_MODE_WRITE_MASK
	rotate := c.gc[GC_DATA_ROTATE] & 0x07
	logicOp := (c.gc[GC_DATA_ROTATE] >> 3) & 0x03
	bitMask := c.gc[GC_BIT_MASK]
	setReset := c.gc[GC_SET_RESET]
	enableSetReset := c.gc[GC_ENABLE_SET_RESET]

	for i := 0; i < PLANE_COUNT; i++ {
		if mapMask&(1<<i) == 0 {
			continue
		}

		var data uint8
		switch writeMode {
		case 0x0:
			data = value>>rotate | value<<(8-rotate)
			if enableSetReset&(1<<i) != 0 {
				data = expandBit(setReset, uint8(i))
			}
		case 0x1:
			c.planes[i][planeOffset] = c.latches[i]
			continue
		case 0x2:
			data = expandBit(value, uint8(i))
		case 0x3:
			data = expandBit(setReset, uint8(i))
		}

		if writeMode != 0x3 {
			switch logicOp {
			case 0x1:
				data &= c.latches[i]
			case 0x2:
				data |= c.latches[i]
			case 0x3:
				data ^= c.latches[i]
			}
		}

		mask := bitMask
		if writeMode == 0x3 {
			mask &= value>>rotate | value<<(8-rotate)
		}
		c.planes[i][planeOffset] = (data & mask) | (c.latches[i] &^ mask)
	}
}

// expandBit replicates bit n of value across a full byte.
func expandBit(value, n uint8) uint8 {
	if value&(1<<n) != 0 {
		return 0xFF
	}
	return 0x00
}

// Plane returns a copy of one plane's first n bytes, for inspection.
func (c *EmulatedCard) Plane(plane int, n int) []uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]uint8, n)
	copy(out, c.planes[plane][:n])
	return out
}
