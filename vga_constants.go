// vga_constants.go - VGA register port addresses, indices and bit fields

package vgacore

// Register group I/O ports. The CRTC and a couple of the general registers
// exist twice: once in the CGA-compatible range (0x3Dx) and once in the
// MDA-compatible range (0x3Bx). Which pair responds is selected by bit 0 of
// the Miscellaneous Output Register.
const (
	ST00_READ_PORT     = 0x3C2
	ST01_READ_CGA_PORT = 0x3DA
	ST01_READ_MDA_PORT = 0x3BA
	FCR_READ_PORT      = 0x3CA
	FCR_WRITE_CGA_PORT = 0x3DA
	FCR_WRITE_MDA_PORT = 0x3BA
	MSR_READ_PORT      = 0x3CC
	MSR_WRITE_PORT     = 0x3C2

	SEQ_INDEX_PORT = 0x3C4
	SEQ_DATA_PORT  = 0x3C5

	GC_INDEX_PORT = 0x3CE
	GC_DATA_PORT  = 0x3CF

	// The attribute controller shares 0x3C0 as both index and data write
	// port, sequenced by an internal flip-flop that reading ST01 resets.
	ATTR_INDEX_PORT = 0x3C0
	ATTR_DATA_PORT  = 0x3C1

	CRTC_INDEX_CGA_PORT = 0x3D4
	CRTC_DATA_CGA_PORT  = 0x3D5
	CRTC_INDEX_MDA_PORT = 0x3B4
	CRTC_DATA_MDA_PORT  = 0x3B5

	DAC_MASK_PORT        = 0x3C6
	DAC_INDEX_READ_PORT  = 0x3C7
	DAC_INDEX_WRITE_PORT = 0x3C8
	DAC_DATA_PORT        = 0x3C9
)

// Sequencer register indices
const (
	SEQ_RESET         = 0x00 // Sequencer reset
	SEQ_CLOCKING_MODE = 0x01 // Clocking mode
	SEQ_PLANE_MASK    = 0x02 // Map mask (which planes host writes reach)
	SEQ_CHARACTER_MAP = 0x03 // Character map select
	SEQ_MEMORY_MODE   = 0x04 // Memory mode
	SEQ_COUNTER_RESET = 0x07 // Horizontal character counter reset
)

// Sequencer memory mode bits
const (
	SEQ_MEMMODE_EXT      = 1 << 1 // Extended (256KB) memory
	SEQ_MEMMODE_ODD_EVEN = 1 << 2 // Odd/even host addressing disable
	SEQ_MEMMODE_CHAIN4   = 1 << 3 // Chain-4 (Mode 13h linear addressing)
)

// Graphics controller register indices
const (
	GC_SET_RESET         = 0x00 // Set/Reset plane values
	GC_ENABLE_SET_RESET  = 0x01 // Set/Reset enable per plane
	GC_COLOR_COMPARE     = 0x02 // Color compare (read mode 1)
	GC_DATA_ROTATE       = 0x03 // Data rotate count and ALU function
	GC_READ_PLANE_SELECT = 0x04 // Read plane select (read mode 0)
	GC_GRAPHICS_MODE     = 0x05 // Write mode / read mode / shift control
	GC_MISCELLANEOUS     = 0x06 // Memory map select, graphics/alpha
	GC_COLOR_DONT_CARE   = 0x07 // Color don't care (read mode 1)
	GC_BIT_MASK          = 0x08 // Bit mask for partial byte updates
)

// Graphics mode register bits
const (
	GC_MODE_WRITE_MASK = 0x03   // Write mode field (modes 0-3)
	GC_MODE_READ_1     = 1 << 3 // Read mode 1 (color compare)
	GC_MODE_ODD_EVEN   = 1 << 4 // Host odd/even addressing
	GC_MODE_SHIFT_256  = 1 << 6 // 256-color shift
)

// Miscellaneous graphics register fields
const (
	GC_MISC_GRAPHICS  = 1 << 0 // Graphics mode (0 = text)
	GC_MISC_CHAIN_OE  = 1 << 1 // Chain odd/even
	GC_MISC_MAP_MASK  = 0x0C   // Memory map select field
	GC_MISC_MAP_SHIFT = 2
)

// Attribute controller register indices
const (
	ATTR_PALETTE_0           = 0x00 // Palette registers run 0x00-0x0F
	ATTR_MODE_CONTROL        = 0x10
	ATTR_OVERSCAN_COLOR      = 0x11
	ATTR_MEMORY_PLANE_ENABLE = 0x12
	ATTR_HORIZONTAL_PANNING  = 0x13
	ATTR_COLOR_SELECT        = 0x14
)

// ATTR_VIDEO_ENABLE gates display output. While clear, the palette
// registers are host-accessible: the "blank screen" state used during
// mode programming.
const ATTR_VIDEO_ENABLE = 0x20

// CRTC register indices
const (
	CRTC_HORIZONTAL_TOTAL       = 0x00
	CRTC_HORIZONTAL_DISPLAY_END = 0x01
	CRTC_HORIZONTAL_BLANK_START = 0x02
	CRTC_HORIZONTAL_BLANK_END   = 0x03
	CRTC_HORIZONTAL_SYNC_START  = 0x04
	CRTC_HORIZONTAL_SYNC_END    = 0x05
	CRTC_VERTICAL_TOTAL         = 0x06
	CRTC_OVERFLOW               = 0x07
	CRTC_PRESET_ROW_SCAN        = 0x08
	CRTC_MAXIMUM_SCAN_LINE      = 0x09
	CRTC_CURSOR_START           = 0x0A
	CRTC_CURSOR_END             = 0x0B
	CRTC_START_ADDRESS_HIGH     = 0x0C
	CRTC_START_ADDRESS_LOW      = 0x0D
	CRTC_CURSOR_LOCATION_HIGH   = 0x0E
	CRTC_CURSOR_LOCATION_LOW    = 0x0F
	CRTC_VERTICAL_SYNC_START    = 0x10
	CRTC_VERTICAL_SYNC_END      = 0x11
	CRTC_VERTICAL_DISPLAY_END   = 0x12
	CRTC_OFFSET                 = 0x13
	CRTC_UNDERLINE_LOCATION     = 0x14
	CRTC_VERTICAL_BLANK_START   = 0x15
	CRTC_VERTICAL_BLANK_END     = 0x16
	CRTC_MODE_CONTROL           = 0x17
	CRTC_LINE_COMPARE           = 0x18
	CRTC_MEMORY_READ_LATCH      = 0x22
	CRTC_ATTR_TOGGLE_STATE      = 0x24
)

// CRTC cursor start register bit disabling the text cursor.
const CRTC_CURSOR_DISABLE = 0x20

// CRTC_PROTECT guards CR00-CR07 against writes while set in the vertical
// sync end register. Bit 4 of the overflow register stays writable.
const CRTC_PROTECT = 0x80

// Video memory geometry
const (
	VRAM_WINDOW_64K = 0xA0000 // Graphics aperture (64KB)
	VRAM_WINDOW_MDA = 0xB0000 // Monochrome text aperture (32KB)
	VRAM_WINDOW_CGA = 0xB8000 // Color text aperture (32KB)

	PLANE_COUNT = 4
	PLANE_SIZE  = 0x10000 // 64KB per plane
)

// DefaultMemoryStart is the physical base of the video memory window on
// PC-compatible hardware. Relocatable with Controller.SetMemoryStart when
// the host maps the aperture elsewhere.
const DefaultMemoryStart = 0xA0000

// DAC geometry: 256 entries of 6-bit R, G, B.
const (
	PALETTE_ENTRIES = 256
	PALETTE_SIZE    = PALETTE_ENTRIES * 3
)
