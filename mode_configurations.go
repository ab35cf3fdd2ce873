// mode_configurations.go - Register tables and descriptors for the supported modes

/*
Each concrete video mode is described by a compiled-in ModeDescriptor:
geometry, memory family, and the exact register values Controller.LoadMode
programs into the sequencer, CRTC, graphics controller and attribute
controller. The values are the standard IBM-compatible tables; changing
any of them changes the signal timing, so they are data, not policy.
*/

package vgacore

// MemoryFamily is the addressing scheme a mode's frame buffer uses.
type MemoryFamily uint8

const (
	// FamilyText stores 2-byte character/attribute cells.
	FamilyText MemoryFamily = iota
	// FamilyChunky stores one palette index byte per pixel, linearly.
	FamilyChunky
	// FamilyPlanar stores one bit per pixel per plane; pixel writes go
	// through the set/reset and bit mask protocol.
	FamilyPlanar
	// FamilyUnchained stores one byte per pixel spread across planes by
	// x&3 (Mode X); pixel writes go through the map mask.
	FamilyUnchained
	// FamilyLinear is a flat high-resolution frame buffer on a VBE
	// device, bypassing the VGA register file.
	FamilyLinear
)

func (f MemoryFamily) String() string {
	switch f {
	case FamilyText:
		return "text"
	case FamilyChunky:
		return "chunky"
	case FamilyPlanar:
		return "planar"
	case FamilyUnchained:
		return "unchained"
	case FamilyLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// registerValue is one (index, value) pair of a mode table.
type registerValue struct {
	index uint8
	value uint8
}

// ModeDescriptor is the compiled-in description of one concrete mode.
type ModeDescriptor struct {
	Name       string
	Width      int // pixels, or columns for text modes
	Height     int // pixels, or rows for text modes
	Family     MemoryFamily
	FontHeight int // text modes: scan lines per glyph

	miscOutput uint8
	sequencer  []registerValue
	crtc       []registerValue
	graphics   []registerValue
	attribute  []registerValue
}

// Stride returns the frame buffer bytes per row of this mode.
func (d *ModeDescriptor) Stride() int {
	switch d.Family {
	case FamilyText:
		return d.Width * 2
	case FamilyChunky:
		return d.Width
	case FamilyPlanar:
		return d.Width / 8
	case FamilyUnchained:
		return d.Width / 4
	case FamilyLinear:
		return d.Width * 4
	default:
		return d.Width
	}
}

// Standard graphics controller and attribute tables shared by the color
// text modes.
var textGraphicsTable = []registerValue{
	{GC_SET_RESET, 0x00}, {GC_ENABLE_SET_RESET, 0x00},
	{GC_COLOR_COMPARE, 0x00}, {GC_DATA_ROTATE, 0x00},
	{GC_READ_PLANE_SELECT, 0x00}, {GC_GRAPHICS_MODE, 0x10},
	{GC_MISCELLANEOUS, 0x0E}, {GC_COLOR_DONT_CARE, 0x00},
	{GC_BIT_MASK, 0xFF},
}

var textAttributeTable = []registerValue{
	{0x00, 0x00}, {0x01, 0x01}, {0x02, 0x02}, {0x03, 0x03},
	{0x04, 0x04}, {0x05, 0x05}, {0x06, 0x14}, {0x07, 0x07},
	{0x08, 0x38}, {0x09, 0x39}, {0x0A, 0x3A}, {0x0B, 0x3B},
	{0x0C, 0x3C}, {0x0D, 0x3D}, {0x0E, 0x3E}, {0x0F, 0x3F},
	{ATTR_MODE_CONTROL, 0x0C}, {ATTR_OVERSCAN_COLOR, 0x00},
	{ATTR_MEMORY_PLANE_ENABLE, 0x0F}, {ATTR_HORIZONTAL_PANNING, 0x08},
	{ATTR_COLOR_SELECT, 0x00},
}

// Identity palette mapping used by the graphics modes.
var graphicsAttributeTable = func(modeControl uint8) []registerValue {
	table := make([]registerValue, 0, 21)
	for i := uint8(0); i < 16; i++ {
		table = append(table, registerValue{i, i})
	}
	return append(table,
		registerValue{ATTR_MODE_CONTROL, modeControl},
		registerValue{ATTR_OVERSCAN_COLOR, 0x00},
		registerValue{ATTR_MEMORY_PLANE_ENABLE, 0x0F},
		registerValue{ATTR_HORIZONTAL_PANNING, 0x00},
		registerValue{ATTR_COLOR_SELECT, 0x00},
	)
}

func crtcTable(values []uint8) []registerValue {
	table := make([]registerValue, len(values))
	for i, v := range values {
		table[i] = registerValue{uint8(i), v}
	}
	return table
}

// ModeText80x25 is the standard 80x25 16-color text mode.
var ModeText80x25 = &ModeDescriptor{
	Name: "text 80x25", Width: 80, Height: 25,
	Family: FamilyText, FontHeight: 16,
	miscOutput: 0x67,
	sequencer: []registerValue{
		{SEQ_RESET, 0x03}, {SEQ_CLOCKING_MODE, 0x00},
		{SEQ_PLANE_MASK, 0x03}, {SEQ_CHARACTER_MAP, 0x00},
		{SEQ_MEMORY_MODE, 0x02},
	},
	crtc: crtcTable([]uint8{
		0x5F, 0x4F, 0x50, 0x82, 0x55, 0x81, 0xBF, 0x1F,
		0x00, 0x4F, 0x0D, 0x0E, 0x00, 0x00, 0x00, 0x50,
		0x9C, 0x0E, 0x8F, 0x28, 0x1F, 0x96, 0xB9, 0xA3, 0xFF,
	}),
	graphics:  textGraphicsTable,
	attribute: textAttributeTable,
}

// ModeText40x25 is the 40-column 16-color text mode.
var ModeText40x25 = &ModeDescriptor{
	Name: "text 40x25", Width: 40, Height: 25,
	Family: FamilyText, FontHeight: 16,
	miscOutput: 0x67,
	sequencer: []registerValue{
		{SEQ_RESET, 0x03}, {SEQ_CLOCKING_MODE, 0x08},
		{SEQ_PLANE_MASK, 0x03}, {SEQ_CHARACTER_MAP, 0x00},
		{SEQ_MEMORY_MODE, 0x02},
	},
	crtc: crtcTable([]uint8{
		0x2D, 0x27, 0x28, 0x90, 0x2B, 0xA0, 0xBF, 0x1F,
		0x00, 0x4F, 0x0D, 0x0E, 0x00, 0x00, 0x00, 0x00,
		0x9C, 0x8E, 0x8F, 0x14, 0x1F, 0x96, 0xB9, 0xA3, 0xFF,
	}),
	graphics:  textGraphicsTable,
	attribute: textAttributeTable,
}

// ModeText40x50 is the 40-column text mode with an 8-scan-line font,
// doubling the rows of 40x25.
var ModeText40x50 = &ModeDescriptor{
	Name: "text 40x50", Width: 40, Height: 50,
	Family: FamilyText, FontHeight: 8,
	miscOutput: 0x67,
	sequencer: []registerValue{
		{SEQ_RESET, 0x03}, {SEQ_CLOCKING_MODE, 0x08},
		{SEQ_PLANE_MASK, 0x03}, {SEQ_CHARACTER_MAP, 0x00},
		{SEQ_MEMORY_MODE, 0x02},
	},
	crtc: crtcTable([]uint8{
		0x2D, 0x27, 0x28, 0x90, 0x2B, 0xA0, 0xBF, 0x1F,
		0x00, 0x47, 0x0D, 0x0E, 0x00, 0x00, 0x00, 0x00,
		0x9C, 0x8E, 0x8F, 0x14, 0x1F, 0x96, 0xB9, 0xA3, 0xFF,
	}),
	graphics:  textGraphicsTable,
	attribute: textAttributeTable,
}

// ModeGraphics320x200x256 is BIOS mode 13h: chunky linear, one byte per
// pixel through chain-4.
var ModeGraphics320x200x256 = &ModeDescriptor{
	Name: "graphics 320x200x256", Width: 320, Height: 200,
	Family:     FamilyChunky,
	miscOutput: 0x63,
	sequencer: []registerValue{
		{SEQ_RESET, 0x03}, {SEQ_CLOCKING_MODE, 0x01},
		{SEQ_PLANE_MASK, 0x0F}, {SEQ_CHARACTER_MAP, 0x00},
		{SEQ_MEMORY_MODE, 0x0E},
	},
	crtc: crtcTable([]uint8{
		0x5F, 0x4F, 0x50, 0x82, 0x54, 0x80, 0xBF, 0x1F,
		0x00, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x9C, 0x0E, 0x8F, 0x28, 0x40, 0x96, 0xB9, 0xA3, 0xFF,
	}),
	graphics: []registerValue{
		{GC_SET_RESET, 0x00}, {GC_ENABLE_SET_RESET, 0x00},
		{GC_COLOR_COMPARE, 0x00}, {GC_DATA_ROTATE, 0x00},
		{GC_READ_PLANE_SELECT, 0x00}, {GC_GRAPHICS_MODE, 0x40},
		{GC_MISCELLANEOUS, 0x05}, {GC_COLOR_DONT_CARE, 0x0F},
		{GC_BIT_MASK, 0xFF},
	},
	attribute: graphicsAttributeTable(0x41),
}

// ModeGraphics320x240x256 is Mode X: 256 colors unchained across the
// four planes, square pixels, page flipping headroom.
var ModeGraphics320x240x256 = &ModeDescriptor{
	Name: "graphics 320x240x256", Width: 320, Height: 240,
	Family:     FamilyUnchained,
	miscOutput: 0xE3,
	sequencer: []registerValue{
		{SEQ_RESET, 0x03}, {SEQ_CLOCKING_MODE, 0x01},
		{SEQ_PLANE_MASK, 0x0F}, {SEQ_CHARACTER_MAP, 0x00},
		{SEQ_MEMORY_MODE, 0x06},
	},
	crtc: crtcTable([]uint8{
		0x5F, 0x4F, 0x50, 0x82, 0x54, 0x80, 0x0D, 0x3E,
		0x00, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xEA, 0xAC, 0xDF, 0x28, 0x00, 0xE7, 0x06, 0xE3, 0xFF,
	}),
	graphics: []registerValue{
		{GC_SET_RESET, 0x00}, {GC_ENABLE_SET_RESET, 0x00},
		{GC_COLOR_COMPARE, 0x00}, {GC_DATA_ROTATE, 0x00},
		{GC_READ_PLANE_SELECT, 0x00}, {GC_GRAPHICS_MODE, 0x40},
		{GC_MISCELLANEOUS, 0x05}, {GC_COLOR_DONT_CARE, 0x0F},
		{GC_BIT_MASK, 0xFF},
	},
	attribute: graphicsAttributeTable(0x41),
}

// ModeGraphics640x480x16 is BIOS mode 12h: 16 colors, one bit per pixel
// per plane.
var ModeGraphics640x480x16 = &ModeDescriptor{
	Name: "graphics 640x480x16", Width: 640, Height: 480,
	Family:     FamilyPlanar,
	miscOutput: 0xE3,
	sequencer: []registerValue{
		{SEQ_RESET, 0x03}, {SEQ_CLOCKING_MODE, 0x01},
		{SEQ_PLANE_MASK, 0x0F}, {SEQ_CHARACTER_MAP, 0x00},
		{SEQ_MEMORY_MODE, 0x06},
	},
	crtc: crtcTable([]uint8{
		0x5F, 0x4F, 0x50, 0x82, 0x54, 0x80, 0x0B, 0x3E,
		0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xEA, 0x8C, 0xDF, 0x28, 0x00, 0xE7, 0x04, 0xE3, 0xFF,
	}),
	graphics: []registerValue{
		{GC_SET_RESET, 0x00}, {GC_ENABLE_SET_RESET, 0x00},
		{GC_COLOR_COMPARE, 0x00}, {GC_DATA_ROTATE, 0x00},
		{GC_READ_PLANE_SELECT, 0x03}, {GC_GRAPHICS_MODE, 0x00},
		{GC_MISCELLANEOUS, 0x05}, {GC_COLOR_DONT_CARE, 0x0F},
		{GC_BIT_MASK, 0xFF},
	},
	attribute: graphicsAttributeTable(0x01),
}

// ModeGraphics1280x800x256 is a flat 32bpp frame buffer on the Bochs VBE
// interface. It has no VGA register table; BochsDevice programs the
// dispi registers instead.
var ModeGraphics1280x800x256 = &ModeDescriptor{
	Name: "graphics 1280x800", Width: 1280, Height: 800,
	Family: FamilyLinear,
}
