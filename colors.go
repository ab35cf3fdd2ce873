// colors.go - Color types, text attributes and the default DAC palette

package vgacore

// Color16 is a 4-bit color resolved through the plane bits in 16-color
// modes and the attribute nibbles in text modes.
type Color16 uint8

const (
	Black Color16 = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// TextAttribute packs a text cell's colors: foreground in the low nibble,
// background in the high nibble.
type TextAttribute uint8

// NewTextAttribute builds an attribute byte from foreground and
// background colors.
func NewTextAttribute(foreground, background Color16) TextAttribute {
	return TextAttribute(uint8(background)<<4 | uint8(foreground)&0x0F)
}

// Foreground returns the attribute's foreground color.
func (a TextAttribute) Foreground() Color16 {
	return Color16(a & 0x0F)
}

// Background returns the attribute's background color.
func (a TextAttribute) Background() Color16 {
	return Color16(a >> 4)
}

// ScreenCharacter is one text mode cell: a character code and its
// attribute, stored as two consecutive bytes in the frame buffer.
type ScreenCharacter struct {
	Character uint8
	Attribute TextAttribute
}

// NewScreenCharacter builds a cell from a character and its colors.
func NewScreenCharacter(character uint8, foreground, background Color16) ScreenCharacter {
	return ScreenCharacter{
		Character: character,
		Attribute: NewTextAttribute(foreground, background),
	}
}

// DefaultPalette is the 256-entry DAC palette loaded on every mode
// switch: the standard 16-color set, a 6x6x6 color cube, and a 24-step
// grayscale ramp. Components are 6-bit as the DAC expects.
var DefaultPalette = buildDefaultPalette()

func buildDefaultPalette() [PALETTE_SIZE]uint8 {
	var palette [PALETTE_SIZE]uint8

	standard := [16][3]uint8{
		{0, 0, 0},    // Black
		{0, 0, 42},   // Blue
		{0, 42, 0},   // Green
		{0, 42, 42},  // Cyan
		{42, 0, 0},   // Red
		{42, 0, 42},  // Magenta
		{42, 21, 0},  // Brown
		{42, 42, 42}, // Light gray
		{21, 21, 21}, // Dark gray
		{21, 21, 63}, // Light blue
		{21, 63, 21}, // Light green
		{21, 63, 63}, // Light cyan
		{63, 21, 21}, // Light red
		{63, 21, 63}, // Pink
		{63, 63, 21}, // Yellow
		{63, 63, 63}, // White
	}
	for i, c := range standard {
		palette[i*3+0] = c[0]
		palette[i*3+1] = c[1]
		palette[i*3+2] = c[2]
	}

	// 16-231: 6x6x6 color cube
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette[idx*3+0] = uint8(r * 63 / 5)
				palette[idx*3+1] = uint8(g * 63 / 5)
				palette[idx*3+2] = uint8(b * 63 / 5)
				idx++
			}
		}
	}

	// 232-255: grayscale ramp
	for i := 0; i < 24; i++ {
		gray := uint8(i * 63 / 23)
		palette[idx*3+0] = gray
		palette[idx*3+1] = gray
		palette[idx*3+2] = gray
		idx++
	}

	return palette
}

// Expand6To8 converts a 6-bit DAC component to 8 bits.
func Expand6To8(value uint8) uint8 {
	return (value << 2) | (value >> 4)
}
