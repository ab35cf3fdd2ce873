// colors_test.go - Attribute packing, palette and font table tests

package vgacore

import (
	"errors"
	"testing"
)

func TestTextAttribute_PacksNibbles(t *testing.T) {
	attr := NewTextAttribute(Yellow, Blue)
	if uint8(attr) != 0x1E {
		t.Errorf("attribute byte: got %#02x, want 0x1e", uint8(attr))
	}
	if attr.Foreground() != Yellow {
		t.Errorf("foreground: got %v, want Yellow", attr.Foreground())
	}
	if attr.Background() != Blue {
		t.Errorf("background: got %v, want Blue", attr.Background())
	}
}

func TestDefaultPalette_SixBitComponents(t *testing.T) {
	for i, v := range DefaultPalette {
		if v > 0x3F {
			t.Fatalf("palette byte %d: %#02x exceeds the 6-bit DAC range", i, v)
		}
	}
	// Entry 15 is white.
	if DefaultPalette[45] != 63 || DefaultPalette[46] != 63 || DefaultPalette[47] != 63 {
		t.Error("palette entry 15 is not white")
	}
}

func TestExpand6To8_Endpoints(t *testing.T) {
	if got := Expand6To8(0); got != 0 {
		t.Errorf("Expand6To8(0): got %d, want 0", got)
	}
	if got := Expand6To8(63); got != 255 {
		t.Errorf("Expand6To8(63): got %d, want 255", got)
	}
}

func TestFont_GlyphBounds(t *testing.T) {
	if _, err := Font8x16.Glyph(0x7F); err != nil {
		t.Errorf("glyph 0x7f: %v", err)
	}
	if _, err := Font8x16.Glyph(0x80); !errors.Is(err, ErrUnsupportedGlyph) {
		t.Errorf("glyph 0x80: got %v, want ErrUnsupportedGlyph", err)
	}
	if glyph, err := Font8x8.Glyph(' '); err != nil || len(glyph) != 8 {
		t.Errorf("8x8 space glyph: len %d err %v, want 8 rows", len(glyph), err)
	}
}

func TestModeDescriptor_Stride(t *testing.T) {
	cases := []struct {
		mode *ModeDescriptor
		want int
	}{
		{ModeText80x25, 160},
		{ModeGraphics320x200x256, 320},
		{ModeGraphics320x240x256, 80},
		{ModeGraphics640x480x16, 80},
	}
	for _, tc := range cases {
		if got := tc.mode.Stride(); got != tc.want {
			t.Errorf("%s stride: got %d, want %d", tc.mode.Name, got, tc.want)
		}
	}
}
