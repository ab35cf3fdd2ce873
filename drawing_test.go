// drawing_test.go - Drawing primitive tests on a chunky test screen

package vgacore

import (
	"errors"
	"testing"
)

func newChunkyScreen(t *testing.T) *Graphics320x200x256 {
	t.Helper()
	card := NewEmulatedCard()
	ctrl := NewController(card, card)
	screen := NewGraphics320x200x256(ctrl)
	if err := screen.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	return screen
}

func pixelAt(t *testing.T, screen GraphicsScreen, x, y int) uint8 {
	t.Helper()
	got, err := screen.Pixel(x, y)
	if err != nil {
		t.Fatalf("Pixel(%d,%d): %v", x, y, err)
	}
	return got
}

func TestDrawLine_Horizontal(t *testing.T) {
	screen := newChunkyScreen(t)

	if err := DrawLine(screen, Point{10, 20}, Point{20, 20}, 7); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	for x := 10; x <= 20; x++ {
		if pixelAt(t, screen, x, 20) != 7 {
			t.Errorf("pixel (%d,20) not drawn", x)
		}
	}
	if pixelAt(t, screen, 9, 20) != 0 || pixelAt(t, screen, 21, 20) != 0 {
		t.Error("line overshoots its endpoints")
	}
}

func TestDrawLine_SteepAndReversed(t *testing.T) {
	screen := newChunkyScreen(t)

	// Steep descent, endpoints given bottom-up: both endpoints must be
	// drawn and every row between them hit exactly once.
	if err := DrawLine(screen, Point{50, 90}, Point{53, 10}, 9); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	if pixelAt(t, screen, 50, 90) != 9 {
		t.Error("start endpoint missing")
	}
	if pixelAt(t, screen, 53, 10) != 9 {
		t.Error("end endpoint missing")
	}
	for y := 10; y <= 90; y++ {
		hits := 0
		for x := 49; x <= 54; x++ {
			if pixelAt(t, screen, x, y) == 9 {
				hits++
			}
		}
		if hits != 1 {
			t.Errorf("row %d: got %d pixels, want 1", y, hits)
		}
	}
}

func TestDrawLine_SinglePoint(t *testing.T) {
	screen := newChunkyScreen(t)

	// Degenerate line: identical endpoints set exactly one pixel.
	if err := DrawLine(screen, Point{77, 42}, Point{77, 42}, 11); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	width, height := screen.Size()
	hits := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if pixelAt(t, screen, x, y) == 11 {
				hits++
			}
		}
	}
	if hits != 1 {
		t.Errorf("degenerate line: got %d pixels, want 1", hits)
	}
	if pixelAt(t, screen, 77, 42) != 11 {
		t.Error("degenerate line missed its point")
	}
}

func TestDrawLine_EndpointOrderIndependent(t *testing.T) {
	forward := newChunkyScreen(t)
	reversed := newChunkyScreen(t)

	a, b := Point{86, 67}, Point{252, 2}
	if err := DrawLine(forward, a, b, 4); err != nil {
		t.Fatalf("DrawLine forward: %v", err)
	}
	if err := DrawLine(reversed, b, a, 4); err != nil {
		t.Fatalf("DrawLine reversed: %v", err)
	}

	// The two walks must light the same pixel set.
	width, height := forward.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f := pixelAt(t, forward, x, y)
			r := pixelAt(t, reversed, x, y)
			if f != r {
				t.Fatalf("pixel (%d,%d): forward %d, reversed %d", x, y, f, r)
			}
		}
	}
}

func TestDrawLine_DiagonalSymmetric(t *testing.T) {
	screen := newChunkyScreen(t)

	if err := DrawLine(screen, Point{0, 0}, Point{40, 40}, 5); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	for i := 0; i <= 40; i++ {
		if pixelAt(t, screen, i, i) != 5 {
			t.Errorf("diagonal pixel (%d,%d) missing", i, i)
		}
	}
}

func TestDrawLine_ClipsOffscreen(t *testing.T) {
	screen := newChunkyScreen(t)

	// A line running past the right edge drops the offscreen pixels and
	// succeeds.
	if err := DrawLine(screen, Point{310, 100}, Point{330, 100}, 3); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	if pixelAt(t, screen, 319, 100) != 3 {
		t.Error("last onscreen pixel missing")
	}
}

func TestDrawRect_OutlineOnly(t *testing.T) {
	screen := newChunkyScreen(t)

	if err := DrawRect(screen, Point{10, 10}, Point{30, 25}, 12); err != nil {
		t.Fatalf("DrawRect: %v", err)
	}

	// Boundary drawn.
	for x := 10; x <= 30; x++ {
		if pixelAt(t, screen, x, 10) != 12 || pixelAt(t, screen, x, 25) != 12 {
			t.Fatalf("boundary column %d incomplete", x)
		}
	}
	for y := 10; y <= 25; y++ {
		if pixelAt(t, screen, 10, y) != 12 || pixelAt(t, screen, 30, y) != 12 {
			t.Fatalf("boundary row %d incomplete", y)
		}
	}
	// Interior untouched.
	if pixelAt(t, screen, 20, 17) != 0 {
		t.Error("rect filled its interior")
	}
}

func TestDrawTriangle_FillsInterior(t *testing.T) {
	screen := newChunkyScreen(t)

	a, b, c := Point{60, 20}, Point{20, 80}, Point{100, 80}
	if err := DrawTriangle(screen, a, b, c, 14); err != nil {
		t.Fatalf("DrawTriangle: %v", err)
	}

	// Centroid is inside, corners are drawn, far outside is not.
	if pixelAt(t, screen, 60, 60) != 14 {
		t.Error("interior point not filled")
	}
	for _, p := range []Point{a, b, c} {
		if pixelAt(t, screen, p.X, p.Y) != 14 {
			t.Errorf("vertex (%d,%d) not drawn", p.X, p.Y)
		}
	}
	if pixelAt(t, screen, 10, 20) != 0 {
		t.Error("point outside the triangle was filled")
	}
}

func TestDrawCharacter_GlyphShape(t *testing.T) {
	screen := newChunkyScreen(t)

	if err := DrawCharacter(screen, Point{16, 16}, 'A', 15); err != nil {
		t.Fatalf("DrawCharacter: %v", err)
	}

	glyph, err := Font8x8.Glyph('A')
	if err != nil {
		t.Fatalf("Glyph: %v", err)
	}
	for row, bits := range glyph {
		for bit := 0; bit < 8; bit++ {
			want := uint8(0)
			if bits&(0x80>>bit) != 0 {
				want = 15
			}
			if got := pixelAt(t, screen, 16+bit, 16+row); got != want {
				t.Fatalf("glyph pixel (%d,%d): got %d, want %d", bit, row, got, want)
			}
		}
	}
}

func TestDrawCharacter_UnsupportedGlyph(t *testing.T) {
	screen := newChunkyScreen(t)

	err := DrawCharacter(screen, Point{0, 0}, 0xB0, 15)
	if !errors.Is(err, ErrUnsupportedGlyph) {
		t.Errorf("glyph 0xb0: got %v, want ErrUnsupportedGlyph", err)
	}
	// Nothing was drawn for the failed glyph.
	if pixelAt(t, screen, 0, 0) != 0 {
		t.Error("failed glyph left pixels behind")
	}
}

func TestDrawString_AdvancesByCell(t *testing.T) {
	screen := newChunkyScreen(t)

	if err := DrawString(screen, Point{0, 0}, "!!", 6); err != nil {
		t.Fatalf("DrawString: %v", err)
	}
	glyph, _ := Font8x8.Glyph('!')
	for row, bits := range glyph {
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			if pixelAt(t, screen, bit, row) != 6 {
				t.Fatalf("first cell pixel (%d,%d) missing", bit, row)
			}
			if pixelAt(t, screen, 8+bit, row) != 6 {
				t.Fatalf("second cell pixel (%d,%d) missing", 8+bit, row)
			}
		}
	}
}

func TestDrawing_WorksOnPlanarScreen(t *testing.T) {
	card := NewEmulatedCard()
	ctrl := NewController(card, card)
	screen := NewGraphics640x480x16(ctrl)
	if err := screen.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}

	// The same walker runs against the planar protocol.
	if err := DrawLine(screen, Point{0, 0}, Point{100, 100}, 9); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	for i := 0; i <= 100; i += 20 {
		if got := pixelAt(t, screen, i, i); got != 9 {
			t.Errorf("planar diagonal pixel (%d,%d): got %d, want 9", i, i, got)
		}
	}
}
