// drawing.go - Mode-agnostic drawing primitives over any graphics screen

/*
The primitives only ever touch the screen through SetPixel, so the same
line walker serves chunky, unchained and planar modes; each writer's
SetPixel carries the addressing protocol of its family. Pixels that land
outside a bounds-checked screen are dropped, which makes the primitives
self-clipping on those modes.
*/

package vgacore

import "errors"

// Point is one screen coordinate.
type Point struct {
	X int
	Y int
}

func plot(screen GraphicsScreen, x, y int, color uint8) error {
	err := screen.SetPixel(x, y, color)
	if errors.Is(err, ErrOutOfBounds) {
		return nil
	}
	return err
}

// DrawLine walks a Bresenham line from a to b inclusive. The pixel set
// does not depend on which endpoint comes first.
func DrawLine(screen GraphicsScreen, a, b Point, color uint8) error {
	// Rounding ties break toward the walk direction, so canonicalize
	// the endpoint order before walking.
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	stepX := -1
	if a.X < b.X {
		stepX = 1
	}
	stepY := -1
	if a.Y < b.Y {
		stepY = 1
	}

	x, y := a.X, a.Y
	err := dx - dy
	for {
		if perr := plot(screen, x, y, color); perr != nil {
			return perr
		}
		if x == b.X && y == b.Y {
			return nil
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += stepX
		}
		if e2 < dx {
			err += dx
			y += stepY
		}
	}
}

// DrawRect draws the four boundary lines of the rectangle spanned by two
// opposite corners. The interior is untouched.
func DrawRect(screen GraphicsScreen, a, b Point, color uint8) error {
	corners := [4]Point{
		{a.X, a.Y}, {b.X, a.Y}, {b.X, b.Y}, {a.X, b.Y},
	}
	for i := range corners {
		if err := DrawLine(screen, corners[i], corners[(i+1)%4], color); err != nil {
			return err
		}
	}
	return nil
}

// orient2d is the signed doubled area of triangle abc; its sign tells
// which side of line ab the point c falls on.
func orient2d(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// DrawTriangle fills the triangle abc using half-space rasterization,
// clamped to the screen.
func DrawTriangle(screen GraphicsScreen, a, b, c Point, color uint8) error {
	width, height := screen.Size()

	minX := min3(a.X, b.X, c.X)
	minY := min3(a.Y, b.Y, c.Y)
	maxX := max3(a.X, b.X, c.X)
	maxY := max3(a.Y, b.Y, c.Y)

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > height-1 {
		maxY = height - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{x, y}
			w0 := orient2d(b, c, p)
			w1 := orient2d(c, a, p)
			w2 := orient2d(a, b, p)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				if err := plot(screen, x, y, color); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// DrawCharacter blits one 8x8 glyph with its top left corner at p. Only
// set bits are drawn, so the background shows through. Characters
// outside the glyph set return ErrUnsupportedGlyph.
func DrawCharacter(screen GraphicsScreen, p Point, character uint8, color uint8) error {
	glyph, err := Font8x8.Glyph(character)
	if err != nil {
		return err
	}
	for row, bits := range glyph {
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			if err := plot(screen, p.X+bit, p.Y+row, color); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawString blits a run of glyphs left to right from p.
func DrawString(screen GraphicsScreen, p Point, text string, color uint8) error {
	for i := 0; i < len(text); i++ {
		if err := DrawCharacter(screen, Point{p.X + i*8, p.Y}, text[i], color); err != nil {
			return err
		}
	}
	return nil
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
