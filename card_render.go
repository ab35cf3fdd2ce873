// card_render.go - Scanout: turning emulated card state into an RGBA image

/*
The renderer reads geometry out of the CRTC the way a monitor would:
horizontal display end gives the character clock width, vertical display
end plus its overflow bits gives the scan line count, and maximum scan
line divides text rows. Rendering never consults the mode descriptors,
so a register sequence that programs mode B over mode A produces mode
B's picture with no residue of A beyond what the planes still hold.
*/

package vgacore

import (
	"image"
	"image/color"
)

// displayWidth returns the active pixels per scan line.
func (c *EmulatedCard) displayWidth() int {
	chars := int(c.crtc[CRTC_HORIZONTAL_DISPLAY_END]) + 1
	dots := 8
	if c.seq[SEQ_CLOCKING_MODE]&0x01 == 0 {
		dots = 9
	}
	if c.gc[GC_MISCELLANEOUS]&GC_MISC_GRAPHICS != 0 {
		dots = 8
	}
	return chars * dots
}

// displayHeight returns the active scan lines, assembling the 10-bit
// vertical display end from its overflow bits.
func (c *EmulatedCard) displayHeight() int {
	vde := int(c.crtc[CRTC_VERTICAL_DISPLAY_END])
	overflow := c.crtc[CRTC_OVERFLOW]
	if overflow&0x02 != 0 {
		vde |= 1 << 8
	}
	if overflow&0x40 != 0 {
		vde |= 1 << 9
	}
	return vde + 1
}

// scanRepeat returns how many scan lines each pixel row occupies in the
// graphics modes: the maximum scan line field plus the doubling bit.
// The 200 and 240 line modes program 400 and 480 scan lines this way.
func (c *EmulatedCard) scanRepeat() int {
	repeat := int(c.crtc[CRTC_MAXIMUM_SCAN_LINE]&0x1F) + 1
	if c.crtc[CRTC_MAXIMUM_SCAN_LINE]&0x80 != 0 {
		repeat *= 2
	}
	return repeat
}

// dacColor resolves one DAC entry to a displayable color.
func (c *EmulatedCard) dacColor(index uint8) color.RGBA {
	offset := int(index&c.dacMask) * 3
	return color.RGBA{
		R: Expand6To8(c.palette[offset]),
		G: Expand6To8(c.palette[offset+1]),
		B: Expand6To8(c.palette[offset+2]),
		A: 0xFF,
	}
}

// attrColor resolves a 4-bit pixel through the attribute palette remap
// and then the DAC.
func (c *EmulatedCard) attrColor(pixel uint8) color.RGBA {
	return c.dacColor(c.attr[pixel&0x0F] & 0x3F)
}

// Render produces the current frame. Geometry comes entirely from the
// register file; planes contribute whatever they hold. With video
// disabled the frame is black.
func (c *EmulatedCard) Render() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	width := c.displayWidth()
	height := c.displayHeight()
	graphics := c.gc[GC_MISCELLANEOUS]&GC_MISC_GRAPHICS != 0
	if graphics {
		height /= c.scanRepeat()
		// The 256-color shift outputs each pixel for two dot clocks.
		if c.gc[GC_GRAPHICS_MODE]&GC_MODE_SHIFT_256 != 0 {
			width /= 2
		}
	}
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	if c.attrIndex&ATTR_VIDEO_ENABLE == 0 {
		return frame
	}

	if !graphics {
		c.renderText(frame, width, height)
	} else if c.gc[GC_GRAPHICS_MODE]&GC_MODE_SHIFT_256 != 0 {
		c.render256(frame, width, height)
	} else {
		c.renderPlanar(frame, width, height)
	}
	return frame
}

// renderText rasterizes character cells: codes in plane 0, attributes in
// plane 1, the glyph set in plane 2 at 32 bytes per character.
func (c *EmulatedCard) renderText(frame *image.RGBA, width, height int) {
	glyphHeight := int(c.crtc[CRTC_MAXIMUM_SCAN_LINE]&0x1F) + 1
	dots := width / (int(c.crtc[CRTC_HORIZONTAL_DISPLAY_END]) + 1)
	columns := width / dots
	rows := height / glyphHeight

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			cell := uint32(row*columns + col)
			ch := c.planes[0][cell]
			attr := c.planes[1][cell]
			fg := c.attrColor(attr & 0x0F)
			bg := c.attrColor(attr >> 4)

			glyph := uint32(ch) * 32
			for line := 0; line < glyphHeight && line < 32; line++ {
				bits := c.planes[2][glyph+uint32(line)]
				for dot := 0; dot < dots; dot++ {
					px := bg
					if dot < 8 && bits&(0x80>>dot) != 0 {
						px = fg
					}
					frame.SetRGBA(col*dots+dot, row*glyphHeight+line, px)
				}
			}
		}
	}
}

// render256 rasterizes the 256-color shift modes: chain-4 linear when
// the sequencer chains, plane-per-column Mode X when it does not.
func (c *EmulatedCard) render256(frame *image.RGBA, width, height int) {
	chained := c.seq[SEQ_MEMORY_MODE]&SEQ_MEMMODE_CHAIN4 != 0
	stride := width / 4
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var index uint8
			if chained {
				pixel := uint32(y*width + x)
				index = c.planes[pixel&3][pixel>>2]
			} else {
				index = c.planes[x&3][uint32(y*stride+x/4)]
			}
			frame.SetRGBA(x, y, c.dacColor(index))
		}
	}
}

// renderPlanar rasterizes the 16-color planar modes, one bit per plane
// per pixel.
func (c *EmulatedCard) renderPlanar(frame *image.RGBA, width, height int) {
	stride := width / 8
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := uint32(y*stride + x/8)
			bit := uint8(0x80 >> (x & 7))
			var pixel uint8
			for plane := 0; plane < PLANE_COUNT; plane++ {
				if c.planes[plane][offset]&bit != 0 {
					pixel |= 1 << plane
				}
			}
			frame.SetRGBA(x, y, c.attrColor(pixel))
		}
	}
}
