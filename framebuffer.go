// framebuffer.go - Frame buffer addressing for the three memory families

/*
The frame buffer is never a flat byte array from the host's point of
view: the active mode decides how a (x, y) coordinate turns into a plane
and a byte address, and for the planar family every pixel write is a
multi-register protocol. These helpers run with the controller mutex
held by the calling writer.
*/

package vgacore

// cellOffset converts a text cell coordinate to its byte address. Cells
// are two bytes wide in host address space; odd/even chaining splits
// them across planes 0 and 1 inside the card.
func (c *Controller) cellOffset(base uint32, column, row, width int) uint32 {
	return base + uint32(row*width+column)*2
}

// writeCell stores one character/attribute pair.
func (c *Controller) writeCell(base uint32, column, row, width int, sc ScreenCharacter) {
	offset := c.cellOffset(base, column, row, width)
	c.mem.WriteByte(offset, sc.Character)
	c.mem.WriteByte(offset+1, uint8(sc.Attribute))
}

// readCell loads one character/attribute pair back.
func (c *Controller) readCell(base uint32, column, row, width int) ScreenCharacter {
	offset := c.cellOffset(base, column, row, width)
	return ScreenCharacter{
		Character: c.mem.ReadByte(offset),
		Attribute: TextAttribute(c.mem.ReadByte(offset + 1)),
	}
}

// writeChunky stores one pixel of a chain-4 linear mode.
func (c *Controller) writeChunky(base uint32, x, y, width int, color uint8) {
	c.mem.WriteByte(base+uint32(y*width+x), color)
}

// readChunky loads one pixel of a chain-4 linear mode.
func (c *Controller) readChunky(base uint32, x, y, width int) uint8 {
	return c.mem.ReadByte(base + uint32(y*width+x))
}

// writeUnchained stores one pixel of a Mode X surface. The map mask
// steers the byte to the single plane holding column x.
func (c *Controller) writeUnchained(base uint32, x, y, width int, color uint8) {
	c.regs.SetPlaneMask(PlaneMask(1 << (x & 3)))
	c.mem.WriteByte(base+uint32((y*width+x)/4), color)
}

// readUnchained loads one pixel of a Mode X surface through the read
// plane select register.
func (c *Controller) readUnchained(base uint32, x, y, width int) uint8 {
	c.regs.SetReadPlane(ReadPlane(x & 3))
	return c.mem.ReadByte(base + uint32((y*width+x)/4))
}

// writePlanar stores one pixel of a 16-color planar mode. Write mode 2
// expands the color across the planes; the bit mask protects the other
// seven pixels of the byte, and the dummy read loads their current
// values into the latches first.
func (c *Controller) writePlanar(base uint32, x, y, stride int, color Color16) {
	offset := base + uint32(y*stride+x/8)
	c.regs.SetWriteMode(WriteMode2)
	c.regs.SetBitMask(0x80 >> (x & 7))
	c.mem.ReadByte(offset)
	c.mem.WriteByte(offset, uint8(color))
}

// readPlanar reassembles one pixel of a 16-color planar mode from the
// four planes.
func (c *Controller) readPlanar(base uint32, x, y, stride int) Color16 {
	offset := base + uint32(y*stride+x/8)
	bit := uint8(0x80 >> (x & 7))
	var color uint8
	for plane := 0; plane < PLANE_COUNT; plane++ {
		c.regs.SetReadPlane(ReadPlane(plane))
		if c.mem.ReadByte(offset)&bit != 0 {
			color |= 1 << plane
		}
	}
	return Color16(color)
}

// resetPlanarState returns the write path to its mode defaults after a
// planar drawing burst.
func (c *Controller) resetPlanarState() {
	c.regs.SetWriteMode(WriteMode0)
	c.regs.SetBitMask(0xFF)
}
