// graphics_640x480x16.go - Mode 12h planar 16 color graphics

package vgacore

// Graphics640x480x16 is BIOS mode 12h: one bit per pixel per plane.
// Each pixel write runs the full planar protocol: write mode 2, bit
// mask for the pixel's position in its byte, a latch-loading read, then
// the color write. Coordinates are not validated; out-of-range math
// wraps inside the planes the way the hardware wraps it.
type Graphics640x480x16 struct {
	ctrl *Controller
}

// NewGraphics640x480x16 builds the writer; Enable programs the mode.
func NewGraphics640x480x16(ctrl *Controller) *Graphics640x480x16 {
	return &Graphics640x480x16{ctrl: ctrl}
}

func (g *Graphics640x480x16) Size() (int, int) {
	return ModeGraphics640x480x16.Width, ModeGraphics640x480x16.Height
}

func (g *Graphics640x480x16) Enable() error {
	return g.ctrl.LoadMode(ModeGraphics640x480x16)
}

// SetPixel writes one pixel; only the low 4 bits of color are used.
func (g *Graphics640x480x16) SetPixel(x, y int, color uint8) error {
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	g.ctrl.writePlanar(base, x, y, ModeGraphics640x480x16.Stride(), Color16(color&0x0F))
	g.ctrl.resetPlanarState()
	return nil
}

// Pixel reassembles one pixel from the four planes.
func (g *Graphics640x480x16) Pixel(x, y int) (uint8, error) {
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return 0, err
	}
	return uint8(g.ctrl.readPlanar(base, x, y, ModeGraphics640x480x16.Stride())), nil
}

// ClearScreen fills all four planes at once: write mode 2 with an open
// bit mask makes every host write expand the color across the planes.
// Only the low 4 bits of color are used.
func (g *Graphics640x480x16) ClearScreen(color uint8) error {
	mode := ModeGraphics640x480x16
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	g.ctrl.regs.SetWriteMode(WriteMode2)
	g.ctrl.regs.SetBitMask(0xFF)
	for offset := 0; offset < mode.Stride()*mode.Height; offset++ {
		g.ctrl.mem.WriteByte(base+uint32(offset), color&0x0F)
	}
	g.ctrl.resetPlanarState()
	return nil
}

// Clear blanks the screen to palette index 0.
func (g *Graphics640x480x16) Clear() error {
	return g.ClearScreen(0)
}

var _ GraphicsScreen = (*Graphics640x480x16)(nil)
