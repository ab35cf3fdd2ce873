// graphics_320x240x256.go - Mode X unchained 256 color graphics

package vgacore

// Graphics320x240x256 is Mode X: 256 colors with chain-4 off, so each
// pixel lives in plane x&3 and the map mask steers every write. Square
// pixels, and enough memory left over for back pages. Coordinates are
// not validated; out-of-range math wraps inside the plane the way the
// hardware wraps it.
type Graphics320x240x256 struct {
	ctrl *Controller
}

// NewGraphics320x240x256 builds the writer; Enable programs the mode.
func NewGraphics320x240x256(ctrl *Controller) *Graphics320x240x256 {
	return &Graphics320x240x256{ctrl: ctrl}
}

func (g *Graphics320x240x256) Size() (int, int) {
	return ModeGraphics320x240x256.Width, ModeGraphics320x240x256.Height
}

func (g *Graphics320x240x256) Enable() error {
	return g.ctrl.LoadMode(ModeGraphics320x240x256)
}

// SetPixel writes one pixel through the map mask.
func (g *Graphics320x240x256) SetPixel(x, y int, color uint8) error {
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	g.ctrl.writeUnchained(base, x, y, ModeGraphics320x240x256.Width, color)
	return nil
}

// Pixel reads one pixel back through the read plane select.
func (g *Graphics320x240x256) Pixel(x, y int) (uint8, error) {
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return 0, err
	}
	return g.ctrl.readUnchained(base, x, y, ModeGraphics320x240x256.Width), nil
}

// ClearScreen fills all four planes with one palette index in a single
// pass by opening the map mask to every plane.
func (g *Graphics320x240x256) ClearScreen(color uint8) error {
	mode := ModeGraphics320x240x256
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	g.ctrl.regs.SetPlaneMask(AllPlanes)
	for offset := 0; offset < mode.Width*mode.Height/4; offset++ {
		g.ctrl.mem.WriteByte(base+uint32(offset), color)
	}
	return nil
}

// Clear blanks the screen to palette index 0.
func (g *Graphics320x240x256) Clear() error {
	return g.ClearScreen(0)
}

var _ GraphicsScreen = (*Graphics320x240x256)(nil)
