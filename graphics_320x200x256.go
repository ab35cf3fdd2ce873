// graphics_320x200x256.go - Mode 13h chunky linear graphics

package vgacore

// Graphics320x200x256 is BIOS mode 13h: one byte per pixel, linear
// through chain-4, 256 palette entries. The only family with checked
// pixel coordinates; the linear address math would otherwise scribble
// past the window.
type Graphics320x200x256 struct {
	ctrl *Controller
}

// NewGraphics320x200x256 builds the writer; Enable programs the mode.
func NewGraphics320x200x256(ctrl *Controller) *Graphics320x200x256 {
	return &Graphics320x200x256{ctrl: ctrl}
}

func (g *Graphics320x200x256) Size() (int, int) {
	return ModeGraphics320x200x256.Width, ModeGraphics320x200x256.Height
}

func (g *Graphics320x200x256) Enable() error {
	return g.ctrl.LoadMode(ModeGraphics320x200x256)
}

// SetPixel writes one pixel. Coordinates outside the screen return
// ErrOutOfBounds.
func (g *Graphics320x200x256) SetPixel(x, y int, color uint8) error {
	mode := ModeGraphics320x200x256
	if x < 0 || x >= mode.Width || y < 0 || y >= mode.Height {
		return ErrOutOfBounds
	}
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	g.ctrl.writeChunky(base, x, y, mode.Width, color)
	return nil
}

// Pixel reads one pixel back.
func (g *Graphics320x200x256) Pixel(x, y int) (uint8, error) {
	mode := ModeGraphics320x200x256
	if x < 0 || x >= mode.Width || y < 0 || y >= mode.Height {
		return 0, ErrOutOfBounds
	}
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return 0, err
	}
	return g.ctrl.readChunky(base, x, y, mode.Width), nil
}

// ClearScreen fills the screen with one palette index.
func (g *Graphics320x200x256) ClearScreen(color uint8) error {
	mode := ModeGraphics320x200x256
	g.ctrl.mu.Lock()
	defer g.ctrl.mu.Unlock()
	base, err := g.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	for offset := 0; offset < mode.Width*mode.Height; offset++ {
		g.ctrl.mem.WriteByte(base+uint32(offset), color)
	}
	return nil
}

// Clear blanks the screen to palette index 0.
func (g *Graphics320x200x256) Clear() error {
	return g.ClearScreen(0)
}

var _ GraphicsScreen = (*Graphics320x200x256)(nil)
