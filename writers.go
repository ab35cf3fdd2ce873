// writers.go - Screen writer interfaces and the shared text mode base

package vgacore

// Screen is anything the controller can program as a display mode.
type Screen interface {
	// Size returns the screen dimensions: columns and rows for text
	// modes, pixels for graphics modes.
	Size() (width, height int)
	// Enable programs the mode onto the hardware and makes it active.
	Enable() error
	// Clear resets the whole frame buffer to the mode's blank state.
	Clear() error
}

// TextScreen is a character cell mode.
type TextScreen interface {
	Screen
	WriteCharacter(column, row int, sc ScreenCharacter) error
	ReadCharacter(column, row int) (ScreenCharacter, error)
	WriteString(column, row int, text string, attribute TextAttribute) error
	FillScreen(sc ScreenCharacter) error
	SetCursorPosition(column, row int) error
	EnableCursor(start, end uint8) error
	DisableCursor() error
}

// GraphicsScreen is a pixel addressed mode. Color is a palette index;
// 16-color modes use the low 4 bits.
type GraphicsScreen interface {
	Screen
	SetPixel(x, y int, color uint8) error
	Pixel(x, y int) (uint8, error)
	// ClearScreen fills every pixel with one palette index.
	ClearScreen(color uint8) error
}

// textScreen carries the cell access and cursor logic shared by the
// concrete text modes.
type textScreen struct {
	ctrl *Controller
	mode *ModeDescriptor
}

func (t *textScreen) Size() (int, int) {
	return t.mode.Width, t.mode.Height
}

func (t *textScreen) Enable() error {
	if err := t.ctrl.LoadMode(t.mode); err != nil {
		return err
	}
	font := Font8x16
	if t.mode.FontHeight == 8 {
		font = Font8x8
	}
	return t.ctrl.LoadFont(font)
}

func (t *textScreen) checkCell(column, row int) error {
	if column < 0 || column >= t.mode.Width || row < 0 || row >= t.mode.Height {
		return ErrOutOfBounds
	}
	return nil
}

func (t *textScreen) WriteCharacter(column, row int, sc ScreenCharacter) error {
	if err := t.checkCell(column, row); err != nil {
		return err
	}
	t.ctrl.mu.Lock()
	defer t.ctrl.mu.Unlock()
	base, err := t.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	t.ctrl.writeCell(base, column, row, t.mode.Width, sc)
	return nil
}

func (t *textScreen) ReadCharacter(column, row int) (ScreenCharacter, error) {
	if err := t.checkCell(column, row); err != nil {
		return ScreenCharacter{}, err
	}
	t.ctrl.mu.Lock()
	defer t.ctrl.mu.Unlock()
	base, err := t.ctrl.frameBufferAddr()
	if err != nil {
		return ScreenCharacter{}, err
	}
	return t.ctrl.readCell(base, column, row, t.mode.Width), nil
}

// WriteString lays text out left to right from (column, row), wrapping
// onto following rows and stopping at the bottom of the screen.
func (t *textScreen) WriteString(column, row int, text string, attribute TextAttribute) error {
	if err := t.checkCell(column, row); err != nil {
		return err
	}
	t.ctrl.mu.Lock()
	defer t.ctrl.mu.Unlock()
	base, err := t.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	for i := 0; i < len(text); i++ {
		if row >= t.mode.Height {
			break
		}
		t.ctrl.writeCell(base, column, row, t.mode.Width, ScreenCharacter{
			Character: text[i],
			Attribute: attribute,
		})
		column++
		if column >= t.mode.Width {
			column = 0
			row++
		}
	}
	return nil
}

func (t *textScreen) FillScreen(sc ScreenCharacter) error {
	t.ctrl.mu.Lock()
	defer t.ctrl.mu.Unlock()
	base, err := t.ctrl.frameBufferAddr()
	if err != nil {
		return err
	}
	for row := 0; row < t.mode.Height; row++ {
		for column := 0; column < t.mode.Width; column++ {
			t.ctrl.writeCell(base, column, row, t.mode.Width, sc)
		}
	}
	return nil
}

func (t *textScreen) Clear() error {
	return t.FillScreen(NewScreenCharacter(' ', Yellow, Black))
}

// SetCursorPosition moves the hardware cursor to a cell.
func (t *textScreen) SetCursorPosition(column, row int) error {
	if err := t.checkCell(column, row); err != nil {
		return err
	}
	t.ctrl.mu.Lock()
	defer t.ctrl.mu.Unlock()
	offset := uint16(row*t.mode.Width + column)
	mode := t.ctrl.regs.EmulationMode()
	t.ctrl.regs.WriteCrtc(mode, CRTC_CURSOR_LOCATION_HIGH, uint8(offset>>8))
	t.ctrl.regs.WriteCrtc(mode, CRTC_CURSOR_LOCATION_LOW, uint8(offset))
	return nil
}

// EnableCursor shows the hardware cursor between two scan lines of the
// cell, 0 at the top.
func (t *textScreen) EnableCursor(start, end uint8) error {
	t.ctrl.mu.Lock()
	defer t.ctrl.mu.Unlock()
	mode := t.ctrl.regs.EmulationMode()
	current := t.ctrl.regs.ReadCrtc(mode, CRTC_CURSOR_START) &^ (CRTC_CURSOR_DISABLE | 0x1F)
	t.ctrl.regs.WriteCrtc(mode, CRTC_CURSOR_START, current|(start&0x1F))
	currentEnd := t.ctrl.regs.ReadCrtc(mode, CRTC_CURSOR_END) &^ 0x1F
	t.ctrl.regs.WriteCrtc(mode, CRTC_CURSOR_END, currentEnd|(end&0x1F))
	return nil
}

// DisableCursor hides the hardware cursor without losing its shape.
func (t *textScreen) DisableCursor() error {
	t.ctrl.mu.Lock()
	defer t.ctrl.mu.Unlock()
	mode := t.ctrl.regs.EmulationMode()
	current := t.ctrl.regs.ReadCrtc(mode, CRTC_CURSOR_START)
	t.ctrl.regs.WriteCrtc(mode, CRTC_CURSOR_START, current|CRTC_CURSOR_DISABLE)
	return nil
}
