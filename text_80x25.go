// text_80x25.go - Standard 80 column text mode

package vgacore

// Text80x25 is the 80x25 16-color text mode, the power-on default of
// most cards.
type Text80x25 struct {
	textScreen
}

// NewText80x25 builds the writer; Enable programs the mode.
func NewText80x25(ctrl *Controller) *Text80x25 {
	return &Text80x25{textScreen{ctrl: ctrl, mode: ModeText80x25}}
}

var _ TextScreen = (*Text80x25)(nil)
