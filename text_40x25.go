// text_40x25.go - 40 column text mode

package vgacore

// Text40x25 is the 40x25 16-color text mode.
type Text40x25 struct {
	textScreen
}

// NewText40x25 builds the writer; Enable programs the mode.
func NewText40x25(ctrl *Controller) *Text40x25 {
	return &Text40x25{textScreen{ctrl: ctrl, mode: ModeText40x25}}
}

var _ TextScreen = (*Text40x25)(nil)
