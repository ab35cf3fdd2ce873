// text_40x50.go - 40 column, 50 row text mode with the 8 line font

package vgacore

// Text40x50 doubles the rows of Text40x25 by halving the glyph height.
type Text40x50 struct {
	textScreen
}

// NewText40x50 builds the writer; Enable programs the mode and uploads
// the 8 scan line font.
func NewText40x50(ctrl *Controller) *Text40x50 {
	return &Text40x50{textScreen{ctrl: ctrl, mode: ModeText40x50}}
}

var _ TextScreen = (*Text40x50)(nil)
