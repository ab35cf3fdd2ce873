// display_term.go - Terminal presentation of the emulated text modes

package vgacore

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ansiFromColor16 maps the 16 hardware colors to ANSI SGR color codes.
// The bright set rides on the bold/bright offset.
var ansiFromColor16 = [16]int{
	30, 34, 32, 36, 31, 35, 33, 37,
	90, 94, 92, 96, 91, 95, 93, 97,
}

// TermDisplay dumps the text mode cell contents of an emulated card to
// a terminal with ANSI colors. Graphics modes have no terminal
// rendition and are skipped.
type TermDisplay struct {
	card *EmulatedCard
	out  io.Writer
}

// NewTermDisplay presents card on out; pass os.Stdout for the usual
// case.
func NewTermDisplay(card *EmulatedCard, out io.Writer) *TermDisplay {
	return &TermDisplay{card: card, out: out}
}

// Present writes one snapshot of the text screen. When out is not a
// terminal the colors are dropped and plain characters are written.
func (d *TermDisplay) Present() error {
	d.card.mu.Lock()
	if d.card.gc[GC_MISCELLANEOUS]&GC_MISC_GRAPHICS != 0 {
		d.card.mu.Unlock()
		return &HardwareError{
			Operation: "Present",
			Details:   "terminal display only renders text modes",
			Err:       ErrUnsupportedOperation,
		}
	}
	columns := int(d.card.crtc[CRTC_HORIZONTAL_DISPLAY_END]) + 1
	glyphHeight := int(d.card.crtc[CRTC_MAXIMUM_SCAN_LINE]&0x1F) + 1
	rows := d.card.textRowsLocked(glyphHeight)

	cells := make([]struct {
		ch   uint8
		attr uint8
	}, columns*rows)
	for i := range cells {
		cells[i].ch = d.card.planes[0][i]
		cells[i].attr = d.card.planes[1][i]
	}
	d.card.mu.Unlock()

	colored := false
	if f, ok := d.out.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			cell := cells[row*columns+col]
			ch := cell.ch
			if ch < 0x20 || ch > 0x7E {
				ch = ' '
			}
			if colored {
				fg := ansiFromColor16[cell.attr&0x0F]
				bg := ansiFromColor16[(cell.attr>>4)&0x07] + 10
				fmt.Fprintf(&sb, "\x1b[%d;%dm%c", fg, bg, ch)
			} else {
				sb.WriteByte(ch)
			}
		}
		if colored {
			sb.WriteString("\x1b[0m")
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(d.out, sb.String())
	return err
}

// textRowsLocked derives the row count from the CRTC, mirroring the
// frame renderer. Caller holds the card mutex.
func (c *EmulatedCard) textRowsLocked(glyphHeight int) int {
	if glyphHeight <= 0 {
		return 0
	}
	return c.displayHeight() / glyphHeight
}
