//go:build headless

// display_headless.go - Null display for headless builds

package vgacore

import (
	"sync/atomic"
	"time"
)

// Display presents an emulated card's scanout somewhere visible.
type Display interface {
	Run() error
	Stop()
}

// HeadlessDisplay renders frames at the usual cadence and discards
// them, so timing-dependent callers behave the same without a window.
type HeadlessDisplay struct {
	card    *EmulatedCard
	stopped atomic.Bool
}

// NewEbitenDisplay returns the headless stand-in under the headless
// build tag, keeping callers backend-agnostic.
func NewEbitenDisplay(card *EmulatedCard) *HeadlessDisplay {
	return &HeadlessDisplay{card: card}
}

func (d *HeadlessDisplay) Run() error {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for range ticker.C {
		if d.stopped.Load() {
			return nil
		}
		d.card.Render()
	}
	return nil
}

func (d *HeadlessDisplay) Stop() {
	d.stopped.Store(true)
}
