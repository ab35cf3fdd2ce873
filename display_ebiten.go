//go:build !headless

// display_ebiten.go - Ebiten windowed display for the emulated card

package vgacore

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var statusColor = color.RGBA{R: 0x80, G: 0xFF, B: 0x80, A: 0xFF}

// Display presents an emulated card's scanout somewhere visible.
type Display interface {
	// Run blocks, presenting frames until the window closes or the
	// backend stops.
	Run() error
	// Stop asks a running display to shut down.
	Stop()
}

// EbitenDisplay rescans the card every frame and presents it in a
// window. The status line shows the geometry the CRTC currently
// resolves to.
type EbitenDisplay struct {
	card *EmulatedCard

	mu       sync.Mutex
	texture  *ebiten.Image
	lastSize image.Point

	frameCount uint64
	stopped    atomic.Bool
	showStatus bool
}

// NewEbitenDisplay builds a windowed display over card.
func NewEbitenDisplay(card *EmulatedCard) *EbitenDisplay {
	return &EbitenDisplay{card: card, showStatus: true}
}

func (d *EbitenDisplay) Run() error {
	ebiten.SetWindowSize(720, 480)
	ebiten.SetWindowTitle("vgacore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(d)
}

func (d *EbitenDisplay) Stop() {
	d.stopped.Store(true)
}

func (d *EbitenDisplay) Update() error {
	if d.stopped.Load() {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	frame := d.card.Render()
	size := frame.Bounds().Size()

	d.mu.Lock()
	if d.texture == nil || size != d.lastSize {
		d.texture = ebiten.NewImage(size.X, size.Y)
		d.lastSize = size
	}
	d.texture.WritePixels(frame.Pix)
	texture := d.texture
	d.mu.Unlock()

	screen.Clear()
	bounds := screen.Bounds().Size()
	var op ebiten.DrawImageOptions
	scaleX := float64(bounds.X) / float64(size.X)
	scaleY := float64(bounds.Y) / float64(size.Y)
	op.GeoM.Scale(scaleX, scaleY)
	screen.DrawImage(texture, &op)

	atomic.AddUint64(&d.frameCount, 1)
	if d.showStatus {
		status := fmt.Sprintf("%dx%d frame %d", size.X, size.Y, atomic.LoadUint64(&d.frameCount))
		text.Draw(screen, status, basicfont.Face7x13, 4, bounds.Y-4, statusColor)
	}
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
