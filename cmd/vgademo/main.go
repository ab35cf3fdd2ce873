// main.go - Demo: program the emulated card and show its scanout

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sixtyhz/vgacore"
)

func main() {
	var (
		modeName string
		terminal bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&modeName, "mode", "text80", "Mode: text80, text40, text50, 13h, modex, 12h")
	flagSet.BoolVar(&terminal, "term", false, "Dump text modes to the terminal instead of a window")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: vgademo [-mode text80|text40|text50|13h|modex|12h] [-term]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	card := vgacore.NewEmulatedCard()
	ctrl := vgacore.NewController(card, card)

	textMode := false
	switch modeName {
	case "text80", "text40", "text50":
		textMode = true
		if err := textDemo(ctrl, modeName); err != nil {
			log.Fatalf("text demo: %v", err)
		}
	case "13h":
		if err := chunkyDemo(ctrl); err != nil {
			log.Fatalf("13h demo: %v", err)
		}
	case "modex":
		if err := modeXDemo(ctrl); err != nil {
			log.Fatalf("mode X demo: %v", err)
		}
	case "12h":
		if err := planarDemo(ctrl); err != nil {
			log.Fatalf("12h demo: %v", err)
		}
	default:
		fmt.Printf("Error: unknown mode %q\n", modeName)
		os.Exit(1)
	}

	if terminal {
		if !textMode {
			log.Fatal("-term only renders text modes")
		}
		if err := vgacore.NewTermDisplay(card, os.Stdout).Present(); err != nil {
			log.Fatalf("terminal display: %v", err)
		}
		return
	}

	if err := vgacore.NewEbitenDisplay(card).Run(); err != nil {
		log.Fatalf("display: %v", err)
	}
}

func textDemo(ctrl *vgacore.Controller, modeName string) error {
	var screen vgacore.TextScreen
	switch modeName {
	case "text40":
		screen = vgacore.NewText40x25(ctrl)
	case "text50":
		screen = vgacore.NewText40x50(ctrl)
	default:
		screen = vgacore.NewText80x25(ctrl)
	}
	if err := screen.Enable(); err != nil {
		return err
	}
	if err := screen.Clear(); err != nil {
		return err
	}

	width, height := screen.Size()
	banner := fmt.Sprintf(" vgacore %dx%d ", width, height)
	if err := screen.WriteString(2, 1, banner,
		vgacore.NewTextAttribute(vgacore.Black, vgacore.LightGray)); err != nil {
		return err
	}
	for color := vgacore.Color16(0); color < 16; color++ {
		row := 3 + int(color)
		if row >= height {
			break
		}
		line := fmt.Sprintf("color %2d", color)
		if err := screen.WriteString(2, row, line,
			vgacore.NewTextAttribute(color, vgacore.Black)); err != nil {
			return err
		}
	}
	return screen.SetCursorPosition(0, height-1)
}

func chunkyDemo(ctrl *vgacore.Controller) error {
	screen := vgacore.NewGraphics320x200x256(ctrl)
	if err := screen.Enable(); err != nil {
		return err
	}
	if err := screen.Clear(); err != nil {
		return err
	}

	width, height := screen.Size()
	// One horizontal band per palette row.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := screen.SetPixel(x, y, uint8((y/8)*16+x/20)); err != nil {
				return err
			}
		}
	}
	return vgacore.DrawString(screen, vgacore.Point{X: 8, Y: 8}, "mode 13h", 15)
}

func modeXDemo(ctrl *vgacore.Controller) error {
	screen := vgacore.NewGraphics320x240x256(ctrl)
	if err := screen.Enable(); err != nil {
		return err
	}
	if err := screen.Clear(); err != nil {
		return err
	}

	if err := vgacore.DrawTriangle(screen,
		vgacore.Point{X: 160, Y: 20},
		vgacore.Point{X: 40, Y: 200},
		vgacore.Point{X: 280, Y: 200}, 40); err != nil {
		return err
	}
	if err := vgacore.DrawRect(screen,
		vgacore.Point{X: 10, Y: 10}, vgacore.Point{X: 309, Y: 229}, 15); err != nil {
		return err
	}
	return vgacore.DrawString(screen, vgacore.Point{X: 8, Y: 16}, "mode X", 15)
}

func planarDemo(ctrl *vgacore.Controller) error {
	screen := vgacore.NewGraphics640x480x16(ctrl)
	if err := screen.Enable(); err != nil {
		return err
	}
	if err := screen.Clear(); err != nil {
		return err
	}

	center := vgacore.Point{X: 320, Y: 240}
	for i := 0; i < 16; i++ {
		edge := vgacore.Point{X: 40 * i, Y: 0}
		if err := vgacore.DrawLine(screen, center, edge, uint8(i)); err != nil {
			return err
		}
		edge = vgacore.Point{X: 40 * i, Y: 479}
		if err := vgacore.DrawLine(screen, center, edge, uint8(15-i)); err != nil {
			return err
		}
	}
	return vgacore.DrawString(screen, vgacore.Point{X: 8, Y: 8}, "mode 12h", 15)
}
