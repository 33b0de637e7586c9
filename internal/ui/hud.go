//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLines      = 2
	hudLineHeight = 16
	hudPadding    = 6
	// Widest status line the controller produces, in glyphs.
	hudColumns = 64
)

// HUD renders status text in a strip below the board.
type HUD struct {
	fg color.Color
	bg color.Color
}

// NewHUD constructs a HUD with dark text on a light strip.
func NewHUD() *HUD {
	return &HUD{
		fg: color.Black,
		bg: color.RGBA{R: 210, G: 210, B: 210, A: 255},
	}
}

// Width returns the pixel width needed for a full status line.
func (h *HUD) Width() int {
	return 2*hudPadding + hudColumns*basicfont.Face7x13.Advance
}

// Height returns the pixel height of the strip.
func (h *HUD) Height() int {
	return 2*hudPadding + hudLines*hudLineHeight
}

// Draw paints lines into the strip starting at pixel row top.
func (h *HUD) Draw(screen *ebiten.Image, top int, lines []string) {
	if h == nil {
		return
	}
	w := screen.Bounds().Dx()
	strip := screen.SubImage(image.Rect(0, top, w, top+h.Height())).(*ebiten.Image)
	strip.Fill(h.bg)
	face := basicfont.Face7x13
	for i, line := range lines {
		if i >= hudLines {
			break
		}
		y := top + hudPadding + (i+1)*hudLineHeight - 4
		text.Draw(screen, line, face, hudPadding, y, h.fg)
	}
}
