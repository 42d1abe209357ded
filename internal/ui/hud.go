//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status bar along the top edge of the board.
type HUD struct {
	src   StatusSource
	pixel *ebiten.Image
	line  string
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src StatusSource) *HUD {
	h := &HUD{src: src}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached status line.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	h.line = h.src.Status().String()
}

// Draw paints the status line over the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, h.line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*hudPadding), float64(hudHeight))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, h.line, face, hudPadding, hudBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

const (
	hudPadding  = 6
	hudHeight   = 20
	hudBaseline = 14
)
