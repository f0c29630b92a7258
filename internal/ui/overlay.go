//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws cell outlines on top of the grid.
type Overlay struct {
	size      core.Size
	scale     int
	showLines bool
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale, showLines: scale >= 4}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showLines || o.size.W <= 0 || o.size.H <= 0 || o.scale <= 1 {
		return
	}
	lineColor := color.RGBA{R: 180, G: 180, B: 190, A: 255}
	w := float64(o.size.W * o.scale)
	h := float64(o.size.H * o.scale)
	for col := 0; col <= o.size.W; col++ {
		o.fillRect(screen, float64(col*o.scale), 0, 1, h, lineColor)
	}
	for row := 0; row <= o.size.H; row++ {
		o.fillRect(screen, 0, float64(row*o.scale), w, 1, lineColor)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(o.pixel, op)
}
