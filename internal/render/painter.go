//go:build ebiten

package render

import (
	"image/color"

	"lifeview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws a grid as one scaled pixel per cell, so every live cell
// becomes a filled scale×scale rectangle over the background color.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, background color.Color, scale int) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	FillRGBA(gp.buf, g, on, background)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
