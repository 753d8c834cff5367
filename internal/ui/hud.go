//go:build ebiten

package ui

import (
	"image/color"

	"lifeview/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel in the top-left corner of the grid.
type HUD struct {
	sim *sim.State
}

// NewHUD constructs a HUD for the provided simulation state.
func NewHUD(s *sim.State) *HUD {
	return &HUD{sim: s}
}

// Draw paints the panel when the HUD is enabled.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.sim.ShowHUD {
		return
	}
	face := basicfont.Face7x13
	lines := append(StatusLines(h.sim), HelpLine)

	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines)*lineHeight + 2*panelPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height), panelColor, false)

	for i, line := range lines {
		y := panelPadding + (i+1)*lineHeight - 3
		col := textColor
		if i == len(lines)-1 {
			col = helpColor
		}
		text.Draw(screen, line, face, panelPadding, y, col)
	}
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	helpColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding = 6
	lineHeight   = 16
)
