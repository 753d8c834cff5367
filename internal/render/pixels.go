package render

import (
	"image/color"

	"lifeview/internal/core"
)

// FillRGBA converts the cells of g into one RGBA pixel per cell in buf: on for
// live cells, off for dead ones. buf must hold 4*W*H bytes.
func FillRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			base := (y*g.W + x) * 4
			if g.Get(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
