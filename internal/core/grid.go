package core

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// Grid stores a 2D grid of alive/dead cells in row-major order, packed eight
// cells to a byte. The most significant bit of each byte holds the leftmost
// cell, so W must be a multiple of 8.
type Grid struct {
	W, H   int
	stride int
	data   []byte
}

// NewGrid allocates an all-dead grid with the given dimensions. It panics when
// the dimensions cannot be packed.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	if w%8 != 0 {
		panic(fmt.Sprintf("core: grid width %d is not a multiple of 8", w))
	}
	stride := w / 8
	return &Grid{W: w, H: h, stride: stride, data: make([]byte, stride*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// In reports whether (x, y) addresses a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

func (g *Grid) locate(x, y int) (int, byte) {
	if !g.In(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return y*g.stride + x>>3, 0x80 >> uint(x&7)
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) bool {
	i, mask := g.locate(x, y)
	return g.data[i]&mask != 0
}

// Set writes the state of the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) {
	i, mask := g.locate(x, y)
	if alive {
		g.data[i] |= mask
		return
	}
	g.data[i] &^= mask
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Randomize sets each cell alive independently with probability p.
func (g *Grid) Randomize(r *rand.Rand, p float64) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, r.Float64() < p)
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, b := range g.data {
		n += bits.OnesCount8(b)
	}
	return n
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// CopyFrom overwrites g with the cells of src. Both grids must be the same size.
func (g *Grid) CopyFrom(src *Grid) {
	if g.W != src.W || g.H != src.H {
		panic(fmt.Sprintf("core: copy %dx%d grid into %dx%d", src.W, src.H, g.W, g.H))
	}
	copy(g.data, src.data)
}

// Bytes exposes the packed rows. Callers must treat the slice as read-only.
func (g *Grid) Bytes() []byte { return g.data }
