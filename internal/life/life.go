// Package life implements Conway's Game of Life over core grids with
// edge-clamped boundaries: cells outside the grid are never counted.
package life

import (
	"fmt"

	"lifeview/internal/core"
)

// Rule applies B3/S23: a live cell survives with 2 or 3 live neighbors and a
// dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Neighbors counts the live cells among the in-bounds 8-neighborhood of
// (x, y). Corner cells have 3 candidates, edge cells 5, interior cells 8.
func Neighbors(g *core.Grid, x, y int) int {
	x0, x1 := max(x-1, 0), min(x+1, g.W-1)
	y0, y1 := max(y-1, 0), min(y+1, g.H-1)
	n := 0
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.Get(nx, ny) {
				n++
			}
		}
	}
	return n
}

// Step writes the generation following cur into next. cur is only read and
// every cell of next is overwritten, so next may hold stale data on entry.
// The caller promotes next afterwards; see Advance.
func Step(cur, next *core.Grid) {
	if cur == next {
		panic("life: current and next grid are the same")
	}
	if cur.W != next.W || cur.H != next.H {
		panic(fmt.Sprintf("life: grid size mismatch %dx%d vs %dx%d", cur.W, cur.H, next.W, next.H))
	}
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			next.Set(x, y, Rule(cur.Get(x, y), Neighbors(cur, x, y)))
		}
	}
}

// Advance computes one generation in the store and swaps it into place.
func Advance(s *core.Store) {
	Step(s.Current(), s.Next())
	s.Swap()
}
