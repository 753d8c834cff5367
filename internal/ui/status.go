package ui

import (
	"fmt"

	"lifeview/internal/sim"
)

// StatusLines summarizes the simulation for the HUD.
func StatusLines(s *sim.State) []string {
	size := s.Size()
	state := "running"
	if s.Paused {
		state = "paused"
	}
	pop := s.Grid().Population()
	return []string{
		fmt.Sprintf("gen %d  %s", s.Generation, state),
		fmt.Sprintf("alive %d/%d (%.1f%%)", pop, size.Cells(), 100*float64(pop)/float64(size.Cells())),
		fmt.Sprintf("board %s", s.Status),
		fmt.Sprintf("color #%02x%02x%02x", s.Color.R, s.Color.G, s.Color.B),
	}
}

// HelpLine lists the key bindings.
const HelpLine = "space pause  n step  r random  esc clear  c/v color  h hud  q quit"
