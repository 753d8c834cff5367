package ui

import (
	"strings"
	"testing"

	"lifeview/internal/core"
	"lifeview/internal/sim"
)

func TestStatusLines(t *testing.T) {
	s := sim.New(core.NewStore(8, 8, 1), sim.Options{CellSize: 10, Paused: true})
	s.PointerDown(5, 5)
	s.PointerMove(15, 5)

	lines := StatusLines(s)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "gen 0") || !strings.Contains(lines[0], "paused") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "alive 2/64") {
		t.Fatalf("unexpected population line %q", lines[1])
	}
	if lines[3] != "color #ffffff" {
		t.Fatalf("unexpected color line %q", lines[3])
	}
}
