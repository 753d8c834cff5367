package sim

import (
	"testing"

	"lifeview/internal/core"
	"lifeview/internal/life"
)

func newState(t *testing.T, opts Options) *State {
	t.Helper()
	if opts.CellSize == 0 {
		opts.CellSize = 10
	}
	return New(core.NewStore(16, 16, 1), opts)
}

func TestPaintGestureSetsCells(t *testing.T) {
	s := newState(t, Options{Paused: true})
	s.PointerDown(15, 25)
	if !s.Grid().Get(1, 2) {
		t.Fatal("click on dead cell did not set it")
	}
	if s.Paint != PaintSet {
		t.Fatalf("paint mode = %v, want set", s.Paint)
	}

	s.PointerMove(35, 25)
	s.PointerMove(45, 25)
	for x := 1; x <= 4; x++ {
		if x == 2 {
			continue
		}
		if !s.Grid().Get(x, 2) {
			t.Fatalf("drag did not paint (%d,2)", x)
		}
	}

	s.PointerUp()
	if s.Paint != PaintNone {
		t.Fatalf("paint mode after release = %v, want none", s.Paint)
	}
	s.PointerMove(95, 95)
	if s.Grid().Get(9, 9) {
		t.Fatal("move without a gesture painted a cell")
	}
}

func TestPaintGestureErasesFromLiveCell(t *testing.T) {
	s := newState(t, Options{Paused: true})
	g := s.Grid()
	for x := 0; x < 4; x++ {
		g.Set(x, 0, true)
	}
	s.PointerDown(5, 5)
	if g.Get(0, 0) {
		t.Fatal("click on live cell did not clear it")
	}
	if s.Paint != PaintClear {
		t.Fatalf("paint mode = %v, want clear", s.Paint)
	}
	s.PointerMove(15, 5)
	s.PointerMove(25, 5)
	// Erase mode stays fixed even when the drag crosses dead cells.
	s.PointerMove(55, 5)
	if g.Get(1, 0) || g.Get(2, 0) || g.Get(5, 0) {
		t.Fatal("erase drag left cells alive or painted a dead one")
	}
	if !g.Get(3, 0) {
		t.Fatal("erase drag touched a cell it never crossed")
	}
}

func TestPointerOutsideGridIsIgnored(t *testing.T) {
	s := newState(t, Options{Paused: true})
	for _, p := range [][2]int{{-1, 5}, {5, -1}, {160, 5}, {5, 160}, {1000, 1000}} {
		s.PointerDown(p[0], p[1])
		if s.Paint != PaintNone {
			t.Fatalf("pointer at %v started a gesture", p)
		}
	}
	if s.Grid().Population() != 0 {
		t.Fatal("out-of-range clicks changed the grid")
	}

	s.PointerDown(5, 5)
	s.PointerMove(500, 5)
	if s.Grid().Population() != 1 {
		t.Fatalf("population = %d, want 1", s.Grid().Population())
	}
}

func TestPausedStateDoesNotStep(t *testing.T) {
	s := newState(t, Options{Paused: true})
	for x := 5; x <= 7; x++ {
		s.Grid().Set(x, 5, true)
	}
	if s.Update() {
		t.Fatal("paused state advanced a generation")
	}
	if s.Background() != PausedBackground {
		t.Fatal("paused background is not blue")
	}

	s.Apply(StepOnce)
	if !s.Update() {
		t.Fatal("single step did not advance while paused")
	}
	if s.Generation != 1 || !s.Grid().Get(6, 4) {
		t.Fatal("single step did not rotate the blinker")
	}
	if s.Update() {
		t.Fatal("single step advanced more than once")
	}
}

func TestRunningStateStepsEveryFrame(t *testing.T) {
	s := newState(t, Options{})
	if s.Background() != RunningBackground {
		t.Fatal("running background is not black")
	}
	for i := 0; i < 3; i++ {
		if !s.Update() {
			t.Fatalf("frame %d did not advance", i)
		}
	}
	if s.Generation != 3 {
		t.Fatalf("generation = %d, want 3", s.Generation)
	}

	s.Apply(TogglePause)
	if !s.Paused || s.Update() {
		t.Fatal("toggle pause did not stop the simulation")
	}
}

func TestClearAndRandomizeCommands(t *testing.T) {
	s := newState(t, Options{Paused: true, Density: 1})
	s.Apply(Randomize)
	if s.Grid().Population() != 256 {
		t.Fatalf("population after randomize = %d, want 256", s.Grid().Population())
	}
	s.Apply(StepOnce)
	s.Update()
	s.Apply(Clear)
	if s.Grid().Population() != 0 {
		t.Fatal("clear left live cells")
	}
	if s.Generation != 0 {
		t.Fatalf("generation after clear = %d, want 0", s.Generation)
	}
	if s.Status != life.Extinct {
		t.Fatalf("status after clear = %v, want extinct", s.Status)
	}
}

func TestColorCommands(t *testing.T) {
	s := newState(t, Options{})
	if s.Color != White {
		t.Fatal("initial color is not white")
	}
	changed := false
	for i := 0; i < 4 && !changed; i++ {
		s.Apply(RandomColor)
		changed = s.Color != White
	}
	if !changed {
		t.Fatal("random color never differed from white")
	}
	if s.Color.A != 255 {
		t.Fatal("random color is not opaque")
	}
	s.Apply(ResetColor)
	if s.Color != White {
		t.Fatal("reset color did not restore white")
	}
}

func TestQuitStopsUpdates(t *testing.T) {
	s := newState(t, Options{})
	s.Apply(Quit)
	if s.Running {
		t.Fatal("quit left state running")
	}
	if s.Update() {
		t.Fatal("stopped state advanced")
	}
}

func TestToggleHUD(t *testing.T) {
	s := newState(t, Options{})
	s.Apply(ToggleHUD)
	if !s.ShowHUD {
		t.Fatal("HUD not shown after toggle")
	}
}

func TestScreenSize(t *testing.T) {
	s := newState(t, Options{CellSize: 10})
	if w, h := s.ScreenSize(); w != 160 || h != 160 {
		t.Fatalf("screen size = %dx%d, want 160x160", w, h)
	}
}
