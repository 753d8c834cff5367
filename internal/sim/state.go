// Package sim holds the interactive simulation state shared by the frontends:
// the grid store, pause flag, draw color and the paint gesture in progress.
// Every method must be called from the frame loop goroutine.
package sim

import (
	"image/color"

	"lifeview/internal/core"
	"lifeview/internal/life"
)

// PaintMode remembers what a mouse drag does to the cells it crosses.
type PaintMode uint8

const (
	PaintNone PaintMode = iota
	PaintSet
	PaintClear
)

func (m PaintMode) String() string {
	switch m {
	case PaintSet:
		return "set"
	case PaintClear:
		return "clear"
	default:
		return "none"
	}
}

// Command is a user action delivered by a frontend.
type Command uint8

const (
	TogglePause Command = iota
	Clear
	Randomize
	RandomColor
	ResetColor
	StepOnce
	ToggleHUD
	Quit
)

var (
	// White is the default draw color.
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// PausedBackground fills the screen while the simulation is paused.
	PausedBackground = color.RGBA{B: 255, A: 255}
	// RunningBackground fills the screen while generations advance.
	RunningBackground = color.RGBA{A: 255}
)

// Options configures a State.
type Options struct {
	CellSize int
	Density  float64
	GPS      int
	Paused   bool
	ShowHUD  bool
}

// State is the single owner of the grids and the scalar flags driven by the
// frame loop.
type State struct {
	store    *core.Store
	pacer    *core.FixedStep
	history  life.History
	cellSize int
	density  float64
	stepOnce bool

	Running    bool
	Paused     bool
	ShowHUD    bool
	Color      color.RGBA
	Paint      PaintMode
	Generation int
	Status     life.Status
}

// New wraps store in a running State.
func New(store *core.Store, opts Options) *State {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Density <= 0 || opts.Density > 1 {
		opts.Density = 0.5
	}
	s := &State{
		store:    store,
		pacer:    core.NewFixedStep(opts.GPS),
		cellSize: opts.CellSize,
		density:  opts.Density,
		Running:  true,
		Paused:   opts.Paused,
		ShowHUD:  opts.ShowHUD,
		Color:    White,
	}
	s.Status = s.history.Observe(store.Current())
	return s
}

// Grid returns the current generation.
func (s *State) Grid() *core.Grid { return s.store.Current() }

// Size returns the grid dimensions.
func (s *State) Size() core.Size { return s.store.Size() }

// CellSize returns the edge length of a cell in pixels.
func (s *State) CellSize() int { return s.cellSize }

// ScreenSize returns the pixel dimensions of the whole grid.
func (s *State) ScreenSize() (int, int) {
	size := s.store.Size()
	return size.W * s.cellSize, size.H * s.cellSize
}

// Background returns the fill color for the current pause state.
func (s *State) Background() color.RGBA {
	if s.Paused {
		return PausedBackground
	}
	return RunningBackground
}

// CellAt maps pixel coordinates to a cell. ok is false outside the grid.
func (s *State) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/s.cellSize, py/s.cellSize
	if !s.store.Current().In(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// PointerDown starts a paint gesture: a live cell is erased and the drag
// erases, a dead cell is set and the drag paints.
func (s *State) PointerDown(px, py int) {
	x, y, ok := s.CellAt(px, py)
	if !ok {
		return
	}
	g := s.store.Current()
	if g.Get(x, y) {
		g.Set(x, y, false)
		s.Paint = PaintClear
	} else {
		g.Set(x, y, true)
		s.Paint = PaintSet
	}
	s.edited()
}

// PointerMove applies the active paint gesture to the cell under the pointer.
func (s *State) PointerMove(px, py int) {
	if s.Paint == PaintNone {
		return
	}
	x, y, ok := s.CellAt(px, py)
	if !ok {
		return
	}
	s.store.Current().Set(x, y, s.Paint == PaintSet)
	s.edited()
}

// PointerUp ends the paint gesture.
func (s *State) PointerUp() {
	s.Paint = PaintNone
}

// Apply executes a user command.
func (s *State) Apply(cmd Command) {
	switch cmd {
	case TogglePause:
		s.Paused = !s.Paused
		if !s.Paused {
			s.pacer.Reset()
		}
	case Clear:
		s.store.ClearAll()
		s.Generation = 0
		s.edited()
	case Randomize:
		s.store.Randomize(s.density)
		s.Generation = 0
		s.edited()
	case RandomColor:
		rng := s.store.RNG()
		s.Color = color.RGBA{R: rng.Uint8(), G: rng.Uint8(), B: rng.Uint8(), A: 255}
	case ResetColor:
		s.Color = White
	case StepOnce:
		s.stepOnce = true
	case ToggleHUD:
		s.ShowHUD = !s.ShowHUD
	case Quit:
		s.Running = false
	}
}

// Update advances one generation when the simulation is running and the
// pacer allows it, or when a single step was requested. It reports whether a
// generation was computed.
func (s *State) Update() bool {
	if !s.Running {
		return false
	}
	step := s.stepOnce || (!s.Paused && s.pacer.ShouldStep())
	s.stepOnce = false
	if !step {
		return false
	}
	life.Advance(s.store)
	s.Generation++
	s.Status = s.history.Observe(s.store.Current())
	return true
}

func (s *State) edited() {
	s.history.Reset()
	s.Status = s.history.Observe(s.store.Current())
}
