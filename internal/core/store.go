package core

// Store owns the current and next generation grids and the random source
// used to fill them.
type Store struct {
	cur  *Grid
	next *Grid
	rng  *RNG
}

// NewStore allocates two all-dead w×h grids. A zero seed selects a time-based
// seed.
func NewStore(w, h int, seed int64) *Store {
	if seed == 0 {
		seed = TimeSeed()
	}
	return &Store{
		cur:  NewGrid(w, h),
		next: NewGrid(w, h),
		rng:  NewRNG(seed),
	}
}

// Current returns the authoritative grid: the one rendered and edited.
func (s *Store) Current() *Grid { return s.cur }

// Next returns the scratch grid written while computing a generation.
func (s *Store) Next() *Grid { return s.next }

// Size returns the dimensions shared by both grids.
func (s *Store) Size() Size { return s.cur.Size() }

// RNG returns the store's random source.
func (s *Store) RNG() *RNG { return s.rng }

// Swap promotes next to current. No cells are copied.
func (s *Store) Swap() {
	s.cur, s.next = s.next, s.cur
}

// ClearAll kills every cell of the current grid.
func (s *Store) ClearAll() {
	s.cur.Clear()
}

// Randomize fills the current grid, each cell alive with probability p.
func (s *Store) Randomize(p float64) {
	s.cur.Randomize(s.rng.Source(), p)
}
