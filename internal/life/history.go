package life

import (
	"hash/fnv"

	"lifeview/internal/core"
)

// Status classifies recent board behavior.
type Status uint8

const (
	// Active means the board differs from the last two generations.
	Active Status = iota
	// Still means the board equals the previous generation.
	Still
	// Oscillating means the board equals the generation before the previous one.
	Oscillating
	// Extinct means no cell is alive.
	Extinct
)

func (s Status) String() string {
	switch s {
	case Still:
		return "still"
	case Oscillating:
		return "period 2"
	case Extinct:
		return "extinct"
	default:
		return "active"
	}
}

// History remembers hashes of the last two generations to spot boards that
// stopped evolving.
type History struct {
	prev  [2]uint64
	count int
}

// Hash returns an FNV-1a hash of the packed cells.
func Hash(g *core.Grid) uint64 {
	h := fnv.New64a()
	h.Write(g.Bytes())
	return h.Sum64()
}

// Observe records g and reports its status relative to earlier observations.
func (h *History) Observe(g *core.Grid) Status {
	sum := Hash(g)
	status := Active
	switch {
	case g.Population() == 0:
		status = Extinct
	case h.count >= 1 && h.prev[0] == sum:
		status = Still
	case h.count >= 2 && h.prev[1] == sum:
		status = Oscillating
	}
	h.prev[1], h.prev[0] = h.prev[0], sum
	if h.count < 2 {
		h.count++
	}
	return status
}

// Reset forgets all observations. Call it after the board is edited.
func (h *History) Reset() {
	*h = History{}
}
