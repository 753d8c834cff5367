package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// TimeSeed returns a seed derived from the wall clock.
func TimeSeed() int64 { return time.Now().UnixNano() }

// Uint8 returns a random byte in [0, 255].
func (r *RNG) Uint8() uint8 {
	return uint8(r.r.UintN(256))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
