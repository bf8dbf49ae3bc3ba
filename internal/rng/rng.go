// Package rng provides the random source used for food placement.
// It wraps math/rand/v2 so the simulation can run either from an
// entropy seed or from a fixed seed for reproducible games.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source produces uniformly distributed integers in a closed range.
type Source struct {
	r *rand.Rand
}

// New creates a Source seeded from the operating system's entropy pool.
func New() *Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand only fails on broken systems; fall back to the
		// runtime-seeded global generator.
		binary.LittleEndian.PutUint64(seed[:8], rand.Uint64())
		binary.LittleEndian.PutUint64(seed[8:16], rand.Uint64())
	}
	return &Source{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeeded creates a deterministic Source. Two sources built from the
// same seed yield the same sequence.
func NewSeeded(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a value uniformly distributed in [min, max].
// If min > max the bounds are swapped.
func (s *Source) Next(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.r.IntN(max-min+1)
}
