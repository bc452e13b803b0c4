package rng

import "math/rand"

// Seeded wraps math/rand with an explicit seed.
// Use it in tests where a deterministic shuffle is required.
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a Seeded generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
