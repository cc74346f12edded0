package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillRandom replaces every cell with a live cell at the given density.
func FillRandom(g *Grid, seed int64, density float64) {
	if density <= 0 {
		g.Clear()
		return
	}
	rng := NewRNG(seed)
	cells := g.Cells()
	for i := range cells {
		cells[i] = rng.Chance(density)
	}
}
