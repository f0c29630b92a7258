package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// seedCell draws one cell for Randomize: alive when a uniform draw on [0,10)
// rounds below 2.
func (r *RNG) seedCell() uint8 {
	if math.Round(r.r.Float64()*10) < 2 {
		return 1
	}
	return 0
}

// FillDensity fills buf with 0/1 values, each alive with probability p.
func (r *RNG) FillDensity(buf []uint8, p float64) {
	for i := range buf {
		if r.r.Float64() < p {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
