package fire

import "math/rand/v2"

// Source is the random stream consumed by Initialize and Step.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Uint64 seeds sub-streams for the parallel step.
	Uint64() uint64
}

// NewSource returns a deterministic PCG stream for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
