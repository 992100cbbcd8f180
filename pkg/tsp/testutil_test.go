package tsp

import "math/rand/v2"

// newTestRNG returns a deterministic rng for test fixtures, seeded the same
// way the annealer seeds its own stream.
func newTestRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
