// Package genetic — swap mutation.
package genetic

import "math/rand"

// SwapMutateInPlace perturbs c with probability p: one coin flip, and on
// success two distinct positions drawn uniformly exchange their genes.
// The engine applies it once per offspring per generation, each with an
// independent coin.
//
// Probability bounds behave exactly as configured: p ≤ 0 never mutates,
// p ≥ 1 always does — and since genes are unique, a swap of two distinct
// positions always changes the tour.
//
// Chromosomes shorter than two genes admit no swap and return untouched
// before any draw. The permutation invariant is preserved trivially: a swap
// permutes positions, never values.
//
// Contract: p was validated into [0,1] by the engine; rng != nil when called
// from the engine (nil falls back to the deterministic default stream).
//
// Complexity: O(1).
func SwapMutateInPlace(c Chromosome, p float64, rng *rand.Rand) {
	if len(c) < 2 {
		return
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	// One coin per call; Float64 ∈ [0,1), so p==1 always fires and p==0 never.
	if r.Float64() >= p {
		return
	}

	var (
		i int
		j int
	)
	i, j = distinctPair(len(c), r)
	c[i], c[j] = c[j], c[i]
}
