// Package genetic — RNG utilities shared by every randomized component.
//
// This file centralizes deterministic random generation for the whole engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//   - Performance: O(1) helpers, O(n) shuffles, no hidden allocations.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The engine is single-threaded by
//     contract and owns exactly one *rand.Rand; do not share it across goroutines.
package genetic

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// distinctPair draws two distinct indices from [0..n-1], each pair equally
// likely. The second index is drawn from a range one smaller and shifted past
// the first, which avoids rejection loops entirely.
//
// Contract: n ≥ 2 and rng != nil (callers guarantee both).
// The returned indices are NOT ordered; order them if a segment is needed.
//
// Complexity: O(1).
func distinctPair(n int, rng *rand.Rand) (int, int) {
	var (
		i int
		j int
	)
	i = rng.Intn(n)
	j = rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
