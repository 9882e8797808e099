// Package genetic — distance access and cyclic tour length.
//
// This file provides the read interface the engine consumes and the small,
// allocation-conscious helpers that turn a chromosome into its fitness.
//
// Design:
//   - Distances is the minimal surface a city collaborator must satisfy;
//     the engine prefetches it once into a linearized buffer w[i*n+j] and
//     never touches the interface again inside the loop.
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive checks (NaN/±Inf/negative) on every edge, even though the
//     engine validates the whole matrix upfront.
//   - Stable summation: results rounded to 1e-9 to avoid cross-platform FP noise.
package genetic

import "math"

// roundScale controls final length stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// Distances exposes a square matrix of pairwise city distances.
//
// Contract:
//   - Size returns n, the number of cities.
//   - At(i, j) is defined for all i, j in [0..n-1]; entries are finite,
//     non-negative, and the diagonal is exactly zero.
//
// Symmetry is not required: the cyclic length sums directed edges.
type Distances interface {
	// Size returns the number of cities n.
	Size() int

	// At returns the distance from city i to city j.
	At(i, j int) float64
}

// TourLength computes the cyclic length of the tour encoded by perm against d:
// the sum of d.At(perm[i], perm[i+1]) over consecutive pairs plus the closing
// edge d.At(perm[n-1], perm[0]). Pure function of its inputs.
//
// Degenerate shapes follow the cycle definition: a single-city tour has
// length 0 (the closing edge is the zero diagonal), a two-city tour is the
// round trip d(a,b)+d(b,a).
//
// Errors:
//   - ErrInvalidPermutation when perm is not a permutation of 0..n-1.
//   - ErrBadDistance when any traversed edge is NaN, ±Inf, or negative.
//
// Complexity: O(n) time, O(n) space (permutation check markers).
func TourLength(d Distances, perm []int) (float64, error) {
	if d == nil {
		return 0, ErrBadDistance
	}
	var n int
	n = d.Size()
	if err := validatePermutation(perm, n); err != nil {
		return 0, err
	}

	var (
		sum float64 // running cyclic length
		i   int     // edge index
		u   int     // edge tail
		v   int     // edge head
		w   float64 // edge weight under validation
	)
	for i = 0; i < n; i++ {
		u = perm[i]
		v = perm[(i+1)%n] // the last edge closes the cycle back to perm[0]

		w = d.At(u, v)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrBadDistance
		}
		if w < 0 {
			return 0, ErrBadDistance
		}

		sum += w
	}

	return round1e9(sum), nil
}

// tourLengthLinear sums the cyclic tour length over the engine's prefetched
// weight buffer w (layout w[u*n+v]). The permutation is valid by construction
// inside the engine, so no checks are repeated here.
//
// Complexity: O(n) time, O(1) space.
func tourLengthLinear(w []float64, n int, perm []int) float64 {
	var (
		sum float64
		i   int
		u   int
		v   int
	)
	for i = 0; i < n; i++ {
		u = perm[i]
		v = perm[(i+1)%n]
		sum += w[u*n+v]
	}

	return round1e9(sum)
}

// prefetchWeights validates every entry of d and copies it into a fresh
// linearized buffer w[i*n+j]. Hot loops then index w directly instead of
// paying an interface call per edge.
//
// Checks performed per entry:
//   - finite (no NaN, no ±Inf),
//   - non-negative,
//   - exactly zero on the diagonal.
//
// Any violation yields ErrBadDistance wrapped with the entry coordinates.
//
// Complexity: O(n²) time, O(n²) space.
func prefetchWeights(d Distances, n int) ([]float64, error) {
	w := make([]float64, n*n)

	var (
		i int     // row under scan
		j int     // column under scan
		x float64 // entry under validation
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = d.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, wrapBadDistance(i, j, x)
			}
			if x < 0 {
				return nil, wrapBadDistance(i, j, x)
			}
			if i == j && x != 0 {
				return nil, wrapBadDistance(i, j, x)
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps lengths stable across platforms without affecting correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
