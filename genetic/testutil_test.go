// Package genetic_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package genetic_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/cerber-os/PSZT/genetic"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches the engine's length stabilization grain (1e-9): strict
	// threshold for comparing tour lengths that went through rounding.
	epsTiny = 1e-9

	// seedDet is the deterministic seed used wherever a test needs its own
	// RNG stream; it equals the engine's zero-seed default on purpose.
	seedDet = int64(1)

	// seedAlt is a second stream for tests that need independent randomness.
	seedAlt = int64(42)

	// repeatN is the default round count for determinism/stability checks.
	repeatN = 25
)

// -----------------------------------------------------------------------------
// Minimal distance implementations for tests
// -----------------------------------------------------------------------------

// rawDist is a dense matrix-backed Distances with no validation of its own;
// tests use it to feed both well-formed and deliberately broken entries.
type rawDist struct{ a [][]float64 }

var _ genetic.Distances = rawDist{}

func (m rawDist) Size() int           { return len(m.a) }
func (m rawDist) At(i, j int) float64 { return m.a[i][j] }

// euclid builds a symmetric metric from 2D points with zero diagonal.
func euclid(pts [][2]float64) rawDist {
	n := len(pts)
	a := make([][]float64, n)
	// Pre-allocate row slices.
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	// Fill upper triangle with Euclidean distances, mirror to lower triangle.
	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Hypot(dx, dy) // stable sqrt(dx*dx+dy*dy)
			a[i][j] = d
			a[j][i] = d
		}
	}

	return rawDist{a: a}
}

// ringPoints places n points evenly on a circle of the given radius.
// The optimal cyclic tour over such points is the ring itself.
func ringPoints(n int, radius float64) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{radius * math.Cos(angle), radius * math.Sin(angle)}
	}

	return pts
}

// scatterPoints draws n pseudo-random points from a fixed stream so every
// test run sees the same instance.
func scatterPoints(n int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions)
// -----------------------------------------------------------------------------

// detRNG returns a fresh deterministic stream for one test scenario.
func detRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrInvalidPermutation, ErrBadDistance, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustBePermutation asserts that c is a valid permutation of 0..n-1.
func mustBePermutation(t *testing.T, c genetic.Chromosome, n int) {
	t.Helper()
	if err := c.Validate(n); err != nil {
		t.Fatalf("not a permutation of 0..%d: %v (%v)", n-1, c, err)
	}
}

// mustFloatClose asserts |got-want| <= abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}
