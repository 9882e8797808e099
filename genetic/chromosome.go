// Package genetic — the Chromosome type and its permutation invariant.
//
// A Chromosome encodes one candidate tour as an ordered sequence of city
// indices; the cycle implicitly closes from the last gene back to the first.
// The invariant maintained through its whole lifecycle is bijectivity: every
// index in 0..n-1 appears exactly once, never duplicated, never missing.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - Constructors copy their input; population members and best-so-far
//     snapshots never alias caller-owned memory.
//   - O(n) validation with a single boolean marker slice.
package genetic

import "math/rand"

// Chromosome is one candidate tour: a permutation of the city indices 0..n-1.
// The zero value is not usable; build instances via NewChromosome or
// RandomChromosome so the permutation invariant holds from birth.
type Chromosome []int

// NewChromosome builds a chromosome from an explicit gene sequence after
// verifying that genes is a permutation of {0..n-1} of length n.
// The input slice is copied; the caller keeps ownership of genes.
//
// Returns ErrInvalidPermutation when the sequence has the wrong length,
// an out-of-range gene, or a duplicate gene.
//
// Complexity: O(n) time, O(n) space.
func NewChromosome(genes []int, n int) (Chromosome, error) {
	if err := validatePermutation(genes, n); err != nil {
		return nil, err
	}
	c := make(Chromosome, n)
	copy(c, genes)

	return c, nil
}

// RandomChromosome returns a uniformly random permutation of 0..n-1 drawn
// from rng (Fisher–Yates). If rng==nil, the deterministic default stream is
// used (seed==0 policy). For n < 1 it returns ErrInvalidPermutation, since
// no permutation of an empty index range represents a tour.
//
// Complexity: O(n) time, O(n) space.
func RandomChromosome(n int, rng *rand.Rand) (Chromosome, error) {
	if n < 1 {
		return nil, ErrInvalidPermutation
	}
	c := make(Chromosome, n)

	var i int
	for i = 0; i < n; i++ {
		c[i] = i
	}
	shuffleIntsInPlace(c, rng)

	return c, nil
}

// Validate re-checks the permutation invariant against the expected size n.
// Intended for post-crossover sanity in tests and for callers that accept
// chromosomes from outside the package.
//
// Complexity: O(n) time, O(n) space.
func (c Chromosome) Validate(n int) error {
	return validatePermutation(c, n)
}

// Clone returns an independent copy of the chromosome.
// A nil chromosome clones to nil.
//
// Complexity: O(n) time, O(n) space.
func (c Chromosome) Clone() Chromosome {
	if c == nil {
		return nil
	}
	out := make(Chromosome, len(c))
	copy(out, c)

	return out
}

// validatePermutation checks that genes is a permutation of {0..n-1} of
// length n. It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(genes []int, n int) error {
	if n <= 0 {
		return ErrInvalidPermutation
	}
	if len(genes) != n {
		return ErrInvalidPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = genes[i]
		// Out-of-range gene violates the bijection contract.
		if v < 0 || v >= n {
			return ErrInvalidPermutation
		}
		// Duplicate gene also violates the bijection contract.
		if seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}

	return nil
}
