// Package genetic — the three permutation-preserving crossover operators.
//
// All operators share one contract: two parent chromosomes of equal length n
// in, two offspring out, and every offspring is again a permutation of
// 0..n-1. That closure property is the central correctness guarantee of the
// subsystem; how each operator restores it after mixing genetic material is
// what distinguishes them:
//
//   - PMXCrossover — keep a random segment, repair outside conflicts by
//     following the segment's value↔value mapping chains.
//   - OXCrossover  — keep a random segment, fill the rest in the other
//     parent's relative order, wrapping around past the segment.
//   - CXCrossover  — partition positions into value cycles and inherit
//     alternating cycles wholesale from each parent (no randomness).
//
// Shared rules:
//   - Cut points are two distinct indices (rejection-free draw), ordered so
//     the inclusive segment [lo..hi] with 0 ≤ lo < hi ≤ n-1 is never empty.
//     A full-range segment is legal and yields parent copies.
//   - n < 2 admits no cut points: every operator degrades to parent copies.
//   - Parents are validated on entry; a non-permutation parent surfaces as
//     ErrInvalidPermutation immediately and is never silently repaired.
package genetic

import "math/rand"

// Crossover dispatches to the operator selected by kind.
// Unknown kinds yield ErrUnknownCrossover.
//
// Complexity: O(n) time and space per call, for every kind.
func Crossover(kind CrossoverKind, p1, p2 Chromosome, rng *rand.Rand) (Chromosome, Chromosome, error) {
	switch kind {
	case PMX:
		return PMXCrossover(p1, p2, rng)
	case OX:
		return OXCrossover(p1, p2, rng)
	case CX:
		return CXCrossover(p1, p2, rng)
	default:
		return nil, nil, ErrUnknownCrossover
	}
}

// PMXCrossover performs partially mapped crossover.
//
// One draw selects the inclusive segment [lo..hi]; both offspring reuse it
// with the parent roles swapped. Each offspring keeps its segment donor's
// genes in place across [lo..hi]; every position outside receives the fill
// donor's gene, except that a gene already present inside the kept segment
// is replaced by following the mapping chain
//
//	v → fillDonor[position of v inside the kept segment]
//
// until a gene not in the segment appears. The chain always terminates: the
// mapping is injective and each step stays inside the finite segment value
// set until it exits.
//
// Errors: ErrParentLength, ErrInvalidPermutation.
//
// Complexity: O(n) time, O(n) space.
func PMXCrossover(p1, p2 Chromosome, rng *rand.Rand) (Chromosome, Chromosome, error) {
	n, degrade, err := crossoverPrologue(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if degrade {
		return p1.Clone(), p2.Clone(), nil
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	lo, hi := cutPoints(n, r)

	return pmxChild(p1, p2, lo, hi), pmxChild(p2, p1, lo, hi), nil
}

// pmxChild builds one PMX offspring: segment [lo..hi] from segDonor, every
// other position from fillDonor with mapping-chain conflict repair.
//
// Complexity: O(n) amortized — every chain step consumes one distinct
// segment value, so total chain work across all positions is O(hi-lo).
func pmxChild(segDonor, fillDonor Chromosome, lo, hi int) Chromosome {
	var n int
	n = len(segDonor)

	child := make(Chromosome, n)
	pos := make([]int, n)    // pos[v]: index of v in segDonor (segment values only)
	inSeg := make([]bool, n) // inSeg[v]: v lies inside segDonor[lo..hi]

	var (
		i int
		v int
	)
	// Plant the kept segment and index its values.
	for i = lo; i <= hi; i++ {
		v = segDonor[i]
		child[i] = v
		pos[v] = i
		inSeg[v] = true
	}

	// Fill the outside positions, chasing mapping chains on conflict.
	for i = 0; i < n; i++ {
		if i >= lo && i <= hi {
			continue // segment already planted
		}
		v = fillDonor[i]
		for inSeg[v] {
			v = fillDonor[pos[v]]
		}
		child[i] = v
	}

	return child
}

// OXCrossover performs order crossover.
//
// One draw selects the inclusive segment [lo..hi]; both offspring reuse it
// with the parent roles swapped. Each offspring keeps its segment donor's
// genes in place across [lo..hi]; the remaining positions are filled in
// order starting just after the segment and wrapping around, with the fill
// donor's genes scanned in the same wrapped order, skipping genes already
// present. The fill donor's relative order is preserved.
//
// Errors: ErrParentLength, ErrInvalidPermutation.
//
// Complexity: O(n) time, O(n) space.
func OXCrossover(p1, p2 Chromosome, rng *rand.Rand) (Chromosome, Chromosome, error) {
	n, degrade, err := crossoverPrologue(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if degrade {
		return p1.Clone(), p2.Clone(), nil
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	lo, hi := cutPoints(n, r)

	return oxChild(p1, p2, lo, hi), oxChild(p2, p1, lo, hi), nil
}

// oxChild builds one OX offspring: segment [lo..hi] from segDonor, the rest
// in fillDonor's wrapped relative order.
//
// Complexity: O(n) time, O(n) space.
func oxChild(segDonor, fillDonor Chromosome, lo, hi int) Chromosome {
	var n int
	n = len(segDonor)

	child := make(Chromosome, n)
	used := make([]bool, n) // used[v]: v already placed in child

	var (
		i int
		v int
	)
	// Plant the kept segment.
	for i = lo; i <= hi; i++ {
		v = segDonor[i]
		child[i] = v
		used[v] = true
	}

	// Walk both cursors from just after the segment, wrapping around.
	var (
		rem = n - (hi - lo + 1) // outside positions still to fill
		w   = (hi + 1) % n      // write cursor over child positions
		t   int                 // scan offset over fillDonor genes
	)
	for t = 0; t < n && rem > 0; t++ {
		v = fillDonor[(hi+1+t)%n]
		if used[v] {
			continue // gene already inside the kept segment
		}
		child[w] = v
		used[v] = true
		w = (w + 1) % n
		rem--
	}

	return child
}

// CXCrossover performs cycle crossover.
//
// Positions are partitioned into cycles of the index map i → pos(p1, p2[i]):
// starting anywhere, following that map returns to the start, and within one
// cycle both parents hold the same value set. The first cycle is inherited
// from p1 into the first offspring (from p2 into the second); each following
// cycle alternates donors. Every position is therefore filled by exactly one
// parent and both offspring are permutations by construction.
//
// CX consumes no randomness; rng is accepted for operator-signature symmetry
// and may be nil.
//
// Errors: ErrParentLength, ErrInvalidPermutation.
//
// Complexity: O(n) time, O(n) space.
func CXCrossover(p1, p2 Chromosome, _ *rand.Rand) (Chromosome, Chromosome, error) {
	n, degrade, err := crossoverPrologue(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if degrade {
		return p1.Clone(), p2.Clone(), nil
	}

	var (
		c1   = make(Chromosome, n)
		c2   = make(Chromosome, n)
		pos1 = make([]int, n)  // pos1[v]: index of value v in p1
		done = make([]bool, n) // done[i]: position i already assigned
	)

	var i int
	for i = 0; i < n; i++ {
		pos1[p1[i]] = i
	}

	var (
		j      int    // position cursor inside the current cycle
		fromP1 = true // cycle 0 flows p1→c1, p2→c2; donors alternate after
	)
	for i = 0; i < n; i++ {
		if done[i] {
			continue // position already covered by an earlier cycle
		}
		j = i
		for {
			done[j] = true
			if fromP1 {
				c1[j], c2[j] = p1[j], p2[j]
			} else {
				c1[j], c2[j] = p2[j], p1[j]
			}
			j = pos1[p2[j]]
			if j == i {
				break // cycle closed
			}
		}
		fromP1 = !fromP1
	}

	return c1, c2, nil
}

// crossoverPrologue runs the shared entry checks of every operator:
// equal parent lengths, both parents valid permutations, and the degenerate
// small-n rule. It reports (n, degrade, err); degrade==true means no cut
// points exist and the operator must return parent copies.
//
// Complexity: O(n) time, O(n) space.
func crossoverPrologue(p1, p2 Chromosome) (int, bool, error) {
	var n int
	n = len(p1)
	if len(p2) != n {
		return 0, false, ErrParentLength
	}
	// The empty tour admits no validation and no cut points alike.
	if n == 0 {
		return 0, true, nil
	}
	if err := validatePermutation(p1, n); err != nil {
		return 0, false, err
	}
	if err := validatePermutation(p2, n); err != nil {
		return 0, false, err
	}
	// Two distinct cut indices require n ≥ 2.
	if n < 2 {
		return n, true, nil
	}

	return n, false, nil
}

// cutPoints draws the inclusive segment bounds: two distinct indices from
// [0..n-1], ordered so that 0 ≤ lo < hi ≤ n-1. The distinct-pair draw makes
// a degenerate lo==hi pair impossible without any regeneration loop.
//
// Contract: n ≥ 2, rng != nil.
//
// Complexity: O(1).
func cutPoints(n int, rng *rand.Rand) (int, int) {
	lo, hi := distinctPair(n, rng)
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}
