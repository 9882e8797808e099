// Package genetic — fitness-biased parent selection.
//
// Policy (deliberately simple and documented once, here):
//   - Tournament selection. size contestants are drawn uniformly WITH
//     replacement from the current population; the contestant with the
//     lowest tour length wins.
//   - Parent pairs are two independent tournaments, so self-pairing is
//     allowed: crossover of an individual with itself yields copies, which
//     mutation may still perturb. The population is never left unsampled.
//   - A larger size raises selection pressure; size==1 degrades to uniform
//     random selection with no fitness bias.
package genetic

import (
	"fmt"
	"math/rand"
)

// TournamentSelect returns the index of the winner of one tournament over
// lengths: size contestants drawn uniformly with replacement, lowest length
// wins. Ties keep the earlier draw.
//
// Errors wrap ErrInvalidConfiguration when lengths is empty or size < 1.
//
// Complexity: O(size) time, O(1) space.
func TournamentSelect(lengths []float64, size int, rng *rand.Rand) (int, error) {
	var n int
	n = len(lengths)
	if n < 1 {
		return 0, fmt.Errorf("%w: empty population", ErrInvalidConfiguration)
	}
	if size < 1 {
		return 0, fmt.Errorf("%w: tournament size %d < 1", ErrInvalidConfiguration, size)
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var (
		best int // index of the current winner
		cand int // index of the challenger
		t    int // tournament round
	)
	best = r.Intn(n)
	for t = 1; t < size; t++ {
		cand = r.Intn(n)
		// Strict improvement only: ties keep the earlier draw.
		if lengths[cand] < lengths[best] {
			best = cand
		}
	}

	return best, nil
}
