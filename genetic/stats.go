// Package genetic — per-generation population statistics.
package genetic

import "gonum.org/v1/gonum/stat"

// GenerationStats is one history record, written after initialization and
// after every generation step. Best is the best-so-far tour length (hence
// non-increasing across the run); Mean and StdDev describe the current
// population's length distribution, which convergence plots and progress
// logs consume.
type GenerationStats struct {
	Generation int     // 0 for the initial population, then 1..Generations
	Best       float64 // best-so-far cyclic length (monotone non-increasing)
	Mean       float64 // mean length of the current population
	StdDev     float64 // sample standard deviation of the current population
}

// statsRecord builds the history entry for one generation boundary.
//
// Complexity: O(population) time, O(1) space.
func statsRecord(gen int, bestSoFar float64, lengths []float64) GenerationStats {
	return GenerationStats{
		Generation: gen,
		Best:       bestSoFar,
		Mean:       stat.Mean(lengths, nil),
		StdDev:     stat.StdDev(lengths, nil),
	}
}
