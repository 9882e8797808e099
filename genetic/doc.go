// Package genetic provides a generational genetic algorithm for the
// Travelling Salesman Problem over a fixed set of cities.
//
// It evolves a population of candidate tours (permutations of city indices)
// toward the minimum-length cycle visiting every city exactly once:
//
//   - Crossover — three interchangeable permutation-preserving operators:
//
//   - PMXCrossover — partially mapped crossover (segment + mapping-chain repair).
//
//   - OXCrossover — order crossover (segment + wrap-around order fill).
//
//   - CXCrossover — cycle crossover (alternating value cycles, no randomness).
//
//   - SwapMutateInPlace — probability-gated exchange of two positions.
//
//   - TournamentSelect — fitness-biased parent choice (lower length wins).
//
//   - Engine — the evolution loop: initialize, step exactly Generations times
//     with full generational replacement, track the best tour ever seen.
//
// Fitness is the cyclic tour length (lower is better), computed against a
// caller-supplied Distances matrix and stabilized to 1e-9 so results are
// identical across platforms.
//
// The package is single-threaded by design: all randomness flows through one
// seedable *rand.Rand owned by the Engine (Seed==0 selects a fixed default
// stream), so every run is reproducible. There is no early stopping and no
// implicit elitism; a fixed generation budget is the sole stopping rule.
//
// Use Solve for the one-call entry point, or drive an Engine step by step to
// observe convergence between generations.
package genetic
