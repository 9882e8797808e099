// Package genetic — configuration and input validation.
//
// This file contains the staged checks that run once, before any evolution:
//  1. validateOptions — internal consistency of Options.
//  2. validateSize — city-count contract for the distance matrix.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — sentinel errors from types.go,
//     wrapped with fmt.Errorf("%w: detail") so errors.Is keeps working while
//     the message carries the offending value.
//   - Hot paths never reach this file; it is construction-time only.
package genetic

import (
	"fmt"
	"math"
)

// validateOptions checks internal consistency of Options without referencing
// the distance matrix. Every violation wraps ErrInvalidConfiguration.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// A population below two cannot form a parent pair.
	if opts.PopulationSize < 2 {
		return fmt.Errorf("%w: population size %d < 2", ErrInvalidConfiguration, opts.PopulationSize)
	}
	// The generation budget is the sole stopping rule; zero would never evolve.
	if opts.Generations < 1 {
		return fmt.Errorf("%w: generations count %d < 1", ErrInvalidConfiguration, opts.Generations)
	}
	// MutationRate is a probability; NaN compares false against both bounds,
	// so it is rejected explicitly.
	if math.IsNaN(opts.MutationRate) || opts.MutationRate < 0 || opts.MutationRate > 1 {
		return fmt.Errorf("%w: mutation rate %v outside [0,1]", ErrInvalidConfiguration, opts.MutationRate)
	}
	// A tournament needs at least one contestant.
	if opts.TournamentSize < 1 {
		return fmt.Errorf("%w: tournament size %d < 1", ErrInvalidConfiguration, opts.TournamentSize)
	}
	// Elites must leave room for at least one offspring, or the population
	// would never change.
	if opts.EliteCount < 0 || opts.EliteCount >= opts.PopulationSize {
		return fmt.Errorf("%w: elite count %d outside [0,%d)", ErrInvalidConfiguration, opts.EliteCount, opts.PopulationSize)
	}

	// Accept only implemented operators; the dispatcher re-checks at call time.
	switch opts.Crossover {
	case PMX, OX, CX:
		// ok
	default:
		return fmt.Errorf("%w: crossover %v", ErrInvalidConfiguration, opts.Crossover)
	}

	// Seed carries no constraint: 0 selects the fixed default stream.
	return nil
}

// validateSize enforces the city-count contract: evolving a tour needs at
// least two cities. Violations wrap ErrInvalidConfiguration, matching the
// treatment of the other run parameters.
//
// Complexity: O(1).
func validateSize(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: city count %d < 2", ErrInvalidConfiguration, n)
	}

	return nil
}

// wrapBadDistance attaches the offending coordinates and value to
// ErrBadDistance. Used by prefetchWeights during construction.
func wrapBadDistance(i, j int, x float64) error {
	return fmt.Errorf("%w: dist[%d][%d]=%v", ErrBadDistance, i, j, x)
}
