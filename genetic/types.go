// Package genetic — core types, sentinel errors, and configuration.
//
// This file is the single source of truth for:
//  1. Sentinel errors shared by every component (strict errors.Is semantics).
//  2. CrossoverKind — the enumerated choice of recombination operator.
//  3. State — the evolution loop's lifecycle states.
//  4. Options / DefaultOptions — run configuration with documented defaults.
//  5. Result — the outcome of a completed run.
//
// Design principles:
//   - Sentinels only at category boundaries; validation may wrap them with
//     fmt.Errorf("%w: detail", Err...) for context, hot paths return them bare.
//   - No panics on user input anywhere in the package.
package genetic

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by the genetic package.
var (
	// ErrInvalidConfiguration indicates an unusable run configuration:
	// population size < 2, generation count < 1, mutation rate outside [0,1],
	// tournament size < 1, elite count out of range, an out-of-range crossover
	// kind, or a city set with fewer than 2 entries.
	ErrInvalidConfiguration = errors.New("genetic: invalid configuration")

	// ErrInvalidPermutation indicates a chromosome that is not a permutation
	// of 0..n-1 (wrong length, out-of-range gene, or duplicate gene).
	ErrInvalidPermutation = errors.New("genetic: not a permutation of 0..n-1")

	// ErrParentLength indicates that two parent chromosomes handed to a
	// crossover operator differ in length.
	ErrParentLength = errors.New("genetic: parent chromosomes differ in length")

	// ErrUnknownCrossover indicates a CrossoverKind value (or its textual
	// form) that names no implemented operator.
	ErrUnknownCrossover = errors.New("genetic: unknown crossover kind")

	// ErrBadDistance indicates an unusable distance matrix entry:
	// NaN, ±Inf, a negative distance, or a nonzero diagonal.
	ErrBadDistance = errors.New("genetic: invalid distance matrix entry")

	// ErrNotInitialized is returned by Step when the engine has not been
	// initialized yet (no population exists to evolve).
	ErrNotInitialized = errors.New("genetic: engine is not initialized")

	// ErrAlreadyInitialized is returned by Initialize when a population has
	// already been materialized for this engine.
	ErrAlreadyInitialized = errors.New("genetic: engine is already initialized")

	// ErrTerminated is returned by Step and Run once the configured generation
	// budget has been exhausted; the best tour remains available via Best.
	ErrTerminated = errors.New("genetic: engine has terminated")
)

// CrossoverKind selects which recombination operator the engine applies.
// A single enumerated value dispatches to one pure function; the operators
// are otherwise interchangeable and share the same contract.
type CrossoverKind int

const (
	// PMX — partially mapped crossover: a random segment is kept from one
	// parent and conflicts outside it are repaired via the segment's
	// value-to-value mapping chains.
	PMX CrossoverKind = iota

	// OX — order crossover: a random segment is kept from one parent and the
	// remaining positions are filled in the other parent's relative order,
	// wrapping around past the segment.
	OX

	// CX — cycle crossover: gene positions are partitioned into value cycles
	// and alternating cycles are inherited wholesale from each parent.
	CX
)

// crossoverNames maps CrossoverKind values to their canonical textual form.
var crossoverNames = [...]string{"PMX", "OX", "CX"}

// String returns the canonical upper-case name of the kind, or "Unknown(k)"
// for out-of-range values.
func (k CrossoverKind) String() string {
	if k < 0 || int(k) >= len(crossoverNames) {
		return "Unknown(" + strconv.Itoa(int(k)) + ")"
	}

	return crossoverNames[k]
}

// ParseCrossoverKind converts a textual operator name ("pmx", "OX", ...)
// into its CrossoverKind, case-insensitively.
// Unknown names yield ErrUnknownCrossover.
func ParseCrossoverKind(s string) (CrossoverKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PMX":
		return PMX, nil
	case "OX":
		return OX, nil
	case "CX":
		return CX, nil
	default:
		return 0, ErrUnknownCrossover
	}
}

// State is the lifecycle state of an Engine.
//
// The only legal transitions are:
//
//	Uninitialized → Initialized            (Initialize)
//	Initialized   → Evolving               (first Step)
//	Evolving      → Evolving | Terminated  (Step; Terminated after the last one)
//
// Terminated is absorbing: no further steps are possible, and the best tour
// found over the whole run stays exposed via Best.
type State int

const (
	// Uninitialized — the engine holds a validated configuration but no
	// population yet.
	Uninitialized State = iota

	// Initialized — the initial random population exists and the first
	// best-so-far snapshot has been taken; no generation step has run.
	Initialized

	// Evolving — at least one generation step has run and the budget is not
	// exhausted.
	Evolving

	// Terminated — exactly Options.Generations steps have run.
	Terminated
)

// stateNames maps State values to their textual form.
var stateNames = [...]string{"Uninitialized", "Initialized", "Evolving", "Terminated"}

// String returns the state name, or "Unknown(s)" for out-of-range values.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown(" + strconv.Itoa(int(s)) + ")"
	}

	return stateNames[s]
}

// Options configures a genetic run.
//
// PopulationSize — number of chromosomes kept alive; constant across the run.
// Generations    — exact number of generation steps to execute (the sole
// stopping rule; no fitness-threshold early exit).
// MutationRate   — per-offspring probability in [0,1] of one swap mutation.
// Crossover      — which recombination operator to dispatch (PMX, OX or CX).
// TournamentSize — contestants per selection tournament (drawn with
// replacement; the shortest tour among them wins).
// EliteCount     — number of best parents copied verbatim into the next
// generation. 0 (the default) means pure generational replacement.
// Seed           — RNG seed; 0 selects a fixed default stream so that the
// zero value still yields reproducible runs.
type Options struct {
	PopulationSize int           // chromosomes per generation (≥ 2)
	Generations    int           // generation steps to run (≥ 1)
	MutationRate   float64       // swap-mutation probability in [0,1]
	Crossover      CrossoverKind // operator used for every pair
	TournamentSize int           // selection pressure knob (≥ 1)
	EliteCount     int           // survivors per generation (0 ⇒ none)
	Seed           int64         // 0 ⇒ deterministic default stream
}

// DefaultOptions returns the canonical configuration:
//
//   - PopulationSize: 10
//   - Generations:    1000
//   - MutationRate:   0.2
//   - Crossover:      PMX
//   - TournamentSize: 3
//   - EliteCount:     0   (pure generational replacement)
//   - Seed:           0   (fixed default stream)
func DefaultOptions() Options {
	return Options{
		PopulationSize: 10,
		Generations:    1000,
		MutationRate:   0.2,
		Crossover:      PMX,
		TournamentSize: 3,
		EliteCount:     0,
		Seed:           0,
	}
}

// Result holds the outcome of a completed run.
type Result struct {
	// Tour is the best chromosome observed over the whole run — an
	// independent copy, never aliased to a population member.
	Tour Chromosome

	// Length is the cyclic tour length of Tour (stabilized to 1e-9).
	Length float64

	// Generations is the number of generation steps actually executed.
	Generations int
}

