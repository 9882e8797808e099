// Package genetic — the evolution loop.
//
// The Engine owns one run of the algorithm and walks the lifecycle
//
//	Uninitialized → Initialized → Evolving → Terminated
//
// with exactly Options.Generations generation steps between the last two.
// One step is: select parent pairs by tournament, recombine each pair with
// the configured crossover operator, swap-mutate each offspring, evaluate,
// replace the population wholesale (generational replacement; only an
// explicit EliteCount lets parents survive), and advance the best-so-far
// snapshot when an offspring improves on it.
//
// Design principles:
//   - Single-threaded and fully synchronous: a generation is computed
//     strictly after its predecessor; all randomness flows through the one
//     engine RNG, so a seed reproduces a run bit for bit.
//   - Run State is consistent at every generation boundary: population,
//     lengths, best-so-far and history always agree between Step calls, so a
//     caller may stop early and still read a coherent Best.
//   - Best-so-far is an independent snapshot, never aliased to a population
//     member, and its length never increases.
//   - Hot-path discipline: the distance matrix is prefetched into a
//     linearized buffer; population and length buffers are double-buffered
//     and reused, so a steady-state step allocates only what crossover
//     inherently must.
package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Engine evolves one population toward the shortest cyclic tour.
// Build instances with NewEngine; the zero value is unusable.
type Engine struct {
	opts Options    // validated run configuration
	n    int        // number of cities
	w    []float64  // prefetched distances, w[u*n+v]
	rng  *rand.Rand // the single RNG behind every draw of the run

	state State // lifecycle position
	gen   int   // completed generation steps

	pop     []Chromosome // current population (len == PopulationSize)
	lengths []float64    // lengths[i] == cyclic length of pop[i]

	scratchPop []Chromosome // reused next-generation buffer
	scratchLen []float64    // reused next-generation lengths

	best    Chromosome        // best-so-far snapshot (independent copy)
	bestLen float64           // length of best (+Inf before initialization)
	history []GenerationStats // one record per generation boundary
}

// NewEngine validates the configuration and the distance matrix, prefetches
// the weights, seeds the RNG (Seed==0 ⇒ fixed default stream) and returns an
// engine in state Uninitialized.
//
// Errors: wrapped ErrInvalidConfiguration (options, nil matrix, fewer than
// two cities) or wrapped ErrBadDistance (NaN/±Inf/negative entry, nonzero
// diagonal).
//
// Complexity: O(n²) time and space (matrix prefetch + validation).
func NewEngine(d Distances, opts Options) (*Engine, error) {
	// Stage 1: options-only sanity.
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	// Stage 2: matrix presence and order.
	if d == nil {
		return nil, fmt.Errorf("%w: nil distance matrix", ErrInvalidConfiguration)
	}
	var n int
	n = d.Size()
	if err := validateSize(n); err != nil {
		return nil, err
	}

	// Stage 3: entry validation + linearized prefetch.
	w, err := prefetchWeights(d, n)
	if err != nil {
		return nil, err
	}

	return &Engine{
		opts:    opts,
		n:       n,
		w:       w,
		rng:     rngFromSeed(opts.Seed),
		state:   Uninitialized,
		bestLen: math.Inf(1),
	}, nil
}

// Solve is the one-call entry point: NewEngine + Run.
func Solve(d Distances, opts Options) (Result, error) {
	e, err := NewEngine(d, opts)
	if err != nil {
		return Result{}, err
	}

	return e.Run()
}

// Initialize materializes the initial population: PopulationSize uniformly
// random permutations, their lengths, the first best-so-far snapshot and the
// generation-0 history record. Transitions Uninitialized → Initialized.
//
// Returns ErrAlreadyInitialized when a population already exists.
//
// Complexity: O(PopulationSize · n).
func (e *Engine) Initialize() error {
	if e.state != Uninitialized {
		return ErrAlreadyInitialized
	}

	var ps int
	ps = e.opts.PopulationSize

	e.pop = make([]Chromosome, ps)
	e.lengths = make([]float64, ps)
	e.scratchPop = make([]Chromosome, 0, ps)
	e.scratchLen = make([]float64, 0, ps)

	var (
		i    int        // population slot
		c    Chromosome // freshly drawn tour
		err  error
		bi   int        // index of the initial best
		bLen float64    // its length
	)
	bi = -1
	bLen = math.Inf(1)
	for i = 0; i < ps; i++ {
		c, err = RandomChromosome(e.n, e.rng)
		if err != nil {
			return err
		}
		e.pop[i] = c
		e.lengths[i] = tourLengthLinear(e.w, e.n, c)
		if e.lengths[i] < bLen {
			bLen = e.lengths[i]
			bi = i
		}
	}

	// First best-so-far snapshot: an independent copy, never an alias.
	e.best = e.pop[bi].Clone()
	e.bestLen = bLen

	e.gen = 0
	e.history = append(e.history, statsRecord(0, e.bestLen, e.lengths))
	e.state = Initialized

	return nil
}

// Step executes exactly one generation: tournament parent pairs, the
// configured crossover per pair, one independent swap-mutation coin per
// offspring, wholesale population replacement (plus EliteCount surviving
// parents when explicitly configured), best-so-far update, history record.
//
// After the step, Run State is fully consistent, so callers may interleave
// their own work — progress logging, early abort — between Step calls.
// The state becomes Terminated once the configured budget is spent.
//
// Errors: ErrNotInitialized before Initialize, ErrTerminated afterwards.
//
// Complexity: O(PopulationSize · (n + TournamentSize)) per step.
func (e *Engine) Step() error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}
	if e.state == Terminated {
		return ErrTerminated
	}
	e.state = Evolving

	var (
		ps   = e.opts.PopulationSize
		mu   = e.opts.MutationRate
		ts   = e.opts.TournamentSize
		next = e.scratchPop[:0] // reused backing array
		nlen = e.scratchLen[:0]
	)

	// Explicit elitism only: EliteCount best parents survive unchanged.
	if e.opts.EliteCount > 0 {
		idx := make([]int, ps)
		var i int
		for i = 0; i < ps; i++ {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return e.lengths[idx[a]] < e.lengths[idx[b]] })
		for i = 0; i < e.opts.EliteCount; i++ {
			next = append(next, e.pop[idx[i]].Clone())
			nlen = append(nlen, e.lengths[idx[i]])
		}
	}

	// Fill the remaining slots with mutated crossover offspring.
	var (
		i1  int        // first parent index
		i2  int        // second parent index
		c1  Chromosome // first offspring
		c2  Chromosome // second offspring
		err error
	)
	for len(next) < ps {
		i1, err = TournamentSelect(e.lengths, ts, e.rng)
		if err != nil {
			return err
		}
		i2, err = TournamentSelect(e.lengths, ts, e.rng)
		if err != nil {
			return err
		}

		c1, c2, err = Crossover(e.opts.Crossover, e.pop[i1], e.pop[i2], e.rng)
		if err != nil {
			return err
		}

		SwapMutateInPlace(c1, mu, e.rng)
		next = append(next, c1)
		nlen = append(nlen, tourLengthLinear(e.w, e.n, c1))

		// An odd slot count drops the second offspring of the last pair.
		if len(next) < ps {
			SwapMutateInPlace(c2, mu, e.rng)
			next = append(next, c2)
			nlen = append(nlen, tourLengthLinear(e.w, e.n, c2))
		}
	}

	// Generational replacement: swap the double buffers wholesale.
	e.scratchPop, e.pop = e.pop, next
	e.scratchLen, e.lengths = e.lengths, nlen

	// Advance the best-so-far snapshot on strict improvement only, so the
	// recorded best length never increases and ties keep the earliest tour.
	var bi = -1
	var i int
	for i = 0; i < ps; i++ {
		if e.lengths[i] < e.bestLen {
			e.bestLen = e.lengths[i]
			bi = i
		}
	}
	if bi >= 0 {
		e.best = e.pop[bi].Clone()
	}

	e.gen++
	e.history = append(e.history, statsRecord(e.gen, e.bestLen, e.lengths))
	if e.gen >= e.opts.Generations {
		e.state = Terminated
	}

	return nil
}

// Run drives the engine to completion: Initialize when still needed, then
// Step until the generation budget is spent, returning the best tour found
// over the whole run. A second Run on a terminated engine returns
// ErrTerminated; use Best to re-read the outcome.
//
// Complexity: O(Generations · PopulationSize · n).
func (e *Engine) Run() (Result, error) {
	if e.state == Uninitialized {
		if err := e.Initialize(); err != nil {
			return Result{}, err
		}
	}
	if e.state == Terminated {
		return Result{}, ErrTerminated
	}

	for e.state != Terminated {
		if err := e.Step(); err != nil {
			return Result{}, err
		}
	}

	return Result{Tour: e.best.Clone(), Length: e.bestLen, Generations: e.gen}, nil
}

// State reports the engine's lifecycle position.
func (e *Engine) State() State { return e.state }

// Generation reports how many generation steps have completed.
func (e *Engine) Generation() int { return e.gen }

// Best returns an independent copy of the best tour observed so far and its
// cyclic length. Before initialization it returns (nil, +Inf).
func (e *Engine) Best() (Chromosome, float64) {
	return e.best.Clone(), e.bestLen
}

// History returns a copy of the per-generation records: index 0 describes
// the freshly initialized population, index g the population after step g.
func (e *Engine) History() []GenerationStats {
	return append([]GenerationStats(nil), e.history...)
}
