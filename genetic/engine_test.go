// Package genetic_test validates the evolution engine: configuration and
// matrix screening, the lifecycle state machine, the exact generation
// budget, best-so-far monotonicity and snapshot isolation, determinism and
// explicit elitism.
package genetic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerber-os/PSZT/genetic"
)

// tinyOpts is a fast, valid baseline configuration for engine tests.
func tinyOpts() genetic.Options {
	opts := genetic.DefaultOptions()
	opts.PopulationSize = 8
	opts.Generations = 10

	return opts
}

func TestNewEngine_ConfigScreening(t *testing.T) {
	d := euclid(scatterPoints(6, seedAlt))

	cases := []struct {
		name   string
		mutate func(*genetic.Options)
	}{
		{"population below two", func(o *genetic.Options) { o.PopulationSize = 1 }},
		{"zero generations", func(o *genetic.Options) { o.Generations = 0 }},
		{"negative mutation rate", func(o *genetic.Options) { o.MutationRate = -0.01 }},
		{"mutation rate above one", func(o *genetic.Options) { o.MutationRate = 1.01 }},
		{"NaN mutation rate", func(o *genetic.Options) { o.MutationRate = math.NaN() }},
		{"zero tournament size", func(o *genetic.Options) { o.TournamentSize = 0 }},
		{"negative elite count", func(o *genetic.Options) { o.EliteCount = -1 }},
		{"elite count eats the population", func(o *genetic.Options) { o.EliteCount = 8 }},
		{"unknown crossover kind", func(o *genetic.Options) { o.Crossover = genetic.CrossoverKind(99) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := tinyOpts()
			tc.mutate(&opts)
			_, err := genetic.NewEngine(d, opts)
			require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)
		})
	}

	// The matrix itself is part of the configuration.
	_, err := genetic.NewEngine(nil, tinyOpts())
	require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)
	_, err = genetic.NewEngine(rawDist{a: [][]float64{{0}}}, tinyOpts())
	require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)
}

func TestNewEngine_MatrixScreening(t *testing.T) {
	mk := func(x float64, diag bool) rawDist {
		a := [][]float64{
			{0, 1, 2},
			{1, 0, 1},
			{2, 1, 0},
		}
		if diag {
			a[1][1] = x
		} else {
			a[0][2] = x
		}

		return rawDist{a: a}
	}

	// Any NaN, infinite or negative entry is rejected upfront.
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		_, err := genetic.NewEngine(mk(x, false), tinyOpts())
		require.ErrorIs(t, err, genetic.ErrBadDistance)
	}

	// So is a nonzero diagonal.
	_, err := genetic.NewEngine(mk(0.5, true), tinyOpts())
	require.ErrorIs(t, err, genetic.ErrBadDistance)
}

func TestEngine_LifecycleStateMachine(t *testing.T) {
	d := euclid(scatterPoints(7, seedAlt))
	opts := tinyOpts()
	opts.Generations = 3

	eng, err := genetic.NewEngine(d, opts)
	require.NoError(t, err)
	require.Equal(t, genetic.Uninitialized, eng.State())

	// Stepping before initialization is a caller bug.
	require.ErrorIs(t, eng.Step(), genetic.ErrNotInitialized)

	// No best exists yet.
	tour, length := eng.Best()
	require.Nil(t, tour)
	require.True(t, math.IsInf(length, 1))

	// Initialization seeds generation 0.
	require.NoError(t, eng.Initialize())
	require.Equal(t, genetic.Initialized, eng.State())
	require.Equal(t, 0, eng.Generation())
	require.Len(t, eng.History(), 1)
	tour, length = eng.Best()
	mustBePermutation(t, tour, 7)
	require.False(t, math.IsInf(length, 1))

	// A second initialization is rejected.
	require.ErrorIs(t, eng.Initialize(), genetic.ErrAlreadyInitialized)

	// Steps count generations one by one until the budget is spent.
	require.NoError(t, eng.Step())
	require.Equal(t, 1, eng.Generation())
	require.Equal(t, genetic.Evolving, eng.State())

	// Run picks up mid-flight and finishes the remaining generations.
	res, err := eng.Run()
	require.NoError(t, err)
	require.Equal(t, genetic.Terminated, eng.State())
	require.Equal(t, 3, res.Generations)

	// A terminated engine refuses further work; Best stays readable.
	require.ErrorIs(t, eng.Step(), genetic.ErrTerminated)
	_, err = eng.Run()
	require.ErrorIs(t, err, genetic.ErrTerminated)
	tour, _ = eng.Best()
	mustBePermutation(t, tour, 7)
}

func TestEngine_ExactGenerationBudget(t *testing.T) {
	// Ten random cities, five generations, odd population size to exercise
	// the dropped second offspring of the final pair.
	d := euclid(scatterPoints(10, seedAlt))
	opts := tinyOpts()
	opts.PopulationSize = 7
	opts.Generations = 5

	res, err := genetic.Solve(d, opts)
	require.NoError(t, err)

	require.Equal(t, 5, res.Generations)
	mustBePermutation(t, res.Tour, 10)
	require.Greater(t, res.Length, 0.0)
	require.False(t, math.IsInf(res.Length, 0))
}

func TestEngine_HistoryShapeAndMonotonicBest(t *testing.T) {
	d := euclid(scatterPoints(12, seedAlt))
	opts := tinyOpts()
	opts.Generations = 60

	eng, err := genetic.NewEngine(d, opts)
	require.NoError(t, err)
	res, err := eng.Run()
	require.NoError(t, err)

	hist := eng.History()
	require.Len(t, hist, opts.Generations+1)

	for i, rec := range hist {
		// One record per generation boundary, in order.
		require.Equal(t, i, rec.Generation)

		// Best-so-far never rises, and never exceeds the population mean.
		if i > 0 {
			require.LessOrEqual(t, rec.Best, hist[i-1].Best, "generation %d", i)
		}
		require.LessOrEqual(t, rec.Best, rec.Mean+epsTiny, "generation %d", i)
		require.GreaterOrEqual(t, rec.StdDev, 0.0, "generation %d", i)
	}

	// The reported result agrees with the last record and with an
	// independent recomputation of the tour's length.
	require.InDelta(t, hist[len(hist)-1].Best, res.Length, epsTiny)
	recomputed, err := genetic.TourLength(d, res.Tour)
	require.NoError(t, err)
	require.InDelta(t, recomputed, res.Length, epsTiny)
}

func TestEngine_SnapshotsAreIsolated(t *testing.T) {
	d := euclid(scatterPoints(9, seedAlt))

	eng, err := genetic.NewEngine(d, tinyOpts())
	require.NoError(t, err)
	_, err = eng.Run()
	require.NoError(t, err)

	// Corrupting the returned tour must not reach the engine.
	tour, length := eng.Best()
	tour[0], tour[1] = tour[1], tour[0]
	again, lengthAgain := eng.Best()
	mustBePermutation(t, again, 9)
	require.Equal(t, length, lengthAgain)
	require.NotEqual(t, tour[0], again[0])

	// Same for the history records.
	hist := eng.History()
	hist[0].Best = -1
	require.NotEqual(t, -1.0, eng.History()[0].Best)
}

func TestEngine_DeterministicGivenSeed(t *testing.T) {
	d := euclid(scatterPoints(11, seedAlt))

	run := func(seed int64) (genetic.Result, []genetic.GenerationStats) {
		opts := tinyOpts()
		opts.Generations = 25
		opts.Seed = seed
		eng, err := genetic.NewEngine(d, opts)
		require.NoError(t, err)
		res, err := eng.Run()
		require.NoError(t, err)

		return res, eng.History()
	}

	// The same explicit seed reproduces the run bit for bit.
	resA, histA := run(12345)
	resB, histB := run(12345)
	require.Equal(t, resA, resB)
	require.Equal(t, histA, histB)

	// Seed zero selects a fixed default stream, equally reproducible.
	resA, histA = run(0)
	resB, histB = run(0)
	require.Equal(t, resA, resB)
	require.Equal(t, histA, histB)
}

func TestEngine_TwoCityRoundTrip(t *testing.T) {
	// With two cities every tour is the same round trip, whatever the
	// operator: the result must equal d(0,1)+d(1,0) exactly.
	d := rawDist{a: [][]float64{{0, 3.25}, {3.25, 0}}}

	for _, kind := range crossoverKinds {
		opts := tinyOpts()
		opts.PopulationSize = 4
		opts.Generations = 3
		opts.MutationRate = 1 // force swaps; the length cannot change
		opts.Crossover = kind

		res, err := genetic.Solve(d, opts)
		require.NoError(t, err, "kind %v", kind)
		mustBePermutation(t, res.Tour, 2)
		require.InDelta(t, 6.5, res.Length, epsTiny, "kind %v", kind)
	}
}

func TestEngine_ExplicitElitism(t *testing.T) {
	d := euclid(scatterPoints(10, seedAlt))
	opts := tinyOpts()
	opts.EliteCount = 2
	opts.Generations = 30

	eng, err := genetic.NewEngine(d, opts)
	require.NoError(t, err)
	res, err := eng.Run()
	require.NoError(t, err)
	mustBePermutation(t, res.Tour, 10)

	// Carrying survivors over must not break the boundary invariants.
	for i, rec := range eng.History() {
		require.LessOrEqual(t, rec.Best, rec.Mean+epsTiny, "generation %d", i)
	}
}

func TestSolve_MatchesManualDrive(t *testing.T) {
	d := euclid(scatterPoints(8, seedAlt))
	opts := tinyOpts()
	opts.Seed = 7

	direct, err := genetic.Solve(d, opts)
	require.NoError(t, err)

	eng, err := genetic.NewEngine(d, opts)
	require.NoError(t, err)
	require.NoError(t, eng.Initialize())
	for eng.State() != genetic.Terminated {
		require.NoError(t, eng.Step())
	}
	manualTour, manualLength := eng.Best()

	// One-call and manual drives walk the identical deterministic path.
	require.Equal(t, direct.Tour, manualTour)
	require.Equal(t, direct.Length, manualLength)
}
