// Package genetic_test validates the per-generation statistics records on an
// instance where every tour has the same known length.
package genetic_test

import (
	"testing"

	"github.com/cerber-os/PSZT/genetic"
)

func TestHistory_StatsOnUniformInstance(t *testing.T) {
	// Two cities: every permutation is the identical round trip of 4.0, so
	// each generation's lengths are all equal. Mean must equal the length
	// exactly and the spread must vanish, at every boundary.
	d := rawDist{a: [][]float64{{0, 2}, {2, 0}}}
	opts := genetic.DefaultOptions()
	opts.PopulationSize = 6
	opts.Generations = 8

	eng, err := genetic.NewEngine(d, opts)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if _, err = eng.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	hist := eng.History()
	if len(hist) != opts.Generations+1 {
		t.Fatalf("want %d history records, got %d", opts.Generations+1, len(hist))
	}
	for _, rec := range hist {
		mustFloatClose(t, rec.Best, 4, epsTiny)
		mustFloatClose(t, rec.Mean, 4, epsTiny)
		mustFloatClose(t, rec.StdDev, 0, epsTiny)
	}
}
