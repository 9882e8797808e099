// Command america solves the travelling-salesman problem over the capital
// cities of the Americas with a genetic algorithm.
//
// Usage:
//
//	america [--population_size N] [--generations_count N]
//	        [--mutation_factor F] [--algorithm pmx|ox|cx] [--seed N]
//	        [--cache PATH] [--refresh] [--plot PATH]
//
// The city list resolves in three steps: --refresh re-crawls Wikipedia and
// rewrites the cache; otherwise a readable cache file wins; otherwise the
// dataset bundled into the binary is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/cerber-os/PSZT/capitals"
	"github.com/cerber-os/PSZT/genetic"
)

// fetchTimeout bounds a full re-crawl, one page load per capital included.
const fetchTimeout = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		fail("%v", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		popSize  = flag.Int("population_size", 10, "The size of population used")
		genCount = flag.Int("generations_count", 1000, "The number of algorithm iterations")
		mutation = flag.Float64("mutation_factor", 0.2, "Probability of mutating each offspring")
		algo     = flag.String("algorithm", "pmx", "Crossover operator: pmx, ox or cx")
		seed     = flag.Int64("seed", 0, "RNG seed; 0 picks the fixed default stream")
		cache    = flag.String("cache", "resources/capitals.json", "Path of the capitals cache file")
		refresh  = flag.Bool("refresh", false, "Re-crawl the capitals list and rewrite the cache")
		plotPath = flag.String("plot", "", "Write a convergence chart to this path (PNG)")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Solve TSP using genetic algorithms")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	kind, err := genetic.ParseCrossoverKind(*algo)
	if err != nil {
		return err
	}

	cities, err := loadCities(*cache, *refresh)
	if err != nil {
		return err
	}
	info("Loaded %d capitals", len(cities))

	m, err := capitals.NewMatrix(cities)
	if err != nil {
		return err
	}

	opts := genetic.DefaultOptions()
	opts.PopulationSize = *popSize
	opts.Generations = *genCount
	opts.MutationRate = *mutation
	opts.Crossover = kind
	opts.Seed = *seed

	eng, err := genetic.NewEngine(m, opts)
	if err != nil {
		return err
	}
	if err = eng.Initialize(); err != nil {
		return err
	}

	// Step manually so progress can be reported at generation boundaries.
	stride := progressStride(opts.Generations)
	for eng.State() != genetic.Terminated {
		if err = eng.Step(); err != nil {
			return err
		}
		if g := eng.Generation(); g%stride == 0 || g == opts.Generations {
			h := eng.History()
			last := h[len(h)-1]
			info("Generation %d/%d: best %.0f km, mean %.0f km",
				g, opts.Generations, last.Best, last.Mean)
		}
	}

	best, length := eng.Best()
	printRoute(m, best, length)

	if *plotPath != "" {
		if err = writeConvergencePlot(*plotPath, eng.History()); err != nil {
			return err
		}
		info("Convergence chart written to %s", *plotPath)
	}

	info("Finished")

	return nil
}

// loadCities resolves the dataset: forced re-crawl, then cache, then the
// bundled snapshot. A corrupt cache is an error rather than a silent
// fallback; delete it or pass --refresh.
func loadCities(cachePath string, refresh bool) ([]capitals.City, error) {
	if refresh {
		info("Downloading capitals list. This might take a while....")
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		cities, err := capitals.Fetch(ctx, nil)
		if err != nil {
			return nil, err
		}
		if err = capitals.SaveCache(cachePath, cities); err != nil {
			return nil, err
		}

		return cities, nil
	}

	cities, err := capitals.LoadCache(cachePath)
	switch {
	case err == nil:
		return cities, nil
	case errors.Is(err, fs.ErrNotExist):
		return capitals.Default(), nil
	default:
		return nil, err
	}
}

// progressStride spaces the progress lines to roughly ten per run.
func progressStride(generations int) int {
	stride := generations / 10
	if stride < 1 {
		stride = 1
	}

	return stride
}

// printRoute renders the best tour, one city per line, in visiting order.
// The tour is cyclic; the last hop back to the first city is implied.
func printRoute(m *capitals.Matrix, tour genetic.Chromosome, length float64) {
	header("Best route found (%.0f km round trip):", length)
	for i, idx := range tour {
		fmt.Printf("  %2d. %s\n", i+1, m.Name(idx))
	}
}
