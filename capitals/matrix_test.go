// Package capitals_test validates the precomputed distance matrix and its
// fit as the solver's distance source.
package capitals_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerber-os/PSZT/capitals"
	"github.com/cerber-os/PSZT/genetic"
)

func threeCities() []capitals.City {
	return []capitals.City{
		{Name: "Ottawa", Country: "Canada", Lat: 45.4247, Lon: -75.695},
		{Name: "Washington, D.C.", Country: "United States", Lat: 38.9047, Lon: -77.0164},
		{Name: "Mexico City", Country: "Mexico", Lat: 19.4326, Lon: -99.1332},
	}
}

func TestNewMatrix_RejectsTinyDatasets(t *testing.T) {
	_, err := capitals.NewMatrix(nil)
	require.ErrorIs(t, err, capitals.ErrEmptyDataset)

	_, err = capitals.NewMatrix(threeCities()[:1])
	require.ErrorIs(t, err, capitals.ErrEmptyDataset)
}

func TestNewMatrix_EntriesMatchHaversine(t *testing.T) {
	cities := threeCities()
	m, err := capitals.NewMatrix(cities)
	require.NoError(t, err)

	require.Equal(t, 3, m.Size())
	for i := 0; i < 3; i++ {
		require.Equal(t, cities[i].Name, m.Name(i))
		require.Zero(t, m.At(i, i))
		for j := 0; j < 3; j++ {
			// Precomputation must agree with the direct formula, and the
			// table must be symmetric.
			require.Equal(t, capitals.Haversine(cities[i], cities[j]), m.At(i, j))
			require.Equal(t, m.At(i, j), m.At(j, i))
		}
	}
}

func TestMatrix_FeedsTheSolver(t *testing.T) {
	m, err := capitals.NewMatrix(threeCities())
	require.NoError(t, err)

	// The cyclic length over the matrix equals the summed haversine hops.
	want := m.At(0, 1) + m.At(1, 2) + m.At(2, 0)
	got, err := genetic.TourLength(m, []int{0, 1, 2})
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-6)

	// A full evolution over the matrix stays coherent end to end.
	opts := genetic.DefaultOptions()
	opts.PopulationSize = 6
	opts.Generations = 20
	res, err := genetic.Solve(m, opts)
	require.NoError(t, err)
	require.NoError(t, res.Tour.Validate(3))

	// Three cities admit a single undirected cycle, so any tour is optimal.
	require.InDelta(t, want, res.Length, 1e-6)
}
