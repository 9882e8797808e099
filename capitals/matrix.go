// Package capitals — precomputed distance matrix.
//
// Matrix freezes the pairwise haversine distances of a city list into one
// linearized buffer so the solver's hot loop reads w[i*n+j] instead of
// re-deriving trigonometry per lookup.
package capitals

import (
	"fmt"

	"github.com/cerber-os/PSZT/genetic"
)

// Matrix is a symmetric city-to-city distance table in kilometers.
// Build instances with NewMatrix; the zero value is unusable.
type Matrix struct {
	names []string  // city names, index-aligned with the weights
	w     []float64 // linearized distances, w[i*n+j]
	n     int       // number of cities
}

// Matrix feeds the solver directly.
var _ genetic.Distances = (*Matrix)(nil)

// NewMatrix precomputes every pairwise haversine distance of cities.
//
// Contract: at least two cities; otherwise ErrEmptyDataset is returned
// wrapped with the actual count.
//
// Complexity: O(n²) time and space.
func NewMatrix(cities []City) (*Matrix, error) {
	var n int
	n = len(cities)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least two cities, got %d", ErrEmptyDataset, n)
	}

	var (
		names = make([]string, n)
		w     = make([]float64, n*n)
		i     int     // row city
		j     int     // column city
		d     float64 // one pairwise distance
	)
	for i = 0; i < n; i++ {
		names[i] = cities[i].Name
		for j = i + 1; j < n; j++ {
			d = Haversine(cities[i], cities[j])
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}

	return &Matrix{names: names, w: w, n: n}, nil
}

// Size reports the number of cities.
func (m *Matrix) Size() int { return m.n }

// At returns the distance from city i to city j in kilometers.
// Indices must be in [0, Size()).
func (m *Matrix) At(i, j int) float64 { return m.w[i*m.n+j] }

// Name returns the name of city i. Index must be in [0, Size()).
func (m *Matrix) Name(i int) string { return m.names[i] }
