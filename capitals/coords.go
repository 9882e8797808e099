// Package capitals — coordinate parsing & great-circle distance.
//
// Wikipedia publishes positions as degree–minute–second tokens such as
// "38°54′17″N" or "77°00′59″W"; ParseDMS turns one token into signed decimal
// degrees. Haversine then measures the great-circle distance between two
// cities on the common 6371 km sphere.
package capitals

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// ParseDMS converts one Wikipedia-style coordinate token into signed decimal
// degrees.
//
// Accepted shapes (minutes and seconds optional, ASCII or typographic marks):
//
//	"38°54′17″N"   →  38.90472…
//	"17°07′S"      → -17.11666…
//	"77.0164°W"    → -77.0164
//
// Contract:
//   - the token ends in a hemisphere letter N, S, E or W;
//   - degrees are mandatory, minutes and seconds optional and < 60;
//   - N/S magnitudes cap at 90°, E/W at 180°.
//
// Violations return ErrBadCoordinate wrapped with the offending token.
func ParseDMS(token string) (float64, error) {
	var s string
	s = strings.TrimSpace(token)
	if s == "" {
		return 0, fmt.Errorf("%w: empty token", ErrBadCoordinate)
	}

	// Stage 1: hemisphere letter decides sign and the legal magnitude.
	var (
		hemi  byte    // trailing hemisphere letter
		sign  float64 // +1 north/east, -1 south/west
		limit float64 // 90 for latitudes, 180 for longitudes
	)
	hemi = s[len(s)-1]
	switch hemi {
	case 'N', 'E':
		sign = 1
	case 'S', 'W':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: %q lacks a hemisphere letter", ErrBadCoordinate, token)
	}
	limit = 90
	if hemi == 'E' || hemi == 'W' {
		limit = 180
	}

	// Stage 2: split the body into up to three numeric fields. Every rune
	// that is not a digit or a decimal point separates fields, which covers
	// °, ′, ″, their ASCII stand-ins and stray spacing alike.
	var parts []string
	parts = strings.FieldsFunc(s[:len(s)-1], func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if len(parts) < 1 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has %d numeric fields", ErrBadCoordinate, token, len(parts))
	}

	// Stage 3: degrees + minutes/60 + seconds/3600.
	var (
		deg   float64 // accumulated decimal degrees
		part  float64 // one parsed field
		scale float64 // divisor for the current field
		i     int     // field index
		err   error
	)
	scale = 1
	for i = 0; i < len(parts); i++ {
		part, err = strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q field %q", ErrBadCoordinate, token, parts[i])
		}
		if i > 0 && part >= 60 {
			return 0, fmt.Errorf("%w: %q field %q exceeds 60", ErrBadCoordinate, token, parts[i])
		}
		deg += part / scale
		scale *= 60
	}
	if deg > limit {
		return 0, fmt.Errorf("%w: %q exceeds %v°", ErrBadCoordinate, token, limit)
	}

	return sign * deg, nil
}

// Haversine returns the great-circle distance between two cities in
// kilometers, via the arcsine form of the haversine formula on a sphere of
// radius earthRadiusKm.
//
// Properties: symmetric, non-negative, zero for identical positions.
//
// Complexity: O(1).
func Haversine(a, b City) float64 {
	var (
		lat1 = radians(a.Lat)
		lat2 = radians(b.Lat)
		dLat = radians(b.Lat - a.Lat)
		dLon = radians(b.Lon - a.Lon)
	)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// radians converts decimal degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }
