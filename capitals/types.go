// Package capitals — core types & sentinel errors.
//
// This file defines:
//   - City            — one capital with its WGS-84 position in degrees;
//   - sentinel errors — stable causes callers match with errors.Is.
//
// Conventions:
//   - Coordinates live in decimal degrees (north/east positive) so they can
//     round-trip through JSON unchanged; conversion to radians happens only
//     inside the distance math.
//   - Sentinels are returned bare from small parsers and wrapped with
//     fmt.Errorf("%w: detail", Err...) where extra context helps.
package capitals

import "errors"

// Sentinel errors. Match with errors.Is; the wrapped detail is for humans.
var (
	// ErrBadCoordinate — a coordinate token could not be parsed into decimal
	// degrees or lies outside its hemisphere's legal range.
	ErrBadCoordinate = errors.New("capitals: malformed coordinate")

	// ErrFetchFailed — the remote dataset could not be retrieved or the page
	// layout did not contain what the scraper expects.
	ErrFetchFailed = errors.New("capitals: fetch failed")

	// ErrEmptyDataset — a source (cache file, fetch result, matrix input)
	// yielded too few cities to work with.
	ErrEmptyDataset = errors.New("capitals: empty dataset")
)

// City is one capital city of the Americas.
//
// The JSON field names are the on-disk cache format and the bundled-dataset
// format; keep them stable.
type City struct {
	Name    string  `json:"name"`    // capital name, e.g. "Ottawa"
	Country string  `json:"country"` // country or territory it serves
	Lat     float64 `json:"lat"`     // latitude, decimal degrees, north positive
	Lon     float64 `json:"lon"`     // longitude, decimal degrees, east positive
}
