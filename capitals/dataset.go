// Package capitals — bundled snapshot & JSON cache.
//
// Dataset resolution is a three-step ladder the CLI walks top-down:
//
//	fresh fetch (opt-in)  →  local JSON cache  →  bundled snapshot
//
// The bundled snapshot is compiled into the binary with go:embed, so the
// solver always has a deterministic offline dataset; the cache keeps one
// successful fetch around between runs.
package capitals

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed capitals.json
var bundledJSON []byte

// bundled is decoded once at program start; the snapshot is part of the
// binary, so a decode failure is a build defect, not a runtime condition.
var bundled []City

func init() {
	if err := json.Unmarshal(bundledJSON, &bundled); err != nil {
		panic("capitals: corrupt bundled dataset: " + err.Error())
	}
}

// Default returns a fresh copy of the bundled capital-city snapshot.
// Callers may reorder or mutate the result freely.
func Default() []City {
	return append([]City(nil), bundled...)
}

// LoadCache reads a city list previously written by SaveCache.
//
// Errors: the underlying read error (fs.ErrNotExist flows through for
// callers probing for a cache), a JSON decode error, or ErrEmptyDataset when
// the file decodes to fewer than two cities.
func LoadCache(path string) ([]City, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("capitals: read cache: %w", err)
	}

	var cities []City
	if err = json.Unmarshal(raw, &cities); err != nil {
		return nil, fmt.Errorf("capitals: decode cache %s: %w", path, err)
	}
	if len(cities) < 2 {
		return nil, fmt.Errorf("%w: cache %s holds %d cities", ErrEmptyDataset, path, len(cities))
	}

	return cities, nil
}

// SaveCache writes the city list as indented JSON, creating the parent
// directory when needed. The format round-trips through LoadCache.
func SaveCache(path string, cities []City) error {
	raw, err := json.MarshalIndent(cities, "", "  ")
	if err != nil {
		return fmt.Errorf("capitals: encode cache: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("capitals: create cache dir: %w", err)
		}
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("capitals: write cache: %w", err)
	}

	return nil
}
