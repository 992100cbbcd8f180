package tsp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewCities is returned when an instance has fewer than two cities.
	// A tour needs at least two points to be meaningful.
	ErrTooFewCities = errors.New("instance must contain at least 2 cities")

	// ErrBadCoordinate is returned when a city has a NaN or infinite
	// coordinate. Distances over such points are undefined.
	ErrBadCoordinate = errors.New("city coordinate must be finite")
)

// City is a single point in the plane. The name is optional display metadata
// and never influences the search.
type City struct {
	Name string  `json:"name,omitempty" toml:"name,omitempty"`
	X    float64 `json:"x" toml:"x"`
	Y    float64 `json:"y" toml:"y"`
}

// Cities is the problem instance: an ordered, immutable set of cities
// identified by their index. The annealer only ever reads it, so a single
// Cities value can back many concurrent solver runs.
type Cities []City

// Distance returns the Euclidean distance between cities i and j.
// Indices must be in range; out-of-range access is a programming error and
// panics via the slice bounds check.
func (cs Cities) Distance(i, j int) float64 {
	dx := cs[i].X - cs[j].X
	dy := cs[i].Y - cs[j].Y
	return math.Hypot(dx, dy)
}

// Validate checks that the instance is usable: at least two cities, all
// coordinates finite. It returns ErrTooFewCities or ErrBadCoordinate wrapped
// with the offending index.
func (cs Cities) Validate() error {
	if len(cs) < 2 {
		return fmt.Errorf("%w (got %d)", ErrTooFewCities, len(cs))
	}
	for i, c := range cs {
		if !isFinite(c.X) || !isFinite(c.Y) {
			return fmt.Errorf("city %d: %w", i, ErrBadCoordinate)
		}
	}
	return nil
}

// meanDistance estimates the typical pairwise distance of the instance.
// It is used to derive a sane default initial temperature. For small
// instances all pairs are averaged; larger instances are sampled with a
// fixed stride so the estimate stays O(n) and deterministic.
func (cs Cities) meanDistance() float64 {
	n := len(cs)
	if n < 2 {
		return 0
	}

	const exhaustiveLimit = 64
	var (
		sum   float64
		count int
	)
	if n <= exhaustiveLimit {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				sum += cs.Distance(i, j)
				count++
			}
		}
	} else {
		// Deterministic sparse sample: each city against a handful of
		// stride-offset partners.
		for _, stride := range []int{1, n / 3, n / 7} {
			if stride < 1 {
				stride = 1
			}
			for i := 0; i < n; i++ {
				sum += cs.Distance(i, (i+stride)%n)
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
