package tsp

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Tour is a visiting order over all cities: a permutation of the indices
// 0..N-1, interpreted as a closed cycle (the last city connects back to the
// first). Tours are treated as immutable values during the search - moves
// produce fresh tours instead of mutating in place, so the annealer can
// always compare a candidate against the unchanged current tour.
type Tour []int

// IdentityTour returns the tour 0,1,...,n-1.
func IdentityTour(n int) Tour {
	t := make(Tour, n)
	for i := range t {
		t[i] = i
	}
	return t
}

// RandomTour returns a uniformly random permutation of 0..n-1 drawn from rng
// (Fisher-Yates).
func RandomTour(n int, rng *rand.Rand) Tour {
	t := IdentityTour(n)
	rng.Shuffle(n, func(i, j int) {
		t[i], t[j] = t[j], t[i]
	})
	return t
}

// Length returns the total Euclidean distance of the closed cycle: the sum
// of distances between consecutive cities plus the wrap-around edge back to
// the start.
//
// The tour must cover exactly the cities in cs. A tour of the wrong length
// is a programming error and panics; an out-of-range index panics via the
// bounds check inside [Cities.Distance].
func (t Tour) Length(cs Cities) float64 {
	n := len(t)
	if n != len(cs) {
		panic(fmt.Sprintf("tsp: tour covers %d cities, instance has %d", n, len(cs)))
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += cs.Distance(t[i], t[(i+1)%n])
	}
	return total
}

// Clone returns an independent copy of the tour.
func (t Tour) Clone() Tour {
	return slices.Clone(t)
}

// Validate checks the permutation invariant: length n, every index in
// [0,n), no duplicates. The annealer checks this once at initialization and
// once at termination; the moves in between preserve it by construction.
func (t Tour) Validate(n int) error {
	if len(t) != n {
		return fmt.Errorf("tour has %d positions, want %d", len(t), n)
	}
	seen := make([]bool, n)
	for _, v := range t {
		if v < 0 || v >= n {
			return fmt.Errorf("tour index %d out of range [0,%d)", v, n)
		}
		if seen[v] {
			return fmt.Errorf("tour visits city %d twice", v)
		}
		seen[v] = true
	}
	return nil
}

// mustBeValid panics on a corrupted tour. Used at the annealer's state
// transitions where a violation means a defective move, not bad user input.
func (t Tour) mustBeValid(n int) {
	if err := t.Validate(n); err != nil {
		panic("tsp: tour invariant violated: " + err.Error())
	}
}
