package tsp

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Layout identifies a synthetic instance shape produced by [Generate].
type Layout string

const (
	// LayoutRandom scatters cities uniformly in the unit square, scaled by
	// size.
	LayoutRandom Layout = "random"

	// LayoutCircle places cities evenly on a circle. Useful for testing:
	// the optimal tour is the perimeter order with a known length.
	LayoutCircle Layout = "circle"

	// LayoutGrid arranges cities on a near-square integer grid.
	LayoutGrid Layout = "grid"
)

// ValidLayouts is the set of supported instance layouts.
var ValidLayouts = map[Layout]bool{
	LayoutRandom: true,
	LayoutCircle: true,
	LayoutGrid:   true,
}

// Generate builds a synthetic instance of n cities with the given layout,
// scaled to fit a size x size area. The rng drives the random layout (and
// only that one); circle and grid are deterministic. Cities are named by
// index so generated instances survive a JSON round-trip with stable labels.
func Generate(layout Layout, n int, size float64, rng *rand.Rand) (Cities, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewCities, n)
	}
	if size <= 0 {
		size = 1
	}
	if rng == nil {
		// Fixed default stream keeps nil-rng callers deterministic.
		rng = rand.New(rand.NewPCG(DefaultSeed, DefaultSeed^0xdeadbeef))
	}

	cities := make(Cities, n)
	switch layout {
	case LayoutCircle:
		r := size / 2
		for i := range cities {
			angle := 2 * math.Pi * float64(i) / float64(n)
			cities[i] = City{
				Name: fmt.Sprintf("c%d", i),
				X:    r + r*math.Cos(angle),
				Y:    r + r*math.Sin(angle),
			}
		}
	case LayoutGrid:
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		step := size / float64(cols)
		for i := range cities {
			cities[i] = City{
				Name: fmt.Sprintf("c%d", i),
				X:    float64(i%cols) * step,
				Y:    float64(i/cols) * step,
			}
		}
	case LayoutRandom:
		for i := range cities {
			cities[i] = City{
				Name: fmt.Sprintf("c%d", i),
				X:    rng.Float64() * size,
				Y:    rng.Float64() * size,
			}
		}
	default:
		return nil, fmt.Errorf("invalid layout %q (must be one of: random, circle, grid)", layout)
	}
	return cities, nil
}

// CirclePerimeter returns the length of the perimeter-order tour of a
// [LayoutCircle] instance with n cities in a size x size area. Handy as the
// known optimum in tests and demos.
func CirclePerimeter(n int, size float64) float64 {
	if size <= 0 {
		size = 1
	}
	r := size / 2
	// Chord length between adjacent cities, n times.
	return float64(n) * 2 * r * math.Sin(math.Pi/float64(n))
}
