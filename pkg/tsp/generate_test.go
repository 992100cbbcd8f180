package tsp

import (
	"math"
	"testing"
)

func TestGenerateLayouts(t *testing.T) {
	for layout := range ValidLayouts {
		t.Run(string(layout), func(t *testing.T) {
			cities, err := Generate(layout, 16, 100, newTestRNG(1))
			if err != nil {
				t.Fatal(err)
			}
			if len(cities) != 16 {
				t.Errorf("got %d cities, want 16", len(cities))
			}
			if err := cities.Validate(); err != nil {
				t.Errorf("generated instance invalid: %v", err)
			}
			for i, c := range cities {
				if c.X < 0 || c.X > 100 || c.Y < 0 || c.Y > 100 {
					t.Errorf("city %d at (%v, %v) outside the 100x100 area", i, c.X, c.Y)
				}
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(LayoutRandom, 1, 100, newTestRNG(1)); err == nil {
		t.Error("n=1 should be rejected")
	}
	if _, err := Generate(Layout("spiral"), 10, 100, newTestRNG(1)); err == nil {
		t.Error("unknown layout should be rejected")
	}
}

func TestGenerateRandomDeterministic(t *testing.T) {
	a, err := Generate(LayoutRandom, 10, 100, newTestRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(LayoutRandom, 10, 100, newTestRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different instances at city %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCirclePerimeterMatchesTourLength(t *testing.T) {
	const n, size = 12, 50.0
	cities, err := Generate(LayoutCircle, n, size, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Cities are laid out in perimeter order, so the identity tour is the
	// optimal cycle.
	got := IdentityTour(n).Length(cities)
	want := CirclePerimeter(n, size)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("identity tour length %v, perimeter formula %v", got, want)
	}
}
