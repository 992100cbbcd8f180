package tsp_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// Solve the unit square: the optimal tour visits the corners in order for a
// total length of 4.
func ExampleSolve() {
	cities := tsp.Cities{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
	}

	result, err := tsp.Solve(context.Background(), cities, tsp.Options{
		InitialTemp:   1,
		Cooling:       0.99,
		MaxIterations: 2000,
		Seed:          1,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("length: %.1f\n", result.Length)
	// Output: length: 4.0
}

// A fixed seed makes runs reproducible end to end.
func ExampleAnnealer_Run() {
	cities, err := tsp.Generate(tsp.LayoutCircle, 8, 10, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	a, err := tsp.New(cities, tsp.Options{
		InitialTemp:   10,
		Cooling:       0.995, // cools to greedy within a few thousand steps
		MaxIterations: 10_000,
		Seed:          7,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	result, err := a.Run(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.2f\n", result.Length)
	// Output: 30.61
}
