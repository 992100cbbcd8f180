package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/roundtrip/pkg/io"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// ResolveSolverOptions validates pipeline solver options against an instance
// and returns the fully resolved solver configuration. The resolved form is
// what cache keys are derived from, so explicit defaults and implicit
// defaults share cache entries.
func ResolveSolverOptions(cities tsp.Cities, opts Options) (tsp.Options, error) {
	solverOpts := opts.SolverOptions()
	if err := solverOpts.ValidateAndSetDefaults(cities); err != nil {
		return tsp.Options{}, fmt.Errorf("invalid solver options: %w", err)
	}
	return solverOpts, nil
}

// Solve runs the annealer over the instance with resolved solver options
// and packages the result as a solution.
func Solve(ctx context.Context, cities tsp.Cities, solverOpts tsp.Options) (*io.Solution, error) {
	res, err := tsp.Solve(ctx, cities, solverOpts)
	if err != nil {
		return nil, err
	}
	return io.NewSolution(cities, &res), nil
}
