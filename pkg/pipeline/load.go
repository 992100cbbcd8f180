package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/roundtrip/pkg/io"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// Load produces the problem instance: either by importing an instance file
// or by generating a synthetic layout.
func Load(ctx context.Context, opts Options) (tsp.Cities, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Instance != "" {
		return io.ImportInstance(opts.Instance)
	}

	// Synthetic instances share the solver's seed handling so a run is
	// reproducible end to end from a single seed.
	seed := opts.Seed
	if seed == 0 {
		seed = tsp.DefaultSeed
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	cities, err := tsp.Generate(tsp.Layout(opts.Layout), opts.Count, opts.Size, rng)
	if err != nil {
		return nil, fmt.Errorf("generate %s instance: %w", opts.Layout, err)
	}
	return cities, nil
}
