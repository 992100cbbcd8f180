package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	rtio "github.com/matzehuels/roundtrip/pkg/io"
	"github.com/matzehuels/roundtrip/pkg/pipeline"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// generateCommand creates the generate command for writing synthetic instances.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		layout string
		count  int
		size   float64
		seed   uint64
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic instance file",
		Long: `Write a synthetic instance file.

Layouts:
  random  uniformly random points (the default)
  circle  evenly spaced points on a circle, whose optimal tour is known
  grid    points on a square lattice

The output format follows the file extension: .json or .toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = tsp.DefaultSeed
			}
			rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

			cities, err := tsp.Generate(tsp.Layout(layout), count, size, rng)
			if err != nil {
				return err
			}
			if err := rtio.ExportInstance(cities, output); err != nil {
				return err
			}

			printSuccess("Generated %d cities (%s layout)", len(cities), layout)
			printFile(output)
			printNewline()
			printNextStep("Solve it", fmt.Sprintf("roundtrip solve %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&layout, "layout", "l", string(tsp.LayoutRandom), "layout: random, circle, grid")
	cmd.Flags().IntVarP(&count, "count", "n", pipeline.DefaultCount, "city count")
	cmd.Flags().Float64Var(&size, "size", pipeline.DefaultSize, "coordinate extent")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible instances")
	cmd.Flags().StringVarP(&output, "output", "o", "cities.json", "instance file (.json or .toml)")

	return cmd
}
