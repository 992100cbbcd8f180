package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	rtio "github.com/matzehuels/roundtrip/pkg/io"
	"github.com/matzehuels/roundtrip/pkg/pipeline"
)

// plotCommand creates the plot command for rendering from a saved solution.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "plot [solution.json]",
		Short: "Render artifacts from a saved solution",
		Long: `Render artifacts from a saved solution.

The plot command takes a solution file (produced by 'solve --solution') and
renders it to SVG, PNG, or DOT. Solutions embed their cities, so no instance
file is needed.

Artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runPlot(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "plot width in pixels")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "plot theme: light (default), dark")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw city names on the plot")

	return cmd
}

// runPlot loads the solution and renders it.
func (c *CLI) runPlot(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	sol, err := rtio.ImportSolution(input)
	if err != nil {
		return fmt.Errorf("load solution %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache, "")
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, sol, opts)
	if err != nil {
		spinner.StopWithError("Plot failed")
		return fmt.Errorf("plot: %w", err)
	}
	spinner.Stop()

	printSuccess("Tour length %.2f", sol.Length)
	printTourStats(len(sol.Cities), sol.Iterations, sol.Improvement(), cacheHit)

	base := strings.TrimSuffix(input, filepath.Ext(input))
	return writeArtifacts(artifacts, opts.Formats, base, output)
}
