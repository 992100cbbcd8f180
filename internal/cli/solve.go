package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	rtio "github.com/matzehuels/roundtrip/pkg/io"
	"github.com/matzehuels/roundtrip/pkg/pipeline"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// solveCommand creates the solve command, the main entry point of the tool.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		formatsStr   string
		output       string
		solutionPath string
		noCache      bool
		redisAddr    string
		watch        bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "solve [instance]",
		Short: "Anneal an instance into a short closed tour",
		Long: `Anneal an instance into a short closed tour.

The solve command loads a city set from an instance file (.json or .toml),
or generates a synthetic one with --layout, then runs simulated annealing
and renders the resulting tour.

Results are cached locally keyed by instance content and solver options, so
repeating a run is instant. Use --refresh to force a recompute, --no-cache
to disable caching entirely, or --redis to share a cache between machines.

With --watch, the search is shown live in the terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Instance = args[0]
			}
			if opts.Instance == "" && opts.Layout == "" {
				opts.Layout = string(tsp.LayoutRandom)
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), opts, solveRunParams{
				output:       output,
				solutionPath: solutionPath,
				noCache:      noCache,
				redisAddr:    redisAddr,
				watch:        watch,
			})
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "artifact file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&solutionPath, "solution", "", "also write the solution as JSON to this path")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "use a Redis cache at host:port instead of the file cache")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "show the search live in the terminal")

	// Instance flags
	cmd.Flags().StringVarP(&opts.Layout, "layout", "l", "", "synthetic instance layout: random, circle, grid")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 0, "synthetic instance city count")
	cmd.Flags().Float64Var(&opts.Size, "size", 0, "synthetic instance coordinate extent")

	// Solver flags
	cmd.Flags().StringVar(&opts.Schedule, "schedule", "", "cooling schedule: exponential (default), inverse, linear")
	cmd.Flags().StringVar(&opts.Move, "move", "", "neighbor move: reverse (default), swap")
	cmd.Flags().Float64Var(&opts.InitialTemp, "initial-temp", 0, "starting temperature (default derived from the instance)")
	cmd.Flags().Float64Var(&opts.Cooling, "cooling", 0, "exponential cooling factor in (0,1)")
	cmd.Flags().Float64Var(&opts.MinTemp, "min-temp", 0, "temperature floor that stops the search")
	cmd.Flags().IntVarP(&opts.MaxIterations, "iterations", "i", 0, "iteration cap")
	cmd.Flags().IntVar(&opts.StallLimit, "stall", 0, "stop after this many iterations without improvement")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducible runs")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "plot width in pixels")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "plot theme: light (default), dark")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw city names on the plot")

	return cmd
}

// solveRunParams bundles flags that are not pipeline options.
type solveRunParams struct {
	output       string
	solutionPath string
	noCache      bool
	redisAddr    string
	watch        bool
}

// runSolve executes the pipeline and writes artifacts.
func (c *CLI) runSolve(ctx context.Context, opts pipeline.Options, params solveRunParams) error {
	runner, err := c.newRunner(ctx, params.noCache, params.redisAddr)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	var result *pipeline.Result
	if params.watch {
		result, err = runSolveTUI(ctx, runner, opts)
	} else {
		spinner := newSpinnerWithContext(ctx, "Annealing...")
		spinner.Start()
		result, err = runner.Execute(ctx, opts)
		if err != nil {
			spinner.StopWithError("Solve failed")
			return err
		}
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	sol := result.Solution
	printSuccess("Tour length %.2f (started at %.2f)", sol.Length, sol.InitialLength)
	printTourStats(len(sol.Cities), sol.Iterations, sol.Improvement(), result.CacheInfo.SolveHit)

	if err := writeArtifacts(result.Artifacts, opts.Formats, solveInputName(opts), params.output); err != nil {
		return err
	}

	if params.solutionPath != "" {
		if err := rtio.ExportSolution(sol, params.solutionPath); err != nil {
			return err
		}
		printFile(params.solutionPath)
		printNewline()
		printNextStep("Re-plot later", fmt.Sprintf("roundtrip plot %s", params.solutionPath))
	}

	return nil
}

// solveInputName derives the default artifact base name for a run.
func solveInputName(opts pipeline.Options) string {
	if opts.Instance != "" {
		return strings.TrimSuffix(opts.Instance, filepath.Ext(opts.Instance))
	}
	return "tour"
}
