// Package pipeline provides the core solve pipeline for Roundtrip.
//
// This package implements the complete load → solve → render pipeline shared
// by every entry point. By centralizing this logic, we ensure consistent
// behavior and caching regardless of how a run is started.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read an instance file or generate a synthetic instance
//  2. Solve: Run the annealer to find a short tour
//  3. Render: Generate output in various formats (SVG, PNG, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Instance: "cities.json",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	cities, err := runner.Load(ctx, opts)
//
//	// Solve with existing cities
//	sol, err := runner.Solve(ctx, cities, opts)
package pipeline

import (
	"fmt"
	stdio "io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roundtrip/pkg/cache"
	"github.com/matzehuels/roundtrip/pkg/io"
	"github.com/matzehuels/roundtrip/pkg/render"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// Default values shared by every entry point.
const (
	// DefaultCount is the city count for synthetic instances.
	DefaultCount = 25

	// DefaultSize is the coordinate extent for synthetic instances.
	DefaultSize = 100.0

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = string(render.FormatSVG)
)

// Options contains all configuration for the solve pipeline.
// This struct supports JSON serialization so resolved configurations can be
// logged or archived alongside results.
type Options struct {
	// Load options
	Instance string  `json:"instance,omitempty"` // instance file path (.json or .toml)
	Layout   string  `json:"layout,omitempty"`   // synthetic layout: random, circle, grid
	Count    int     `json:"count,omitempty"`    // synthetic city count
	Size     float64 `json:"size,omitempty"`     // synthetic coordinate extent
	Refresh  bool    `json:"refresh,omitempty"`  // bypass the solve cache

	// Solve options
	Schedule      string  `json:"schedule,omitempty"`
	Move          string  `json:"move,omitempty"`
	InitialTemp   float64 `json:"initial_temp,omitempty"`
	Cooling       float64 `json:"cooling,omitempty"`
	MinTemp       float64 `json:"min_temp,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	StallLimit    int     `json:"stall_limit,omitempty"`
	Seed          uint64  `json:"seed,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Width   int      `json:"width,omitempty"`
	Theme   string   `json:"theme,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger    *log.Logger        `json:"-"`
	Hook      func(tsp.Progress) `json:"-"`
	HookEvery int                `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution.
	RunID string

	// Cities is the loaded problem instance.
	Cities tsp.Cities

	// InstanceHash is the content hash of the instance.
	InstanceHash string

	// Solution is the solver output, including a copy of the cities.
	Solution *io.Solution

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CityCount  int
	LoadTime   time.Duration
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the solution came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if _, ok := render.ValidFormats[format]; !ok {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for instance loading.
func (o *Options) ValidateForLoad() error {
	if o.Instance == "" && o.Layout == "" {
		return fmt.Errorf("instance or layout is required")
	}
	if o.Instance != "" && o.Layout != "" {
		return fmt.Errorf("instance and layout are mutually exclusive")
	}
	if o.Layout != "" {
		if !tsp.ValidLayouts[tsp.Layout(o.Layout)] {
			return fmt.Errorf("invalid layout: %q (must be one of: random, circle, grid)", o.Layout)
		}
	}

	// Load defaults
	if o.Count == 0 {
		o.Count = DefaultCount
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}

	return nil
}

// ValidateForSolve checks solver enumerations. Numeric bounds are enforced
// by the solver itself when options are resolved against an instance.
func (o *Options) ValidateForSolve() error {
	if o.Schedule != "" && !tsp.ValidSchedules[tsp.ScheduleKind(o.Schedule)] {
		return fmt.Errorf("invalid schedule: %q (must be one of: exponential, inverse, linear)", o.Schedule)
	}
	if o.Move != "" && !tsp.ValidMoves[tsp.Move(o.Move)] {
		return fmt.Errorf("invalid move: %q (must be one of: reverse, swap)", o.Move)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := render.ThemeByName(o.Theme); err != nil {
		return err
	}
	return nil
}

// SolverOptions translates pipeline options into solver options.
func (o *Options) SolverOptions() tsp.Options {
	return tsp.Options{
		InitialTemp:   o.InitialTemp,
		Cooling:       o.Cooling,
		Schedule:      tsp.ScheduleKind(o.Schedule),
		Move:          tsp.Move(o.Move),
		MaxIterations: o.MaxIterations,
		StallLimit:    o.StallLimit,
		MinTemp:       o.MinTemp,
		Seed:          o.Seed,
		Hook:          o.Hook,
		HookEvery:     o.HookEvery,
	}
}

// RenderOptions returns render configuration for a single format.
func (o *Options) RenderOptions(format string) render.Options {
	return render.Options{
		Format: render.Format(format),
		Width:  o.Width,
		Theme:  o.Theme,
		Labels: o.Labels,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Width,
		Theme:  o.Theme,
	}
}

// solveKeyOpts derives cache key options from fully resolved solver options,
// so runs that spell defaults explicitly share cache entries with runs that
// rely on them.
func solveKeyOpts(resolved tsp.Options) cache.SolveKeyOpts {
	return cache.SolveKeyOpts{
		Schedule:      string(resolved.Schedule),
		Move:          string(resolved.Move),
		InitialTemp:   resolved.InitialTemp,
		Cooling:       resolved.Cooling,
		MinTemp:       resolved.MinTemp,
		MaxIterations: resolved.MaxIterations,
		StallLimit:    resolved.StallLimit,
		Seed:          resolved.Seed,
	}
}
