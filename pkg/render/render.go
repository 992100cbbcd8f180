package render

import (
	"fmt"

	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// Format selects an output encoding.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatDOT Format = "dot"
)

// ValidFormats maps format names to their canonical value.
var ValidFormats = map[string]Format{
	string(FormatSVG): FormatSVG,
	string(FormatPNG): FormatPNG,
	string(FormatDOT): FormatDOT,
}

// Options bundles rendering configuration for [Render].
type Options struct {
	Format Format `json:"format"`
	Width  int    `json:"width,omitempty"`
	Theme  string `json:"theme,omitempty"`
	Labels bool   `json:"labels,omitempty"`
}

// Render draws the tour in the requested format.
//
// SVG output uses the native plotter; PNG and DOT go through Graphviz.
// Render validates the tour against the cities before drawing.
func Render(cities tsp.Cities, tour tsp.Tour, opts Options) ([]byte, error) {
	if err := cities.Validate(); err != nil {
		return nil, err
	}
	if err := tour.Validate(len(cities)); err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatSVG, "":
		theme, err := ThemeByName(opts.Theme)
		if err != nil {
			return nil, err
		}
		plotOpts := []PlotOption{WithTheme(theme)}
		if opts.Width > 0 {
			plotOpts = append(plotOpts, WithWidth(opts.Width))
		}
		if opts.Labels {
			plotOpts = append(plotOpts, WithLabels())
		}
		return PlotSVG(cities, tour, plotOpts...), nil
	case FormatPNG:
		return RenderPNG(ToDOT(cities, tour, DOTOptions{Labels: opts.Labels}))
	case FormatDOT:
		return []byte(ToDOT(cities, tour, DOTOptions{Labels: opts.Labels})), nil
	}
	return nil, fmt.Errorf("unknown format %q", opts.Format)
}
