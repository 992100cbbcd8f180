package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// Theme holds the colors for an SVG plot.
type Theme struct {
	Name       string
	Background string
	Edge       string
	Node       string
	Start      string
	Label      string
}

// Built-in themes.
var (
	ThemeLight = Theme{
		Name:       "light",
		Background: "#ffffff",
		Edge:       "#2563eb",
		Node:       "#1e293b",
		Start:      "#dc2626",
		Label:      "#475569",
	}

	ThemeDark = Theme{
		Name:       "dark",
		Background: "#0f172a",
		Edge:       "#60a5fa",
		Node:       "#e2e8f0",
		Start:      "#f87171",
		Label:      "#94a3b8",
	}
)

// ThemeByName resolves a theme name. Empty selects the light theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", ThemeLight.Name:
		return ThemeLight, nil
	case ThemeDark.Name:
		return ThemeDark, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// PlotOption configures SVG plotting.
type PlotOption func(*plotter)

type plotter struct {
	width  int
	theme  Theme
	labels bool
}

// WithWidth sets the plot width in pixels. Height follows the aspect ratio
// of the city bounding box.
func WithWidth(w int) PlotOption { return func(p *plotter) { p.width = w } }

// WithTheme sets the plot colors.
func WithTheme(t Theme) PlotOption { return func(p *plotter) { p.theme = t } }

// WithLabels draws city names next to their dots.
func WithLabels() PlotOption { return func(p *plotter) { p.labels = true } }

const (
	defaultPlotWidth = 800
	nodeRadius       = 4.0
	startRadius      = 6.0
)

// PlotSVG draws the tour as a self-contained SVG image.
// Cities appear as dots at their plane coordinates, the tour as a closed
// path through them, and the tour's first city with a highlighted marker.
// The tour must be a valid permutation of the cities.
func PlotSVG(cities tsp.Cities, tour tsp.Tour, opts ...PlotOption) []byte {
	p := plotter{width: defaultPlotWidth, theme: ThemeLight}
	for _, opt := range opts {
		opt(&p)
	}

	px, py, width, height := project(cities, float64(p.width))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", p.theme.Background)

	// Tour path, closed back to the start.
	buf.WriteString(`  <path d="`)
	for k, idx := range tour {
		cmd := "L"
		if k == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&buf, "%s%.2f %.2f ", cmd, px[idx], py[idx])
	}
	fmt.Fprintf(&buf, `Z" fill="none" stroke="%s" stroke-width="2"/>`+"\n", p.theme.Edge)

	for i := range cities {
		r := nodeRadius
		fill := p.theme.Node
		if len(tour) > 0 && i == tour[0] {
			r = startRadius
			fill = p.theme.Start
		}
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n", px[i], py[i], r, fill)
	}

	if p.labels {
		for i, c := range cities {
			if c.Name == "" {
				continue
			}
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="12" font-family="sans-serif" fill="%s">%s</text>`+"\n",
				px[i]+8, py[i]-8, p.theme.Label, escapeText(c.Name))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// project maps city coordinates onto a pixel canvas of the given width,
// preserving aspect ratio and flipping the y axis (SVG y grows downward).
func project(cities tsp.Cities, width float64) (px, py []float64, w, h float64) {
	minX, maxX := cities[0].X, cities[0].X
	minY, maxY := cities[0].Y, cities[0].Y
	for _, c := range cities[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	// Degenerate spans (all cities collinear) still need a nonzero scale.
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	margin := width * 0.05
	scale := (width - 2*margin) / spanX
	h = spanY*scale + 2*margin

	px = make([]float64, len(cities))
	py = make([]float64, len(cities))
	for i, c := range cities {
		px[i] = margin + (c.X-minX)*scale
		py[i] = h - margin - (c.Y-minY)*scale
	}
	return px, py, width, h
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
