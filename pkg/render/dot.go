package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// DOTOptions configures Graphviz export.
type DOTOptions struct {
	// Labels uses city names as node labels instead of indices.
	Labels bool
}

// canvasInches is the target size of the longer canvas dimension.
// Graphviz pinned positions are expressed in inches.
const canvasInches = 8.0

// ToDOT converts a tour to Graphviz DOT format with pinned node positions.
// The layout engine is set to neato inside the graph so the output renders
// correctly with plain `dot file.dot` as well as with [RenderSVG].
func ToDOT(cities tsp.Cities, tour tsp.Tour, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph tour {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, fixedsize=true, width=0.35];\n")
	buf.WriteString("\n")

	scale := dotScale(cities)
	for i, c := range cities {
		label := strconv.Itoa(i)
		if opts.Labels && c.Name != "" {
			label = c.Name
		}
		fmt.Fprintf(&buf, "  %d [label=%q, pos=\"%.3f,%.3f!\"];\n", i, label, c.X*scale, c.Y*scale)
	}

	buf.WriteString("\n")
	for k, idx := range tour {
		next := tour[(k+1)%len(tour)]
		fmt.Fprintf(&buf, "  %d -- %d;\n", idx, next)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotScale maps the city bounding box onto a canvas of canvasInches.
func dotScale(cities tsp.Cities) float64 {
	var span float64
	minX, maxX := cities[0].X, cities[0].X
	minY, maxY := cities[0].Y, cities[0].Y
	for _, c := range cities[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	span = max(maxX-minX, maxY-minY)
	if span == 0 {
		return 1
	}
	return canvasInches / span
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG, nil)
}

func renderDOT(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header to a zero-origin viewBox
// with explicit pixel dimensions, which embeds more predictably in HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
