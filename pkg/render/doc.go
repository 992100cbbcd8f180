// Package render draws tours as images.
//
// # Overview
//
// This package contains the rendering pipeline that turns a city set and a
// visiting order into visual outputs. It provides:
//
//   - Native SVG tour plots ([PlotSVG])
//   - Graphviz DOT export ([ToDOT]) and DOT rasterization ([RenderSVG],
//     [RenderPNG])
//   - A format dispatcher ([Render]) used by the pipeline
//
// # SVG Plots
//
// [PlotSVG] draws the tour directly: cities as dots placed at their plane
// coordinates, the tour as a closed path, the start city highlighted. The
// plot is self-contained SVG with no external dependencies.
//
//	svg := render.PlotSVG(cities, tour, render.WithWidth(1200), render.WithLabels())
//
// # Graphviz Output
//
// [ToDOT] exports the tour as a Graphviz graph with pinned node positions,
// for users who post-process with Graphviz tooling. [RenderSVG] and
// [RenderPNG] rasterize a DOT string in-process.
//
//	dot := render.ToDOT(cities, tour, render.DOTOptions{})
//	png, err := render.RenderPNG(dot)
//
// # Determinism
//
// All output is deterministic: the same cities, tour, and options produce
// byte-identical SVG and DOT, which makes artifacts cacheable by content
// hash.
package render
