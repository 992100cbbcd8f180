package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/roundtrip/pkg/tsp"
)

var (
	square = tsp.Cities{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 1, Y: 0},
		{Name: "c", X: 1, Y: 1},
		{Name: "d", X: 0, Y: 1},
	}
	squareTour = tsp.Tour{0, 1, 2, 3}
)

func TestPlotSVG(t *testing.T) {
	svg := string(PlotSVG(square, squareTour))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output should start with an svg element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output should end with a closing svg tag")
	}
	if got := strings.Count(svg, "<circle"); got != 4 {
		t.Errorf("circle count = %d, want 4", got)
	}
	if strings.Count(svg, "<path") != 1 {
		t.Error("output should contain exactly one tour path")
	}
	// Path closes back to the start
	if !strings.Contains(svg, `Z" fill="none"`) {
		t.Error("tour path should be closed")
	}
	// Start city is highlighted
	if !strings.Contains(svg, ThemeLight.Start) {
		t.Error("start city should use the start color")
	}
	// No labels by default
	if strings.Contains(svg, "<text") {
		t.Error("labels should be off by default")
	}
}

func TestPlotSVGLabels(t *testing.T) {
	svg := string(PlotSVG(square, squareTour, WithLabels()))
	for _, name := range []string{"a", "b", "c", "d"} {
		if !strings.Contains(svg, ">"+name+"</text>") {
			t.Errorf("labels should include city %q", name)
		}
	}
}

func TestPlotSVGEscapesLabels(t *testing.T) {
	cities := tsp.Cities{
		{Name: "a<b>", X: 0, Y: 0},
		{Name: "c&d", X: 1, Y: 1},
	}
	svg := string(PlotSVG(cities, tsp.Tour{0, 1}, WithLabels()))
	if strings.Contains(svg, "<b>") {
		t.Error("labels should be XML-escaped")
	}
	if !strings.Contains(svg, "a&lt;b&gt;") || !strings.Contains(svg, "c&amp;d") {
		t.Error("escaped label text missing")
	}
}

func TestPlotSVGDeterministic(t *testing.T) {
	a := PlotSVG(square, squareTour, WithWidth(640))
	b := PlotSVG(square, squareTour, WithWidth(640))
	if !bytes.Equal(a, b) {
		t.Error("PlotSVG should be deterministic")
	}
}

func TestPlotSVGCollinear(t *testing.T) {
	// All cities on one line: the degenerate span must not divide by zero.
	line := tsp.Cities{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	svg := string(PlotSVG(line, tsp.Tour{0, 1, 2}))
	if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
		t.Error("collinear cities should not produce non-finite coordinates")
	}
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to light", input: "", want: "light"},
		{name: "light", input: "light", want: "light"},
		{name: "dark", input: "dark", want: "dark"},
		{name: "unknown", input: "sepia", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ThemeByName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ThemeByName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && theme.Name != tt.want {
				t.Errorf("theme = %s, want %s", theme.Name, tt.want)
			}
		})
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(square, squareTour, DOTOptions{})

	if !strings.HasPrefix(dot, "graph tour {") {
		t.Error("DOT output should be an undirected graph")
	}
	if !strings.Contains(dot, "layout=neato;") {
		t.Error("DOT output should pin the layout engine")
	}
	// Pinned positions
	if !strings.Contains(dot, `pos="0.000,0.000!"`) {
		t.Errorf("DOT output should pin node positions:\n%s", dot)
	}
	// Closed tour: as many edges as cities
	if got := strings.Count(dot, " -- "); got != len(square) {
		t.Errorf("edge count = %d, want %d", got, len(square))
	}
	// Index labels by default
	if !strings.Contains(dot, `0 [label="0"`) {
		t.Error("DOT nodes should be labeled by index by default")
	}
}

func TestToDOTLabels(t *testing.T) {
	dot := ToDOT(square, squareTour, DOTOptions{Labels: true})
	if !strings.Contains(dot, `[label="a"`) {
		t.Error("DOT nodes should use city names with Labels")
	}
}

func TestRenderDispatch(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
		check   func([]byte) bool
	}{
		{
			name:  "svg",
			opts:  Options{Format: FormatSVG},
			check: func(b []byte) bool { return bytes.HasPrefix(b, []byte("<svg")) },
		},
		{
			name:  "empty defaults to svg",
			opts:  Options{},
			check: func(b []byte) bool { return bytes.HasPrefix(b, []byte("<svg")) },
		},
		{
			name:  "dot",
			opts:  Options{Format: FormatDOT},
			check: func(b []byte) bool { return bytes.HasPrefix(b, []byte("graph tour")) },
		},
		{
			name:    "unknown format",
			opts:    Options{Format: "bmp"},
			wantErr: true,
		},
		{
			name:    "unknown theme",
			opts:    Options{Format: FormatSVG, Theme: "sepia"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(square, squareTour, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !tt.check(out) {
				t.Errorf("unexpected output: %.60s", out)
			}
		})
	}
}

func TestRenderRejectsInvalidTour(t *testing.T) {
	if _, err := Render(square, tsp.Tour{0, 1}, Options{}); err == nil {
		t.Error("Render should reject a tour that is not a permutation")
	}
}
