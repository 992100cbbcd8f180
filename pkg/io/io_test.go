package io

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

var square = tsp.Cities{
	{Name: "a", X: 0, Y: 0},
	{Name: "b", X: 1, Y: 0},
	{Name: "c", X: 1, Y: 1},
	{Name: "d", X: 0, Y: 1},
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "valid instance",
			input: `{"cities":[{"name":"a","x":0,"y":0},{"name":"b","x":3,"y":4}]}`,
			want:  2,
		},
		{
			name:  "unnamed cities",
			input: `{"cities":[{"x":0,"y":0},{"x":1,"y":1}]}`,
			want:  2,
		},
		{
			name:    "malformed JSON",
			input:   `{"cities":[`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			input:   `{"cities":[{"x":0,"y":0},{"x":1,"y":1}],"extra":1}`,
			wantErr: true,
		},
		{
			name:    "too few cities",
			input:   `{"cities":[{"x":0,"y":0}]}`,
			wantErr: true,
		},
		{
			name:    "empty",
			input:   `{"cities":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := ReadJSON(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(cs) != tt.want {
				t.Errorf("len(cities) = %d, want %d", len(cs), tt.want)
			}
		})
	}
}

func TestReadJSONNonFinite(t *testing.T) {
	// JSON cannot express NaN literally, but TOML can; guard JSON through
	// a large-exponent overflow instead.
	input := `{"cities":[{"x":1e999,"y":0},{"x":1,"y":1}]}`
	if _, err := ReadJSON(strings.NewReader(input)); err == nil {
		t.Error("ReadJSON should reject non-finite coordinates")
	}
}

func TestReadTOML(t *testing.T) {
	input := `
[[cities]]
name = "a"
x = 0.0
y = 0.0

[[cities]]
name = "b"
x = 3.0
y = 4.0
`
	cs, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML error: %v", err)
	}
	if len(cs) != 2 {
		t.Fatalf("len(cities) = %d, want 2", len(cs))
	}
	if cs[1].Name != "b" || cs[1].X != 3 || cs[1].Y != 4 {
		t.Errorf("city[1] = %+v, want {b 3 4}", cs[1])
	}
}

func TestReadTOMLNaN(t *testing.T) {
	input := `
[[cities]]
x = nan
y = 0.0

[[cities]]
x = 1.0
y = 1.0
`
	if _, err := ReadTOML(strings.NewReader(input)); err == nil {
		t.Error("ReadTOML should reject NaN coordinates")
	}
}

func TestInstanceRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "instance"+ext)
			if err := ExportInstance(square, path); err != nil {
				t.Fatalf("ExportInstance error: %v", err)
			}

			got, err := ImportInstance(path)
			if err != nil {
				t.Fatalf("ImportInstance error: %v", err)
			}
			if len(got) != len(square) {
				t.Fatalf("len = %d, want %d", len(got), len(square))
			}
			for i := range got {
				if got[i] != square[i] {
					t.Errorf("city[%d] = %+v, want %+v", i, got[i], square[i])
				}
			}
		})
	}
}

func TestImportInstanceUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.csv")
	if err := ExportInstance(square, path); !apperrors.Is(err, apperrors.ErrCodeUnsupported) {
		t.Errorf("ExportInstance error = %v, want UNSUPPORTED", err)
	}
}

func TestImportInstanceMissingFile(t *testing.T) {
	if _, err := ImportInstance(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ImportInstance should fail for missing file")
	}
}

func TestSolutionRoundTrip(t *testing.T) {
	sol := &Solution{
		Cities:        square,
		Tour:          tsp.Tour{0, 1, 2, 3},
		Length:        4,
		InitialLength: 2 + 2*math.Sqrt2,
		Iterations:    1000,
		Accepted:      120,
		Seed:          42,
		Stop:          "max_iterations",
		DurationMS:    15,
	}

	var buf bytes.Buffer
	if err := WriteSolution(sol, &buf); err != nil {
		t.Fatalf("WriteSolution error: %v", err)
	}

	got, err := ReadSolution(&buf)
	if err != nil {
		t.Fatalf("ReadSolution error: %v", err)
	}
	if got.Length != sol.Length || got.Seed != sol.Seed || got.Stop != sol.Stop {
		t.Errorf("roundtrip mismatch: got %+v", got)
	}
	if len(got.Tour) != 4 {
		t.Errorf("tour length = %d, want 4", len(got.Tour))
	}
}

func TestReadSolutionInvalidTour(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "tour too short",
			input: `{"cities":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1}],"tour":[0,1],"length":1}`,
		},
		{
			name:  "duplicate index",
			input: `{"cities":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1}],"tour":[0,1,1],"length":1}`,
		},
		{
			name:  "index out of range",
			input: `{"cities":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1}],"tour":[0,1,3],"length":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadSolution(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadSolution should reject invalid tour")
			}
		})
	}
}

func TestSolutionImprovement(t *testing.T) {
	sol := &Solution{InitialLength: 10, Length: 5}
	if got := sol.Improvement(); got != 0.5 {
		t.Errorf("Improvement() = %v, want 0.5", got)
	}

	zero := &Solution{}
	if got := zero.Improvement(); got != 0 {
		t.Errorf("Improvement() on zero solution = %v, want 0", got)
	}
}
