package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// Solution is the on-disk representation of a solver result.
// It embeds the cities so artifacts can be rendered from the solution alone.
type Solution struct {
	Cities        tsp.Cities `json:"cities"`
	Tour          tsp.Tour   `json:"tour"`
	Length        float64    `json:"length"`
	InitialLength float64    `json:"initial_length"`
	Iterations    int        `json:"iterations"`
	Accepted      int        `json:"accepted"`
	Seed          uint64     `json:"seed"`
	Stop          string     `json:"stop"`
	DurationMS    int64      `json:"duration_ms"`
}

// NewSolution builds a Solution from a solver result.
func NewSolution(cities tsp.Cities, res *tsp.Result) *Solution {
	return &Solution{
		Cities:        cities,
		Tour:          res.Tour,
		Length:        res.Length,
		InitialLength: res.InitialLength,
		Iterations:    res.Iterations,
		Accepted:      res.Accepted,
		Seed:          res.Seed,
		Stop:          string(res.Stop),
		DurationMS:    res.Duration.Milliseconds(),
	}
}

// Improvement returns the relative tour length reduction in [0, 1].
func (s *Solution) Improvement() float64 {
	if s.InitialLength == 0 {
		return 0
	}
	return (s.InitialLength - s.Length) / s.InitialLength
}

// WriteSolution encodes a solution as indented JSON and writes it to w.
// The output can be re-imported with [ReadSolution] for re-plotting.
func WriteSolution(sol *Solution, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sol); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSolution writes a solution to a JSON file at path.
// This is a convenience wrapper around [WriteSolution] for file-based output.
func ExportSolution(sol *Solution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSolution(sol, f)
}

// WriteInstanceJSON encodes cities as an indented JSON instance.
func WriteInstanceJSON(cities tsp.Cities, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(instance{Cities: cities}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteInstanceTOML encodes cities as a TOML instance.
func WriteInstanceTOML(cities tsp.Cities, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(instance{Cities: cities}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportInstance writes cities to an instance file at path, selecting the
// codec from the file extension (.json or .toml). The output round-trips
// through [ImportInstance].
func ExportInstance(cities tsp.Cities, path string) error {
	if err := cities.Validate(); err != nil {
		return err
	}

	var write func(tsp.Cities, io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		write = WriteInstanceJSON
	case ".toml":
		write = WriteInstanceTOML
	default:
		return apperrors.New(apperrors.ErrCodeUnsupported, "unsupported instance format %q (want .json or .toml)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return write(cities, f)
}
