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

// instance is the on-disk representation of a problem instance.
type instance struct {
	Name   string     `json:"name,omitempty" toml:"name,omitempty"`
	Cities tsp.Cities `json:"cities" toml:"cities"`
}

// ReadJSON decodes a JSON instance from r.
//
// The input must be a JSON object with a "cities" array:
//
//	{
//	  "cities": [
//	    {"name": "a", "x": 0, "y": 0},
//	    {"name": "b", "x": 1, "y": 0}
//	  ]
//	}
//
// ReadJSON returns an error if the JSON is malformed, the instance has
// fewer than two cities, or any coordinate is not finite. The returned
// cities are independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (tsp.Cities, error) {
	var data instance
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := data.Cities.Validate(); err != nil {
		return nil, err
	}
	return data.Cities, nil
}

// ReadTOML decodes a TOML instance from r.
//
// The input must contain a [[cities]] array of tables:
//
//	[[cities]]
//	name = "a"
//	x = 0.0
//	y = 0.0
//
// Validation matches [ReadJSON].
func ReadTOML(r io.Reader) (tsp.Cities, error) {
	var data instance
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := data.Cities.Validate(); err != nil {
		return nil, err
	}
	return data.Cities, nil
}

// ImportInstance reads an instance file at path, selecting the codec from
// the file extension (.json or .toml).
//
// ImportInstance opens the file, decodes it, validates it, and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportInstance(path string) (tsp.Cities, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var cs tsp.Cities
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		cs, err = ReadJSON(f)
	case ".toml":
		cs, err = ReadTOML(f)
	default:
		return nil, apperrors.New(apperrors.ErrCodeUnsupported, "unsupported instance format %q (want .json or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return cs, nil
}

// ReadSolution decodes a JSON solution from r.
//
// ReadSolution validates that the embedded tour is a permutation of the
// embedded cities, so a decoded solution can be rendered directly.
func ReadSolution(r io.Reader) (*Solution, error) {
	var sol Solution
	if err := json.NewDecoder(r).Decode(&sol); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := sol.Cities.Validate(); err != nil {
		return nil, err
	}
	if err := sol.Tour.Validate(len(sol.Cities)); err != nil {
		return nil, err
	}
	return &sol, nil
}

// ImportSolution reads a JSON solution file at path.
func ImportSolution(path string) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sol, err := ReadSolution(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return sol, nil
}
