package pipeline

import (
	"fmt"

	"github.com/matzehuels/roundtrip/pkg/io"
	"github.com/matzehuels/roundtrip/pkg/render"
)

// Render generates output artifacts for a solution in the requested formats.
func Render(sol *io.Solution, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		data, err := render.Render(sol.Cities, sol.Tour, opts.RenderOptions(format))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
