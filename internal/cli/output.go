package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/roundtrip/pkg/render"
)

// writeArtifacts writes rendered artifacts to disk, one file per format.
//
// With a single format, output names the file directly (or base.format is
// derived). With multiple formats, output (or base) is treated as a base
// path and each artifact gets its format as extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, base, output string) error {
	if len(formats) == 1 {
		path := output
		if path == "" {
			path = base + "." + formats[0]
		}
		return writeArtifact(path, artifacts[formats[0]])
	}

	prefix := artifactBase(output, base)
	for _, format := range formats {
		if err := writeArtifact(prefix+"."+format, artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}

// artifactBase derives the base output path.
// A known format extension on output is stripped so "tour.svg" with multiple
// formats becomes tour.svg, tour.png rather than tour.svg.png.
func artifactBase(output, base string) string {
	if output == "" {
		return base
	}
	ext := filepath.Ext(output)
	if _, ok := render.ValidFormats[strings.TrimPrefix(ext, ".")]; ok {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
