package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/geoid/internal/surface"
)

type runExport struct {
	Metadata *RunMetadata `json:"metadata"`
	Radii    []float64    `json:"radii"`
}

// ExportJSONStdout writes the run metadata plus the flat radius grid to
// stdout as indented JSON.
func ExportJSONStdout(meta *RunMetadata, surf *surface.Surface) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Metadata: meta, Radii: surf.Radii})
}
