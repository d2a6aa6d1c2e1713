// Package storage persists extracted surfaces as per-run directories:
// metadata.json for the configuration and stats, vertices.csv for the grid.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/geom"
	"github.com/san-kum/geoid/internal/surface"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type MassMeta struct {
	Y float64 `json:"y"`
	M float64 `json:"m"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Masses    []MassMeta         `json:"masses"`
	G         float64            `json:"g"`
	Omega     float64            `json:"omega"`
	SeaLevel  float64            `json:"sea_level"`
	Rows      int                `json:"rows"`
	Cols      int                `json:"cols"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one extracted surface plus the field configuration it was
// built from. preset is a label only; pass "" for ad-hoc configurations.
func (s *Store) Save(preset string, f *field.Field, surf *surface.Surface, stats map[string]float64) (string, error) {
	label := preset
	if label == "" {
		label = "surface"
	}
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	masses := make([]MassMeta, len(f.Masses))
	for i, m := range f.Masses {
		masses[i] = MassMeta{Y: m.Y, M: m.M}
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: time.Now(),
		Masses:    masses,
		G:         f.G,
		Omega:     f.Omega,
		SeaLevel:  surf.Target,
		Rows:      surf.Grid.Rows,
		Cols:      surf.Grid.Cols,
		Metrics:   stats,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "vertices.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"row", "col", "radius", "x", "y", "z"}); err != nil {
		return "", err
	}

	for i := 0; i < surf.Grid.Rows; i++ {
		for j := 0; j < surf.Grid.Cols; j++ {
			k := surf.Grid.Index(i, j)
			p := surf.Vertex(k)
			rec := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(surf.Radii[k], 'f', 6, 64),
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
			}
			if err := w.Write(rec); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSurface reconstructs the saved surface: grid directions are rebuilt
// from the metadata dims, radii come from vertices.csv.
func (s *Store) LoadSurface(runID string) (*surface.Surface, *RunMetadata, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	grid := surface.Grid{Rows: meta.Rows, Cols: meta.Cols}
	surf := &surface.Surface{
		Grid:   grid,
		Target: meta.SeaLevel,
		Dirs:   make([]geom.Vec3, grid.Size()),
		Radii:  make([]float64, grid.Size()),
	}
	for i := 0; i < grid.Rows; i++ {
		for j := 0; j < grid.Cols; j++ {
			surf.Dirs[grid.Index(i, j)] = grid.Dir(i, j)
		}
	}

	csvPath := filepath.Join(s.baseDir, runID, "vertices.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	for n := 1; n < len(records); n++ {
		rec := records[n]
		if len(rec) < 3 {
			continue
		}
		i, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		j, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		radius, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			continue
		}
		if i < 0 || i >= grid.Rows || j < 0 || j >= grid.Cols {
			continue
		}
		surf.Radii[grid.Index(i, j)] = radius
	}

	return surf, meta, nil
}
