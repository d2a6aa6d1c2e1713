package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/solver"
	"github.com/san-kum/geoid/internal/surface"
)

func buildTestSurface() (*field.Field, *surface.Surface) {
	f := &field.Field{Masses: []field.PointMass{{Y: 0, M: 8.0}}, G: 1.0, Omega: 0.02}
	b := surface.NewBuilder(surface.Grid{Rows: 5, Cols: 8}, solver.DefaultBracket())
	return f, b.Build(f, -1.6)
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	f, surf := buildTestSurface()
	stats := map[string]float64{"mean_radius": 4.98}

	runID, err := store.Save("single", f, surf, stats)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run ID")
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.ID != runID {
		t.Errorf("id = %q, want %q", meta.ID, runID)
	}
	if meta.Preset != "single" {
		t.Errorf("preset = %q, want single", meta.Preset)
	}
	if len(meta.Masses) != 1 || meta.Masses[0].M != 8.0 {
		t.Errorf("masses = %+v", meta.Masses)
	}
	if meta.Omega != 0.02 {
		t.Errorf("omega = %v, want 0.02", meta.Omega)
	}
	if meta.SeaLevel != -1.6 {
		t.Errorf("sea level = %v, want -1.6", meta.SeaLevel)
	}
	if meta.Rows != 5 || meta.Cols != 8 {
		t.Errorf("grid dims = %dx%d, want 5x8", meta.Rows, meta.Cols)
	}
	if meta.Metrics["mean_radius"] != 4.98 {
		t.Errorf("metrics = %+v", meta.Metrics)
	}
}

func TestLoadSurface_RoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	f, surf := buildTestSurface()
	runID, err := store.Save("", f, surf, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, meta, err := store.LoadSurface(runID)
	if err != nil {
		t.Fatalf("load surface failed: %v", err)
	}
	if meta.SeaLevel != surf.Target {
		t.Errorf("target = %v, want %v", meta.SeaLevel, surf.Target)
	}
	if len(loaded.Radii) != len(surf.Radii) {
		t.Fatalf("radii length = %d, want %d", len(loaded.Radii), len(surf.Radii))
	}

	// The CSV stores radii with six decimals.
	for k := range surf.Radii {
		if math.Abs(loaded.Radii[k]-surf.Radii[k]) > 1e-6 {
			t.Errorf("vertex %d: %v != %v", k, loaded.Radii[k], surf.Radii[k])
		}
		if loaded.Dirs[k] != surf.Dirs[k] {
			t.Errorf("vertex %d dir differs: %v != %v", k, loaded.Dirs[k], surf.Dirs[k])
		}
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	f, surf := buildTestSurface()
	if _, err := store.Save("binary", f, surf, nil); err != nil {
		t.Fatal(err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Preset != "binary" {
		t.Errorf("preset = %q, want binary", runs[0].Preset)
	}
}

func TestList_MissingBaseDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list on missing dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestSave_FileLayout(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	f, surf := buildTestSurface()
	runID, err := store.Save("single", f, surf, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"metadata.json", "vertices.csv"} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestLoad_UnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("no_such_run"); err == nil {
		t.Error("expected error for unknown run")
	}
}
