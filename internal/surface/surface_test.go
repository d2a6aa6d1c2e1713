package surface

import (
	"math"
	"testing"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/metrics"
	"github.com/san-kum/geoid/internal/solver"
)

func TestGrid_Dirs(t *testing.T) {
	g := Grid{Rows: 9, Cols: 12}

	for j := 0; j < g.Cols; j++ {
		top := g.Dir(0, j)
		if math.Abs(top.Y-1) > 1e-12 {
			t.Errorf("row 0 col %d should be the +Y pole, got %v", j, top)
		}
		bottom := g.Dir(g.Rows-1, j)
		if math.Abs(bottom.Y+1) > 1e-12 {
			t.Errorf("last row col %d should be the -Y pole, got %v", j, bottom)
		}
	}

	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			if l := g.Dir(i, j).Length(); math.Abs(l-1) > 1e-12 {
				t.Fatalf("dir (%d,%d) length = %v, want 1", i, j, l)
			}
		}
	}
}

func TestBuild_StaticMassGivesSphere(t *testing.T) {
	f := &field.Field{Masses: []field.PointMass{{Y: 0, M: 8.0}}, G: 1.0}
	b := NewBuilder(Grid{Rows: 9, Cols: 16}, solver.DefaultBracket())

	// -8/r = -1.6 at r = 5 in every direction.
	s := b.Build(f, -1.6)
	for k, r := range s.Radii {
		if math.Abs(r-5.0) > 1e-3 {
			t.Errorf("vertex %d radius = %v, want 5.0", k, r)
		}
	}
}

func TestBuild_ParallelMatchesSerial(t *testing.T) {
	f := &field.Field{
		Masses: []field.PointMass{{Y: -1.5, M: 4.0}, {Y: 2.0, M: 2.0}},
		G:      1.0,
		Omega:  0.03,
	}

	serial := NewBuilder(DefaultGrid(), solver.DefaultBracket())
	serial.Workers = 1
	parallel := NewBuilder(DefaultGrid(), solver.DefaultBracket())
	parallel.Workers = 8

	a := serial.Build(f, -1.2)
	b := parallel.Build(f, -1.2)

	for k := range a.Radii {
		if a.Radii[k] != b.Radii[k] {
			t.Fatalf("vertex %d differs: serial %v, parallel %v", k, a.Radii[k], b.Radii[k])
		}
	}
}

func TestBuild_SpinFlattensSurface(t *testing.T) {
	f := &field.Field{Masses: []field.PointMass{{Y: 0, M: 8.0}}, G: 1.0, Omega: 0.05}
	b := NewBuilder(Grid{Rows: 17, Cols: 32}, solver.DefaultBracket())
	for _, m := range metrics.Defaults() {
		b.AddMetric(m)
	}

	// Target chosen so the equatorial radius is exactly 5.
	target := f.Potential(5, 0, 0)
	b.Build(f, target)
	stats := b.Metrics()

	if fl := stats["flattening"]; fl < 0.01 {
		t.Errorf("flattening = %v, want > 0.01 for a spinning mass", fl)
	}
	if max := stats["max_radius"]; math.Abs(max-5.0) > 1e-3 {
		t.Errorf("max radius = %v, want ~5.0 on the equator", max)
	}
}

func TestBuild_SnapshotsField(t *testing.T) {
	f := &field.Field{Masses: []field.PointMass{{Y: 0, M: 8.0}}, G: 1.0}
	b := NewBuilder(Grid{Rows: 5, Cols: 8}, solver.DefaultBracket())

	s := b.Build(f, -1.6)
	f.SetOmega(0.2)
	f.Masses[0].M = 1

	// Mutating the original after Build must not reach into the result.
	for k, r := range s.Radii {
		if math.Abs(r-5.0) > 1e-3 {
			t.Errorf("vertex %d radius = %v after source mutation, want 5.0", k, r)
		}
	}
}

func TestSurface_Vertex(t *testing.T) {
	g := Grid{Rows: 5, Cols: 8}
	s := &Surface{Grid: g}
	s.Dirs = append(s.Dirs, g.Dir(2, 0))
	s.Radii = append(s.Radii, 4.0)

	v := s.Vertex(0)
	if math.Abs(v.Length()-4.0) > 1e-12 {
		t.Errorf("vertex length = %v, want 4.0", v.Length())
	}
}

func TestSurface_EquatorRing(t *testing.T) {
	f := &field.Field{Masses: []field.PointMass{{Y: 0, M: 8.0}}, G: 1.0}
	b := NewBuilder(Grid{Rows: 9, Cols: 16}, solver.DefaultBracket())
	s := b.Build(f, -1.6)

	ring := s.EquatorRing()
	if len(ring) != 16 {
		t.Fatalf("ring length = %d, want 16", len(ring))
	}
	for j, r := range ring {
		if math.Abs(r-5.0) > 1e-3 {
			t.Errorf("ring[%d] = %v, want 5.0", j, r)
		}
	}
}

func TestSurface_NormalPointsOutward(t *testing.T) {
	f := &field.Field{Masses: []field.PointMass{{Y: 0, M: 8.0}}, G: 1.0}
	b := NewBuilder(Grid{Rows: 9, Cols: 16}, solver.DefaultBracket())
	s := b.Build(f, -1.6)

	for k := range s.Radii {
		n := s.Normal(f, k)
		if d := n.Dot(s.Dirs[k]); d < 0.999 {
			t.Errorf("vertex %d normal not radial: dot = %v", k, d)
		}
	}
}
