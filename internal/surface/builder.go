package surface

import (
	"runtime"
	"sync"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/geom"
	"github.com/san-kum/geoid/internal/metrics"
	"github.com/san-kum/geoid/internal/solver"
)

// Builder extracts equipotential surfaces. Build snapshots the field before
// solving, so the caller is free to keep mutating the original between
// builds; a single build never observes a torn configuration.
type Builder struct {
	Grid       Grid
	Bracket    solver.Bracket
	Iterations int
	Workers    int
	metrics    []metrics.Metric
}

func NewBuilder(g Grid, br solver.Bracket) *Builder {
	return &Builder{
		Grid:       g,
		Bracket:    br,
		Iterations: solver.DefaultIterations,
		Workers:    runtime.NumCPU(),
	}
}

func (b *Builder) AddMetric(m metrics.Metric) { b.metrics = append(b.metrics, m) }

// Build solves one radius per grid direction against a snapshot of f. The
// snapshot is read-only for the whole build, so workers share it; each
// worker keeps its own solver so bisection state stays stack-local. Metrics
// are observed in a serial pass after the solve.
func (b *Builder) Build(f *field.Field, target float64) *Surface {
	snap := f.Clone()
	n := b.Grid.Size()

	s := &Surface{
		Grid:   b.Grid,
		Target: target,
		Dirs:   make([]geom.Vec3, n),
		Radii:  make([]float64, n),
	}
	for i := 0; i < b.Grid.Rows; i++ {
		for j := 0; j < b.Grid.Cols; j++ {
			s.Dirs[b.Grid.Index(i, j)] = b.Grid.Dir(i, j)
		}
	}

	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			rs := solver.RadiusSolver{Field: snap, Bracket: b.Bracket, Iterations: b.Iterations}
			for k := lo; k < hi; k++ {
				d := s.Dirs[k]
				s.Radii[k] = rs.SolveRadius(d.X, d.Y, d.Z, target)
			}
		}(lo, hi)
	}
	wg.Wait()

	for _, m := range b.metrics {
		m.Reset()
	}
	for k := range s.Radii {
		for _, m := range b.metrics {
			m.Observe(s.Dirs[k], s.Radii[k])
		}
	}

	return s
}

// Metrics returns the values accumulated during the last Build.
func (b *Builder) Metrics() map[string]float64 {
	out := make(map[string]float64, len(b.metrics))
	for _, m := range b.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
