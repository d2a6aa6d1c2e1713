// Package surface extracts an equipotential surface from a potential field
// by solving one radius per direction on a latitude/longitude grid.
package surface

import (
	"math"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/geom"
)

const (
	DefaultRows = 48
	DefaultCols = 96
)

// Grid is a latitude/longitude sampling grid. Row 0 is the +Y pole, row
// Rows-1 the -Y pole; columns wrap in longitude.
type Grid struct {
	Rows int
	Cols int
}

func DefaultGrid() Grid { return Grid{Rows: DefaultRows, Cols: DefaultCols} }

func (g Grid) Size() int           { return g.Rows * g.Cols }
func (g Grid) Index(i, j int) int  { return i*g.Cols + j }
func (g Grid) Lat(i int) float64   { return math.Pi/2 - math.Pi*float64(i)/float64(g.Rows-1) }
func (g Grid) Lon(j int) float64   { return 2 * math.Pi * float64(j) / float64(g.Cols) }
func (g Grid) Dir(i, j int) geom.Vec3 {
	return geom.SphereDir(g.Lat(i), g.Lon(j))
}

// Surface is one extracted equipotential: a radius per grid direction. It
// is a pure function of the field configuration it was built from and the
// target potential.
type Surface struct {
	Grid   Grid
	Target float64
	Dirs   []geom.Vec3
	Radii  []float64
}

// Vertex returns the surface point for grid index k.
func (s *Surface) Vertex(k int) geom.Vec3 {
	return s.Dirs[k].Scale(s.Radii[k])
}

// Normal returns the normalized outward field gradient at vertex k. The
// field passed in should match the configuration the surface was built
// from, or the normals will not agree with the shape.
func (s *Surface) Normal(f *field.Field, k int) geom.Vec3 {
	p := s.Vertex(k)
	return f.Gradient(p.X, p.Y, p.Z).Normalize()
}

// EquatorRing returns the radii along the grid row closest to the equator,
// in longitude order.
func (s *Surface) EquatorRing() []float64 {
	row := (s.Grid.Rows - 1) / 2
	out := make([]float64, s.Grid.Cols)
	for j := 0; j < s.Grid.Cols; j++ {
		out[j] = s.Radii[s.Grid.Index(row, j)]
	}
	return out
}
