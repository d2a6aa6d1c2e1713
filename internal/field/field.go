// Package field evaluates the scalar potential generated by point masses on
// the vertical axis combined with a centrifugal term from uniform rotation
// about that axis, plus its analytic gradient.
package field

import (
	"math"

	"github.com/san-kum/geoid/internal/geom"
)

const (
	// SingularRadius is the distance below which a query point counts as
	// being inside a mass.
	SingularRadius = 0.1

	// SingularPotential is what Potential returns inside SingularRadius.
	// It is more negative than anything reachable in the operating range,
	// so root-finding always treats the singular region as "too deep".
	SingularPotential = -10000.0
)

// PointMass sits on the vertical axis at (0, Y, 0). M is assumed positive;
// the field does not validate it.
type PointMass struct {
	Y float64
	M float64
}

// Field holds the mass list and rotation parameters. Callers may rewrite it
// between queries, but must not mutate it while a batch of queries is in
// flight; batch consumers snapshot it with Clone for that reason.
type Field struct {
	Masses []PointMass
	G      float64
	Omega  float64
}

func New() *Field {
	return &Field{G: 1.0}
}

// SetMasses replaces the mass list wholesale.
func (f *Field) SetMasses(masses []PointMass) { f.Masses = masses }

func (f *Field) SetOmega(omega float64) { f.Omega = omega }

// Potential evaluates V = -sum(G*m/dist) - 0.5*omega^2*(x^2+z^2). If the
// point lies within SingularRadius of any mass the sum short-circuits to
// SingularPotential.
func (f *Field) Potential(x, y, z float64) float64 {
	v := 0.0
	for i := range f.Masses {
		dy := y - f.Masses[i].Y
		dist := math.Sqrt(x*x + dy*dy + z*z)
		if dist < SingularRadius {
			return SingularPotential
		}
		v -= f.G * f.Masses[i].M / dist
	}
	return v - 0.5*f.Omega*f.Omega*(x*x+z*z)
}

// Gradient evaluates the analytic gradient of the potential, used as the
// outward surface-normal reference on an extracted surface. Each gravity
// term points away from its mass; the centrifugal gradient points inward in
// the rotation plane. Masses within SingularRadius contribute nothing
// instead of producing the sentinel. Potential and Gradient disagree inside
// the singular region on purpose; the surface shape near masses depends on
// that, so keep the asymmetry.
func (f *Field) Gradient(x, y, z float64) geom.Vec3 {
	var g geom.Vec3
	for i := range f.Masses {
		dy := y - f.Masses[i].Y
		r := math.Sqrt(x*x + dy*dy + z*z)
		if r < SingularRadius {
			continue
		}
		k := f.G * f.Masses[i].M / (r * r * r)
		g.X += k * x
		g.Y += k * dy
		g.Z += k * z
	}
	w2 := f.Omega * f.Omega
	g.X -= w2 * x
	g.Z -= w2 * z
	return g
}

// Clone returns an independent copy for snapshotting the configuration
// during a batch of queries.
func (f *Field) Clone() *Field {
	c := &Field{G: f.G, Omega: f.Omega, Masses: make([]PointMass, len(f.Masses))}
	copy(c.Masses, f.Masses)
	return c
}

func (f *Field) GetParams() map[string]float64 {
	return map[string]float64{"g": f.G, "omega": f.Omega}
}

func (f *Field) SetParam(name string, value float64) error {
	switch name {
	case "g":
		f.G = value
	case "omega":
		f.Omega = value
	}
	return nil
}
