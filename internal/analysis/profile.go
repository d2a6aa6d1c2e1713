// Package analysis provides diagnostic scans over a potential field: radial
// profiles for plotting and bracket monotonicity checks.
package analysis

import (
	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/geom"
)

// RadialProfile samples the potential at n evenly spaced radii along a unit
// direction, from rMin to rMax inclusive.
func RadialProfile(f *field.Field, dir geom.Vec3, rMin, rMax float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := (rMax - rMin) / float64(n-1)
	for i := range out {
		r := rMin + float64(i)*step
		out[i] = f.Potential(r*dir.X, r*dir.Y, r*dir.Z)
	}
	return out
}
