package analysis

import (
	"math"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/geom"
	"github.com/san-kum/geoid/internal/solver"
)

// MonotoneReport describes the result of a bracket monotonicity scan. When
// OK is false, Dir is the first direction where the potential decreased with
// radius, R the radius at which it happened, and Drop the size of the
// decrease.
type MonotoneReport struct {
	OK   bool
	Dir  geom.Vec3
	R    float64
	Drop float64
}

// CheckMonotone sweeps directions over the sphere and verifies that the
// potential is non-decreasing across the bracket in every one of them. This
// is the precondition the radius solver's bisection direction relies on;
// the solver itself never checks it.
func CheckMonotone(f *field.Field, br solver.Bracket, latSteps, samples int) MonotoneReport {
	if latSteps < 2 {
		latSteps = 2
	}
	if samples < 2 {
		samples = 2
	}
	lonSteps := 2 * latSteps
	step := (br.Max - br.Min) / float64(samples-1)

	for i := 0; i < latSteps; i++ {
		lat := math.Pi/2 - math.Pi*float64(i)/float64(latSteps-1)
		for j := 0; j < lonSteps; j++ {
			lon := 2 * math.Pi * float64(j) / float64(lonSteps)
			dir := geom.SphereDir(lat, lon)

			prev := f.Potential(br.Min*dir.X, br.Min*dir.Y, br.Min*dir.Z)
			for k := 1; k < samples; k++ {
				r := br.Min + float64(k)*step
				v := f.Potential(r*dir.X, r*dir.Y, r*dir.Z)
				if v < prev {
					return MonotoneReport{OK: false, Dir: dir, R: r, Drop: prev - v}
				}
				prev = v
			}
		}
	}
	return MonotoneReport{OK: true}
}
