// Package solver finds the radius at which the field potential crosses a
// target value along a ray from the origin, by fixed-iteration bisection.
package solver

import "github.com/san-kum/geoid/internal/field"

const (
	DefaultRMin       = 3.0
	DefaultRMax       = 8.0
	DefaultIterations = 15
)

// Bracket bounds the bisection search. The defaults are tuned to the scale
// of the stock mass configurations.
type Bracket struct {
	Min float64
	Max float64
}

func DefaultBracket() Bracket {
	return Bracket{Min: DefaultRMin, Max: DefaultRMax}
}

// RadiusSolver solves for the equipotential radius along a ray. It assumes
// the potential is strictly increasing with radius inside the bracket (the
// gravity-dominated regime). If rotation is fast enough to break that within
// the bracket, the solve converges to a plausible-looking but meaningless
// radius with no error signal; callers that care can run ValidateBracket
// first.
type RadiusSolver struct {
	Field      *field.Field
	Bracket    Bracket
	Iterations int
}

func New(f *field.Field) *RadiusSolver {
	return &RadiusSolver{Field: f, Bracket: DefaultBracket(), Iterations: DefaultIterations}
}

// SolveRadius bisects for r such that Potential(r*dx, r*dy, r*dz) ~= target.
// The direction is expected to be unit length. The iteration count is fixed
// with no convergence check, so cost and result are deterministic; precision
// is (Max-Min)/2^Iterations. No allocation per call.
func (s *RadiusSolver) SolveRadius(dx, dy, dz, target float64) float64 {
	lo, hi := s.Bracket.Min, s.Bracket.Max
	for i := 0; i < s.Iterations; i++ {
		mid := (lo + hi) / 2
		if s.Field.Potential(mid*dx, mid*dy, mid*dz) < target {
			// Potential too deep: the crossing lies further out.
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// ValidateBracket samples the bracket along a direction and reports whether
// the potential is non-decreasing across it. Diagnostic only: SolveRadius
// never consults it and its default numeric behavior is unchanged.
func (s *RadiusSolver) ValidateBracket(dx, dy, dz float64, samples int) bool {
	if samples < 2 {
		samples = 2
	}
	step := (s.Bracket.Max - s.Bracket.Min) / float64(samples-1)
	prev := s.Field.Potential(s.Bracket.Min*dx, s.Bracket.Min*dy, s.Bracket.Min*dz)
	for i := 1; i < samples; i++ {
		r := s.Bracket.Min + float64(i)*step
		v := s.Field.Potential(r*dx, r*dy, r*dz)
		if v < prev {
			return false
		}
		prev = v
	}
	return true
}
