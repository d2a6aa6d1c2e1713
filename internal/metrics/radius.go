package metrics

import (
	"math"

	"github.com/san-kum/geoid/internal/geom"
)

type MeanRadius struct {
	sum     float64
	samples int
}

func NewMeanRadius() *MeanRadius { return &MeanRadius{} }

func (m *MeanRadius) Name() string { return "mean_radius" }

func (m *MeanRadius) Observe(_ geom.Vec3, radius float64) {
	m.sum += radius
	m.samples++
}

func (m *MeanRadius) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanRadius) Reset() {
	m.sum = 0
	m.samples = 0
}

type MinRadius struct {
	min     float64
	samples int
}

func NewMinRadius() *MinRadius { return &MinRadius{} }

func (m *MinRadius) Name() string { return "min_radius" }

func (m *MinRadius) Observe(_ geom.Vec3, radius float64) {
	if m.samples == 0 || radius < m.min {
		m.min = radius
	}
	m.samples++
}

func (m *MinRadius) Value() float64 { return m.min }

func (m *MinRadius) Reset() {
	m.min = 0
	m.samples = 0
}

type MaxRadius struct {
	max     float64
	samples int
}

func NewMaxRadius() *MaxRadius { return &MaxRadius{} }

func (m *MaxRadius) Name() string { return "max_radius" }

func (m *MaxRadius) Observe(_ geom.Vec3, radius float64) {
	if m.samples == 0 || radius > m.max {
		m.max = radius
	}
	m.samples++
}

func (m *MaxRadius) Value() float64 { return m.max }

func (m *MaxRadius) Reset() {
	m.max = 0
	m.samples = 0
}

// Flattening tracks the radius at the most equatorial and most polar
// directions seen and reports (equator - pole) / equator. Positive values
// mean the surface bulges in the rotation plane.
type Flattening struct {
	eqRadius, eqAbsY float64
	polRadius        float64
	polAbsY          float64
	samples          int
}

func NewFlattening() *Flattening { return &Flattening{} }

func (m *Flattening) Name() string { return "flattening" }

func (m *Flattening) Observe(dir geom.Vec3, radius float64) {
	absY := math.Abs(dir.Y)
	if m.samples == 0 || absY < m.eqAbsY {
		m.eqAbsY = absY
		m.eqRadius = radius
	}
	if m.samples == 0 || absY > m.polAbsY {
		m.polAbsY = absY
		m.polRadius = radius
	}
	m.samples++
}

func (m *Flattening) Value() float64 {
	if m.samples == 0 || m.eqRadius == 0 {
		return 0
	}
	return (m.eqRadius - m.polRadius) / m.eqRadius
}

func (m *Flattening) Reset() {
	m.eqRadius = 0
	m.eqAbsY = 0
	m.polRadius = 0
	m.polAbsY = 0
	m.samples = 0
}

// Defaults returns the metric set recorded with every saved surface.
func Defaults() []Metric {
	return []Metric{NewMeanRadius(), NewMinRadius(), NewMaxRadius(), NewFlattening()}
}
