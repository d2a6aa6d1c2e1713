// Package metrics collects per-vertex statistics while a surface is built.
package metrics

import "github.com/san-kum/geoid/internal/geom"

// Metric accumulates one statistic over solved surface vertices.
type Metric interface {
	Name() string
	Observe(dir geom.Vec3, radius float64)
	Value() float64
	Reset()
}
