package export

import (
	"strings"
	"testing"

	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/solver"
	"github.com/san-kum/geoid/internal/surface"
	"github.com/san-kum/geoid/internal/viz"
)

func sphereSurface() *surface.Surface {
	f := &field.Field{Masses: []field.PointMass{{Y: 0, M: 8.0}}, G: 1.0}
	b := surface.NewBuilder(surface.Grid{Rows: 9, Cols: 16}, solver.DefaultBracket())
	return b.Build(f, -1.6)
}

func TestSurfaceToSVG(t *testing.T) {
	cam := viz.NewCamera()
	cam.Extent = 6

	svg := SurfaceToSVG(sphereSurface(), cam, 400, 400)

	if !strings.Contains(svg, "<svg") {
		t.Error("missing svg element")
	}
	if !strings.Contains(svg, `width="400"`) {
		t.Error("missing width attribute")
	}
	if n := strings.Count(svg, "<line"); n == 0 {
		t.Error("no line elements emitted")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("svg not closed")
	}
}

func TestSurfaceToSVG_NilInputs(t *testing.T) {
	if SurfaceToSVG(nil, viz.NewCamera(), 100, 100) != "" {
		t.Error("nil surface should produce empty output")
	}
	if SurfaceToSVG(sphereSurface(), nil, 100, 100) != "" {
		t.Error("nil camera should produce empty output")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 5)

	svg := CanvasToSVG(c, 4.0)

	if !strings.Contains(svg, "<svg") {
		t.Error("missing svg element")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circle count = %d, want 2 (one per lit dot)", n)
	}
}

func TestCanvasToSVG_Nil(t *testing.T) {
	if CanvasToSVG(nil, 4.0) != "" {
		t.Error("nil canvas should produce empty output")
	}
}
