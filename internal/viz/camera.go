package viz

import (
	"math"
	"sort"

	"github.com/san-kum/geoid/internal/geom"
	"github.com/san-kum/geoid/internal/surface"
)

// Camera manages 3D projection of surface wireframes onto the canvas.
type Camera struct {
	Distance         float64
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
	// Extent is the world-space half-width mapped to the canvas; set it to
	// slightly above the surface max radius so the whole shape fits.
	Extent float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Near: 0.1, Zoom: 1.0, Extent: 9.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p geom.Vec3) geom.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts world coordinates to sub-pixel canvas coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p geom.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / (2 * c.Extent)
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End geom.Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe          { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e geom.Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) Clear()             { w.Edges = w.Edges[:0] }

// SurfaceWireframe connects each grid vertex to its longitude neighbor
// (wrapping) and its latitude neighbor. Pole rows collapse to a point, so
// their longitude edges are skipped.
func SurfaceWireframe(s *surface.Surface) *Wireframe {
	w := NewWireframe()
	g := s.Grid
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			v := s.Vertex(g.Index(i, j))
			if i > 0 && i < g.Rows-1 {
				w.AddEdge(v, s.Vertex(g.Index(i, (j+1)%g.Cols)))
			}
			if i < g.Rows-1 {
				w.AddEdge(v, s.Vertex(g.Index(i+1, j)))
			}
		}
	}
	return w
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render draws the wireframe to the canvas back to front.
func Render(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}
