// Package export renders extracted surfaces and canvases to SVG.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/geoid/internal/surface"
	"github.com/san-kum/geoid/internal/viz"
)

// SurfaceToSVG projects the surface wireframe through the camera and emits
// one SVG line per visible edge, drawn back to front.
func SurfaceToSVG(surf *surface.Surface, cam *viz.Camera, width, height int) string {
	if surf == nil || cam == nil {
		return ""
	}
	wire := viz.SurfaceWireframe(surf)

	type line struct {
		x1, y1, x2, y2 float64
		depth          float64
	}
	lines := make([]line, 0, len(wire.Edges))
	for _, e := range wire.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, width, height)
		x2, y2, d2, v2 := cam.Project(e.End, width, height)
		if v1 || v2 {
			lines = append(lines, line{float64(x1), float64(y1), float64(x2), float64(y2), (d1 + d2) / 2})
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].depth < lines[j].depth })

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#00ccff" stroke-width="0.6" opacity="0.8">
`, width, height, width, height))

	for _, l := range lines {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, l.x1, l.y1, l.x2, l.y2))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ccff">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
