package mask

import (
	"math"

	"github.com/gogpu/particles/internal/geom"
)

// Project returns the centre of the set cell nearest to p within a
// (2r+1)×(2r+1) window around p rounded to the nearest pixel. Cells are
// scanned row-major and the first minimum wins. When the window holds no set
// cell, p is returned unchanged.
//
// radius is clamped to at least 1.
func (m *Mask) Project(p geom.Point, radius int) geom.Point {
	r := max(radius, 1)
	xi := int(math.Round(float64(p.X)))
	yi := int(math.Round(float64(p.Y)))

	y0, y1 := max(yi-r, 0), min(yi+r, m.height-1)
	x0, x1 := max(xi-r, 0), min(xi+r, m.width-1)

	best := p
	bestD2 := float32(math.Inf(1))
	for y := y0; y <= y1; y++ {
		row := m.data[y*m.width:]
		fy := float32(y) + 0.5
		dy := fy - p.Y
		dy2 := float32(dy * dy)
		for x := x0; x <= x1; x++ {
			if !row[x] {
				continue
			}
			fx := float32(x) + 0.5
			dx := fx - p.X
			// Explicit conversions keep the sum unfused so results match
			// across architectures.
			d2 := float32(dx*dx) + dy2
			if d2 < bestD2 {
				bestD2 = d2
				best = geom.Point{X: fx, Y: fy}
			}
		}
	}
	return best
}
