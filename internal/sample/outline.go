// Package sample seeds candidate particle positions from pixel masks.
package sample

import (
	"github.com/gogpu/particles/internal/geom"
	"github.com/gogpu/particles/internal/mask"
	"github.com/gogpu/particles/internal/rng"
)

// PerCell is the number of candidates generated for every kept edge cell.
const PerCell = 4

// Outline walks the edge band in row-major order and keeps each cell with
// probability 1/step². Every kept cell emits PerCell candidates: the cell
// centre jittered by up to ±0.45·step on each axis, clamped to the canvas and
// snapped to the nearest band cell within max(step, 4)·2 pixels.
//
// The stream consumption is one draw per band cell plus two per candidate,
// so the output depends only on the mask, step and the state of r.
func Outline(edge *mask.Mask, step int, r *rng.LCG) []geom.Point {
	step = max(step, 1)
	s := float32(step)
	keep := 1 / float32(s*s)
	spread := float32(s * 0.9)
	radius := max(step, 4) * 2

	w, h := edge.Width(), edge.Height()
	data := edge.Data()

	var pts []geom.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !data[y*w+x] {
				continue
			}
			if r.Float32() > keep {
				continue
			}
			for k := 0; k < PerCell; k++ {
				jx := float32((r.Float32() - 0.5) * spread)
				jy := float32((r.Float32() - 0.5) * spread)
				p := geom.Point{
					X: float32(x) + 0.5 + jx,
					Y: float32(y) + 0.5 + jy,
				}
				p = geom.ClampToCanvas(p, w, h)
				pts = append(pts, edge.Project(p, radius))
			}
		}
	}
	return pts
}
