package sample

import (
	"github.com/gogpu/particles/internal/geom"
	"github.com/gogpu/particles/internal/mask"
	"github.com/gogpu/particles/internal/rng"
)

// Grid samples the inside mask on a plain step×step lattice. Every inside
// lattice cell emits one point at its pixel centre jittered by up to
// ±0.25·step per axis. No outline extraction or relaxation is involved.
func Grid(inside *mask.Mask, step int, r *rng.LCG) []geom.Point {
	step = max(step, 1)
	spread := float32(float32(step) * 0.5)

	w, h := inside.Width(), inside.Height()
	data := inside.Data()

	var pts []geom.Point
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			if !data[y*w+x] {
				continue
			}
			jx := float32((r.Float32() - 0.5) * spread)
			jy := float32((r.Float32() - 0.5) * spread)
			p := geom.Point{
				X: float32(x) + 0.5 + jx,
				Y: float32(y) + 0.5 + jy,
			}
			pts = append(pts, geom.ClampToCanvas(p, w, h))
		}
	}
	return pts
}
