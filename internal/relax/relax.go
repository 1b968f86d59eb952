// Package relax spreads seeded particles apart along the edge band.
//
// Relaxation is a bounded number of damped short-range repulsion steps, each
// followed by clamping to the canvas and re-snapping to the band. It is a
// heuristic, not a converged solver: points that start on the same pixel
// centre never separate, and the re-snap can undo small pushes.
package relax

import (
	"math"

	"github.com/gogpu/particles/internal/geom"
	"github.com/gogpu/particles/internal/mask"
)

const (
	// DefaultIterations is the number of relaxation rounds.
	DefaultIterations = 7

	// DefaultStrength scales the accumulated displacement of every round.
	DefaultStrength = 0.35

	// minDist2 filters coincident pairs whose direction is undefined.
	minDist2 = 1e-6
)

// Config controls a relaxation run.
type Config struct {
	// Radius is the repulsion range and the spatial grid cell side, in
	// pixels. Values below 1 are raised to 1.
	Radius float32

	// Iterations is the number of rounds.
	Iterations int

	// Strength scales the displacement applied each round.
	Strength float32

	// SnapRadius is the search radius used to re-project points onto the
	// edge band after each round.
	SnapRadius int

	// OnIteration, if set, observes the positions after every round.
	OnIteration func(iter int, pts []geom.Point)
}

// ConfigForStep returns the pipeline configuration for a sampling step.
func ConfigForStep(step int) Config {
	step = max(step, 1)
	s := float32(step)
	return Config{
		Radius:     max(float32(s*1.25)+2, 2),
		Iterations: DefaultIterations,
		Strength:   DefaultStrength,
		SnapRadius: max(step, 2)*3 + 5,
	}
}

// Relax moves pts in place. Order and length are preserved; after every
// round each point lies within [0.5, w-0.5] × [0.5, h-0.5] of the edge mask
// canvas.
func Relax(pts []geom.Point, edge *mask.Mask, cfg Config) {
	if len(pts) == 0 {
		return
	}

	w, h := edge.Width(), edge.Height()
	r := max(cfg.Radius, 1)
	grid := NewGrid(w, h, r)
	disp := make([]geom.Point, len(pts))

	for it := 0; it < cfg.Iterations; it++ {
		grid.Rebuild(pts)
		accumulate(pts, grid, r, disp)

		for i, d := range disp {
			p := geom.Point{
				X: pts[i].X + float32(d.X*cfg.Strength),
				Y: pts[i].Y + float32(d.Y*cfg.Strength),
			}
			p = geom.ClampToCanvas(p, w, h)
			pts[i] = edge.Project(p, cfg.SnapRadius)
		}

		if cfg.OnIteration != nil {
			cfg.OnIteration(it, pts)
		}
	}
}

// accumulate writes into disp the repulsion felt by every point from the
// points in the 3×3 block of cells around its own. Each neighbour closer
// than r pushes along the unit vector away from it, scaled linearly from 1
// at distance 0 to 0 at distance r. grid must have been rebuilt from pts.
func accumulate(pts []geom.Point, grid *Grid, r float32, disp []geom.Point) {
	r2 := float32(r * r)
	for i, p := range pts {
		var acc geom.Point
		cx, cy := grid.CellOf(p)
		for oy := -1; oy <= 1; oy++ {
			for ox := -1; ox <= 1; ox++ {
				for _, j := range grid.Bucket(cx+ox, cy+oy) {
					if int(j) == i {
						continue
					}
					q := pts[j]
					vx := p.X - q.X
					vy := p.Y - q.Y
					d2 := float32(vx*vx) + float32(vy*vy)
					if d2 <= minDist2 || d2 >= r2 {
						continue
					}
					d := float32(math.Sqrt(float64(d2)))
					push := (r - d) / r
					// Conversions keep each product rounded to float32 so
					// the sums do not depend on FMA availability.
					acc.X += float32(vx / d * push)
					acc.Y += float32(vy / d * push)
				}
			}
		}
		disp[i] = acc
	}
}
