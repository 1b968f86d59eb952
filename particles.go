package particles

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/particles/internal/mask"
	"github.com/gogpu/particles/internal/relax"
	"github.com/gogpu/particles/internal/rng"
	"github.com/gogpu/particles/internal/sample"
)

// Generator turns RGBA buffers into particle sets.
//
// A Generator holds only immutable configuration; it is safe for concurrent
// use and every call is independent and reproducible.
type Generator struct {
	opts options
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{opts: o}
}

// Generate runs the outline pipeline with the default seed and returns the
// encoded buffer (see Set.Encode).
//
// rgba holds width×height pixels, 4 bytes each, row-major without padding.
// A zero or negative dimension, or a buffer shorter than width·height·4,
// yields an empty result. A step below 1 is treated as 1.
func Generate(width, height int, rgba []byte, step int, alphaThreshold uint8) []float32 {
	g := New(WithStep(step), WithAlphaThreshold(alphaThreshold))
	return g.FromRGBA(width, height, rgba).Encode()
}

// FromRGBA runs the pipeline on a tightly packed RGBA buffer. Degenerate
// input yields an empty set.
func (g *Generator) FromRGBA(width, height int, rgba []byte) *Set {
	log := Logger()
	// Divide instead of multiplying so huge dimensions cannot overflow.
	if width <= 0 || height <= 0 || width > len(rgba)/4/height {
		log.Warn("particles: degenerate input",
			"width", width, "height", height, "bytes", len(rgba))
		return &Set{Width: max(width, 0), Height: max(height, 0)}
	}

	start := time.Now()
	inside := mask.Inside(width, height, rgba, g.opts.alphaThreshold)

	var s *Set
	switch g.opts.mode {
	case ModeGrid:
		s = g.grid(inside)
	default:
		s = g.outline(inside)
	}

	log.Debug("particles: done",
		"mode", g.opts.mode,
		"particles", s.Len(),
		"elapsed", time.Since(start))
	return s
}

// FromImage converts img to RGBA and runs the pipeline.
func (g *Generator) FromImage(img image.Image) *Set {
	w, h, pix := rgbaBytes(img)
	return g.FromRGBA(w, h, pix)
}

// outline seeds particles on the edge band, relaxes them and freezes the
// relaxed positions as targets. Seeds are drawn from the same stream after
// relaxation.
func (g *Generator) outline(inside *mask.Mask) *Set {
	log := Logger()
	w, h := inside.Width(), inside.Height()
	step := g.opts.step

	edge := mask.EdgeWith(inside, g.opts.band)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("particles: edge band built",
			"width", w, "height", h,
			"inside", inside.Count(), "edge", edge.Count())
	}

	r := rng.New(g.opts.seedFor(ModeOutline))
	s := newSet(w, h, sample.Outline(edge, step, r))

	cfg := relax.ConfigForStep(step)
	cfg.Iterations = g.opts.iterations
	relax.Relax(s.Current, edge, cfg)
	copy(s.Target, s.Current)

	s.drawSeeds(r)

	log.Debug("particles: relaxed",
		"particles", s.Len(),
		"iterations", cfg.Iterations,
		"radius", cfg.Radius)
	return s
}

// grid samples the inside mask on a jittered lattice.
func (g *Generator) grid(inside *mask.Mask) *Set {
	r := rng.New(g.opts.seedFor(ModeGrid))
	s := newSet(inside.Width(), inside.Height(), sample.Grid(inside, g.opts.step, r))
	s.drawSeeds(r)
	return s
}
