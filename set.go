package particles

import (
	"encoding/binary"
	"io"
	"math"
	"slices"

	"github.com/gogpu/particles/internal/geom"
	"github.com/gogpu/particles/internal/rng"
)

// FloatsPerParticle is the size of one encoded particle record.
const FloatsPerParticle = 8

// Point is a position in pixel space; pixel (x, y) has its centre at
// (x+0.5, y+0.5).
type Point = geom.Point

// Set is the particle set produced by the pipeline. Index i refers to the
// same particle in every slice, in seeding order.
type Set struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int

	Current []Point
	Target  []Point

	// Seed holds one random value in [0, 1) per particle for downstream
	// shader randomness.
	Seed []float32

	// Life is fixed at 1 for every particle.
	Life []float32
}

// newSet creates a set whose current positions are pts and whose targets
// start as a copy of them.
func newSet(w, h int, pts []Point) *Set {
	life := make([]float32, len(pts))
	for i := range life {
		life[i] = 1
	}
	return &Set{
		Width:   w,
		Height:  h,
		Current: pts,
		Target:  slices.Clone(pts),
		Seed:    make([]float32, len(pts)),
		Life:    life,
	}
}

// drawSeeds fills Seed from r in particle order.
func (s *Set) drawSeeds(r *rng.LCG) {
	for i := range s.Seed {
		s.Seed[i] = r.Float32()
	}
}

// Len returns the number of particles.
func (s *Set) Len() int { return len(s.Current) }

// ClipSpace maps a pixel-space point to clip space: x in [-1, 1] from left
// to right, y in [-1, 1] from bottom to top.
func (s *Set) ClipSpace(p Point) (cx, cy float32) {
	nx := p.X / float32(s.Width)
	ny := p.Y / float32(s.Height)
	return float32(nx*2) - 1, 1 - float32(ny*2)
}

// Encode returns the flat record buffer, FloatsPerParticle floats per
// particle:
//
//	[cx, cy, 0, 0, tx, ty, seed, life]
//
// The first pair is the current position with a zero velocity, the second
// the target position with the particle's seed and life. An empty set
// encodes to nil.
func (s *Set) Encode() []float32 {
	if s.Len() == 0 {
		return nil
	}
	return s.AppendEncoded(make([]float32, 0, s.Len()*FloatsPerParticle))
}

// AppendEncoded appends the records of Encode to dst and returns the
// extended slice.
func (s *Set) AppendEncoded(dst []float32) []float32 {
	for i := range s.Current {
		cx, cy := s.ClipSpace(s.Current[i])
		tx, ty := s.ClipSpace(s.Target[i])
		dst = append(dst,
			cx, cy, 0, 0,
			tx, ty, s.Seed[i], s.Life[i],
		)
	}
	return dst
}

// WriteTo writes the encoded records to w as little-endian float32 values,
// the layout expected by a GPU storage buffer upload.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	floats := s.Encode()
	buf := make([]byte, 0, len(floats)*4)
	for _, f := range floats {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	n, err := w.Write(buf)
	return int64(n), err
}
