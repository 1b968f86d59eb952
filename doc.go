// Package particles converts the alpha channel of a raster image into seed
// positions spread along the silhouette of its opaque region, ready to be
// uploaded as the initial and target positions of a particle effect.
//
// # Quick Start
//
//	import "github.com/gogpu/particles"
//
//	// rgba: width*height*4 bytes, row-major, no padding
//	buf := particles.Generate(width, height, rgba, 2, 10)
//	n := len(buf) / particles.FloatsPerParticle
//
// # Pipeline
//
// Generate runs five stages, each a pure function of its inputs:
//
//   - Inside mask: a pixel belongs to the shape iff its alpha exceeds the
//     threshold.
//   - Edge band: the boundary pixels dilated by two, united with a shell
//     three to five pixels outside the shape.
//   - Seeding: band cells are kept with probability 1/step²; each kept cell
//     scatters four jittered candidates snapped back onto the band.
//   - Relaxation: seven rounds of short-range repulsion over a uniform
//     spatial grid, each followed by clamping and re-snapping to the band.
//   - Encoding: positions are mapped to clip space and packed into
//     FloatsPerParticle floats per particle.
//
// The random stream is re-seeded on every call, so identical input always
// yields identical output, and concurrent calls never share state.
//
// # Output Layout
//
// Each particle occupies FloatsPerParticle consecutive floats:
//
//	[cx, cy, 0, 0, tx, ty, seed, life]
//
// (cx, cy) is the current position and (tx, ty) the target, both in clip
// space with y pointing up. The zeros are the initial velocity, seed is in
// [0, 1) and life is 1.
//
// # Degenerate Input
//
// The pipeline never fails. A zero dimension or a short buffer yields an
// empty result, and a point with no band pixel nearby keeps its position.
//
// # Coordinate System
//
// Pixel space has its origin at the top-left corner with y increasing down;
// pixel (x, y) has its centre at (x+0.5, y+0.5).
package particles

// Version is the current version of the module.
const Version = "0.1.0"
