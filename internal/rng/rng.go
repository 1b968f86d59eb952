// Package rng provides the deterministic pseudo-random stream used by the
// particle pipeline.
//
// The generator is a 32-bit linear congruential generator with the classic
// Numerical Recipes constants. It is intentionally tiny: identical seeds
// yield identical sequences on every platform, which makes the whole
// pipeline a pure function of its inputs.
package rng

const (
	multiplier = 1664525
	increment  = 1013904223

	// floatScale is 2^24, the resolution of Float32.
	floatScale = 1 << 24
)

// LCG is a linear congruential generator with 32-bit state.
//
// An LCG is a value object: callers own exactly one instance per stream and
// pass it explicitly. It is not safe for concurrent use.
type LCG struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *LCG {
	return &LCG{state: seed}
}

// State returns the current internal state.
func (g *LCG) State() uint32 { return g.state }

// Uint32 advances the generator and returns the new state.
func (g *LCG) Uint32() uint32 {
	g.state = g.state*multiplier + increment
	return g.state
}

// Float32 advances the generator and returns a value in [0, 1) built from
// the 24 bits above bit 8 of the new state.
func (g *LCG) Float32() float32 {
	v := (g.Uint32() >> 8) & 0x00FF_FFFF
	return float32(v) / floatScale
}
