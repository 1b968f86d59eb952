package particles

import (
	"fmt"
	"strings"

	"github.com/gogpu/particles/internal/mask"
)

// Pipeline defaults. DefaultStep and DefaultAlphaThreshold match the values
// the interactive demo feeds to the pipeline.
const (
	DefaultStep           = 2
	DefaultAlphaThreshold = 10

	// DefaultSeed seeds the outline pipeline.
	DefaultSeed uint32 = 0xA3C5_1F2D

	// GridSeed seeds the grid sampler.
	GridSeed uint32 = 0x1234_ABCD

	// DefaultIterations is the number of relaxation rounds.
	DefaultIterations = 7
)

// Mode selects the sampling strategy.
type Mode int

const (
	// ModeOutline seeds particles along the edge band and relaxes them.
	ModeOutline Mode = iota

	// ModeGrid samples the opaque region on a plain jittered lattice without
	// outline extraction or relaxation.
	ModeGrid
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeOutline:
		return "outline"
	case ModeGrid:
		return "grid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outline", "":
		return ModeOutline, nil
	case "grid":
		return ModeGrid, nil
	default:
		return 0, fmt.Errorf("particles: unknown mode %q", s)
	}
}

// Band holds the radii, in pixels, of the edge band: an inner ring of
// Thick1 around the true boundary plus an outer shell Thick2 wide that
// starts Gap pixels outside the shape.
type Band = mask.Band

// DefaultBand is the band used unless WithBand is given.
var DefaultBand = mask.DefaultBand

// Option configures a Generator.
//
// Example:
//
//	g := particles.New(
//	    particles.WithStep(3),
//	    particles.WithAlphaThreshold(0),
//	)
type Option func(*options)

type options struct {
	step           int
	alphaThreshold uint8
	mode           Mode
	seed           uint32
	seedSet        bool
	iterations     int
	band           Band
}

func defaultOptions() options {
	return options{
		step:           DefaultStep,
		alphaThreshold: DefaultAlphaThreshold,
		mode:           ModeOutline,
		iterations:     DefaultIterations,
		band:           DefaultBand,
	}
}

// seedFor returns the explicit seed, or the default of the active mode.
func (o options) seedFor(m Mode) uint32 {
	if o.seedSet {
		return o.seed
	}
	if m == ModeGrid {
		return GridSeed
	}
	return DefaultSeed
}

// WithStep sets the sampling step. Values below 1 are treated as 1.
// Larger steps thin the outline proportionally to step².
func WithStep(step int) Option {
	return func(o *options) {
		o.step = max(step, 1)
	}
}

// WithAlphaThreshold sets the alpha cutoff. Pixels with alpha strictly
// greater than threshold belong to the shape.
func WithAlphaThreshold(threshold uint8) Option {
	return func(o *options) {
		o.alphaThreshold = threshold
	}
}

// WithMode selects the sampling strategy.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithSeed overrides the random seed of the selected mode.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithIterations sets the number of relaxation rounds. Zero disables
// relaxation, leaving particles where the seeder put them.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = max(n, 0)
	}
}

// WithBand overrides the edge band radii.
func WithBand(b Band) Option {
	return func(o *options) {
		o.band = b
	}
}
