package text

// Defaults match the canvas the interactive demo rasterizes.
const (
	DefaultSize    = 140.0
	DefaultPadding = 64
)

// Option configures Rasterize.
type Option func(*options)

type options struct {
	size    float64
	padding int
	font    *Font
}

func defaultOptions() options {
	return options{
		size:    DefaultSize,
		padding: DefaultPadding,
	}
}

// WithSize sets the font size in pixels per em.
func WithSize(px float64) Option {
	return func(o *options) {
		o.size = px
	}
}

// WithPadding sets the transparent margin around the text, in pixels.
// Negative values are treated as zero.
func WithPadding(px int) Option {
	return func(o *options) {
		o.padding = max(px, 0)
	}
}

// WithFont selects the font. The default is DefaultFont.
func WithFont(f *Font) Option {
	return func(o *options) {
		o.font = f
	}
}
