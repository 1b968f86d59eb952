package text

import "errors"

// Sentinel errors returned by the text package.
var (
	// ErrEmptyText is returned when asked to rasterize an empty string.
	ErrEmptyText = errors.New("text: empty text")

	// ErrInvalidSize is returned for a non-positive font size.
	ErrInvalidSize = errors.New("text: font size must be positive")
)
