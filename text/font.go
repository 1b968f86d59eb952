package text

import (
	"bytes"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TrueType/OpenType font. The same bytes are parsed twice:
// go-text/typesetting drives shaping and golang.org/x/image/font/sfnt
// provides glyph outlines. Both address glyphs by the same index.
//
// Font is read-only after parsing and safe for concurrent use.
type Font struct {
	shaping *gotext.Font
	outline *sfnt.Font
}

// ParseFont parses font data.
func ParseFont(data []byte) (*Font, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font outlines: %w", err)
	}
	return &Font{shaping: face.Font, outline: outline}, nil
}

// Name returns the font family name, or "" when the font has none.
func (f *Font) Name() string {
	name, err := f.outline.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

var (
	defaultOnce sync.Once
	defaultFont *Font
	defaultErr  error
)

// DefaultFont returns Go Bold, parsed once.
func DefaultFont() (*Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = ParseFont(gobold.TTF)
	})
	return defaultFont, defaultErr
}
