package text

import (
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// HarfbuzzShaper keeps a scratch buffer and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Glyph is a shaped glyph positioned relative to the start of the line on
// the baseline. Y grows downward.
type Glyph struct {
	ID   GlyphID
	X, Y float32
}

// GlyphID is a glyph index, shared by the shaping and outline parsers.
type GlyphID uint16

// Line is the result of shaping a single line of text.
type Line struct {
	Glyphs []Glyph

	// Advance is the total pen advance in pixels.
	Advance float32
}

// Shape normalizes s to NFC and shapes it left to right at size pixels per
// em.
func (f *Font) Shape(s string, size float64) Line {
	runes := []rune(norm.NFC.String(s))
	if len(runes) == 0 {
		return Line{}
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.shaping),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	line := Line{Glyphs: make([]Glyph, 0, len(out.Glyphs))}
	var pen float32
	for _, g := range out.Glyphs {
		line.Glyphs = append(line.Glyphs, Glyph{
			ID: GlyphID(uint16(g.GlyphID)), //nolint:gosec // TrueType glyph indices are 16-bit
			X:  pen + fixedToFloat(g.XOffset),
			// go-text offsets point up; the canvas points down.
			Y: -fixedToFloat(g.YOffset),
		})
		pen += fixedToFloat(g.Advance)
	}
	line.Advance = pen
	return line
}

// Measure returns the shaped advance of s in pixels.
func (f *Font) Measure(s string, size float64) float32 {
	return f.Shape(s, size).Advance
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
