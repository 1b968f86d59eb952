package text

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Rasterize draws s on a transparent canvas and returns it. Glyph coverage
// is stored in the alpha channel over white.
//
// The canvas is the shaped advance plus padding on each side wide, and
// 1.2·size plus padding on each side high. The pen starts at the left
// padding with the baseline at padding+size.
func Rasterize(s string, opts ...Option) (*image.NRGBA, error) {
	if s == "" {
		return nil, ErrEmptyText
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.size <= 0 || math.IsNaN(o.size) {
		return nil, ErrInvalidSize
	}
	f := o.font
	if f == nil {
		var err error
		if f, err = DefaultFont(); err != nil {
			return nil, err
		}
	}

	line := f.Shape(s, o.size)
	w := int(math.Ceil(float64(line.Advance))) + 2*o.padding
	h := int(math.Ceil(o.size*1.2)) + 2*o.padding
	w = max(w, 1)

	coverage := image.NewAlpha(image.Rect(0, 0, w, h))
	originX := float32(o.padding)
	baseline := float32(o.padding) + float32(o.size)
	if err := f.drawLine(coverage, line, originX, baseline, o.size); err != nil {
		return nil, err
	}
	return whiteOver(coverage), nil
}

// drawLine fills the outlines of every glyph of line into dst, with the
// pen at (x, y) on the baseline.
func (f *Font) drawLine(dst *image.Alpha, line Line, x, y float32, size float64) error {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	ppem := fixed.Int26_6(size * 64)

	var buf sfnt.Buffer
	for _, g := range line.Glyphs {
		segs, err := f.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			return fmt.Errorf("text: load glyph %d: %w", g.ID, err)
		}

		ox, oy := x+g.X, y+g.Y
		pt := func(p fixed.Point26_6) (float32, float32) {
			return ox + fixedToFloat(p.X), oy + fixedToFloat(p.Y)
		}
		for i, seg := range segs {
			a := seg.Args
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if i > 0 {
					z.ClosePath()
				}
				z.MoveTo(pt(a[0]))
			case sfnt.SegmentOpLineTo:
				z.LineTo(pt(a[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := pt(a[0])
				cx, cy := pt(a[1])
				z.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := pt(a[0])
				cx, cy := pt(a[1])
				dx, dy := pt(a[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		if len(segs) > 0 {
			z.ClosePath()
		}
	}

	z.Draw(dst, b, image.Opaque, image.Point{})
	return nil
}

// whiteOver turns a coverage mask into white NRGBA pixels carrying the
// coverage as alpha.
func whiteOver(coverage *image.Alpha) *image.NRGBA {
	b := coverage.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := coverage.Pix[coverage.PixOffset(b.Min.X, y):]
		dst := out.Pix[out.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			i := x * 4
			dst[i], dst[i+1], dst[i+2], dst[i+3] = 255, 255, 255, src[x]
		}
	}
	return out
}
