package particles

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// rgbaBytes returns img as a tightly packed 4-bytes-per-pixel buffer. Only
// the alpha byte matters to the pipeline, so premultiplied *image.RGBA and
// straight *image.NRGBA are shared without copying when their rows are
// contiguous. Everything else is converted to NRGBA.
func rgbaBytes(img image.Image) (w, h int, pix []byte) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0, nil
	}

	switch src := img.(type) {
	case *image.NRGBA:
		if src.Stride == w*4 {
			off := src.PixOffset(b.Min.X, b.Min.Y)
			return w, h, src.Pix[off : off+w*h*4]
		}
	case *image.RGBA:
		if src.Stride == w*4 {
			off := src.PixOffset(b.Min.X, b.Min.Y)
			return w, h, src.Pix[off : off+w*h*4]
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return w, h, dst.Pix
}

// Fit scales img down with Catmull-Rom resampling so that it fits within
// maxW×maxH, preserving the aspect ratio. Images that already fit, and
// non-positive limits, are returned unchanged.
func Fit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxW <= 0 || maxH <= 0 || (w <= maxW && h <= maxH) {
		return img
	}

	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	dw := max(int(float64(w)*scale), 1)
	dh := max(int(float64(h)*scale), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// FromImage runs the pipeline on img with the given options.
func FromImage(img image.Image, opts ...Option) *Set {
	return New(opts...).FromImage(img)
}
