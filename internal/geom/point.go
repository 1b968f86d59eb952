// Package geom holds the small float32 geometry shared by the pipeline stages.
package geom

// Point is a position in pixel space. Pixel (x, y) covers [x, x+1) × [y, y+1),
// so its centre is (x+0.5, y+0.5).
type Point struct {
	X, Y float32
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// ClampToCanvas limits p to [0.5, w-0.5] × [0.5, h-0.5], the range of
// pixel centres of a w×h canvas.
func ClampToCanvas(p Point, w, h int) Point {
	return Point{
		X: Clamp(p.X, 0.5, float32(w)-0.5),
		Y: Clamp(p.Y, 0.5, float32(h)-0.5),
	}
}

// InCanvas reports whether p lies within [0.5, w-0.5] × [0.5, h-0.5].
func InCanvas(p Point, w, h int) bool {
	return p.X >= 0.5 && p.X <= float32(w)-0.5 &&
		p.Y >= 0.5 && p.Y <= float32(h)-0.5
}
