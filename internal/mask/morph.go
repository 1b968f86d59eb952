package mask

// Dilate returns the Chebyshev dilation of m by radius: a cell is set iff
// some set cell of m lies within radius on both axes. This is the same as
// painting a (2r+1)×(2r+1) square of set cells around every set cell,
// clipped to the mask bounds.
//
// The square is separable, so the work is done as a row pass followed by a
// column pass, each linear in the mask size. A non-positive radius returns
// an unchanged copy.
func Dilate(m *Mask, radius int) *Mask {
	if radius <= 0 {
		return m.Clone()
	}

	w, h := m.width, m.height
	rows := New(w, h)
	for y := 0; y < h; y++ {
		dilateLine(m.data[y*w:], rows.data[y*w:], w, 1, radius)
	}

	out := New(w, h)
	for x := 0; x < w; x++ {
		dilateLine(rows.data[x:], out.data[x:], h, w, radius)
	}
	return out
}

// dilateLine dilates n cells of src read with the given stride into dst.
// painted tracks the furthest cell already written, so every dst cell is
// touched at most once.
func dilateLine(src, dst []bool, n, stride, radius int) {
	painted := -1
	for i := 0; i < n; i++ {
		if !src[i*stride] {
			continue
		}
		from := max(i-radius, painted+1)
		to := min(i+radius, n-1)
		for j := from; j <= to; j++ {
			dst[j*stride] = true
		}
		if to > painted {
			painted = to
		}
	}
}

// Boundary marks inside cells that touch a non-inside cell in their
// 8-neighbourhood. Only strictly interior cells are examined: cells on the
// outermost row or column are never marked.
func Boundary(inside *Mask) *Mask {
	w, h := inside.width, inside.height
	out := New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			if !inside.data[i] {
				continue
			}
			if hasOutsideNeighbour(inside.data, i, w) {
				out.data[i] = true
			}
		}
	}
	return out
}

func hasOutsideNeighbour(data []bool, i, w int) bool {
	for _, off := range [...]int{-w - 1, -w, -w + 1, -1, 1, w - 1, w, w + 1} {
		if !data[i+off] {
			return true
		}
	}
	return false
}
