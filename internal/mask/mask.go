// Package mask implements the binary pixel masks of the outline pipeline:
// alpha thresholding, square dilation, boundary detection, the edge band
// and nearest-edge projection.
package mask

// Mask is a row-major binary grid with one cell per pixel.
type Mask struct {
	width  int
	height int
	data   []bool
}

// New creates an empty mask with the given dimensions.
// All cells are initialized to false.
func New(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At reports whether the cell at (x, y) is set.
// Returns false for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x]
}

// Set sets the cell at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = v
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := New(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying row-major cells.
func (m *Mask) Data() []bool {
	return m.data
}

// Or sets every cell that is set in other. Both masks must have the same
// dimensions.
func (m *Mask) Or(other *Mask) {
	for i, v := range other.data {
		if v {
			m.data[i] = true
		}
	}
}

// AndNot clears every cell that is set in other. Both masks must have the
// same dimensions.
func (m *Mask) AndNot(other *Mask) {
	for i, v := range other.data {
		if v {
			m.data[i] = false
		}
	}
}

// Contains reports whether every cell set in other is also set in m.
func (m *Mask) Contains(other *Mask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, v := range other.data {
		if v && !m.data[i] {
			return false
		}
	}
	return true
}
