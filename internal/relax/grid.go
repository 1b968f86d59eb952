package relax

import (
	"math"

	"github.com/gogpu/particles/internal/geom"
)

// Grid is a uniform spatial partition of a w×h canvas into square cells.
//
// Buckets live in a single arena: the indices of the points in cell c are
// items[start[c]:start[c+1]], in ascending point order. Rebuilding reuses
// both slices, so steady-state iterations do not allocate.
type Grid struct {
	cell  float32
	cols  int
	rows  int
	start []int32
	items []int32

	// scratch reused across rebuilds
	home []int32
	next []int32
}

// NewGrid creates a grid with the given cell side covering a w×h canvas.
func NewGrid(w, h int, cell float32) *Grid {
	cols := max(int(math.Ceil(float64(float32(w)/cell))), 1)
	rows := max(int(math.Ceil(float64(float32(h)/cell))), 1)
	return &Grid{
		cell:  cell,
		cols:  cols,
		rows:  rows,
		start: make([]int32, cols*rows+1),
	}
}

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// CellOf returns the unclamped cell coordinates containing p.
func (g *Grid) CellOf(p geom.Point) (int, int) {
	return int(math.Floor(float64(p.X / g.cell))), int(math.Floor(float64(p.Y / g.cell)))
}

// bucketOf returns the bucket index of p, clamping to the grid.
func (g *Grid) bucketOf(p geom.Point) int {
	cx, cy := g.CellOf(p)
	cx = min(max(cx, 0), g.cols-1)
	cy = min(max(cy, 0), g.rows-1)
	return cy*g.cols + cx
}

// Rebuild distributes pts into the buckets with a counting sort.
func (g *Grid) Rebuild(pts []geom.Point) {
	n := len(pts)
	g.items = resize(g.items, n)
	g.home = resize(g.home, n)
	g.next = resize(g.next, g.cols*g.rows)

	clear(g.start)
	for i, p := range pts {
		c := int32(g.bucketOf(p))
		g.home[i] = c
		g.start[c+1]++
	}
	for c := 1; c < len(g.start); c++ {
		g.start[c] += g.start[c-1]
	}

	copy(g.next, g.start)
	for i, c := range g.home {
		g.items[g.next[c]] = int32(i)
		g.next[c]++
	}
}

// Bucket returns the indices of the points in cell (cx, cy), or nil when the
// cell lies outside the grid.
func (g *Grid) Bucket(cx, cy int) []int32 {
	if cx < 0 || cx >= g.cols || cy < 0 || cy >= g.rows {
		return nil
	}
	c := cy*g.cols + cx
	return g.items[g.start[c]:g.start[c+1]]
}

func resize(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	return s[:n]
}
