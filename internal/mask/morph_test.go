package mask

import (
	"testing"

	"github.com/gogpu/particles/internal/rng"
)

// naiveDilate paints a full square around every set cell.
func naiveDilate(m *Mask, r int) *Mask {
	if r <= 0 {
		return m.Clone()
	}
	out := New(m.Width(), m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.At(x, y) {
				continue
			}
			for oy := -r; oy <= r; oy++ {
				for ox := -r; ox <= r; ox++ {
					out.Set(x+ox, y+oy, true)
				}
			}
		}
	}
	return out
}

func randomMask(w, h int, density float32, seed uint32) *Mask {
	g := rng.New(seed)
	m := New(w, h)
	for i := range m.Data() {
		m.Data()[i] = g.Float32() < density
	}
	return m
}

func TestDilateSinglePixel(t *testing.T) {
	m := fromRows(
		".......",
		".......",
		".......",
		"...#...",
		".......",
		".......",
		".......",
	)
	assertRows(t, Dilate(m, 2),
		".......",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".......",
	)
}

func TestDilateClipsAtBorder(t *testing.T) {
	m := fromRows(
		"#...",
		"....",
		"....",
	)
	assertRows(t, Dilate(m, 1),
		"##..",
		"##..",
		"....",
	)
}

func TestDilateNonPositiveRadius(t *testing.T) {
	m := randomMask(9, 7, 0.3, 3)
	for _, r := range []int{0, -1, -5} {
		got := Dilate(m, r)
		if got == m {
			t.Errorf("radius %d: expected a copy, got the same mask", r)
		}
		assertRows(t, got, rows(m)...)
	}
}

func TestDilateMatchesNaive(t *testing.T) {
	tests := []struct {
		w, h    int
		density float32
		seed    uint32
	}{
		{1, 1, 1, 1},
		{16, 9, 0.05, 2},
		{31, 17, 0.2, 3},
		{40, 40, 0.01, 4},
		{7, 33, 0.5, 5},
	}
	for _, tt := range tests {
		m := randomMask(tt.w, tt.h, tt.density, tt.seed)
		for r := 1; r <= 6; r++ {
			got := rows(Dilate(m, r))
			want := rows(naiveDilate(m, r))
			for y := range want {
				if got[y] != want[y] {
					t.Errorf("%dx%d seed %d radius %d row %d: got %q, want %q",
						tt.w, tt.h, tt.seed, r, y, got[y], want[y])
				}
			}
		}
	}
}

func TestDilateMonotoneInRadius(t *testing.T) {
	m := randomMask(30, 20, 0.03, 11)
	prev := Dilate(m, 0)
	for r := 1; r <= 8; r++ {
		cur := Dilate(m, r)
		if !cur.Contains(prev) {
			t.Errorf("Dilate(r=%d) does not contain Dilate(r=%d)", r, r-1)
		}
		prev = cur
	}
}

func TestBoundary(t *testing.T) {
	inside := fromRows(
		"......",
		".####.",
		".####.",
		".####.",
		".####.",
		"......",
	)
	assertRows(t, Boundary(inside),
		"......",
		".####.",
		".#..#.",
		".#..#.",
		".####.",
		"......",
	)
}

func TestBoundaryIgnoresOuterFrame(t *testing.T) {
	// A fully opaque canvas has no interior pixel touching the outside, and
	// the outermost frame is never examined.
	full := New(6, 5)
	for i := range full.Data() {
		full.Data()[i] = true
	}
	if n := Boundary(full).Count(); n != 0 {
		t.Errorf("expected no boundary cells on a full canvas, got %d", n)
	}

	// A shape touching the border is only marked on interior cells.
	inside := fromRows(
		"###...",
		"###...",
		"###...",
	)
	assertRows(t, Boundary(inside),
		"......",
		"..#...",
		"......",
	)
}

func TestBoundaryDiagonalNeighbour(t *testing.T) {
	inside := fromRows(
		"####",
		"####",
		"####",
		"###.",
	)
	got := Boundary(inside)
	if !got.At(2, 2) {
		t.Error("cell with a diagonal outside neighbour must be a boundary cell")
	}
	if got.At(1, 1) {
		t.Error("cell surrounded by inside cells must not be a boundary cell")
	}
}

func TestBoundarySubsetOfInside(t *testing.T) {
	inside := randomMask(25, 25, 0.6, 8)
	if !inside.Contains(Boundary(inside)) {
		t.Error("boundary must be a subset of inside")
	}
}

func BenchmarkDilate(b *testing.B) {
	m := randomMask(512, 256, 0.02, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Dilate(m, 5)
	}
}
