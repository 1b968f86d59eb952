package sample

import (
	"testing"

	"github.com/gogpu/particles/internal/geom"
	"github.com/gogpu/particles/internal/mask"
	"github.com/gogpu/particles/internal/rng"
)

const testSeed = 0xA3C5_1F2D

// square returns the inside mask of a size×size opaque square centred on a
// transparent w×h canvas.
func square(w, h, size int) *mask.Mask {
	m := mask.New(w, h)
	x0, y0 := (w-size)/2, (h-size)/2
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func TestOutlineEmptyEdge(t *testing.T) {
	edge := mask.Edge(mask.New(4, 4))
	for _, step := range []int{0, 1, 2, 7} {
		if pts := Outline(edge, step, rng.New(testSeed)); len(pts) != 0 {
			t.Errorf("step %d: expected no points, got %d", step, len(pts))
		}
	}
}

func TestOutlineStepOneKeepsEveryCell(t *testing.T) {
	edge := mask.Edge(square(30, 30, 10))
	pts := Outline(edge, 1, rng.New(testSeed))
	if got, want := len(pts), PerCell*edge.Count(); got != want {
		t.Errorf("expected %d points with step 1, got %d", want, got)
	}
}

func TestOutlineCountBound(t *testing.T) {
	edge := mask.Edge(square(48, 40, 20))
	limit := PerCell * edge.Count()
	for step := 0; step <= 6; step++ {
		pts := Outline(edge, step, rng.New(testSeed))
		if len(pts) > limit {
			t.Errorf("step %d: %d points exceed bound %d", step, len(pts), limit)
		}
		if len(pts)%PerCell != 0 {
			t.Errorf("step %d: %d points is not a multiple of %d", step, len(pts), PerCell)
		}
	}
}

func TestOutlineThinsWithStep(t *testing.T) {
	edge := mask.Edge(square(200, 200, 120))
	n1 := len(Outline(edge, 1, rng.New(testSeed)))
	n3 := len(Outline(edge, 3, rng.New(testSeed)))
	// Expected ratio is 1/9; allow a wide margin for sampling noise.
	if n3*4 > n1 {
		t.Errorf("step 3 produced %d points, expected well below %d/4", n3, n1)
	}
	if n3 == 0 {
		t.Error("step 3 produced no points on a large outline")
	}
}

func TestOutlineSeedsOnBand(t *testing.T) {
	inside := square(40, 40, 20)
	edge := mask.Edge(inside)
	pts := Outline(edge, 2, rng.New(testSeed))
	if len(pts) == 0 {
		t.Fatal("expected points for an opaque 20x20 square")
	}

	// Re-derive the band independently of the seeder.
	band := mask.EdgeWith(inside, mask.Band{Thick1: 2, Gap: 3, Thick2: 2})
	for i, p := range pts {
		if !geom.InCanvas(p, 40, 40) {
			t.Errorf("point %d = %v is outside the canvas", i, p)
		}
		if !band.At(int(p.X), int(p.Y)) {
			t.Errorf("point %d = %v is not on the edge band", i, p)
		}
		if p.X-float32(int(p.X)) != 0.5 || p.Y-float32(int(p.Y)) != 0.5 {
			t.Errorf("point %d = %v is not a pixel centre", i, p)
		}
	}
}

func TestOutlineDeterministic(t *testing.T) {
	edge := mask.Edge(square(64, 48, 25))
	a := Outline(edge, 2, rng.New(testSeed))
	b := Outline(edge, 2, rng.New(testSeed))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestOutlineStreamConsumption(t *testing.T) {
	edge := mask.Edge(square(30, 30, 10))
	r := rng.New(testSeed)
	pts := Outline(edge, 1, r)

	// One draw per band cell, two per candidate.
	ref := rng.New(testSeed)
	for i := 0; i < edge.Count()+2*len(pts); i++ {
		ref.Uint32()
	}
	if r.State() != ref.State() {
		t.Errorf("stream state %d, want %d", r.State(), ref.State())
	}
}

func TestGrid(t *testing.T) {
	inside := square(20, 20, 10)
	pts := Grid(inside, 2, rng.New(1))
	if got, want := len(pts), 25; got != want {
		t.Fatalf("expected %d grid points, got %d", want, got)
	}
	for i, p := range pts {
		if !geom.InCanvas(p, 20, 20) {
			t.Errorf("point %d = %v is outside the canvas", i, p)
		}
		cx, cy := int(p.X), int(p.Y)
		if cx < 4 || cx > 15 || cy < 4 || cy > 15 {
			t.Errorf("point %d = %v strayed from the square", i, p)
		}
	}
}

func TestGridEmpty(t *testing.T) {
	if pts := Grid(mask.New(8, 8), 1, rng.New(1)); len(pts) != 0 {
		t.Errorf("expected no grid points, got %d", len(pts))
	}
}

func BenchmarkOutline(b *testing.B) {
	edge := mask.Edge(square(640, 240, 180))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Outline(edge, 2, rng.New(testSeed))
	}
}
