package rng

import "testing"

func TestLCGSequence(t *testing.T) {
	g := New(0)
	want := []uint32{
		1013904223,
		1196435762,
		3519870697,
		2868466484,
	}
	for i, w := range want {
		if got := g.Uint32(); got != w {
			t.Errorf("Uint32() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestLCGWraps(t *testing.T) {
	seed := uint32(0xFFFF_FFFF)
	g := New(seed)
	want := seed*multiplier + increment
	if got := g.Uint32(); got != want {
		t.Errorf("Uint32() = %d, want %d", got, want)
	}
}

func TestLCGDeterministic(t *testing.T) {
	a := New(0xA3C5_1F2D)
	b := New(0xA3C5_1F2D)
	for i := 0; i < 1000; i++ {
		if x, y := a.Float32(), b.Float32(); x != y {
			t.Fatalf("streams diverged at %d: %v != %v", i, x, y)
		}
	}
}

func TestFloat32Range(t *testing.T) {
	g := New(42)
	for i := 0; i < 100000; i++ {
		f := g.Float32()
		if f < 0 || f >= 1 {
			t.Fatalf("Float32() = %v, want [0, 1)", f)
		}
	}
}

func TestFloat32UsesAdvancedState(t *testing.T) {
	g := New(7)
	f := g.Float32()
	want := float32((g.State()>>8)&0xFFFFFF) / floatScale
	if f != want {
		t.Errorf("Float32() = %v, want %v", f, want)
	}
}

func TestFloat32Extremes(t *testing.T) {
	// Seeds chosen so that the next state is 0 and 0xFFFFFFFF respectively.
	zeroSeed := seedFor(0)
	if got := New(zeroSeed).Float32(); got != 0 {
		t.Errorf("Float32() = %v, want 0", got)
	}
	maxSeed := seedFor(0xFFFF_FFFF)
	got := New(maxSeed).Float32()
	if want := float32(0xFFFFFF) / floatScale; got != want {
		t.Errorf("Float32() = %v, want %v", got, want)
	}
	if got >= 1 {
		t.Errorf("Float32() = %v, must stay below 1", got)
	}
}

// seedFor inverts one LCG step so that New(seedFor(s)).Uint32() == s.
func seedFor(next uint32) uint32 {
	// multiplier is odd, so it has an inverse modulo 2^32 (Newton iteration).
	inv := uint32(multiplier)
	for i := 0; i < 5; i++ {
		inv *= 2 - multiplier*inv
	}
	return (next - increment) * inv
}

func BenchmarkFloat32(b *testing.B) {
	g := New(1)
	b.ReportAllocs()
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += g.Float32()
	}
	_ = sink
}
