package particles

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.step != DefaultStep {
		t.Errorf("step = %d, want %d", o.step, DefaultStep)
	}
	if o.alphaThreshold != DefaultAlphaThreshold {
		t.Errorf("alphaThreshold = %d, want %d", o.alphaThreshold, DefaultAlphaThreshold)
	}
	if o.mode != ModeOutline {
		t.Errorf("mode = %v, want %v", o.mode, ModeOutline)
	}
	if o.iterations != DefaultIterations {
		t.Errorf("iterations = %d, want %d", o.iterations, DefaultIterations)
	}
	if o.band != DefaultBand {
		t.Errorf("band = %+v, want %+v", o.band, DefaultBand)
	}
}

func TestWithStepClamps(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{-3, 1}, {0, 1}, {1, 1}, {5, 5}} {
		o := defaultOptions()
		WithStep(tt.in)(&o)
		if o.step != tt.want {
			t.Errorf("WithStep(%d): step = %d, want %d", tt.in, o.step, tt.want)
		}
	}
}

func TestWithIterationsClamps(t *testing.T) {
	o := defaultOptions()
	WithIterations(-1)(&o)
	if o.iterations != 0 {
		t.Errorf("iterations = %d, want 0", o.iterations)
	}
}

func TestSeedFor(t *testing.T) {
	o := defaultOptions()
	if got := o.seedFor(ModeOutline); got != DefaultSeed {
		t.Errorf("outline seed = %#x, want %#x", got, DefaultSeed)
	}
	if got := o.seedFor(ModeGrid); got != GridSeed {
		t.Errorf("grid seed = %#x, want %#x", got, GridSeed)
	}

	WithSeed(0)(&o)
	if got := o.seedFor(ModeOutline); got != 0 {
		t.Errorf("explicit zero seed = %#x, want 0", got)
	}
	if got := o.seedFor(ModeGrid); got != 0 {
		t.Errorf("explicit zero seed in grid mode = %#x, want 0", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"outline", ModeOutline, false},
		{"", ModeOutline, false},
		{" Grid ", ModeGrid, false},
		{"poisson", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeOutline.String() != "outline" || ModeGrid.String() != "grid" {
		t.Errorf("unexpected mode names %q, %q", ModeOutline, ModeGrid)
	}
	if got := Mode(9).String(); got != "Mode(9)" {
		t.Errorf("Mode(9).String() = %q", got)
	}
}
