package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/chst/internal/testutil"
)

// zeroEffect silences the wet path.
type zeroEffect struct{}

func (zeroEffect) Transform(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// recordEffect keeps a copy of what it was given and passes it through.
type recordEffect struct {
	seen   []float64
	resets int
}

func (r *recordEffect) Transform(buf []float64) {
	r.seen = append(r.seen[:0], buf...)
}

func (r *recordEffect) Reset() { r.resets++ }

func TestProcessorValidation(t *testing.T) {
	if _, err := NewProcessor(nil); err == nil {
		t.Fatal("expected error for nil effect")
	}

	bad := []ProcessorOption{
		WithInputGain(0),
		WithInputGain(-1),
		WithInputGain(math.Inf(1)),
		WithOutputGain(0),
		WithOutputGain(math.NaN()),
		WithInputGainDB(math.NaN()),
		WithOutputGainDB(math.Inf(-1)),
		WithMix(math.NaN()),
	}

	for i, opt := range bad {
		if _, err := NewProcessor(zeroEffect{}, opt); err == nil {
			t.Fatalf("option %d: expected error", i)
		}
	}
}

func TestProcessorMixClamped(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{7, 1},
	}

	for _, tc := range cases {
		p, err := NewProcessor(zeroEffect{}, WithMix(tc.in))
		if err != nil {
			t.Fatalf("NewProcessor() error = %v", err)
		}

		if got := p.Mix(); got != tc.want {
			t.Fatalf("Mix() = %v, want %v", got, tc.want)
		}
	}
}

func TestProcessorDefaults(t *testing.T) {
	p, err := NewProcessor(zeroEffect{})
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	if p.InputGain() != 1 || p.OutputGain() != 1 || p.Mix() != 1 {
		t.Fatalf("defaults = (%v, %v, %v), want (1, 1, 1)", p.InputGain(), p.OutputGain(), p.Mix())
	}
}

func TestProcessorGainDB(t *testing.T) {
	p, err := NewProcessor(zeroEffect{}, WithInputGainDB(-6), WithOutputGainDB(20))
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	if got, want := p.InputGain(), math.Pow(10, -6.0/20); math.Abs(got-want) > 1e-12 {
		t.Fatalf("InputGain() = %v, want %v", got, want)
	}

	if got := p.OutputGain(); math.Abs(got-10) > 1e-12 {
		t.Fatalf("OutputGain() = %v, want 10", got)
	}
}

func TestProcessorMixZeroReturnsDry(t *testing.T) {
	p, err := NewProcessor(zeroEffect{}, WithInputGain(4), WithOutputGain(3), WithMix(0))
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	in := testutil.DeterministicNoise(1, 0.8, 257)
	buf := testutil.Clone(in)
	p.ProcessInPlace(buf)

	testutil.RequireSliceEqual(t, buf, in)
}

func TestProcessorDryIsPreGain(t *testing.T) {
	p, err := NewProcessor(zeroEffect{}, WithInputGain(4), WithMix(0.5))
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	buf := []float64{0.5, -0.25, 1}
	p.ProcessInPlace(buf)

	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.25, -0.125, 0.5}, 1e-15)
}

func TestProcessorGainOrder(t *testing.T) {
	rec := &recordEffect{}

	p, err := NewProcessor(rec, WithInputGain(2), WithOutputGain(0.25))
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	buf := []float64{0.5, -1, 0.125}
	p.ProcessInPlace(buf)

	testutil.RequireSliceEqual(t, rec.seen, []float64{1, -2, 0.25})
	testutil.RequireSliceEqual(t, buf, []float64{0.25, -0.5, 0.0625})
}

func TestProcessorSampleMatchesBlock(t *testing.T) {
	in := testutil.DeterministicNoise(7, 1.5, 64)

	block, err := NewProcessor(&recordEffect{}, WithInputGain(1.5), WithMix(0.3))
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	single, err := NewProcessor(&recordEffect{}, WithInputGain(1.5), WithMix(0.3))
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	want := testutil.Clone(in)
	block.ProcessInPlace(want)

	got := make([]float64, len(in))
	for i, x := range in {
		got[i] = single.ProcessSample(x)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestProcessorEmptyAndReset(t *testing.T) {
	rec := &recordEffect{}

	p, err := NewProcessor(rec)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	p.ProcessInPlace(nil)

	if rec.seen != nil {
		t.Fatal("effect called for empty buffer")
	}

	p.Reset()

	if rec.resets != 1 {
		t.Fatalf("resets = %d, want 1", rec.resets)
	}

	stateless, err := NewProcessor(zeroEffect{})
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	stateless.Reset()
}
