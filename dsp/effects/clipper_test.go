package effects

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/chst/internal/testutil"
)

func TestClipperValidation(t *testing.T) {
	if _, err := NewClipper(Curve(99), 0); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("NewClipper(Curve(99)) error = %v, want ErrUnknownCurve", err)
	}

	for _, alpha := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		if _, err := NewClipper(CurveHard, alpha); err == nil {
			t.Fatalf("expected error for alpha %v", alpha)
		}
	}

	if _, err := NewClipper(CurveHard, 0, WithInputGain(-2)); err == nil {
		t.Fatal("expected error for negative input gain")
	}

	c, err := NewClipper(CurveAtan, 1, WithMix(0.25), WithOutputGain(2))
	if err != nil {
		t.Fatalf("NewClipper() error = %v", err)
	}

	if c.Curve() != CurveAtan || c.Alpha() != 1 || c.Mix() != 0.25 || c.OutputGain() != 2 || c.InputGain() != 1 {
		t.Fatalf("getters = (%v, %v, %v, %v, %v)", c.Curve(), c.Alpha(), c.Mix(), c.InputGain(), c.OutputGain())
	}
}

func TestClipperHardClip(t *testing.T) {
	c, err := NewClipper(CurveHard, 0)
	if err != nil {
		t.Fatalf("NewClipper() error = %v", err)
	}

	buf := []float64{0.5, 1.5, -2.0}
	c.ProcessInPlace(buf)

	testutil.RequireSliceEqual(t, buf, []float64{0.5, 1, -1})
}

func TestClipperSmoothCurve(t *testing.T) {
	c, err := NewClipper(CurveSmooth, 0)
	if err != nil {
		t.Fatalf("NewClipper() error = %v", err)
	}

	if got := c.ProcessSample(3); got != 0.75 {
		t.Fatalf("ProcessSample(3) = %v, want 0.75", got)
	}
}

func TestClipperAlphaZeroMatchesCurve(t *testing.T) {
	in := testutil.DeterministicNoise(3, 4, 512)

	for _, curve := range Curves() {
		c, err := NewClipper(curve, 0)
		if err != nil {
			t.Fatalf("NewClipper(%s) error = %v", curve, err)
		}

		buf := testutil.Clone(in)
		c.ProcessInPlace(buf)

		fn := curve.Func()
		want := make([]float64, len(in))

		for i, x := range in {
			want[i] = fn(x)
		}

		testutil.RequireSliceEqual(t, buf, want)
	}
}

func TestClipperSmoothingMemory(t *testing.T) {
	c, err := NewClipper(CurveHard, 0.5)
	if err != nil {
		t.Fatalf("NewClipper() error = %v", err)
	}

	buf := []float64{1, 1}
	c.ProcessInPlace(buf)
	testutil.RequireSliceEqual(t, buf, []float64{0.5, 0.75})

	// State carries over into the next call.
	buf = []float64{1}
	c.ProcessInPlace(buf)

	if buf[0] != 0.875 {
		t.Fatalf("third sample = %v, want 0.875", buf[0])
	}

	c.Reset()

	if got := c.ProcessSample(1); got != 0.5 {
		t.Fatalf("after Reset ProcessSample(1) = %v, want 0.5", got)
	}
}

func TestClipperAlphaOneHolds(t *testing.T) {
	c, err := NewClipper(CurveTanh, 1)
	if err != nil {
		t.Fatalf("NewClipper() error = %v", err)
	}

	buf := testutil.DeterministicNoise(9, 1, 32)
	c.ProcessInPlace(buf)

	testutil.RequireSliceEqual(t, buf, make([]float64, 32))
}

func TestClipperGainsAndMix(t *testing.T) {
	c, err := NewClipper(CurveHard, 0, WithInputGain(2), WithOutputGain(0.5), WithMix(0.5))
	if err != nil {
		t.Fatalf("NewClipper() error = %v", err)
	}

	// 0.25 -> 0.5 -> 0.5 -> 0.25, blended with 0.25
	// 2.0  -> 4.0 -> 1.0 -> 0.5,  blended with 2.0
	buf := []float64{0.25, 2}
	c.ProcessInPlace(buf)

	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.25, 1.25}, 1e-15)
}

func TestClipperOutputBounded(t *testing.T) {
	in := testutil.DeterministicNoise(11, 10, 1024)

	for _, curve := range []Curve{CurveHard, CurveTanh, CurveCubic, CurveSmooth} {
		c, err := NewClipper(curve, 0.3)
		if err != nil {
			t.Fatalf("NewClipper(%s) error = %v", curve, err)
		}

		buf := testutil.Clone(in)
		c.ProcessInPlace(buf)
		testutil.RequireBounded(t, buf, 1)
	}
}

func BenchmarkClipperProcessInPlace(b *testing.B) {
	c, _ := NewClipper(CurveTanh, 0.2, WithInputGain(2), WithMix(0.7))
	buf := testutil.DeterministicNoise(1, 1, 4096)

	b.ReportAllocs()
	b.SetBytes(int64(len(buf) * 8))
	b.ResetTimer()

	for range b.N {
		c.ProcessInPlace(buf)
	}
}
