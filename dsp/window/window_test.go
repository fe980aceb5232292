package window

import (
	"math"
	"testing"
)

func TestGenerateSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		w := Generate(typ, 65)
		for i := range w {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-12 {
				t.Fatalf("%s: w[%d]=%v != w[%d]=%v", typ, i, w[i], j, w[j])
			}
		}
		if math.Abs(w[32]-1) > 1e-12 {
			t.Fatalf("%s: center = %v, want 1", typ, w[32])
		}
	}
}

func TestGeneratePeriodicHann(t *testing.T) {
	w := Generate(TypeHann, 4, WithPeriodic())
	want := []float64{0, 0.5, 1, 0.5}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("w[%d] = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("Generate(1) = %v", w)
	}
	if w := Generate(Type(99), 3); w[0] != 1 || w[1] != 1 || w[2] != 1 {
		t.Fatalf("unknown type should be rectangular: %v", w)
	}
}

func TestCoherentGain(t *testing.T) {
	if g := CoherentGain(Generate(TypeRectangular, 16)); g != 1 {
		t.Fatalf("rectangular gain = %v, want 1", g)
	}
	if g := CoherentGain(Generate(TypeHann, 4096, WithPeriodic())); math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("periodic hann gain = %v, want 0.5", g)
	}
	if g := CoherentGain(nil); g != 0 {
		t.Fatalf("empty gain = %v, want 0", g)
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range typeNames {
		got, err := ParseType(" " + name + " ")
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unsupported window")
	}
}
