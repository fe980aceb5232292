package biquad

import "math"

// Butterworth Q for a single second-order section.
const butterworthQ = 1 / math.Sqrt2

// HighpassButterworth designs a second-order Butterworth high-pass at
// freq (Hz) using the RBJ cookbook formula with Q = 1/sqrt(2).
func HighpassButterworth(freq, sampleRate float64) Coefficients {
	cw, alpha := prewarp(freq, sampleRate)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// LowpassButterworth designs a second-order Butterworth low-pass at
// freq (Hz) using the RBJ cookbook formula with Q = 1/sqrt(2).
func LowpassButterworth(freq, sampleRate float64) Coefficients {
	cw, alpha := prewarp(freq, sampleRate)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// prewarp returns cos(w0) and the RBJ alpha term sin(w0)/(2Q).
func prewarp(freq, sampleRate float64) (cw, alpha float64) {
	w0 := 2 * math.Pi * freq / sampleRate
	return math.Cos(w0), math.Sin(w0) / (2 * butterworthQ)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
