// Package biquad provides second-order IIR filter sections and the
// Butterworth high-pass/low-pass designs used by the EQ effect.
//
// A [Section] evaluates the difference equation
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// keeping the last two inputs and outputs as its state. Sections can be
// cascaded in a fixed order via [Chain].
//
// Coefficients are not checked for stability. Cutoffs very close to 0 Hz
// or to Nyquist can produce poles on or outside the unit circle; callers
// that care can inspect them with [Coefficients.Stable].
package biquad
