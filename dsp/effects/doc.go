// Package effects provides the single-channel effects run by chst.
//
// Every effect is a Processor: a fixed pipeline that snapshots the dry
// input, applies input gain, runs an effect-specific stage, applies
// output gain and blends wet with dry by the mix amount. The stages are:
//   - Clipper: one of five waveshaping curves followed by a one-pole
//     smoother (y = alpha*yPrev + (1-alpha)*curve(x)).
//   - EQ: an optional Butterworth high-pass followed by an optional
//     Butterworth low-pass, built on dsp/filter/biquad.
//
// The curve functions (HardClip, TanhClip, AtanClip, CubicClip,
// SmoothClip) are exported for direct use and for plotting transfer
// curves.
//
// Effects operate in place on caller-owned buffers, keep no reference to
// them across calls and are not safe for concurrent use.
package effects
