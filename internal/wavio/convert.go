package wavio

import "github.com/cwbudde/chst/dsp/core"

// PCM16ToFloat maps a PCM16 sample to [-1, 1) by dividing by 32768.
func PCM16ToFloat(v int16) float64 {
	return float64(v) / 32768
}

// FloatToPCM16 clamps f to [-1, 1], scales by 32767 and truncates toward zero.
// NaN maps to 0.
func FloatToPCM16(f float64) int16 {
	if f != f {
		return 0
	}

	return int16(core.Clamp(f, -1, 1) * 32767)
}

// ToFloat converts PCM16 samples to normalized floats.
func ToFloat(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = PCM16ToFloat(v)
	}

	return out
}

// ToPCM16 converts normalized floats to PCM16 samples.
func ToPCM16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, f := range samples {
		out[i] = FloatToPCM16(f)
	}

	return out
}
