package frequency

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/chst/dsp/window"
)

// DefaultFFTSize is the frame length used by Analyze.
const DefaultFFTSize = 4096

var errFFTSize = errors.New("frequency: fft size must be a power of two >= 2")

// MagnitudeSpectrum returns the one-sided magnitude spectrum of signal,
// averaged over half-overlapping frames of fftSize samples and corrected
// for the window's coherent gain. Signals shorter than one frame are
// zero-padded. The result has fftSize/2+1 bins.
func MagnitudeSpectrum(signal []float64, fftSize int, win window.Type) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", errFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("frequency: fft plan: %w", err)
	}

	coeffs := window.Generate(win, fftSize, window.WithPeriodic())
	gain := window.CoherentGain(coeffs)

	bins := fftSize/2 + 1
	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	re := make([]float64, bins)
	im := make([]float64, bins)
	mag := make([]float64, bins)
	acc := make([]float64, bins)

	hop := fftSize / 2
	frames := 0

	for start := 0; start == 0 || start+fftSize <= len(signal); start += hop {
		for i := range in {
			var x float64
			if start+i < len(signal) {
				x = signal[start+i]
			}
			in[i] = complex(x*coeffs[i], 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("frequency: fft: %w", err)
		}

		for k := range bins {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}

		vecmath.Magnitude(mag, re, im)
		vecmath.AddBlockInPlace(acc, mag)
		frames++
	}

	// Single-sided amplitude: 2/N for the interior bins, 1/N at DC and Nyquist.
	scale := 2 / (float64(fftSize) * gain * float64(frames))
	vecmath.ScaleBlock(acc, acc, scale)
	acc[0] /= 2
	acc[bins-1] /= 2

	return acc, nil
}

// Analyze computes spectral statistics of signal with a Hann window and
// DefaultFFTSize frames.
func Analyze(signal []float64, sampleRate float64) (Stats, error) {
	mag, err := MagnitudeSpectrum(signal, DefaultFFTSize, window.TypeHann)
	if err != nil {
		return Stats{}, err
	}

	return Calculate(mag, sampleRate), nil
}
