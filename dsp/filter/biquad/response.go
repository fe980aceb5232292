package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(z) on the unit circle at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zinv := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)

	num := complex(c.B0, 0) + zinv*(complex(c.B1, 0)+zinv*complex(c.B2, 0))
	den := 1 + zinv*(complex(c.A1, 0)+zinv*complex(c.A2, 0))

	return num / den
}

// MagnitudeSquared returns |H(f)|^2.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return real(h)*real(h) + imag(h)*imag(h)
}

// MagnitudeDB returns the gain at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase at freqHz in radians, in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response multiplies the section responses. An empty chain returns 1.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascade gain at freqHz in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// sampleProcessor is the per-sample interface shared by Section and Chain.
type sampleProcessor interface {
	ProcessSample(x float64) float64
	Reset()
}

// impulse feeds a unit impulse followed by n-1 zeros through p from rest.
func impulse(p sampleProcessor, n int) []float64 {
	if n <= 0 {
		return nil
	}

	p.Reset()

	ir := make([]float64, n)
	for i := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}

		ir[i] = p.ProcessSample(x)
	}

	return ir
}

// ImpulseResponse returns the first n samples of the impulse response.
// The section history is restored afterwards.
func (s *Section) ImpulseResponse(n int) []float64 {
	saved := s.State()
	defer s.SetState(saved)

	return impulse(s, n)
}

// ImpulseResponse returns the first n samples of the cascade impulse
// response. Section histories are restored afterwards.
func (c *Chain) ImpulseResponse(n int) []float64 {
	saved := c.State()
	defer c.SetState(saved)

	return impulse(c, n)
}
