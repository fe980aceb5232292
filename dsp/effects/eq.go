package effects

import (
	"fmt"

	"github.com/cwbudde/chst/dsp/core"
	"github.com/cwbudde/chst/dsp/filter/biquad"
)

// EQ is a two-stage Butterworth equalizer: an optional 2nd-order
// high-pass followed by an optional 2nd-order low-pass.
type EQ struct {
	*Processor

	chain      *biquad.Chain
	sampleRate float64
	hpfFreq    float64
	lpfFreq    float64
}

// filterStage adapts a biquad chain to the Effect interface.
type filterStage struct {
	chain *biquad.Chain
}

func (f filterStage) Transform(buf []float64) { f.chain.ProcessBlock(buf) }

func (f filterStage) Reset() { f.chain.Reset() }

// NewEQ creates an equalizer. A cutoff > 0 engages the stage and a cutoff
// <= 0 disables it; with both stages disabled the filter stage is identity.
func NewEQ(hpfFreq, lpfFreq, sampleRate float64, opts ...ProcessorOption) (*EQ, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("eq sample rate must be > 0 and finite: %f", sampleRate)
	}

	if !core.IsFinite(hpfFreq) {
		return nil, fmt.Errorf("eq high-pass frequency must be finite: %f", hpfFreq)
	}

	if !core.IsFinite(lpfFreq) {
		return nil, fmt.Errorf("eq low-pass frequency must be finite: %f", lpfFreq)
	}

	stages := 0
	if hpfFreq > 0 {
		stages++
	}

	if lpfFreq > 0 {
		stages++
	}

	chain := biquad.NewChain(make([]biquad.Coefficients, stages)...)

	next := 0
	if hpfFreq > 0 {
		chain.Section(next).SetHighPass(hpfFreq, sampleRate)
		next++
	}

	if lpfFreq > 0 {
		chain.Section(next).SetLowPass(lpfFreq, sampleRate)
	}

	p, err := NewProcessor(filterStage{chain: chain}, opts...)
	if err != nil {
		return nil, err
	}

	return &EQ{
		Processor:  p,
		chain:      chain,
		sampleRate: sampleRate,
		hpfFreq:    hpfFreq,
		lpfFreq:    lpfFreq,
	}, nil
}

// HighPassEnabled reports whether the high-pass stage is engaged.
func (e *EQ) HighPassEnabled() bool { return e.hpfFreq > 0 }

// LowPassEnabled reports whether the low-pass stage is engaged.
func (e *EQ) LowPassEnabled() bool { return e.lpfFreq > 0 }

// SampleRate returns the design sample rate in Hz.
func (e *EQ) SampleRate() float64 { return e.sampleRate }

// Response returns the complex response of the engaged stages at freqHz,
// excluding gains and mix.
func (e *EQ) Response(freqHz float64) complex128 {
	return e.chain.Response(freqHz, e.sampleRate)
}

// Stable reports whether every engaged stage has its poles inside the
// unit circle. Cutoffs near 0 Hz or above Nyquist can fail this.
func (e *EQ) Stable() bool {
	for i := range e.chain.NumSections() {
		if !e.chain.Section(i).Stable() {
			return false
		}
	}

	return true
}
