package effects

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/chst/dsp/core"
)

// Effect is the effect-specific stage run by a Processor between input
// and output gain. Transform works in place on an already gained buffer.
type Effect interface {
	Transform(buf []float64)
}

// resetter is implemented by effects that carry state between calls.
type resetter interface {
	Reset()
}

// ProcessorOption mutates processor construction parameters.
type ProcessorOption func(*processorConfig) error

type processorConfig struct {
	inputGain  float64
	outputGain float64
	mix        float64
}

func defaultProcessorConfig() processorConfig {
	return processorConfig{
		inputGain:  1,
		outputGain: 1,
		mix:        1,
	}
}

// WithInputGain sets the linear gain applied before the effect stage.
func WithInputGain(gain float64) ProcessorOption {
	return func(cfg *processorConfig) error {
		if gain <= 0 || !core.IsFinite(gain) {
			return fmt.Errorf("processor input gain must be > 0 and finite: %f", gain)
		}

		cfg.inputGain = gain

		return nil
	}
}

// WithOutputGain sets the linear gain applied after the effect stage.
func WithOutputGain(gain float64) ProcessorOption {
	return func(cfg *processorConfig) error {
		if gain <= 0 || !core.IsFinite(gain) {
			return fmt.Errorf("processor output gain must be > 0 and finite: %f", gain)
		}

		cfg.outputGain = gain

		return nil
	}
}

// WithInputGainDB sets the input gain in decibels.
func WithInputGainDB(db float64) ProcessorOption {
	return func(cfg *processorConfig) error {
		if !core.IsFinite(db) {
			return fmt.Errorf("processor input gain dB must be finite: %f", db)
		}

		return WithInputGain(core.DBToLinear(db))(cfg)
	}
}

// WithOutputGainDB sets the output gain in decibels.
func WithOutputGainDB(db float64) ProcessorOption {
	return func(cfg *processorConfig) error {
		if !core.IsFinite(db) {
			return fmt.Errorf("processor output gain dB must be finite: %f", db)
		}

		return WithOutputGain(core.DBToLinear(db))(cfg)
	}
}

// WithMix sets the wet/dry balance. Values outside [0, 1] are clamped.
func WithMix(mix float64) ProcessorOption {
	return func(cfg *processorConfig) error {
		if mix != mix {
			return errors.New("processor mix must not be NaN")
		}

		cfg.mix = core.Clamp(mix, 0, 1)

		return nil
	}
}

// Processor runs the shared gain/effect/mix pipeline around an Effect.
//
// For every buffer it snapshots the dry input, applies input gain, runs
// the effect, applies output gain and blends the result with the dry
// snapshot. Processor is not safe for concurrent use.
type Processor struct {
	effect     Effect
	inputGain  float64
	outputGain float64
	mix        float64

	dry []float64
	one [1]float64
}

// NewProcessor wraps effect in the gain and mix pipeline.
func NewProcessor(effect Effect, opts ...ProcessorOption) (*Processor, error) {
	if effect == nil {
		return nil, errors.New("processor effect must not be nil")
	}

	cfg := defaultProcessorConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Processor{
		effect:     effect,
		inputGain:  cfg.inputGain,
		outputGain: cfg.outputGain,
		mix:        cfg.mix,
	}, nil
}

// InputGain returns the linear input gain.
func (p *Processor) InputGain() float64 { return p.inputGain }

// OutputGain returns the linear output gain.
func (p *Processor) OutputGain() float64 { return p.outputGain }

// Mix returns the clamped wet/dry balance.
func (p *Processor) Mix() float64 { return p.mix }

// ProcessInPlace runs the full pipeline over buf.
func (p *Processor) ProcessInPlace(buf []float64) {
	if len(buf) == 0 {
		return
	}

	p.dry = core.Snapshot(p.dry, buf)

	if p.inputGain != 1 {
		vecmath.ScaleBlock(buf, buf, p.inputGain)
	}

	p.effect.Transform(buf)

	if p.outputGain != 1 {
		vecmath.ScaleBlock(buf, buf, p.outputGain)
	}

	p.blend(buf)
}

// ProcessSample runs the pipeline for one sample.
func (p *Processor) ProcessSample(x float64) float64 {
	p.one[0] = x
	p.ProcessInPlace(p.one[:])

	return p.one[0]
}

// Reset clears the effect state when the effect carries any.
func (p *Processor) Reset() {
	if r, ok := p.effect.(resetter); ok {
		r.Reset()
	}
}

func (p *Processor) blend(buf []float64) {
	switch p.mix {
	case 1:
		return
	case 0:
		copy(buf, p.dry)
		return
	}

	vecmath.ScaleBlock(buf, buf, p.mix)
	vecmath.ScaleBlock(p.dry, p.dry, 1-p.mix)
	vecmath.AddBlockInPlace(buf, p.dry[:len(buf)])
}
