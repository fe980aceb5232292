package effects

import (
	"fmt"

	"github.com/cwbudde/chst/dsp/core"
)

// Clipper is a waveshaping clipper followed by a one-pole smoother.
//
// Each gained input sample is shaped by the selected curve and blended
// with the previous output: y = alpha*yPrev + (1-alpha)*curve(x). The
// smoother state survives across ProcessInPlace calls until Reset.
type Clipper struct {
	*Processor

	stage *shaperStage
}

// shaperStage is the Effect run by a Clipper's Processor.
type shaperStage struct {
	curve Curve
	fn    func(float64) float64
	alpha float64
	yPrev float64
}

func (s *shaperStage) Transform(buf []float64) {
	alpha := s.alpha
	beta := 1 - alpha
	y := s.yPrev

	for i, x := range buf {
		y = alpha*y + beta*s.fn(x)
		buf[i] = y
	}

	s.yPrev = y
}

func (s *shaperStage) Reset() {
	s.yPrev = 0
}

// NewClipper creates a clipper using curve and smoothing coefficient alpha
// in [0, 1]. An alpha of 0 disables smoothing.
func NewClipper(curve Curve, alpha float64, opts ...ProcessorOption) (*Clipper, error) {
	fn := curve.Func()
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurve, curve)
	}

	if alpha < 0 || alpha > 1 || !core.IsFinite(alpha) {
		return nil, fmt.Errorf("clipper alpha must be in [0, 1]: %f", alpha)
	}

	stage := &shaperStage{curve: curve, fn: fn, alpha: alpha}

	p, err := NewProcessor(stage, opts...)
	if err != nil {
		return nil, err
	}

	return &Clipper{Processor: p, stage: stage}, nil
}

// Curve returns the selected waveshaper curve.
func (c *Clipper) Curve() Curve { return c.stage.curve }

// Alpha returns the smoothing coefficient.
func (c *Clipper) Alpha() float64 { return c.stage.alpha }
