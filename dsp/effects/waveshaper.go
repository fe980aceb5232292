package effects

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownCurve is returned when a waveshaper curve identifier is not recognized.
var ErrUnknownCurve = errors.New("effects: unknown clipper curve")

// Curve selects the waveshaping transfer function of a Clipper.
type Curve int

const (
	// CurveHard clamps to [-1, 1].
	CurveHard Curve = iota
	// CurveTanh applies the hyperbolic tangent.
	CurveTanh
	// CurveAtan applies the arctangent. Output spans (-pi/2, pi/2).
	CurveAtan
	// CurveCubic applies the cubic soft clipper x - x^3/3.
	CurveCubic
	// CurveSmooth applies the rational curve x / (1 + |x|).
	CurveSmooth
)

var curveNames = [...]string{
	CurveHard:   "hard",
	CurveTanh:   "tanh",
	CurveAtan:   "atan",
	CurveCubic:  "cubic",
	CurveSmooth: "smooth",
}

var curveFuncs = [...]func(float64) float64{
	CurveHard:   HardClip,
	CurveTanh:   TanhClip,
	CurveAtan:   AtanClip,
	CurveCubic:  CubicClip,
	CurveSmooth: SmoothClip,
}

// Curves returns every supported curve in declaration order.
func Curves() []Curve {
	return []Curve{CurveHard, CurveTanh, CurveAtan, CurveCubic, CurveSmooth}
}

// ParseCurve maps a case-insensitive curve name to a Curve.
func ParseCurve(name string) (Curve, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range curveNames {
		if n == key {
			return Curve(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

func (c Curve) valid() bool {
	return c >= CurveHard && c <= CurveSmooth
}

func (c Curve) String() string {
	if !c.valid() {
		return fmt.Sprintf("Curve(%d)", int(c))
	}

	return curveNames[c]
}

// Func returns the transfer function for c, or nil when c is not a known curve.
func (c Curve) Func() func(float64) float64 {
	if !c.valid() {
		return nil
	}

	return curveFuncs[c]
}

// HardClip clamps x to [-1, 1].
func HardClip(x float64) float64 {
	if x > 1 {
		return 1
	}

	if x < -1 {
		return -1
	}

	return x
}

// TanhClip returns tanh(x).
func TanhClip(x float64) float64 {
	return math.Tanh(x)
}

// AtanClip returns atan(x). The result is not rescaled to [-1, 1].
func AtanClip(x float64) float64 {
	return math.Atan(x)
}

// CubicClip saturates at ±2/3 outside [-1, 1] and follows x - x³/3 inside.
func CubicClip(x float64) float64 {
	switch {
	case x > 1:
		return 2.0 / 3.0
	case x < -1:
		return -2.0 / 3.0
	default:
		return x - x*x*x/3
	}
}

// SmoothClip returns x / (1 + |x|).
func SmoothClip(x float64) float64 {
	return x / (1 + math.Abs(x))
}
