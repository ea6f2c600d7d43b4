package resample

import (
	"fmt"
	"math"

	"github.com/kvasir-audio/gosrc/dsp/interp"
)

// maxLinearPhaseTable is the absolute upper bound on a rational ratio's
// numerator before the linear converter falls back to float phase
// tracking, avoiding unbounded coefficient-table growth.
const maxLinearPhaseTable = 16384

type linearState int

const (
	linearFirst linearState = iota
	linearNormal
	linearSuspend
)

// LinearConverter performs streaming two-tap linear interpolation between
// consecutive input samples. Zero value is not usable; construct via
// [LinearManager.Converter].
type LinearConverter struct {
	rational bool
	// denom is the phase modulus and step the per-output phase increment.
	// For a reduced ratio p/q, 1/ratio = q/p, so denom=p and step=q give
	// step/denom the exact value 1/ratio in integer arithmetic; pos_init
	// is set to denom itself so the first Normal call always performs at
	// least one warm-up pull, mirroring the float path's pos_init=1.0.
	denom int
	pos   int
	step  int
	coefs []float64

	posF, stepF float64

	lastIn [2]float64
	state  linearState
	interp *interp.LagrangeInterpolator
}

func newLinearConverter(ratio Ratio) *LinearConverter {
	c := &LinearConverter{
		state:  linearFirst,
		interp: interp.NewLagrangeInterpolator(1),
	}

	if ratio.IsRational() && ratio.Numerator() <= maxLinearPhaseTable {
		c.rational = true
		c.denom = ratio.Numerator()
		c.step = ratio.Denominator()
		c.coefs = make([]float64, c.denom)
		for i := range c.coefs {
			c.coefs[i] = float64(i) / float64(c.denom)
		}
	} else {
		c.stepF = 1.0 / ratio.AsFloat()
	}

	return c
}

// NextSample draws from src as needed and returns the next interpolated
// output, or (0, false) if src has no more input available right now.
// Calling NextSample again later, once src can yield more, resumes
// exactly where the converter left off.
func (c *LinearConverter) NextSample(src Source) (float64, bool) {
	for {
		switch c.state {
		case linearFirst:
			s, ok := src.Next()
			if !ok {
				return 0, false
			}
			c.lastIn[1] = s
			if c.rational {
				c.pos = c.denom
			} else {
				c.posF = 1.0
			}
			c.state = linearNormal

		case linearNormal:
			if c.rational {
				for c.pos >= c.denom {
					c.pos -= c.denom
					c.lastIn[0] = c.lastIn[1]
					s, ok := src.Next()
					if !ok {
						c.state = linearSuspend
						return 0, false
					}
					c.lastIn[1] = s
				}
				coef := c.coefs[c.pos]
				out := c.interp.Interpolate(c.lastIn[:], coef)
				c.pos += c.step
				return out, true
			}

			for c.posF >= 1.0 {
				c.posF -= 1.0
				c.lastIn[0] = c.lastIn[1]
				s, ok := src.Next()
				if !ok {
					c.state = linearSuspend
					return 0, false
				}
				c.lastIn[1] = s
			}
			out := c.interp.Interpolate(c.lastIn[:], c.posF)
			c.posF += c.stepF
			return out, true

		case linearSuspend:
			s, ok := src.Next()
			if !ok {
				return 0, false
			}
			c.lastIn[1] = s
			c.state = linearNormal
		}
	}
}

// LinearManager is an immutable plan for minting [LinearConverter]
// instances at a fixed ratio.
type LinearManager struct {
	ratio Ratio
}

// NewLinear validates ratio and returns a LinearManager.
func NewLinear(ratio Ratio) (*LinearManager, error) {
	r := ratio.AsFloat()
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return nil, fmt.Errorf("%w: ratio must be finite and positive, got %v", ErrInvalidParam, r)
	}
	if r < minRatio || r > maxRatio {
		return nil, fmt.Errorf("%w: ratio %v outside [%v, %v]", ErrUnsupportedRatio, r, minRatio, maxRatio)
	}
	return &LinearManager{ratio: ratio}, nil
}

// NewLinearFromFloat is a convenience wrapper that validates x as a Ratio
// before building the manager.
func NewLinearFromFloat(x float64) (*LinearManager, error) {
	ratio, err := RatioFromFloat(x)
	if err != nil {
		return nil, err
	}
	return NewLinear(ratio)
}

// Converter mints a fresh streaming converter state.
func (m *LinearManager) Converter() *LinearConverter {
	return newLinearConverter(m.ratio)
}

// Ratio returns the configured ratio.
func (m *LinearManager) Ratio() Ratio { return m.ratio }

// Clone returns a shallow copy; LinearManager holds no shared mutable
// state, so this is equivalent to a value copy.
func (m *LinearManager) Clone() *LinearManager {
	c := *m
	return &c
}
