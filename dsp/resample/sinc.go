package resample

import "math"

type sincState int

const (
	sincNormal sincState = iota
	sincSuspend
)

// SincConverter performs streaming polyphase/fractional-phase FIR
// interpolation using the filter table designed by its owning
// [SincManager]. Zero value is not usable; construct via
// [SincManager.Converter].
type SincConverter struct {
	rational bool
	// denom is the phase modulus and step the per-output phase increment;
	// see LinearConverter for why denom=Numerator() and step=Denominator().
	denom int
	pos   int
	step  int
	coefs []float64

	posF, stepF float64

	buf       []float64
	head      int
	halfOrder float64
	quan      int
	table     []float64

	state sincState
}

func newSincConverter(mgr *SincManager) *SincConverter {
	c := &SincConverter{
		buf:       make([]float64, mgr.order+1),
		halfOrder: float64(mgr.order) / 2,
		quan:      mgr.quan,
		table:     mgr.table,
	}

	ratio := mgr.ratio
	if ratio.IsRational() {
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

// push evicts the oldest buffered sample and appends s, in O(1), by
// rotating the ring buffer's head pointer (the same write-pointer
// wraparound technique as a circular delay line).
func (c *SincConverter) push(s float64) {
	c.buf[c.head] = s
	c.head++
	if c.head == len(c.buf) {
		c.head = 0
	}
}

// at returns the i-th oldest buffered sample (0 = oldest).
func (c *SincConverter) at(i int) float64 {
	idx := c.head + i
	if idx >= len(c.buf) {
		idx -= len(c.buf)
	}
	return c.buf[idx]
}

// interpolate convolves the buffered order+1 samples against the shared
// half-symmetric table at fractional phase phi, the current output
// instant's phase (compute-then-advance: callers advance pos after this
// returns).
func (c *SincConverter) interpolate(phi float64) float64 {
	order := len(c.buf) - 1
	last := len(c.table) - 1

	var sum float64
	for i := 0; i <= order; i++ {
		dist := float64(i) - c.halfOrder
		d := math.Abs(phi - dist)
		u := d * float64(c.quan)
		n := int(u)
		if n < last {
			h1 := c.table[n]
			h2 := c.table[n+1]
			h := h1 + (h2-h1)*(u-float64(n))
			sum += c.at(i) * h
		}
	}
	return sum
}

// NextSample draws from src as needed and returns the next interpolated
// output, or (0, false) if src has no more input available right now.
// Calling NextSample again later, once src can yield more, resumes
// exactly where the converter left off.
func (c *SincConverter) NextSample(src Source) (float64, bool) {
	for {
		switch c.state {
		case sincNormal:
			if c.rational {
				for c.pos >= c.denom {
					c.pos -= c.denom
					s, ok := src.Next()
					if !ok {
						c.state = sincSuspend
						return 0, false
					}
					c.push(s)
				}
				phi := c.coefs[c.pos]
				out := c.interpolate(phi)
				c.pos += c.step
				return out, true
			}

			for c.posF >= 1.0 {
				c.posF -= 1.0
				s, ok := src.Next()
				if !ok {
					c.state = sincSuspend
					return 0, false
				}
				c.push(s)
			}
			out := c.interpolate(c.posF)
			c.posF += c.stepF
			return out, true

		case sincSuspend:
			s, ok := src.Next()
			if !ok {
				return 0, false
			}
			c.push(s)
			c.state = sincNormal
		}
	}
}
