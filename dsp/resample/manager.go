package resample

import (
	"fmt"
	"math"

	"github.com/kvasir-audio/gosrc/dsp/core"
)

// SincManager is an immutable plan owning a validated set of filter
// parameters and a precomputed filter table. Converters minted from it
// share the table by slice reference. Cloning is O(1).
type SincManager struct {
	ratio   Ratio
	order   int
	quan    int
	beta    float64
	cutoff  float64
	latency int
	table   []float64
}

// WithRaw builds a SincManager directly from (ratio, quan, order, beta,
// cutoff), validating ranges and the sinc-specific rational-numerator
// bound.
func WithRaw(ratio Ratio, quan, order int, beta, cutoff float64) (*SincManager, error) {
	if err := validateRatioForSinc(ratio); err != nil {
		return nil, err
	}

	table, err := GenerateTable(quan, order, beta, cutoff)
	if err != nil {
		return nil, err
	}

	latency := int(math.Round(ratio.AsFloat() * float64(order) / 2))

	return &SincManager{
		ratio:   ratio,
		order:   order,
		quan:    quan,
		beta:    beta,
		cutoff:  cutoff,
		latency: latency,
		table:   table,
	}, nil
}

// New derives (kaiser_beta, order, cutoff) from attenuation and transition
// width and builds a SincManager.
func New(ratio Ratio, atten float64, quan int, transWidth float64) (*SincManager, error) {
	beta, err := KaiserBeta(atten)
	if err != nil {
		return nil, err
	}
	order, err := OrderFor(ratio.AsFloat(), atten, transWidth)
	if err != nil {
		return nil, err
	}
	cutoff := Cutoff(ratio.AsFloat(), transWidth)

	return WithRaw(ratio, quan, order, beta, cutoff)
}

// WithOrder derives (kaiser_beta, transition width, cutoff) from
// attenuation and an explicit order and builds a SincManager.
func WithOrder(ratio Ratio, atten float64, quan, order int) (*SincManager, error) {
	beta, err := KaiserBeta(atten)
	if err != nil {
		return nil, err
	}
	transWidth, err := TransWidthFor(ratio.AsFloat(), atten, order)
	if err != nil {
		return nil, err
	}
	cutoff := Cutoff(ratio.AsFloat(), transWidth)

	return WithRaw(ratio, quan, order, beta, cutoff)
}

// WithSampleRate derives the ratio and transition width from a pair of
// sample rates, an attenuation target, and a desired pass-band frequency.
// A pass_freq that would drive the derived transition width to zero or
// below is rejected directly as ErrInvalidParam, rather than silently
// clamped and left to fail later inside filter design.
func WithSampleRate(oldSR, newSR, atten float64, quan int, passFreq float64) (*SincManager, error) {
	if oldSR <= 0 || newSR <= 0 || math.IsNaN(oldSR) || math.IsNaN(newSR) {
		return nil, fmt.Errorf("%w: sample rates must be positive, got old=%v new=%v", ErrInvalidParam, oldSR, newSR)
	}
	if math.IsNaN(passFreq) || passFreq <= 0 {
		return nil, fmt.Errorf("%w: pass_freq must be positive, got %v", ErrInvalidParam, passFreq)
	}

	minSR := math.Min(oldSR, newSR)

	rawTransWidth := (minSR - 2*passFreq) / minSR
	if rawTransWidth <= 0 {
		return nil, fmt.Errorf("%w: pass_freq %v leaves no transition band for rates %v/%v", ErrInvalidParam, passFreq, oldSR, newSR)
	}
	transWidth := core.Clamp(rawTransWidth, minTransWidth, maxTransWidth)

	ratio, err := RatioFromFloat(newSR / oldSR)
	if err != nil {
		return nil, err
	}

	return New(ratio, atten, quan, transWidth)
}

func validateRatioForSinc(ratio Ratio) error {
	r := ratio.AsFloat()
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: ratio must be finite and positive, got %v", ErrInvalidParam, r)
	}
	if r < minRatio || r > maxRatio {
		return fmt.Errorf("%w: ratio %v outside [%v, %v]", ErrUnsupportedRatio, r, minRatio, maxRatio)
	}
	if ratio.IsRational() && ratio.Numerator() > maxSincNumerator {
		return fmt.Errorf("%w: reduced numerator %d exceeds %d", ErrUnsupportedRatio, ratio.Numerator(), maxSincNumerator)
	}
	return nil
}

// Converter mints a fresh streaming converter state sharing m's filter
// table by reference.
func (m *SincManager) Converter() *SincConverter {
	return newSincConverter(m)
}

// Latency returns the number of leading output samples to discard so the
// impulse response is centered at output 0.
func (m *SincManager) Latency() int { return m.latency }

// Order returns the filter order (taps minus one).
func (m *SincManager) Order() int { return m.order }

// Quan returns the sub-sample quantization of the filter table.
func (m *SincManager) Quan() int { return m.quan }

// Ratio returns the configured conversion ratio.
func (m *SincManager) Ratio() Ratio { return m.ratio }

// KaiserBeta returns the Kaiser window beta used to build the filter table.
func (m *SincManager) KaiserBeta() float64 { return m.beta }

// Cutoff returns the normalized cutoff frequency used to build the filter
// table.
func (m *SincManager) Cutoff() float64 { return m.cutoff }

// Table returns a copy of the underlying half-symmetric filter table.
func (m *SincManager) Table() []float64 {
	out := make([]float64, len(m.table))
	copy(out, m.table)
	return out
}

// Clone returns a shallow copy sharing the filter table by reference; O(1).
func (m *SincManager) Clone() *SincManager {
	c := *m
	return &c
}
