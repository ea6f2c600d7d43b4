package resample

import "fmt"

// Builder is a fluent accumulator of optional sinc-converter parameters.
// Build resolves the accumulated fields to one of four validated
// construction modes, tried in priority order:
//
//  1. (ratio|sample rate) + quan + order + kaiser beta + cutoff  -> WithRaw
//  2. (ratio|sample rate) + quan + atten + trans width           -> New
//  3. (ratio|sample rate) + quan + atten + order                 -> WithOrder
//  4. sample rate + quan + atten + pass freq                     -> WithSampleRate
//
// Any other combination yields ErrNotEnoughParam.
type Builder struct {
	ratio    Ratio
	hasRatio bool

	oldSR, newSR  float64
	hasSampleRate bool

	quan    int
	hasQuan bool

	order    int
	hasOrder bool

	beta    float64
	hasBeta bool

	cutoff    float64
	hasCutoff bool

	atten    float64
	hasAtten bool

	transWidth    float64
	hasTransWidth bool

	passFreq    float64
	hasPassFreq bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Ratio sets the conversion ratio directly.
func (b *Builder) Ratio(r Ratio) *Builder {
	b.ratio = r
	b.hasRatio = true
	return b
}

// SampleRate sets old/new sample rates, from which the ratio is derived.
func (b *Builder) SampleRate(oldSR, newSR float64) *Builder {
	b.oldSR, b.newSR = oldSR, newSR
	b.hasSampleRate = true
	return b
}

// Quan sets the filter table's sub-sample quantization.
func (b *Builder) Quan(n int) *Builder {
	b.quan = n
	b.hasQuan = true
	return b
}

// Order sets an explicit filter order.
func (b *Builder) Order(n int) *Builder {
	b.order = n
	b.hasOrder = true
	return b
}

// KaiserBeta sets an explicit Kaiser window beta.
func (b *Builder) KaiserBeta(beta float64) *Builder {
	b.beta = beta
	b.hasBeta = true
	return b
}

// Cutoff sets an explicit normalized cutoff frequency.
func (b *Builder) Cutoff(c float64) *Builder {
	b.cutoff = c
	b.hasCutoff = true
	return b
}

// Attenuation sets the target stop-band attenuation in dB.
func (b *Builder) Attenuation(atten float64) *Builder {
	b.atten = atten
	b.hasAtten = true
	return b
}

// TransWidth sets an explicit normalized transition width.
func (b *Builder) TransWidth(w float64) *Builder {
	b.transWidth = w
	b.hasTransWidth = true
	return b
}

// PassWidth sets the transition width as 1 minus the pass-band width.
func (b *Builder) PassWidth(w float64) *Builder {
	return b.TransWidth(1 - w)
}

// PassFreq sets the desired pass-band frequency, used with SampleRate to
// derive a transition width.
func (b *Builder) PassFreq(f float64) *Builder {
	b.passFreq = f
	b.hasPassFreq = true
	return b
}

// Build resolves the accumulated parameters to a SincManager.
func (b *Builder) Build() (*SincManager, error) {
	haveRatio := b.hasRatio || b.hasSampleRate

	switch {
	case haveRatio && b.hasQuan && b.hasOrder && b.hasBeta && b.hasCutoff:
		ratio, err := b.resolveRatio()
		if err != nil {
			return nil, err
		}
		return WithRaw(ratio, b.quan, b.order, b.beta, b.cutoff)

	case haveRatio && b.hasQuan && b.hasAtten && b.hasTransWidth:
		ratio, err := b.resolveRatio()
		if err != nil {
			return nil, err
		}
		return New(ratio, b.atten, b.quan, b.transWidth)

	case haveRatio && b.hasQuan && b.hasAtten && b.hasOrder:
		ratio, err := b.resolveRatio()
		if err != nil {
			return nil, err
		}
		return WithOrder(ratio, b.atten, b.quan, b.order)

	case b.hasSampleRate && b.hasQuan && b.hasAtten && b.hasPassFreq:
		return WithSampleRate(b.oldSR, b.newSR, b.atten, b.quan, b.passFreq)

	default:
		return nil, fmt.Errorf("%w: builder configuration does not resolve to a known construction mode", ErrNotEnoughParam)
	}
}

func (b *Builder) resolveRatio() (Ratio, error) {
	if b.hasRatio {
		return b.ratio, nil
	}
	if b.hasSampleRate {
		return RatioFromFloat(b.newSR / b.oldSR)
	}
	return Ratio{}, fmt.Errorf("%w: missing ratio or sample rate", ErrNotEnoughParam)
}
