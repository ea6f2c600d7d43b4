package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	minOrder = 1
	maxOrder = 2048

	minQuan = 1
	maxQuan = 16384

	minBeta = 0.0
	maxBeta = 20.0

	minCutoff = 0.01
	maxCutoff = 1.0

	minAtten = 12.0
	maxAtten = 180.0

	minTransWidth = 0.01
	maxTransWidth = 1.0

	besselConvergence = 1e-10
	besselMaxTerms     = 32
)

// KaiserBeta derives the Kaiser window beta parameter from a target
// stop-band attenuation in dB.
func KaiserBeta(atten float64) (float64, error) {
	if err := validateAtten(atten); err != nil {
		return 0, err
	}

	switch {
	case atten > 50:
		return 0.1102 * (atten - 8.7), nil
	case atten >= 21:
		return 0.5842*fastPow(atten-21, 0.4) + 0.07886*(atten-21), nil
	default:
		return 0, nil
	}
}

// OrderFor derives the filter order from ratio, attenuation, and
// normalized transition width.
func OrderFor(ratio, atten, transWidth float64) (int, error) {
	if err := validateAtten(atten); err != nil {
		return 0, err
	}
	if err := validateTransWidth(transWidth); err != nil {
		return 0, err
	}
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0, fmt.Errorf("%w: ratio must be positive, got %v", ErrInvalidParam, ratio)
	}

	m := math.Min(ratio, 1)
	order := int(math.Ceil((atten - 8) / (2.285 * transWidth * math.Pi * m)))

	if order < minOrder || order > maxOrder {
		return 0, fmt.Errorf("%w: derived order %d outside [%d, %d]", ErrInvalidParam, order, minOrder, maxOrder)
	}

	return order, nil
}

// TransWidthFor solves the order formula for the normalized transition
// width given ratio, attenuation, and order.
func TransWidthFor(ratio, atten float64, order int) (float64, error) {
	if err := validateAtten(atten); err != nil {
		return 0, err
	}
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0, fmt.Errorf("%w: ratio must be positive, got %v", ErrInvalidParam, ratio)
	}

	m := math.Min(ratio, 1)
	tw := (atten - 8) / (2.285 * float64(order) * math.Pi * m)

	if tw < minTransWidth || tw > maxTransWidth {
		return 0, fmt.Errorf("%w: derived transition width %v outside [%v, %v]", ErrInvalidParam, tw, minTransWidth, maxTransWidth)
	}

	return tw, nil
}

// Cutoff computes the normalized cutoff frequency from ratio and
// transition width.
func Cutoff(ratio, transWidth float64) float64 {
	return math.Min(ratio, 1) * (1 - transWidth/2)
}

// GenerateTable builds the right half of a windowed-sinc impulse response,
// sampled at quan sub-sample positions per integer tap spacing, for a
// filter of the given order, Kaiser beta, and normalized cutoff. The
// returned table has length floor(order*quan/2)+1, with a trailing 0.0
// sentinel for out-of-range interpolation lookups.
func GenerateTable(quan, order int, beta, cutoff float64) ([]float64, error) {
	if err := validateQuan(quan); err != nil {
		return nil, err
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateBeta(beta); err != nil {
		return nil, err
	}
	if err := validateCutoff(cutoff); err != nil {
		return nil, err
	}

	n := order*quan/2 + 1
	sincVals := make([]float64, n-1)
	winVals := make([]float64, n-1)
	half := float64(order) / 2

	for i := range sincVals {
		pos := float64(i) / float64(quan)
		sincVals[i] = sincC(pos, cutoff)
		winVals[i] = kaiserWindow(pos, half, beta)
	}

	vecmath.MulBlockInPlace(sincVals, winVals)

	h := make([]float64, n)
	copy(h, sincVals)
	h[n-1] = 0.0

	return h, nil
}

// sincC is the cutoff-scaled sinc with a removable singularity at x=0.
func sincC(x, cutoff float64) float64 {
	if x != 0 {
		pix := math.Pi * x
		return math.Sin(pix*cutoff) / pix
	}
	return cutoff
}

// kaiserWindow evaluates the Kaiser window at distance x from center, for
// a filter half-width of half taps.
func kaiserWindow(x, half, beta float64) float64 {
	if x < -half || x > half {
		return 0
	}
	arg := fastSqrt(math.Max(0, 1-(x/half)*(x/half)))
	return besselI0(beta*arg) / besselI0(beta)
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by power series with a per-term convergence threshold and a hard
// term cap.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	for k := 1; k < besselMaxTerms; k++ {
		v := x / (2 * float64(k))
		term *= v * v
		sum += term
		if term < besselConvergence {
			break
		}
	}

	return sum
}

func validateAtten(atten float64) error {
	if math.IsNaN(atten) || atten < minAtten || atten > maxAtten {
		return fmt.Errorf("%w: attenuation %v outside [%v, %v] dB", ErrInvalidParam, atten, minAtten, maxAtten)
	}
	return nil
}

func validateTransWidth(tw float64) error {
	if math.IsNaN(tw) || tw < minTransWidth || tw > maxTransWidth {
		return fmt.Errorf("%w: transition width %v outside [%v, %v]", ErrInvalidParam, tw, minTransWidth, maxTransWidth)
	}
	return nil
}

func validateOrder(order int) error {
	if order < minOrder || order > maxOrder {
		return fmt.Errorf("%w: order %d outside [%d, %d]", ErrInvalidParam, order, minOrder, maxOrder)
	}
	return nil
}

func validateQuan(quan int) error {
	if quan < minQuan || quan > maxQuan {
		return fmt.Errorf("%w: quan %d outside [%d, %d]", ErrInvalidParam, quan, minQuan, maxQuan)
	}
	return nil
}

func validateBeta(beta float64) error {
	if math.IsNaN(beta) || beta < minBeta || beta > maxBeta {
		return fmt.Errorf("%w: kaiser beta %v outside [%v, %v]", ErrInvalidParam, beta, minBeta, maxBeta)
	}
	return nil
}

func validateCutoff(cutoff float64) error {
	if math.IsNaN(cutoff) || cutoff < minCutoff || cutoff > maxCutoff {
		return fmt.Errorf("%w: cutoff %v outside [%v, %v]", ErrInvalidParam, cutoff, minCutoff, maxCutoff)
	}
	return nil
}
