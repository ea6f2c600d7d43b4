//go:build fastmath

package resample

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// fastPow computes base**exp using the identity base**exp = e^(exp*ln(base)),
// evaluated with algo-approx's fast transcendentals.
func fastPow(base, exp float64) float64 {
	if base <= 0 {
		return math.Pow(base, exp)
	}
	return approx.FastExp(exp * approx.FastLog(base))
}

// fastSqrt computes sqrt(x) using a fast approximation.
func fastSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
