//go:build !fastmath

package resample

import "math"

// fastPow computes base**exp using standard library math.
func fastPow(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// fastSqrt computes sqrt(x) using standard library math.
func fastSqrt(x float64) float64 {
	return math.Sqrt(x)
}
