// Package interp provides fractional interpolation primitives for
// streaming resampling.
//
// [LagrangeInterpolator] selects between order 1 (2-point linear) and
// order 3 (4-point cubic, via [Hermite4]) at construction time.
package interp
