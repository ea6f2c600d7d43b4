package resample

import (
	"errors"
	"math"
	"testing"
)

func TestRatioFromFloatRational(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		wantNumer int
		wantDenom int
	}{
		{name: "two", x: 2.0, wantNumer: 2, wantDenom: 1},
		{name: "half", x: 0.5, wantNumer: 1, wantDenom: 2},
		{name: "unity", x: 1.0, wantNumer: 1, wantDenom: 1},
		{name: "three quarters", x: 0.75, wantNumer: 3, wantDenom: 4},
		{name: "cd to dat", x: 48000.0 / 44100.0, wantNumer: 160, wantDenom: 147},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := RatioFromFloat(tt.x)
			if err != nil {
				t.Fatalf("RatioFromFloat(%v): %v", tt.x, err)
			}
			if !r.IsRational() {
				t.Fatalf("RatioFromFloat(%v): got float form, want rational", tt.x)
			}
			if r.Numerator() != tt.wantNumer || r.Denominator() != tt.wantDenom {
				t.Fatalf("RatioFromFloat(%v) = %d/%d, want %d/%d", tt.x, r.Numerator(), r.Denominator(), tt.wantNumer, tt.wantDenom)
			}
			if math.Abs(r.AsFloat()-tt.x) > 1e-9 {
				t.Fatalf("AsFloat() = %v, want %v", r.AsFloat(), tt.x)
			}
		})
	}
}

func TestRatioFromFloatIrrational(t *testing.T) {
	// pi/4 (~0.785) is irrational, but its continued-fraction convergent
	// 25732/32763 lies within defaultApproxPrecision of it and satisfies the
	// rational support predicate, so the rational form is returned.
	x := math.Pi / 4
	r, err := RatioFromFloat(x)
	if err != nil {
		t.Fatalf("RatioFromFloat(%v): %v", x, err)
	}
	if !r.IsRational() || r.Numerator() != 25732 || r.Denominator() != 32763 {
		t.Fatalf("RatioFromFloat(%v) = %d/%d (rational=%v), want rational 25732/32763", x, r.Numerator(), r.Denominator(), r.IsRational())
	}
	if math.Abs(r.AsFloat()-x) >= defaultApproxPrecision {
		t.Fatalf("AsFloat() = %v, want within %v of %v", r.AsFloat(), defaultApproxPrecision, x)
	}
}

func TestRatioFromFloatOutOfRange(t *testing.T) {
	for _, x := range []float64{0, -1, 1.0 / 17.0, 17.0, math.NaN(), math.Inf(1)} {
		if _, err := RatioFromFloat(x); !errors.Is(err, ErrUnsupportedRatio) {
			t.Fatalf("RatioFromFloat(%v): err = %v, want ErrUnsupportedRatio", x, err)
		}
	}
}

func TestRatioFromIntegers(t *testing.T) {
	r, err := RatioFromIntegers(4, 2)
	if err != nil {
		t.Fatalf("RatioFromIntegers(4, 2): %v", err)
	}
	if r.Numerator() != 2 || r.Denominator() != 1 {
		t.Fatalf("RatioFromIntegers(4, 2) = %d/%d, want reduced 2/1", r.Numerator(), r.Denominator())
	}
}

func TestRatioFromIntegersInvalid(t *testing.T) {
	tests := []struct {
		name string
		p, q int
		want error
	}{
		{name: "zero numerator", p: 0, q: 1, want: ErrInvalidParam},
		{name: "mixed sign", p: 1, q: -1, want: ErrInvalidParam},
		{name: "far outside window", p: 100, q: 1, want: ErrUnsupportedRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RatioFromIntegers(tt.p, tt.q); !errors.Is(err, tt.want) {
				t.Fatalf("RatioFromIntegers(%d, %d): err = %v, want %v", tt.p, tt.q, err, tt.want)
			}
		})
	}
}

func TestRationalSupportedCeilBound(t *testing.T) {
	// 17/1 has ceil(r) = 17 > maxRationalCeil, must be rejected.
	if rationalSupported(17, 1) {
		t.Fatalf("rationalSupported(17, 1) = true, want false")
	}
	// 1/17 has ceil(1/r) = 17 > maxRationalCeil, must be rejected.
	if rationalSupported(1, 17) {
		t.Fatalf("rationalSupported(1, 17) = true, want false")
	}
	if !rationalSupported(16, 1) {
		t.Fatalf("rationalSupported(16, 1) = false, want true")
	}
}
