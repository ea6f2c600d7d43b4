package resample

import (
	"errors"
	"math"
	"testing"
)

func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		atten float64
		want  float64
	}{
		{atten: 20, want: 0},
		{atten: 30, want: 0.5842*math.Pow(30-21, 0.4) + 0.07886*(30-21)},
		{atten: 100, want: 0.1102 * (100 - 8.7)},
	}

	for _, tt := range tests {
		got, err := KaiserBeta(tt.atten)
		if err != nil {
			t.Fatalf("KaiserBeta(%v): %v", tt.atten, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("KaiserBeta(%v) = %v, want %v", tt.atten, got, tt.want)
		}
	}
}

func TestKaiserBetaOutOfRange(t *testing.T) {
	for _, atten := range []float64{11, 181, math.NaN()} {
		if _, err := KaiserBeta(atten); !errors.Is(err, ErrInvalidParam) {
			t.Fatalf("KaiserBeta(%v): err = %v, want ErrInvalidParam", atten, err)
		}
	}
}

func TestBesselI0AtZero(t *testing.T) {
	got := besselI0(0)
	if math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("besselI0(0) = %v, want 1", got)
	}
}

func TestBesselI0Monotonic(t *testing.T) {
	prev := besselI0(0)
	for x := 0.5; x <= 10; x += 0.5 {
		v := besselI0(x)
		if v <= prev {
			t.Fatalf("besselI0(%v) = %v, not increasing from %v", x, v, prev)
		}
		prev = v
	}
}

func TestGenerateTableShapeAndSentinel(t *testing.T) {
	quan, order := 32, 64
	beta, err := KaiserBeta(60)
	if err != nil {
		t.Fatalf("KaiserBeta: %v", err)
	}
	cutoff := Cutoff(1.0, 0.2)

	table, err := GenerateTable(quan, order, beta, cutoff)
	if err != nil {
		t.Fatalf("GenerateTable: %v", err)
	}

	wantLen := order*quan/2 + 1
	if len(table) != wantLen {
		t.Fatalf("len(table) = %d, want %d", len(table), wantLen)
	}
	if table[len(table)-1] != 0.0 {
		t.Fatalf("table[last] = %v, want trailing 0.0 sentinel", table[len(table)-1])
	}
	// The peak tap, at distance 0 from center, should be the largest magnitude
	// value in the table (a windowed-sinc low-pass peaks at its center tap).
	peak := table[0]
	for _, v := range table {
		if math.Abs(v) > math.Abs(peak)+1e-12 {
			t.Fatalf("found table value %v larger in magnitude than center tap %v", v, peak)
		}
	}
}

func TestGenerateTableValidation(t *testing.T) {
	beta, _ := KaiserBeta(60)
	cutoff := Cutoff(1.0, 0.2)

	tests := []struct {
		name        string
		quan, order int
	}{
		{name: "zero quan", quan: 0, order: 64},
		{name: "huge quan", quan: 1 << 20, order: 64},
		{name: "zero order", quan: 32, order: 0},
		{name: "huge order", quan: 32, order: 1 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateTable(tt.quan, tt.order, beta, cutoff); !errors.Is(err, ErrInvalidParam) {
				t.Fatalf("GenerateTable(%d, %d): err = %v, want ErrInvalidParam", tt.quan, tt.order, err)
			}
		})
	}
}

func TestOrderForAndTransWidthForRoundTrip(t *testing.T) {
	ratio, atten, transWidth := 1.0, 60.0, 0.1

	order, err := OrderFor(ratio, atten, transWidth)
	if err != nil {
		t.Fatalf("OrderFor: %v", err)
	}
	if order <= 0 {
		t.Fatalf("OrderFor = %d, want > 0", order)
	}

	gotWidth, err := TransWidthFor(ratio, atten, order)
	if err != nil {
		t.Fatalf("TransWidthFor: %v", err)
	}
	// order is an integer approximation of the continuous design formula, so
	// the round trip recovers trans_width only approximately.
	if math.Abs(gotWidth-transWidth) > 0.05 {
		t.Fatalf("TransWidthFor(OrderFor(...)) = %v, want close to %v", gotWidth, transWidth)
	}
}

func TestCutoff(t *testing.T) {
	got := Cutoff(1.0, 0.2)
	want := 1.0 - 0.2/2
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Cutoff(1.0, 0.2) = %v, want %v", got, want)
	}
}
