// Package srcmetrics measures the frequency-domain behavior of a configured
// sinc resampling filter: its DC gain, found by driving a constant
// unit-amplitude stream through a converter, and its level at a given tone,
// found by driving a sine tone through a converter and taking the FFT of
// the output.
package srcmetrics

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/kvasir-audio/gosrc/dsp/core"
	"github.com/kvasir-audio/gosrc/dsp/resample"
	"github.com/kvasir-audio/gosrc/dsp/window"
)

// DCGain drives a long run of unit-amplitude samples through a converter
// minted from mgr and returns the steady-state output level, once the
// filter's transient has decayed. A correctly normalized low-pass filter
// should pass DC with a gain close to 1.0.
func DCGain(mgr *resample.SincManager) float64 {
	conv := mgr.Converter()
	n := 4 * (mgr.Order() + 1)

	src := resample.SourceFunc(func() (float64, bool) { return 1.0, true })

	var last float64
	for i := 0; i < n; i++ {
		v, ok := conv.NextSample(src)
		if !ok {
			break
		}
		last = v
	}
	return last
}

// ToneAttenuation drives an n-sample sine tone at freq (Hz, relative to
// sampleRate) through a converter minted from mgr, windows the output with
// a Hann window to suppress spectral leakage, takes its FFT, and returns
// the tone's attenuation in dB relative to the output's peak bin. n is
// rounded up to the next power of two for the FFT.
func ToneAttenuation(mgr *resample.SincManager, freq, sampleRate float64, n int) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("srcmetrics: sample rate must be positive, got %v", sampleRate)
	}
	if n <= 0 {
		return 0, fmt.Errorf("srcmetrics: n must be positive, got %d", n)
	}

	conv := mgr.Converter()
	outRate := sampleRate * mgr.Ratio().AsFloat()

	i := 0
	src := resample.SourceFunc(func() (float64, bool) {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		i++
		return v, true
	})

	output := make([]float64, 0, n)
	for len(output) < n {
		v, ok := conv.NextSample(src)
		if !ok {
			break
		}
		output = append(output, v)
	}

	fftSize := nextPowerOf2(len(output))
	if fftSize < 2 {
		return 0, fmt.Errorf("srcmetrics: not enough output samples for an FFT")
	}

	coeffs := window.Generate(window.TypeHann, len(output))
	in := make([]complex128, fftSize)
	for idx, v := range output {
		in[idx] = complex(v*coeffs[idx], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("srcmetrics: building FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("srcmetrics: forward FFT: %w", err)
	}

	binCount := fftSize/2 + 1
	binHz := outRate / float64(fftSize)

	toneBin := clampInt(int(math.Round(freq/binHz)), 0, binCount-1)

	peak := 0.0
	for b := 0; b < binCount; b++ {
		if mag := cabs(out[b]); mag > peak {
			peak = mag
		}
	}
	if peak <= 0 {
		return math.Inf(-1), nil
	}

	toneMag := cabs(out[toneBin])

	return core.LinearToDB(toneMag / peak), nil
}

func cabs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
