package srcmetrics

import (
	"math"
	"testing"

	"github.com/kvasir-audio/gosrc/dsp/resample"
)

func newTestManager(t *testing.T) *resample.SincManager {
	t.Helper()
	ratio, err := resample.RatioFromFloat(1.0)
	if err != nil {
		t.Fatalf("RatioFromFloat: %v", err)
	}
	mgr, err := resample.New(ratio, 80, 64, 0.2)
	if err != nil {
		t.Fatalf("resample.New: %v", err)
	}
	return mgr
}

func TestDCGainNearUnity(t *testing.T) {
	mgr := newTestManager(t)
	gain := DCGain(mgr)
	if math.Abs(gain-1.0) > 0.05 {
		t.Fatalf("DCGain = %v, want close to 1.0", gain)
	}
}

func TestToneAttenuationRejectsBadInput(t *testing.T) {
	mgr := newTestManager(t)
	if _, err := ToneAttenuation(mgr, 1000, 0, 256); err == nil {
		t.Fatalf("ToneAttenuation with sampleRate=0: expected error")
	}
	if _, err := ToneAttenuation(mgr, 1000, 44100, 0); err == nil {
		t.Fatalf("ToneAttenuation with n=0: expected error")
	}
}

func TestToneAttenuationStopbandIsAttenuated(t *testing.T) {
	mgr := newTestManager(t)

	// A tone placed well inside the filter's pass band should show far
	// less attenuation (relative to the output's spectral peak) than one
	// placed deep in the stop band, since mgr was designed for 80dB of
	// stop-band rejection.
	passBandDB, err := ToneAttenuation(mgr, 1000, 44100, 4096)
	if err != nil {
		t.Fatalf("ToneAttenuation(pass band): %v", err)
	}
	stopBandDB, err := ToneAttenuation(mgr, 20000, 44100, 4096)
	if err != nil {
		t.Fatalf("ToneAttenuation(stop band): %v", err)
	}

	if stopBandDB >= passBandDB {
		t.Fatalf("stop-band attenuation %v dB not more negative than pass-band %v dB", stopBandDB, passBandDB)
	}
}
