package physics

import (
	"math"
	"testing"
)

func TestWaveSpatialPeriod(t *testing.T) {
	w := NewWave()
	w.Wavelength = 2.0

	// displacement repeats every wavelength
	if math.Abs(w.Sample(0.3)-w.Sample(0.3+2.0)) > 1e-9 {
		t.Error("wave must be periodic in space with period lambda")
	}
}

func TestWaveTemporalPeriod(t *testing.T) {
	w := NewWave()
	w.Frequency = 0.5 // period 2 s

	y0 := w.Sample(0.7)
	w.Step(2.0)
	if math.Abs(w.Sample(0.7)-y0) > 1e-9 {
		t.Error("wave must be periodic in time with period 1/f")
	}
}

func TestWaveAmplitudeBound(t *testing.T) {
	w := NewWave()
	w.Amplitude = 3.0
	w.Step(0.37)

	for _, y := range w.Profile(200, 10.0) {
		if math.Abs(y) > 3.0+1e-12 {
			t.Errorf("sample %f exceeds amplitude", y)
		}
	}
}

func TestWaveProfileDegenerate(t *testing.T) {
	w := NewWave()

	if got := w.Profile(1, 10.0); got != nil {
		t.Errorf("expected nil profile for n=1, got %v", got)
	}
	if got := w.Profile(0, 10.0); got != nil {
		t.Errorf("expected nil profile for n=0, got %v", got)
	}
	if got := w.Profile(2, 10.0); len(got) != 2 {
		t.Errorf("expected 2 samples, got %d", len(got))
	}
}

func TestWaveSpeed(t *testing.T) {
	w := NewWave()
	w.Wavelength = 4.0
	w.Frequency = 2.0

	if w.Speed() != 8.0 {
		t.Errorf("expected speed 8.0, got %f", w.Speed())
	}
}

func TestWaveReset(t *testing.T) {
	w := NewWave()
	w.Step(1.23)
	w.Reset()
	if w.Time() != 0 {
		t.Errorf("expected zero time after reset, got %f", w.Time())
	}
}
