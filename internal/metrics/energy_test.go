package metrics

import (
	"testing"

	"github.com/lmoreno/physlab/internal/physics"
)

func TestPendulumEnergySampling(t *testing.T) {
	p := physics.NewPendulum()
	m := NewPendulumEnergy(p)

	m.OnStep(0)
	if m.Value() <= 0 {
		t.Error("expected positive energy for a displaced pendulum")
	}
	if m.Drift() != 0 {
		t.Errorf("expected zero drift at first sample, got %f", m.Drift())
	}

	for i := 0; i < 2000; i++ {
		p.Step(0.005)
		m.OnStep(float64(i) * 0.005)
	}

	// unconditional damping bleeds energy every step
	if m.Drift() <= 0 {
		t.Errorf("expected positive drift under damping, got %f", m.Drift())
	}
}

func TestPendulumEnergyReset(t *testing.T) {
	p := physics.NewPendulum()
	m := NewPendulumEnergy(p)

	m.OnStep(0)
	if m.Value() == 0 {
		t.Fatal("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 || m.Drift() != 0 {
		t.Error("expected zeroed metric after reset")
	}
}

func TestMomentumTracksPopulation(t *testing.T) {
	p := physics.NewParticles(physics.DefaultBodies)
	m := NewMomentum(p)

	m.OnStep(0)
	if m.Value() < 0 {
		t.Error("momentum magnitude cannot be negative")
	}
	if m.Peak() != m.Value() {
		t.Error("peak must equal value after one sample")
	}

	m.Reset()
	if m.Value() != 0 || m.Peak() != 0 {
		t.Error("expected zeroed metric after reset")
	}
}
