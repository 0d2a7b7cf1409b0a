package integrators

import (
	"math"
	"testing"
)

func TestSymplecticEulerFreeFall(t *testing.T) {
	pos, vel := 0.0, 0.0
	dt := 0.001

	for i := 0; i < 1000; i++ {
		pos, vel = SymplecticEuler(pos, vel, -9.81, dt)
	}

	// after 1s: v = -9.81, x ~ -4.905
	if math.Abs(vel-(-9.81)) > 1e-9 {
		t.Errorf("expected velocity -9.81, got %f", vel)
	}
	if math.Abs(pos-(-4.905)) > 0.01 {
		t.Errorf("expected position ~-4.905, got %f", pos)
	}
}

func TestSymplecticEulerVelocityFirst(t *testing.T) {
	// the position update must see the new velocity
	pos, vel := SymplecticEuler(0, 0, 10, 0.1)
	if vel != 1.0 {
		t.Fatalf("expected velocity 1.0, got %f", vel)
	}
	if pos != 0.1 {
		t.Errorf("position must use the updated velocity: got %f, want 0.1", pos)
	}
}

func TestSymplecticEulerZeroDt(t *testing.T) {
	pos, vel := SymplecticEuler(3, 4, 100, 0)
	if pos != 3 || vel != 4 {
		t.Error("dt=0 must not change state")
	}
}

func TestSymplecticEulerOscillatorBounded(t *testing.T) {
	// harmonic oscillator x'' = -x must stay bounded for many periods
	pos, vel := 1.0, 0.0
	dt := 0.01

	for i := 0; i < 100000; i++ {
		pos, vel = SymplecticEuler(pos, vel, -pos, dt)
		if math.Abs(pos) > 1.1 {
			t.Fatalf("oscillator diverged to %f at step %d", pos, i)
		}
	}
}
