package physics

import (
	"math"
	"testing"
)

func TestInclineAcceleration(t *testing.T) {
	in := NewIncline()
	in.AngleDeg = 30
	in.Mass = 5
	in.Friction = 0.2
	in.Reset()

	theta := 30.0 * math.Pi / 180.0
	expected := in.Gravity * (math.Sin(theta) - 0.2*math.Cos(theta))

	if math.Abs(in.Accel()-expected) > 1e-3 {
		t.Errorf("expected accel %.3f, got %.3f", expected, in.Accel())
	}
}

func TestInclineFrictionDominates(t *testing.T) {
	in := NewIncline()
	in.AngleDeg = 10
	in.Friction = 0.9
	in.Reset()

	if in.Accel() != 0 {
		t.Errorf("expected zero accel when friction dominates, got %f", in.Accel())
	}

	// the block must not creep backwards
	for i := 0; i < 100; i++ {
		in.Step(0.01)
	}
	if in.Position() != 0 {
		t.Errorf("expected block at rest, got position %f", in.Position())
	}
}

func TestInclineCompletesAtTrackEnd(t *testing.T) {
	in := NewIncline()
	in.TrackLength = 5.0
	in.Friction = 0.0
	in.Reset()

	steps := 0
	for !in.Finished() {
		in.Step(0.01)
		steps++
		if steps > 100000 {
			t.Fatal("incline never completed")
		}
	}

	if in.Position() != in.TrackLength {
		t.Errorf("expected position clamped to %f, got %f", in.TrackLength, in.Position())
	}
	if in.Velocity() != 0 {
		t.Errorf("expected motion halted at track end, got velocity %f", in.Velocity())
	}

	// stepping a completed run is inert
	in.Step(0.01)
	if in.Position() != in.TrackLength {
		t.Error("step after completion moved the block")
	}
}

func TestInclineResetIdempotent(t *testing.T) {
	in := NewIncline()
	in.Step(0.5)
	in.Step(0.5)

	in.Reset()
	first := *in
	in.Reset()
	if *in != first {
		t.Error("second reset diverged from first")
	}
}
