package clock

import (
	"math"
	"testing"
)

func TestFirstTickIsZero(t *testing.T) {
	c := New()

	dt := c.Tick(12345.0)
	if dt != 0 {
		t.Errorf("expected first tick to return 0, got %f", dt)
	}
	if c.Elapsed() != 0 {
		t.Errorf("expected zero elapsed after first tick, got %f", c.Elapsed())
	}
}

func TestTickDelta(t *testing.T) {
	c := New()
	c.Tick(1000.0)

	dt := c.Tick(1016.0)
	if math.Abs(dt-0.016) > 1e-12 {
		t.Errorf("expected dt 0.016, got %f", dt)
	}

	dt = c.Tick(1048.0)
	if math.Abs(dt-0.032) > 1e-12 {
		t.Errorf("expected dt 0.032, got %f", dt)
	}

	if math.Abs(c.Elapsed()-0.048) > 1e-12 {
		t.Errorf("expected elapsed 0.048, got %f", c.Elapsed())
	}
}

func TestTickClampsLargeDelta(t *testing.T) {
	c := New()
	c.Tick(0)

	// tab suspended for 5 seconds
	dt := c.Tick(5000.0)
	if dt != DefaultMaxDelta {
		t.Errorf("expected clamp to %f, got %f", DefaultMaxDelta, dt)
	}
}

func TestTickNegativeDelta(t *testing.T) {
	c := New()
	c.Tick(1000.0)

	dt := c.Tick(900.0)
	if dt != 0 {
		t.Errorf("expected 0 for backwards timestamp, got %f", dt)
	}
}

func TestRebaseForgetsBaseline(t *testing.T) {
	c := New()
	c.Tick(1000.0)
	c.Tick(1016.0)

	c.Rebase()

	// a much later timestamp must not produce a delta against the
	// pre-rebase baseline
	dt := c.Tick(90000.0)
	if dt != 0 {
		t.Errorf("expected 0 after rebase, got %f", dt)
	}
	if math.Abs(c.Elapsed()-0.016) > 1e-12 {
		t.Errorf("rebase should keep elapsed, got %f", c.Elapsed())
	}
}

func TestResetZeroesElapsed(t *testing.T) {
	c := New()
	c.Tick(0)
	c.Tick(100.0)

	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("expected zero elapsed after reset, got %f", c.Elapsed())
	}
	if dt := c.Tick(500.0); dt != 0 {
		t.Errorf("expected first tick after reset to be 0, got %f", dt)
	}
}

func TestSetMaxDelta(t *testing.T) {
	c := New()
	c.SetMaxDelta(0.02)
	c.Tick(0)

	if dt := c.Tick(100.0); dt != 0.02 {
		t.Errorf("expected clamp to 0.02, got %f", dt)
	}

	c.SetMaxDelta(-1) // ignored
	c.Tick(200.0)
	if dt := c.Tick(1000.0); dt != 0.02 {
		t.Errorf("expected clamp unchanged, got %f", dt)
	}
}
