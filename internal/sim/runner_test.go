package sim

import (
	"fmt"
	"math"
	"testing"
)

// decaySystem integrates dx/dt = -x with semi-implicit stepping.
type decaySystem struct {
	x0, x, t float64
	limit    float64
}

func (d *decaySystem) Step(dt float64) {
	d.x += -d.x * dt
	d.t += dt
}

func (d *decaySystem) Reset() {
	d.x = d.x0
	d.t = 0
}

func (d *decaySystem) Finished() bool {
	return d.limit > 0 && d.t >= d.limit
}

func (d *decaySystem) Params() map[string]float64 {
	return map[string]float64{"x0": d.x0}
}

func (d *decaySystem) SetParam(name string, value float64) error {
	if name != "x0" {
		return fmt.Errorf("unknown param: %s", name)
	}
	d.x0 = value
	return nil
}

func TestRunnerLifecycle(t *testing.T) {
	sys := &decaySystem{x0: 1.0, x: 1.0}
	r := NewRunner(sys)

	if r.Status() != StatusIdle {
		t.Fatalf("expected idle, got %v", r.Status())
	}

	// stepping while idle is a no-op
	r.Step(1000)
	if sys.x != 1.0 || sys.t != 0 {
		t.Error("step while idle mutated state")
	}

	r.Start()
	if r.Status() != StatusRunning {
		t.Fatalf("expected running, got %v", r.Status())
	}

	r.Step(1000) // first frame: dt 0
	if sys.x != 1.0 {
		t.Errorf("first frame should integrate zero delta, x = %f", sys.x)
	}

	r.Step(1100) // 0.1 s
	expected := 1.0 - 1.0*0.1
	if math.Abs(sys.x-expected) > 1e-12 {
		t.Errorf("expected x %f, got %f", expected, sys.x)
	}

	r.Pause()
	if r.Status() != StatusIdle {
		t.Errorf("expected idle after pause, got %v", r.Status())
	}

	// resume much later: the pause gap must not be integrated
	r.Start()
	r.Step(60000)
	if math.Abs(sys.x-expected) > 1e-12 {
		t.Errorf("resume integrated the pause gap, x = %f", sys.x)
	}
}

func TestRunnerCompletion(t *testing.T) {
	sys := &decaySystem{x0: 1.0, x: 1.0, limit: 0.05}
	r := NewRunner(sys)

	r.Start()
	r.Step(0)
	r.Step(100) // 0.1 s >= limit
	if r.Status() != StatusCompleted {
		t.Fatalf("expected completed, got %v", r.Status())
	}

	// further steps do nothing
	x := sys.x
	r.Step(200)
	if sys.x != x {
		t.Error("step after completion mutated state")
	}

	// starting a completed run restarts it
	r.Start()
	if r.Status() != StatusRunning {
		t.Errorf("expected running after restart, got %v", r.Status())
	}
	if sys.x != 1.0 || sys.t != 0 {
		t.Error("restart did not reset state")
	}
}

func TestRunnerResetIdempotent(t *testing.T) {
	sys := &decaySystem{x0: 2.0, x: 2.0}
	r := NewRunner(sys)

	r.Start()
	r.Step(0)
	r.Step(50)

	r.Reset()
	first := *sys
	r.Reset()
	if *sys != first {
		t.Errorf("second reset diverged: %+v vs %+v", *sys, first)
	}
	if r.Status() != StatusIdle || r.Elapsed() != 0 {
		t.Error("reset must return to idle with zero elapsed")
	}
}

func TestRunnerSetParamResets(t *testing.T) {
	sys := &decaySystem{x0: 1.0, x: 1.0}
	r := NewRunner(sys)

	r.Start()
	r.Step(0)
	r.Step(500)

	if err := r.SetParam("x0", 3.0); err != nil {
		t.Fatalf("set param failed: %v", err)
	}
	if r.Status() != StatusIdle {
		t.Error("parameter change must pause the demo")
	}
	if sys.x != 3.0 || sys.t != 0 {
		t.Errorf("parameter change must reinitialize state, got x=%f t=%f", sys.x, sys.t)
	}

	if err := r.SetParam("bogus", 1.0); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestRunnerRequestNext(t *testing.T) {
	sys := &decaySystem{x0: 1.0, x: 1.0, limit: 0.05}
	r := NewRunner(sys)

	calls := 0
	r.RequestNext = func() { calls++ }

	r.Start()
	if calls != 1 {
		t.Fatalf("expected frame request on start, got %d", calls)
	}

	r.Step(0)
	if calls != 2 {
		t.Errorf("expected frame request after running step, got %d", calls)
	}

	r.Step(100) // completes
	if calls != 2 {
		t.Errorf("no frame request after completion, got %d", calls)
	}

	r.Pause()
	r.Step(200)
	if calls != 2 {
		t.Errorf("no frame request while paused, got %d", calls)
	}
}

type countingObserver struct {
	times []float64
}

func (c *countingObserver) OnStep(t float64) { c.times = append(c.times, t) }

func TestRunnerObservers(t *testing.T) {
	sys := &decaySystem{x0: 1.0, x: 1.0}
	r := NewRunner(sys)

	obs := &countingObserver{}
	r.AddObserver(obs)

	r.Start()
	r.Step(0)
	r.Step(16)
	r.Step(32)

	if len(obs.times) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(obs.times))
	}
	for i := 1; i < len(obs.times); i++ {
		if obs.times[i] < obs.times[i-1] {
			t.Error("observer times must be monotone")
		}
	}
}

func TestRunnerStepDriverLoop(t *testing.T) {
	// headless frame loop built on the RequestNext hook
	sys := &decaySystem{x0: 1.0, x: 1.0, limit: 1.0}
	r := NewRunner(sys)

	pending := false
	r.RequestNext = func() { pending = true }

	r.Start()
	ts := 0.0
	frames := 0
	for pending {
		pending = false
		r.Step(ts)
		ts += 16.0
		frames++
		if frames > 10000 {
			t.Fatal("frame loop did not terminate")
		}
	}

	if r.Status() != StatusCompleted {
		t.Errorf("expected completed, got %v", r.Status())
	}
	if math.Abs(sys.t-1.0) > 0.02 {
		t.Errorf("expected ~1.0 s simulated, got %f", sys.t)
	}
}
