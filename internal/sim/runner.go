package sim

import (
	"fmt"

	"github.com/lmoreno/physlab/internal/clock"
)

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// Runner owns one demo system and drives it through the
// idle -> running -> completed lifecycle. It is the single writer of
// the system's state: all mutation happens inside Step, which runs to
// completion before any reader observes the state. Not safe for
// concurrent use; the embedding frame driver calls it from one
// goroutine.
type Runner struct {
	sys       System
	clk       *clock.Clock
	status    Status
	observers []Observer

	// RequestNext is invoked after Start and after every step taken
	// while running. The embedding environment uses it to schedule the
	// next animation frame; it is never called when paused or after
	// the run completes.
	RequestNext func()
}

func NewRunner(sys System) *Runner {
	return &Runner{
		sys: sys,
		clk: clock.New(),
	}
}

// System returns the underlying demo for typed state reads.
func (r *Runner) System() System { return r.sys }

func (r *Runner) Status() Status  { return r.status }
func (r *Runner) Elapsed() float64 { return r.clk.Elapsed() }

func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// Start transitions to running. Starting from completed restarts the
// demo from its initial conditions. The clock baseline is cleared so
// the first frame integrates a zero delta.
func (r *Runner) Start() {
	switch r.status {
	case StatusRunning:
		return
	case StatusCompleted:
		r.reset()
	}
	r.clk.Rebase()
	r.status = StatusRunning
	if r.RequestNext != nil {
		r.RequestNext()
	}
}

// Pause halts stepping without touching simulation state. The clock
// baseline is cleared so resuming does not integrate the pause gap.
func (r *Runner) Pause() {
	if r.status != StatusRunning {
		return
	}
	r.status = StatusIdle
	r.clk.Rebase()
}

// Reset restores initial conditions and returns to idle. Calling it
// repeatedly is harmless: the second reset re-derives the same state.
func (r *Runner) Reset() {
	r.reset()
}

func (r *Runner) reset() {
	r.sys.Reset()
	r.clk.Reset()
	r.status = StatusIdle
	for _, o := range r.observers {
		if m, ok := o.(Metric); ok {
			m.Reset()
		}
	}
}

// Step advances the simulation by the wall-clock interval since the
// previous frame. timestampMs comes from the frame driver. A step
// taken while not running is a no-op.
func (r *Runner) Step(timestampMs float64) {
	if r.status != StatusRunning {
		return
	}

	dt := r.clk.Tick(timestampMs)
	r.sys.Step(dt)

	if r.sys.Finished() {
		r.status = StatusCompleted
	}

	for _, o := range r.observers {
		o.OnStep(r.clk.Elapsed())
	}

	if r.status == StatusRunning && r.RequestNext != nil {
		r.RequestNext()
	}
}

// SetParam forwards a parameter change to the system and applies the
// reset policy: any edit while running or completed drops the demo
// back to idle with fresh initial conditions, so a run never continues
// under stale coefficients.
func (r *Runner) SetParam(name string, value float64) error {
	c, ok := r.sys.(Configurable)
	if !ok {
		return fmt.Errorf("system has no adjustable parameters")
	}
	if err := c.SetParam(name, value); err != nil {
		return err
	}
	r.reset()
	return nil
}

// Params returns the system's current parameters, or nil when the
// system is not configurable.
func (r *Runner) Params() map[string]float64 {
	if c, ok := r.sys.(Configurable); ok {
		return c.Params()
	}
	return nil
}
