// Package metrics provides run-level diagnostics built on the
// observer hook: each metric samples a demo after every step and
// reduces the run to a named scalar.
package metrics

import (
	"math"

	"github.com/lmoreno/physlab/internal/physics"
)

// PendulumEnergy tracks the pendulum's mechanical energy under the SHM
// approximation. Value reports the latest sample; Drift the relative
// departure from the first sample, which exposes both integration
// error and the per-step damping loss.
type PendulumEnergy struct {
	p       *physics.Pendulum
	initial float64
	last    float64
	samples int
}

func NewPendulumEnergy(p *physics.Pendulum) *PendulumEnergy {
	return &PendulumEnergy{p: p}
}

func (e *PendulumEnergy) Name() string { return "energy" }

func (e *PendulumEnergy) OnStep(t float64) {
	v := e.p.Energy()
	if e.samples == 0 {
		e.initial = v
	}
	e.last = v
	e.samples++
}

func (e *PendulumEnergy) Value() float64 { return e.last }

func (e *PendulumEnergy) Drift() float64 {
	if e.initial == 0 {
		return 0
	}
	return math.Abs(e.last-e.initial) / math.Abs(e.initial)
}

func (e *PendulumEnergy) Reset() {
	e.initial = 0
	e.last = 0
	e.samples = 0
}
