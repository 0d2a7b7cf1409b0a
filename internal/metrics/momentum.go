package metrics

import (
	"math"

	"github.com/lmoreno/physlab/internal/physics"
)

// Momentum tracks the magnitude of the particle population's total
// linear momentum. Wall bounces are inelastic, so the value decays
// over a confined run.
type Momentum struct {
	p    *physics.Particles
	last float64
	peak float64
}

func NewMomentum(p *physics.Particles) *Momentum {
	return &Momentum{p: p}
}

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) OnStep(t float64) {
	px, py := m.p.Momentum()
	m.last = math.Hypot(px, py)
	if m.last > m.peak {
		m.peak = m.last
	}
}

func (m *Momentum) Value() float64 { return m.last }
func (m *Momentum) Peak() float64  { return m.peak }

func (m *Momentum) Reset() {
	m.last = 0
	m.peak = 0
}
