package physics

import (
	"fmt"
	"math"

	"github.com/lmoreno/physlab/internal/forces"
)

// pendulumDamping is the per-step velocity multiplier modelling energy
// loss. Applied on every step that advances time.
const pendulumDamping = 0.999

// Pendulum is the SHM demo: a bob on a rigid rod under the small-angle
// approximation. It runs until paused; it never completes on its own.
type Pendulum struct {
	Length   float64 // rod length, m (0.5 - 5)
	AngleDeg float64 // initial displacement, degrees (1 - 90)
	Gravity  float64 // m/s^2 (1 - 25)

	theta   float64
	omega   float64
	t       float64
	damping float64
}

func NewPendulum() *Pendulum {
	p := &Pendulum{
		Length:   1.0,
		AngleDeg: 30.0,
		Gravity:  9.81,
		damping:  pendulumDamping,
	}
	p.Reset()
	return p
}

func (p *Pendulum) Reset() {
	p.theta = p.AngleDeg * math.Pi / 180.0
	p.omega = 0
	p.t = 0
}

func (p *Pendulum) Step(dt float64) {
	if dt == 0 {
		return
	}
	alpha := forces.PendulumRestoring(p.Gravity, p.Length, p.theta)
	p.omega += alpha * dt
	p.omega *= p.damping
	p.theta += p.omega * dt
	p.t += dt
}

func (p *Pendulum) Finished() bool { return false }

// Angle returns the current displacement in radians.
func (p *Pendulum) Angle() float64 { return p.theta }

// AngularVelocity returns the current angular velocity in rad/s.
func (p *Pendulum) AngularVelocity() float64 { return p.omega }

func (p *Pendulum) Time() float64 { return p.t }

// Energy returns the mechanical energy per unit mass under the SHM
// approximation: 0.5*(L*omega)^2 + 0.5*g*L*theta^2.
func (p *Pendulum) Energy() float64 {
	v := p.Length * p.omega
	return 0.5*v*v + 0.5*p.Gravity*p.Length*p.theta*p.theta
}

// Period returns the small-angle period 2*pi*sqrt(L/g).
func (p *Pendulum) Period() float64 {
	return 2 * math.Pi * math.Sqrt(p.Length/p.Gravity)
}

func (p *Pendulum) Params() map[string]float64 {
	return map[string]float64{
		"length":  p.Length,
		"angle":   p.AngleDeg,
		"gravity": p.Gravity,
	}
}

func (p *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "length":
		p.Length = value
	case "angle":
		p.AngleDeg = value
	case "gravity":
		p.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (p *Pendulum) Vector() []float64 { return []float64{p.theta, p.omega} }
func (p *Pendulum) Labels() []string  { return []string{"theta", "omega"} }
