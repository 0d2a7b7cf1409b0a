package physics

import (
	"fmt"

	"github.com/lmoreno/physlab/internal/integrators"
)

// Uniform is the constant-velocity demo (MRU). The run completes once
// the configured total time has elapsed, clamped exactly to it.
type Uniform struct {
	Velocity  float64 // m/s
	TotalTime float64 // s

	pos  float64
	t    float64
	done bool
}

func NewUniform() *Uniform {
	u := &Uniform{
		Velocity:  10.0,
		TotalTime: 10.0,
	}
	u.Reset()
	return u
}

func (u *Uniform) Reset() {
	u.pos = 0
	u.t = 0
	u.done = false
}

func (u *Uniform) Step(dt float64) {
	if u.done {
		return
	}
	if u.t+dt >= u.TotalTime {
		dt = u.TotalTime - u.t
		u.done = true
	}
	u.pos += u.Velocity * dt
	u.t += dt
}

func (u *Uniform) Finished() bool    { return u.done }
func (u *Uniform) Position() float64 { return u.pos }
func (u *Uniform) Time() float64     { return u.t }

func (u *Uniform) Params() map[string]float64 {
	return map[string]float64{
		"velocity": u.Velocity,
		"time":     u.TotalTime,
	}
}

func (u *Uniform) SetParam(name string, value float64) error {
	switch name {
	case "velocity":
		u.Velocity = value
	case "time":
		u.TotalTime = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (u *Uniform) Vector() []float64 { return []float64{u.pos} }
func (u *Uniform) Labels() []string  { return []string{"position"} }

// Accelerated is the uniformly accelerated demo (MRUV), integrated
// with semi-implicit Euler. Same time-limit termination as Uniform.
type Accelerated struct {
	InitialVelocity float64 // m/s
	Acceleration    float64 // m/s^2
	TotalTime       float64 // s

	pos  float64
	vel  float64
	t    float64
	done bool
}

func NewAccelerated() *Accelerated {
	a := &Accelerated{
		InitialVelocity: 0.0,
		Acceleration:    2.0,
		TotalTime:       10.0,
	}
	a.Reset()
	return a
}

func (a *Accelerated) Reset() {
	a.pos = 0
	a.vel = a.InitialVelocity
	a.t = 0
	a.done = false
}

func (a *Accelerated) Step(dt float64) {
	if a.done {
		return
	}
	if a.t+dt >= a.TotalTime {
		dt = a.TotalTime - a.t
		a.done = true
	}
	a.pos, a.vel = integrators.SymplecticEuler(a.pos, a.vel, a.Acceleration, dt)
	a.t += dt
}

func (a *Accelerated) Finished() bool    { return a.done }
func (a *Accelerated) Position() float64 { return a.pos }
func (a *Accelerated) Velocity() float64 { return a.vel }
func (a *Accelerated) Time() float64     { return a.t }

func (a *Accelerated) Params() map[string]float64 {
	return map[string]float64{
		"velocity": a.InitialVelocity,
		"accel":    a.Acceleration,
		"time":     a.TotalTime,
	}
}

func (a *Accelerated) SetParam(name string, value float64) error {
	switch name {
	case "velocity":
		a.InitialVelocity = value
	case "accel":
		a.Acceleration = value
	case "time":
		a.TotalTime = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (a *Accelerated) Vector() []float64 { return []float64{a.pos, a.vel} }
func (a *Accelerated) Labels() []string  { return []string{"position", "velocity"} }
