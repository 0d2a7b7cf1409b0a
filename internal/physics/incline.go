package physics

import (
	"fmt"
	"math"

	"github.com/lmoreno/physlab/internal/forces"
	"github.com/lmoreno/physlab/internal/integrators"
)

// Incline is the friction demo: a block released at the top of an
// inclined plane, sliding down against kinetic friction. The run
// completes when the block reaches the end of the track; friction
// alone never stops it once moving.
type Incline struct {
	AngleDeg    float64 // incline angle, degrees (5 - 60)
	Mass        float64 // kg (1 - 20)
	Friction    float64 // kinetic coefficient (0 - 1)
	TrackLength float64 // m
	Gravity     float64 // m/s^2

	pos  float64
	vel  float64
	t    float64
	done bool
}

func NewIncline() *Incline {
	in := &Incline{
		AngleDeg:    30.0,
		Mass:        5.0,
		Friction:    0.2,
		TrackLength: 20.0,
		Gravity:     9.81,
	}
	in.Reset()
	return in
}

func (in *Incline) Reset() {
	in.pos = 0
	in.vel = 0
	in.t = 0
	in.done = false
}

func (in *Incline) Step(dt float64) {
	if in.done {
		return
	}

	angle := in.AngleDeg * math.Pi / 180.0
	accel, _, _ := forces.InclineAccel(in.Gravity, angle, in.Mass, in.Friction)

	in.pos, in.vel = integrators.SymplecticEuler(in.pos, in.vel, accel, dt)
	in.t += dt

	if in.pos >= in.TrackLength {
		in.pos = in.TrackLength
		in.vel = 0
		in.done = true
	}
}

func (in *Incline) Finished() bool { return in.done }

// Position returns the distance travelled along the plane.
func (in *Incline) Position() float64 { return in.pos }

func (in *Incline) Velocity() float64 { return in.vel }
func (in *Incline) Time() float64     { return in.t }

// Accel returns the current net acceleration along the plane.
func (in *Incline) Accel() float64 {
	angle := in.AngleDeg * math.Pi / 180.0
	a, _, _ := forces.InclineAccel(in.Gravity, angle, in.Mass, in.Friction)
	return a
}

func (in *Incline) Params() map[string]float64 {
	return map[string]float64{
		"angle":    in.AngleDeg,
		"mass":     in.Mass,
		"friction": in.Friction,
		"length":   in.TrackLength,
		"gravity":  in.Gravity,
	}
}

func (in *Incline) SetParam(name string, value float64) error {
	switch name {
	case "angle":
		in.AngleDeg = value
	case "mass":
		in.Mass = value
	case "friction":
		in.Friction = value
	case "length":
		in.TrackLength = value
	case "gravity":
		in.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (in *Incline) Vector() []float64 { return []float64{in.pos, in.vel} }
func (in *Incline) Labels() []string  { return []string{"position", "velocity"} }
