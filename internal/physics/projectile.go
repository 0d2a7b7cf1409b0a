package physics

import (
	"fmt"
	"math"
)

// trajectorySamples is the resolution of the precomputed flight path.
const trajectorySamples = 120

// Sample is one point of a precomputed trajectory.
type Sample struct {
	T float64
	X float64
	Y float64
}

// Projectile is the ballistic demo. Unlike the other demos it is not
// integrated live: the whole trajectory is solved in closed form at
// reset, ending at the ground-impact time from y(t) = 0, and stepping
// merely advances a progress fraction through the samples.
type Projectile struct {
	Speed    float64 // launch speed, m/s
	AngleDeg float64 // launch angle, degrees
	Height   float64 // launch height, m
	Gravity  float64 // m/s^2

	samples    []Sample
	flightTime float64
	t          float64
	done       bool
}

func NewProjectile() *Projectile {
	p := &Projectile{
		Speed:    50.0,
		AngleDeg: 45.0,
		Height:   0.0,
		Gravity:  9.81,
	}
	p.Reset()
	return p
}

// Reset recomputes the trajectory from the current parameters.
func (p *Projectile) Reset() {
	angle := p.AngleDeg * math.Pi / 180.0
	vx := p.Speed * math.Cos(angle)
	vy := p.Speed * math.Sin(angle)

	// flight time from 0 = h + vy*t - g/2*t^2 (positive root)
	p.flightTime = (vy + math.Sqrt(vy*vy+2*p.Gravity*p.Height)) / p.Gravity

	p.samples = make([]Sample, trajectorySamples+1)
	for i := 0; i <= trajectorySamples; i++ {
		t := p.flightTime * float64(i) / float64(trajectorySamples)
		p.samples[i] = Sample{
			T: t,
			X: vx * t,
			Y: p.Height + vy*t - 0.5*p.Gravity*t*t,
		}
	}
	// the closed form lands exactly at the solved impact time; pin the
	// final sample so rounding never leaves it below ground
	p.samples[trajectorySamples].Y = 0

	p.t = 0
	p.done = false
}

func (p *Projectile) Step(dt float64) {
	if p.done {
		return
	}
	p.t += dt
	if p.t >= p.flightTime {
		p.t = p.flightTime
		p.done = true
	}
}

func (p *Projectile) Finished() bool { return p.done }

// Progress returns the fraction of the flight completed, in [0, 1].
func (p *Projectile) Progress() float64 {
	if p.flightTime == 0 {
		return 1
	}
	return p.t / p.flightTime
}

// Position returns the current point on the precomputed trajectory.
func (p *Projectile) Position() (x, y float64) {
	s := p.samples[p.index()]
	return s.X, s.Y
}

func (p *Projectile) index() int {
	i := int(p.Progress() * float64(trajectorySamples))
	if i > trajectorySamples {
		i = trajectorySamples
	}
	return i
}

func (p *Projectile) Time() float64       { return p.t }
func (p *Projectile) FlightTime() float64 { return p.flightTime }

// Trajectory returns the precomputed flight path.
func (p *Projectile) Trajectory() []Sample { return p.samples }

// Range returns the horizontal distance at impact.
func (p *Projectile) Range() float64 {
	return p.samples[len(p.samples)-1].X
}

// MaxHeight returns the apex of the precomputed trajectory.
func (p *Projectile) MaxHeight() float64 {
	max := 0.0
	for _, s := range p.samples {
		if s.Y > max {
			max = s.Y
		}
	}
	return max
}

func (p *Projectile) Params() map[string]float64 {
	return map[string]float64{
		"speed":   p.Speed,
		"angle":   p.AngleDeg,
		"height":  p.Height,
		"gravity": p.Gravity,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	switch name {
	case "speed":
		p.Speed = value
	case "angle":
		p.AngleDeg = value
	case "height":
		p.Height = value
	case "gravity":
		p.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (p *Projectile) Vector() []float64 {
	x, y := p.Position()
	return []float64{x, y}
}

func (p *Projectile) Labels() []string { return []string{"x", "y"} }
