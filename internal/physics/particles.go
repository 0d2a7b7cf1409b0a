package physics

import (
	"fmt"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lmoreno/physlab/internal/forces"
	"github.com/lmoreno/physlab/internal/integrators"
)

// DefaultBodies is the fixed population of the particles demo.
const DefaultBodies = 50

// Force gains mapping the 0-1 gravity and 0-5 coulomb sliders to
// visible motion at canvas scale.
const (
	gravityGain = 600.0
	coulombGain = 30000.0
)

// Body is one particle of the N-body demo. Identity is the index in
// the population; bodies are created in bulk at reset and mutated in
// place every tick.
type Body struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Mass   float64
	Charge int    // -1, 0 or +1
	Color  string // hex, for the rendering collaborator
}

// Particles is the charged N-body demo: a fixed population under
// combined pairwise gravity and electrostatics, confined to a
// rectangular domain with inelastic wall bounces. O(n^2) per tick;
// the population is small enough that no spatial partitioning is
// needed, and a larger population would make the pair loop the
// natural extension point.
type Particles struct {
	Width, Height float64
	GravityCoeff  float64 // 0 - 1
	CoulombCoeff  float64 // 0 - 5
	Restitution   float64 // velocity fraction kept on bounce, < 1
	NumBodies     int
	Seed          int64

	bodies []Body
	fx, fy []float64
	t      float64
}

func NewParticles(n int) *Particles {
	if n <= 0 {
		n = DefaultBodies
	}
	p := &Particles{
		Width:        800,
		Height:       600,
		GravityCoeff: 0.3,
		CoulombCoeff: 1.0,
		Restitution:  0.9,
		NumBodies:    n,
		Seed:         1,
	}
	p.Reset()
	return p
}

// Reset replaces the whole population: randomized positions and
// velocities inside the domain, a randomly drawn charge class, and a
// charge-keyed display color. Deterministic for a given seed.
func (p *Particles) Reset() {
	rng := rand.New(rand.NewSource(p.Seed))

	p.bodies = make([]Body, p.NumBodies)
	p.fx = make([]float64, p.NumBodies)
	p.fy = make([]float64, p.NumBodies)
	p.t = 0

	for i := range p.bodies {
		radius := 3.0 + rng.Float64()*3.0
		charge := rng.Intn(3) - 1
		p.bodies[i] = Body{
			X:      radius + rng.Float64()*(p.Width-2*radius),
			Y:      radius + rng.Float64()*(p.Height-2*radius),
			VX:     (rng.Float64() - 0.5) * 80.0,
			VY:     (rng.Float64() - 0.5) * 80.0,
			Radius: radius,
			Mass:   2.0 + rng.Float64()*8.0,
			Charge: charge,
			Color:  chargeColor(rng, charge),
		}
	}
}

func chargeColor(rng *rand.Rand, charge int) string {
	var hue float64
	switch charge {
	case 1:
		hue = 0 + rng.Float64()*25 // reds
	case -1:
		hue = 210 + rng.Float64()*30 // blues
	default:
		hue = 90 + rng.Float64()*50 // greens
	}
	return colorful.Hsv(hue, 0.65, 0.95).Hex()
}

func (p *Particles) Step(dt float64) {
	n := len(p.bodies)
	minSep2 := forces.MinSeparation * forces.MinSeparation

	g := p.GravityCoeff * gravityGain
	k := p.CoulombCoeff * coulombGain

	for i := 0; i < n; i++ {
		p.fx[i] = 0
		p.fy[i] = 0
		bi := &p.bodies[i]

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			bj := &p.bodies[j]

			dx := bj.X - bi.X
			dy := bj.Y - bi.Y
			r2 := dx*dx + dy*dy
			if r2 < minSep2 {
				continue
			}
			r := math.Sqrt(r2)

			// attractive gravity minus the signed electrostatic term:
			// like charges subtract into repulsion
			f := forces.PairGravity(g, bi.Mass, bj.Mass, r2) -
				forces.PairCoulomb(k, bi.Charge, bj.Charge, r2)

			p.fx[i] += f * dx / r
			p.fy[i] += f * dy / r
		}
	}

	for i := 0; i < n; i++ {
		b := &p.bodies[i]

		b.X, b.VX = integrators.SymplecticEuler(b.X, b.VX, p.fx[i]/b.Mass, dt)
		b.Y, b.VY = integrators.SymplecticEuler(b.Y, b.VY, p.fy[i]/b.Mass, dt)

		p.bounce(b)
	}

	p.t += dt
}

// bounce resolves axis-aligned wall collisions: the exiting velocity
// component flips sign scaled by the restitution factor, and the
// position is clamped back inside [0,W] x [0,H].
func (p *Particles) bounce(b *Body) {
	if b.X < 0 {
		b.X = 0
		b.VX = -b.VX * p.Restitution
	} else if b.X > p.Width {
		b.X = p.Width
		b.VX = -b.VX * p.Restitution
	}
	if b.Y < 0 {
		b.Y = 0
		b.VY = -b.VY * p.Restitution
	} else if b.Y > p.Height {
		b.Y = p.Height
		b.VY = -b.VY * p.Restitution
	}
}

func (p *Particles) Finished() bool { return false }
func (p *Particles) Time() float64  { return p.t }

// Bodies returns the live population. Callers must treat it as
// read-only; the engine mutates it in place each tick.
func (p *Particles) Bodies() []Body { return p.bodies }

// Momentum returns the total linear momentum of the population.
func (p *Particles) Momentum() (px, py float64) {
	for i := range p.bodies {
		px += p.bodies[i].Mass * p.bodies[i].VX
		py += p.bodies[i].Mass * p.bodies[i].VY
	}
	return
}

// KineticEnergy returns the total kinetic energy of the population.
func (p *Particles) KineticEnergy() float64 {
	ke := 0.0
	for i := range p.bodies {
		b := &p.bodies[i]
		ke += 0.5 * b.Mass * (b.VX*b.VX + b.VY*b.VY)
	}
	return ke
}

func (p *Particles) Params() map[string]float64 {
	return map[string]float64{
		"gravity":     p.GravityCoeff,
		"coulomb":     p.CoulombCoeff,
		"restitution": p.Restitution,
	}
}

func (p *Particles) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		p.GravityCoeff = value
	case "coulomb":
		p.CoulombCoeff = value
	case "restitution":
		p.Restitution = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (p *Particles) Vector() []float64 {
	px, py := p.Momentum()
	return []float64{p.KineticEnergy(), px, py}
}

func (p *Particles) Labels() []string { return []string{"kinetic", "px", "py"} }
