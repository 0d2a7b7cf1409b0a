package physics

import (
	"fmt"
	"sort"

	"github.com/lmoreno/physlab/internal/sim"
)

var demos = map[string]func() sim.System{
	"pendulum":    func() sim.System { return NewPendulum() },
	"incline":     func() sim.System { return NewIncline() },
	"projectile":  func() sim.System { return NewProjectile() },
	"uniform":     func() sim.System { return NewUniform() },
	"accelerated": func() sim.System { return NewAccelerated() },
	"wave":        func() sim.System { return NewWave() },
	"particles":   func() sim.System { return NewParticles(DefaultBodies) },
}

// New constructs a demo system by name.
func New(name string) (sim.System, error) {
	fn, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

// Names lists the available demos, sorted.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
