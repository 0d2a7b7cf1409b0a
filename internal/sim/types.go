package sim

// System is a demo's physical state plus its stepping rule. Step
// advances the state by dt seconds; a dt of 0 must leave the state
// untouched. Reset restores the configured initial conditions.
type System interface {
	Step(dt float64)
	Reset()
	Finished() bool
}

// Configurable is implemented by systems whose parameters can be
// adjusted between runs.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Sampler exposes a flat numeric view of a system's state for
// recording and charting. Labels has the same length and order as the
// vector returned by Vector.
type Sampler interface {
	Vector() []float64
	Labels() []string
}

// Observer is notified after each completed step. Observers only ever
// see fully stepped state; the runner never calls OnStep mid-update.
type Observer interface {
	OnStep(t float64)
}

// Metric is an observer that reduces a run to a named scalar.
type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}
