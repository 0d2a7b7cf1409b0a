package store

import "github.com/lmoreno/physlab/internal/sim"

// Recorder is an observer that captures a demo's sample vector after
// every step, building the time series the store persists.
type Recorder struct {
	sampler sim.Sampler
	times   []float64
	rows    [][]float64
}

func NewRecorder(s sim.Sampler) *Recorder {
	return &Recorder{sampler: s}
}

func (r *Recorder) OnStep(t float64) {
	r.times = append(r.times, t)
	r.rows = append(r.rows, append([]float64(nil), r.sampler.Vector()...))
}

func (r *Recorder) Labels() []string { return r.sampler.Labels() }

// Samples returns the captured series. The slices are the recorder's
// own; callers must not mutate them.
func (r *Recorder) Samples() (times []float64, rows [][]float64) {
	return r.times, r.rows
}

func (r *Recorder) Len() int { return len(r.times) }
