// Package clock converts animation-frame timestamps into bounded
// simulation timesteps.
package clock

// DefaultMaxDelta caps the timestep produced by a single tick. A
// suspended process can hand back a timestamp seconds after the last
// frame; integrating that in one step blows up every demo.
const DefaultMaxDelta = 0.1

// Clock turns a monotone sequence of millisecond timestamps into
// per-frame deltas in seconds. The first tick after a rebase yields
// zero so a stale frame timestamp never produces a huge initial step.
type Clock struct {
	lastMs   float64
	started  bool
	elapsed  float64
	maxDelta float64
}

func New() *Clock {
	return &Clock{maxDelta: DefaultMaxDelta}
}

// Tick records timestampMs and returns the elapsed interval in
// seconds since the previous tick, clamped to the maximum delta.
// Negative intervals (a timer that stepped backwards) collapse to 0.
func (c *Clock) Tick(timestampMs float64) float64 {
	if !c.started {
		c.lastMs = timestampMs
		c.started = true
		return 0
	}
	dt := (timestampMs - c.lastMs) / 1000.0
	c.lastMs = timestampMs
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	return dt
}

// Rebase forgets the last timestamp, so the next Tick returns 0.
// Accumulated elapsed time is kept; use it when pausing so a resume
// does not integrate the pause gap.
func (c *Clock) Rebase() {
	c.started = false
	c.lastMs = 0
}

// Reset rebases and zeroes the accumulated elapsed time.
func (c *Clock) Reset() {
	c.Rebase()
	c.elapsed = 0
}

func (c *Clock) Elapsed() float64 { return c.elapsed }

// SetMaxDelta overrides the per-tick clamp. Values <= 0 are ignored.
func (c *Clock) SetMaxDelta(d float64) {
	if d > 0 {
		c.maxDelta = d
	}
}
