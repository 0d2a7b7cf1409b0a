// Package sim provides the demo lifecycle primitives: the [System]
// interface every demo implements, the observer and metric hooks, and
// the [Runner] that turns frame timestamps into clamped timesteps and
// enforces the reset-on-parameter-change policy.
//
// # Example
//
//	p := physics.NewPendulum()
//	r := sim.NewRunner(p)
//	r.Start()
//	r.Step(timestampMs) // once per animation frame
//
// # Thread Safety
//
// Runner is NOT thread-safe. Exactly one frame driver may call it, and
// each step runs to completion before state is observable.
package sim
