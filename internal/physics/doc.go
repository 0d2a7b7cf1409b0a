// Package physics implements the seven demo systems.
//
// Each demo is a [sim.System], advanced frame-by-frame with a clamped
// wall-clock delta:
//
//   - [Pendulum]: small-angle SHM with per-step damping
//   - [Incline]: block sliding against kinetic friction
//   - [Projectile]: precomputed analytic ballistic trajectory
//   - [Uniform], [Accelerated]: 1-D kinematics with a time limit
//   - [Wave]: analytic traveling-wave sampler
//   - [Particles]: charged N-body with gravity, electrostatics and
//     boundary bounce
//
// All demos also implement [sim.Configurable] for parameter editing
// and [sim.Sampler] for recording and charting. Single-body demos use
// semi-implicit Euler: velocity from acceleration first, then position
// from the updated velocity.
package physics
