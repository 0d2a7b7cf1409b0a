// Package forces provides the stateless force and acceleration models
// shared by the demo systems. Every function is pure: parameters and
// state in, force or acceleration out.
package forces

import "math"

// MinSeparation is the pairwise singularity guard. Bodies closer than
// this contribute no force to each other, which keeps 1/r^2 terms
// finite at near-coincident positions.
const MinSeparation = 2.0

// PendulumRestoring returns the angular acceleration of a pendulum
// under the small-angle approximation: alpha = -(g/L) * theta.
//
// The linearized SHM form is intentional, even for large configured
// angles. The demos present the textbook approximation, not the exact
// nonlinear pendulum equation.
func PendulumRestoring(gravity, length, theta float64) float64 {
	return -(gravity / length) * theta
}

// InclineAccel returns the net downhill acceleration of a block of the
// given mass on an incline with kinetic friction coefficient mu, along
// with the normal force and friction force magnitudes.
//
// Friction can at most cancel the gravity component along the plane;
// it never drives the block backwards, so the net acceleration is
// clamped at zero.
func InclineAccel(gravity, angleRad, mass, mu float64) (accel, normal, friction float64) {
	along := mass * gravity * math.Sin(angleRad)
	normal = mass * gravity * math.Cos(angleRad)
	friction = mu * normal

	net := along - friction
	if net < 0 {
		net = 0
	}
	return net / mass, normal, friction
}

// PairGravity returns the magnitude of the gravitational attraction
// between two masses at squared separation r2: F = g*m1*m2 / r^2.
// Always positive (attractive).
func PairGravity(g, m1, m2, r2 float64) float64 {
	return g * m1 * m2 / r2
}

// PairCoulomb returns the signed electrostatic term between two unit
// charge classes at squared separation r2: F = k*q1*q2 / r^2.
// Like charges yield a positive value, which callers subtract from the
// attractive accumulation so equal signs push bodies apart.
func PairCoulomb(k float64, q1, q2 int, r2 float64) float64 {
	return k * float64(q1) * float64(q2) / r2
}
