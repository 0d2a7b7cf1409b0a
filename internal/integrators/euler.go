// Package integrators holds the shared stepping rule of the demos.
package integrators

// SymplecticEuler advances one degree of freedom by dt: velocity from
// acceleration first, then position from the already-updated velocity.
// The velocity-first ordering keeps oscillatory energy bounded where
// plain explicit Euler spirals outward.
func SymplecticEuler(pos, vel, accel, dt float64) (newPos, newVel float64) {
	vel += accel * dt
	pos += vel * dt
	return pos, vel
}
