// This file is part of Gomotion.
//
// Gomotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gomotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gomotion.  If not, see <https://www.gnu.org/licenses/>.

package dynamics

import (
	"math"
)

// PositionalState is the linear motion of the controller. Units are metres,
// m/s and m/s².
type PositionalState struct {
	Position     Vec3
	Velocity     Vec3
	Acceleration Vec3
}

// RotationalState is the angular motion of the controller. Units are radians
// and rad/s.
type RotationalState struct {
	Angle           Vec3
	AngularVelocity Vec3
}

// MotionState combines positional and rotational state. Swing and point
// emulation drive both.
type MotionState struct {
	PositionalState
	RotationalState
}

// Reset returns the state to rest at the origin.
func (s *MotionState) Reset() {
	*s = MotionState{}
}

// the snap threshold for ApproachAngleWithAccel(). an axis closer than this to
// the target is considered to be on target.
const angleSnap = 1e-4

// stopDistanceJerk returns the distance travelled before coming to rest, if
// the maximum jerk is applied to first bring acceleration to zero and then
// velocity to zero.
func stopDistanceJerk(velocity, acceleration, maxJerk float64) float64 {
	if maxJerk <= 0 {
		return 0
	}

	// the calculation expects velocity to be non-negative
	flip := 1.0
	if velocity < 0 {
		flip = -1.0
	}
	v0 := velocity * flip
	a0 := acceleration * flip
	j := maxJerk

	// time to reach zero acceleration
	t0 := a0 / j

	// distance covered while reaching zero acceleration
	d0 := math.Pow(a0, 3)/(3*j*j) + (a0*v0)/j

	// velocity at zero acceleration
	v1 := v0 + a0*math.Abs(t0) - math.Copysign(j*t0*t0/2, t0)

	// distance to complete the stop
	d1 := math.Copysign(math.Pow(math.Abs(v1), 1.5), v1) / math.Sqrt(j)

	return (d0 + d1) * flip
}

// stopDistanceAccel returns the distance travelled before coming to rest, if
// the maximum acceleration is applied against the velocity.
func stopDistanceAccel(velocity, maxAccel float64) float64 {
	if maxAccel <= 0 {
		return 0
	}
	return velocity * velocity / (2 * math.Copysign(maxAccel, velocity))
}

// ApproachPositionWithJerk moves the positional state toward the target. Each
// axis applies its maximum jerk toward or away from the target depending on
// whether it can still stop in time. An axis that would pass the target
// during this tick is placed on the target with zero velocity and
// acceleration.
func ApproachPositionWithJerk(state *PositionalState, target Vec3, maxJerk Vec3, dt float64) {
	for i := 0; i < 3; i++ {
		stop := stopDistanceJerk(state.Velocity[i], state.Acceleration[i], maxJerk[i])
		offset := target[i] - state.Position[i]
		jerk := sign(offset-stop) * maxJerk[i]

		state.Acceleration[i] += jerk * dt
		state.Velocity[i] += state.Acceleration[i]*dt + jerk*dt*dt/2
		change := state.Velocity[i]*dt + state.Acceleration[i]*dt*dt/2 + jerk*dt*dt*dt/6

		if change/offset > 1.0 {
			state.Acceleration[i] = 0
			state.Velocity[i] = 0
			state.Position[i] = target[i]
		} else {
			state.Position[i] += change
		}
	}
}

// ApproachAngleWithAccel moves the rotational state toward the target angle
// with a uniform maximum angular acceleration. See ApproachAngleWithAccelVec()
// for details.
func ApproachAngleWithAccel(state *RotationalState, target Vec3, maxAccel float64, dt float64) {
	ApproachAngleWithAccelVec(state, target, Vec3{maxAccel, maxAccel, maxAccel}, dt)
}

// ApproachAngleWithAccelVec moves the rotational state toward the target angle
// with a per-axis maximum angular acceleration. An axis already within a
// small distance of the target, or that would pass the target during this
// tick, is placed on the target with zero angular velocity.
func ApproachAngleWithAccelVec(state *RotationalState, target Vec3, maxAccel Vec3, dt float64) {
	for i := 0; i < 3; i++ {
		stop := stopDistanceAccel(state.AngularVelocity[i], maxAccel[i])
		offset := target[i] - state.Angle[i]
		accel := sign(offset-stop) * maxAccel[i]

		state.AngularVelocity[i] += accel * dt
		change := state.AngularVelocity[i]*dt + accel*dt*dt/2

		if math.Abs(offset) < angleSnap || change/offset > 1.0 {
			state.AngularVelocity[i] = 0
			state.Angle[i] = target[i]
		} else {
			state.Angle[i] += change
		}
	}
}
