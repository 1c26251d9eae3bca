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

// Vec2 is the two axis value of a stick or tilt input. Both axes range from
// -1 to 1.
type Vec2 [2]float64

// Length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v[0], v[1])
}

// Cursor is the pointer position on screen. Both axes range from -1 to 1.
type Cursor struct {
	X, Y    float64
	Visible bool
}

// EmulateShake moves the positional state back and forth on every axis that
// is being shaken. Axes that are not being shaken return to the origin.
func EmulateShake(state *PositionalState, shake [3]bool, settings ShakeSettings, dt float64) {
	var target Vec3
	for i := range shake {
		if shake[i] {
			target[i] = settings.Intensity / 2
		}
	}

	for i := range target {
		// reverse direction when the current movement is away from the target
		// or the position is more than halfway to the target
		if state.Velocity[i]*math.Copysign(1, target[i]) < 0 || state.Position[i]/target[i] > 0.5 {
			target[i] *= -1
		}
	}

	// time from one extreme of a shake to the other
	travel := 1 / settings.Frequency / 2

	var jerk Vec3
	for i := range target {
		halfDistance := math.Max(math.Abs(target[i]), math.Abs(state.Position[i]))
		jerk[i] = halfDistance / math.Pow(travel/2, 3)
	}

	ApproachPositionWithJerk(state, target, jerk, dt)
}

// EmulateTilt rotates the state toward the tilt input. The X axis of the input
// rolls the controller and the Y axis pitches it.
func EmulateTilt(state *RotationalState, tilt Vec2, settings TiltSettings, dt float64) {
	roll := tilt[0] * settings.MaxAngle
	pitch := tilt[1] * settings.MaxAngle
	target := Vec3{pitch, -roll, 0}

	// take the short way round if the target is more than half a turn away
	for i := range target {
		if math.Abs(state.Angle[i]-target[i]) > math.Pi {
			state.Angle[i] -= math.Copysign(2*math.Pi, state.Angle[i])
		}
	}

	maxAccel := math.Pow(settings.MaxRotationalVelocity, 2) / (2 * math.Pi)
	ApproachAngleWithAccel(state, target, maxAccel, dt)
}

// EmulateSwing moves the state along a swing input. The input X axis is
// left/right, Y is up/down and Z is forward/backward.
func EmulateSwing(state *MotionState, swing Vec3, settings SwingSettings, dt float64) {
	// the X axis is negated because the controller's X axis points left
	target := Vec3{-swing[0], -swing[2], swing[1]}

	// jerk depends on how far from centre the input is. X and Z are combined
	// so that movement around the circle is even
	xz := math.Hypot(target[0], target[2])
	dist := Vec3{xz, math.Abs(target[1]), xz}

	var speed Vec3
	for i := range speed {
		speed[i] = lerp(settings.ReturnSpeed, settings.Speed, math.Min(dist[i], 1))
	}

	// the jerk needed to reach the speed over one metre
	maxJerk := speed.Mul(speed).Mul(speed).Scale(4)

	// twist in proportion to the swing
	targetAngle := Vec3{-target[2], 0, target[0]}.Scale(settings.TwistAngle)
	ApproachAngleWithAccelVec(&state.RotationalState, targetAngle, maxJerk.Scale(2), dt)

	// stop X and Z rotation past the twist angle
	for _, c := range []int{0, 2} {
		if math.Abs(state.Angle[c]/settings.TwistAngle) > 1 && sign(state.AngularVelocity[c]) == sign(state.Angle[c]) {
			state.AngularVelocity[c] = 0
		}
	}

	// swinging with an outstretched arm moves the controller backwards as it
	// twists
	back := math.Max(math.Abs(state.Angle[0]), math.Abs(state.Angle[2]))
	backMovement := (1 - math.Cos(back)) * settings.MaxDistance

	targetPos := target.Scale(settings.MaxDistance)
	targetPos[1] -= backMovement
	ApproachPositionWithJerk(&state.PositionalState, targetPos, maxJerk, dt)

	// keep left/right and up/down movement within the configured circle
	if p := math.Hypot(state.Position[0], state.Position[2]) / settings.MaxDistance; p > 1 {
		state.Position[0] /= p
		state.Position[2] /= p
		state.Velocity[0], state.Velocity[2] = 0, 0
		state.Acceleration[0], state.Acceleration[2] = 0, 0
	}

	// forward/backward is limited to the configured distance plus the
	// backswing
	minY := -(2 - math.Cos(back)) * settings.MaxDistance
	maxY := settings.MaxDistance
	if state.Position[1] < minY || state.Position[1] > maxY {
		state.Position[1] = math.Max(minY, math.Min(maxY, state.Position[1]))
		state.Velocity[1] = 0
		state.Acceleration[1] = 0
	}
}

// the distance of the controller from the screen when pointing.
const pointNeutralDistance = 2.0

// the distance behind the origin used for a hidden cursor.
const pointHiddenDistance = -1.0

// EmulatePoint places the controller in front of the screen and rotates it so
// that it points at the cursor. A cursor that is not visible moves the
// controller behind the origin.
func EmulatePoint(state *MotionState, cursor Cursor, settings PointSettings, dt float64) {
	if !cursor.Visible {
		state.Reset()
		state.Position = Vec3{0, pointHiddenDistance, 0}
		return
	}

	wasHidden := state.Position[1] < 0

	state.Position = Vec3{0, pointNeutralDistance, -settings.VerticalOffset}
	state.Velocity = Vec3{}
	state.Acceleration = Vec3{}

	target := Vec3{settings.TotalPitch / 2 * -cursor.Y, 0, settings.TotalYaw / 2 * -cursor.X}

	// jump straight to the angle if the cursor has just appeared
	if wasHidden {
		state.Angle = target
		state.AngularVelocity = Vec3{}
		return
	}

	// fast enough to appear instant
	const maxAccel = 2 * math.Pi * 8
	ApproachAngleWithAccel(&state.RotationalState, target, maxAccel, dt)
}

// IMUCursorState is the orientation derived from the gyroscope and
// accelerometer. The rotation transforms world vectors into controller space.
type IMUCursorState struct {
	Rotation        Quaternion
	RecenteredPitch float64
}

// NewIMUCursorState returns an IMUCursorState with no rotation.
func NewIMUCursorState() IMUCursorState {
	return IMUCursorState{Rotation: IdentityQuaternion}
}

// Reset returns the state to no rotation.
func (s *IMUCursorState) Reset() {
	*s = NewIMUCursorState()
}

// IMUCursorInput is the sensor data for EmulateIMUCursor(). A nil Gyroscope
// means there is no gyroscope data and a nil Accelerometer means there is no
// accelerometer data.
type IMUCursorInput struct {
	Gyroscope     *Vec3
	Accelerometer *Vec3
	Recenter      bool
}

// EmulateIMUCursor integrates gyroscope data into the orientation, corrects
// drift with the accelerometer and clamps yaw to the configured range.
func EmulateIMUCursor(state *IMUCursorState, input IMUCursorInput, settings IMUCursorSettings, dt float64) {
	if input.Gyroscope == nil {
		state.Reset()
		return
	}

	if state.Rotation == (Quaternion{}) {
		state.Rotation = IdentityQuaternion
	}

	gyro := QuaternionFromGyroscope(input.Gyroscope.Scale(-dt))
	state.Rotation = mulQuaternion(gyro, state.Rotation)

	if input.Accelerometer != nil && input.Accelerometer.LengthSquared() > 0 {
		state.Rotation = ComplementaryFilter(state.Rotation, *input.Accelerometer, settings.AccelWeight, Vec3{0, 0, 1})
	}

	yaw := GetYaw(state.Rotation)
	maxYaw := settings.TotalYaw / 2
	target := math.Max(-maxYaw, math.Min(maxYaw, yaw))

	if input.Recenter {
		state.RecenteredPitch = GetPitch(state.Rotation)
		target = 0
	}

	if yaw != target {
		state.Rotation = mulQuaternion(state.Rotation, AxisAngle(Vec3{0, 0, 1}, yaw-target))
	}

	state.Rotation = normalizeQuaternion(state.Rotation)
}
