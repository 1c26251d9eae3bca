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

	"github.com/westphae/quaternion"
)

// Quaternion is the rotation type used for sensor fusion.
type Quaternion = quaternion.Quaternion

// IdentityQuaternion represents no rotation.
var IdentityQuaternion = Quaternion{W: 1}

// AxisAngle returns the quaternion for a rotation of angle radians about a
// unit length axis.
func AxisAngle(axis Vec3, angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	return Quaternion{W: c, X: axis[0] * s, Y: axis[1] * s, Z: axis[2] * s}
}

// RotateVector rotates v by the unit quaternion q.
func RotateVector(q Quaternion, v Vec3) Vec3 {
	r := quaternion.Prod(q, Quaternion{X: v[0], Y: v[1], Z: v[2]}, q.Conj())
	return Vec3{r.X, r.Y, r.Z}
}

// QuaternionFromGyroscope returns the rotation described by an angular
// displacement vector.
func QuaternionFromGyroscope(w Vec3) Quaternion {
	l := w.Length()
	if l == 0 {
		return IdentityQuaternion
	}
	return AxisAngle(w.Scale(1/l), l)
}

// QuaternionMatrix converts a unit quaternion to a rotation matrix.
func QuaternionMatrix(q Quaternion) Matrix33 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return newMatrix33(
		1-2*(y*y+z*z), 2*(x*y-w*z), 2*(x*z+w*y),
		2*(x*y+w*z), 1-2*(x*x+z*z), 2*(y*z-w*x),
		2*(x*z-w*y), 2*(y*z+w*x), 1-2*(x*x+y*y),
	)
}

// ComplementaryFilter corrects the gyroscope derived rotation with the
// direction of the accelerometer reading. The normal is the accelerometer
// reading expected when the rotation is the identity, usually straight up.
//
// A weight of zero leaves the gyroscope rotation unchanged and a weight of one
// takes the accelerometer direction as correct. If the accelerometer and the
// rotated normal are parallel, anti-parallel or perpendicular there is no
// well defined correction and the gyroscope rotation is returned unchanged.
func ComplementaryFilter(gyro Quaternion, accel Vec3, weight float64, normal Vec3) Quaternion {
	gyroVec := RotateVector(gyro, normal)
	accelNorm := accel.Normalized()
	cos := accelNorm.Dot(gyroVec)

	if a := math.Abs(cos); a > 0 && a < 1 {
		axis := gyroVec.Cross(accelNorm).Normalized()
		angle := math.Acos(cos)
		return quaternion.Prod(AxisAngle(axis, angle*weight), gyro).Unit()
	}

	return gyro
}

// forward returns the direction the controller points, for a rotation that
// transforms world vectors into controller space.
func forward(q Quaternion) Vec3 {
	return RotateVector(q.Conj(), Vec3{0, 1, 0})
}

// GetYaw returns the rotation about the Z axis of the direction the
// controller points.
func GetYaw(q Quaternion) float64 {
	f := forward(q)
	return math.Atan2(-f[0], f[1])
}

// GetPitch returns the elevation of the direction the controller points.
func GetPitch(q Quaternion) float64 {
	f := forward(q)
	return math.Atan2(f[2], math.Hypot(f[0], f[1]))
}

func mulQuaternion(a, b Quaternion) Quaternion {
	return quaternion.Prod(a, b)
}

func normalizeQuaternion(q Quaternion) Quaternion {
	return q.Unit()
}
