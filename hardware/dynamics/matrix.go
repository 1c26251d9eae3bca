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

	"github.com/skelterjohn/go.matrix"
)

// Matrix33 is a 3x3 matrix used for rotations.
type Matrix33 struct {
	m *matrix.DenseMatrix
}

// Identity returns the identity matrix.
func Identity() Matrix33 {
	return Matrix33{m: matrix.Eye(3)}
}

func newMatrix33(e ...float64) Matrix33 {
	return Matrix33{m: matrix.MakeDenseMatrix(e, 3, 3)}
}

// RotateX returns the matrix for a rotation of a radians about the X axis.
func RotateX(a float64) Matrix33 {
	s, c := math.Sincos(a)
	return newMatrix33(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotateY returns the matrix for a rotation of a radians about the Y axis.
func RotateY(a float64) Matrix33 {
	s, c := math.Sincos(a)
	return newMatrix33(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotateZ returns the matrix for a rotation of a radians about the Z axis.
func RotateZ(a float64) Matrix33 {
	s, c := math.Sincos(a)
	return newMatrix33(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// GetRotationalMatrix returns the rotation for the Euler angles in the
// vector. The rotations are applied X first, then Y, then Z.
func GetRotationalMatrix(angle Vec3) Matrix33 {
	return RotateZ(angle[2]).Mul(RotateY(angle[1])).Mul(RotateX(angle[0]))
}

// GetMatrixFromAxisAngle returns the rotation of angle radians about a unit
// length axis.
func GetMatrixFromAxisAngle(axis Vec3, angle float64) Matrix33 {
	return QuaternionMatrix(AxisAngle(axis, angle))
}

// GetMatrixFromGyroscope returns the rotation described by an angular
// displacement vector: the direction of the vector is the axis and the length
// is the angle.
func GetMatrixFromGyroscope(w Vec3) Matrix33 {
	l := w.Length()
	if l == 0 {
		return Identity()
	}
	return GetMatrixFromAxisAngle(w.Scale(1/l), l)
}

// Mul returns the matrix product m * n.
func (m Matrix33) Mul(n Matrix33) Matrix33 {
	return Matrix33{m: matrix.Product(m.m, n.m)}
}

// Transpose returns the transposed matrix. For a rotation matrix this is
// also the inverse.
func (m Matrix33) Transpose() Matrix33 {
	return Matrix33{m: m.m.Transpose()}
}

// Get returns the element at row i, column j.
func (m Matrix33) Get(i, j int) float64 {
	return m.m.Get(i, j)
}

// Apply returns the matrix multiplied by the column vector v.
func (m Matrix33) Apply(v Vec3) Vec3 {
	var r Vec3
	for i := 0; i < 3; i++ {
		r[i] = m.m.Get(i, 0)*v[0] + m.m.Get(i, 1)*v[1] + m.m.Get(i, 2)*v[2]
	}
	return r
}
