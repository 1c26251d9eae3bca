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

import "math"

// AccelData is the 10-bit accelerometer reading for each axis.
type AccelData [3]uint16

// maximum value of a 10-bit accelerometer reading.
const maxAccelValue = (1 << 10) - 1

// ConvertAccelData converts acceleration in m/s² to the raw 10-bit values of
// an accelerometer with the given calibration. The zeroG value is the reading
// at rest and the oneG value is the reading under 1g of acceleration.
func ConvertAccelData(accel Vec3, zeroG, oneG uint16) AccelData {
	var d AccelData
	scale := (float64(oneG) - float64(zeroG)) / Gravity
	for i := range accel {
		v := math.Round(accel[i]*scale + float64(zeroG))
		if v < 0 {
			v = 0
		} else if v > maxAccelValue {
			v = maxAccelValue
		}
		d[i] = uint16(v)
	}
	return d
}

// Acceleration is the inverse of ConvertAccelData(), within the precision of
// the 10-bit values.
func (d AccelData) Acceleration(zeroG, oneG uint16) Vec3 {
	var v Vec3
	scale := Gravity / (float64(oneG) - float64(zeroG))
	for i := range d {
		v[i] = (float64(d[i]) - float64(zeroG)) * scale
	}
	return v
}
