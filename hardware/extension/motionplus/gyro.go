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

package motionplus

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gomotion/hardware/dynamics"
)

// Gyroscope values are 14 bit.
const (
	GyroBits = 14
	GyroMax  = (1 << GyroBits) - 1

	// calibration values are 16 bit
	calibrationShift = 16 - GyroBits
)

// GyroSample is a single reading of the gyroscope. The values are indexed by
// Yaw, Roll and Pitch. A Slow flag means that the value for that axis uses the
// calibration of the slow tier.
type GyroSample struct {
	Value [3]uint16
	Slow  [3]bool
}

func (s GyroSample) String() string {
	tier := func(slow bool) string {
		if slow {
			return "s"
		}
		return "f"
	}
	return fmt.Sprintf("yaw=%04x%s roll=%04x%s pitch=%04x%s",
		s.Value[Yaw], tier(s.Slow[Yaw]),
		s.Value[Roll], tier(s.Slow[Roll]),
		s.Value[Pitch], tier(s.Slow[Pitch]))
}

func (c CalibrationData) block(slow bool) CalibrationBlock {
	if slow {
		return c.Slow
	}
	return c.Fast
}

// GetGyroscopeData converts angular velocity, in radians per second, to a
// GyroSample. An axis uses the slow tier if its angular velocity is less than
// the maximum of the slow tier.
func GetGyroscopeData(w dynamics.Vec3, cal CalibrationData) GyroSample {
	var s GyroSample

	var deg [3]float64
	deg[Yaw] = -w.Z()
	deg[Roll] = w.Y()
	deg[Pitch] = -w.X()

	for i := range deg {
		deg[i] *= 180 / math.Pi
		s.Slow[i] = math.Abs(deg[i]) < float64(cal.Slow.Degrees())

		b := cal.block(s.Slow[i])
		zero := float64(b.Zero[i] >> calibrationShift)
		scale := float64(b.Scale[i] >> calibrationShift)

		v := math.Round(zero + deg[i]*(scale-zero)/float64(b.Degrees()))
		s.Value[i] = uint16(math.Max(0, math.Min(GyroMax, v)))
	}

	return s
}

// DefaultGyroscopeData is a GyroSample for a MotionPlus at rest.
func DefaultGyroscopeData() GyroSample {
	return GetGyroscopeData(dynamics.Vec3{}, DefaultCalibrationData())
}

// AngularVelocity is the inverse of GetGyroscopeData(), within the precision
// of the 14 bit values.
func (s GyroSample) AngularVelocity(cal CalibrationData) dynamics.Vec3 {
	var deg [3]float64
	for i := range deg {
		b := cal.block(s.Slow[i])
		zero := float64(b.Zero[i] >> calibrationShift)
		scale := float64(b.Scale[i] >> calibrationShift)
		deg[i] = (float64(s.Value[i]) - zero) * float64(b.Degrees()) / (scale - zero)
		deg[i] *= math.Pi / 180
	}
	return dynamics.Vec3{-deg[Pitch], deg[Roll], -deg[Yaw]}
}

// Bits of the final two bytes of a report.
const (
	ExtensionConnected = 0x01
	IsMotionPlusData   = 0x02
)

// DataFormat is the six byte report of the MotionPlus.
//
//	0: yaw, lower 8 bits
//	1: roll, lower 8 bits
//	2: pitch, lower 8 bits
//	3: pitch slow, yaw slow, then upper 6 bits of yaw
//	4: extension connected, roll slow, then upper 6 bits of roll
//	5: zero, is motionplus data, then upper 6 bits of pitch
//
// Reports from the downstream extension also have the extension connected and
// the is motionplus data bits, in the same positions.
type DataFormat [6]uint8

// NewDataFormat creates a report from a GyroSample.
func NewDataFormat(s GyroSample, extConnected bool) DataFormat {
	var d DataFormat

	d[0] = uint8(s.Value[Yaw])
	d[1] = uint8(s.Value[Roll])
	d[2] = uint8(s.Value[Pitch])

	d[3] = uint8(s.Value[Yaw]>>8) << 2
	d[4] = uint8(s.Value[Roll]>>8) << 2
	d[5] = uint8(s.Value[Pitch]>>8) << 2

	if s.Slow[Pitch] {
		d[3] |= 0x01
	}
	if s.Slow[Yaw] {
		d[3] |= 0x02
	}
	if s.Slow[Roll] {
		d[4] |= 0x02
	}
	if extConnected {
		d[4] |= ExtensionConnected
	}
	d[5] |= IsMotionPlusData

	return d
}

// IsMotionPlusData returns true if the report contains gyroscope data rather
// than data from the downstream extension.
func (d DataFormat) IsMotionPlusData() bool {
	return d[5]&IsMotionPlusData == IsMotionPlusData
}

// ExtensionConnected returns true if an extension is plugged into the
// MotionPlus.
func (d DataFormat) ExtensionConnected() bool {
	return d[4]&ExtensionConnected == ExtensionConnected
}

// GyroSample returns the gyroscope data in the report. The result is
// meaningless if IsMotionPlusData() is false.
func (d DataFormat) GyroSample() GyroSample {
	var s GyroSample
	s.Value[Yaw] = uint16(d[0]) | uint16(d[3]>>2)<<8
	s.Value[Roll] = uint16(d[1]) | uint16(d[4]>>2)<<8
	s.Value[Pitch] = uint16(d[2]) | uint16(d[5]>>2)<<8
	s.Slow[Pitch] = d[3]&0x01 == 0x01
	s.Slow[Yaw] = d[3]&0x02 == 0x02
	s.Slow[Roll] = d[4]&0x02 == 0x02
	return s
}
