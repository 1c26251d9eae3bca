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

package remote

import (
	"fmt"

	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/extension/motionplus"
	"github.com/jetsetilly/gomotion/hardware/extension/nunchuk"
	"github.com/jetsetilly/gomotion/hardware/input"
)

// NunchukState is the content of a Nunchuk report.
type NunchukState struct {
	// raw stick values and the same values mapped to the range -1 to 1
	StickX, StickY uint8
	Stick          dynamics.Vec2

	C, Z bool

	// raw accelerometer and the acceleration in m/s²
	Accel        dynamics.AccelData
	Acceleration dynamics.Vec3
}

func (s NunchukState) String() string {
	return fmt.Sprintf("stick=%02x,%02x c=%v z=%v accel=%03x,%03x,%03x",
		s.StickX, s.StickY, s.C, s.Z, s.Accel[0], s.Accel[1], s.Accel[2])
}

// DecodeNunchuk decodes the six bytes of a Nunchuk report.
func DecodeNunchuk(data [ReportBytes]uint8) NunchukState {
	d := nunchuk.DataFormat(data)

	var s NunchukState
	s.StickX, s.StickY = d.Stick()
	s.Stick = nunchuk.UnmapFloat(s.StickX, s.StickY)
	s.C, s.Z = d.Buttons()
	s.Accel = d.Accel()
	s.Acceleration = s.Accel.Acceleration(nunchuk.AccelZeroG<<2, nunchuk.AccelOneG<<2)
	return s
}

// Decoded is the interpretation of a report.
type Decoded struct {
	// the report came from the MotionPlus gyroscope
	MotionPlus      bool
	Gyro            motionplus.GyroSample
	AngularVelocity dynamics.Vec3

	// an extension is plugged into the MotionPlus. only meaningful for reports
	// that came through an active MotionPlus
	ExtensionConnected bool

	// nil unless the report is from a Nunchuk, either directly or passed
	// through the MotionPlus
	Nunchuk *NunchukState
}

// Decode interprets the extension bytes of a report. The host must know what
// it has plugged in. If the MotionPlus is active the passthrough mode and the
// calibration data must be supplied, otherwise they are ignored and the
// report is decoded as coming from the accessory.
func Decode(data [ReportBytes]uint8, accessory input.ExtensionID, mpActive bool, mode motionplus.PassthroughMode, cal motionplus.CalibrationData) Decoded {
	var dec Decoded

	if !mpActive {
		if accessory == input.ExtensionNunchuk {
			n := DecodeNunchuk(data)
			dec.Nunchuk = &n
		}
		return dec
	}

	d := motionplus.DataFormat(data)
	dec.ExtensionConnected = d.ExtensionConnected()

	if d.IsMotionPlusData() {
		dec.MotionPlus = true
		dec.Gyro = d.GyroSample()
		dec.AngularVelocity = dec.Gyro.AngularVelocity(cal)
		return dec
	}

	motionplus.ReversePassthroughModifications(mode, data[:])
	if mode == motionplus.PassthroughNunchuk {
		n := DecodeNunchuk(data)
		dec.Nunchuk = &n
	}

	return dec
}
