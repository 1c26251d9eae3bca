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

	"github.com/jetsetilly/gomotion/curated"
)

// InvalidSettings is the curated error pattern for a settings value that the
// Emulate functions cannot work with.
const InvalidSettings = "dynamics: invalid %s setting: %v"

// SwingSettings configure EmulateSwing().
type SwingSettings struct {
	// speed of a full swing and of the return to centre, in m/s
	Speed       float64
	ReturnSpeed float64

	// distance of a full swing from centre, in metres
	MaxDistance float64

	// rotation applied at a full swing, in radians
	TwistAngle float64
}

// DefaultSwingSettings returns the swing settings that feel right for most
// software.
func DefaultSwingSettings() SwingSettings {
	return SwingSettings{
		Speed:       16,
		ReturnSpeed: 2,
		MaxDistance: 0.5,
		TwistAngle:  math.Pi / 2,
	}
}

// Validate checks that the settings can be used.
func (s SwingSettings) Validate() error {
	if s.Speed <= 0 {
		return curated.Errorf(InvalidSettings, "swing speed", s.Speed)
	}
	if s.ReturnSpeed <= 0 {
		return curated.Errorf(InvalidSettings, "swing return speed", s.ReturnSpeed)
	}
	if s.MaxDistance <= 0 {
		return curated.Errorf(InvalidSettings, "swing distance", s.MaxDistance)
	}
	if s.TwistAngle <= 0 || s.TwistAngle > math.Pi {
		return curated.Errorf(InvalidSettings, "swing twist angle", s.TwistAngle)
	}
	return nil
}

// TiltSettings configure EmulateTilt().
type TiltSettings struct {
	// angle reached at full tilt, in radians
	MaxAngle float64

	// maximum rotational velocity, in rad/s
	MaxRotationalVelocity float64
}

// DefaultTiltSettings returns the default tilt settings. Seven revolutions
// per second is about as fast as anyone can flick their wrist.
func DefaultTiltSettings() TiltSettings {
	return TiltSettings{
		MaxAngle:              85 * math.Pi / 180,
		MaxRotationalVelocity: 7 * 2 * math.Pi,
	}
}

// Validate checks that the settings can be used.
func (s TiltSettings) Validate() error {
	if s.MaxAngle <= 0 || s.MaxAngle > math.Pi {
		return curated.Errorf(InvalidSettings, "tilt angle", s.MaxAngle)
	}
	if s.MaxRotationalVelocity <= 0 {
		return curated.Errorf(InvalidSettings, "tilt rotational velocity", s.MaxRotationalVelocity)
	}
	return nil
}

// ShakeSettings configure EmulateShake().
type ShakeSettings struct {
	// distance between the extremes of a shake, in metres
	Intensity float64

	// shakes per second
	Frequency float64
}

// DefaultShakeSettings returns the default shake settings.
func DefaultShakeSettings() ShakeSettings {
	return ShakeSettings{
		Intensity: 0.1,
		Frequency: 6,
	}
}

// Validate checks that the settings can be used.
func (s ShakeSettings) Validate() error {
	if s.Intensity <= 0 {
		return curated.Errorf(InvalidSettings, "shake intensity", s.Intensity)
	}
	if s.Frequency <= 0 || s.Frequency > UpdateFrequency/2 {
		return curated.Errorf(InvalidSettings, "shake frequency", s.Frequency)
	}
	return nil
}

// PointSettings configure EmulatePoint().
type PointSettings struct {
	// total range of the cursor, in radians
	TotalYaw   float64
	TotalPitch float64

	// height of the controller relative to the screen sensor, in metres
	VerticalOffset float64
}

// DefaultPointSettings returns the default point settings.
func DefaultPointSettings() PointSettings {
	return PointSettings{
		TotalYaw:       25 * math.Pi / 180,
		TotalPitch:     25 * math.Pi / 180,
		VerticalOffset: 0.1,
	}
}

// Validate checks that the settings can be used.
func (s PointSettings) Validate() error {
	if s.TotalYaw <= 0 || s.TotalYaw > 2*math.Pi {
		return curated.Errorf(InvalidSettings, "point yaw", s.TotalYaw)
	}
	if s.TotalPitch <= 0 || s.TotalPitch > math.Pi {
		return curated.Errorf(InvalidSettings, "point pitch", s.TotalPitch)
	}
	return nil
}

// IMUCursorSettings configure EmulateIMUCursor().
type IMUCursorSettings struct {
	// proportion of the accelerometer correction applied each tick
	AccelWeight float64

	// total range of the cursor, in radians
	TotalYaw float64
}

// DefaultIMUCursorSettings returns the default gyroscope cursor settings.
func DefaultIMUCursorSettings() IMUCursorSettings {
	return IMUCursorSettings{
		AccelWeight: 1,
		TotalYaw:    15 * math.Pi / 180,
	}
}

// Validate checks that the settings can be used.
func (s IMUCursorSettings) Validate() error {
	if s.AccelWeight < 0 || s.AccelWeight > 1 {
		return curated.Errorf(InvalidSettings, "accelerometer weight", s.AccelWeight)
	}
	if s.TotalYaw <= 0 || s.TotalYaw > 2*math.Pi {
		return curated.Errorf(InvalidSettings, "cursor yaw", s.TotalYaw)
	}
	return nil
}
