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

package input

import (
	"fmt"

	"github.com/jetsetilly/gomotion/hardware/dynamics"
)

// ExtensionID names the device plugged into the remote's extension port.
type ExtensionID string

// List of valid ExtensionID values.
const (
	ExtensionNone    ExtensionID = "none"
	ExtensionNunchuk ExtensionID = "nunchuk"

	// the MotionPlus is not selected with the extension field of the Signals
	// type but it does occupy an extension port
	ExtensionMotionPlus ExtensionID = "motionplus"
)

// Valid returns true if the ExtensionID is one of the known values. The empty
// string is treated as ExtensionNone.
func (id ExtensionID) Valid() bool {
	switch id {
	case "", ExtensionNone, ExtensionNunchuk:
		return true
	}
	return false
}

// Motion is the movement of a hand held device.
type Motion struct {
	// left/right, up/down and forward/backward. each ranges from -1 to 1
	Swing dynamics.Vec3 `yaml:"swing"`

	// roll and pitch. each ranges from -1 to 1
	Tilt dynamics.Vec2 `yaml:"tilt"`

	// shaking on the X, Y and Z axes
	Shake [3]bool `yaml:"shake"`

	// if not nil the accelerometer reports this value (in m/s²) and the
	// swing, tilt and shake inputs are ignored
	Accelerometer *dynamics.Vec3 `yaml:"accelerometer"`
}

// Nunchuk signals.
type Nunchuk struct {
	Motion `yaml:",inline"`

	// analog stick. each axis ranges from -1 to 1
	Stick dynamics.Vec2 `yaml:"stick"`

	C bool `yaml:"c"`
	Z bool `yaml:"z"`
}

// Remote signals.
type Remote struct {
	Motion `yaml:",inline"`

	// screen pointer
	Point dynamics.Cursor `yaml:"point"`

	// if not nil the gyroscope reports this angular velocity (in rad/s).
	// otherwise the angular velocity is derived from the rotation caused by
	// the other inputs
	Gyroscope *dynamics.Vec3 `yaml:"gyroscope"`

	// recentre the gyroscope cursor
	Recenter bool `yaml:"recenter"`
}

// Signals is the complete input for a single tick.
type Signals struct {
	Remote  Remote  `yaml:"remote"`
	Nunchuk Nunchuk `yaml:"nunchuk"`

	// the device in the extension port and whether a MotionPlus sits between
	// the port and the device. in a script these are set by the Step
	Extension  ExtensionID `yaml:"-"`
	MotionPlus bool        `yaml:"-"`
}

func (s Signals) String() string {
	ext := s.Extension
	if ext == "" {
		ext = ExtensionNone
	}
	if s.MotionPlus {
		return fmt.Sprintf("%s+motionplus stick=(%.2f,%.2f) c=%v z=%v", ext, s.Nunchuk.Stick[0], s.Nunchuk.Stick[1], s.Nunchuk.C, s.Nunchuk.Z)
	}
	return fmt.Sprintf("%s stick=(%.2f,%.2f) c=%v z=%v", ext, s.Nunchuk.Stick[0], s.Nunchuk.Stick[1], s.Nunchuk.C, s.Nunchuk.Z)
}

// Source supplies Signals, one tick at a time. The boolean is false when the
// Source has been exhausted.
type Source interface {
	Next() (Signals, bool)
}

// Static is a Source that supplies the same Signals forever.
type Static struct {
	Signals Signals
}

// Next implements the Source interface.
func (s *Static) Next() (Signals, bool) {
	return s.Signals, true
}
