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
	"github.com/jetsetilly/gomotion/hardware/extension"
)

// Bus addresses.
const (
	InactiveAddr = 0x53
	ActiveAddr   = extension.I2CAddr
)

// Register layout.
const (
	ControllerDataAddr  = 0x00
	ControllerDataBytes = 6

	CalibrationAddr  = 0x20
	CalibrationBytes = 0x20

	PassthroughCalibrationAddr  = 0x40
	PassthroughCalibrationBytes = 0x10

	ChallengeDataAddr  = 0x50
	ChallengeDataBytes = 0x40

	// writing to this register while active deactivates the MotionPlus
	InitAddr = 0xf0

	ChallengeTypeAddr      = 0xf1
	CalibrationTriggerAddr = 0xf2

	// parts of the identifier of the downstream extension
	PassthroughID4Addr = 0xf6
	PassthroughID0Addr = 0xf8
	PassthroughID5Addr = 0xf9

	ChallengeProgressAddr = 0xf7

	IdentifierAddr  = extension.IdentifierAddr
	IdentifierBytes = extension.IdentifierBytes

	// the passthrough mode is the fifth byte of the identifier
	ModeAddr = IdentifierAddr + 4
)

// the identifier after reset. the third byte is the bus address shifted left
// and changes when the MotionPlus is activated
var inactiveIdentifier = [IdentifierBytes]uint8{0x00, 0x00, InactiveAddr << 1, 0x20, 0x00, 0x05}

// registers of the MotionPlus.
type registers [256]uint8

func (r *registers) controllerData() []uint8 {
	return r[ControllerDataAddr : ControllerDataAddr+ControllerDataBytes]
}

func (r *registers) calibration() []uint8 {
	return r[CalibrationAddr : CalibrationAddr+CalibrationBytes]
}

func (r *registers) passthroughCalibration() []uint8 {
	return r[PassthroughCalibrationAddr : PassthroughCalibrationAddr+PassthroughCalibrationBytes]
}

func (r *registers) challengeData() []uint8 {
	return r[ChallengeDataAddr : ChallengeDataAddr+ChallengeDataBytes]
}

func (r *registers) identifier() []uint8 {
	return r[IdentifierAddr : IdentifierAddr+IdentifierBytes]
}
