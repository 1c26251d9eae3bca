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
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/jetsetilly/gomotion/curated"
)

// Error patterns for calibration data.
const (
	InvalidCalibration = "motionplus: invalid calibration: %s"
	ChecksumMismatch   = "motionplus: calibration checksum mismatch (%#08x != %#08x)"
)

// Index of each axis in calibration and gyroscope data.
const (
	Yaw = iota
	Roll
	Pitch
)

// Default calibration values.
const (
	CalibrationZero        = 0x8000
	CalibrationScaleOffset = 0x4400
	FastDegrees            = 1200
	SlowDegrees            = 270

	// unit identifiers copied from real hardware
	uid1 = 0x0b
	uid2 = 0xe9
)

// CalibrationBlock is the calibration of either the fast or the slow tier. The
// zero and scale values are 16 bit values for each of the yaw, roll and pitch
// axes.
type CalibrationBlock struct {
	Zero        [3]uint16
	Scale       [3]uint16
	DegreesDiv6 uint8
}

// Degrees is the angular velocity in degrees per second that is represented
// by the difference between the scale and zero values.
func (b CalibrationBlock) Degrees() int {
	return int(b.DegreesDiv6) * 6
}

func (b CalibrationBlock) validate(tier string) error {
	if b.DegreesDiv6 == 0 {
		return curated.Errorf(InvalidCalibration, fmt.Sprintf("%s tier degrees must be greater than zero", tier))
	}
	for i := range b.Zero {
		if b.Zero[i] == b.Scale[i] {
			return curated.Errorf(InvalidCalibration, fmt.Sprintf("%s tier zero and scale are equal for axis %d", tier, i))
		}
	}
	return nil
}

// the layout of a calibration block in the register file.
func (b CalibrationBlock) put(data []uint8) {
	for i := range b.Zero {
		binary.BigEndian.PutUint16(data[i*2:], b.Zero[i])
		binary.BigEndian.PutUint16(data[6+i*2:], b.Scale[i])
	}
	data[12] = b.DegreesDiv6
}

func getCalibrationBlock(data []uint8) CalibrationBlock {
	var b CalibrationBlock
	for i := range b.Zero {
		b.Zero[i] = binary.BigEndian.Uint16(data[i*2:])
		b.Scale[i] = binary.BigEndian.Uint16(data[6+i*2:])
	}
	b.DegreesDiv6 = data[12]
	return b
}

// CalibrationData is the content of the calibration registers.
type CalibrationData struct {
	Fast CalibrationBlock
	Slow CalibrationBlock
	UID1 uint8
	UID2 uint8
}

// NewCalibrationData checks the calibration blocks and returns an error if
// either is unusable.
func NewCalibrationData(fast CalibrationBlock, slow CalibrationBlock) (CalibrationData, error) {
	if err := fast.validate("fast"); err != nil {
		return CalibrationData{}, err
	}
	if err := slow.validate("slow"); err != nil {
		return CalibrationData{}, err
	}
	return CalibrationData{Fast: fast, Slow: slow, UID1: uid1, UID2: uid2}, nil
}

// DefaultCalibrationData returns the calibration of a typical MotionPlus.
func DefaultCalibrationData() CalibrationData {
	block := func(degrees int) CalibrationBlock {
		return CalibrationBlock{
			Zero:        [3]uint16{CalibrationZero, CalibrationZero, CalibrationZero},
			Scale:       [3]uint16{CalibrationZero + CalibrationScaleOffset, CalibrationZero + CalibrationScaleOffset, CalibrationZero + CalibrationScaleOffset},
			DegreesDiv6: uint8(degrees / 6),
		}
	}
	return CalibrationData{
		Fast: block(FastDegrees),
		Slow: block(SlowDegrees),
		UID1: uid1,
		UID2: uid2,
	}
}

// calibration register layout
const (
	calFast   = 0x00
	calUID1   = 0x0d
	calCRCMSB = 0x0e
	calSlow   = 0x10
	calUID2   = 0x1d
	calCRCLSB = 0x1e

	// number of bytes in each half covered by the checksum
	calCovered = 0x0e
)

// the checksum is the CRC32 of everything except the checksum itself.
func calibrationChecksum(data []uint8) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, data[calFast:calFast+calCovered])
	return crc32.Update(crc, crc32.IEEETable, data[calSlow:calSlow+calCovered])
}

// Bytes returns the calibration as it appears in the register file, with the
// checksum.
func (c CalibrationData) Bytes() [CalibrationBytes]uint8 {
	var data [CalibrationBytes]uint8
	c.Fast.put(data[calFast:])
	c.Slow.put(data[calSlow:])
	data[calUID1] = c.UID1
	data[calUID2] = c.UID2

	crc := calibrationChecksum(data[:])
	binary.BigEndian.PutUint16(data[calCRCMSB:], uint16(crc>>16))
	binary.BigEndian.PutUint16(data[calCRCLSB:], uint16(crc))

	return data
}

// ParseCalibrationData is the inverse of Bytes(). An error is returned if the
// checksum is wrong or if the calibration is not usable.
func ParseCalibrationData(data []uint8) (CalibrationData, error) {
	if len(data) < CalibrationBytes {
		return CalibrationData{}, curated.Errorf(InvalidCalibration, fmt.Sprintf("%d bytes is too short", len(data)))
	}

	crc := uint32(binary.BigEndian.Uint16(data[calCRCMSB:]))<<16 | uint32(binary.BigEndian.Uint16(data[calCRCLSB:]))
	if expected := calibrationChecksum(data); crc != expected {
		return CalibrationData{}, curated.Errorf(ChecksumMismatch, crc, expected)
	}

	c, err := NewCalibrationData(getCalibrationBlock(data[calFast:]), getCalibrationBlock(data[calSlow:]))
	if err != nil {
		return CalibrationData{}, err
	}
	c.UID1 = data[calUID1]
	c.UID2 = data[calUID2]

	return c, nil
}
