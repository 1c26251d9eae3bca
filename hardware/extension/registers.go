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

package extension

import (
	"github.com/jetsetilly/gomotion/hardware/i2c"
)

// I2CAddr is the bus address of an extension.
const I2CAddr = 0x52

// Register layout shared by extensions.
const (
	ControllerDataAddr  = 0x00
	ControllerDataBytes = 21
	CalibrationAddr     = 0x20
	CalibrationBytes    = 0x10
	EncryptionKeyAddr   = 0x40
	EncryptionKeyBytes  = 0x10
	EncryptionAddr      = 0xf0
	IdentifierAddr      = 0xfa
	IdentifierBytes     = 6

	// writing zero to this address, during the initialisation sequence
	// used by most software, also turns encryption off
	InitAddr = 0xfb
)

// Values of the encryption register.
const (
	EncryptionEnabled  = 0xaa
	EncryptionDisabled = 0x55
)

// Registers is the register file of an extension. It implements the
// i2c.Slave interface and answers transactions at I2CAddr.
//
// Reads are obfuscated while the encryption register is EncryptionEnabled.
// Only the transform for the all-zero key is modelled, which is the key that
// almost all software uses. The contents of the key registers are stored but
// otherwise ignored.
type Registers struct {
	Data [256]uint8
}

// Reset clears the register file.
func (r *Registers) Reset() {
	r.Data = [256]uint8{}
}

// ControllerData returns the controller data area of the register file.
func (r *Registers) ControllerData() []uint8 {
	return r.Data[ControllerDataAddr : ControllerDataAddr+ControllerDataBytes]
}

// Calibration returns the calibration area of the register file.
func (r *Registers) Calibration() []uint8 {
	return r.Data[CalibrationAddr : CalibrationAddr+CalibrationBytes]
}

// Identifier returns the identifier area of the register file.
func (r *Registers) Identifier() []uint8 {
	return r.Data[IdentifierAddr : IdentifierAddr+IdentifierBytes]
}

// Encrypted returns true if reads are being obfuscated.
func (r *Registers) Encrypted() bool {
	return r.Data[EncryptionAddr] == EncryptionEnabled
}

// BusRead implements the i2c.Slave interface.
func (r *Registers) BusRead(slaveAddr uint8, addr uint8, data []uint8) int {
	if slaveAddr != I2CAddr {
		return 0
	}
	n := i2c.RawRead(r.Data[:], addr, data)
	if r.Encrypted() {
		Encrypt(data[:n])
	}
	return n
}

// BusWrite implements the i2c.Slave interface.
func (r *Registers) BusWrite(slaveAddr uint8, addr uint8, data []uint8) int {
	if slaveAddr != I2CAddr {
		return 0
	}
	n := i2c.RawWrite(r.Data[:], addr, data)

	if int(addr) <= InitAddr && int(addr)+n > InitAddr && data[InitAddr-int(addr)] == 0x00 {
		r.Data[EncryptionAddr] = EncryptionDisabled
	}

	return n
}

// Encrypt obfuscates data in place using the all-zero key.
func Encrypt(data []uint8) {
	for i := range data {
		data[i] = (data[i] - 0x17) ^ 0x17
	}
}

// Decrypt reverses Encrypt().
func Decrypt(data []uint8) {
	for i := range data {
		data[i] = (data[i] ^ 0x17) + 0x17
	}
}

// the starting value of the calibration checksum.
const calibrationMagic = 0x55

// UpdateCalibrationDataChecksum writes the checksum of a calibration block
// into the final checksumBytes (one or two) of the block.
func UpdateCalibrationDataChecksum(data []uint8, checksumBytes int) {
	var ck1 uint8 = calibrationMagic
	var ck2 uint8 = ck1 + calibrationMagic

	i := 0
	for ; i < len(data)-checksumBytes; i++ {
		ck1 += data[i]
		ck2 += data[i]
	}

	data[i] = ck1
	if checksumBytes == 2 {
		data[i+1] = ck2
	}
}

// VerifyCalibrationDataChecksum returns true if the checksum of a calibration
// block is correct.
func VerifyCalibrationDataChecksum(data []uint8, checksumBytes int) bool {
	c := make([]uint8, len(data))
	copy(c, data)
	UpdateCalibrationDataChecksum(c, checksumBytes)
	for i := len(data) - checksumBytes; i < len(data); i++ {
		if c[i] != data[i] {
			return false
		}
	}
	return true
}
