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

// bit returns bit n of v as 0 or 1.
func bit(v uint8, n uint) uint8 {
	return (v >> n) & 0x01
}

// setBit sets bit n of v to b, which must be 0 or 1.
func setBit(v *uint8, n uint, b uint8) {
	*v = *v&^(1<<n) | b<<n
}

// ApplyPassthroughModifications moves bits of a downstream report to make
// room for the status bits of the MotionPlus. The least significant bits of
// the report that the MotionPlus needs are discarded.
//
// In Nunchuk mode the lowest bit of each accelerometer value is lost. In
// Classic mode the lowest bit of the left stick values is lost.
//
// The caller is responsible for setting the status bits themselves.
func ApplyPassthroughModifications(mode PassthroughMode, data []uint8) {
	switch mode {
	case PassthroughNunchuk:
		setBit(&data[5], 6, bit(data[5], 7))
		setBit(&data[5], 7, bit(data[4], 0))
		setBit(&data[5], 4, bit(data[5], 3))
		setBit(&data[5], 3, bit(data[5], 1))
		setBit(&data[5], 2, bit(data[5], 0))
	case PassthroughClassic:
		setBit(&data[0], 0, bit(data[5], 0))
		setBit(&data[1], 0, bit(data[5], 1))
	}
}

// ReversePassthroughModifications is the inverse of
// ApplyPassthroughModifications(). Each discarded bit is filled with a copy
// of the bit above it.
func ReversePassthroughModifications(mode PassthroughMode, data []uint8) {
	switch mode {
	case PassthroughNunchuk:
		setBit(&data[5], 0, bit(data[5], 2))
		setBit(&data[5], 1, bit(data[5], 3))
		setBit(&data[5], 3, bit(data[5], 4))
		setBit(&data[4], 0, bit(data[5], 7))
		setBit(&data[5], 7, bit(data[5], 6))

		setBit(&data[5], 2, bit(data[5], 3))
		setBit(&data[5], 4, bit(data[5], 5))
		setBit(&data[5], 6, bit(data[5], 7))
	case PassthroughClassic:
		setBit(&data[5], 0, bit(data[0], 0))
		setBit(&data[5], 1, bit(data[1], 0))

		setBit(&data[0], 0, bit(data[0], 1))
		setBit(&data[1], 0, bit(data[1], 1))
	}
}
