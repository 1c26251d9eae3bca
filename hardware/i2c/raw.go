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

package i2c

// RawRead copies count bytes from a register file, starting at addr, into
// data. The number of bytes copied is limited by the size of both the
// register file and the data slice.
func RawRead(regs []uint8, addr uint8, data []uint8) int {
	if int(addr) >= len(regs) {
		return 0
	}
	return copy(data, regs[addr:])
}

// RawWrite copies data into a register file starting at addr. The number of
// bytes copied is limited by the size of the register file.
func RawWrite(regs []uint8, addr uint8, data []uint8) int {
	if int(addr) >= len(regs) {
		return 0
	}
	return copy(regs[addr:], data)
}
