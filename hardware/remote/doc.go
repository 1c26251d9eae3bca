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

// Package remote is the host side of the emulation. It owns the bus that the
// extension port is attached to and the devices that can be plugged into the
// port.
//
// Step() runs one tick of the emulation and returns the report that the
// remote would send to the console. Swapping extensions in and out happens at
// the start of a tick in response to the input signals, one stage per tick,
// so that the host sees a disconnection before a new device is connected.
//
// The functions in decode.go turn reports back into values, in the same way
// software reading a real remote would.
package remote
