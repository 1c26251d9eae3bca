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

// Package nunchuk emulates the two button, analog stick accessory with its own
// three axis accelerometer.
//
// The Nunchuk is an extension.Extension. Every tick the input signals are
// turned into a DataFormat value by BuildDesiredExtensionState() and the
// value is written into the register file by Update(). The host reads the
// register file over the bus.
package nunchuk
