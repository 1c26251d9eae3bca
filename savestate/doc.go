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

// Package savestate serialises the state of the emulated devices to a byte
// slice and back again.
//
// Values are written in a fixed order with no self-description other than
// section tags. A section tag is a short string written by Encoder.Section()
// and checked by Decoder.Section(). Tags catch most mistakes caused by
// reading state in a different order to the one it was written in.
//
// The Decoder is "sticky". After the first error every subsequent read
// returns the zero value and the error is reported by Err(). This means that
// a device's Load() function can read every field without checking for an
// error each time.
package savestate
