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

// Package curated wraps the plain Go error type with a "pattern" that can be
// tested for later, without needing to compare the formatted message.
//
// Errors are created with Errorf(), which looks like fmt.Errorf() but keeps
// the pattern and the placeholder values separately:
//
//	e := curated.Errorf(motionplus.InvalidCalibration, "zero equals scale")
//
//	if curated.Is(e, motionplus.InvalidCalibration) {
//		...
//	}
//
// Has() checks whether a pattern occurs anywhere in a chain of curated
// errors, so wrapping a curated error in another does not hide it:
//
//	f := curated.Errorf("remote: %v", e)
//	curated.Has(f, motionplus.InvalidCalibration) // true
//	curated.Is(f, motionplus.InvalidCalibration)  // false
//
// IsAny() answers whether an error was created by this package at all. In
// practice a curated error is an expected error, something the program knows
// how to report to the user, and an uncurated error is not.
//
// When formatted, adjacent duplicate parts of the message chain are removed.
// This means that a function can prefix an error with its own tag without
// worrying whether the error below it has already done so.
package curated
