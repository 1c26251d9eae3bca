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

// Package dynamics evolves the positional and rotational state of an emulated
// motion controller toward target values, and converts the result into the
// values reported by the controller's sensors.
//
// The Approach functions are the core of the package. They move a state
// toward a target while limiting jerk (for position) or acceleration (for
// angle), and snap onto the target rather than overshoot it.
//
// The Emulate functions are policy layers on top of the Approach functions.
// Each one interprets a particular kind of input (swing, tilt, shake, point,
// gyroscope cursor) and chooses targets and limits accordingly.
//
// Coordinate system: X is left, Y is forward (out of the top of the
// controller) and Z is up. Angles are in radians and rotation matrices are
// composed in Z*Y*X order.
//
// All functions are expected to be called once per tick with the elapsed
// time of a tick, which for the emulated hardware is 1/UpdateFrequency.
package dynamics
