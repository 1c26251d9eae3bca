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

// Package motionplus emulates the gyroscope extension that sits between the
// remote and a second extension.
//
// While inactive the MotionPlus answers at InactiveAddr and passes every other
// bus transaction through to the extension plugged into it. Writing a
// PassthroughMode to ModeAddr activates it. Once active it answers at the
// normal extension address and interleaves its own gyroscope reports with
// reports read from the downstream extension, reshuffling the downstream bits
// to make room for its own status bits.
//
// Activation and deactivation take a few ticks, during which the MotionPlus
// does not answer the bus at all. While active the MotionPlus also runs the
// challenge/response exchange that some software uses to detect genuine
// hardware.
package motionplus
