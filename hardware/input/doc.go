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

// Package input defines the per-tick input signals that drive the emulated
// remote and its extensions.
//
// Signals are abstract. How they are produced from a keyboard, a gamepad or a
// script is up to the Source. The Script type is a Source that replays a YAML
// file of timed steps:
//
//	name: swing right then point
//	steps:
//	  - ticks: 40
//	    nunchuk:
//	      stick: [1, 0]
//	      swing: [1, 0, 0]
//	  - ticks: 20
//	    motionplus: true
//	    remote:
//	      gyroscope: [0, 0, 1.5]
//	      point: {x: 0.5, y: 0, visible: true}
//
// Fields omitted from a step take their zero value, except for the extension
// and motionplus fields which carry over from the previous step.
package input
