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

// Package extension defines the contract between the remote and the devices
// plugged into its extension port.
//
// Every tick the remote calls BuildDesiredExtensionState() and then Update()
// on the attached extension. BuildDesiredExtensionState() converts the input
// signals into the logical state of the device (for example, the stick
// position and accelerometer values of a Nunchuk). Update() writes that state
// into the device's register file, where the host reads it over the i2c bus.
//
// Separating the two phases means the desired state can be recorded, or
// replaced, before it reaches the registers.
//
// Most extensions share the same register layout, which is implemented by
// the Registers type.
package extension
