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

package extension

import (
	"github.com/jetsetilly/gomotion/hardware/i2c"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/savestate"
)

// DesiredState is the logical state of an extension for a single tick. The
// type of Data depends on the extension. A nil value means no state, which
// extensions treat as "at rest".
type DesiredState struct {
	Data any
}

// Extension is implemented by devices that can be plugged into an extension
// port.
type Extension interface {
	i2c.Slave

	// String should return information about the state of the extension
	String() string

	// the ID of the extension being represented
	ID() input.ExtensionID

	// whether the device is physically present. the host uses this to detect
	// that something has been plugged in
	ReadDeviceDetectPin() bool

	// convert input signals into the desired state
	BuildDesiredExtensionState(sig input.Signals, target *DesiredState)

	// write the desired state into the register file
	Update(target DesiredState)

	// return to power-on state
	Reset()

	// copy of the extension in its current state
	Snapshot() Extension

	// serialise state
	Save(enc *savestate.Encoder)
	Load(dec *savestate.Decoder)
}

// None is the extension used when nothing is plugged in. It never responds to
// bus transactions.
type None struct{}

func (None) String() string {
	return "none"
}

// ID implements the Extension interface.
func (None) ID() input.ExtensionID {
	return input.ExtensionNone
}

// ReadDeviceDetectPin implements the Extension interface.
func (None) ReadDeviceDetectPin() bool {
	return false
}

// BuildDesiredExtensionState implements the Extension interface.
func (None) BuildDesiredExtensionState(_ input.Signals, target *DesiredState) {
	target.Data = nil
}

// Update implements the Extension interface.
func (None) Update(_ DesiredState) {
}

// Reset implements the Extension interface.
func (None) Reset() {
}

// Snapshot implements the Extension interface.
func (n *None) Snapshot() Extension {
	return &None{}
}

// Save implements the Extension interface.
func (None) Save(enc *savestate.Encoder) {
	enc.Section("none")
}

// Load implements the Extension interface.
func (None) Load(dec *savestate.Decoder) {
	dec.Section("none")
}

// BusRead implements the i2c.Slave interface.
func (None) BusRead(_ uint8, _ uint8, _ []uint8) int {
	return 0
}

// BusWrite implements the i2c.Slave interface.
func (None) BusWrite(_ uint8, _ uint8, _ []uint8) int {
	return 0
}
