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

package nunchuk

import (
	"strings"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/environment"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/extension"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/hardware/preferences"
	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/savestate"
)

// Identifier of the Nunchuk, found at extension.IdentifierAddr.
var Identifier = [extension.IdentifierBytes]uint8{0x00, 0x00, 0xa4, 0x20, 0x00, 0x00}

// Nunchuk implements the extension.Extension interface.
type Nunchuk struct {
	env *environment.Environment

	regs     extension.Registers
	settings preferences.Motion

	swing dynamics.MotionState
	tilt  dynamics.RotationalState
	shake dynamics.PositionalState
}

// NewNunchuk is the preferred method of initialisation for the Nunchuk type.
// An error is returned if the motion preferences are not valid.
func NewNunchuk(env *environment.Environment) (*Nunchuk, error) {
	settings, err := env.Prefs.MotionSettings()
	if err != nil {
		return nil, curated.Errorf("nunchuk: %v", err)
	}

	n := &Nunchuk{
		env:      env,
		settings: settings,
	}
	n.Reset()

	return n, nil
}

func (n *Nunchuk) String() string {
	s := strings.Builder{}
	s.WriteString("nunchuk: ")
	s.WriteString(DataFormat(n.regs.ControllerData()[:6]).String())
	if n.regs.Encrypted() {
		s.WriteString(" [encrypted]")
	}
	return s.String()
}

// ID implements the extension.Extension interface.
func (n *Nunchuk) ID() input.ExtensionID {
	return input.ExtensionNunchuk
}

// ReadDeviceDetectPin implements the extension.Extension interface.
func (n *Nunchuk) ReadDeviceDetectPin() bool {
	return true
}

// Reset implements the extension.Extension interface.
func (n *Nunchuk) Reset() {
	n.regs.Reset()
	copy(n.regs.Identifier(), Identifier[:])

	cal := n.regs.Calibration()
	copy(cal, []uint8{
		// accelerometer zero g for X, Y and Z. then the low bits
		AccelZeroG, AccelZeroG, AccelZeroG, 0x00,

		// accelerometer one g for X, Y and Z. then the low bits
		AccelOneG, AccelOneG, AccelOneG, 0x00,

		// stick X maximum, minimum and centre
		StickCenter + StickGateRadius, StickCenter - StickGateRadius, StickCenter,

		// stick Y maximum, minimum and centre
		StickCenter + StickGateRadius, StickCenter - StickGateRadius, StickCenter,
	})
	extension.UpdateCalibrationDataChecksum(cal, 2)

	d := NewDataFormat()
	copy(n.regs.ControllerData(), d[:])

	n.swing.Reset()
	n.tilt = dynamics.RotationalState{}
	n.shake = dynamics.PositionalState{}
}

// BuildDesiredExtensionState implements the extension.Extension interface.
func (n *Nunchuk) BuildDesiredExtensionState(sig input.Signals, target *extension.DesiredState) {
	var d DataFormat

	d.SetStick(MapFloat(sig.Nunchuk.Stick))
	d.SetButtons(sig.Nunchuk.C, sig.Nunchuk.Z)

	dynamics.EmulateSwing(&n.swing, sig.Nunchuk.Swing, n.settings.Swing, dynamics.TickDuration)
	dynamics.EmulateShake(&n.shake, sig.Nunchuk.Shake, n.settings.Shake, dynamics.TickDuration)
	dynamics.EmulateTilt(&n.tilt, sig.Nunchuk.Tilt, n.settings.Tilt, dynamics.TickDuration)

	var accel dynamics.Vec3
	if sig.Nunchuk.Accelerometer != nil {
		accel = *sig.Nunchuk.Accelerometer
	} else {
		rot := dynamics.GetRotationalMatrix(n.tilt.Angle.Neg()).Mul(dynamics.GetRotationalMatrix(n.swing.Angle.Neg()))
		accel = rot.Apply(n.swing.Acceleration.Add(dynamics.Vec3{0, 0, dynamics.Gravity}))
		accel = accel.Add(n.shake.Acceleration)
	}
	d.SetAccel(dynamics.ConvertAccelData(accel, AccelZeroG<<2, AccelOneG<<2))

	target.Data = d
}

// Update implements the extension.Extension interface.
func (n *Nunchuk) Update(target extension.DesiredState) {
	d, ok := target.Data.(DataFormat)
	if !ok {
		d = NewDataFormat()
	}
	copy(n.regs.ControllerData(), d[:])
}

// BusRead implements the i2c.Slave interface.
func (n *Nunchuk) BusRead(slaveAddr uint8, addr uint8, data []uint8) int {
	return n.regs.BusRead(slaveAddr, addr, data)
}

// BusWrite implements the i2c.Slave interface.
func (n *Nunchuk) BusWrite(slaveAddr uint8, addr uint8, data []uint8) int {
	enc := n.regs.Encrypted()
	c := n.regs.BusWrite(slaveAddr, addr, data)
	if enc != n.regs.Encrypted() {
		if enc {
			logger.Log(n.env, "nunchuk", "encryption disabled")
		} else {
			logger.Log(n.env, "nunchuk", "encryption enabled")
		}
	}
	return c
}

// Snapshot implements the extension.Extension interface.
func (n *Nunchuk) Snapshot() extension.Extension {
	c := *n
	return &c
}

// Save implements the extension.Extension interface.
func (n *Nunchuk) Save(enc *savestate.Encoder) {
	enc.Section("nunchuk")
	enc.Raw(n.regs.Data[:])
	n.swing.Save(enc)
	n.tilt.Save(enc)
	n.shake.Save(enc)
}

// Load implements the extension.Extension interface.
func (n *Nunchuk) Load(dec *savestate.Decoder) {
	dec.Section("nunchuk")
	dec.Raw(n.regs.Data[:])
	n.swing.Load(dec)
	n.tilt.Load(dec)
	n.shake.Load(dec)
}
