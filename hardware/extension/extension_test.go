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

package extension_test

import (
	"testing"

	"github.com/jetsetilly/gomotion/hardware/extension"
	"github.com/jetsetilly/gomotion/hardware/i2c"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/savestate"
	"github.com/jetsetilly/gomotion/test"
)

type monitor struct {
	events []string
}

func (m *monitor) Plugged(ev extension.PlugEvent) {
	m.events = append(m.events, ev.String())
}

// minimal extension used to test the port
type fake struct {
	extension.Registers
}

func (f *fake) String() string {
	return "fake"
}

func (f *fake) ID() input.ExtensionID {
	return input.ExtensionNunchuk
}

func (f *fake) ReadDeviceDetectPin() bool {
	return true
}

func (f *fake) BuildDesiredExtensionState(_ input.Signals, _ *extension.DesiredState) {
}

func (f *fake) Update(_ extension.DesiredState) {
}

func (f *fake) Snapshot() extension.Extension {
	n := *f
	return &n
}

func (f *fake) Save(_ *savestate.Encoder) {
}

func (f *fake) Load(_ *savestate.Decoder) {
}

func TestNone(t *testing.T) {
	var n extension.None
	d := make([]uint8, 6)
	test.ExpectEquality(t, n.BusRead(extension.I2CAddr, 0, d), 0)
	test.ExpectEquality(t, n.BusWrite(extension.I2CAddr, 0, d), 0)
	test.ExpectFailure(t, n.ReadDeviceDetectPin())

	var st extension.DesiredState
	st.Data = 1
	n.BuildDesiredExtensionState(input.Signals{}, &st)
	test.ExpectEquality(t, st.Data, nil)

	enc := savestate.NewEncoder()
	n.Save(enc)
	dec := savestate.NewDecoder(enc.Bytes())
	n.Load(dec)
	test.ExpectSuccess(t, dec.Finish())
}

func TestPort(t *testing.T) {
	bus := i2c.NewBus("test")
	port := extension.NewPort("port", bus)
	test.ExpectFailure(t, port.IsDeviceConnected())

	var m monitor
	port.AttachPlugMonitor(&m)

	f := &fake{}
	f.Identifier()[2] = 0xa4
	port.AttachExtension(f)
	test.ExpectSuccess(t, port.IsDeviceConnected())
	test.ExpectEquality(t, port.GetAttachedExtension(), extension.Extension(f))

	// the extension is reachable through the port's bus
	id := make([]uint8, extension.IdentifierBytes)
	test.ExpectSuccess(t, bus.Tx(extension.I2CAddr, []byte{extension.IdentifierAddr}, id))
	test.ExpectEquality(t, id[2], uint8(0xa4))

	// attaching the same extension again changes nothing
	port.AttachExtension(f)

	port.AttachExtension(nil)
	test.ExpectFailure(t, port.IsDeviceConnected())
	test.ExpectFailure(t, bus.Tx(extension.I2CAddr, []byte{extension.IdentifierAddr}, id))

	test.DemandEquality(t, len(m.events), 2)
	test.ExpectEquality(t, m.events[0], "port: nunchuk attached")
	test.ExpectEquality(t, m.events[1], "port: nunchuk detached")
}

func TestEncryption(t *testing.T) {
	var r extension.Registers
	r.ControllerData()[0] = 0x80
	r.ControllerData()[1] = 0x17

	d := make([]uint8, 2)
	test.ExpectEquality(t, r.BusRead(extension.I2CAddr, 0, d), 2)
	test.ExpectEquality(t, d[0], uint8(0x80))

	// wrong address
	test.ExpectEquality(t, r.BusRead(0x53, 0, d), 0)

	r.BusWrite(extension.I2CAddr, extension.EncryptionAddr, []uint8{extension.EncryptionEnabled})
	test.ExpectSuccess(t, r.Encrypted())
	r.BusRead(extension.I2CAddr, 0, d)
	test.ExpectEquality(t, d[0], uint8((0x80-0x17)^0x17))
	test.ExpectEquality(t, d[1], uint8(0x17))

	extension.Decrypt(d)
	test.ExpectEquality(t, d[0], uint8(0x80))
	test.ExpectEquality(t, d[1], uint8(0x17))

	r.BusWrite(extension.I2CAddr, extension.EncryptionAddr, []uint8{extension.EncryptionDisabled})
	test.ExpectFailure(t, r.Encrypted())

	// the second half of the usual initialisation sequence
	r.BusWrite(extension.I2CAddr, extension.EncryptionAddr, []uint8{extension.EncryptionEnabled})
	r.BusWrite(extension.I2CAddr, extension.InitAddr, []uint8{0x00})
	test.ExpectFailure(t, r.Encrypted())

	// every value survives a round trip
	for i := 0; i < 256; i++ {
		v := []uint8{uint8(i)}
		extension.Encrypt(v)
		extension.Decrypt(v)
		test.ExpectEquality(t, v[0], uint8(i))
	}
}

func TestChecksum(t *testing.T) {
	data := make([]uint8, 16)
	for i := 0; i < 14; i++ {
		data[i] = uint8(i)
	}

	// 0x55 + (0 + 1 + ... + 13)
	extension.UpdateCalibrationDataChecksum(data, 2)
	test.ExpectEquality(t, data[14], uint8(0x55+91))
	test.ExpectEquality(t, data[15], uint8(0x05))
	test.ExpectSuccess(t, extension.VerifyCalibrationDataChecksum(data, 2))

	data[3]++
	test.ExpectFailure(t, extension.VerifyCalibrationDataChecksum(data, 2))

	single := make([]uint8, 4)
	single[0] = 0xff
	extension.UpdateCalibrationDataChecksum(single, 1)
	test.ExpectEquality(t, single[3], uint8(0x54))
	test.ExpectEquality(t, single[2], uint8(0))
}
