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

package remote

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/environment"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/extension"
	"github.com/jetsetilly/gomotion/hardware/extension/motionplus"
	"github.com/jetsetilly/gomotion/hardware/extension/nunchuk"
	"github.com/jetsetilly/gomotion/hardware/i2c"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/savestate"
)

// Accelerometer calibration of the remote. These are the upper eight bits of
// the ten bit readings.
const (
	AccelZeroG = 0x80
	AccelOneG  = 0x9a
)

// ReportBytes is the number of extension bytes in a Report.
const ReportBytes = 6

// Report is the output of the remote for a single tick.
type Report struct {
	Tick int

	// the remote's own accelerometer
	Accel dynamics.AccelData

	// six bytes read from the extension port. all bytes are 0xff if nothing
	// answered the read
	Extension [ReportBytes]uint8

	// the extension port changed between connected and disconnected this tick
	PortEvent bool
}

func (r Report) String() string {
	return fmt.Sprintf("%06d accel=%03x,%03x,%03x ext=% 02x", r.Tick, r.Accel[0], r.Accel[1], r.Accel[2], r.Extension)
}

// Remote is the host side of the emulation.
type Remote struct {
	env *environment.Environment

	bus  *i2c.Bus
	port *extension.Port

	mp         *motionplus.MotionPlus
	mpAttached bool

	// the accessories that can be plugged in, indexed by ID
	accessories map[input.ExtensionID]extension.Extension
	active      input.ExtensionID

	// connection state of the port as of the most recent tick
	connected bool

	settings struct {
		swing dynamics.SwingSettings
		tilt  dynamics.TiltSettings
		shake dynamics.ShakeSettings
		point dynamics.PointSettings
		imu   dynamics.IMUCursorSettings
	}

	swing dynamics.MotionState
	tilt  dynamics.RotationalState
	point dynamics.MotionState
	shake dynamics.PositionalState
	imu   dynamics.IMUCursorState

	tick int
}

// NewRemote is the preferred method of initialisation for the Remote type.
// An error is returned if the motion preferences are not valid.
func NewRemote(env *environment.Environment) (*Remote, error) {
	r := &Remote{
		env: env,
		bus: i2c.NewBus("remote"),
	}

	var err error
	if r.settings.swing, err = env.Prefs.SwingSettings(); err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}
	if r.settings.tilt, err = env.Prefs.TiltSettings(); err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}
	if r.settings.shake, err = env.Prefs.ShakeSettings(); err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}
	if r.settings.point, err = env.Prefs.PointSettings(); err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}
	if r.settings.imu, err = env.Prefs.IMUCursorSettings(); err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}

	nc, err := nunchuk.NewNunchuk(env)
	if err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}

	r.accessories = map[input.ExtensionID]extension.Extension{
		input.ExtensionNone:    &extension.None{},
		input.ExtensionNunchuk: nc,
	}

	r.port = extension.NewPort("extension port", r.bus)
	r.mp = motionplus.NewMotionPlus(env)

	r.port.AttachPlugMonitor(r)
	r.mp.ExtPort().AttachPlugMonitor(r)

	r.Reset()

	return r, nil
}

// Plugged implements the extension.PlugMonitor interface.
func (r *Remote) Plugged(ev extension.PlugEvent) {
	logger.Log(r.env, "remote", ev.String())
}

func (r *Remote) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("remote: tick %d: ", r.tick))
	if r.mpAttached {
		s.WriteString(r.mp.String())
		s.WriteString(" -> ")
	}
	s.WriteString(string(r.active))
	return s.String()
}

// Reset unplugs everything and returns the remote to rest.
func (r *Remote) Reset() {
	r.port.AttachExtension(nil)
	r.mp.ExtPort().AttachExtension(nil)
	r.mp.Reset()
	r.mpAttached = false
	r.active = input.ExtensionNone
	r.connected = false

	r.swing.Reset()
	r.tilt = dynamics.RotationalState{}
	r.point.Reset()
	r.shake = dynamics.PositionalState{}
	r.imu.Reset()

	r.tick = 0
}

// Bus returns the bus that the extension port is attached to.
func (r *Remote) Bus() *i2c.Bus {
	return r.bus
}

// Connected returns true if a device was detected on the extension port
// during the most recent tick.
func (r *Remote) Connected() bool {
	return r.connected
}

// MotionPlus returns the MotionPlus, whether it is attached or not.
func (r *Remote) MotionPlus() *motionplus.MotionPlus {
	return r.mp
}

// MotionPlusAttached returns true if the MotionPlus is plugged into the
// extension port.
func (r *Remote) MotionPlusAttached() bool {
	return r.mpAttached
}

// ActiveExtension returns the ID of the accessory that is plugged in, either
// directly or into the MotionPlus.
func (r *Remote) ActiveExtension() input.ExtensionID {
	return r.active
}

// Accessory returns the accessory with the ID. It will be nil if the ID is not
// known.
func (r *Remote) Accessory(id input.ExtensionID) extension.Extension {
	return r.accessories[id]
}

// the port that accessories are plugged into.
func (r *Remote) accessoryPort() *extension.Port {
	if r.mpAttached {
		return r.mp.ExtPort()
	}
	return r.port
}

// handleExtensionSwap moves toward the requested configuration. The
// MotionPlus can only be plugged in or out when no accessory is plugged in so
// an accessory is unplugged first if necessary. An accessory is never
// unplugged and plugged in on the same tick.
func (r *Remote) handleExtensionSwap(desired input.ExtensionID, desiredMotionPlus bool) {
	if desired == "" {
		desired = input.ExtensionNone
	}
	if _, ok := r.accessories[desired]; !ok {
		desired = input.ExtensionNone
	}

	if desiredMotionPlus != r.mpAttached {
		if r.active != input.ExtensionNone {
			desired = input.ExtensionNone
		} else {
			r.mpAttached = desiredMotionPlus
			if r.mpAttached {
				r.mp.Reset()
				r.port.AttachExtension(r.mp)
			} else {
				r.port.AttachExtension(nil)
			}
		}
	}

	if desired == r.active {
		return
	}

	if r.active != input.ExtensionNone {
		r.active = input.ExtensionNone
		r.accessoryPort().AttachExtension(nil)
		return
	}

	r.active = desired
	ext := r.accessories[desired]
	ext.Reset()
	r.accessoryPort().AttachExtension(ext)
}

// stepDynamics moves the remote's own motion state forward one tick.
func (r *Remote) stepDynamics(sig input.Signals) {
	dt := dynamics.TickDuration
	dynamics.EmulateSwing(&r.swing, sig.Remote.Swing, r.settings.swing, dt)
	dynamics.EmulateTilt(&r.tilt, sig.Remote.Tilt, r.settings.tilt, dt)
	dynamics.EmulatePoint(&r.point, sig.Remote.Point, r.settings.point, dt)
	dynamics.EmulateShake(&r.shake, sig.Remote.Shake, r.settings.shake, dt)
	dynamics.EmulateIMUCursor(&r.imu, dynamics.IMUCursorInput{
		Gyroscope:     sig.Remote.Gyroscope,
		Accelerometer: sig.Remote.Accelerometer,
		Recenter:      sig.Remote.Recenter,
	}, r.settings.imu, dt)
}

// acceleration of the remote in its own frame of reference.
func (r *Remote) acceleration(sig input.Signals) dynamics.Vec3 {
	if sig.Remote.Accelerometer != nil {
		return *sig.Remote.Accelerometer
	}

	rot := dynamics.GetRotationalMatrix(r.tilt.Angle.Neg()).
		Mul(dynamics.GetRotationalMatrix(r.point.Angle.Neg())).
		Mul(dynamics.GetRotationalMatrix(r.swing.Angle.Neg()))

	return rot.Apply(r.swing.Acceleration.Add(dynamics.Vec3{0, 0, dynamics.Gravity})).Add(r.shake.Acceleration)
}

// angular velocity of the remote as produced by the motion inputs, plus the
// gyroscope input if there is one.
func (r *Remote) angularVelocity(sig input.Signals) dynamics.Vec3 {
	w := r.tilt.AngularVelocity.Add(r.swing.AngularVelocity).Add(r.point.AngularVelocity)
	if sig.Remote.Gyroscope != nil {
		w = w.Add(*sig.Remote.Gyroscope)
	}
	return w
}

// Step runs the emulation for one tick.
func (r *Remote) Step(sig input.Signals) Report {
	r.tick++
	rpt := Report{Tick: r.tick}

	r.stepDynamics(sig)
	rpt.Accel = dynamics.ConvertAccelData(r.acceleration(sig), AccelZeroG<<2, AccelOneG<<2)

	// the desired state is built by the accessory that has been asked for,
	// which is not necessarily the one that is plugged in yet
	var st extension.DesiredState
	if ext, ok := r.accessories[sig.Extension]; ok {
		ext.BuildDesiredExtensionState(sig, &st)
	}

	r.handleExtensionSwap(sig.Extension, sig.MotionPlus)

	r.accessories[r.active].Update(st)
	if r.mpAttached {
		r.mp.Update(st)
	}

	if c := r.port.IsDeviceConnected(); c != r.connected {
		r.connected = c
		rpt.PortEvent = true
		if c {
			logger.Log(r.env, "remote", "extension port connected")
		} else {
			logger.Log(r.env, "remote", "extension port disconnected")
		}
	}

	if r.mpAttached {
		r.mp.PrepareInput(motionplus.GetGyroscopeData(r.angularVelocity(sig), r.mp.Calibration()))
	}

	if err := r.bus.Tx(extension.I2CAddr, []byte{extension.ControllerDataAddr}, rpt.Extension[:]); err != nil {
		for i := range rpt.Extension {
			rpt.Extension[i] = 0xff
		}
	}

	return rpt
}

// Write is a bus write by the host.
func (r *Remote) Write(slaveAddr uint8, reg uint8, data ...uint8) error {
	return r.bus.Tx(uint16(slaveAddr), append([]byte{reg}, data...), nil)
}

// Read is a bus read by the host.
func (r *Remote) Read(slaveAddr uint8, reg uint8, n int) ([]uint8, error) {
	d := make([]uint8, n)
	if err := r.bus.Tx(uint16(slaveAddr), []byte{reg}, d); err != nil {
		return nil, err
	}
	return d, nil
}

// the order of accessories in saved state.
var accessoryOrder = []input.ExtensionID{input.ExtensionNone, input.ExtensionNunchuk}

// Save the state of the remote and of everything plugged into it.
func (r *Remote) Save(enc *savestate.Encoder) {
	enc.Section("remote")
	enc.Int(r.tick)
	enc.Bool(r.mpAttached)
	for i, id := range accessoryOrder {
		if id == r.active {
			enc.Uint8(uint8(i))
		}
	}
	enc.Bool(r.connected)
	r.swing.Save(enc)
	r.tilt.Save(enc)
	r.point.Save(enc)
	r.shake.Save(enc)
	r.imu.Save(enc)
	r.port.GetAttachedExtension().Save(enc)
}

// Load state written by Save(). The state is decoded into a new remote which
// replaces the current state only if the entire state was read without error.
// Devices are plugged in and out as required without logging.
func (r *Remote) Load(dec *savestate.Decoder) error {
	c, err := NewRemote(r.env)
	if err != nil {
		return err
	}
	if err := c.load(dec); err != nil {
		return err
	}

	*r = *c
	r.port.AttachPlugMonitor(r)
	r.mp.ExtPort().AttachPlugMonitor(r)

	return nil
}

func (r *Remote) load(dec *savestate.Decoder) error {
	dec.Section("remote")
	tick := dec.Int()
	mpAttached := dec.Bool()
	idx := int(dec.Uint8())
	connected := dec.Bool()
	if err := dec.Err(); err != nil {
		return err
	}
	if idx >= len(accessoryOrder) {
		return curated.Errorf("remote: unknown accessory in saved state (%d)", idx)
	}

	r.port.AttachPlugMonitor(nil)
	r.mp.ExtPort().AttachPlugMonitor(nil)
	defer func() {
		r.port.AttachPlugMonitor(r)
		r.mp.ExtPort().AttachPlugMonitor(r)
	}()

	r.port.AttachExtension(nil)
	r.mp.ExtPort().AttachExtension(nil)

	r.tick = tick
	r.mpAttached = mpAttached
	r.active = accessoryOrder[idx]
	r.connected = connected

	if r.mpAttached {
		r.port.AttachExtension(r.mp)
	}
	r.accessoryPort().AttachExtension(r.accessories[r.active])

	r.swing.Load(dec)
	r.tilt.Load(dec)
	r.point.Load(dec)
	r.shake.Load(dec)
	r.imu.Load(dec)
	r.port.GetAttachedExtension().Load(dec)

	return dec.Finish()
}

// Snapshot returns a copy of the remote in its current state. The copy shares
// the environment of the original.
func (r *Remote) Snapshot() (*Remote, error) {
	c, err := NewRemote(r.env)
	if err != nil {
		return nil, err
	}

	enc := savestate.NewEncoder()
	r.Save(enc)
	if err := c.load(savestate.NewDecoder(enc.Bytes())); err != nil {
		return nil, err
	}

	return c, nil
}
