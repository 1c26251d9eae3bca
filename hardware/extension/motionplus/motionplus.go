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

package motionplus

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/environment"
	"github.com/jetsetilly/gomotion/hardware/extension"
	"github.com/jetsetilly/gomotion/hardware/i2c"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/savestate"

	periph "periph.io/x/conn/v3/i2c"
)

// MotionPlus implements the extension.Extension interface. The extension
// plugged into the MotionPlus is attached to the port returned by ExtPort().
type MotionPlus struct {
	env *environment.Environment

	regs    registers
	status  ActivationStatus
	pending pending

	// the kind of the most recent report
	passthroughReport bool

	// connection state of the downstream extension as of the most recent
	// report
	extConnected bool

	// the downstream port and the device at the extension address on its
	// bus. the MotionPlus only communicates with the downstream extension
	// through bus transactions
	port       *extension.Port
	downstream *periph.Dev
}

// NewMotionPlus is the preferred method of initialisation for the MotionPlus
// type.
func NewMotionPlus(env *environment.Environment) *MotionPlus {
	mp := &MotionPlus{
		env: env,
	}
	mp.setPort(extension.NewPort("motionplus", i2c.NewBus("motionplus downstream")))
	mp.Reset()
	return mp
}

func (mp *MotionPlus) setPort(port *extension.Port) {
	mp.port = port
	mp.downstream = &periph.Dev{Bus: port.Bus(), Addr: extension.I2CAddr}
}

func (mp *MotionPlus) String() string {
	s := strings.Builder{}
	s.WriteString("motionplus: ")
	s.WriteString(mp.status.String())
	if mp.status == Active {
		s.WriteString(fmt.Sprintf(" [%s] challenge %s", mp.PassthroughMode(), mp.ChallengeState()))
	}
	if p := mp.pending.String(); p != "" {
		s.WriteString(fmt.Sprintf(" (%s)", p))
	}
	return s.String()
}

// ID implements the extension.Extension interface.
func (mp *MotionPlus) ID() input.ExtensionID {
	return input.ExtensionMotionPlus
}

// ReadDeviceDetectPin implements the extension.Extension interface.
func (mp *MotionPlus) ReadDeviceDetectPin() bool {
	return true
}

// ExtPort returns the port that downstream extensions are plugged into.
func (mp *MotionPlus) ExtPort() *extension.Port {
	return mp.port
}

// Status returns the current ActivationStatus.
func (mp *MotionPlus) Status() ActivationStatus {
	return mp.status
}

// ChallengeState returns the progress of the challenge/response exchange.
func (mp *MotionPlus) ChallengeState() ChallengeState {
	return ChallengeState(mp.regs[ChallengeProgressAddr])
}

// PassthroughMode returns the mode most recently written by the host.
func (mp *MotionPlus) PassthroughMode() PassthroughMode {
	return PassthroughMode(mp.regs[ModeAddr])
}

// Calibration returns the calibration data in the register file.
func (mp *MotionPlus) Calibration() CalibrationData {
	c, err := ParseCalibrationData(mp.regs.calibration())
	if err != nil {
		return DefaultCalibrationData()
	}
	return c
}

// SetCalibration replaces the calibration data in the register file.
func (mp *MotionPlus) SetCalibration(c CalibrationData) {
	b := c.Bytes()
	copy(mp.regs.calibration(), b[:])
}

// Reset implements the extension.Extension interface. The downstream
// extension is not reset.
func (mp *MotionPlus) Reset() {
	mp.regs = registers{}
	copy(mp.regs.identifier(), inactiveIdentifier[:])
	mp.SetCalibration(DefaultCalibrationData())

	mp.status = Inactive
	mp.pending = pending{}
	mp.passthroughReport = false
	mp.extConnected = false
}

func (mp *MotionPlus) setChallengeState(s ChallengeState) {
	if mp.ChallengeState() == s {
		return
	}
	mp.regs[ChallengeProgressAddr] = uint8(s)
	logger.Logf(mp.env, "motionplus", "challenge %s", s)
}

func (mp *MotionPlus) setStatus(s ActivationStatus) {
	mp.status = s
	logger.Logf(mp.env, "motionplus", "%s", s)
}

func (mp *MotionPlus) activate() {
	mp.setStatus(Activating)
	mp.pending = pending{op: opActivate, ticks: ActivationTicks}
}

func (mp *MotionPlus) deactivate() {
	mp.setStatus(Deactivating)
	mp.pending = pending{op: opDeactivate, ticks: DeactivationTicks}
}

// complete the pending operation.
func (mp *MotionPlus) complete(op operation) {
	switch op {
	case opActivate:
		mp.regs.identifier()[2] = ActiveAddr << 1
		clear(mp.regs.controllerData())
		mp.regs[ChallengeProgressAddr] = uint8(ChallengeActivating)
		mp.passthroughReport = false
		mp.extConnected = false
		mp.setStatus(Active)

	case opDeactivate:
		copy(mp.regs.identifier(), inactiveIdentifier[:])
		mp.setStatus(Inactive)

	case opPrepareX:
		putLittleEndian(mp.regs.challengeData(), ChallengeX())
		mp.setChallengeState(ChallengeParameterXReady)

	case opPrepareY:
		putLittleEndian(mp.regs.challengeData(), ChallengeY(mp.regs[ChallengeTypeAddr]))
		mp.setChallengeState(ChallengeParameterYReady)
	}
}

// BuildDesiredExtensionState implements the extension.Extension interface.
// The state is built by the downstream extension.
func (mp *MotionPlus) BuildDesiredExtensionState(sig input.Signals, target *extension.DesiredState) {
	mp.port.GetAttachedExtension().BuildDesiredExtensionState(sig, target)
}

// Update implements the extension.Extension interface. Update advances the
// pending operation and the challenge/response exchange by one tick. The
// desired state is for the downstream extension and is not used by the
// MotionPlus.
func (mp *MotionPlus) Update(_ extension.DesiredState) {
	if mp.pending.op != opNone {
		mp.pending.ticks--
		if mp.pending.ticks > 0 {
			return
		}
		op := mp.pending.op
		mp.pending = pending{}
		mp.complete(op)
		return
	}

	if mp.status != Active {
		return
	}

	switch mp.ChallengeState() {
	case ChallengeActivating:
		mp.setChallengeState(ChallengePreparingX)
		mp.pending = pending{op: opPrepareX, ticks: PrepareXTicks}
	case ChallengePreparingY:
		ticks := PrepareYTicks
		if mp.regs[ChallengeTypeAddr] != 0 {
			ticks = PrepareYSlowTicks
		}
		mp.pending = pending{op: opPrepareY, ticks: ticks}
	}
}

// PrepareInput produces the next report. Reports alternate between gyroscope
// data, from the supplied sample, and data from the downstream extension.
// Gyroscope data is used instead of downstream data if the passthrough mode
// is disabled or if the downstream extension does not respond.
func (mp *MotionPlus) PrepareInput(sample GyroSample) {
	if mp.status != Active {
		return
	}

	connected := mp.port.IsDeviceConnected()
	if connected != mp.extConnected {
		if connected {
			mp.initDownstream()
			logger.Logf(mp.env, "motionplus", "%s connected", mp.port.GetAttachedExtension().ID())
		} else {
			logger.Log(mp.env, "motionplus", "extension disconnected")
		}
		mp.extConnected = connected
	}

	mp.passthroughReport = !mp.passthroughReport

	mode := mp.PassthroughMode()
	if mp.passthroughReport && mode != PassthroughDisabled {
		var d DataFormat
		if err := mp.downstream.Tx([]byte{extension.ControllerDataAddr}, d[:]); err == nil {
			ApplyPassthroughModifications(mode, d[:])
			setBit(&d[4], 0, 0)
			if mp.extConnected {
				d[4] |= ExtensionConnected
			}
			d[5] &^= IsMotionPlusData | 0x01
			copy(mp.regs.controllerData(), d[:])
			return
		}
	}

	// the report kind is gyroscope data whatever the reason
	mp.passthroughReport = false

	d := NewDataFormat(sample, mp.extConnected)
	copy(mp.regs.controllerData(), d[:])
}

// initDownstream turns off encryption in the downstream extension and copies
// its identifier and calibration into the register file.
func (mp *MotionPlus) initDownstream() {
	if _, err := mp.downstream.Write([]byte{extension.EncryptionAddr, extension.EncryptionDisabled}); err != nil {
		logger.Logf(mp.env, "motionplus", "downstream init: %v", err)
		return
	}

	var id [IdentifierBytes]uint8
	if err := mp.downstream.Tx([]byte{extension.IdentifierAddr}, id[:]); err != nil {
		logger.Logf(mp.env, "motionplus", "downstream init: %v", err)
		return
	}
	mp.regs[PassthroughID0Addr] = id[0]
	mp.regs[PassthroughID4Addr] = id[4]
	mp.regs[PassthroughID5Addr] = id[5]

	if err := mp.downstream.Tx([]byte{extension.CalibrationAddr}, mp.regs.passthroughCalibration()); err != nil {
		logger.Logf(mp.env, "motionplus", "downstream init: %v", err)
	}
}

// BusRead implements the i2c.Slave interface.
func (mp *MotionPlus) BusRead(slaveAddr uint8, addr uint8, data []uint8) int {
	switch mp.status {
	case Inactive:
		if slaveAddr == InactiveAddr {
			return i2c.RawRead(mp.regs[:], addr, data)
		}
		return mp.port.Bus().BusRead(slaveAddr, addr, data)
	case Active:
		if slaveAddr == ActiveAddr {
			return i2c.RawRead(mp.regs[:], addr, data)
		}
	}
	return 0
}

// BusWrite implements the i2c.Slave interface.
func (mp *MotionPlus) BusWrite(slaveAddr uint8, addr uint8, data []uint8) int {
	switch mp.status {
	case Inactive:
		if slaveAddr != InactiveAddr {
			return mp.port.Bus().BusWrite(slaveAddr, addr, data)
		}

		n := i2c.RawWrite(mp.regs[:], addr, data)
		if written(addr, n, ModeAddr) {
			if mode := mp.PassthroughMode(); mode.Valid() {
				logger.Logf(mp.env, "motionplus", "activating with %s", mode)
				mp.activate()
			}
		}
		return n

	case Active:
		if slaveAddr != ActiveAddr {
			return 0
		}

		n := i2c.RawWrite(mp.regs[:], addr, data)

		if written(addr, n, CalibrationTriggerAddr) {
			logger.Logf(mp.env, "motionplus", "calibration triggered (%#02x)", mp.regs[CalibrationTriggerAddr])
		}

		if written(addr, n, ChallengeTypeAddr) {
			mp.setChallengeState(ChallengePreparingY)
			if mp.pending.op == opPrepareX || mp.pending.op == opPrepareY {
				mp.pending = pending{}
			}
		}

		if written(addr, n, InitAddr) || (written(addr, n, ModeAddr) && !mp.PassthroughMode().Valid()) {
			mp.deactivate()
		}

		return n
	}

	return 0
}

// written returns true if a write of n bytes starting at addr included the
// register at reg.
func written(addr uint8, n int, reg int) bool {
	return int(addr) <= reg && int(addr)+n > reg
}

// Snapshot implements the extension.Extension interface. The downstream
// extension is included in the snapshot.
func (mp *MotionPlus) Snapshot() extension.Extension {
	c := *mp
	c.setPort(extension.NewPort("motionplus", i2c.NewBus("motionplus downstream")))
	c.port.AttachExtension(mp.port.GetAttachedExtension().Snapshot())
	return &c
}

// Save implements the extension.Extension interface. The downstream extension
// is included in the saved state.
func (mp *MotionPlus) Save(enc *savestate.Encoder) {
	enc.Section("motionplus")
	enc.Raw(mp.regs[:])
	enc.Int(int(mp.status))
	enc.Uint8(uint8(mp.pending.op))
	enc.Int(mp.pending.ticks)
	enc.Bool(mp.passthroughReport)
	enc.Bool(mp.extConnected)
	mp.port.GetAttachedExtension().Save(enc)
}

// Load implements the extension.Extension interface. The extension attached
// to the downstream port must be of the same type as when the state was
// saved.
func (mp *MotionPlus) Load(dec *savestate.Decoder) {
	dec.Section("motionplus")
	var regs registers
	dec.Raw(regs[:])
	status := ActivationStatus(dec.Int())
	p := pending{op: operation(dec.Uint8())}
	p.ticks = dec.Int()
	passthroughReport := dec.Bool()
	extConnected := dec.Bool()
	if dec.Err() != nil {
		return
	}

	if status < Inactive || status > Deactivating {
		dec.Fail(curated.Errorf(savestate.Invalid, "motionplus activation status", int(status)))
		return
	}
	if !validPending(status, p.op) {
		dec.Fail(curated.Errorf(savestate.Invalid, fmt.Sprintf("motionplus operation while %s", status), int(p.op)))
		return
	}

	mp.regs = regs
	mp.status = status
	mp.pending = p
	mp.passthroughReport = passthroughReport
	mp.extConnected = extConnected
	mp.port.GetAttachedExtension().Load(dec)
}

// validPending returns true if the operation can be outstanding while the
// MotionPlus has the activation status. Activating and Deactivating are only
// left by completing their own operation.
func validPending(status ActivationStatus, op operation) bool {
	switch status {
	case Inactive:
		return op == opNone
	case Activating:
		return op == opActivate
	case Active:
		return op == opNone || op == opPrepareX || op == opPrepareY
	case Deactivating:
		return op == opDeactivate
	}
	return false
}
