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

package main

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gomotion/environment"
	"github.com/jetsetilly/gomotion/hardware/extension"
	"github.com/jetsetilly/gomotion/hardware/extension/motionplus"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/hardware/remote"
	"github.com/jetsetilly/gomotion/logger"
)

// host drives the remote in the way that software running on the console
// would. It initialises extensions when they are plugged in and optionally
// activates the MotionPlus.
type host struct {
	env *environment.Environment
	r   *remote.Remote

	// passthrough mode to activate the MotionPlus with. zero if the MotionPlus
	// should be left inactive
	activate motionplus.PassthroughMode

	// activation has been requested since the MotionPlus was plugged in
	requested bool
}

// parseActivation converts the value of the -activate flag.
func parseActivation(s string) (motionplus.PassthroughMode, error) {
	switch strings.ToLower(s) {
	case "", "off":
		return 0, nil
	case "none", "disabled":
		return motionplus.PassthroughDisabled, nil
	case "nunchuk":
		return motionplus.PassthroughNunchuk, nil
	case "classic":
		return motionplus.PassthroughClassic, nil
	}
	return 0, fmt.Errorf("unknown passthrough mode (%s)", s)
}

func newHost(env *environment.Environment, activate string) (*host, error) {
	mode, err := parseActivation(activate)
	if err != nil {
		return nil, err
	}

	r, err := remote.NewRemote(env)
	if err != nil {
		return nil, err
	}

	return &host{
		env:      env,
		r:        r,
		activate: mode,
	}, nil
}

func (h *host) mpActive() bool {
	return h.r.MotionPlusAttached() && h.r.MotionPlus().Status() == motionplus.Active
}

// step runs the remote for one tick and decodes the report.
func (h *host) step(sig input.Signals) (remote.Report, remote.Decoded) {
	rpt := h.r.Step(sig)

	mp := h.r.MotionPlus()
	dec := remote.Decode(rpt.Extension, h.r.ActiveExtension(), h.mpActive(), mp.PassthroughMode(), mp.Calibration())

	// the usual initialisation sequence turns off encryption. writing to the
	// init register of an active MotionPlus would deactivate it
	if rpt.PortEvent && h.r.Connected() && !h.mpActive() {
		if err := h.r.Write(extension.I2CAddr, extension.EncryptionAddr, extension.EncryptionDisabled); err != nil {
			logger.Logf(h.env, "host", "initialisation: %v", err)
		}
		if err := h.r.Write(extension.I2CAddr, extension.InitAddr, 0x00); err != nil {
			logger.Logf(h.env, "host", "initialisation: %v", err)
		}
	}

	if !h.r.MotionPlusAttached() {
		h.requested = false
	} else if h.activate != 0 && !h.requested && mp.Status() == motionplus.Inactive {
		if err := h.r.Write(motionplus.InactiveAddr, motionplus.ModeAddr, uint8(h.activate)); err != nil {
			logger.Logf(h.env, "host", "activation: %v", err)
		}
		h.requested = true
	}

	return rpt, dec
}

// describe a report and its decoding as a single line.
func describe(rpt remote.Report, dec remote.Decoded) string {
	s := strings.Builder{}
	s.WriteString(rpt.String())
	switch {
	case dec.MotionPlus:
		w := dec.AngularVelocity
		s.WriteString(fmt.Sprintf(" | gyro %+.3f %+.3f %+.3f", w[0], w[1], w[2]))
	case dec.Nunchuk != nil:
		s.WriteString(fmt.Sprintf(" | nunchuk %s", dec.Nunchuk))
	}
	if rpt.PortEvent {
		s.WriteString(" *")
	}
	return s.String()
}
