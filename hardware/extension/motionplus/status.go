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

import "fmt"

// ActivationStatus is the lifecycle of the MotionPlus.
type ActivationStatus int

// List of valid ActivationStatus values.
const (
	Inactive ActivationStatus = iota
	Activating
	Active
	Deactivating
)

func (s ActivationStatus) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Activating:
		return "activating"
	case Active:
		return "active"
	case Deactivating:
		return "deactivating"
	}
	return fmt.Sprintf("unknown activation status (%d)", int(s))
}

// ChallengeState is the progress of the challenge/response exchange. The
// values are those that appear in the challenge progress register.
type ChallengeState uint8

// List of valid ChallengeState values.
const (
	ChallengeActivating      ChallengeState = 0x00
	ChallengePreparingX      ChallengeState = 0x02
	ChallengeParameterXReady ChallengeState = 0x0e
	ChallengePreparingY      ChallengeState = 0x14
	ChallengeParameterYReady ChallengeState = 0x1a
)

func (s ChallengeState) String() string {
	switch s {
	case ChallengeActivating:
		return "activating"
	case ChallengePreparingX:
		return "preparing x"
	case ChallengeParameterXReady:
		return "parameter x ready"
	case ChallengePreparingY:
		return "preparing y"
	case ChallengeParameterYReady:
		return "parameter y ready"
	}
	return fmt.Sprintf("unknown challenge state (%#02x)", uint8(s))
}

// PassthroughMode selects how the reports of the downstream extension are
// reshuffled. The value is written by the host to ModeAddr.
type PassthroughMode uint8

// List of valid PassthroughMode values.
const (
	PassthroughDisabled PassthroughMode = 0x04
	PassthroughNunchuk  PassthroughMode = 0x05
	PassthroughClassic  PassthroughMode = 0x07
)

// Valid returns true if the mode is one that activates the MotionPlus.
func (m PassthroughMode) Valid() bool {
	switch m {
	case PassthroughDisabled, PassthroughNunchuk, PassthroughClassic:
		return true
	}
	return false
}

func (m PassthroughMode) String() string {
	switch m {
	case PassthroughDisabled:
		return "no passthrough"
	case PassthroughNunchuk:
		return "nunchuk passthrough"
	case PassthroughClassic:
		return "classic passthrough"
	}
	return fmt.Sprintf("unknown passthrough mode (%#02x)", uint8(m))
}

// the delayed operations of the MotionPlus.
type operation uint8

const (
	opNone operation = iota
	opActivate
	opDeactivate
	opPrepareX
	opPrepareY
)

// Durations of the delayed operations, in ticks.
const (
	ActivationTicks   = 4
	DeactivationTicks = 4
	PrepareXTicks     = 20
	PrepareYTicks     = 6
	PrepareYSlowTicks = PrepareYTicks * 15
)

// pending is the single delayed operation that is outstanding. only one
// operation can be outstanding at any one time.
type pending struct {
	op    operation
	ticks int
}

func (p pending) String() string {
	switch p.op {
	case opActivate:
		return fmt.Sprintf("activate in %d", p.ticks)
	case opDeactivate:
		return fmt.Sprintf("deactivate in %d", p.ticks)
	case opPrepareX:
		return fmt.Sprintf("prepare x in %d", p.ticks)
	case opPrepareY:
		return fmt.Sprintf("prepare y in %d", p.ticks)
	}
	return ""
}
