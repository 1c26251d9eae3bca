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

package input

import (
	"fmt"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
)

// EventID identifies the signal that an Event changes.
type EventID string

// List of valid EventID values.
const (
	// set the stick axis to the event value
	StickX EventID = "StickX"
	StickY EventID = "StickY"

	// return the stick to the centre
	StickCentre EventID = "StickCentre"

	// toggle the Nunchuk buttons
	ButtonC EventID = "ButtonC"
	ButtonZ EventID = "ButtonZ"

	// toggle shaking of the Nunchuk on the axis in the event value (0, 1 or 2)
	Shake EventID = "Shake"

	// set the tilt of the remote on the axis. level the remote
	TiltX     EventID = "TiltX"
	TiltY     EventID = "TiltY"
	TiltLevel EventID = "TiltLevel"

	// plug in or pull out the Nunchuk
	ToggleNunchuk EventID = "ToggleNunchuk"

	// plug in or pull out the MotionPlus
	ToggleMotionPlus EventID = "ToggleMotionPlus"

	// recentre the gyroscope cursor on the next tick
	Recenter EventID = "Recenter"
)

// Event is a change to the signals made by a user.
type Event struct {
	ID    EventID
	Value float64
}

func (ev Event) String() string {
	return fmt.Sprintf("%s %.2f", ev.ID, ev.Value)
}

// the number of events that can be pushed before any are handled.
const pushedQueueLength = 64

// Pushed is a Source driven by events pushed from another goroutine. Events
// are handled at the start of the next tick.
type Pushed struct {
	pushed chan Event
	sig    Signals
}

// NewPushed is the preferred method of initialisation for the Pushed type.
func NewPushed() *Pushed {
	return &Pushed{
		pushed: make(chan Event, pushedQueueLength),
		sig:    Signals{Extension: ExtensionNone},
	}
}

// Push an event onto the queue. Safe to call from any goroutine. An error is
// returned if the queue is full, in which case the event is dropped.
func (p *Pushed) Push(ev Event) error {
	select {
	case p.pushed <- ev:
	default:
		return curated.Errorf("input: pushed event queue is full: %s dropped", ev.ID)
	}
	return nil
}

// Signals returns the signals as they are after all events handled so far.
func (p *Pushed) Signals() Signals {
	return p.sig
}

// Next implements the Source interface. Pushed events are handled before the
// signals are returned. The source is never exhausted.
func (p *Pushed) Next() (Signals, bool) {
	_ = p.handlePushed()
	sig := p.sig
	p.sig.Remote.Recenter = false
	return sig, true
}

func (p *Pushed) handlePushed() error {
	for {
		select {
		case ev := <-p.pushed:
			if err := p.HandleEvent(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// HandleEvent changes the signals immediately. It should only be called from
// the goroutine that calls Next(). Other goroutines should use Push().
func (p *Pushed) HandleEvent(ev Event) error {
	switch ev.ID {
	case StickX:
		p.sig.Nunchuk.Stick[0] = clamp(ev.Value)
	case StickY:
		p.sig.Nunchuk.Stick[1] = clamp(ev.Value)
	case StickCentre:
		p.sig.Nunchuk.Stick = dynamics.Vec2{}
	case ButtonC:
		p.sig.Nunchuk.C = !p.sig.Nunchuk.C
	case ButtonZ:
		p.sig.Nunchuk.Z = !p.sig.Nunchuk.Z
	case Shake:
		axis := int(ev.Value)
		if axis < 0 || axis >= len(p.sig.Nunchuk.Shake) {
			return curated.Errorf("input: no shake axis %d", axis)
		}
		p.sig.Nunchuk.Shake[axis] = !p.sig.Nunchuk.Shake[axis]
	case TiltX:
		p.sig.Remote.Tilt[0] = clamp(ev.Value)
	case TiltY:
		p.sig.Remote.Tilt[1] = clamp(ev.Value)
	case TiltLevel:
		p.sig.Remote.Tilt = dynamics.Vec2{}
	case ToggleNunchuk:
		if p.sig.Extension == ExtensionNunchuk {
			p.sig.Extension = ExtensionNone
		} else {
			p.sig.Extension = ExtensionNunchuk
		}
	case ToggleMotionPlus:
		p.sig.MotionPlus = !p.sig.MotionPlus
	case Recenter:
		p.sig.Remote.Recenter = true
	default:
		return curated.Errorf("input: unrecognised event (%s)", ev.ID)
	}
	return nil
}
