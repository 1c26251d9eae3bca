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
	"fmt"

	"github.com/jetsetilly/gomotion/hardware/i2c"
)

// PlugEvent describes a change to what is plugged into a Port.
type PlugEvent struct {
	Port      string
	Extension string
	Attached  bool
}

func (ev PlugEvent) String() string {
	if ev.Attached {
		return fmt.Sprintf("%s: %s attached", ev.Port, ev.Extension)
	}
	return fmt.Sprintf("%s: %s detached", ev.Port, ev.Extension)
}

// PlugMonitor is implemented by types that want to be told about changes to
// a Port.
type PlugMonitor interface {
	Plugged(PlugEvent)
}

// Port is an extension port. The extension attached to the port is also a
// slave on the port's bus.
type Port struct {
	label     string
	bus       *i2c.Bus
	extension Extension
	monitor   PlugMonitor
}

// NewPort is the preferred method of initialisation for the Port type. The
// port starts with the None extension attached.
func NewPort(label string, bus *i2c.Bus) *Port {
	p := &Port{
		label:     label,
		bus:       bus,
		extension: &None{},
	}
	p.bus.AddSlave(p.extension)
	return p
}

func (p *Port) String() string {
	return fmt.Sprintf("%s: %s", p.label, p.extension.String())
}

// Bus returns the bus that the attached extension is a slave of.
func (p *Port) Bus() *i2c.Bus {
	return p.bus
}

// AttachPlugMonitor sets the monitor that is notified of attach and detach
// events. A nil value removes the monitor.
func (p *Port) AttachPlugMonitor(m PlugMonitor) {
	p.monitor = m
}

// IsDeviceConnected reads the device detect pin of the attached extension.
func (p *Port) IsDeviceConnected() bool {
	return p.extension.ReadDeviceDetectPin()
}

// AttachExtension replaces the attached extension. A nil value attaches the
// None extension.
func (p *Port) AttachExtension(ext Extension) {
	if ext == nil {
		ext = &None{}
	}

	if ext == p.extension {
		return
	}

	old := p.extension
	p.bus.RemoveSlave(old)
	p.extension = ext
	p.bus.AddSlave(p.extension)

	if p.monitor != nil {
		if _, ok := old.(*None); !ok {
			p.monitor.Plugged(PlugEvent{Port: p.label, Extension: string(old.ID()), Attached: false})
		}
		if _, ok := ext.(*None); !ok {
			p.monitor.Plugged(PlugEvent{Port: p.label, Extension: string(ext.ID()), Attached: true})
		}
	}
}

// GetAttachedExtension returns the extension currently attached.
func (p *Port) GetAttachedExtension() Extension {
	return p.extension
}
