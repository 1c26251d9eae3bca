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

package i2c

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gomotion/curated"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Slave is implemented by devices attached to the bus. The slaveAddr is the
// 7-bit bus address of the transaction and addr is the register address
// within the device.
//
// Both functions return the number of bytes transferred. Zero means that the
// device did not respond.
type Slave interface {
	BusRead(slaveAddr uint8, addr uint8, data []uint8) int
	BusWrite(slaveAddr uint8, addr uint8, data []uint8) int
}

// Error patterns for Tx().
const (
	ShortRead  = "i2c: short read from %#02x (%d of %d bytes)"
	ShortWrite = "i2c: short write to %#02x (%d of %d bytes)"
	NoRegister = "i2c: transaction to %#02x has no register address"
)

// StandardSpeed is the speed of the bus in standard mode.
const StandardSpeed = 100 * physic.KiloHertz

// Bus connects a host to any number of Slave devices.
type Bus struct {
	label  string
	slaves []Slave
	speed  physic.Frequency

	// Trace is nil unless tracing has been enabled with EnableTrace()
	Trace *Trace
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(label string) *Bus {
	return &Bus{
		label: label,
		speed: StandardSpeed,
	}
}

// AddSlave attaches a device to the bus. Adding a device that is already
// attached does nothing.
func (bus *Bus) AddSlave(slave Slave) {
	for _, s := range bus.slaves {
		if s == slave {
			return
		}
	}
	bus.slaves = append(bus.slaves, slave)
}

// RemoveSlave detaches a device from the bus.
func (bus *Bus) RemoveSlave(slave Slave) {
	for i, s := range bus.slaves {
		if s == slave {
			bus.slaves = append(bus.slaves[:i], bus.slaves[i+1:]...)
			return
		}
	}
}

// Reset detaches every device.
func (bus *Bus) Reset() {
	bus.slaves = bus.slaves[:0]
}

// EnableTrace starts recording transactions. A previous trace is discarded.
func (bus *Bus) EnableTrace(length int) {
	bus.Trace = NewTrace(bus.label, length)
}

// BusRead offers the read to each device in turn. The first device to respond
// decides the result.
func (bus *Bus) BusRead(slaveAddr uint8, addr uint8, data []uint8) int {
	n := 0
	for _, s := range bus.slaves {
		n = s.BusRead(slaveAddr, addr, data)
		if n > 0 {
			break
		}
	}
	if bus.Trace != nil {
		bus.Trace.add(Read, slaveAddr, addr, data[:n], len(data))
	}
	return n
}

// BusWrite offers the write to each device in turn. The first device to
// respond decides the result.
func (bus *Bus) BusWrite(slaveAddr uint8, addr uint8, data []uint8) int {
	n := 0
	for _, s := range bus.slaves {
		n = s.BusWrite(slaveAddr, addr, data)
		if n > 0 {
			break
		}
	}
	if bus.Trace != nil {
		bus.Trace.add(Write, slaveAddr, addr, data[:n], len(data))
	}
	return n
}

func (bus *Bus) String() string {
	s := strings.Builder{}
	s.WriteString(bus.label)
	s.WriteString(fmt.Sprintf(" [%d devices]", len(bus.slaves)))
	return s.String()
}

// Tx implements the i2c.Bus interface. The first byte of w is the register
// address. Any remaining bytes of w are written from that address, and then r
// is filled by reading from the same address.
func (bus *Bus) Tx(addr uint16, w, r []byte) error {
	if len(w) == 0 {
		return curated.Errorf(NoRegister, addr)
	}

	slaveAddr := uint8(addr)
	reg := w[0]

	if len(w) > 1 {
		if n := bus.BusWrite(slaveAddr, reg, w[1:]); n < len(w)-1 {
			return curated.Errorf(ShortWrite, addr, n, len(w)-1)
		}
	}

	if len(r) > 0 {
		if n := bus.BusRead(slaveAddr, reg, r); n < len(r) {
			return curated.Errorf(ShortRead, addr, n, len(r))
		}
	}

	return nil
}

// SetSpeed implements the i2c.Bus interface. The speed is recorded but has no
// effect on the emulation.
func (bus *Bus) SetSpeed(f physic.Frequency) error {
	if f <= 0 {
		return fmt.Errorf("i2c: invalid bus speed %s", f)
	}
	bus.speed = f
	return nil
}

// Speed returns the most recent value given to SetSpeed().
func (bus *Bus) Speed() physic.Frequency {
	return bus.speed
}

// make sure Bus satisfies the periph interface
var _ i2c.Bus = (*Bus)(nil)
