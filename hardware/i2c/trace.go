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
)

// Direction of a transaction.
type Direction int

// List of valid Direction values.
const (
	Read Direction = iota
	Write
)

func (d Direction) String() string {
	if d == Read {
		return "R"
	}
	return "W"
}

// Transaction is a single entry in a Trace.
type Transaction struct {
	Dir       Direction
	SlaveAddr uint8
	Addr      uint8
	Requested int

	// the bytes actually transferred. a transaction that was not answered has
	// no data
	Data []uint8
}

func (tx Transaction) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %02x:%02x", tx.Dir, tx.SlaveAddr, tx.Addr))
	if len(tx.Data) == 0 {
		s.WriteString(" NAK")
		return s.String()
	}
	for _, d := range tx.Data {
		s.WriteString(fmt.Sprintf(" %02x", d))
	}
	if len(tx.Data) < tx.Requested {
		s.WriteString(fmt.Sprintf(" (short %d/%d)", len(tx.Data), tx.Requested))
	}
	return s.String()
}

// Trace records the most recent transactions on a bus. New transactions are
// added to the end of the Activity slice.
type Trace struct {
	Label    string
	Activity []Transaction
	length   int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace(label string, length int) *Trace {
	if length < 1 {
		length = 1
	}
	return &Trace{
		Label:    label,
		Activity: make([]Transaction, 0, length),
		length:   length,
	}
}

func (tr *Trace) add(dir Direction, slaveAddr uint8, addr uint8, data []uint8, requested int) {
	tx := Transaction{
		Dir:       dir,
		SlaveAddr: slaveAddr,
		Addr:      addr,
		Requested: requested,
		Data:      make([]uint8, len(data)),
	}
	copy(tx.Data, data)

	if len(tr.Activity) >= tr.length {
		tr.Activity = append(tr.Activity[1:], tx)
	} else {
		tr.Activity = append(tr.Activity, tx)
	}
}

// Last returns the most recent transaction. The boolean is false if there
// have been no transactions.
func (tr *Trace) Last() (Transaction, bool) {
	if len(tr.Activity) == 0 {
		return Transaction{}, false
	}
	return tr.Activity[len(tr.Activity)-1], true
}

func (tr *Trace) String() string {
	s := strings.Builder{}
	for _, tx := range tr.Activity {
		s.WriteString(tr.Label)
		s.WriteString(": ")
		s.WriteString(tx.String())
		s.WriteString("\n")
	}
	return s.String()
}
