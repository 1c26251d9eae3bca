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

package motionweb

import (
	"encoding/json"
	"fmt"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/hardware/remote"
)

// Nunchuk is the decoded Nunchuk part of a Message.
type Nunchuk struct {
	Stick [2]float64 `json:"stick"`
	C     bool       `json:"c"`
	Z     bool       `json:"z"`
	Accel [3]float64 `json:"accel"`
}

// Message is sent to clients for every report.
type Message struct {
	Tick      int       `json:"tick"`
	Accel     [3]uint16 `json:"accel"`
	Extension string    `json:"extension"`
	PortEvent bool      `json:"portEvent,omitempty"`

	// decoded gyroscope data. in rad/s
	MotionPlus      bool        `json:"motionplus"`
	AngularVelocity *[3]float64 `json:"angularVelocity,omitempty"`

	Nunchuk *Nunchuk `json:"nunchuk,omitempty"`
}

// NewMessage creates a message from a report and the decoding of that
// report.
func NewMessage(rpt remote.Report, dec remote.Decoded) Message {
	msg := Message{
		Tick:       rpt.Tick,
		Accel:      rpt.Accel,
		Extension:  fmt.Sprintf("% 02x", rpt.Extension),
		PortEvent:  rpt.PortEvent,
		MotionPlus: dec.MotionPlus,
	}

	if dec.MotionPlus {
		w := [3]float64(dec.AngularVelocity)
		msg.AngularVelocity = &w
	}

	if dec.Nunchuk != nil {
		msg.Nunchuk = &Nunchuk{
			Stick: dec.Nunchuk.Stick,
			C:     dec.Nunchuk.C,
			Z:     dec.Nunchuk.Z,
			Accel: dec.Nunchuk.Acceleration,
		}
	}

	return msg
}

// Marshal the message as JSON.
func (msg Message) Marshal() ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, curated.Errorf("motionweb: %v", err)
	}
	return data, nil
}
