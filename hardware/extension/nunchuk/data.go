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

package nunchuk

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gomotion/hardware/dynamics"
)

// Stick constants.
const (
	StickCenter     = 0x80
	StickRadius     = 0x7f
	StickGateRadius = 0x52
)

// Accelerometer calibration. These are the upper eight bits of the ten bit
// readings.
const (
	AccelZeroG = 0x80
	AccelOneG  = 0xb3
)

// Bits of the final data byte. Buttons are active low.
const (
	ButtonZ = 0x01
	ButtonC = 0x02
)

// DataFormat is the controller data as it appears in the register file.
//
//	0: stick X
//	1: stick Y
//	2: accelerometer X, upper 8 bits
//	3: accelerometer Y, upper 8 bits
//	4: accelerometer Z, upper 8 bits
//	5: Z, C, then the lower two bits of the X, Y and Z accelerometer values
type DataFormat [6]uint8

// NewDataFormat returns the data for a Nunchuk at rest.
func NewDataFormat() DataFormat {
	var d DataFormat
	d.SetStick(StickCenter, StickCenter)
	d.SetButtons(false, false)
	d.SetAccel(dynamics.ConvertAccelData(dynamics.Vec3{0, 0, dynamics.Gravity}, AccelZeroG<<2, AccelOneG<<2))
	return d
}

func (d DataFormat) String() string {
	x, y := d.Stick()
	c, z := d.Buttons()
	return fmt.Sprintf("stick=%02x,%02x c=%v z=%v accel=%v", x, y, c, z, d.Accel())
}

// Stick returns the raw stick values.
func (d DataFormat) Stick() (uint8, uint8) {
	return d[0], d[1]
}

// SetStick sets the raw stick values.
func (d *DataFormat) SetStick(x, y uint8) {
	d[0] = x
	d[1] = y
}

// Buttons returns true for each button that is pressed.
func (d DataFormat) Buttons() (c bool, z bool) {
	return d[5]&ButtonC == 0, d[5]&ButtonZ == 0
}

// SetButtons sets the state of the buttons. True means pressed.
func (d *DataFormat) SetButtons(c bool, z bool) {
	d[5] |= ButtonC | ButtonZ
	if c {
		d[5] &^= ButtonC
	}
	if z {
		d[5] &^= ButtonZ
	}
}

// Accel returns the ten bit accelerometer values.
func (d DataFormat) Accel() dynamics.AccelData {
	var a dynamics.AccelData
	for i := range a {
		a[i] = uint16(d[2+i])<<2 | uint16(d[5]>>(2+i*2))&0x03
	}
	return a
}

// SetAccel sets the ten bit accelerometer values.
func (d *DataFormat) SetAccel(a dynamics.AccelData) {
	d[5] &= ButtonC | ButtonZ
	for i := range a {
		d[2+i] = uint8(a[i] >> 2)
		d[5] |= uint8(a[i]&0x03) << (2 + i*2)
	}
}

// mapAxis maps a value in the range -1 to 1 to the stick range.
func mapAxis(v float64) uint8 {
	v = math.Max(-1, math.Min(1, v))
	var r float64
	if v > 0 {
		r = StickCenter + v*StickRadius
	} else {
		r = StickCenter + v*StickCenter
	}
	return uint8(math.Round(r))
}

// MapFloat maps stick input to the raw stick values.
//
// Some software only recognises movement when neither axis is on centre. An
// axis exactly on centre is therefore moved off centre when the other axis is
// not at rest.
func MapFloat(stick dynamics.Vec2) (uint8, uint8) {
	x := mapAxis(stick[0])
	y := mapAxis(stick[1])
	if x != StickCenter || y != StickCenter {
		if y == StickCenter {
			y++
		}
		if x == StickCenter {
			x++
		}
	}
	return x, y
}

// UnmapFloat is the approximate inverse of MapFloat().
func UnmapFloat(x, y uint8) dynamics.Vec2 {
	unmap := func(v uint8) float64 {
		f := float64(v) - StickCenter
		if f > 0 {
			return f / StickRadius
		}
		return f / StickCenter
	}
	return dynamics.Vec2{unmap(x), unmap(y)}
}
