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

package savestate

import (
	"encoding/binary"
	"math"

	"github.com/jetsetilly/gomotion/curated"
)

// Error patterns returned by Decoder.Err().
const (
	Truncated      = "savestate: truncated data reading %s"
	SectionMissing = "savestate: expected section %q found %q"
	Unused         = "savestate: %d bytes of unused data"
	Invalid        = "savestate: invalid %s (%d)"
)

// the version number written at the start of every state.
const version = 1

// Encoder writes values to a byte slice.
type Encoder struct {
	data []byte
}

// NewEncoder is the preferred method of initialisation for the Encoder type.
func NewEncoder() *Encoder {
	enc := &Encoder{data: make([]byte, 0, 1024)}
	enc.Uint8(version)
	return enc
}

// Bytes returns the encoded state.
func (enc *Encoder) Bytes() []byte {
	return enc.data
}

// Section writes a section tag.
func (enc *Encoder) Section(tag string) {
	enc.Uint8(uint8(len(tag)))
	enc.data = append(enc.data, tag...)
}

// Uint8 writes a single byte.
func (enc *Encoder) Uint8(v uint8) {
	enc.data = append(enc.data, v)
}

// Bool writes a boolean as a single byte.
func (enc *Encoder) Bool(v bool) {
	if v {
		enc.Uint8(1)
	} else {
		enc.Uint8(0)
	}
}

// Uint16 writes a 16 bit value.
func (enc *Encoder) Uint16(v uint16) {
	enc.data = binary.LittleEndian.AppendUint16(enc.data, v)
}

// Int writes an integer as 64 bits.
func (enc *Encoder) Int(v int) {
	enc.data = binary.LittleEndian.AppendUint64(enc.data, uint64(int64(v)))
}

// Float64 writes a floating point value.
func (enc *Encoder) Float64(v float64) {
	enc.data = binary.LittleEndian.AppendUint64(enc.data, math.Float64bits(v))
}

// Float64s writes each value in turn. The length is not written.
func (enc *Encoder) Float64s(v ...float64) {
	for _, f := range v {
		enc.Float64(f)
	}
}

// Raw writes the slice. The length is not written.
func (enc *Encoder) Raw(v []uint8) {
	enc.data = append(enc.data, v...)
}

// Decoder reads values written by an Encoder.
type Decoder struct {
	data []byte
	idx  int
	err  error
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(data []byte) *Decoder {
	dec := &Decoder{data: data}
	if v := dec.Uint8(); dec.err == nil && v != version {
		dec.err = curated.Errorf("savestate: unsupported version %d", v)
	}
	return dec
}

// Err returns the first error encountered.
func (dec *Decoder) Err() error {
	return dec.err
}

// Fail records an error found by the caller in data that was otherwise read
// successfully. An earlier error is not replaced.
func (dec *Decoder) Fail(err error) {
	if dec.err == nil {
		dec.err = err
	}
}

// Finish returns the first error encountered, or an error if not all data
// has been read.
func (dec *Decoder) Finish() error {
	if dec.err != nil {
		return dec.err
	}
	if dec.idx != len(dec.data) {
		return curated.Errorf(Unused, len(dec.data)-dec.idx)
	}
	return nil
}

func (dec *Decoder) next(n int, what string) []byte {
	if dec.err != nil {
		return nil
	}
	if dec.idx+n > len(dec.data) {
		dec.err = curated.Errorf(Truncated, what)
		return nil
	}
	b := dec.data[dec.idx : dec.idx+n]
	dec.idx += n
	return b
}

// Section reads a section tag and checks it against the expected tag.
func (dec *Decoder) Section(tag string) {
	n := dec.Uint8()
	b := dec.next(int(n), "section")
	if dec.err != nil {
		return
	}
	if string(b) != tag {
		dec.err = curated.Errorf(SectionMissing, tag, string(b))
	}
}

// Uint8 reads a single byte.
func (dec *Decoder) Uint8() uint8 {
	b := dec.next(1, "uint8")
	if b == nil {
		return 0
	}
	return b[0]
}

// Bool reads a boolean.
func (dec *Decoder) Bool() bool {
	return dec.Uint8() != 0
}

// Uint16 reads a 16 bit value.
func (dec *Decoder) Uint16() uint16 {
	b := dec.next(2, "uint16")
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Int reads an integer.
func (dec *Decoder) Int() int {
	b := dec.next(8, "int")
	if b == nil {
		return 0
	}
	return int(int64(binary.LittleEndian.Uint64(b)))
}

// Float64 reads a floating point value.
func (dec *Decoder) Float64() float64 {
	b := dec.next(8, "float64")
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// Float64s reads a value into each pointer in turn.
func (dec *Decoder) Float64s(v ...*float64) {
	for _, f := range v {
		*f = dec.Float64()
	}
}

// Raw fills the slice.
func (dec *Decoder) Raw(v []uint8) {
	b := dec.next(len(v), "raw bytes")
	if b != nil {
		copy(v, b)
	}
}
