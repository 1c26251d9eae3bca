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

package savestate_test

import (
	"testing"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/savestate"
	"github.com/jetsetilly/gomotion/test"
)

func TestRoundTrip(t *testing.T) {
	enc := savestate.NewEncoder()
	enc.Section("test")
	enc.Uint8(0xa4)
	enc.Bool(true)
	enc.Uint16(0x2000)
	enc.Int(-20)
	enc.Float64s(9.80665, -1.5)
	enc.Raw([]uint8{1, 2, 3})

	dec := savestate.NewDecoder(enc.Bytes())
	dec.Section("test")
	test.ExpectEquality(t, dec.Uint8(), uint8(0xa4))
	test.ExpectEquality(t, dec.Bool(), true)
	test.ExpectEquality(t, dec.Uint16(), uint16(0x2000))
	test.ExpectEquality(t, dec.Int(), -20)

	var a, b float64
	dec.Float64s(&a, &b)
	test.ExpectEquality(t, a, 9.80665)
	test.ExpectEquality(t, b, -1.5)

	r := make([]uint8, 3)
	dec.Raw(r)
	test.ExpectEquality(t, r[2], uint8(3))
	test.ExpectSuccess(t, dec.Finish())
}

func TestErrors(t *testing.T) {
	enc := savestate.NewEncoder()
	enc.Section("nunchuk")
	enc.Uint8(1)

	// wrong section
	dec := savestate.NewDecoder(enc.Bytes())
	dec.Section("motionplus")
	test.ExpectSuccess(t, curated.Is(dec.Err(), savestate.SectionMissing))

	// truncated. the error is sticky
	dec = savestate.NewDecoder(enc.Bytes())
	dec.Section("nunchuk")
	_ = dec.Uint16()
	test.ExpectSuccess(t, curated.Is(dec.Err(), savestate.Truncated))
	test.ExpectEquality(t, dec.Uint8(), uint8(0))
	test.ExpectSuccess(t, curated.Is(dec.Finish(), savestate.Truncated))

	// unused data
	dec = savestate.NewDecoder(enc.Bytes())
	dec.Section("nunchuk")
	test.ExpectSuccess(t, curated.Is(dec.Finish(), savestate.Unused))

	// empty data
	dec = savestate.NewDecoder(nil)
	test.ExpectFailure(t, dec.Err())
}

func TestFail(t *testing.T) {
	enc := savestate.NewEncoder()
	enc.Uint8(9)

	dec := savestate.NewDecoder(enc.Bytes())
	v := dec.Uint8()
	test.ExpectSuccess(t, dec.Err())
	dec.Fail(curated.Errorf(savestate.Invalid, "test value", int(v)))
	dec.Fail(curated.Errorf(savestate.Unused, 1))
	test.ExpectSuccess(t, curated.Is(dec.Finish(), savestate.Invalid))
	test.ExpectEquality(t, dec.Finish().Error(), "savestate: invalid test value (9)")
}
