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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	// plain errors are never curated
	p := fmt.Errorf("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectSuccess(t, errors.Is(f, e))
	test.ExpectSuccess(t, errors.Is(f, curated.Errorf(testPattern, "foo")))
	test.ExpectFailure(t, errors.Is(f, curated.Errorf(testPattern, "bar")))
	test.ExpectFailure(t, errors.Is(e, f))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("nunchuk: %v", curated.Errorf("nunchuk: %v", "bad stick"))
	test.ExpectEquality(t, e.Error(), "nunchuk: bad stick")

	e = curated.Errorf("remote: %v", curated.Errorf("nunchuk: %v", curated.Errorf("nunchuk: %v", "x")))
	test.ExpectEquality(t, e.Error(), "remote: nunchuk: x")
}
