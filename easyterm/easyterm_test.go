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

package easyterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gomotion/easyterm"
	"github.com/jetsetilly/gomotion/test"
)

func TestReadKey(t *testing.T) {
	r := strings.NewReader("a\x1b[A\x1b[D\x1b[Zz\x1bx")

	expected := []easyterm.Key{'a', easyterm.KeyUp, easyterm.KeyLeft, easyterm.KeyEsc, 'z', easyterm.KeyEsc}
	for i, e := range expected {
		k, err := easyterm.ReadKey(r)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, k, e, i)
	}

	_, err := easyterm.ReadKey(r)
	test.ExpectEquality(t, err, io.EOF)
}

func TestTruncatedSequence(t *testing.T) {
	k, err := easyterm.ReadKey(strings.NewReader("\x1b["))
	test.ExpectEquality(t, k, easyterm.KeyEsc)
	test.ExpectFailure(t, err)
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, easyterm.KeyRight.String(), "right")
	test.ExpectEquality(t, easyterm.Key('c').String(), "c")
}
