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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\n"), true)

	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// fewer entries
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.Compare(""), true)
}

func TestRepeat(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Logf(logger.Allow, "motionplus", "status %s", "active")
	logger.Logf(logger.Allow, "motionplus", "status %s", "active")
	logger.Logf(logger.Allow, "motionplus", "status %s", "active")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "motionplus: status active (repeat x3)\n")
	test.ExpectEquality(t, len(logger.Copy()), 1)
}

func TestPermission(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Log(logger.Deny, "test", "should not appear")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "nunchuk", "connected")
	test.ExpectEquality(t, tw.String(), "nunchuk: connected\n")
}
