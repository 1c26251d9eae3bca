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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/prefs"
	"github.com/jetsetilly/gomotion/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(1))
}

func TestIntAndFloat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("number", &n))
	test.ExpectSuccess(t, dsk.Add("speed", &f))

	test.ExpectSuccess(t, n.Set("99"))
	test.ExpectSuccess(t, f.Set(0.5))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 99\nspeed :: 0.5\n")

	test.ExpectFailure(t, n.Set("---"))
	test.ExpectFailure(t, n.Set(1.0))
	test.ExpectFailure(t, f.Set("fast"))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("name", &s))
	test.ExpectSuccess(t, dsk.Add("speed", &f))
	test.ExpectFailure(t, dsk.Add("speed", &f))

	// loading a file that doesn't exist
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, s.Set("nunchuk"))
	test.ExpectSuccess(t, f.Set(2.25))
	test.DemandSuccess(t, dsk.Save())

	// a second disk with a subset of keys must preserve the other entries
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s2 prefs.String
	test.ExpectSuccess(t, dsk2.Add("name", &s2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, s2.String(), "nunchuk")
	test.ExpectSuccess(t, s2.Set("classic"))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, fn, "name :: classic\nspeed :: 2.25\n")
}

func TestHooks(t *testing.T) {
	var f prefs.Float
	var post float64

	f.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	f.SetHookPost(func(v prefs.Value) error {
		post = v.(float64)
		return nil
	})

	test.ExpectSuccess(t, f.Set(1.5))
	test.ExpectEquality(t, post, 1.5)
	test.ExpectFailure(t, f.Set(-1.0))
	test.ExpectEquality(t, f.Get().(float64), 1.5)
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &n))

	prefs.PushCommandLineStack("number::7; unknown::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, n.Get().(int), 7)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
