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

package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/test"
)

const script = `
name: test script
steps:
  - ticks: 2
    extension: nunchuk
    nunchuk:
      stick: [1, 0]
      c: true
      shake: [true, false, false]
  - ticks: 1
    motionplus: true
    remote:
      gyroscope: [0, 0, 1.5]
      point: {x: 0.5, y: -0.25, visible: true}
  - ticks: 1
    extension: none
`

func TestScript(t *testing.T) {
	scr, err := input.ParseScript([]byte(script))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, scr.Name, "test script")
	test.ExpectEquality(t, scr.Length(), 4)

	sig, ok := scr.Next()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sig.Extension, input.ExtensionNunchuk)
	test.ExpectEquality(t, sig.MotionPlus, false)
	test.ExpectEquality(t, sig.Nunchuk.Stick, dynamics.Vec2{1, 0})
	test.ExpectEquality(t, sig.Nunchuk.C, true)
	test.ExpectEquality(t, sig.Nunchuk.Shake, [3]bool{true, false, false})

	sig, ok = scr.Next()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sig.Nunchuk.Stick, dynamics.Vec2{1, 0})

	// extension carries over, stick does not
	sig, ok = scr.Next()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sig.Extension, input.ExtensionNunchuk)
	test.ExpectEquality(t, sig.MotionPlus, true)
	test.ExpectEquality(t, sig.Nunchuk.Stick, dynamics.Vec2{})
	test.DemandSuccess(t, sig.Remote.Gyroscope != nil)
	test.ExpectEquality(t, *sig.Remote.Gyroscope, dynamics.Vec3{0, 0, 1.5})
	test.ExpectEquality(t, sig.Remote.Point, dynamics.Cursor{X: 0.5, Y: -0.25, Visible: true})

	sig, ok = scr.Next()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sig.Extension, input.ExtensionNone)
	test.ExpectEquality(t, sig.MotionPlus, true)

	_, ok = scr.Next()
	test.ExpectFailure(t, ok)

	// looping
	scr.Rewind()
	scr.Loop = true
	for i := 0; i < scr.Length(); i++ {
		_, ok = scr.Next()
		test.ExpectSuccess(t, ok)
	}
	sig, ok = scr.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sig.Nunchuk.C, true)
}

func TestScriptErrors(t *testing.T) {
	_, err := input.ParseScript([]byte("steps: []"))
	test.ExpectSuccess(t, curated.Is(err, input.ScriptError))

	_, err = input.ParseScript([]byte("steps:\n  - ticks: 0\n"))
	test.ExpectSuccess(t, curated.Is(err, input.ScriptError))

	_, err = input.ParseScript([]byte("steps:\n  - ticks: 1\n    extension: classic\n"))
	test.ExpectSuccess(t, curated.Is(err, input.ScriptError))

	_, err = input.ParseScript([]byte("steps: {"))
	test.ExpectSuccess(t, curated.Is(err, input.ScriptError))

	_, err = input.LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	test.ExpectSuccess(t, curated.Is(err, input.ScriptError))
}

func TestLoadScript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "script.yaml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(script), 0o600))

	scr, err := input.LoadScript(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(scr.Steps), 3)
}

func TestStatic(t *testing.T) {
	src := &input.Static{Signals: input.Signals{Extension: input.ExtensionNunchuk}}
	for i := 0; i < 3; i++ {
		sig, ok := src.Next()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, sig.Extension, input.ExtensionNunchuk)
	}
}

func TestDefaultMotionPlus(t *testing.T) {
	scr, err := input.ParseScript([]byte(script))
	test.DemandSuccess(t, err)

	scr.DefaultMotionPlus(true)
	sig, _ := scr.Next()
	test.ExpectEquality(t, sig.MotionPlus, true)

	// a step can still remove the MotionPlus
	scr, err = input.ParseScript([]byte("steps:\n  - ticks: 1\n    motionplus: false\n"))
	test.DemandSuccess(t, err)
	scr.DefaultMotionPlus(true)
	sig, _ = scr.Next()
	test.ExpectEquality(t, sig.MotionPlus, false)
}
