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
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/test"
)

func TestPushed(t *testing.T) {
	p := input.NewPushed()

	sig, ok := p.Next()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sig.Extension, input.ExtensionNone)

	test.DemandSuccess(t, p.Push(input.Event{ID: input.StickX, Value: 2}))
	test.DemandSuccess(t, p.Push(input.Event{ID: input.ButtonC}))
	test.DemandSuccess(t, p.Push(input.Event{ID: input.ToggleNunchuk}))
	test.DemandSuccess(t, p.Push(input.Event{ID: input.Shake, Value: 2}))
	test.DemandSuccess(t, p.Push(input.Event{ID: input.Recenter}))

	// pushed events are not seen until the next tick
	test.ExpectEquality(t, p.Signals().Nunchuk.C, false)

	sig, _ = p.Next()
	test.ExpectEquality(t, sig.Nunchuk.Stick, dynamics.Vec2{1, 0})
	test.ExpectEquality(t, sig.Nunchuk.C, true)
	test.ExpectEquality(t, sig.Extension, input.ExtensionNunchuk)
	test.ExpectEquality(t, sig.Nunchuk.Shake, [3]bool{false, false, true})
	test.ExpectEquality(t, sig.Remote.Recenter, true)

	// recenter lasts for one tick only
	sig, _ = p.Next()
	test.ExpectEquality(t, sig.Remote.Recenter, false)
	test.ExpectEquality(t, sig.Nunchuk.C, true)

	test.ExpectSuccess(t, p.HandleEvent(input.Event{ID: input.StickCentre}))
	test.ExpectSuccess(t, p.HandleEvent(input.Event{ID: input.ToggleNunchuk}))
	test.ExpectSuccess(t, p.HandleEvent(input.Event{ID: input.ToggleMotionPlus}))
	sig = p.Signals()
	test.ExpectEquality(t, sig.Nunchuk.Stick, dynamics.Vec2{})
	test.ExpectEquality(t, sig.Extension, input.ExtensionNone)
	test.ExpectEquality(t, sig.MotionPlus, true)

	test.ExpectFailure(t, p.HandleEvent(input.Event{ID: input.Shake, Value: 3}))
	test.ExpectFailure(t, p.HandleEvent(input.Event{ID: "Jump"}))
}

func TestPushedQueueFull(t *testing.T) {
	p := input.NewPushed()

	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		err = p.Push(input.Event{ID: input.ButtonZ})
	}
	test.ExpectFailure(t, err)

	// handling the queue makes room again
	p.Next()
	test.ExpectSuccess(t, p.Push(input.Event{ID: input.ButtonZ}))
}

func TestRecorder(t *testing.T) {
	rec := input.NewRecorder("recording")

	_, err := rec.Script()
	test.ExpectFailure(t, err)

	p := input.NewPushed()
	var recorded []input.Signals

	events := []input.Event{
		{ID: input.ToggleNunchuk},
		{ID: input.StickY, Value: -0.5},
		{ID: input.TiltX, Value: 0.25},
		{ID: input.ToggleMotionPlus},
		{ID: input.ButtonZ},
		{ID: input.TiltLevel},
	}

	for _, ev := range events {
		test.DemandSuccess(t, p.HandleEvent(ev))
		for i := 0; i < 3; i++ {
			sig, _ := p.Next()
			rec.Record(sig)
			recorded = append(recorded, sig)
		}
	}
	test.ExpectEquality(t, rec.Ticks(), len(recorded))

	path := filepath.Join(t.TempDir(), "recording.yaml")
	test.DemandSuccess(t, rec.Save(path))

	scr, err := input.LoadScript(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, scr.Name, "recording")
	test.ExpectEquality(t, len(scr.Steps), len(events))
	test.ExpectEquality(t, scr.Length(), len(recorded))

	for i, r := range recorded {
		sig, ok := scr.Next()
		test.DemandSuccess(t, ok)
		if !reflect.DeepEqual(sig, r) {
			t.Errorf("tick %d: replay does not match recording: %s != %s", i, sig, r)
		}
	}

	_, ok := scr.Next()
	test.ExpectEquality(t, ok, false)
}
