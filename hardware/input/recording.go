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

package input

import (
	"fmt"
	"os"
	"reflect"

	"github.com/jetsetilly/gomotion/curated"
	"gopkg.in/yaml.v3"
)

// Recorder collects the Signals of every tick and produces a Script that
// replays them. Consecutive ticks with the same signals become one step.
type Recorder struct {
	name  string
	steps []Step
	last  Signals
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The name is used as the name of the Script.
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

// Record the signals of a single tick.
func (rec *Recorder) Record(sig Signals) {
	if sig.Extension == "" {
		sig.Extension = ExtensionNone
	}

	if len(rec.steps) > 0 && reflect.DeepEqual(sig, rec.last) {
		rec.steps[len(rec.steps)-1].Ticks++
		return
	}

	rec.last = sig

	ext := sig.Extension
	mp := sig.MotionPlus
	sig.Extension = ""
	sig.MotionPlus = false
	rec.steps = append(rec.steps, Step{
		Ticks:      1,
		Signals:    sig,
		Extension:  &ext,
		MotionPlus: &mp,
	})
}

// Ticks returns the number of ticks recorded.
func (rec *Recorder) Ticks() int {
	n := 0
	for _, s := range rec.steps {
		n += s.Ticks
	}
	return n
}

// Script returns the recording as a Script, ready to be replayed. An error is
// returned if nothing has been recorded.
func (rec *Recorder) Script() (*Script, error) {
	if len(rec.steps) == 0 {
		return nil, curated.Errorf(ScriptError, "nothing recorded")
	}
	scr := &Script{
		Name:  rec.name,
		Steps: append([]Step(nil), rec.steps...),
	}
	scr.Rewind()
	return scr, nil
}

// Marshal the recording as the YAML data of a script.
func (rec *Recorder) Marshal() ([]byte, error) {
	scr, err := rec.Script()
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(scr)
	if err != nil {
		return nil, curated.Errorf(ScriptError, fmt.Errorf("marshal: %w", err))
	}
	return data, nil
}

// Save the recording to a script file.
func (rec *Recorder) Save(path string) error {
	data, err := rec.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return curated.Errorf(ScriptError, fmt.Errorf("write %s: %w", path, err))
	}
	return nil
}
