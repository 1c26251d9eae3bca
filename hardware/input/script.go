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

	"github.com/jetsetilly/gomotion/curated"
	"gopkg.in/yaml.v3"
)

// ScriptError is the curated error pattern for a script that cannot be used.
const ScriptError = "input: script: %v"

// Step is a single entry in a script. The Signals are supplied for the
// number of ticks specified.
type Step struct {
	Ticks   int `yaml:"ticks"`
	Signals `yaml:",inline"`

	// pointers so that an omitted field can be told apart from a false or
	// empty value
	Extension  *ExtensionID `yaml:"extension"`
	MotionPlus *bool        `yaml:"motionplus"`
}

// Script is a Source that replays a list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`

	// repeat from the start when the last step has finished
	Loop bool `yaml:"loop"`

	step int
	tick int

	// extension settings carried over from one step to the next
	extension  ExtensionID
	motionPlus bool

	defaultMotionPlus bool
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ScriptError, fmt.Errorf("read %s: %w", path, err))
	}
	return ParseScript(data)
}

// ParseScript parses the YAML data of a script.
func ParseScript(data []byte) (*Script, error) {
	var scr Script
	if err := yaml.Unmarshal(data, &scr); err != nil {
		return nil, curated.Errorf(ScriptError, fmt.Errorf("parse: %w", err))
	}

	if len(scr.Steps) == 0 {
		return nil, curated.Errorf(ScriptError, "no steps")
	}

	for i, s := range scr.Steps {
		if s.Ticks < 1 {
			return nil, curated.Errorf(ScriptError, fmt.Sprintf("step %d: ticks must be positive (%d)", i, s.Ticks))
		}
		if s.Extension != nil && !s.Extension.Valid() {
			return nil, curated.Errorf(ScriptError, fmt.Sprintf("step %d: unknown extension %q", i, *s.Extension))
		}
	}

	scr.Rewind()

	return &scr, nil
}

// Rewind returns the script to the first tick of the first step.
func (scr *Script) Rewind() {
	scr.step = 0
	scr.tick = 0
	scr.extension = ExtensionNone
	scr.motionPlus = scr.defaultMotionPlus
}

// DefaultMotionPlus sets whether the MotionPlus is attached before a step says
// otherwise. The script is rewound.
func (scr *Script) DefaultMotionPlus(attached bool) {
	scr.defaultMotionPlus = attached
	scr.Rewind()
}

// Length returns the number of ticks in one run of the script.
func (scr *Script) Length() int {
	n := 0
	for _, s := range scr.Steps {
		n += s.Ticks
	}
	return n
}

// Next implements the Source interface.
func (scr *Script) Next() (Signals, bool) {
	if scr.step >= len(scr.Steps) {
		if !scr.Loop {
			return Signals{}, false
		}
		scr.step = 0
		scr.tick = 0
	}

	s := scr.Steps[scr.step]

	if scr.tick == 0 {
		if s.Extension != nil {
			scr.extension = *s.Extension
		}
		if s.MotionPlus != nil {
			scr.motionPlus = *s.MotionPlus
		}
	}

	sig := s.Signals
	sig.Extension = scr.extension
	sig.MotionPlus = scr.motionPlus

	scr.tick++
	if scr.tick >= s.Ticks {
		scr.tick = 0
		scr.step++
	}

	return sig, true
}
