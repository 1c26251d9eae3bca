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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gomotion/environment"
	"github.com/jetsetilly/gomotion/hardware/extension/motionplus"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/modalflag"
	"github.com/jetsetilly/gomotion/prefs"
	"github.com/jetsetilly/gomotion/test"
)

const testScript = `
name: stick right
steps:
  - ticks: 40
    extension: nunchuk
    motionplus: true
    nunchuk:
      stick: [1, 0]
`

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()

	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)

	tw := &test.Writer{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(args)
	err = run(md, env, tw)
	return tw.String(), err
}

func TestParseActivation(t *testing.T) {
	m, err := parseActivation("Nunchuk")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, motionplus.PassthroughNunchuk)

	m, err = parseActivation("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, 0)

	_, err = parseActivation("guitar")
	test.ExpectFailure(t, err)
}

func TestHost(t *testing.T) {
	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)

	h, err := newHost(env, "nunchuk")
	test.DemandSuccess(t, err)

	sig := input.Signals{Extension: input.ExtensionNunchuk, MotionPlus: true}
	sig.Nunchuk.Stick[0] = 1

	var gyro, passthrough int
	for i := 0; i < 40; i++ {
		_, dec := h.step(sig)
		if dec.MotionPlus {
			gyro++
		} else if dec.Nunchuk != nil && h.mpActive() {
			passthrough++
			test.ExpectEquality(t, dec.Nunchuk.StickX, 0xff)
		}
	}

	test.ExpectEquality(t, h.mpActive(), true)
	test.ExpectEquality(t, h.r.MotionPlus().PassthroughMode(), motionplus.PassthroughNunchuk)
	test.ExpectInequality(t, gyro, 0)
	test.ExpectInequality(t, passthrough, 0)

	// pulling out the MotionPlus allows activation to be requested again
	sig.MotionPlus = false
	for i := 0; i < 3; i++ {
		h.step(sig)
	}
	test.ExpectEquality(t, h.r.MotionPlusAttached(), false)
	test.ExpectEquality(t, h.requested, false)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "script.yaml")
	state := filepath.Join(dir, "state")
	graph := filepath.Join(dir, "graph.dot")
	test.DemandSuccess(t, os.WriteFile(script, []byte(testScript), 0o600))

	out, err := runArgs(t, "-activate", "nunchuk", "-savestate", state, "-memviz", graph, script)
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.ExpectEquality(t, len(lines), 40)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], " *"))
	test.ExpectSuccess(t, strings.Contains(out, "| gyro"))
	test.ExpectSuccess(t, strings.Contains(out, "| nunchuk stick=ff,81"))

	_, err = os.Stat(state)
	test.ExpectSuccess(t, err)
	_, err = os.Stat(graph)
	test.ExpectSuccess(t, err)

	// continue from the saved state
	out, err = runArgs(t, "-ticks", "1", "-loadstate", state, script)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Count(out, "\n"), 1)
	test.ExpectSuccess(t, strings.HasPrefix(out, "000041"))
}

func TestRunErrors(t *testing.T) {
	_, err := runArgs(t)
	test.ExpectFailure(t, err)

	_, err = runArgs(t, filepath.Join(t.TempDir(), "missing.yaml"))
	test.ExpectFailure(t, err)

	script := filepath.Join(t.TempDir(), "script.yaml")
	test.DemandSuccess(t, os.WriteFile(script, []byte(testScript), 0o600))

	_, err = runArgs(t, "-loop", script)
	test.ExpectFailure(t, err)

	_, err = runArgs(t, "-activate", "guitar", script)
	test.ExpectFailure(t, err)
}

func TestLoadPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := loadPreferences(fn, "")
	test.DemandSuccess(t, err)
	speed := p.SwingSpeed.Get().(float64)

	logger.Clear()
	p, err = loadPreferences(fn, "motion.swing.speed::2.5; motion.swing.sped::3")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SwingSpeed.Get().(float64), 2.5)
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "gomotion: motion.swing.sped::3 unused\n")

	// overrides only last for the one load
	p, err = loadPreferences(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SwingSpeed.Get().(float64), speed)

	// a bad value is an error
	_, err = loadPreferences(fn, "motion.swing.speed::fast")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
