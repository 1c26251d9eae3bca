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
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gomotion/easyterm"
	"github.com/jetsetilly/gomotion/environment"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/input"
	"github.com/jetsetilly/gomotion/hardware/preferences"
	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/modalflag"
	"github.com/jetsetilly/gomotion/motionweb"
	"github.com/jetsetilly/gomotion/paths"
	"github.com/jetsetilly/gomotion/prefs"
	"github.com/jetsetilly/gomotion/savestate"
	"github.com/jetsetilly/gomotion/statsview"
	"github.com/jetsetilly/gomotion/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	prefsFile := md.AddString("prefs", paths.ResourcePath("preferences"), "preferences file")
	setPrefs := md.AddString("setprefs", "", "override preferences: \"key::value; key::value\"")
	echo := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.Address))
	md.AddSubModes("RUN", "INTERACTIVE", "SERVE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if md.Mode() == "VERSION" {
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
		return
	}

	prf, err := loadPreferences(*prefsFile, *setPrefs)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, prf)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, env, os.Stdout)
	case "INTERACTIVE":
		err = interactive(md, env)
	case "SERVE":
		err = serve(md, env)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// loadPreferences from the file with the overrides taking priority over the
// values in the file. Overrides that do not name a motion preference are
// logged.
func loadPreferences(path string, overrides string) (*preferences.Preferences, error) {
	if overrides == "" {
		return preferences.NewPreferences(path)
	}

	prefs.PushCommandLineStack(overrides)
	prf, err := preferences.NewPreferences(path)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gomotion", "%s unused", unused)
	}
	return prf, err
}

// loadState into the remote from a file written by saveState().
func loadState(h *host, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return h.r.Load(savestate.NewDecoder(data))
}

func saveState(h *host, path string) error {
	enc := savestate.NewEncoder()
	h.r.Save(enc)
	return os.WriteFile(path, enc.Bytes(), 0o644)
}

// writeMemviz writes a graph of the remote and everything attached to it.
func writeMemviz(h *host, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, h.r)
	return nil
}

func run(md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()
	ticks := md.AddInt("ticks", 0, "number of ticks to run (0 to run the script once)")
	loop := md.AddBool("loop", false, "repeat the script (requires -ticks)")
	activate := md.AddString("activate", "", "activate the MotionPlus in passthrough mode: none, nunchuk, classic")
	quiet := md.AddBool("quiet", false, "do not print reports")
	load := md.AddString("loadstate", "", "load state from file before running")
	save := md.AddString("savestate", "", "save state to file after running")
	viz := md.AddString("memviz", "", "write a graph of the emulation to file in dot format")
	md.AdditionalHelp("The argument is a YAML script of input signals.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single script file is required")
	}

	scr, err := input.LoadScript(md.GetArg(0))
	if err != nil {
		return err
	}
	scr.Loop = *loop
	scr.DefaultMotionPlus(env.Prefs.MotionPlus.Get().(bool))

	n := *ticks
	if n == 0 {
		if *loop {
			return fmt.Errorf("-loop requires -ticks")
		}
		n = scr.Length()
	}

	h, err := newHost(env, *activate)
	if err != nil {
		return err
	}

	if *load != "" {
		if err := loadState(h, *load); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		sig, ok := scr.Next()
		if !ok {
			break
		}
		rpt, dec := h.step(sig)
		if !*quiet {
			fmt.Fprintln(output, describe(rpt, dec))
		}
	}

	if *save != "" {
		if err := saveState(h, *save); err != nil {
			return err
		}
	}

	if *viz != "" {
		if err := writeMemviz(h, *viz); err != nil {
			return err
		}
	}

	return nil
}

// keys used in interactive mode.
var keyEvents = map[easyterm.Key]input.Event{
	easyterm.KeyUp:    {ID: input.StickY, Value: 1},
	easyterm.KeyDown:  {ID: input.StickY, Value: -1},
	easyterm.KeyLeft:  {ID: input.StickX, Value: -1},
	easyterm.KeyRight: {ID: input.StickX, Value: 1},
	' ':               {ID: input.StickCentre},
	'c':               {ID: input.ButtonC},
	'z':               {ID: input.ButtonZ},
	'1':               {ID: input.Shake, Value: 0},
	'2':               {ID: input.Shake, Value: 1},
	'3':               {ID: input.Shake, Value: 2},
	'j':               {ID: input.TiltX, Value: -1},
	'l':               {ID: input.TiltX, Value: 1},
	'i':               {ID: input.TiltY, Value: 1},
	'k':               {ID: input.TiltY, Value: -1},
	'o':               {ID: input.TiltLevel},
	'n':               {ID: input.ToggleNunchuk},
	'm':               {ID: input.ToggleMotionPlus},
	'r':               {ID: input.Recenter},
}

const interactiveHelp = `cursor keys move the stick, space centres it
c and z toggle the buttons, 1 2 3 toggle shaking
i j k l tilt the remote, o levels it, r recentres the gyro cursor
n plugs in the nunchuk, m plugs in the motionplus
q quits
`

func interactive(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	activate := md.AddString("activate", "", "activate the MotionPlus in passthrough mode: none, nunchuk, classic")
	record := md.AddString("record", "", "record input to a script file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	h, err := newHost(env, *activate)
	if err != nil {
		return err
	}

	src := input.NewPushed()
	if env.Prefs.MotionPlus.Get().(bool) {
		_ = src.HandleEvent(input.Event{ID: input.ToggleMotionPlus})
	}

	var rec *input.Recorder
	if *record != "" {
		rec = input.NewRecorder(*record)
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()
	term.CBreakMode()

	term.Print(interactiveHelp)

	keys := make(chan easyterm.Key)
	go func() {
		rd := bufio.NewReader(term.Input())
		for {
			k, err := easyterm.ReadKey(rd)
			if err != nil {
				close(keys)
				return
			}
			keys <- k
		}
	}()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ticker := time.NewTicker(time.Second / dynamics.UpdateFrequency)
	defer ticker.Stop()

	done := false
	for !done {
		select {
		case <-intChan:
			done = true

		case k, ok := <-keys:
			if !ok || k == 'q' {
				done = true
				break
			}
			if ev, ok := keyEvents[k]; ok {
				if err := src.Push(ev); err != nil {
					logger.Log(env, "interactive", err.Error())
				}
			}

		case <-ticker.C:
			sig, _ := src.Next()
			if rec != nil {
				rec.Record(sig)
			}
			rpt, dec := h.step(sig)

			// ten updates a second is plenty for a terminal
			if rpt.Tick%(dynamics.UpdateFrequency/10) == 0 {
				term.Print("\r%s\033[K", describe(rpt, dec))
			}
		}
	}

	term.Print("\n")

	if rec != nil {
		return rec.Save(*record)
	}

	return nil
}

func serve(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	addr := md.AddString("addr", ":8080", "address to listen on")
	activate := md.AddString("activate", "nunchuk", "activate the MotionPlus in passthrough mode: none, nunchuk, classic")
	md.AdditionalHelp("The argument is a YAML script of input signals, which is repeated.\n" +
		"Reports are streamed to websocket clients connected to /room.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single script file is required")
	}

	scr, err := input.LoadScript(md.GetArg(0))
	if err != nil {
		return err
	}
	scr.Loop = true
	scr.DefaultMotionPlus(env.Prefs.MotionPlus.Get().(bool))

	h, err := newHost(env, *activate)
	if err != nil {
		return err
	}

	room := motionweb.NewRoom(env)
	go room.Run()
	defer room.Close()

	mux := http.NewServeMux()
	mux.Handle("/room", room)
	srv := &http.Server{Addr: *addr, Handler: mux}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()
	logger.Logf(env, "serve", "listening on %s", *addr)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ticker := time.NewTicker(time.Second / dynamics.UpdateFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-intChan:
			return srv.Close()
		case err := <-serveErr:
			return err
		case <-ticker.C:
			sig, _ := scr.Next()
			rpt, dec := h.step(sig)
			room.Publish(motionweb.NewMessage(rpt, dec))
		}
	}
}
