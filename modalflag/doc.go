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

// Package modalflag extends the flag package with program modes. A mode is a
// command line argument that selects what the program does, each mode with
// its own set of flags. Modes can be nested.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SERVE")
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		loop := md.AddBool("loop", false, "repeat the script")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		run(md.GetArg(0), *loop)
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not one of the sub-modes. Sub-mode comparisons are case insensitive and
// Mode() always returns the upper case name.
package modalflag
