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

// Package prefs stores typed preference values and loads/saves them to a
// plain text file on disk.
//
// Each value type (Bool, Int, Float, String) is safe to read from one
// goroutine while another sets it. Values can have hooks that run before and
// after a new value is stored. An error from the pre-hook prevents the value
// from changing.
//
// A Disk instance associates values with keys. The file format is one entry
// per line:
//
//	key :: value
//
// below a short warning that the file is not intended to be edited by hand.
// Keys in the file that have not been added to the Disk instance are
// preserved when the file is saved, so that several Disk instances can share
// one file.
//
// Values can also be set from the command line with the command line stack
// functions. A group of "key::value; key::value" pairs is pushed to the stack
// and is consulted when a Disk is loaded.
package prefs
