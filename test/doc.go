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

// Package test bundles helper functions to remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a test failure but allow the test to continue.
// The Demand functions report a failure and stop the test immediately. Demand
// functions are useful when the value being tested is needed by the rest of
// the test, for example the length of a slice that is about to be indexed.
//
// ExpectSuccess() and ExpectFailure() test a value for a success condition
// suitable for its type: true for bool, nil for error. Note that an untyped
// nil is considered a success, because of how errors work in Go.
//
// The Writer type implements io.Writer and can be used to capture output for
// comparison with Writer.Compare().
//
// All functions accept optional tags. The tags are printed at the start of any
// failure message and are useful for identifying which iteration of a loop
// caused the failure.
package test
