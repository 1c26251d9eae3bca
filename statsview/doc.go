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

// Package statsview is an optional HTTP server offering runtime statistics of
// the gomotion tool. It is useful for watching heap growth and goroutine
// counts while the tick loop runs for long periods, for example when the RUN
// mode is looping a script or when browsers connect to and leave the SERVE
// mode's websocket room. Each connected browser adds a pair of goroutines.
//
// The server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview

// Address of the server.
const Address = "localhost:12600"

const url = "/debug/statsview"

const pprofURL = "/debug/pprof/"
