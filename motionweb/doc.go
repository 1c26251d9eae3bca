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

// Package motionweb streams the reports of an emulated remote to websocket
// clients. Each report is sent as a JSON encoded Message.
//
// The Room is an http.Handler. Clients join by connecting to it and leave by
// closing the connection. The emulation publishes every report with
// Publish(), which never waits for slow clients: a client that has fallen
// behind misses the report.
package motionweb
