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

package motionweb

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/gomotion/logger"
)

const (
	socketBufferSize  = 1024
	messageBufferSize = 16
)

// Room forwards messages to every client that has joined.
type Room struct {
	perm logger.Permission

	// forward is a channel of messages to send to every client
	forward chan []byte

	join  chan *client
	leave chan *client
	quit  chan bool

	// clients is only accessed by Run()
	clients map[*client]bool

	// the number of clients. updated by Run()
	count atomic.Int32

	upgrader websocket.Upgrader
}

// NewRoom is the preferred method of initialisation for the Room type. The
// Run() function must be called for the room to do anything.
func NewRoom(perm logger.Permission) *Room {
	return &Room{
		perm:    perm,
		forward: make(chan []byte),
		join:    make(chan *client),
		leave:   make(chan *client),
		quit:    make(chan bool),
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  socketBufferSize,
			WriteBufferSize: socketBufferSize,
		},
	}
}

// Run services the room until Close() is called. Should be run in its own
// goroutine.
func (r *Room) Run() {
	defer func() {
		for c := range r.clients {
			delete(r.clients, c)
			close(c.send)
		}
		r.count.Store(0)
	}()

	for {
		select {
		case c := <-r.join:
			r.clients[c] = true
			r.count.Store(int32(len(r.clients)))
			logger.Logf(r.perm, "motionweb", "client joined from %s", c.socket.RemoteAddr())

		case c := <-r.leave:
			if _, ok := r.clients[c]; ok {
				delete(r.clients, c)
				close(c.send)
			}
			r.count.Store(int32(len(r.clients)))
			logger.Logf(r.perm, "motionweb", "client left from %s", c.socket.RemoteAddr())

		case msg := <-r.forward:
			for c := range r.clients {
				select {
				case c.send <- msg:
				default:
					logger.Logf(r.perm, "motionweb", "client at %s is not keeping up", c.socket.RemoteAddr())
				}
			}

		case <-r.quit:
			return
		}
	}
}

// Close stops the Run() function. Connected clients are disconnected.
func (r *Room) Close() {
	close(r.quit)
}

// Clients returns the number of clients in the room.
func (r *Room) Clients() int {
	return int(r.count.Load())
}

// Publish a report to every client. Returns false if the room has been
// closed.
func (r *Room) Publish(msg Message) bool {
	data, err := msg.Marshal()
	if err != nil {
		logger.Logf(r.perm, "motionweb", "%v", err)
		return true
	}

	select {
	case r.forward <- data:
		return true
	case <-r.quit:
		return false
	}
}

// ServeHTTP implements the http.Handler interface.
func (r *Room) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	socket, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		logger.Logf(r.perm, "motionweb", "%v", err)
		return
	}

	c := &client{
		socket: socket,
		send:   make(chan []byte, messageBufferSize),
	}

	select {
	case r.join <- c:
	case <-r.quit:
		socket.Close()
		return
	}

	defer func() {
		select {
		case r.leave <- c:
		case <-r.quit:
		}
	}()

	go c.write()
	c.read()
}
