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

package motionweb_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/remote"
	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/motionweb"
	"github.com/jetsetilly/gomotion/test"
)

// wait for the number of clients in the room to reach n.
func waitForClients(t *testing.T, room *motionweb.Room, n int) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if room.Clients() == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("room has %d clients, wanted %d", room.Clients(), n)
}

func TestMessage(t *testing.T) {
	rpt := remote.Report{
		Tick:      10,
		Accel:     dynamics.AccelData{0x200, 0x200, 0x268},
		Extension: [remote.ReportBytes]uint8{0xff, 0x81, 0x80, 0x80, 0xb3, 0x01},
	}
	dec := remote.Decoded{
		Nunchuk: &remote.NunchukState{
			Stick: dynamics.Vec2{1, 0},
			C:     true,
		},
	}

	data, err := motionweb.NewMessage(rpt, dec).Marshal()
	test.DemandSuccess(t, err)

	var m map[string]any
	test.DemandSuccess(t, json.Unmarshal(data, &m))
	test.ExpectEquality(t, m["tick"], any(float64(10)))
	test.ExpectEquality(t, m["extension"], any("ff 81 80 80 b3 01"))
	test.ExpectEquality(t, m["motionplus"], any(false))

	_, ok := m["angularVelocity"]
	test.ExpectEquality(t, ok, false)
	_, ok = m["nunchuk"]
	test.ExpectEquality(t, ok, true)
}

func TestRoom(t *testing.T) {
	room := motionweb.NewRoom(logger.Deny)
	go room.Run()

	srv := httptest.NewServer(room)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	waitForClients(t, room, 1)

	msg := motionweb.Message{
		Tick:            3,
		MotionPlus:      true,
		AngularVelocity: &[3]float64{0, 0, 1.5},
	}
	test.ExpectSuccess(t, room.Publish(msg))

	test.DemandSuccess(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	test.DemandSuccess(t, err)

	var got motionweb.Message
	test.DemandSuccess(t, json.Unmarshal(data, &got))
	test.ExpectEquality(t, got.Tick, 3)
	test.ExpectEquality(t, got.MotionPlus, true)
	test.DemandSuccess(t, got.AngularVelocity != nil)
	test.ExpectEquality(t, *got.AngularVelocity, [3]float64{0, 0, 1.5})

	conn.Close()
	waitForClients(t, room, 0)

	room.Close()
	test.ExpectFailure(t, room.Publish(msg))
}
