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

package dynamics

import (
	"github.com/jetsetilly/gomotion/savestate"
)

func saveVec3(enc *savestate.Encoder, v Vec3) {
	enc.Float64s(v[:]...)
}

func loadVec3(dec *savestate.Decoder, v *Vec3) {
	dec.Float64s(&v[0], &v[1], &v[2])
}

// Save state.
func (s *PositionalState) Save(enc *savestate.Encoder) {
	saveVec3(enc, s.Position)
	saveVec3(enc, s.Velocity)
	saveVec3(enc, s.Acceleration)
}

// Load state written by Save().
func (s *PositionalState) Load(dec *savestate.Decoder) {
	loadVec3(dec, &s.Position)
	loadVec3(dec, &s.Velocity)
	loadVec3(dec, &s.Acceleration)
}

// Save state.
func (s *RotationalState) Save(enc *savestate.Encoder) {
	saveVec3(enc, s.Angle)
	saveVec3(enc, s.AngularVelocity)
}

// Load state written by Save().
func (s *RotationalState) Load(dec *savestate.Decoder) {
	loadVec3(dec, &s.Angle)
	loadVec3(dec, &s.AngularVelocity)
}

// Save state.
func (s *MotionState) Save(enc *savestate.Encoder) {
	s.PositionalState.Save(enc)
	s.RotationalState.Save(enc)
}

// Load state written by Save().
func (s *MotionState) Load(dec *savestate.Decoder) {
	s.PositionalState.Load(dec)
	s.RotationalState.Load(dec)
}

// Save state.
func (s *IMUCursorState) Save(enc *savestate.Encoder) {
	enc.Float64s(s.Rotation.W, s.Rotation.X, s.Rotation.Y, s.Rotation.Z)
	enc.Float64(s.RecenteredPitch)
}

// Load state written by Save().
func (s *IMUCursorState) Load(dec *savestate.Decoder) {
	dec.Float64s(&s.Rotation.W, &s.Rotation.X, &s.Rotation.Y, &s.Rotation.Z)
	s.RecenteredPitch = dec.Float64()
}
