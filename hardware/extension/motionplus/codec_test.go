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

package motionplus_test

import (
	"hash/crc32"
	"math"
	"math/big"
	"testing"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/hardware/extension/motionplus"
	"github.com/jetsetilly/gomotion/test"
)

func TestDefaultCalibration(t *testing.T) {
	cal := motionplus.DefaultCalibrationData()
	b := cal.Bytes()

	// fast tier
	test.ExpectEquality(t, b[0x00], uint8(0x80))
	test.ExpectEquality(t, b[0x01], uint8(0x00))
	test.ExpectEquality(t, b[0x06], uint8(0xc4))
	test.ExpectEquality(t, b[0x07], uint8(0x00))
	test.ExpectEquality(t, b[0x0c], uint8(1200/6))
	test.ExpectEquality(t, b[0x0d], uint8(0x0b))

	// slow tier
	test.ExpectEquality(t, b[0x10], uint8(0x80))
	test.ExpectEquality(t, b[0x16], uint8(0xc4))
	test.ExpectEquality(t, b[0x1c], uint8(270/6))
	test.ExpectEquality(t, b[0x1d], uint8(0xe9))

	// checksum is split between the two halves
	crc := crc32.ChecksumIEEE(append(append([]byte{}, b[0x00:0x0e]...), b[0x10:0x1e]...))
	test.ExpectEquality(t, uint32(b[0x0e])<<24|uint32(b[0x0f])<<16|uint32(b[0x1e])<<8|uint32(b[0x1f]), crc)

	c, err := motionplus.ParseCalibrationData(b[:])
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, cal)

	b[0x03]++
	_, err = motionplus.ParseCalibrationData(b[:])
	test.ExpectSuccess(t, curated.Is(err, motionplus.ChecksumMismatch))

	_, err = motionplus.ParseCalibrationData(b[:10])
	test.ExpectSuccess(t, curated.Is(err, motionplus.InvalidCalibration))
}

func TestNewCalibrationData(t *testing.T) {
	cal := motionplus.DefaultCalibrationData()

	c, err := motionplus.NewCalibrationData(cal.Fast, cal.Slow)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, cal)

	bad := cal.Slow
	bad.DegreesDiv6 = 0
	_, err = motionplus.NewCalibrationData(cal.Fast, bad)
	test.ExpectSuccess(t, curated.Is(err, motionplus.InvalidCalibration))

	bad = cal.Fast
	bad.Scale[motionplus.Roll] = bad.Zero[motionplus.Roll]
	_, err = motionplus.NewCalibrationData(bad, cal.Slow)
	test.ExpectSuccess(t, curated.Is(err, motionplus.InvalidCalibration))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func TestGyroscopeData(t *testing.T) {
	cal := motionplus.DefaultCalibrationData()

	s := motionplus.GetGyroscopeData(dynamics.Vec3{}, cal)
	test.ExpectEquality(t, s, motionplus.DefaultGyroscopeData())
	for i := range s.Value {
		test.ExpectEquality(t, s.Value[i], uint16(0x2000), i)
		test.ExpectSuccess(t, s.Slow[i], i)
	}

	// direction of each axis
	s = motionplus.GetGyroscopeData(dynamics.Vec3{1, 0, 0}, cal)
	test.ExpectSuccess(t, s.Value[motionplus.Pitch] < 0x2000)
	s = motionplus.GetGyroscopeData(dynamics.Vec3{0, 1, 0}, cal)
	test.ExpectSuccess(t, s.Value[motionplus.Roll] > 0x2000)
	s = motionplus.GetGyroscopeData(dynamics.Vec3{0, 0, 1}, cal)
	test.ExpectSuccess(t, s.Value[motionplus.Yaw] < 0x2000)

	// slow tier boundary
	s = motionplus.GetGyroscopeData(dynamics.Vec3{0, 0, radians(-269.5)}, cal)
	test.ExpectSuccess(t, s.Slow[motionplus.Yaw])
	test.ExpectEquality(t, s.Value[motionplus.Yaw], uint16(0x2000+math.Round(269.5*0x1100/270)))
	s = motionplus.GetGyroscopeData(dynamics.Vec3{0, 0, radians(-270.5)}, cal)
	test.ExpectFailure(t, s.Slow[motionplus.Yaw])
	test.ExpectEquality(t, s.Value[motionplus.Yaw], uint16(0x2000+math.Round(270.5*0x1100/1200)))

	// values are clamped to 14 bits
	s = motionplus.GetGyroscopeData(dynamics.Vec3{-100, 100, 0}, cal)
	test.ExpectEquality(t, s.Value[motionplus.Pitch], uint16(motionplus.GyroMax))
	test.ExpectEquality(t, s.Value[motionplus.Roll], uint16(motionplus.GyroMax))
	s = motionplus.GetGyroscopeData(dynamics.Vec3{100, -100, 0}, cal)
	test.ExpectEquality(t, s.Value[motionplus.Pitch], uint16(0))
	test.ExpectEquality(t, s.Value[motionplus.Roll], uint16(0))

	// round trip is within one step of the tier used
	slowStep := radians(270.0 / 0x1100)
	fastStep := radians(1200.0 / 0x1100)
	for _, w := range []dynamics.Vec3{
		{0.1, -0.2, 0.3},
		{radians(100), radians(-250), radians(5)},
		{radians(1000), radians(-500), radians(300)},
		{radians(-2000), radians(2000), radians(-1500)},
	} {
		s := motionplus.GetGyroscopeData(w, cal)
		v := s.AngularVelocity(cal)
		for i, axis := range []int{motionplus.Pitch, motionplus.Roll, motionplus.Yaw} {
			step := fastStep
			if s.Slow[axis] {
				step = slowStep
			}
			test.ExpectWithin(t, v[i], w[i], step, w, i)
		}
	}
}

func TestDataFormat(t *testing.T) {
	cal := motionplus.DefaultCalibrationData()
	s := motionplus.GetGyroscopeData(dynamics.Vec3{radians(500), radians(-100), radians(10)}, cal)

	d := motionplus.NewDataFormat(s, true)
	test.ExpectSuccess(t, d.IsMotionPlusData())
	test.ExpectSuccess(t, d.ExtensionConnected())
	test.ExpectEquality(t, d.GyroSample(), s)
	test.ExpectEquality(t, d[5]&0x01, uint8(0))

	d = motionplus.NewDataFormat(s, false)
	test.ExpectFailure(t, d.ExtensionConnected())
	test.ExpectEquality(t, d.GyroSample(), s)

	// bit positions
	s = motionplus.GyroSample{Value: [3]uint16{0x3fff, 0x0000, 0x2a55}, Slow: [3]bool{true, false, true}}
	d = motionplus.NewDataFormat(s, false)
	test.ExpectEquality(t, d, motionplus.DataFormat{0xff, 0x00, 0x55, 0xff, 0x00, 0xaa})
}

func bit(v uint8, n uint) uint8 {
	return (v >> n) & 0x01
}

func TestPassthroughNunchuk(t *testing.T) {
	for b4 := 0; b4 < 256; b4++ {
		for b5 := 0; b5 < 256; b5++ {
			in := [6]uint8{0x12, 0x34, 0x56, 0x78, uint8(b4), uint8(b5)}

			d := in
			motionplus.ApplyPassthroughModifications(motionplus.PassthroughNunchuk, d[:])

			test.DemandEquality(t, d[0], in[0])
			test.DemandEquality(t, bit(d[5], 2), bit(in[5], 0))
			test.DemandEquality(t, bit(d[5], 3), bit(in[5], 1))
			test.DemandEquality(t, bit(d[5], 4), bit(in[5], 3))
			test.DemandEquality(t, bit(d[5], 5), bit(in[5], 5))
			test.DemandEquality(t, bit(d[5], 6), bit(in[5], 7))
			test.DemandEquality(t, bit(d[5], 7), bit(in[4], 0))

			motionplus.ReversePassthroughModifications(motionplus.PassthroughNunchuk, d[:])

			// the low bit of each accelerometer value is a copy of the next bit
			expected := in
			expected[5] = expected[5]&0b10101011 | bit(in[5], 3)<<2 | bit(in[5], 5)<<4 | bit(in[5], 7)<<6
			test.DemandEquality(t, d, expected)
		}
	}
}

func TestPassthroughClassic(t *testing.T) {
	for b0 := 0; b0 < 256; b0++ {
		for b1 := 0; b1 < 256; b1++ {
			for _, b5 := range []uint8{0x00, 0x01, 0x02, 0x03, 0xfc, 0xff} {
				in := [6]uint8{uint8(b0), uint8(b1), 0x9a, 0xbc, 0xde, b5}

				d := in
				motionplus.ApplyPassthroughModifications(motionplus.PassthroughClassic, d[:])
				test.DemandEquality(t, bit(d[0], 0), bit(in[5], 0))
				test.DemandEquality(t, bit(d[1], 0), bit(in[5], 1))

				motionplus.ReversePassthroughModifications(motionplus.PassthroughClassic, d[:])

				expected := in
				expected[0] = expected[0]&0xfe | bit(in[0], 1)
				expected[1] = expected[1]&0xfe | bit(in[1], 1)
				test.DemandEquality(t, d, expected)
			}
		}
	}
}

func TestPassthroughDisabled(t *testing.T) {
	in := [6]uint8{1, 2, 3, 4, 5, 6}
	d := in
	motionplus.ApplyPassthroughModifications(motionplus.PassthroughDisabled, d[:])
	test.ExpectEquality(t, d, in)
	motionplus.ReversePassthroughModifications(motionplus.PassthroughDisabled, d[:])
	test.ExpectEquality(t, d, in)
}

func TestChallengeValues(t *testing.T) {
	magic, sqrtV, n := motionplus.ChallengeParameters()

	test.ExpectEquality(t, n.BitLen(), 512)
	test.ExpectSuccess(t, magic.Cmp(n) < 0)
	test.ExpectSuccess(t, n.ProbablyPrime(20))

	x := new(big.Int).Exp(magic, big.NewInt(2), n)
	test.ExpectEquality(t, motionplus.ChallengeX().Cmp(x), 0)

	test.ExpectEquality(t, motionplus.ChallengeY(0).Cmp(magic), 0)

	y := new(big.Int).Mul(x, sqrtV)
	y.Mod(y, n)
	test.ExpectEquality(t, motionplus.ChallengeY(1).Cmp(y), 0)

	// the returned values are copies
	magic.SetInt64(0)
	test.ExpectEquality(t, motionplus.ChallengeY(0).Sign(), 1)

	data := []uint8{0x01, 0x02, 0x00, 0x00}
	test.ExpectEquality(t, motionplus.GetLittleEndian(data).Int64(), int64(0x0201))
}
