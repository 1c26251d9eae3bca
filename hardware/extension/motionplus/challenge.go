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

package motionplus

import (
	"math/big"
)

// Parameters of the challenge/response exchange. These are placeholders and
// not the values burned into real MotionPlus hardware, so host software that
// verifies the response will reject them. The modulus is 2^512 - 569.
const (
	challengeMagic   = "62218b7b79fa1de371836d2cbd60e98d6f3c367631d0978a1f175296ec51ca54467b6627b4b7beb7e188fe176b06db4de1eb1b1e9d127e1e30562ed4a7304ab3"
	challengeSqrtV   = "4fd1aa52fe2dff029d6ae070592839bfddd258c1dc45f3e96757846522a39d9b6218215c12391e972784c470bf8d9fa9c3b289524ce37bcf2ca3cf7966148ece"
	challengeModulus = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffdc7"
)

func mustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("motionplus: bad challenge parameter")
	}
	return v
}

// ChallengeParameters returns copies of the magic value, the square root of v
// and the modulus used by the challenge/response exchange.
func ChallengeParameters() (magic *big.Int, sqrtV *big.Int, modulus *big.Int) {
	return mustParse(challengeMagic), mustParse(challengeSqrtV), mustParse(challengeModulus)
}

// ChallengeX is magic² mod n.
func ChallengeX() *big.Int {
	magic, _, n := ChallengeParameters()
	x := new(big.Int).Mul(magic, magic)
	return x.Mod(x, n)
}

// ChallengeY is the response to the challenge type. Type zero is the magic
// value and any other type is magic² · sqrt(v) mod n.
func ChallengeY(challengeType uint8) *big.Int {
	magic, sqrtV, n := ChallengeParameters()
	if challengeType == 0 {
		return magic
	}
	y := new(big.Int).Mul(magic, magic)
	y.Mul(y, sqrtV)
	return y.Mod(y, n)
}

// putLittleEndian stores v in data, least significant byte first. Unused
// bytes are zeroed.
func putLittleEndian(data []uint8, v *big.Int) {
	b := v.FillBytes(make([]byte, len(data)))
	for i := range b {
		data[i] = b[len(b)-1-i]
	}
}

// GetLittleEndian is the inverse of the way challenge parameters are stored
// in the challenge data registers.
func GetLittleEndian(data []uint8) *big.Int {
	b := make([]byte, len(data))
	for i := range data {
		b[len(b)-1-i] = data[i]
	}
	return new(big.Int).SetBytes(b)
}
