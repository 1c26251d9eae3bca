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

// Package i2c is the two wire bus that connects a host to the devices plugged
// into the extension port.
//
// Devices implement the Slave interface. A device answers only the
// transactions addressed to it, by returning the number of bytes it read or
// wrote. A device that does not recognise the slave address returns zero and
// the Bus offers the transaction to the next attached device.
//
// The Bus also implements the Bus interface from periph.io/x/conn/v3/i2c.
// This means a device that needs to talk to the devices chained behind it
// can do so with an i2c.Dev, exactly as a driver for real hardware would.
//
//	dev := &i2c.Dev{Bus: downstream, Addr: 0x52}
//	err := dev.Tx([]byte{0xfa}, id[:])
//
// Tx() returns an error if the device returned fewer bytes than requested.
// The error pattern is ShortRead or ShortWrite and can be tested with the
// curated package.
package i2c
