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

package easyterm

import (
	"io"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeySpace          = 32
	KeyBackspace      = 127
)

// list of ASCII codes for characters that can follow KeyEsc
const (
	EscCursor = 91
)

// list of ASCII codes for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// Key is a single key press. Printable keys are their rune value. Cursor keys
// are negative.
type Key rune

// List of cursor keys.
const (
	KeyUp Key = -(iota + 1)
	KeyDown
	KeyRight
	KeyLeft
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyEsc:
		return "esc"
	case KeySpace:
		return "space"
	case KeyCarriageReturn:
		return "return"
	}
	return string(k)
}

// ReadKey reads a single key press. An escape sequence that is not a cursor
// key is returned as KeyEsc.
func ReadKey(r io.RuneReader) (Key, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return 0, err
	}
	if c != KeyEsc {
		return Key(c), nil
	}

	c, _, err = r.ReadRune()
	if err != nil {
		return KeyEsc, err
	}
	if c != EscCursor {
		return KeyEsc, nil
	}

	c, _, err = r.ReadRune()
	if err != nil {
		return KeyEsc, err
	}

	switch c {
	case CursorUp:
		return KeyUp, nil
	case CursorDown:
		return KeyDown, nil
	case CursorForward:
		return KeyRight, nil
	case CursorBackward:
		return KeyLeft, nil
	}

	return KeyEsc, nil
}
