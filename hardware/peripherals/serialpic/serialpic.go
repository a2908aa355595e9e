// This file is part of Cabinet.
//
// Cabinet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cabinet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cabinet.  If not, see <https://www.gnu.org/licenses/>.

package serialpic

import (
	"fmt"
)

// BlockSize is the number of bytes in the serial block.
const BlockSize = 16

// the serial number of every board is the game prefix followed by this value
const boardNumber = 123456

// PIC represents the security chip.
type PIC struct {
	prefix int
	block  [BlockSize]uint8

	index   int
	status  uint8
	inReset bool
}

// NewPIC is the preferred method of initialisation for the PIC type. The
// prefix is the three digit number that identifies the game.
func NewPIC(prefix int) *PIC {
	p := &PIC{
		prefix: prefix,
		block:  generate(prefix),
	}
	return p
}

// generate the serial block for a prefix. the first nine bytes are the
// decimal digits of the serial number, most significant first, and the last
// byte is the sum of the preceding bytes.
func generate(prefix int) [BlockSize]uint8 {
	var b [BlockSize]uint8
	serial := prefix*1000000 + boardNumber
	for i := 8; i >= 0; i-- {
		b[i] = uint8(serial % 10)
		serial /= 10
	}
	var sum uint8
	for i := range BlockSize - 1 {
		sum += b[i]
	}
	b[BlockSize-1] = sum
	return b
}

func (p *PIC) String() string {
	return fmt.Sprintf("serialpic: prefix=%03d index=%d status=%d", p.prefix, p.index, p.status)
}

// Snapshot creates a copy of the chip.
func (p *PIC) Snapshot() *PIC {
	n := *p
	return &n
}

// Serial returns the serial number encoded in the block.
func (p *PIC) Serial() int {
	var n int
	for i := range 9 {
		n = n*10 + int(p.block[i])
	}
	return n
}

// Status returns a value of one when the chip is ready to be read. The value
// occupies the lowest four bits of the return value.
func (p *PIC) Status() uint8 {
	return p.status
}

// Read the currently selected byte and advance the index.
func (p *PIC) Read() uint8 {
	if p.inReset {
		return 0
	}
	v := p.block[p.index]
	p.index = (p.index + 1) % BlockSize
	return v
}

// Write selects the byte to be read next. Only the lowest four bits of data
// are used.
func (p *PIC) Write(data uint8) {
	if p.inReset {
		return
	}
	p.index = int(data & 0x0f)
	p.status = 1
}

// ResetLine sets the state of the reset line. The line is active low.
func (p *PIC) ResetLine(state bool) {
	p.inReset = !state
	if p.inReset {
		p.index = 0
		p.status = 0
	} else {
		p.status = 1
	}
}
