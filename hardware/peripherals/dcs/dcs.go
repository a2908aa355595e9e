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

package dcs

import (
	"fmt"
	"slices"

	"github.com/cabinet-emu/cabinet/logger"
)

// Bits in the control word.
const (
	OutputEmpty = uint16(0x0400)
	InputEmpty  = uint16(0x0800)
)

// the value of the control word after a reset
const controlReset = OutputEmpty | InputEmpty

// Board is the sound board mailbox.
type Board struct {
	perm logger.Permission

	// the data latch written by the main CPU and read by the sound CPU
	input uint8

	// the data latch written by the sound CPU and read by the main CPU
	output uint8

	control uint16

	// the state of the reset line. the board is held in reset while the
	// line is high
	inReset bool

	// the number of times the board has come out of reset
	Resets int

	// every byte sent by the main CPU, in order
	Commands []uint8
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard(perm logger.Permission) *Board {
	b := &Board{
		perm:    perm,
		control: controlReset,
	}
	return b
}

func (b *Board) String() string {
	return fmt.Sprintf("dcs: control=%04x in=%02x out=%02x reset=%v", b.control, b.input, b.output, b.inReset)
}

// Snapshot creates a copy of the board.
func (b *Board) Snapshot() *Board {
	n := *b
	n.Commands = slices.Clone(b.Commands)
	return &n
}

// Plumb new logging permission into the board.
func (b *Board) Plumb(perm logger.Permission) {
	b.perm = perm
}

// InReset returns true if the reset line is being held.
func (b *Board) InReset() bool {
	return b.inReset
}

// ResetLine sets the state of the reset line. The mailbox is cleared while
// the line is high.
func (b *Board) ResetLine(state bool) {
	if state {
		b.input = 0
		b.output = 0
		b.control = controlReset
	} else if b.inReset {
		b.Resets++
		logger.Logf(b.perm, "dcs", "sound board out of reset (%d)", b.Resets)
	}
	b.inReset = state
}

// DataWrite is called by the main CPU to send a byte to the sound board.
// Writes while the board is in reset are ignored.
func (b *Board) DataWrite(data uint8) {
	if b.inReset {
		logger.Logf(b.perm, "dcs", "write while in reset: %02x", data)
		return
	}
	b.input = data
	b.control &^= InputEmpty
	b.Commands = append(b.Commands, data)
}

// DataRead is called by the main CPU to read the byte sent by the sound
// board.
func (b *Board) DataRead() uint8 {
	b.control |= OutputEmpty
	return b.output
}

// ControlRead returns the control word.
func (b *Board) ControlRead() uint16 {
	return b.control
}

// Receive is called on behalf of the sound CPU to take the byte sent by the
// main CPU. The second return value is false if the latch was empty.
func (b *Board) Receive() (uint8, bool) {
	if b.control&InputEmpty == InputEmpty {
		return 0, false
	}
	b.control |= InputEmpty
	return b.input, true
}

// Respond is called on behalf of the sound CPU to send a byte to the main
// CPU.
func (b *Board) Respond(data uint8) {
	b.output = data
	b.control &^= OutputEmpty
}
