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

package sensorboard

import (
	"fmt"
	"strings"

	"github.com/cabinet-emu/cabinet/curated"
)

// Size of the board along each edge.
const Size = 8

// Sentinal error returned by ParseSquare().
const BadSquare = "sensorboard: bad square: %s"

// Square on the board. File 0 is the a-file and Rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+sq.File, sq.Rank+1)
}

// ParseSquare converts algebraic notation (eg. "e2") to a Square.
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, curated.Errorf(BadSquare, s)
	}
	sq := Square{
		File: int(s[0]) - 'a',
		Rank: int(s[1]) - '1',
	}
	if sq.File < 0 || sq.File >= Size || sq.Rank < 0 || sq.Rank >= Size {
		return Square{}, curated.Errorf(BadSquare, s)
	}
	return sq, nil
}

// Board represents the sensor board and its LEDs.
type Board struct {
	mux    uint8
	pieces [Size]uint8
	leds   [Size]uint8
}

// NewBoard is the preferred method of initialisation for the Board type. The
// board is initialised with pieces in the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	b.StartingPosition()
	return b
}

func (b *Board) String() string {
	s := strings.Builder{}
	for rank := Size - 1; rank >= 0; rank-- {
		for file := range Size {
			sq := Square{File: file, Rank: rank}
			switch {
			case b.LED(sq) && b.Piece(sq):
				s.WriteRune('*')
			case b.LED(sq):
				s.WriteRune('o')
			case b.Piece(sq):
				s.WriteRune('#')
			default:
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Snapshot creates a copy of the board.
func (b *Board) Snapshot() *Board {
	n := *b
	return &n
}

// Reset the multiplexer and the LEDs. The pieces on the board are not
// affected.
func (b *Board) Reset() {
	b.mux = 0xff
	clear(b.leds[:])
}

// Clear removes all pieces from the board.
func (b *Board) Clear() {
	clear(b.pieces[:])
}

// StartingPosition places pieces on the first, second, seventh and eighth
// ranks.
func (b *Board) StartingPosition() {
	for file := range Size {
		b.pieces[file] = 0b11000011
	}
}

// SetPiece places or removes a piece from a square.
func (b *Board) SetPiece(sq Square, present bool) {
	if present {
		b.pieces[sq.File] |= 1 << sq.Rank
	} else {
		b.pieces[sq.File] &^= 1 << sq.Rank
	}
}

// Piece returns true if there is a piece on the square.
func (b *Board) Piece(sq Square) bool {
	return b.pieces[sq.File]&(1<<sq.Rank) != 0
}

// LED returns true if the LED for the square is lit.
func (b *Board) LED(sq Square) bool {
	return b.leds[sq.File]&(1<<sq.Rank) != 0
}

// Mux returns the current value of the multiplexer.
func (b *Board) Mux() uint8 {
	return b.mux
}

// MuxWrite selects the active columns. A column is active when its bit is
// low.
func (b *Board) MuxWrite(data uint8) {
	b.mux = data
}

// LEDWrite sets the LEDs in the active columns. A rank is lit when its bit is
// high. The offset is not decoded by the board.
func (b *Board) LEDWrite(_ uint32, data uint8) {
	for file := range Size {
		if b.mux&(1<<file) == 0 {
			b.leds[file] = data
		}
	}
}

// InputRead returns the state of the reed switches in the active columns.
// A rank bit is low when a piece stands on that rank in any active column.
func (b *Board) InputRead() uint8 {
	data := uint8(0xff)
	for file := range Size {
		if b.mux&(1<<file) == 0 {
			data &^= b.pieces[file]
		}
	}
	return data
}
