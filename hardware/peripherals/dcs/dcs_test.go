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

package dcs_test

import (
	"testing"

	"github.com/cabinet-emu/cabinet/hardware/peripherals/dcs"
	"github.com/cabinet-emu/cabinet/logger"
	"github.com/cabinet-emu/cabinet/test"
)

func TestMailbox(t *testing.T) {
	b := dcs.NewBoard(logger.Allow)
	test.ExpectEquality(t, b.ControlRead(), uint16(0x0c00))

	_, ok := b.Receive()
	test.ExpectFailure(t, ok)

	b.DataWrite(0x55)
	test.ExpectEquality(t, b.ControlRead(), uint16(0x0400))

	v, ok := b.Receive()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x55))
	test.ExpectEquality(t, b.ControlRead(), uint16(0x0c00))

	b.Respond(0x0a)
	test.ExpectEquality(t, b.ControlRead(), uint16(0x0800))
	test.ExpectEquality(t, b.DataRead(), uint8(0x0a))
	test.ExpectEquality(t, b.ControlRead(), uint16(0x0c00))

	test.DemandEquality(t, len(b.Commands), 1)
	test.ExpectEquality(t, b.Commands[0], uint8(0x55))
}

func TestReset(t *testing.T) {
	b := dcs.NewBoard(logger.Allow)
	b.DataWrite(0x01)
	b.Respond(0x02)

	b.ResetLine(true)
	test.ExpectSuccess(t, b.InReset())
	test.ExpectEquality(t, b.ControlRead(), uint16(0x0c00))

	// writes are ignored while the board is held in reset
	b.DataWrite(0x03)
	test.ExpectEquality(t, len(b.Commands), 1)

	b.ResetLine(false)
	test.ExpectFailure(t, b.InReset())
	test.ExpectEquality(t, b.Resets, 1)

	// releasing a line that isn't held is not counted
	b.ResetLine(false)
	test.ExpectEquality(t, b.Resets, 1)

	s := b.Snapshot()
	b.DataWrite(0x04)
	test.ExpectEquality(t, len(b.Commands), 2)
	test.ExpectEquality(t, len(s.Commands), 1)
}
