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

package serialpic_test

import (
	"testing"

	"github.com/cabinet-emu/cabinet/hardware/peripherals/serialpic"
	"github.com/cabinet-emu/cabinet/test"
)

func TestSerial(t *testing.T) {
	p := serialpic.NewPIC(528)
	test.ExpectEquality(t, p.Serial(), 528123456)

	p.ResetLine(true)
	test.ExpectEquality(t, p.Status(), uint8(1))

	expected := []uint8{5, 2, 8, 1, 2, 3, 4, 5, 6}
	for i, e := range expected {
		test.ExpectEquality(t, p.Read(), e, i)
	}

	// select the checksum byte
	p.Write(0x0f)
	test.ExpectEquality(t, p.Read(), uint8(36))

	// index wraps to the start of the block
	test.ExpectEquality(t, p.Read(), uint8(5))
}

func TestResetLine(t *testing.T) {
	p := serialpic.NewPIC(439)
	p.ResetLine(true)
	p.Write(0x03)

	p.ResetLine(false)
	test.ExpectEquality(t, p.Status(), uint8(0))
	test.ExpectEquality(t, p.Read(), uint8(0))

	// writes are ignored while in reset
	p.Write(0x05)

	p.ResetLine(true)
	test.ExpectEquality(t, p.Read(), uint8(4))

	s := p.Snapshot()
	test.ExpectEquality(t, s.Read(), uint8(3))
	test.ExpectEquality(t, p.Read(), uint8(3))
}
