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

package addrmap_test

import (
	"strings"
	"testing"

	"github.com/cabinet-emu/cabinet/hardware/memory/addrmap"
	"github.com/cabinet-emu/cabinet/test"
)

func TestRAMAndROM(t *testing.T) {
	m := addrmap.NewMap("test", 16, 0)

	ram := make([]uint8, 0x2000)
	rom := []uint8{0xea, 0x4c, 0x00, 0x80}
	m.Install(0x0000, 0x1fff, "ram").RAM(ram)
	m.Install(0x8000, 0xffff, "rom").ROM(rom)

	m.Write8(0x0010, 0x55)
	test.ExpectEquality(t, ram[0x10], uint8(0x55))
	test.ExpectEquality(t, m.Read8(0x0010), uint8(0x55))

	// rom is mirrored through the range and cannot be written to
	test.ExpectEquality(t, m.Read8(0x8001), uint8(0x4c))
	test.ExpectEquality(t, m.Read8(0x8005), uint8(0x4c))
	m.Write8(0x8001, 0x00)
	test.ExpectEquality(t, m.Read8(0x8001), uint8(0x4c))
}

func TestUnmapped(t *testing.T) {
	m := addrmap.NewMap("test", 16, 0)
	test.ExpectEquality(t, m.Read8(0x4000), uint8(0xff))
	test.ExpectEquality(t, m.Read(0x4000, addrmap.MaskWord), uint16(0xffff))

	// no panic on unmapped write
	m.Write8(0x4000, 0x12)
}

func TestPrecedence(t *testing.T) {
	m := addrmap.NewMap("test", 16, 0)

	var lastKeyOffset uint32
	m.Install(0x3000, 0x4000, "board").R(func(_ uint32, _ uint16) uint16 {
		return 0x11
	})
	m.Install(0x3000, 0x3007, "keys").R(func(offset uint32, _ uint16) uint16 {
		lastKeyOffset = offset
		return 0x22
	})

	test.ExpectEquality(t, m.Read8(0x3003), uint8(0x22))
	test.ExpectEquality(t, lastKeyOffset, uint32(3))
	test.ExpectEquality(t, m.Read8(0x3008), uint8(0x11))
	test.ExpectEquality(t, m.Read8(0x4000), uint8(0x11))

	// read and write decoding are independent
	var written uint16
	m.Install(0x3000, 0x3000, "latch").W(func(_ uint32, data uint16, _ uint16) {
		written = data
	})
	m.Write8(0x3000, 0x80)
	test.ExpectEquality(t, written, uint16(0x80))
	test.ExpectEquality(t, m.Read8(0x3000), uint8(0x22))

	r, w := m.Lookup(0x3000)
	test.ExpectEquality(t, r.Name, "keys")
	test.ExpectEquality(t, w.Name, "latch")
}

func TestShiftedOffsets(t *testing.T) {
	// the TMS34010 addresses memory in bits. a 16-bit word occupies 16
	// addresses
	m := addrmap.NewMap("test", 32, 4)

	var offsets []uint32
	var masks []uint16
	m.Install(0x01600000, 0x0160003f, "io").W(func(offset uint32, _ uint16, mask uint16) {
		offsets = append(offsets, offset)
		masks = append(masks, mask)
	})

	m.Write(0x01600000, 0x1234, addrmap.MaskWord)
	m.Write(0x01600010, 0x1234, addrmap.MaskByte)
	m.Write(0x01600030, 0x1234, addrmap.MaskHigh)

	test.DemandEquality(t, len(offsets), 3)
	test.ExpectEquality(t, offsets[0], uint32(0))
	test.ExpectEquality(t, offsets[1], uint32(1))
	test.ExpectEquality(t, offsets[2], uint32(3))
	test.ExpectEquality(t, masks[2], addrmap.MaskHigh)
}

func TestMaskedRAMWrite(t *testing.T) {
	m := addrmap.NewMap("test", 16, 0)
	ram := []uint8{0xff}
	m.Install(0x0000, 0x0000, "ram").RAM(ram)
	m.Write(0x0000, 0x00, 0x0f)
	test.ExpectEquality(t, ram[0], uint8(0xf0))
}

func TestString(t *testing.T) {
	m := addrmap.NewMap("test", 16, 0)
	m.Install(0x0000, 0x1fff, "ram").RAM(make([]uint8, 0x2000))
	m.Install(0x2000, 0x2000, "lcd").W(func(_ uint32, _ uint16, _ uint16) {})
	m.Install(0x2c00, 0x2c07, "keys").R(func(_ uint32, _ uint16) uint16 { return 0 })

	s := m.String()
	test.ExpectSuccess(t, strings.Contains(s, "00000000-00001fff rw ram\n"))
	test.ExpectSuccess(t, strings.Contains(s, "00002000-00002000 -w lcd\n"))
	test.ExpectSuccess(t, strings.Contains(s, "00002c00-00002c07 r- keys\n"))
}

func TestWordMemory(t *testing.T) {
	m := addrmap.NewMap("test", 32, 4)

	ram := make([]uint16, 4)
	rom := []uint8{0x34, 0x12, 0x78, 0x56}
	m.Install(0x01000000, 0x0100003f, "ram").RAM16(ram)
	m.Install(0xff800000, 0xffffffff, "rom").ROM16(rom)

	m.Write(0x01000010, 0xabcd, addrmap.MaskWord)
	test.ExpectEquality(t, ram[1], uint16(0xabcd))

	// byte write only changes the lower half of the word
	m.Write(0x01000010, 0x0012, addrmap.MaskByte)
	test.ExpectEquality(t, ram[1], uint16(0xab12))
	test.ExpectEquality(t, m.Read(0x01000010, addrmap.MaskWord), uint16(0xab12))
	test.ExpectEquality(t, m.Read(0x01000010, addrmap.MaskHigh), uint16(0xab00))

	test.ExpectEquality(t, m.Read(0xff800000, addrmap.MaskWord), uint16(0x1234))
	test.ExpectEquality(t, m.Read(0xff800010, addrmap.MaskWord), uint16(0x5678))
	test.ExpectEquality(t, m.Read(0xff800020, addrmap.MaskWord), uint16(0x1234))
}
