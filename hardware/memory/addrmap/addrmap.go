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

package addrmap

import (
	"fmt"
	"strings"

	"github.com/cabinet-emu/cabinet/logger"
)

// ReadHandler returns the data at offset. Only the bits in mask are
// significant.
type ReadHandler func(offset uint32, mask uint16) uint16

// WriteHandler writes data to offset. Only the bits in mask are being
// written.
type WriteHandler func(offset uint32, data uint16, mask uint16)

// Common values for the mask argument of handler functions.
const (
	MaskByte = uint16(0x00ff)
	MaskHigh = uint16(0xff00)
	MaskWord = uint16(0xffff)
)

// Unmapped is the value returned by a read from an address that has no read
// handler.
const Unmapped = uint16(0xffff)

// Range is a decoded area of the memory map. Create with Map.Install().
type Range struct {
	Name  string
	Start uint32
	End   uint32

	shift uint
	read  ReadHandler
	write WriteHandler
}

func (r *Range) String() string {
	var rw string
	switch {
	case r.read != nil && r.write != nil:
		rw = "rw"
	case r.read != nil:
		rw = "r-"
	case r.write != nil:
		rw = "-w"
	default:
		rw = "--"
	}
	return fmt.Sprintf("%08x-%08x %s %s", r.Start, r.End, rw, r.Name)
}

// R sets the read handler for the range.
func (r *Range) R(h ReadHandler) *Range {
	r.read = h
	return r
}

// W sets the write handler for the range.
func (r *Range) W(h WriteHandler) *Range {
	r.write = h
	return r
}

// RAM decodes the range as byte-wide read/write memory. Addresses beyond the
// length of the data slice wrap around.
func (r *Range) RAM(data []uint8) *Range {
	r.read = func(offset uint32, _ uint16) uint16 {
		return uint16(data[int(offset)%len(data)])
	}
	r.write = func(offset uint32, v uint16, mask uint16) {
		i := int(offset) % len(data)
		data[i] = uint8((uint16(data[i]) &^ mask) | (v & mask))
	}
	return r
}

// ROM decodes the range as byte-wide read-only memory. Writes to the range
// are silently ignored. Addresses beyond the length of the data slice wrap
// around.
func (r *Range) ROM(data []uint8) *Range {
	r.read = func(offset uint32, _ uint16) uint16 {
		if len(data) == 0 {
			return Unmapped
		}
		return uint16(data[int(offset)%len(data)])
	}
	r.write = func(_ uint32, _ uint16, _ uint16) {}
	return r
}

// RAM16 decodes the range as word-wide read/write memory. Addresses beyond
// the length of the data slice wrap around.
func (r *Range) RAM16(data []uint16) *Range {
	r.read = func(offset uint32, _ uint16) uint16 {
		return data[int(offset)%len(data)]
	}
	r.write = func(offset uint32, v uint16, mask uint16) {
		i := int(offset) % len(data)
		data[i] = (data[i] &^ mask) | (v & mask)
	}
	return r
}

// ROM16 decodes the range as word-wide read-only memory. The data is stored
// as little-endian byte pairs. Writes to the range are silently ignored.
func (r *Range) ROM16(data []uint8) *Range {
	words := len(data) / 2
	r.read = func(offset uint32, _ uint16) uint16 {
		if words == 0 {
			return Unmapped
		}
		i := (int(offset) % words) * 2
		return uint16(data[i]) | uint16(data[i+1])<<8
	}
	r.write = func(_ uint32, _ uint16, _ uint16) {}
	return r
}

// Nop decodes the range as neither readable or writable but with no log
// entries made for access. Reads return all ones.
func (r *Range) Nop() *Range {
	r.read = func(_ uint32, _ uint16) uint16 {
		return Unmapped
	}
	r.write = func(_ uint32, _ uint16, _ uint16) {}
	return r
}

func (r *Range) contains(address uint32) bool {
	return address >= r.Start && address <= r.End
}

func (r *Range) offset(address uint32) uint32 {
	return (address - r.Start) >> r.shift
}

// Map is a list of Ranges.
type Map struct {
	Name string

	// log permission for unmapped access
	perm logger.Permission

	// number of significant address bits
	addrMask uint32

	// shift applied to the offset passed to a handler
	shift uint

	ranges []*Range
}

// NewMap is the preferred method of initialisation for the Map type. The
// addrBits argument is the width of the address bus. The shift argument is
// the number of low address bits that select a location within a single bus
// access.
func NewMap(name string, addrBits uint, shift uint) *Map {
	m := &Map{
		Name:   name,
		perm:   logger.Allow,
		shift:  shift,
		ranges: make([]*Range, 0),
	}
	if addrBits >= 32 {
		m.addrMask = 0xffffffff
	} else {
		m.addrMask = (uint32(1) << addrBits) - 1
	}
	return m
}

// SetPermission changes the permission used when logging unmapped access.
func (m *Map) SetPermission(perm logger.Permission) {
	m.perm = perm
}

func (m *Map) String() string {
	s := strings.Builder{}
	for _, r := range m.ranges {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Install a new range in the map. Install can be called while the machine is
// running; the new range takes precedence over any existing ranges that it
// overlaps.
func (m *Map) Install(start uint32, end uint32, name string) *Range {
	r := &Range{
		Name:  name,
		Start: start & m.addrMask,
		End:   end & m.addrMask,
		shift: m.shift,
	}
	m.ranges = append(m.ranges, r)
	return r
}

// Ranges returns the list of ranges in the order they were installed.
func (m *Map) Ranges() []*Range {
	return m.ranges
}

// Lookup returns the ranges that will handle a read and a write to the
// address. Either value can be nil.
func (m *Map) Lookup(address uint32) (read *Range, write *Range) {
	address &= m.addrMask
	for i := len(m.ranges) - 1; i >= 0; i-- {
		r := m.ranges[i]
		if !r.contains(address) {
			continue
		}
		if read == nil && r.read != nil {
			read = r
		}
		if write == nil && r.write != nil {
			write = r
		}
		if read != nil && write != nil {
			break
		}
	}
	return read, write
}

// Read data from address.
func (m *Map) Read(address uint32, mask uint16) uint16 {
	r, _ := m.Lookup(address)
	if r == nil {
		logger.Logf(m.perm, m.Name, "unmapped read from %08x", address&m.addrMask)
		return Unmapped & mask
	}
	return r.read(r.offset(address&m.addrMask), mask) & mask
}

// Write data to address.
func (m *Map) Write(address uint32, data uint16, mask uint16) {
	_, w := m.Lookup(address)
	if w == nil {
		logger.Logf(m.perm, m.Name, "unmapped write to %08x = %04x", address&m.addrMask, data&mask)
		return
	}
	w.write(w.offset(address&m.addrMask), data&mask, mask)
}

// Read8 is a convenience function for machines with an 8-bit data bus.
func (m *Map) Read8(address uint16) uint8 {
	return uint8(m.Read(uint32(address), MaskByte))
}

// Write8 is a convenience function for machines with an 8-bit data bus.
func (m *Map) Write8(address uint16, data uint8) {
	m.Write(uint32(address), uint16(data), MaskByte)
}
