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

// Package addrmap is the address decoder used by the machine drivers. A
// driver describes the memory map of a machine by installing ranges of
// addresses, each with a read handler, a write handler or both.
//
//	m := addrmap.NewMap("mm4", 16, 0)
//	m.Install(0x0000, 0x1fff, "ram").RAM(ram)
//	m.Install(0x2000, 0x2000, "lcd").W(lcd.Write)
//	m.Install(0x2c00, 0x2c07, "keys").R(keys.Read)
//
// Read and write decoding are independent. When ranges overlap, the range
// installed most recently takes precedence for the direction it handles.
//
// Handlers are given the offset from the start of the range. For machines
// with a bus narrower than the address unit (the TMS34010 addresses bits but
// accesses 16-bit words) the shift argument to NewMap() is applied to the
// difference between the address and the start of the range.
//
// Reads from unmapped addresses return all ones and are logged. Writes to
// unmapped addresses are logged and otherwise ignored.
package addrmap
