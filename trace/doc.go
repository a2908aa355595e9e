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

// Package trace drives a cabinet with a script of bus activity. Without a CPU
// core the script stands in for the program: each line reads or writes an
// address, advances simulated time or operates a control on the cabinet.
//
// The script format is line based. Fields are separated by white space and
// the first field is the command, which is not case sensitive. Blank lines
// and lines beginning with # are ignored. Addresses, data and masks are
// always hexadecimal, with or without a 0x or $ prefix.
//
//	R addr [mask]              read from the bus and print the value
//	W addr data [mask]         write to the bus
//	EXPECT addr data [mask]    read from the bus and fail if the value differs
//	T duration                 advance simulated time (eg. 10ms, 1.5s)
//	RESET                      reset the cabinet
//	KEY name on|off            press or release a key. names can contain spaces
//	PIECE square on|off        place or remove a piece on the sensor board
//	SNAP                       record the cabinet state
//	REWIND [n]                 return to the nth most recent recorded state
//	PRINT                      print the state of the cabinet
//
// The mask selects which bits of a word are written or read. It defaults to
// ffff, which is also correct for the eight bit buses of the chess computers.
package trace
