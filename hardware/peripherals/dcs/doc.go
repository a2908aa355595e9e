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

// Package dcs emulates the host side of the DCS sound board found on the
// Wolf-unit arcade board. Only the mailbox between the main CPU and the
// sound CPU is emulated. The sound program and DSP are not.
//
// The mailbox consists of two byte-wide latches, one in each direction, and a
// control word. Bit 11 of the control word is set when the latch written by
// the main CPU is empty and bit 10 is set when the latch written by the sound
// CPU is empty.
package dcs
