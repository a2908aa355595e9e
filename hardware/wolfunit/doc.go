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

// Package wolfunit emulates the I/O glue of the Williams/Midway Wolf-unit
// arcade board. The board carries a TMS34010 graphics processor as its main
// CPU, a DCS sound board, battery-backed CMOS and optionally a serial number
// security chip.
//
// The TMS34010 addresses memory in bits. All address ranges in this package
// are bit addresses and handlers are given word offsets.
//
// CMOS can only be written after a write to the CMOS enable range. Each
// enable permits exactly one write. A write that has not been enabled is
// logged and raises the notifications.NotifyBadCMOSWrite notice.
//
// The four input ports and the sound/security status word are read through a
// shuffle table. WWF Wrestlemania reconfigures the table at runtime.
package wolfunit
