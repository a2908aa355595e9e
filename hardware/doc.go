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

// Package hardware is the base package for the cabinet emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Cabinet type is the root of the emulation. It is created from a loaded
// ROM set and the driver named by the set decides which board is built. The
// CPU is not emulated. The interrupt lines and the cycle adjustments made by
// the board are recorded by a cpu.Probe, and the memory map is driven directly
// through the Mem field. This is what the trace package does.
//
// From here the emulation can be advanced in simulated time, either
// continuously with Run() or in fixed amounts with RunFor().
package hardware
