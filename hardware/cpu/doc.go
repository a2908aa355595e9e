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

// Package cpu defines how machine drivers talk to the CPU of the host
// emulation. Drivers do not execute instructions. They only assert interrupt
// lines and, occasionally, adjust the number of cycles remaining in the
// current timeslice.
//
// The Probe type is an implementation of the Lines interface that records
// the activity on the interrupt lines. It is used by the bus trace player and
// by tests.
package cpu
