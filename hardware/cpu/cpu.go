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

package cpu

import "fmt"

// LineState describes the state of an interrupt line.
type LineState int

// List of valid LineState values.
const (
	// the line is not asserted
	ClearLine LineState = iota

	// the line is asserted until it is explicitly cleared
	AssertLine

	// the line is asserted until the CPU acknowledges the interrupt
	HoldLine
)

func (s LineState) String() string {
	switch s {
	case ClearLine:
		return "clear"
	case AssertLine:
		return "assert"
	case HoldLine:
		return "hold"
	}
	return fmt.Sprintf("line(%d)", int(s))
}

// Lines is the interface a driver uses to affect the CPU.
type Lines interface {
	// PulseNMI asserts and immediately clears the non-maskable interrupt.
	PulseNMI()

	// SetIRQ sets the state of the maskable interrupt line.
	SetIRQ(state LineState)

	// AdjustCycles adds delta to the number of cycles remaining in the
	// current timeslice. A negative number makes the CPU slower.
	AdjustCycles(delta int)
}

// Model describes the CPU fitted to a machine.
type Model struct {
	Name string

	// clock in Hz
	Clock int
}

func (m Model) String() string {
	return fmt.Sprintf("%s @ %.4fMHz", m.Name, float64(m.Clock)/1000000)
}

// Names of the CPU models used by the drivers.
const (
	M65C02   = "M65C02"
	TMS34010 = "TMS34010"
)
