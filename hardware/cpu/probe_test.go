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

package cpu_test

import (
	"testing"

	"github.com/cabinet-emu/cabinet/hardware/cpu"
	"github.com/cabinet-emu/cabinet/test"
)

func TestProbe(t *testing.T) {
	p := cpu.NewProbe(cpu.Model{Name: cpu.M65C02, Clock: 4915200})
	test.ExpectEquality(t, p.Model.String(), "M65C02 @ 4.9152MHz")

	p.PulseNMI()
	p.PulseNMI()
	test.ExpectEquality(t, p.NMIPulses, 2)

	// a held line is counted once until it is acknowledged
	p.SetIRQ(cpu.HoldLine)
	p.SetIRQ(cpu.HoldLine)
	test.ExpectEquality(t, p.IRQAsserts, 1)
	p.AcknowledgeIRQ()
	test.ExpectEquality(t, p.IRQ, cpu.ClearLine)
	p.SetIRQ(cpu.HoldLine)
	test.ExpectEquality(t, p.IRQAsserts, 2)

	// an asserted line survives acknowledgement
	p.SetIRQ(cpu.AssertLine)
	p.AcknowledgeIRQ()
	test.ExpectEquality(t, p.IRQ, cpu.AssertLine)

	p.AdjustCycles(-100)
	p.AdjustCycles(-100)
	test.ExpectEquality(t, p.CycleAdjust, -200)

	p.Reset()
	test.ExpectEquality(t, p.String(), "M65C02 nmi=0 irq=clear (0) cycles=+0")
}
