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

// Probe records activity on the interrupt lines. It implements the Lines
// interface.
type Probe struct {
	Model Model

	// number of NMI pulses since the last reset
	NMIPulses int

	// current state of IRQ line and the number of times it has been moved
	// from the clear state
	IRQ        LineState
	IRQAsserts int

	// sum of all cycle adjustments since the last reset
	CycleAdjust int
}

// NewProbe is the preferred method of initialisation for the Probe type.
func NewProbe(model Model) *Probe {
	return &Probe{Model: model}
}

func (p *Probe) String() string {
	return fmt.Sprintf("%s nmi=%d irq=%s (%d) cycles=%+d", p.Model.Name, p.NMIPulses, p.IRQ, p.IRQAsserts, p.CycleAdjust)
}

// Reset all recorded activity.
func (p *Probe) Reset() {
	p.NMIPulses = 0
	p.IRQ = ClearLine
	p.IRQAsserts = 0
	p.CycleAdjust = 0
}

// Snapshot creates a copy of the Probe in its current state.
func (p *Probe) Snapshot() *Probe {
	n := *p
	return &n
}

// PulseNMI implements the Lines interface.
func (p *Probe) PulseNMI() {
	p.NMIPulses++
}

// SetIRQ implements the Lines interface.
func (p *Probe) SetIRQ(state LineState) {
	if p.IRQ == ClearLine && state != ClearLine {
		p.IRQAsserts++
	}
	p.IRQ = state
}

// AcknowledgeIRQ is called by the CPU when an interrupt is serviced. A held
// line is cleared. An asserted line stays asserted.
func (p *Probe) AcknowledgeIRQ() {
	if p.IRQ == HoldLine {
		p.IRQ = ClearLine
	}
}

// AdjustCycles implements the Lines interface.
func (p *Probe) AdjustCycles(delta int) {
	p.CycleAdjust += delta
}
