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

package mephisto

import "github.com/cabinet-emu/cabinet/hardware/cpu"

// InterruptPolicy describes how the periodic timer interrupts the CPU.
type InterruptPolicy int

// List of valid InterruptPolicy values.
const (
	// the timer pulses NMI only if the program has armed it by writing to
	// the NMI enable address. each arming allows exactly one pulse
	GatedPulse InterruptPolicy = iota

	// the timer pulses NMI on every tick
	UnconditionalPulse

	// the timer asserts IRQ on every tick. the line is held until the CPU
	// acknowledges it
	HeldLevel
)

func (p InterruptPolicy) String() string {
	switch p {
	case GatedPulse:
		return "gated NMI"
	case UnconditionalPulse:
		return "unconditional NMI"
	case HeldLevel:
		return "held IRQ"
	}
	return "unknown policy"
}

// Rate returns the frequency of the timer in Hz.
func (p InterruptPolicy) Rate() float64 {
	if p == HeldLevel {
		return 450
	}
	return 600
}

// interrupt performs the interrupt assertion for one tick of the timer. the
// armed flag is consumed by the GatedPulse policy and ignored otherwise
func (p InterruptPolicy) interrupt(lines cpu.Lines, armed *bool) {
	switch p {
	case GatedPulse:
		if *armed {
			*armed = false
			lines.PulseNMI()
		}
	case UnconditionalPulse:
		lines.PulseNMI()
	case HeldLevel:
		lines.SetIRQ(cpu.HoldLine)
	}
}
