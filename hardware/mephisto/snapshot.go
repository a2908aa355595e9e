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

import (
	"slices"

	"github.com/cabinet-emu/cabinet/hardware/outputs"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/hc259"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/keys"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/sensorboard"
)

// State is a snapshot of a Mephisto. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
//
// The ROM and the scheduler are not part of the snapshot.
type State struct {
	RAM      []uint8
	Latch    *hc259.Latch
	LCD      LCD
	Keys     *keys.Ports
	Board    *sensorboard.Board
	Outputs  *outputs.Outputs
	AllowNMI bool
}

// Snapshot the state of the machine.
func (m *Mephisto) Snapshot() *State {
	s := &State{
		RAM:      slices.Clone(m.RAM),
		Latch:    m.Latch.Snapshot(),
		LCD:      *m.LCD,
		Keys:     m.Keys.Snapshot(),
		Board:    m.Board.Snapshot(),
		Outputs:  m.Outputs.Snapshot(),
		AllowNMI: m.allowNMI,
	}
	s.LCD.onDigit = nil
	return s
}

// Plumb a previously snapshotted state into the machine.
func (m *Mephisto) Plumb(state *State) {
	if state == nil {
		panic("mephisto: cannot plumb in a nil state")
	}

	// RAM is copied rather than replaced because the address map refers to
	// the existing slice
	copy(m.RAM, state.RAM)

	latch := state.Latch.Snapshot()
	latch.Plumb(m.Latch)
	m.Latch = latch

	onDigit := m.LCD.onDigit
	lcd := state.LCD
	m.LCD = &lcd
	m.LCD.onDigit = onDigit

	m.Keys = state.Keys.Snapshot()
	m.Board = state.Board.Snapshot()

	out := state.Outputs.Snapshot()
	out.Plumb(m.Outputs)
	m.Outputs = out

	m.allowNMI = state.AllowNMI
}
