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

package hardware

import (
	"github.com/cabinet-emu/cabinet/hardware/cpu"
	"github.com/cabinet-emu/cabinet/hardware/mephisto"
	"github.com/cabinet-emu/cabinet/hardware/wolfunit"
)

// State stores the cabinet sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Note in particular that the scheduler is not part of the snapshot.
type State struct {
	Probe    *cpu.Probe
	Mephisto *mephisto.State
	WolfUnit *wolfunit.State
}

// Snapshot the state of the cabinet sub-systems.
func (cab *Cabinet) Snapshot() *State {
	s := &State{
		Probe: cab.Probe.Snapshot(),
	}
	if cab.Mephisto != nil {
		s.Mephisto = cab.Mephisto.Snapshot()
	}
	if cab.WolfUnit != nil {
		s.WolfUnit = cab.WolfUnit.Snapshot()
	}
	return s
}

// Plumb a previously snapshotted state. The state must have been created by
// a cabinet running the same ROM set.
func (cab *Cabinet) Plumb(state *State) {
	if state == nil {
		panic("cabinet: cannot plumb in a nil state")
	}

	// the probe is referred to by the board so the contents are copied
	*cab.Probe = *state.Probe

	if cab.Mephisto != nil {
		cab.Mephisto.Plumb(state.Mephisto)
	}
	if cab.WolfUnit != nil {
		cab.WolfUnit.Plumb(state.WolfUnit)
	}
}
