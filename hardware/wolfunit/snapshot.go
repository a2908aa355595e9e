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

package wolfunit

import (
	"slices"

	"github.com/cabinet-emu/cabinet/hardware/peripherals/dcs"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/keys"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/serialpic"
)

// State is a snapshot of a WolfUnit. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
//
// The program ROM and the scheduler are not part of the snapshot.
type State struct {
	MainRAM []uint16
	CMOS    *CMOS
	Shuffle Shuffle
	IOData  [8]uint16
	Inputs  *keys.Ports
	Sound   *dcs.Board
	PIC     *serialpic.PIC
}

// Snapshot the state of the board.
func (w *WolfUnit) Snapshot() *State {
	s := &State{
		MainRAM: slices.Clone(w.MainRAM),
		CMOS:    w.CMOS.snapshot(),
		Shuffle: w.Shuffle,
		IOData:  w.IOData,
		Inputs:  w.Inputs.Snapshot(),
		Sound:   w.Sound.Snapshot(),
	}
	if w.PIC != nil {
		s.PIC = w.PIC.Snapshot()
	}
	return s
}

// Plumb a previously snapshotted state into the board.
func (w *WolfUnit) Plumb(state *State) {
	if state == nil {
		panic("wolfunit: cannot plumb in a nil state")
	}

	// main RAM is copied rather than replaced because the address map refers
	// to the existing slice
	copy(w.MainRAM, state.MainRAM)

	w.CMOS = state.CMOS.snapshot()
	w.CMOS.env = w.env
	w.Shuffle = state.Shuffle
	w.IOData = state.IOData
	w.Inputs = state.Inputs.Snapshot()
	w.Sound = state.Sound.Snapshot()
	w.Sound.Plumb(w.env)
	if state.PIC != nil {
		w.PIC = state.PIC.Snapshot()
	} else {
		w.PIC = nil
	}
}
