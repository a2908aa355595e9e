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
	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/govern"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
)

// Sentinal error returned by Run() and RunFor().
const UnsupportedState = "cabinet: unsupported emulation state (%s) in Run() function"

// Timeslice is the amount of simulated time advanced between calls to the
// continue check function.
const Timeslice = scheduler.Millisecond

// Run sets the emulation running as quickly as possible. The emulation ends
// when continueCheck returns the Ending state.
func (cab *Cabinet) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			cab.Advance(Timeslice)
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunFor sets the emulation running for the specified amount of simulated
// time. The continueCheck function is called after every timeslice with the
// amount of time run so far and can end the emulation early.
func (cab *Cabinet) RunFor(d scheduler.Time, continueCheck func(elapsed scheduler.Time) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ scheduler.Time) (govern.State, error) { return govern.Running, nil }
	}

	var elapsed scheduler.Time

	state := govern.Running
	for elapsed < d && state != govern.Ending {
		step := min(Timeslice, d-elapsed)

		switch state {
		case govern.Running:
			cab.Advance(step)
			elapsed += step
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		var err error
		state, err = continueCheck(elapsed)
		if err != nil {
			return err
		}
	}

	return nil
}
