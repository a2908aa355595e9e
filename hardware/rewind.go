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

import "fmt"

// the maximum number of states to store before the earliest states are
// forgotten
const maxRewindSteps = 100

// Rewind keeps a history of cabinet states. A state is recorded on every
// reset and whenever Record() is called.
type Rewind struct {
	cab   *Cabinet
	steps []*State
}

func newRewind(cab *Cabinet) *Rewind {
	r := &Rewind{
		cab:   cab,
		steps: make([]*State, 0, maxRewindSteps),
	}
	r.Reset()
	return r
}

func (r *Rewind) String() string {
	return fmt.Sprintf("rewind: %d/%d", len(r.steps), maxRewindSteps)
}

// Reset rewind system to zero, taking a snapshot of the current state.
func (r *Rewind) Reset() {
	r.steps = r.steps[:0]
	r.Record()
}

// Record the current state of the cabinet.
func (r *Rewind) Record() {
	r.steps = append(r.steps, r.cab.Snapshot())

	// maintain maximum length
	if len(r.steps) > maxRewindSteps {
		r.steps = r.steps[1:]
	}
}

// Len returns the number of recorded states.
func (r *Rewind) Len() int {
	return len(r.steps)
}

// Back plumbs in the state recorded n steps ago, where a value of one is the
// most recent state. States after the plumbed state are forgotten. The
// earliest state is never forgotten. Returns the number of steps actually
// moved.
func (r *Rewind) Back(n int) int {
	if n < 1 || len(r.steps) == 0 {
		return 0
	}
	n = min(n, len(r.steps))

	pos := len(r.steps) - n
	r.cab.Plumb(r.steps[pos])

	// the plumbed state becomes the most recent
	r.steps = r.steps[:pos+1]

	return n
}
