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

package hc259

import (
	"fmt"
	"strings"
)

// NumOutputs is the number of Q outputs on the latch.
const NumOutputs = 8

// Callback is called whenever an output of the latch changes.
type Callback func(state bool)

// Latch represents a single 74HC259 device.
type Latch struct {
	q         uint8
	callbacks [NumOutputs]Callback
}

// NewLatch is the preferred method of initialisation for the Latch type.
func NewLatch() *Latch {
	return &Latch{}
}

func (l *Latch) String() string {
	s := strings.Builder{}
	for i := NumOutputs - 1; i >= 0; i-- {
		if l.Q(i) {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return fmt.Sprintf("Q7..0=%s", s.String())
}

// Snapshot creates a copy of the latch state. Callbacks are not copied and
// must be added again with Plumb().
func (l *Latch) Snapshot() *Latch {
	return &Latch{q: l.q}
}

// Plumb attaches the callbacks of another latch to this latch. Used after
// restoring a snapshot.
func (l *Latch) Plumb(from *Latch) {
	l.callbacks = from.callbacks
}

// OnChange sets the callback function for output n. A nil function removes
// any existing callback.
func (l *Latch) OnChange(n int, cb Callback) {
	l.callbacks[n&(NumOutputs-1)] = cb
}

// Reset clears all outputs. Callbacks are called for any output that was
// previously set.
func (l *Latch) Reset() {
	for i := range NumOutputs {
		l.set(i, false)
	}
}

// Q returns the state of output n.
func (l *Latch) Q(n int) bool {
	return l.q&(1<<(n&(NumOutputs-1))) != 0
}

// Outputs returns all outputs packed into a byte. Q0 is bit 0.
func (l *Latch) Outputs() uint8 {
	return l.q
}

// Write sets output offset to state. Only the lowest three bits of offset are
// used.
func (l *Latch) Write(offset uint32, state bool) {
	l.set(int(offset&(NumOutputs-1)), state)
}

// WriteD7 sets output offset to bit 7 of data.
func (l *Latch) WriteD7(offset uint32, data uint8) {
	l.Write(offset, data&0x80 == 0x80)
}

func (l *Latch) set(n int, state bool) {
	b := uint8(1) << n
	old := l.q&b != 0
	if state {
		l.q |= b
	} else {
		l.q &^= b
	}
	if old != state && l.callbacks[n] != nil {
		l.callbacks[n](state)
	}
}
