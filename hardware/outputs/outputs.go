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

package outputs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Listener is called whenever an output changes value.
type Listener func(name string, value int)

// Outputs is the collection of named output values.
type Outputs struct {
	values   map[string]int
	listener Listener
}

// NewOutputs is the preferred method of initialisation for the Outputs type.
func NewOutputs() *Outputs {
	return &Outputs{
		values: make(map[string]int),
	}
}

func (o *Outputs) String() string {
	s := strings.Builder{}
	for _, n := range o.Names() {
		s.WriteString(fmt.Sprintf("%s=%d\n", n, o.values[n]))
	}
	return s.String()
}

// Snapshot creates a copy of the output values. The listener is not copied.
func (o *Outputs) Snapshot() *Outputs {
	return &Outputs{
		values: maps.Clone(o.values),
	}
}

// Plumb attaches the listener of another Outputs instance. Used after
// restoring a snapshot.
func (o *Outputs) Plumb(from *Outputs) {
	o.listener = from.listener
}

// SetListener sets the function to be called when an output changes.
func (o *Outputs) SetListener(l Listener) {
	o.listener = l
}

// Set the named output. The listener is called only if the value changes or
// the output is new.
func (o *Outputs) Set(name string, value int) {
	if v, ok := o.values[name]; ok && v == value {
		return
	}
	o.values[name] = value
	if o.listener != nil {
		o.listener(name, value)
	}
}

// SetBool sets the named output to 1 or 0.
func (o *Outputs) SetBool(name string, value bool) {
	if value {
		o.Set(name, 1)
	} else {
		o.Set(name, 0)
	}
}

// Get the value of the named output. Returns false if the output has never
// been set.
func (o *Outputs) Get(name string) (int, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Names returns the name of every output in alphabetical order.
func (o *Outputs) Names() []string {
	return slices.Sorted(maps.Keys(o.values))
}
