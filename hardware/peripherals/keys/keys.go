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

package keys

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cabinet-emu/cabinet/curated"
)

// Sentinal errors.
const (
	UnknownInput   = "keys: unknown input: %s"
	DuplicateInput = "keys: duplicate input: %s"
)

type input struct {
	port string
	mask uint16
}

// Ports is the collection of input ports for a machine.
type Ports struct {
	order  []string
	ports  map[string]uint16
	inputs map[string]input
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{
		ports:  make(map[string]uint16),
		inputs: make(map[string]input),
	}
}

func (p *Ports) String() string {
	s := strings.Builder{}
	for _, n := range p.order {
		s.WriteString(fmt.Sprintf("%s=%04x ", n, p.ports[n]))
	}
	return strings.TrimSpace(s.String())
}

// Snapshot creates a copy of the input state.
func (p *Ports) Snapshot() *Ports {
	n := &Ports{
		order:  slices.Clone(p.order),
		ports:  make(map[string]uint16, len(p.ports)),
		inputs: make(map[string]input, len(p.inputs)),
	}
	for k, v := range p.ports {
		n.ports[k] = v
	}
	for k, v := range p.inputs {
		n.inputs[k] = v
	}
	return n
}

// Define an input. The port is created if it does not already exist. Input
// names are case insensitive.
func (p *Ports) Define(port string, name string, mask uint16) error {
	name = strings.ToUpper(name)
	if _, ok := p.inputs[name]; ok {
		return curated.Errorf(DuplicateInput, name)
	}
	if _, ok := p.ports[port]; !ok {
		p.ports[port] = 0xffff
		p.order = append(p.order, port)
	}
	p.inputs[name] = input{port: port, mask: mask}
	return nil
}

// Inputs returns the names of all defined inputs in alphabetical order.
func (p *Ports) Inputs() []string {
	n := make([]string, 0, len(p.inputs))
	for k := range p.inputs {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// Set the state of the named input.
func (p *Ports) Set(name string, pressed bool) error {
	in, ok := p.inputs[strings.ToUpper(name)]
	if !ok {
		return curated.Errorf(UnknownInput, name)
	}
	if pressed {
		p.ports[in.port] &^= in.mask
	} else {
		p.ports[in.port] |= in.mask
	}
	return nil
}

// Pressed returns true if the named input is pressed. Unknown inputs are
// never pressed.
func (p *Ports) Pressed(name string) bool {
	in, ok := p.inputs[strings.ToUpper(name)]
	if !ok {
		return false
	}
	return p.ports[in.port]&in.mask == 0
}

// Read the current value of the port. Undefined ports read as all ones.
func (p *Ports) Read(port string) uint16 {
	if v, ok := p.ports[port]; ok {
		return v
	}
	return 0xffff
}

// Release all inputs.
func (p *Ports) Release() {
	for k := range p.ports {
		p.ports[k] = 0xffff
	}
}
