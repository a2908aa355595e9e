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
	"fmt"
	"strings"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/hardware/cpu"
)

// Sentinal error returned by LookupVariant().
const UnknownVariant = "mephisto: unknown variant: %s"

// layout identifies one of the three address decoding schemes.
type layout int

const (
	layoutMephisto layout = iota
	layoutRebel5
	layoutMM2
)

func (l layout) String() string {
	switch l {
	case layoutMephisto:
		return "mephisto"
	case layoutRebel5:
		return "rebel5"
	case layoutMM2:
		return "mm2"
	}
	return "unknown"
}

// Variant describes the differences between the models.
type Variant struct {
	Name string

	// the CPU fitted to the board
	CPU cpu.Model

	Policy InterruptPolicy

	// the value published to the "MM" output. the front-end uses this value
	// to select the correct artwork
	Artwork int

	// the address decoding used by the board
	layout layout

	// the initial value of the LCD blanking mask
	blank uint8
}

func (v Variant) String() string {
	return fmt.Sprintf("%s (%s, %s, %s map)", v.Name, v.CPU, v.Policy, v.layout)
}

// clock speeds of the various boards
const (
	clockMM2    = 3700000
	clockNormal = 4915200
	clockTurbo  = 18000000
)

var variants = map[string]Variant{
	"mm2": {
		Name:    "mm2",
		CPU:     cpu.Model{Name: cpu.M65C02, Clock: clockMM2},
		Policy:  HeldLevel,
		Artwork: 1,
		layout:  layoutMM2,
		blank:   blankOn,
	},
	"rebel5": {
		Name:    "rebel5",
		CPU:     cpu.Model{Name: cpu.M65C02, Clock: clockNormal},
		Policy:  UnconditionalPulse,
		Artwork: 4,
		layout:  layoutRebel5,
		blank:   blankOff,
	},
	"mm4": {
		Name:    "mm4",
		CPU:     cpu.Model{Name: cpu.M65C02, Clock: clockNormal},
		Policy:  GatedPulse,
		Artwork: 2,
		layout:  layoutMephisto,
		blank:   blankOff,
	},
	"mm4tk": {
		Name:    "mm4tk",
		CPU:     cpu.Model{Name: cpu.M65C02, Clock: clockTurbo},
		Policy:  GatedPulse,
		Artwork: 5,
		layout:  layoutMephisto,
		blank:   blankOff,
	},
	"mm5": {
		Name:    "mm5",
		CPU:     cpu.Model{Name: cpu.M65C02, Clock: clockNormal},
		Policy:  GatedPulse,
		Artwork: 3,
		layout:  layoutMephisto,
		blank:   blankOff,
	},
	"mm50": {
		Name:    "mm50",
		CPU:     cpu.Model{Name: cpu.M65C02, Clock: clockNormal},
		Policy:  GatedPulse,
		Artwork: 3,
		layout:  layoutMephisto,
		blank:   blankOff,
	},
	"mm5tk": {
		Name:    "mm5tk",
		CPU:     cpu.Model{Name: cpu.M65C02, Clock: clockTurbo},
		Policy:  GatedPulse,
		Artwork: 5,
		layout:  layoutMephisto,
		blank:   blankOff,
	},
}

// LookupVariant returns the named variant.
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(name)]
	if !ok {
		return Variant{}, curated.Errorf(UnknownVariant, name)
	}
	return v, nil
}
