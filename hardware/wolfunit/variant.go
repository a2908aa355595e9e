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
	"strings"

	"github.com/cabinet-emu/cabinet/curated"
)

// Sentinal error returned by LookupVariant().
const UnknownVariant = "wolfunit: unknown variant: %s"

// Variant describes the differences between the games running on the board.
type Variant struct {
	Name string

	// the three digit number identifying the game to the security chip
	SerialPrefix int

	// game specific changes to the memory map
	init func(w *WolfUnit)
}

func (v Variant) String() string {
	return v.Name
}

// mk3 and its derivatives need no changes to the memory map
func initMK3(_ *WolfUnit) {
}

func initUMK3(w *WolfUnit) {
	initMK3(w)
	w.Bus.Install(paletteHackStart, paletteHackEnd, "umk3 palette").W(w.paletteHackWrite)
}

func initWWFMania(w *WolfUnit) {
	w.Bus.Install(0x01800000, 0x0180000f, "io shuffle").W(w.shuffleWrite)
}

func initOpenIce(_ *WolfUnit) {
}

func initNBAHangtime(_ *WolfUnit) {
}

func initRampageWT(_ *WolfUnit) {
}

var variants = map[string]Variant{
	"mk3":      {Name: "mk3", SerialPrefix: 528, init: initMK3},
	"mk3r20":   {Name: "mk3r20", SerialPrefix: 528, init: initMK3},
	"mk3r10":   {Name: "mk3r10", SerialPrefix: 528, init: initMK3},
	"umk3":     {Name: "umk3", SerialPrefix: 528, init: initUMK3},
	"umk3r11":  {Name: "umk3r11", SerialPrefix: 528, init: initUMK3},
	"wwfmania": {Name: "wwfmania", SerialPrefix: 430, init: initWWFMania},
	"openice":  {Name: "openice", SerialPrefix: 438, init: initOpenIce},
	"nbahangt": {Name: "nbahangt", SerialPrefix: 459, init: initNBAHangtime},
	"rmpgwt":   {Name: "rmpgwt", SerialPrefix: 465, init: initRampageWT},
}

// LookupVariant returns the named variant.
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(name)]
	if !ok {
		return Variant{}, curated.Errorf(UnknownVariant, name)
	}
	return v, nil
}
