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

	"github.com/cabinet-emu/cabinet/hardware/peripherals/keys"
)

// KeyLine is the data bit used by every key.
const KeyLine = uint16(0x80)

// names of the keys in each group. the index is the offset of the key in the
// keyboard address range
var keyNames = [2][8]string{
	{"CLEAR", "POS", "MEM", "INFO", "LEV", "ENT", "0", "9"},
	{"E 5", "F 6", "G 7", "A 1", "H 8", "B 2", "C 3", "D 4"},
}

func portName(group int, offset int) string {
	return fmt.Sprintf("KEY%d_%d", group+1, offset)
}

// newKeyboard defines the sixteen keys. each key has its own port
func newKeyboard() *keys.Ports {
	k := keys.NewPorts()
	for g := range keyNames {
		for o, n := range keyNames[g] {
			// names are unique so the error can be safely ignored
			_ = k.Define(portName(g, o), n, KeyLine)
		}
	}
	return k
}
