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
	"github.com/cabinet-emu/cabinet/logger"
)

// the input ports read through the shuffle table
var inputPorts = [4]string{"IN0", "IN1", "IN2", "IN3"}

// the physical line that returns the sound and security status
const statusLine = 4

// bits in the control register (I/O offset 1)
const (
	controlSoundReset    = 0x10
	controlSecurityReset = 0x20
)

// I/O offsets with a known function
const (
	ioControl  = 1
	ioWatchdog = 3
)

// IORead returns the value of a logical I/O offset. The offset is mapped to
// a physical line through the shuffle table.
func (w *WolfUnit) IORead(offset uint32, _ uint16) uint16 {
	line := w.Shuffle.Physical(offset)

	switch line {
	case 0, 1, 2, 3:
		return w.Inputs.Read(inputPorts[line])
	case statusLine:
		var pic uint16
		if w.PIC != nil {
			pic = uint16(w.PIC.Status())
		}
		return (pic << 12) | w.SoundStateRead()
	}

	logger.Logf(w.env, "io", "unknown I/O read from %d", line)
	return 0xffff
}

// IOWrite writes to the I/O registers. There are eight registers, repeated
// throughout the I/O range.
func (w *WolfUnit) IOWrite(offset uint32, data uint16, mask uint16) {
	offset %= uint32(len(w.IOData))
	word := (w.IOData[offset] &^ mask) | (data & mask)

	switch offset {
	case ioControl:
		logger.Logf(w.env, "io", "control write @ %d = %04x", offset, data)
		w.Sound.ResetLine(word&controlSoundReset == controlSoundReset)
		if w.PIC != nil {
			w.PIC.ResetLine(word&controlSecurityReset == controlSecurityReset)
		}
	case ioWatchdog:
		// the watchdog is not emulated
	default:
		logger.Logf(w.env, "io", "unknown I/O write to %d = %04x", offset, data)
	}

	w.IOData[offset] = word
}

// shuffleWrite is the handler for the I/O shuffle register found on WWF
// Wrestlemania. The table is reset before the profile is applied
func (w *WolfUnit) shuffleWrite(_ uint32, data uint16, _ uint16) {
	w.Shuffle.Reset()
	w.Shuffle.Apply(int(data))
	logger.Logf(w.env, "io", "changed I/O switching to %d", data)
}
