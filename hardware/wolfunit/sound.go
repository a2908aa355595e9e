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

// SoundRead returns the byte sent by the sound board.
func (w *WolfUnit) SoundRead(_ uint32, _ uint16) uint16 {
	logger.Log(w.env, "sound", "sound read")
	return uint16(w.Sound.DataRead()) & 0xff
}

// SoundStateRead returns the sound board control word.
func (w *WolfUnit) SoundStateRead() uint16 {
	return w.Sound.ControlRead()
}

// SoundWrite sends a byte to the sound board. Writes to anything other than
// the first word are ignored.
func (w *WolfUnit) SoundWrite(offset uint32, data uint16, mask uint16) {
	if offset != 0 {
		logger.Logf(w.env, "sound", "unexpected write to sound (hi) = %04x", data)
		return
	}
	if mask&0x00ff != 0 {
		logger.Logf(w.env, "sound", "sound write = %04x", data)
		w.Sound.DataWrite(uint8(data))
	}
}
