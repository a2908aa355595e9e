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

// The TMS34010 timing used by the host assumes a perfect instruction cache.
// Ultimate Mortal Kombat 3 keeps a small circular buffer of pending palette
// changes that is emptied by the video interrupt. With optimistic timing the
// buffer overflows far more often than on a real board and colours are lost.
//
// Writes to the words holding the start and end pointers of the buffer cost
// the CPU additional cycles. The compensation is specific to the host CPU
// timing and is only installed for the two UMK3 revisions.

// bit addresses of the circular buffer pointers
const (
	paletteHackStart = 0x0106a060
	paletteHackEnd   = 0x0106a09f
)

// the number of cycles charged for each write
const paletteHackPenalty = 100

// the word in main RAM of the first pointer
const paletteHackWord = (paletteHackStart - mainRAMStart) >> 4

func (w *WolfUnit) paletteHackWrite(offset uint32, data uint16, mask uint16) {
	i := paletteHackWord + offset
	w.MainRAM[i] = (w.MainRAM[i] &^ mask) | (data & mask)
	w.lines.AdjustCycles(-paletteHackPenalty)
}
