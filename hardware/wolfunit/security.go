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

// SecurityRead returns the next byte from the security chip or zero if no
// chip is fitted.
func (w *WolfUnit) SecurityRead(_ uint32, _ uint16) uint16 {
	if w.PIC == nil {
		return 0
	}
	return uint16(w.PIC.Read())
}

// SecurityWrite passes a write on to the security chip. Only writes to the
// first word that include the low byte are passed on.
func (w *WolfUnit) SecurityWrite(offset uint32, data uint16, mask uint16) {
	if offset != 0 || mask&0x00ff == 0 {
		return
	}
	if w.PIC != nil {
		w.PIC.Write(uint8(data))
	}
}
