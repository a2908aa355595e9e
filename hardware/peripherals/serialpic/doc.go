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

// Package serialpic emulates the serial number security chip that can be
// fitted to the Wolf-unit board. The chip holds a sixteen byte block that
// encodes the serial number of the board. The game program selects a byte
// with a write and then reads it back.
//
// The reset line is active low. While it is held low the chip reports a
// status of zero and the read index is returned to the start of the block.
package serialpic
