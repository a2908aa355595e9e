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

// Package sensorboard emulates the Mephisto modular sensor board. The board
// is an 8x8 grid of reed switches, one under each square, with an LED in the
// corner of every square.
//
// The machine selects one or more columns by writing to the multiplexer. A
// column is selected when its bit is low. Reads from the board return one
// bit per rank, with a bit low when a piece stands on that rank in any
// selected column.
package sensorboard
