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

// Package mephisto emulates the Hegener & Glaser Mephisto chess computers
// built around the 65C02: the MM2, the Rebell 5,0, the MM4 and the MM5
// series including the Turbo Kit upgrades.
//
// The machines share a board design that differs mainly in address decoding.
// Each has 8K or 4K of RAM, a four digit LCD fed through a shift register, a
// keyboard of sixteen keys read through a multiplexer, a 74HC259 latch
// driving six status LEDs, the beeper and the LCD blanking line, and a
// modular sensor board.
//
// The machines are kept alive by a periodic interrupt. How the interrupt is
// raised differs between the models and is described by the InterruptPolicy
// type.
package mephisto
