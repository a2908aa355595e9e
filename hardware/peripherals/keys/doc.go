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

// Package keys represents the discrete input lines of a machine: keyboard
// matrix columns, joystick switches, coin doors and so on.
//
// Inputs are grouped into ports. Each named input occupies one or more bits
// of its port. All inputs are active low: a port reads as all ones when
// nothing is pressed and the bits of a pressed input are cleared.
package keys
