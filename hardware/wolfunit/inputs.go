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

import "github.com/cabinet-emu/cabinet/hardware/peripherals/keys"

type inputDef struct {
	port string
	name string
	mask uint16
}

// the inputs shared by every game on the board. the fourth port is the bank
// of DIP switches, which are closed (pressed) when the bit is low
var inputDefs = []inputDef{
	{"IN0", "P1 Up", 0x0001},
	{"IN0", "P1 Down", 0x0002},
	{"IN0", "P1 Left", 0x0004},
	{"IN0", "P1 Right", 0x0008},
	{"IN0", "P1 Button 1", 0x0010},
	{"IN0", "P1 Button 2", 0x0020},
	{"IN0", "P1 Button 3", 0x0040},
	{"IN0", "P2 Up", 0x0100},
	{"IN0", "P2 Down", 0x0200},
	{"IN0", "P2 Left", 0x0400},
	{"IN0", "P2 Right", 0x0800},
	{"IN0", "P2 Button 1", 0x1000},
	{"IN0", "P2 Button 2", 0x2000},
	{"IN0", "P2 Button 3", 0x4000},

	{"IN1", "Coin 1", 0x0001},
	{"IN1", "Coin 2", 0x0002},
	{"IN1", "Start 1", 0x0004},
	{"IN1", "Tilt", 0x0008},
	{"IN1", "Test", 0x0010},
	{"IN1", "Start 2", 0x0020},
	{"IN1", "Service 1", 0x0040},
	{"IN1", "Coin 3", 0x0080},
	{"IN1", "Coin 4", 0x0100},
	{"IN1", "Volume Down", 0x0400},
	{"IN1", "Volume Up", 0x0800},

	{"IN2", "P1 Button 4", 0x0001},
	{"IN2", "P1 Button 5", 0x0002},
	{"IN2", "P1 Button 6", 0x0004},
	{"IN2", "P2 Button 4", 0x0010},
	{"IN2", "P2 Button 5", 0x0020},
	{"IN2", "P2 Button 6", 0x0040},

	{"IN3", "DSW Test Mode", 0x0001},
	{"IN3", "DSW Counters", 0x0002},
	{"IN3", "DSW Powerup Test", 0x0010},
	{"IN3", "DSW Freeze", 0x0020},
}

func newInputs() *keys.Ports {
	k := keys.NewPorts()
	for _, d := range inputDefs {
		// definitions are unique so the error can be safely ignored
		_ = k.Define(d.port, d.name, d.mask)
	}
	return k
}
