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

package trace

import (
	"fmt"
	"strings"

	"github.com/cabinet-emu/cabinet/hardware/scheduler"
)

// Op identifies the action of a trace command.
type Op int

// List of valid Op values.
const (
	OpRead Op = iota
	OpWrite
	OpExpect
	OpTime
	OpReset
	OpKey
	OpPiece
	OpSnap
	OpRewind
	OpPrint
)

var opNames = map[Op]string{
	OpRead:   "R",
	OpWrite:  "W",
	OpExpect: "EXPECT",
	OpTime:   "T",
	OpReset:  "RESET",
	OpKey:    "KEY",
	OpPiece:  "PIECE",
	OpSnap:   "SNAP",
	OpRewind: "REWIND",
	OpPrint:  "PRINT",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Command is a single parsed line of a trace.
type Command struct {
	// line number in the source, counting from one
	Line int

	Op Op

	Address uint32
	Data    uint16
	Mask    uint16

	Duration scheduler.Time

	// key name or sensor board square
	Name string
	On   bool

	// number of steps for REWIND
	Count int
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (c Command) String() string {
	switch c.Op {
	case OpRead:
		return fmt.Sprintf("R %08x %04x", c.Address, c.Mask)
	case OpWrite:
		return fmt.Sprintf("W %08x %04x %04x", c.Address, c.Data, c.Mask)
	case OpExpect:
		return fmt.Sprintf("EXPECT %08x %04x %04x", c.Address, c.Data, c.Mask)
	case OpTime:
		return fmt.Sprintf("T %s", c.Duration)
	case OpKey:
		return fmt.Sprintf("KEY %s %s", strings.ToUpper(c.Name), onOff(c.On))
	case OpPiece:
		return fmt.Sprintf("PIECE %s %s", c.Name, onOff(c.On))
	case OpRewind:
		return fmt.Sprintf("REWIND %d", c.Count)
	}
	return c.Op.String()
}
