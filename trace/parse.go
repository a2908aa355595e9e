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
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/hardware/memory/addrmap"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
)

// Sentinal errors returned by Parse().
const (
	ParseError     = "trace: line %d: %v"
	UnknownCommand = "unknown command: %s"
	WrongArgs      = "wrong number of arguments for %s"
	BadNumber      = "not a hexadecimal number: %s"
	BadDuration    = "not a duration: %s"
	BadSwitch      = "expected on or off: %s"
)

// Parse a trace. The complete trace is parsed before any of it is returned.
// The returned error, if any, includes the line number of the offending line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		cmd, err := parseLine(fields)
		if err != nil {
			return nil, curated.Errorf(ParseError, line, err)
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cmds, nil
}

// ParseString is a convenience wrapper for Parse().
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(fields []string) (Command, error) {
	var cmd Command
	var err error

	op := strings.ToUpper(fields[0])
	args := fields[1:]

	switch op {
	case "R":
		cmd.Op = OpRead
		if len(args) < 1 || len(args) > 2 {
			return cmd, curated.Errorf(WrongArgs, op)
		}
		cmd.Address, err = hex32(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Mask, err = mask(args[1:])

	case "W", "EXPECT":
		cmd.Op = OpWrite
		if op == "EXPECT" {
			cmd.Op = OpExpect
		}
		if len(args) < 2 || len(args) > 3 {
			return cmd, curated.Errorf(WrongArgs, op)
		}
		cmd.Address, err = hex32(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Data, err = hex16(args[1])
		if err != nil {
			return cmd, err
		}
		cmd.Mask, err = mask(args[2:])

	case "T":
		cmd.Op = OpTime
		if len(args) != 1 {
			return cmd, curated.Errorf(WrongArgs, op)
		}
		d, perr := time.ParseDuration(args[0])
		if perr != nil || d < 0 {
			return cmd, curated.Errorf(BadDuration, args[0])
		}
		cmd.Duration = scheduler.FromDuration(d)

	case "RESET", "SNAP", "PRINT":
		switch op {
		case "RESET":
			cmd.Op = OpReset
		case "SNAP":
			cmd.Op = OpSnap
		case "PRINT":
			cmd.Op = OpPrint
		}
		if len(args) != 0 {
			return cmd, curated.Errorf(WrongArgs, op)
		}

	case "KEY", "PIECE":
		cmd.Op = OpKey
		if op == "PIECE" {
			cmd.Op = OpPiece
		}
		if len(args) < 2 {
			return cmd, curated.Errorf(WrongArgs, op)
		}
		if cmd.Op == OpPiece && len(args) != 2 {
			return cmd, curated.Errorf(WrongArgs, op)
		}
		cmd.Name = strings.Join(args[:len(args)-1], " ")
		cmd.On, err = onOrOff(args[len(args)-1])

	case "REWIND":
		cmd.Op = OpRewind
		cmd.Count = 1
		switch len(args) {
		case 0:
		case 1:
			n, perr := strconv.Atoi(args[0])
			if perr != nil || n < 1 {
				return cmd, curated.Errorf(WrongArgs, op)
			}
			cmd.Count = n
		default:
			return cmd, curated.Errorf(WrongArgs, op)
		}

	default:
		return cmd, curated.Errorf(UnknownCommand, fields[0])
	}

	return cmd, err
}

func trimHex(s string) string {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	return strings.TrimPrefix(s, "0X")
}

func hex32(s string) (uint32, error) {
	v, err := strconv.ParseUint(trimHex(s), 16, 32)
	if err != nil {
		return 0, curated.Errorf(BadNumber, s)
	}
	return uint32(v), nil
}

func hex16(s string) (uint16, error) {
	v, err := strconv.ParseUint(trimHex(s), 16, 16)
	if err != nil {
		return 0, curated.Errorf(BadNumber, s)
	}
	return uint16(v), nil
}

// mask returns the mask in the optional argument list. the default mask is
// returned if the list is empty
func mask(args []string) (uint16, error) {
	if len(args) == 0 {
		return addrmap.MaskWord, nil
	}
	return hex16(args[0])
}

func onOrOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, curated.Errorf(BadSwitch, s)
}
