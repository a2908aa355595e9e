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
	"io"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/govern"
	"github.com/cabinet-emu/cabinet/hardware"
)

// Sentinal errors returned by the Player type.
const (
	ExecError      = "trace: line %d: %v"
	ExpectFailed   = "trace: line %d: %08x is %04x, expected %04x"
	CannotContinue = "trace: cannot continue in state %s"
)

// Player executes trace commands on a cabinet. Output from the R and PRINT
// commands is written to the output writer.
type Player struct {
	cab    *hardware.Cabinet
	output io.Writer

	// the number of commands executed
	Executed int
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The output argument can be nil.
func NewPlayer(cab *hardware.Cabinet, output io.Writer) *Player {
	if output == nil {
		output = io.Discard
	}
	return &Player{
		cab:    cab,
		output: output,
	}
}

// Cabinet returns the cabinet being driven by the player.
func (pl *Player) Cabinet() *hardware.Cabinet {
	return pl.cab
}

// Execute a single command.
func (pl *Player) Execute(cmd Command) error {
	if err := pl.execute(cmd); err != nil {
		if curated.Is(err, ExpectFailed) {
			return err
		}
		return curated.Errorf(ExecError, cmd.Line, err)
	}
	pl.Executed++
	return nil
}

func (pl *Player) execute(cmd Command) error {
	cab := pl.cab

	switch cmd.Op {
	case OpRead:
		v := cab.Mem.Read(cmd.Address, cmd.Mask)
		fmt.Fprintf(pl.output, "R %08x = %04x\n", cmd.Address, v)

	case OpWrite:
		cab.Mem.Write(cmd.Address, cmd.Data, cmd.Mask)

	case OpExpect:
		v := cab.Mem.Read(cmd.Address, cmd.Mask)
		if v != cmd.Data&cmd.Mask {
			return curated.Errorf(ExpectFailed, cmd.Line, cmd.Address, v, cmd.Data&cmd.Mask)
		}

	case OpTime:
		cab.Advance(cmd.Duration)

	case OpReset:
		cab.Reset()

	case OpKey:
		return cab.Key(cmd.Name, cmd.On)

	case OpPiece:
		return cab.Piece(cmd.Name, cmd.On)

	case OpSnap:
		cab.Rewind.Record()

	case OpRewind:
		n := cab.Rewind.Back(cmd.Count)
		if n != cmd.Count {
			fmt.Fprintf(pl.output, "rewound %d of %d states\n", n, cmd.Count)
		}

	case OpPrint:
		fmt.Fprintln(pl.output, cab)
	}

	return nil
}

// Play executes the commands in order. The continueCheck function is called
// before every command and can be nil. Returning Paused calls the function
// again without executing the command. Playback stops early when Ending is
// returned or when a command fails.
func (pl *Player) Play(cmds []Command, continueCheck func(cmd Command) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ Command) (govern.State, error) { return govern.Running, nil }
	}

	for _, cmd := range cmds {
		state, err := continueCheck(cmd)
		for err == nil && state == govern.Paused {
			state, err = continueCheck(cmd)
		}
		if err != nil {
			return err
		}

		switch state {
		case govern.Ending:
			return nil
		case govern.Running, govern.Stepping:
		default:
			return curated.Errorf(CannotContinue, state)
		}

		if err := pl.Execute(cmd); err != nil {
			return err
		}
	}

	return nil
}
