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

//go:build unix

package trace

import (
	"fmt"
	"io"

	"github.com/pkg/term"

	"github.com/cabinet-emu/cabinet/govern"
)

// Stepper is a continue check for Player.Play() that waits for a key press
// on the controlling terminal before every command.
//
//	space or return   execute the command
//	c                 execute the remaining commands without stopping
//	p                 print the state of the cabinet
//	q                 end playback
type Stepper struct {
	tty    *term.Term
	pl     *Player
	output io.Writer

	// stepping has been turned off by the user
	free bool
}

// NewStepper opens the controlling terminal in raw mode. Close() must be
// called to restore the terminal.
func NewStepper(pl *Player, output io.Writer) (*Stepper, error) {
	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, err
	}
	return &Stepper{tty: tty, pl: pl, output: output}, nil
}

// Close restores the terminal to its original mode.
func (st *Stepper) Close() error {
	if err := st.tty.Restore(); err != nil {
		return err
	}
	return st.tty.Close()
}

// Check implements the continue check function required by Player.Play().
func (st *Stepper) Check(cmd Command) (govern.State, error) {
	if st.free {
		return govern.Running, nil
	}

	// output is in raw mode so lines end with carriage returns
	fmt.Fprintf(st.output, "%4d: %s\r\n", cmd.Line, cmd)

	b := make([]byte, 1)
	if _, err := st.tty.Read(b); err != nil {
		return govern.Ending, err
	}

	return st.key(b[0]), nil
}

func (st *Stepper) key(k byte) govern.State {
	switch k {
	case ' ', '\r', '\n':
		return govern.Stepping
	case 'c', 'C':
		st.free = true
		return govern.Running
	case 'p', 'P':
		fmt.Fprintf(st.output, "%s\r\n", st.pl.Cabinet())
		return govern.Paused
	case 'q', 'Q', 0x03:
		return govern.Ending
	}
	return govern.Paused
}
