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

//go:build !unix

package trace

import (
	"io"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/govern"
)

// Sentinal error returned by NewStepper().
const NoStepper = "trace: interactive stepping requires a unix terminal"

// Stepper is not available on this platform.
type Stepper struct{}

// NewStepper always returns an error on this platform.
func NewStepper(_ *Player, _ io.Writer) (*Stepper, error) {
	return nil, curated.Errorf(NoStepper)
}

// Close does nothing.
func (st *Stepper) Close() error {
	return nil
}

// Check always ends playback.
func (st *Stepper) Check(_ Command) (govern.State, error) {
	return govern.Ending, nil
}
