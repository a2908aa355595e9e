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

package govern

import "fmt"

// State is returned by a continue check to direct the emulation.
type State int

// List of valid State values. The zero value is not a valid response from a
// continue check.
const (
	Undefined State = iota

	// do nothing and call the continue check again
	Paused

	// consume one trace command
	Stepping

	// run freely
	Running

	// stop at the earliest opportunity. this is not an error
	Ending
)

func (s State) String() string {
	switch s {
	case Undefined:
		return "undefined"
	case Paused:
		return "paused"
	case Stepping:
		return "stepping"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return fmt.Sprintf("state(%d)", int(s))
}
