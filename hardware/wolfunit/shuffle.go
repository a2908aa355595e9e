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

import "fmt"

// ShuffleSize is the number of entries in the shuffle table.
const ShuffleSize = 16

// Shuffle maps logical I/O offsets to physical I/O lines.
type Shuffle [ShuffleSize]uint8

// the changes made by each shuffle profile. profile 0 makes no changes
var profiles = map[int][]struct{ logical, physical uint8 }{
	1: {{4, 0}, {8, 1}, {1, 2}, {9, 3}, {2, 4}},
	2: {{8, 0}, {2, 1}, {4, 2}, {6, 3}, {1, 4}},
	3: {{1, 0}, {8, 1}, {2, 2}, {10, 3}, {5, 4}},
	4: {{2, 0}, {4, 1}, {1, 2}, {7, 3}, {8, 4}},
}

func (s *Shuffle) String() string {
	return fmt.Sprintf("shuffle: %v", s[:])
}

// Reset the table so that every logical offset maps to the physical line of
// the same number, modulo eight.
func (s *Shuffle) Reset() {
	for i := range s {
		s[i] = uint8(i % 8)
	}
}

// Apply a profile to the table. Only the entries named by the profile are
// changed. Unknown profiles change nothing.
func (s *Shuffle) Apply(id int) {
	for _, p := range profiles[id] {
		s[p.logical] = p.physical
	}
}

// Physical returns the physical line for a logical offset.
func (s *Shuffle) Physical(logical uint32) uint8 {
	return s[logical%ShuffleSize]
}
