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

package scheduler

import (
	"fmt"
	"math"
	"time"
)

// Time is a point in simulated time or a duration of simulated time. The unit
// is the picosecond.
type Time int64

// Some common units of Time.
const (
	Picosecond  Time = 1
	Nanosecond       = 1000 * Picosecond
	Microsecond      = 1000 * Nanosecond
	Millisecond      = 1000 * Microsecond
	Second           = 1000 * Millisecond
)

// FromHz returns the period of the frequency. Frequencies of zero or less
// return a Time of zero.
func FromHz(hz float64) Time {
	if hz <= 0 {
		return 0
	}
	return Time(math.Round(float64(Second) / hz))
}

// FromDuration converts a time.Duration to a scheduler Time.
func FromDuration(d time.Duration) Time {
	return Time(d) * Nanosecond
}

// Duration converts Time to a time.Duration. Precision below one nanosecond
// is lost.
func (t Time) Duration() time.Duration {
	return time.Duration(t / Nanosecond)
}

// Seconds returns the Time as a floating point number of seconds.
func (t Time) Seconds() float64 {
	return float64(t) / float64(Second)
}

func (t Time) String() string {
	switch {
	case t%Second == 0:
		return fmt.Sprintf("%ds", t/Second)
	case t%Millisecond == 0:
		return fmt.Sprintf("%dms", t/Millisecond)
	case t%Microsecond == 0:
		return fmt.Sprintf("%dus", t/Microsecond)
	case t%Nanosecond == 0:
		return fmt.Sprintf("%dns", t/Nanosecond)
	}
	return fmt.Sprintf("%dps", int64(t))
}
