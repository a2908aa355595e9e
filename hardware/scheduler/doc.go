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

// Package scheduler implements simulated time for the machine drivers. Time
// only moves forward when Advance() is called. Periodic timers registered
// with the scheduler are triggered in time order as time moves forward.
//
// Time is measured in picoseconds. This is fine enough to represent the
// periods of the timers used by the drivers (600Hz, 450Hz) without
// accumulating noticeable error.
//
// There is no concurrency in the scheduler. Timer callbacks are run on the
// goroutine that called Advance().
package scheduler
