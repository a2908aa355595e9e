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
	"strings"
)

// Timer is a periodic timer. Create with Scheduler.Periodic().
type Timer struct {
	Name string

	// the period of the timer
	Period Time

	// the time the timer will next trigger
	Next Time

	// number of times the timer has triggered
	Count int

	// timers created first are triggered first when they are due at the same
	// moment
	seq int

	callback func()
}

func (t *Timer) String() string {
	return fmt.Sprintf("%s: period=%s next=%s count=%d", t.Name, t.Period, t.Next, t.Count)
}

// Scheduler manages simulated time and the periodic timers that are
// triggered as time moves forward.
type Scheduler struct {
	now    Time
	timers []*Timer
	seq    int
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make([]*Timer, 0),
	}
}

func (s *Scheduler) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("now=%s\n", s.now))
	for _, t := range s.timers {
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Now returns the current simulated time.
func (s *Scheduler) Now() Time {
	return s.now
}

// Elapsed implements the random.Clock interface.
func (s *Scheduler) Elapsed() int64 {
	return int64(s.now)
}

// Periodic creates a new timer that calls the callback function with the
// frequency specified. The first call happens one period from now.
//
// Returns nil if the frequency is not positive.
func (s *Scheduler) Periodic(name string, hz float64, callback func()) *Timer {
	period := FromHz(hz)
	if period == 0 {
		return nil
	}

	t := &Timer{
		Name:     name,
		Period:   period,
		Next:     s.now + period,
		seq:      s.seq,
		callback: callback,
	}
	s.seq++
	s.timers = append(s.timers, t)

	return t
}

// Remove timer from the scheduler. Returns false if the timer is unknown.
func (s *Scheduler) Remove(name string) bool {
	for i, t := range s.timers {
		if t.Name == name {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Timer returns the named timer or nil if it does not exist.
func (s *Scheduler) Timer(name string) *Timer {
	for _, t := range s.timers {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Reset restarts every timer so that it next triggers one period from now.
// The current time and the trigger counts are not changed.
func (s *Scheduler) Reset() {
	for _, t := range s.timers {
		t.Next = s.now + t.Period
	}
}

// next returns the timer that is due soonest or nil if there are no timers.
func (s *Scheduler) next() *Timer {
	var n *Timer
	for _, t := range s.timers {
		if n == nil || t.Next < n.Next || (t.Next == n.Next && t.seq < n.seq) {
			n = t
		}
	}
	return n
}

// Advance moves simulated time forward by the duration d, triggering any
// timers that are due along the way. Timers are triggered in time order and
// the value returned by Now() during a callback is the time the timer was
// due.
//
// Returns the number of timer callbacks that were run.
func (s *Scheduler) Advance(d Time) int {
	if d < 0 {
		return 0
	}

	end := s.now + d
	fired := 0

	for {
		t := s.next()
		if t == nil || t.Next > end {
			break
		}

		s.now = t.Next
		t.Next += t.Period
		t.Count++
		fired++

		if t.callback != nil {
			t.callback()
		}
	}

	s.now = end

	return fired
}
