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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is implemented by the emulation scheduler. The returned value is the
// simulated time in picoseconds.
type Clock interface {
	Elapsed() int64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	norewind *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil in which case Rewindable() behaves as though the
// simulated time is always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock:    clock,
		norewind: rand.New(rand.NewSource(baseSeed)),
	}
}

func (rnd *Random) elapsed() int64 {
	if rnd.clock == nil {
		return 0
	}
	return rnd.clock.Elapsed()
}

// Rewindable returns a random number in the range 0 to n-1. The number is
// determined by the current simulated time.
func (rnd *Random) Rewindable(n int) int {
	seed := rnd.elapsed()
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed)).Intn(n)
}

// NoRewind returns a random number in the range 0 to n-1. The number is not
// dependent on the simulated time.
func (rnd *Random) NoRewind(n int) int {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(0)).Intn(n)
	}
	return rnd.norewind.Intn(n)
}

// Fill the slice with random data. The data is determined by the current
// simulated time.
func (rnd *Random) Fill(data []uint8) {
	seed := rnd.elapsed()
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	src := rand.New(rand.NewSource(seed))
	for i := range data {
		data[i] = uint8(src.Intn(0x100))
	}
}
