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

package beeper

import (
	"fmt"
	"math"
	"sync"

	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/faiface/beep"
)

// Frequency of the oscillator driving the speaker.
const Frequency = 3250.0

// amplitude of a full volume sample
const amplitude = math.MaxInt16

// Recorder implementations receive samples produced by the beeper.
type Recorder interface {
	AddSamples(samples []int16)
}

// Beeper represents the speaker and the oscillator driving it.
type Beeper struct {
	crit sync.Mutex

	sampleRate beep.SampleRate
	volume     float64

	state bool

	// position in the current oscillator cycle in the range 0.0 to 1.0
	phase float64

	// simulated time not yet turned into samples, multiplied by the sample
	// rate
	pending int64

	recorder Recorder
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
func NewBeeper(sampleRate int, volume float64) *Beeper {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &Beeper{
		sampleRate: beep.SampleRate(sampleRate),
		volume:     math.Max(0, math.Min(1, volume)),
	}
}

func (bp *Beeper) String() string {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	if bp.state {
		return fmt.Sprintf("beeper: on (%.0fHz)", Frequency)
	}
	return "beeper: off"
}

// SampleRate returns the sample rate of the audio produced by the beeper.
func (bp *Beeper) SampleRate() beep.SampleRate {
	return bp.sampleRate
}

// SetRecorder attaches a recorder to the beeper. A nil value detaches any
// existing recorder.
func (bp *Beeper) SetRecorder(r Recorder) {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	bp.recorder = r
}

// SetState turns the oscillator on or off.
func (bp *Beeper) SetState(on bool) {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	bp.state = on
}

// State returns whether the oscillator is on.
func (bp *Beeper) State() bool {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	return bp.state
}

// Reset turns the oscillator off and discards any pending time.
func (bp *Beeper) Reset() {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	bp.state = false
	bp.phase = 0
	bp.pending = 0
}

// next sample value in the range -1.0 to 1.0. must be called with the
// critical section held.
func (bp *Beeper) next() float64 {
	if !bp.state {
		return 0
	}
	v := bp.volume
	if bp.phase >= 0.5 {
		v = -v
	}
	bp.phase += Frequency / float64(bp.sampleRate)
	bp.phase -= math.Floor(bp.phase)
	return v
}

// Advance the beeper by d of simulated time. If a recorder is attached the
// samples produced during that time are passed to it.
func (bp *Beeper) Advance(d scheduler.Time) {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	bp.pending += int64(d) * int64(bp.sampleRate)
	n := int(bp.pending / int64(scheduler.Second))
	bp.pending -= int64(n) * int64(scheduler.Second)

	if n == 0 {
		return
	}

	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(bp.next() * amplitude)
	}

	if bp.recorder != nil {
		bp.recorder.AddSamples(samples)
	}
}

// Stream implements the beep.Streamer interface. The samples reflect the
// current state of the beeper rather than simulated time.
func (bp *Beeper) Stream(samples [][2]float64) (n int, ok bool) {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	for i := range samples {
		v := bp.next()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err implements the beep.Streamer interface.
func (bp *Beeper) Err() error {
	return nil
}
