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

package beeper_test

import (
	"testing"

	"github.com/cabinet-emu/cabinet/hardware/peripherals/beeper"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/test"
	"github.com/faiface/beep"
)

type recorder struct {
	samples []int16
}

func (r *recorder) AddSamples(samples []int16) {
	r.samples = append(r.samples, samples...)
}

func TestSilence(t *testing.T) {
	bp := beeper.NewBeeper(8000, 1.0)
	r := &recorder{}
	bp.SetRecorder(r)

	bp.Advance(scheduler.Second)
	test.DemandEquality(t, len(r.samples), 8000)
	for _, s := range r.samples {
		test.DemandEquality(t, s, int16(0))
	}
}

func TestSquareWave(t *testing.T) {
	bp := beeper.NewBeeper(13000, 1.0)
	r := &recorder{}
	bp.SetRecorder(r)

	bp.SetState(true)
	test.ExpectSuccess(t, bp.State())
	test.ExpectEquality(t, bp.String(), "beeper: on (3250Hz)")

	// four samples per cycle at a sample rate of 13000Hz
	bp.Advance(scheduler.Millisecond)
	test.DemandEquality(t, len(r.samples), 13)
	test.ExpectEquality(t, r.samples[0], int16(32767))
	test.ExpectEquality(t, r.samples[1], int16(32767))
	test.ExpectEquality(t, r.samples[2], int16(-32767))
	test.ExpectEquality(t, r.samples[3], int16(-32767))
	test.ExpectEquality(t, r.samples[4], int16(32767))

	bp.Reset()
	test.ExpectFailure(t, bp.State())
	test.ExpectEquality(t, bp.String(), "beeper: off")
}

func TestPendingTime(t *testing.T) {
	bp := beeper.NewBeeper(1000, 0.5)
	r := &recorder{}
	bp.SetRecorder(r)

	// less than one sample period produces no samples but the time is not
	// lost
	bp.Advance(600 * scheduler.Microsecond)
	test.ExpectEquality(t, len(r.samples), 0)
	bp.Advance(600 * scheduler.Microsecond)
	test.ExpectEquality(t, len(r.samples), 1)
}

func TestStreamer(t *testing.T) {
	var s beep.Streamer = beeper.NewBeeper(13000, 0.5)
	bp := s.(*beeper.Beeper)

	samples := make([][2]float64, 4)
	n, ok := s.Stream(samples)
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, samples[0][0], 0.0)

	bp.SetState(true)
	s.Stream(samples)
	test.ExpectEquality(t, samples[0][0], 0.5)
	test.ExpectEquality(t, samples[0][1], 0.5)
	test.ExpectEquality(t, samples[2][0], -0.5)
	test.ExpectSuccess(t, s.Err())
	test.ExpectEquality(t, bp.SampleRate(), beep.SampleRate(13000))
}
