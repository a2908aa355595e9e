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

// Package beeper emulates the piezo speaker found on the Mephisto chess
// computers. The speaker is driven by a fixed frequency oscillator that is
// gated on and off by the machine.
//
// The beeper can be used as a beep.Streamer for live playback and can be
// given a Recorder, which will receive samples as simulated time passes.
package beeper
