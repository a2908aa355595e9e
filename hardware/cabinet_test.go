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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/govern"
	"github.com/cabinet-emu/cabinet/hardware"
	"github.com/cabinet-emu/cabinet/hardware/memory/addrmap"
	"github.com/cabinet-emu/cabinet/hardware/preferences"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/romset"
	"github.com/cabinet-emu/cabinet/test"
)

func newCabinet(t *testing.T, name string, options hardware.Options) *hardware.Cabinet {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	sched := scheduler.NewScheduler()
	env, err := environment.NewEnvironment(environment.MainEmulation, sched, prefs, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	set, err := romset.Lookup(name)
	test.DemandSuccess(t, err)

	cab, err := hardware.NewCabinet(env, sched, &romset.Image{Set: set, Regions: map[string][]uint8{}}, options)
	test.DemandSuccess(t, err)
	cab.Reset()

	return cab
}

func TestDrivers(t *testing.T) {
	t.Chdir(t.TempDir())

	cab := newCabinet(t, "mm4", hardware.Options{})
	test.ExpectSuccess(t, cab.Mephisto != nil)
	test.ExpectSuccess(t, cab.WolfUnit == nil)
	test.ExpectEquality(t, cab.Name(), "mm4")
	test.ExpectEquality(t, cab.Probe.Model.Name, "M65C02")

	cab = newCabinet(t, "umk3", hardware.Options{Security: true})
	test.ExpectSuccess(t, cab.Mephisto == nil)
	test.ExpectSuccess(t, cab.WolfUnit != nil)
	test.ExpectSuccess(t, cab.WolfUnit.PIC != nil)
	test.ExpectEquality(t, cab.Probe.Model.Name, "TMS34010")

	// the piece command is only for chess computers
	test.ExpectFailure(t, cab.Piece("e2", true))
	test.ExpectSuccess(t, cab.Key("coin 1", true))
	test.ExpectFailure(t, cab.Key("no such key", true))
}

func TestUnsupportedDriver(t *testing.T) {
	sched := scheduler.NewScheduler()
	env, err := environment.NewEnvironment(environment.MainEmulation, sched, nil, nil)
	test.DemandSuccess(t, err)

	set := &romset.Set{Name: "pong", Driver: "discrete"}
	_, err = hardware.NewCabinet(env, sched, &romset.Image{Set: set}, hardware.Options{})
	test.ExpectFailure(t, err)
}

func TestRunFor(t *testing.T) {
	t.Chdir(t.TempDir())

	cab := newCabinet(t, "rebel5", hardware.Options{})
	test.DemandSuccess(t, cab.RunFor(scheduler.FromHz(600)*600, nil))
	test.ExpectEquality(t, cab.Probe.NMIPulses, 600)
	test.ExpectEquality(t, cab.Sched.Now(), scheduler.FromHz(600)*600)

	// continue check ends the emulation early
	cab = newCabinet(t, "rebel5", hardware.Options{})
	err := cab.RunFor(scheduler.Second, func(elapsed scheduler.Time) (govern.State, error) {
		if elapsed >= 10*scheduler.Millisecond {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cab.Sched.Now(), 10*scheduler.Millisecond)
	test.ExpectEquality(t, cab.Probe.NMIPulses, 5)

	// the NMI of gated machines must be rearmed by the program
	cab = newCabinet(t, "mm5", hardware.Options{})
	test.DemandSuccess(t, cab.RunFor(scheduler.Second, nil))
	test.ExpectEquality(t, cab.Probe.NMIPulses, 1)
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())

	cab := newCabinet(t, "mm2", hardware.Options{})

	var n int
	err := cab.Run(func() (govern.State, error) {
		n++
		if n == 100 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cab.Sched.Now(), 100*hardware.Timeslice)
	test.ExpectEquality(t, cab.Probe.IRQAsserts, 1)

	// stepping is not a state that Run() supports
	err = cab.Run(func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)
}

func TestRewind(t *testing.T) {
	t.Chdir(t.TempDir())

	cab := newCabinet(t, "mm4", hardware.Options{})
	test.ExpectEquality(t, cab.Rewind.Len(), 1)

	cab.Mem.Write8(0x0100, 0x11)
	cab.Rewind.Record()
	cab.Mem.Write8(0x0100, 0x22)
	cab.Rewind.Record()
	cab.Mem.Write8(0x0100, 0x33)
	test.ExpectEquality(t, cab.Rewind.Len(), 3)

	test.ExpectEquality(t, cab.Rewind.Back(1), 1)
	test.ExpectEquality(t, cab.Mem.Read8(0x0100), uint8(0x22))
	test.ExpectEquality(t, cab.Rewind.Back(2), 2)
	test.ExpectEquality(t, cab.Mem.Read8(0x0100), uint8(0x11))
	test.ExpectEquality(t, cab.Rewind.Len(), 2)

	// the earliest state is the reset state
	test.ExpectEquality(t, cab.Rewind.Back(10), 2)
	test.ExpectEquality(t, cab.Rewind.Len(), 1)
	test.ExpectEquality(t, cab.Rewind.Back(0), 0)

	for i := range 150 {
		cab.Mem.Write8(0x0100, uint8(i))
		cab.Rewind.Record()
	}
	test.ExpectEquality(t, cab.Rewind.Len(), 100)
}

func TestSnapshot(t *testing.T) {
	t.Chdir(t.TempDir())

	cab := newCabinet(t, "wwfmania", hardware.Options{})
	cab.Mem.Write(0x01800000, 1, addrmap.MaskWord)
	cab.Probe.AdjustCycles(-5)
	s := cab.Snapshot()

	cab.Mem.Write(0x01800000, 0, addrmap.MaskWord)
	cab.Probe.AdjustCycles(-5)
	cab.Plumb(s)
	test.ExpectEquality(t, cab.WolfUnit.Shuffle.Physical(4), uint8(0))
	test.ExpectEquality(t, cab.Probe.CycleAdjust, -5)
}

func TestShutdown(t *testing.T) {
	t.Chdir(t.TempDir())

	cab := newCabinet(t, "mk3", hardware.Options{})
	cab.WolfUnit.CMOS.Enable()
	cab.WolfUnit.CMOS.Write(0, 0x1234, 0xffff)
	test.ExpectSuccess(t, cab.Shutdown())
	test.ExpectSuccess(t, cab.WolfUnit.CMOS.IsSaved())

	cab = newCabinet(t, "mm4", hardware.Options{})
	test.ExpectSuccess(t, cab.Shutdown())
}
