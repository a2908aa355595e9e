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

package mephisto_test

import (
	"path/filepath"
	"testing"

	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/hardware/cpu"
	"github.com/cabinet-emu/cabinet/hardware/mephisto"
	"github.com/cabinet-emu/cabinet/hardware/preferences"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/test"
)

// one period of the NMI timer
var nmiPeriod = scheduler.FromHz(600)

type machine struct {
	*mephisto.Mephisto
	probe *cpu.Probe
	sched *scheduler.Scheduler
	env   *environment.Environment
}

func newMachine(t *testing.T, name string, rom []uint8, randomState bool) machine {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	sched := scheduler.NewScheduler()
	env, err := environment.NewEnvironment(environment.MainEmulation, sched, prefs, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	test.DemandSuccess(t, env.Prefs.RandomState.Set(randomState))

	v, err := mephisto.LookupVariant(name)
	test.DemandSuccess(t, err)

	probe := cpu.NewProbe(v.CPU)
	m, err := mephisto.NewMephisto(env, v, probe, sched, rom)
	test.DemandSuccess(t, err)

	return machine{Mephisto: m, probe: probe, sched: sched, env: env}
}

func TestVariants(t *testing.T) {
	artwork := map[string]int{
		"mm2":    1,
		"mm4":    2,
		"mm4tk":  5,
		"mm5tk":  5,
		"mm5":    3,
		"mm50":   3,
		"rebel5": 4,
	}

	for name, mm := range artwork {
		m := newMachine(t, name, nil, false)
		_, ok := m.Outputs.Get("MM")
		test.ExpectFailure(t, ok, name)

		m.Reset()
		v, ok := m.Outputs.Get("MM")
		test.ExpectSuccess(t, ok, name)
		test.ExpectEquality(t, v, mm, name)
	}

	_, err := mephisto.LookupVariant("mm6")
	test.ExpectFailure(t, err)

	v, err := mephisto.LookupVariant("MM4TK")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v.CPU.Clock, 18000000)
	test.ExpectEquality(t, v.Policy, mephisto.GatedPulse)

	v, _ = mephisto.LookupVariant("mm2")
	test.ExpectEquality(t, v.CPU.Clock, 3700000)
	test.ExpectEquality(t, v.Policy, mephisto.HeldLevel)
	test.ExpectEquality(t, v.Policy.Rate(), 450.0)

	v, _ = mephisto.LookupVariant("rebel5")
	test.ExpectEquality(t, v.Policy, mephisto.UnconditionalPulse)
	test.ExpectEquality(t, v.Policy.Rate(), 600.0)
}

func TestBadROM(t *testing.T) {
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	sched := scheduler.NewScheduler()
	env, err := environment.NewEnvironment(environment.MainEmulation, sched, prefs, nil)
	test.DemandSuccess(t, err)

	v, _ := mephisto.LookupVariant("mm4")
	_, err = mephisto.NewMephisto(env, v, cpu.NewProbe(v.CPU), sched, make([]uint8, 0x8000))
	test.ExpectFailure(t, err)
}

func TestGatedNMI(t *testing.T) {
	m := newMachine(t, "mm4", nil, false)
	m.Reset()

	// armed at reset so the first tick interrupts
	test.ExpectSuccess(t, m.Armed())
	m.Advance(nmiPeriod)
	test.ExpectEquality(t, m.probe.NMIPulses, 1)
	test.ExpectFailure(t, m.Armed())

	// two ticks without rearming
	m.Advance(nmiPeriod * 2)
	test.ExpectEquality(t, m.probe.NMIPulses, 1)

	// enable then tick produces exactly one pulse
	m.Bus.Write8(0x3800, 0x00)
	test.ExpectSuccess(t, m.Armed())
	m.Advance(nmiPeriod)
	test.ExpectEquality(t, m.probe.NMIPulses, 2)

	// arming more than once before a tick still only produces one pulse
	m.Bus.Write8(0x3800, 0x00)
	m.Bus.Write8(0x3800, 0xff)
	m.Advance(nmiPeriod * 3)
	test.ExpectEquality(t, m.probe.NMIPulses, 3)

	// no IRQ activity for this policy
	test.ExpectEquality(t, m.probe.IRQAsserts, 0)
}

func TestUnconditionalNMI(t *testing.T) {
	m := newMachine(t, "rebel5", nil, false)
	m.Reset()

	m.Advance(nmiPeriod * 10)
	test.ExpectEquality(t, m.probe.NMIPulses, 10)

	m.probe.Reset()
	m.Advance(nmiPeriod * 600)
	test.ExpectEquality(t, m.probe.NMIPulses, 600)
}

func TestHeldIRQ(t *testing.T) {
	m := newMachine(t, "mm2", nil, false)
	m.Reset()

	m.Advance(scheduler.FromHz(450))
	test.ExpectEquality(t, m.probe.IRQ, cpu.HoldLine)
	test.ExpectEquality(t, m.probe.IRQAsserts, 1)
	test.ExpectEquality(t, m.probe.NMIPulses, 0)

	// the line stays held until the CPU acknowledges it
	m.Advance(scheduler.FromHz(450))
	test.ExpectEquality(t, m.probe.IRQAsserts, 1)

	m.probe.AcknowledgeIRQ()
	test.ExpectEquality(t, m.probe.IRQ, cpu.ClearLine)
	m.Advance(scheduler.FromHz(450))
	test.ExpectEquality(t, m.probe.IRQAsserts, 2)
}

func TestBeeper(t *testing.T) {
	for _, name := range []string{"mm4", "rebel5", "mm2"} {
		m := newMachine(t, name, nil, false)
		m.Reset()

		var latch uint16
		switch name {
		case "mm4":
			latch = 0x3400
		case "rebel5":
			latch = 0x2000
		case "mm2":
			latch = 0x1000
		}

		// the beeper follows Q6 but only when the timer ticks
		m.Bus.Write8(latch+6, 0x80)
		test.ExpectFailure(t, m.Beeper.State(), name)
		m.Advance(scheduler.Second / 100)
		test.ExpectSuccess(t, m.Beeper.State(), name)

		m.Bus.Write8(latch+6, 0x00)
		m.Advance(scheduler.Second / 100)
		test.ExpectFailure(t, m.Beeper.State(), name)
	}
}

func TestLCD(t *testing.T) {
	m := newMachine(t, "mm4", nil, false)
	m.Reset()

	test.ExpectEquality(t, m.LCD.Counter(), 3)
	test.ExpectFailure(t, m.LCD.Blanked())

	for _, v := range []uint8{0x11, 0x22, 0x33, 0x44} {
		m.Bus.Write8(0x2000, v)
	}
	test.ExpectEquality(t, m.LCD.Digits, [4]uint8{0x44, 0x33, 0x22, 0x11})
	test.ExpectEquality(t, m.LCD.Counter(), 3)

	v, ok := m.Outputs.Get("digit3")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x11)

	// Q7 high then low leaves the display blanked
	m.Bus.Write8(0x3407, 0x80)
	test.ExpectFailure(t, m.LCD.Blanked())
	m.Bus.Write8(0x3407, 0x00)
	test.ExpectSuccess(t, m.LCD.Blanked())

	// writes while blanked do not change the digits but the counter still
	// moves
	m.Bus.Write8(0x2000, 0xff)
	m.Bus.Write8(0x2000, 0xff)
	test.ExpectEquality(t, m.LCD.Digits, [4]uint8{0x44, 0x33, 0x22, 0x11})
	test.ExpectEquality(t, m.LCD.Counter(), 1)

	// unblank and the next write lands on digit 1
	m.Bus.Write8(0x3407, 0x80)
	m.Bus.Write8(0x2000, 0x55)
	test.ExpectEquality(t, m.LCD.Digits, [4]uint8{0x44, 0x55, 0x22, 0x11})
	test.ExpectEquality(t, m.LCD.Counter(), 0)

	// reset returns the counter to the last digit
	m.Reset()
	test.ExpectEquality(t, m.LCD.Counter(), 3)
}

func TestMM2Blanking(t *testing.T) {
	m := newMachine(t, "mm2", nil, false)
	test.ExpectSuccess(t, m.LCD.Blanked())

	m.Bus.Write8(0x2800, 0x12)
	test.ExpectEquality(t, m.LCD.Digits, [4]uint8{})
	test.ExpectEquality(t, m.LCD.Counter(), 2)

	m.Bus.Write8(0x1007, 0x80)
	m.Bus.Write8(0x2800, 0x12)
	test.ExpectEquality(t, m.LCD.Digits[2], uint8(0x12))
}

func TestKeyboard(t *testing.T) {
	m := newMachine(t, "mm4", nil, false)
	m.Reset()

	test.ExpectEquality(t, m.Bus.Read8(0x2c00), uint8(0xff))

	test.DemandSuccess(t, m.Keys.Set("CLEAR", true))
	test.ExpectEquality(t, m.Bus.Read8(0x2c00), uint8(0x7f))
	test.ExpectEquality(t, m.Bus.Read8(0x2c01), uint8(0xff))

	// Q7 high selects the second group of keys
	m.Bus.Write8(0x3407, 0x80)
	test.ExpectEquality(t, m.Bus.Read8(0x2c00), uint8(0xff))
	test.DemandSuccess(t, m.Keys.Set("e 5", true))
	test.ExpectEquality(t, m.Bus.Read8(0x2c00), uint8(0x7f))

	test.DemandSuccess(t, m.Keys.Set("d 4", true))
	test.ExpectEquality(t, m.Bus.Read8(0x2c07), uint8(0x7f))
}

func TestRebel5Map(t *testing.T) {
	m := newMachine(t, "rebel5", nil, false)
	m.Reset()

	// select the a-file of the sensor board
	m.Bus.Write8(0x7000, 0xfe)

	// the keyboard takes precedence over the lower addresses of the board
	// input range
	test.ExpectEquality(t, m.Bus.Read8(0x3000), uint8(0xff))
	test.ExpectEquality(t, m.Bus.Read8(0x3008), uint8(0x3c))
	test.ExpectEquality(t, m.Bus.Read8(0x4000), uint8(0x3c))

	test.DemandSuccess(t, m.Keys.Set("POS", true))
	test.ExpectEquality(t, m.Bus.Read8(0x3001), uint8(0x7f))

	// LEDs on the sensor board
	m.Bus.Write8(0x6000, 0x01)
	v := m.Board.String()
	test.ExpectEquality(t, v[len(v)-9:], "*#######\n")
}

func TestStatusLEDs(t *testing.T) {
	m := newMachine(t, "mm4", nil, false)
	m.Reset()

	m.Bus.Write8(0x3400, 0x80)
	m.Bus.Write8(0x3405, 0x80)

	v, ok := m.Outputs.Get("led100")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 1)
	v, _ = m.Outputs.Get("led105")
	test.ExpectEquality(t, v, 1)
	_, ok = m.Outputs.Get("led101")
	test.ExpectFailure(t, ok)

	m.Bus.Write8(0x3400, 0x00)
	v, _ = m.Outputs.Get("led100")
	test.ExpectEquality(t, v, 0)
}

func TestMemory(t *testing.T) {
	rom := make([]uint8, 0x10000)
	rom[0x4000] = 0xaa
	rom[0x8000] = 0xbb
	rom[0xffff] = 0xcc

	m := newMachine(t, "mm4", rom, false)
	test.ExpectEquality(t, m.Bus.Read8(0x4000), uint8(0xaa))
	test.ExpectEquality(t, m.Bus.Read8(0x8000), uint8(0xbb))
	test.ExpectEquality(t, m.Bus.Read8(0xffff), uint8(0xcc))

	m.Bus.Write8(0x1fff, 0x42)
	test.ExpectEquality(t, m.RAM[0x1fff], uint8(0x42))

	// the mm2 has less RAM and no opening library
	m = newMachine(t, "mm2", rom, false)
	test.ExpectEquality(t, len(m.RAM), 0x1000)
	test.ExpectEquality(t, m.Bus.Read8(0x4000), uint8(0xaa))
}

func TestRandomState(t *testing.T) {
	m := newMachine(t, "mm4", nil, true)
	var nonZero bool
	for _, v := range m.RAM {
		if v != 0 {
			nonZero = true
			break
		}
	}
	test.ExpectSuccess(t, nonZero)

	m = newMachine(t, "mm4", nil, false)
	for _, v := range m.RAM {
		test.DemandEquality(t, v, uint8(0))
	}
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t, "mm4", nil, false)
	m.Reset()

	m.Bus.Write8(0x0010, 0x01)
	m.Bus.Write8(0x2000, 0x3f)
	m.Bus.Write8(0x3400, 0x80)
	s := m.Snapshot()

	m.Bus.Write8(0x0010, 0x02)
	m.Bus.Write8(0x2000, 0x06)
	m.Bus.Write8(0x3400, 0x00)
	m.Advance(nmiPeriod)
	test.ExpectFailure(t, m.Armed())

	m.Plumb(s)
	test.ExpectEquality(t, m.Bus.Read8(0x0010), uint8(0x01))
	test.ExpectEquality(t, m.LCD.Digits[3], uint8(0x3f))
	test.ExpectEquality(t, m.LCD.Counter(), 2)
	test.ExpectSuccess(t, m.Latch.Q(0))
	test.ExpectSuccess(t, m.Armed())

	// the restored machine is still connected to its outputs
	v, _ := m.Outputs.Get("led100")
	test.ExpectEquality(t, v, 1)
	m.Bus.Write8(0x3400, 0x00)
	v, _ = m.Outputs.Get("led100")
	test.ExpectEquality(t, v, 0)
	m.Bus.Write8(0x2000, 0x5b)
	v, _ = m.Outputs.Get("digit2")
	test.ExpectEquality(t, v, 0x5b)
}
