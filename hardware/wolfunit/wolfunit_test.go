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

package wolfunit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/hardware/cpu"
	"github.com/cabinet-emu/cabinet/hardware/memory/addrmap"
	"github.com/cabinet-emu/cabinet/hardware/preferences"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/hardware/wolfunit"
	"github.com/cabinet-emu/cabinet/notifications"
	"github.com/cabinet-emu/cabinet/test"
)

// bit addresses used by the tests
const (
	cmos       = 0x01400000
	cmosEnable = 0x01480000
	security   = 0x01600000
	sound      = 0x01680000
	io         = 0x01800000
)

// collects notices raised by the machine
type notices struct {
	list []notifications.Notice
}

func (n *notices) Notify(notice notifications.Notice) error {
	n.list = append(n.list, notice)
	return nil
}

type machine struct {
	*wolfunit.WolfUnit
	probe   *cpu.Probe
	notices *notices
}

// newMachine creates a new machine. the working directory of the test is
// changed so that CMOS files are kept in a temporary directory
func newMachine(t *testing.T, name string, options wolfunit.Options) machine {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	n := &notices{}
	sched := scheduler.NewScheduler()
	env, err := environment.NewEnvironment(environment.MainEmulation, sched, prefs, n)
	test.DemandSuccess(t, err)
	env.Normalise()

	v, err := wolfunit.LookupVariant(name)
	test.DemandSuccess(t, err)

	probe := cpu.NewProbe(wolfunit.CPU)
	w, err := wolfunit.NewWolfUnit(env, v, options, probe, sched, nil)
	test.DemandSuccess(t, err)
	w.Reset()

	return machine{WolfUnit: w, probe: probe, notices: n}
}

// the bit address of a word offset from a base address
func word(base uint32, offset uint32) uint32 {
	return base + offset<<4
}

func TestCMOS(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "mk3", wolfunit.Options{})

	// write without enable is rejected
	m.Bus.Write(word(cmos, 0x10), 0x1234, addrmap.MaskWord)
	test.ExpectEquality(t, m.Bus.Read(word(cmos, 0x10), addrmap.MaskWord), uint16(0x0000))
	test.DemandEquality(t, len(m.notices.list), 1)
	test.ExpectEquality(t, m.notices.list[0], notifications.NotifyBadCMOSWrite)

	// enable and write
	m.Bus.Write(cmosEnable, 0, addrmap.MaskWord)
	test.ExpectSuccess(t, m.CMOS.Armed())
	m.Bus.Write(word(cmos, 0x10), 0x1234, addrmap.MaskWord)
	test.ExpectFailure(t, m.CMOS.Armed())
	test.ExpectEquality(t, m.Bus.Read(word(cmos, 0x10), addrmap.MaskWord), uint16(0x1234))

	// a second write is rejected
	m.Bus.Write(word(cmos, 0x10), 0x5678, addrmap.MaskWord)
	test.ExpectEquality(t, m.Bus.Read(word(cmos, 0x10), addrmap.MaskWord), uint16(0x1234))
	test.ExpectEquality(t, len(m.notices.list), 2)

	// masked write merges with the existing value
	m.Bus.Write(word(cmosEnable, 0x100), 0, addrmap.MaskWord)
	m.Bus.Write(word(cmos, 0x10), 0xffff, addrmap.MaskByte)
	test.ExpectEquality(t, m.CMOS.Read(0x10), uint16(0x12ff))

	// offsets wrap at the size of the CMOS
	test.ExpectEquality(t, m.CMOS.Read(wolfunit.CMOSSize+0x10), uint16(0x12ff))
	test.ExpectEquality(t, m.Bus.Read(word(cmos, wolfunit.CMOSSize+0x10), addrmap.MaskWord), uint16(0x12ff))
}

func TestCMOSProperty(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "mk3", wolfunit.Options{})

	for o := uint32(0); o < wolfunit.CMOSSize; o += 0x111 {
		pre := m.CMOS.Read(o)
		m.CMOS.Write(o, 0xa5a5, 0xffff)
		test.ExpectEquality(t, m.CMOS.Read(o), pre, o)

		m.CMOS.Enable()
		m.CMOS.Write(o, uint16(o), 0xffff)
		test.ExpectEquality(t, m.CMOS.Read(o), uint16(o), o)

		m.CMOS.Write(o, 0xa5a5, 0xffff)
		test.ExpectEquality(t, m.CMOS.Read(o), uint16(o), o)
	}
}

func TestNVRAM(t *testing.T) {
	t.Chdir(t.TempDir())

	m := newMachine(t, "umk3", wolfunit.Options{})
	test.ExpectSuccess(t, m.CMOS.IsSaved())
	m.CMOS.Enable()
	m.CMOS.Write(0x0042, 0xbeef, 0xffff)
	test.ExpectFailure(t, m.CMOS.IsSaved())
	test.DemandSuccess(t, m.Shutdown())
	test.ExpectSuccess(t, m.CMOS.IsSaved())
	test.ExpectEquality(t, m.notices.list[len(m.notices.list)-1], notifications.NotifyNVRAMSaved)

	fi, err := os.Stat(filepath.Join(".cabinet", "nvram", "umk3.cmos"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fi.Size(), int64(wolfunit.CMOSSize*2))

	// a new machine of the same variant loads the saved CMOS
	m = newMachine(t, "umk3", wolfunit.Options{})
	test.ExpectEquality(t, m.CMOS.Read(0x0042), uint16(0xbeef))
	test.DemandEquality(t, len(m.notices.list), 1)
	test.ExpectEquality(t, m.notices.list[0], notifications.NotifyNVRAMLoaded)

	// but a different variant does not
	m = newMachine(t, "umk3r11", wolfunit.Options{})
	test.ExpectEquality(t, m.CMOS.Read(0x0042), uint16(0x0000))
}

func TestShuffleTable(t *testing.T) {
	var s wolfunit.Shuffle
	s.Reset()
	for i := range uint32(wolfunit.ShuffleSize) {
		test.ExpectEquality(t, s.Physical(i), uint8(i%8), i)
	}

	s.Apply(1)
	for logical, physical := range map[uint32]uint8{4: 0, 8: 1, 1: 2, 9: 3, 2: 4} {
		test.ExpectEquality(t, s.Physical(logical), physical, logical)
	}
	for _, logical := range []uint32{0, 3, 5, 6, 7, 10, 11, 12, 13, 14, 15} {
		test.ExpectEquality(t, s.Physical(logical), uint8(logical%8), logical)
	}

	// applying a second profile without a reset keeps the entries the second
	// profile doesn't mention
	s.Apply(2)
	test.ExpectEquality(t, s.Physical(9), uint8(3))
	test.ExpectEquality(t, s.Physical(8), uint8(0))

	// unknown profiles change nothing
	before := s
	s.Apply(0)
	s.Apply(5)
	s.Apply(-1)
	test.ExpectEquality(t, s, before)

	// logical offsets wrap
	test.ExpectEquality(t, s.Physical(16+8), s.Physical(8))
}

func TestProfiles(t *testing.T) {
	expected := map[int]map[uint32]uint8{
		2: {8: 0, 2: 1, 4: 2, 6: 3, 1: 4},
		3: {1: 0, 8: 1, 2: 2, 10: 3, 5: 4},
		4: {2: 0, 4: 1, 1: 2, 7: 3, 8: 4},
	}
	for id, deltas := range expected {
		var s wolfunit.Shuffle
		s.Reset()
		s.Apply(id)
		for logical, physical := range deltas {
			test.ExpectEquality(t, s.Physical(logical), physical, id, logical)
		}
	}
}

func TestIORead(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "mk3", wolfunit.Options{})

	test.DemandSuccess(t, m.Inputs.Set("Coin 1", true))
	test.DemandSuccess(t, m.Inputs.Set("P1 Up", true))

	test.ExpectEquality(t, m.Bus.Read(word(io, 0), addrmap.MaskWord), uint16(0xfffe))
	test.ExpectEquality(t, m.Bus.Read(word(io, 1), addrmap.MaskWord), uint16(0xfffe))
	test.ExpectEquality(t, m.Bus.Read(word(io, 2), addrmap.MaskWord), uint16(0xffff))

	// logical 8 and 9 mirror 0 and 1
	test.ExpectEquality(t, m.Bus.Read(word(io, 8), addrmap.MaskWord), uint16(0xfffe))
	test.ExpectEquality(t, m.Bus.Read(word(io, 9), addrmap.MaskWord), uint16(0xfffe))

	// status word with no security chip fitted
	test.ExpectEquality(t, m.Bus.Read(word(io, 4), addrmap.MaskWord), uint16(0x0c00))

	// lines 5 to 7 are not connected
	test.ExpectEquality(t, m.Bus.Read(word(io, 5), addrmap.MaskWord), uint16(0xffff))
	test.ExpectEquality(t, m.Bus.Read(word(io, 15), addrmap.MaskWord), uint16(0xffff))

	// the I/O range is repeated every sixteen words
	test.ExpectEquality(t, m.Bus.Read(word(io, 16), addrmap.MaskWord), uint16(0xfffe))
}

func TestIOReadSecurity(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "mk3", wolfunit.Options{Security: true})

	// security chip held in reset until bit 5 of the control register is set
	m.Bus.Write(word(io, 1), 0x0000, addrmap.MaskWord)
	test.ExpectEquality(t, m.Bus.Read(word(io, 4), addrmap.MaskWord), uint16(0x0c00))
	m.Bus.Write(word(io, 1), 0x0020, addrmap.MaskWord)
	test.ExpectEquality(t, m.Bus.Read(word(io, 4), addrmap.MaskWord), uint16(0x1c00))
}

func TestIOWrite(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "mk3", wolfunit.Options{Security: true})

	m.Bus.Write(word(io, 1), 0x0030, addrmap.MaskWord)
	test.ExpectSuccess(t, m.Sound.InReset())
	test.ExpectEquality(t, m.IOData[1], uint16(0x0030))

	// a write to the upper byte is merged with the existing lower byte
	m.Bus.Write(word(io, 1), 0xff00, addrmap.MaskHigh)
	test.ExpectEquality(t, m.IOData[1], uint16(0xff30))
	test.ExpectSuccess(t, m.Sound.InReset())

	m.Bus.Write(word(io, 1), 0x0000, addrmap.MaskByte)
	test.ExpectFailure(t, m.Sound.InReset())
	test.ExpectEquality(t, m.IOData[1], uint16(0xff00))
	test.ExpectEquality(t, m.PIC.Status(), uint8(0))

	// writes are repeated every eight words. offset 9 is the control register
	m.Bus.Write(word(io, 9), 0x0010, addrmap.MaskWord)
	test.ExpectSuccess(t, m.Sound.InReset())

	// the watchdog and unknown registers still store the value written
	m.Bus.Write(word(io, 3), 0x1234, addrmap.MaskWord)
	test.ExpectEquality(t, m.IOData[3], uint16(0x1234))
	m.Bus.Write(word(io, 6), 0x5678, addrmap.MaskWord)
	test.ExpectEquality(t, m.IOData[6], uint16(0x5678))
}

func TestSecurity(t *testing.T) {
	t.Chdir(t.TempDir())

	m := newMachine(t, "mk3", wolfunit.Options{})
	test.ExpectEquality(t, m.Bus.Read(security, addrmap.MaskWord), uint16(0))
	m.Bus.Write(security, 0x0003, addrmap.MaskWord)

	m = newMachine(t, "mk3", wolfunit.Options{Security: true})
	m.Bus.Write(word(io, 1), 0x0020, addrmap.MaskWord)

	// serial number 528123456
	test.ExpectEquality(t, m.Bus.Read(security, addrmap.MaskWord), uint16(5))

	// writes to the second word or to the upper byte only are not passed on
	m.Bus.Write(word(security, 1), 0x0006, addrmap.MaskWord)
	m.Bus.Write(security, 0x0600, addrmap.MaskHigh)
	test.ExpectEquality(t, m.Bus.Read(security, addrmap.MaskWord), uint16(2))

	m.Bus.Write(security, 0x0006, addrmap.MaskByte)
	test.ExpectEquality(t, m.Bus.Read(security, addrmap.MaskWord), uint16(4))
}

func TestSound(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "mk3", wolfunit.Options{})

	m.Bus.Write(sound, 0x1234, addrmap.MaskWord)
	test.DemandEquality(t, len(m.Sound.Commands), 1)
	test.ExpectEquality(t, m.Sound.Commands[0], uint8(0x34))

	m.Bus.Write(word(sound, 1), 0x0056, addrmap.MaskWord)
	m.Bus.Write(sound, 0x5600, addrmap.MaskHigh)
	test.ExpectEquality(t, len(m.Sound.Commands), 1)

	m.Sound.Respond(0x7f)
	test.ExpectEquality(t, m.SoundStateRead(), uint16(0x0000))
	test.ExpectEquality(t, m.Bus.Read(sound, addrmap.MaskWord), uint16(0x007f))
	test.ExpectEquality(t, m.SoundStateRead(), uint16(0x0400))
}

func TestPaletteCompensation(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, name := range []string{"umk3", "umk3r11"} {
		m := newMachine(t, name, wolfunit.Options{})
		m.Bus.Write(0x0106a060, 0x1111, addrmap.MaskWord)
		m.Bus.Write(0x0106a090, 0x2222, addrmap.MaskWord)
		test.ExpectEquality(t, m.probe.CycleAdjust, -200, name)
		test.ExpectEquality(t, m.MainRAM[0x6a06], uint16(0x1111), name)
		test.ExpectEquality(t, m.MainRAM[0x6a09], uint16(0x2222), name)
		test.ExpectEquality(t, m.Bus.Read(0x0106a090, addrmap.MaskWord), uint16(0x2222), name)

		// outside the range there is no penalty
		m.Bus.Write(0x0106a0a0, 0x3333, addrmap.MaskWord)
		test.ExpectEquality(t, m.probe.CycleAdjust, -200, name)
	}

	for _, name := range []string{"mk3", "wwfmania", "openice", "nbahangt", "rmpgwt"} {
		m := newMachine(t, name, wolfunit.Options{})
		m.Bus.Write(0x0106a060, 0x1111, addrmap.MaskWord)
		test.ExpectEquality(t, m.probe.CycleAdjust, 0, name)
		test.ExpectEquality(t, m.MainRAM[0x6a06], uint16(0x1111), name)
	}
}

func TestWWFManiaShuffle(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "wwfmania", wolfunit.Options{})

	test.DemandSuccess(t, m.Inputs.Set("Coin 1", true))

	// profile 1 moves IN1 to logical offset 8
	m.Bus.Write(io, 1, addrmap.MaskWord)
	test.ExpectEquality(t, m.Bus.Read(word(io, 8), addrmap.MaskWord), uint16(0xfffe))
	test.ExpectEquality(t, m.Bus.Read(word(io, 2), addrmap.MaskWord), uint16(0x0c00))

	// selecting a new profile starts from the default table. profile 2 does
	// not mention logical offset 9, which reverts to IN1
	m.Bus.Write(io, 2, addrmap.MaskWord)
	test.ExpectEquality(t, m.Shuffle.Physical(9), uint8(1))
	test.ExpectEquality(t, m.Shuffle.Physical(2), uint8(1))

	// profile 0 restores the default table
	m.Bus.Write(io, 0, addrmap.MaskWord)
	for i := range uint32(wolfunit.ShuffleSize) {
		test.ExpectEquality(t, m.Shuffle.Physical(i), uint8(i%8), i)
	}

	// I/O writes to offset 0 are not stored on wwfmania
	test.ExpectEquality(t, m.IOData[0], uint16(0))

	// other games treat the address as an ordinary I/O write
	m = newMachine(t, "mk3", wolfunit.Options{})
	m.Bus.Write(io, 1, addrmap.MaskWord)
	test.ExpectEquality(t, m.IOData[0], uint16(1))
	test.ExpectEquality(t, m.Shuffle.Physical(4), uint8(4))
}

func TestReset(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "wwfmania", wolfunit.Options{})
	test.ExpectEquality(t, m.Sound.Resets, 1)

	m.Bus.Write(io, 3, addrmap.MaskWord)
	test.ExpectEquality(t, m.Shuffle.Physical(1), uint8(0))

	m.Reset()
	test.ExpectEquality(t, m.Sound.Resets, 2)
	test.ExpectFailure(t, m.Sound.InReset())
	test.ExpectEquality(t, m.Shuffle.Physical(1), uint8(1))
}

func TestSnapshot(t *testing.T) {
	t.Chdir(t.TempDir())
	m := newMachine(t, "wwfmania", wolfunit.Options{Security: true})

	m.CMOS.Enable()
	m.CMOS.Write(1, 0x1111, 0xffff)
	m.Bus.Write(io, 4, addrmap.MaskWord)
	m.Bus.Write(word(0x01000000, 5), 0x5555, addrmap.MaskWord)
	s := m.Snapshot()

	m.CMOS.Enable()
	m.CMOS.Write(1, 0x2222, 0xffff)
	m.Bus.Write(io, 0, addrmap.MaskWord)
	m.Bus.Write(word(0x01000000, 5), 0x6666, addrmap.MaskWord)

	m.Plumb(s)
	test.ExpectEquality(t, m.CMOS.Read(1), uint16(0x1111))
	test.ExpectEquality(t, m.Shuffle.Physical(2), uint8(0))
	test.ExpectEquality(t, m.Bus.Read(word(0x01000000, 5), addrmap.MaskWord), uint16(0x5555))
	test.ExpectSuccess(t, m.PIC != nil)

	// the plumbed state is independent of the snapshot
	m.CMOS.Enable()
	m.Bus.Write(word(cmos, 1), 0x3333, addrmap.MaskWord)
	test.ExpectEquality(t, s.CMOS.Read(1), uint16(0x1111))
}

func TestVariants(t *testing.T) {
	for _, name := range []string{"mk3", "mk3r20", "mk3r10", "umk3", "umk3r11", "wwfmania", "openice", "nbahangt", "rmpgwt"} {
		v, err := wolfunit.LookupVariant(name)
		test.ExpectSuccess(t, err, name)
		test.ExpectEquality(t, v.Name, name)
	}
	_, err := wolfunit.LookupVariant("mk2")
	test.ExpectFailure(t, err)
}
