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

package wolfunit

import (
	"fmt"
	"strings"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/hardware/cpu"
	"github.com/cabinet-emu/cabinet/hardware/memory/addrmap"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/dcs"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/keys"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/serialpic"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/logger"
)

// Sentinal error returned by NewWolfUnit().
const BadROMSize = "wolfunit: program rom is %d bytes, expected at most %d"

// CPU is the main CPU of the board.
var CPU = cpu.Model{Name: cpu.TMS34010, Clock: 50000000}

// bit addresses of the areas of the memory map
const (
	vramStart     = 0x00000000
	vramEnd       = 0x003fffff
	mainRAMStart  = 0x01000000
	mainRAMEnd    = 0x013fffff
	cmosStart     = 0x01400000
	cmosEnd       = 0x0145ffff
	cmosEnStart   = 0x01480000
	cmosEnEnd     = 0x014fffff
	securityStart = 0x01600000
	securityEnd   = 0x0160001f
	soundStart    = 0x01680000
	soundEnd      = 0x0168001f
	ioStart       = 0x01800000
	ioEnd         = 0x0187ffff
	videoStart    = 0x01880000
	videoEnd      = 0x01bfffff
	gfxStart      = 0x02000000
	gfxEnd        = 0x06ffffff
	cpuIOStart    = 0xc0000000
	cpuIOEnd      = 0xc00001ff
	programStart  = 0xff800000
	programEnd    = 0xffffffff
)

// size of the program ROM in bytes
const programSize = (programEnd - programStart + 1) >> 3

// size of main RAM in words
const mainRAMSize = (mainRAMEnd - mainRAMStart + 1) >> 4

// Options for the board.
type Options struct {
	// fit the serial number security chip
	Security bool
}

// WolfUnit is a single Wolf-unit board.
type WolfUnit struct {
	env   *environment.Environment
	lines cpu.Lines
	sched *scheduler.Scheduler

	Variant Variant
	Options Options

	Bus *addrmap.Map

	MainRAM []uint16
	Program []uint8

	CMOS    *CMOS
	Shuffle Shuffle
	IOData  [8]uint16
	Inputs  *keys.Ports
	Sound   *dcs.Board

	// nil if the security chip is not fitted
	PIC *serialpic.PIC
}

// NewWolfUnit is the preferred method of initialisation for the WolfUnit
// type. The program argument is the contents of the program ROM region. A
// nil program is treated as a ROM of all zeros.
//
// CMOS is loaded from disk, if a CMOS file for the variant exists.
func NewWolfUnit(env *environment.Environment, variant Variant, options Options, lines cpu.Lines, sched *scheduler.Scheduler, program []uint8) (*WolfUnit, error) {
	if len(program) > programSize {
		return nil, curated.Errorf(BadROMSize, len(program), programSize)
	}

	w := &WolfUnit{
		env:     env,
		lines:   lines,
		sched:   sched,
		Variant: variant,
		Options: options,
		MainRAM: make([]uint16, mainRAMSize),
		Program: make([]uint8, programSize),
		CMOS:    newCMOS(env, variant.Name),
		Inputs:  newInputs(),
		Sound:   dcs.NewBoard(env),
	}
	copy(w.Program, program)

	if options.Security {
		w.PIC = serialpic.NewPIC(variant.SerialPrefix)
	}

	if env.Prefs.RandomState.Get().(bool) {
		for i := range w.MainRAM {
			w.MainRAM[i] = uint16(env.Random.NoRewind(0x10000))
		}
	}

	w.installMap()
	if variant.init != nil {
		variant.init(w)
	}

	w.Shuffle.Reset()
	w.CMOS.Load()

	return w, nil
}

func (w *WolfUnit) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s)\n", w.Variant, CPU))
	s.WriteString(fmt.Sprintf("%s\n", w.CMOS))
	s.WriteString(fmt.Sprintf("%s\n", &w.Shuffle))
	s.WriteString(fmt.Sprintf("io: %04x\n", w.IOData))
	s.WriteString(w.Sound.String())
	if w.PIC != nil {
		s.WriteString(fmt.Sprintf("\n%s", w.PIC))
	}
	return s.String()
}

// the handlers refer to the components through the WolfUnit instance so that
// the map does not need to be rebuilt when a snapshot is plumbed in
func (w *WolfUnit) installMap() {
	w.Bus = addrmap.NewMap(w.Variant.Name, 32, 4)
	w.Bus.SetPermission(w.env)

	// video and DMA hardware is not emulated
	w.Bus.Install(vramStart, vramEnd, "vram").Nop()
	w.Bus.Install(videoStart, videoEnd, "video control").Nop()
	w.Bus.Install(gfxStart, gfxEnd, "gfxrom").Nop()
	w.Bus.Install(cpuIOStart, cpuIOEnd, "tms34010 io").Nop()

	w.Bus.Install(mainRAMStart, mainRAMEnd, "main ram").RAM16(w.MainRAM)

	w.Bus.Install(cmosStart, cmosEnd, "cmos").
		R(func(offset uint32, _ uint16) uint16 {
			return w.CMOS.Read(offset)
		}).
		W(func(offset uint32, data uint16, mask uint16) {
			w.CMOS.Write(offset, data, mask)
		})
	w.Bus.Install(cmosEnStart, cmosEnEnd, "cmos enable").W(func(_ uint32, _ uint16, _ uint16) {
		w.CMOS.Enable()
	})

	w.Bus.Install(securityStart, securityEnd, "security").R(w.SecurityRead).W(w.SecurityWrite)
	w.Bus.Install(soundStart, soundEnd, "sound").R(w.SoundRead).W(w.SoundWrite)
	w.Bus.Install(ioStart, ioEnd, "io").R(w.IORead).W(w.IOWrite)

	w.Bus.Install(programStart, programEnd, "program").ROM16(w.Program)
}

// Reset the board. The sound board is pulsed through reset and the shuffle
// table is returned to its default state.
func (w *WolfUnit) Reset() {
	w.Sound.ResetLine(true)
	w.Sound.ResetLine(false)
	w.Shuffle.Reset()
	w.Inputs.Release()
	logger.Logf(w.env, "wolfunit", "reset %s", w.Variant.Name)
}

// Advance simulated time.
func (w *WolfUnit) Advance(d scheduler.Time) {
	w.sched.Advance(d)
}

// Shutdown saves the CMOS to disk if the NVRAMAutoSave preference is set and
// the CMOS has changed since it was loaded.
func (w *WolfUnit) Shutdown() error {
	if w.env.Prefs.NVRAMAutoSave.Get().(bool) && !w.CMOS.IsSaved() {
		w.CMOS.Save()
	}
	return nil
}
