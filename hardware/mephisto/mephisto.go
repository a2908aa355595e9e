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

package mephisto

import (
	"fmt"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/hardware/cpu"
	"github.com/cabinet-emu/cabinet/hardware/memory/addrmap"
	"github.com/cabinet-emu/cabinet/hardware/outputs"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/beeper"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/hc259"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/keys"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/sensorboard"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/logger"
)

// the size of the ROM region. the region covers the entire 65C02 address
// space and ROM ranges are taken from it at the same address
const romRegionSize = 0x10000

// Sentinal error returned by NewMephisto().
const BadROMSize = "mephisto: rom region is %d bytes, expected %d"

// latch outputs with special meaning. the remaining outputs drive the status
// LEDs
const (
	latchBeeper = 6
	latchBlank  = 7
)

// Mephisto is a single chess computer.
type Mephisto struct {
	env   *environment.Environment
	lines cpu.Lines
	sched *scheduler.Scheduler

	Variant Variant

	Bus *addrmap.Map

	RAM []uint8
	ROM []uint8

	Latch   *hc259.Latch
	LCD     *LCD
	Keys    *keys.Ports
	Board   *sensorboard.Board
	Beeper  *beeper.Beeper
	Outputs *outputs.Outputs

	// NMI has been armed by the program. only used by the GatedPulse policy
	allowNMI bool

	// the time the beeper was last brought up to date
	beeperSync scheduler.Time
}

// NewMephisto is the preferred method of initialisation for the Mephisto type.
// The rom argument is the contents of the ROM region, which must be 64K in
// size. A nil rom is treated as a region of zeros.
func NewMephisto(env *environment.Environment, variant Variant, lines cpu.Lines, sched *scheduler.Scheduler, rom []uint8) (*Mephisto, error) {
	if rom == nil {
		rom = make([]uint8, romRegionSize)
	}
	if len(rom) != romRegionSize {
		return nil, curated.Errorf(BadROMSize, len(rom), romRegionSize)
	}

	m := &Mephisto{
		env:     env,
		lines:   lines,
		sched:   sched,
		Variant: variant,
		ROM:     rom,
		Latch:   hc259.NewLatch(),
		LCD:     newLCD(variant.blank),
		Keys:    newKeyboard(),
		Board:   sensorboard.NewBoard(),
		Outputs: outputs.NewOutputs(),
	}

	m.Beeper = beeper.NewBeeper(env.Prefs.BeeperSampleRate.Get().(int), env.Prefs.BeeperVolume.Get().(float64))

	if variant.layout == layoutMM2 {
		m.RAM = make([]uint8, 0x1000)
	} else {
		m.RAM = make([]uint8, 0x2000)
	}
	if env.Prefs.RandomState.Get().(bool) {
		env.Random.Fill(m.RAM)
	}

	m.plumbOutputs()
	m.installMap()

	var timer string
	switch variant.Policy {
	case GatedPulse:
		timer = "nmi_timer"
	case UnconditionalPulse:
		timer = "nmi_timer_r5"
	case HeldLevel:
		timer = "irq_timer"
	}
	sched.Periodic(timer, variant.Policy.Rate(), m.tick)

	m.start()

	return m, nil
}

func (m *Mephisto) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", m.Variant, m.LCD, m.Latch, m.Beeper)
}

// plumbOutputs connects the latch and the LCD to the outputs registry
func (m *Mephisto) plumbOutputs() {
	for i := range latchBeeper {
		name := fmt.Sprintf("led%d", 100+i)
		m.Latch.OnChange(i, func(state bool) {
			m.Outputs.SetBool(name, state)
		})
	}
	m.Latch.OnChange(latchBlank, func(state bool) {
		m.LCD.setLine(state)
	})
	m.LCD.onDigit = func(n int, v uint8) {
		m.Outputs.Set(fmt.Sprintf("digit%d", n), int(v))
	}
}

// the handlers refer to the components through the Mephisto instance so that
// the map does not need to be rebuilt when a snapshot is plumbed in
func (m *Mephisto) installMap() {
	m.Bus = addrmap.NewMap(m.Variant.Name, 16, 0)
	m.Bus.SetPermission(m.env)

	lcd := func(_ uint32, data uint16, _ uint16) {
		m.LCD.Write(uint8(data))
	}
	latch := func(offset uint32, data uint16, _ uint16) {
		m.Latch.WriteD7(offset, uint8(data))
	}
	led := func(offset uint32, data uint16, _ uint16) {
		m.Board.LEDWrite(offset, uint8(data))
	}
	mux := func(_ uint32, data uint16, _ uint16) {
		m.Board.MuxWrite(uint8(data))
	}
	input := func(_ uint32, _ uint16) uint16 {
		return uint16(m.Board.InputRead())
	}

	switch m.Variant.layout {
	case layoutMephisto:
		m.Bus.Install(0x0000, 0x1fff, "ram").RAM(m.RAM)
		m.Bus.Install(0x2000, 0x2000, "lcd").W(lcd)
		m.Bus.Install(0x2400, 0x2407, "board led").W(led)
		m.Bus.Install(0x2800, 0x2800, "board mux").W(mux)
		m.Bus.Install(0x2c00, 0x2c07, "keys").R(m.readKeys)
		m.Bus.Install(0x3000, 0x3000, "board input").R(input)
		m.Bus.Install(0x3400, 0x3407, "outlatch").W(latch)
		m.Bus.Install(0x3800, 0x3800, "nmi enable").W(m.enableNMI)
		m.Bus.Install(0x4000, 0x7fff, "opening library").ROM(m.ROM[0x4000:0x8000])
		m.Bus.Install(0x8000, 0xffff, "rom").ROM(m.ROM[0x8000:])

	case layoutRebel5:
		m.Bus.Install(0x0000, 0x1fff, "ram").RAM(m.RAM)
		m.Bus.Install(0x2000, 0x2007, "outlatch").W(latch)
		m.Bus.Install(0x3000, 0x4000, "board input").R(input)
		m.Bus.Install(0x3000, 0x3007, "keys").R(m.readKeys)
		m.Bus.Install(0x5000, 0x5000, "lcd").W(lcd)
		m.Bus.Install(0x6000, 0x6000, "board led").W(led)
		m.Bus.Install(0x7000, 0x7000, "board mux").W(mux)
		m.Bus.Install(0x8000, 0xffff, "rom").ROM(m.ROM[0x8000:])

	case layoutMM2:
		m.Bus.Install(0x0000, 0x0fff, "ram").RAM(m.RAM)
		m.Bus.Install(0x1000, 0x1007, "outlatch").W(latch)
		m.Bus.Install(0x1800, 0x1807, "keys").R(m.readKeys)
		m.Bus.Install(0x2000, 0x2000, "board input").R(input)
		m.Bus.Install(0x2800, 0x2800, "lcd").W(lcd)
		m.Bus.Install(0x3000, 0x3000, "board led").W(led)
		m.Bus.Install(0x3800, 0x3800, "board mux").W(mux)
		m.Bus.Install(0x4000, 0x7fff, "opening library").ROM(m.ROM[0x4000:0x8000])
		m.Bus.Install(0x8000, 0xffff, "rom").ROM(m.ROM[0x8000:])
	}
}

// start is called once when the machine is created
func (m *Mephisto) start() {
	m.LCD.reset()
	if m.Variant.Policy == GatedPulse {
		m.allowNMI = true
	}
}

// Reset the machine. The shift register is returned to the first digit, NMI
// is rearmed and the artwork selector is published.
func (m *Mephisto) Reset() {
	m.Latch.Reset()
	m.Board.Reset()
	m.Beeper.Reset()
	m.Keys.Release()

	m.LCD.reset()
	m.allowNMI = true
	m.beeperSync = m.sched.Now()

	m.Outputs.Set("MM", m.Variant.Artwork)
	logger.Logf(m.env, "mephisto", "reset %s", m.Variant.Name)
}

// Armed returns true if the next tick of the NMI timer will interrupt the
// CPU. Only meaningful for the GatedPulse policy.
func (m *Mephisto) Armed() bool {
	return m.allowNMI
}

// enableNMI is the write handler for the NMI enable address. any write arms
// the interrupt
func (m *Mephisto) enableNMI(_ uint32, _ uint16, _ uint16) {
	m.allowNMI = true
}

// readKeys is the read handler for the keyboard. latch output Q7 selects
// which group of keys is read
func (m *Mephisto) readKeys(offset uint32, _ uint16) uint16 {
	group := 0
	if m.Latch.Q(latchBlank) {
		group = 1
	}
	data := uint8(m.Keys.Read(portName(group, int(offset&7))))
	logger.Logf(m.env, "keyboard", "port = %d-%d data = %02x", group, offset, data)
	return uint16(data | 0x7f)
}

// syncBeeper brings the audio produced by the beeper up to the current time
func (m *Mephisto) syncBeeper() {
	now := m.sched.Now()
	m.Beeper.Advance(now - m.beeperSync)
	m.beeperSync = now
}

// tick is the callback for the periodic timer. the beeper is updated on every
// tick regardless of the interrupt policy
func (m *Mephisto) tick() {
	m.Variant.Policy.interrupt(m.lines, &m.allowNMI)
	m.syncBeeper()
	m.Beeper.SetState(m.Latch.Q(latchBeeper))
}

// Advance simulated time. Timers will fire as appropriate.
func (m *Mephisto) Advance(d scheduler.Time) {
	m.sched.Advance(d)
	m.syncBeeper()
}
