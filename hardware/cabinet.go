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

package hardware

import (
	"fmt"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/hardware/cpu"
	"github.com/cabinet-emu/cabinet/hardware/memory/addrmap"
	"github.com/cabinet-emu/cabinet/hardware/mephisto"
	"github.com/cabinet-emu/cabinet/hardware/peripherals/sensorboard"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/hardware/wolfunit"
	"github.com/cabinet-emu/cabinet/romset"
)

// Sentinal errors returned by the Cabinet type.
const (
	UnsupportedDriver = "hardware: unsupported driver: %s"
	NoSensorBoard     = "hardware: %s has no sensor board"
)

// Names of the drivers used by ROM sets.
const (
	DriverMephisto = "mephisto"
	DriverWolfUnit = "wolfunit"
)

// Driver is implemented by every board.
type Driver interface {
	String() string
	Reset()
	Advance(d scheduler.Time)
}

// Options that affect how the board is built.
type Options struct {
	// fit the security chip to Wolf-unit boards
	Security bool
}

// Cabinet is the main container for the emulated board.
type Cabinet struct {
	Env   *environment.Environment
	Sched *scheduler.Scheduler
	Image *romset.Image

	// records activity on the CPU interrupt lines
	Probe *cpu.Probe

	// the memory map of the board
	Mem *addrmap.Map

	Driver Driver

	// only one of these will be non-nil. the same instance as Driver
	Mephisto *mephisto.Mephisto
	WolfUnit *wolfunit.WolfUnit

	Rewind *Rewind
}

// NewCabinet creates a new cabinet for the loaded ROM set. The scheduler
// should be the one used as the clock by the environment.
func NewCabinet(env *environment.Environment, sched *scheduler.Scheduler, img *romset.Image, options Options) (*Cabinet, error) {
	cab := &Cabinet{
		Env:   env,
		Sched: sched,
		Image: img,
	}

	switch img.Set.Driver {
	case DriverMephisto:
		v, err := mephisto.LookupVariant(img.Set.Name)
		if err != nil {
			return nil, err
		}
		cab.Probe = cpu.NewProbe(v.CPU)
		cab.Mephisto, err = mephisto.NewMephisto(env, v, cab.Probe, sched, img.Regions[romset.MephistoCPU])
		if err != nil {
			return nil, err
		}
		cab.Mem = cab.Mephisto.Bus
		cab.Driver = cab.Mephisto

	case DriverWolfUnit:
		v, err := wolfunit.LookupVariant(img.Set.Name)
		if err != nil {
			return nil, err
		}
		cab.Probe = cpu.NewProbe(wolfunit.CPU)
		cab.WolfUnit, err = wolfunit.NewWolfUnit(env, v, wolfunit.Options{Security: options.Security}, cab.Probe, sched, img.Regions[romset.WolfUnitProgram])
		if err != nil {
			return nil, err
		}
		cab.Mem = cab.WolfUnit.Bus
		cab.Driver = cab.WolfUnit

	default:
		return nil, curated.Errorf(UnsupportedDriver, img.Set.Driver)
	}

	cab.Rewind = newRewind(cab)

	return cab, nil
}

func (cab *Cabinet) String() string {
	return fmt.Sprintf("%s\n%s\n%s", cab.Image.Set, cab.Driver, cab.Probe)
}

// Name of the ROM set running in the cabinet.
func (cab *Cabinet) Name() string {
	return cab.Image.Set.Name
}

// Reset the board and the interrupt probe. The rewind history is restarted
// from the reset state.
func (cab *Cabinet) Reset() {
	cab.Probe.Reset()
	cab.Driver.Reset()
	cab.Rewind.Reset()
}

// Advance simulated time.
func (cab *Cabinet) Advance(d scheduler.Time) {
	cab.Driver.Advance(d)
}

// Key sets the state of a named key or input switch.
func (cab *Cabinet) Key(name string, pressed bool) error {
	if cab.Mephisto != nil {
		return cab.Mephisto.Keys.Set(name, pressed)
	}
	return cab.WolfUnit.Inputs.Set(name, pressed)
}

// Piece places or removes a piece from the sensor board. Only chess
// computers have a sensor board.
func (cab *Cabinet) Piece(square string, present bool) error {
	if cab.Mephisto == nil {
		return curated.Errorf(NoSensorBoard, cab.Name())
	}
	sq, err := sensorboard.ParseSquare(square)
	if err != nil {
		return err
	}
	cab.Mephisto.Board.SetPiece(sq, present)
	return nil
}

// Shutdown the cabinet. Battery-backed memory is saved if required.
func (cab *Cabinet) Shutdown() error {
	if cab.WolfUnit != nil {
		return cab.WolfUnit.Shutdown()
	}
	return nil
}
