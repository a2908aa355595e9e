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

package preferences

import (
	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/paths"
	"github.com/cabinet-emu/cabinet/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware drivers.
type Preferences struct {
	dsk *prefs.Disk

	// initialise RAM to an unknown state on start
	RandomState prefs.Bool

	// save the contents of battery-backed CMOS to disk whenever the machine
	// is stopped
	NVRAMAutoSave prefs.Bool

	// the sample rate used by the beeper when producing audio
	BeeperSampleRate prefs.Int

	// the volume of the beeper in the range 0.0 to 1.0
	BeeperVolume prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the default prefs file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// location of the prefs file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.nvramautosave", &p.NVRAMAutoSave)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.beeper.samplerate", &p.BeeperSampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.beeper.volume", &p.BeeperVolume)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.NVRAMAutoSave.Set(true)
	p.BeeperSampleRate.Set(44100)
	p.BeeperVolume.Set(0.5)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
