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
	"encoding/binary"
	"fmt"
	"os"
	"slices"

	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/logger"
	"github.com/cabinet-emu/cabinet/notifications"
	"github.com/cabinet-emu/cabinet/paths"
)

// the sub-directory in the resource path where CMOS files are stored
const nvramPath = "nvram"

// CMOSSize is the number of 16-bit words in the CMOS.
const CMOSSize = 0x2000

// CMOS is the write-gated battery-backed memory.
type CMOS struct {
	env *environment.Environment

	// the name of the file used to store the CMOS on disk
	name string

	// amend Data only through Write() and Poke()
	Data []uint16

	// the data as it is on disk
	DiskData []uint16

	// a write to the CMOS is permitted
	armed bool
}

func newCMOS(env *environment.Environment, name string) *CMOS {
	c := &CMOS{
		env:      env,
		name:     name,
		Data:     make([]uint16, CMOSSize),
		DiskData: make([]uint16, CMOSSize),
	}
	return c
}

func (c *CMOS) String() string {
	return fmt.Sprintf("cmos: armed=%v saved=%v", c.armed, c.IsSaved())
}

func (c *CMOS) snapshot() *CMOS {
	n := *c
	n.Data = slices.Clone(c.Data)
	n.DiskData = slices.Clone(c.DiskData)
	return &n
}

// Armed returns true if the next write will be accepted.
func (c *CMOS) Armed() bool {
	return c.armed
}

// Enable the next write to the CMOS.
func (c *CMOS) Enable() {
	c.armed = true
}

// Write data to the CMOS. The write is accepted only if the CMOS has been
// enabled and the enable is consumed by the write.
func (c *CMOS) Write(offset uint32, data uint16, mask uint16) {
	offset %= CMOSSize
	if !c.armed {
		logger.Logf(c.env, "cmos", "unexpected write @ %05x", offset)
		_ = c.env.Notify(notifications.NotifyBadCMOSWrite)
		return
	}
	c.Data[offset] = (c.Data[offset] &^ mask) | (data & mask)
	c.armed = false
}

// Read data from the CMOS. Reads have no side effects.
func (c *CMOS) Read(offset uint32) uint16 {
	return c.Data[offset%CMOSSize]
}

// Poke a value into the CMOS, bypassing the write gate.
func (c *CMOS) Poke(offset uint32, data uint16) {
	c.Data[offset%CMOSSize] = data
}

// IsSaved returns true if the CMOS is the same as the data on disk.
func (c *CMOS) IsSaved() bool {
	return slices.Equal(c.Data, c.DiskData)
}

func (c *CMOS) filename() (string, error) {
	return paths.ResourcePath(nvramPath, fmt.Sprintf("%s.cmos", c.name))
}

// Load CMOS data from disk. A missing or bad file leaves the CMOS unchanged.
func (c *CMOS) Load() {
	fn, err := c.filename()
	if err != nil {
		logger.Logf(c.env, "cmos", "could not load cmos file: %v", err)
		return
	}

	d, err := os.ReadFile(fn)
	if err != nil {
		logger.Logf(c.env, "cmos", "could not load cmos file: %v", err)
		return
	}

	if len(d) != CMOSSize*2 {
		logger.Logf(c.env, "cmos", "cmos file is of incorrect length. %d should be %d", len(d), CMOSSize*2)
		return
	}

	for i := range c.Data {
		c.Data[i] = binary.LittleEndian.Uint16(d[i*2:])
	}

	// copy of data read from disk
	copy(c.DiskData, c.Data)

	logger.Logf(c.env, "cmos", "cmos file loaded from %s", fn)
	_ = c.env.Notify(notifications.NotifyNVRAMLoaded)
}

// Save CMOS data to disk.
func (c *CMOS) Save() {
	fn, err := c.filename()
	if err != nil {
		logger.Logf(c.env, "cmos", "could not write cmos file: %v", err)
		return
	}

	d := make([]uint8, CMOSSize*2)
	for i, v := range c.Data {
		binary.LittleEndian.PutUint16(d[i*2:], v)
	}

	err = os.WriteFile(fn, d, 0o644)
	if err != nil {
		logger.Logf(c.env, "cmos", "could not write cmos file: %v", err)
		return
	}

	logger.Logf(c.env, "cmos", "cmos file saved to %s", fn)
	_ = c.env.Notify(notifications.NotifyNVRAMSaved)

	// copy of data that's just been written to disk
	copy(c.DiskData, c.Data)
}
