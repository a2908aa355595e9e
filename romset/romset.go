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

package romset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cabinet-emu/cabinet/curated"
)

// Sentinal errors.
const (
	UnknownSet  = "romset: unknown set: %s"
	UnknownBIOS = "romset: %s: unknown bios: %s"
)

// Flags describe the emulation status of a set.
type Flags int

// List of valid Flags.
const (
	NotWorking Flags = 1 << iota
	RequiresArtwork
	ClickableArtwork
)

func (f Flags) String() string {
	s := make([]string, 0, 3)
	if f&NotWorking == NotWorking {
		s = append(s, "not working")
	}
	if f&RequiresArtwork == RequiresArtwork {
		s = append(s, "requires artwork")
	}
	if f&ClickableArtwork == ClickableArtwork {
		s = append(s, "clickable artwork")
	}
	return strings.Join(s, ", ")
}

// Region is a named area of memory that ROM files are loaded into.
type Region struct {
	Name string
	Size uint32
}

// BIOS is an optional configuration of a set.
type BIOS struct {
	Name        string
	Description string
}

// File is a single ROM image.
type File struct {
	Name    string
	Region  string
	Offset  uint32
	Size    uint32
	CRC     uint32
	SHA1    string
	BadDump bool

	// the file is only loaded if this BIOS is selected. the empty string
	// indicates that the file is always loaded
	BIOS string
}

func (f File) String() string {
	s := fmt.Sprintf("%-16s %s %05x-%05x crc=%08x sha1=%s", f.Name, f.Region, f.Offset, f.Offset+f.Size-1, f.CRC, f.SHA1)
	if f.BadDump {
		s = fmt.Sprintf("%s (bad dump)", s)
	}
	if f.BIOS != "" {
		s = fmt.Sprintf("%s [bios %s]", s, f.BIOS)
	}
	return s
}

// Set is the complete description of a machine's ROMs.
type Set struct {
	Name         string
	Parent       string
	Year         int
	Manufacturer string
	Description  string
	Flags        Flags

	// the driver that emulates the set
	Driver string

	Regions []Region
	Files   []File
	BIOS    []BIOS
}

func (s *Set) String() string {
	return fmt.Sprintf("%-9s %d %-17s %s", s.Name, s.Year, s.Manufacturer, s.Description)
}

// DefaultBIOS returns the name of the first BIOS option or the empty string if
// the set has no BIOS options.
func (s *Set) DefaultBIOS() string {
	if len(s.BIOS) == 0 {
		return ""
	}
	return s.BIOS[0].Name
}

// HasBIOS returns true if the set has a BIOS option of the given name. The
// empty string is a valid option for every set.
func (s *Set) HasBIOS(name string) bool {
	if name == "" {
		return true
	}
	return slices.ContainsFunc(s.BIOS, func(b BIOS) bool {
		return b.Name == name
	})
}

// Region returns the named region.
func (s *Set) Region(name string) (Region, bool) {
	for _, r := range s.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// FilesFor returns the files to be loaded when the named BIOS is selected.
func (s *Set) FilesFor(bios string) []File {
	f := make([]File, 0, len(s.Files))
	for _, fl := range s.Files {
		if fl.BIOS == "" || fl.BIOS == bios {
			f = append(f, fl)
		}
	}
	return f
}

// Lookup returns the set with the given name.
func Lookup(name string) (*Set, error) {
	s, ok := sets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, curated.Errorf(UnknownSet, name)
	}
	return s, nil
}

// Names returns the name of every set in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(sets))
	for k := range sets {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// Children returns the names of every set with the named parent, in
// alphabetical order.
func Children(parent string) []string {
	n := make([]string, 0)
	for k, s := range sets {
		if s.Parent == parent {
			n = append(n, k)
		}
	}
	slices.Sort(n)
	return n
}

var sets = make(map[string]*Set)

func register(s *Set) {
	if _, ok := sets[s.Name]; ok {
		panic(fmt.Sprintf("romset: duplicate set: %s", s.Name))
	}
	sets[s.Name] = s
}
