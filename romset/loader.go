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
	"crypto/sha1"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/logger"
)

// Sentinal errors returned by LoadSet() and Verify().
const (
	MissingFile = "romset: %s: file not found"
	BadSize     = "romset: %s: size is %d bytes, expected %d"
	BadHash     = "romset: %s: %s is %s, expected %s"
)

// Loader reads the data for a single file. Filenames with a valid URL scheme
// will use that scheme to load the data. Currently supported schemes are
// HTTP and local files.
type Loader struct {
	Filename string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte

	// hashes of the loaded data. only valid after a successful call to Load()
	CRC  uint32
	SHA1 string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the file data.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romset: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romset: %v", fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romset: %v", err)
		}

	case "file":
		fallthrough

	case "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return curated.Errorf(MissingFile, ld.Filename)
			}
			return curated.Errorf("romset: %v", err)
		}

	default:
		return curated.Errorf("romset: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	ld.CRC = crc32.ChecksumIEEE(ld.Data)
	ld.SHA1 = fmt.Sprintf("%x", sha1.Sum(ld.Data))

	return nil
}

// Image is the result of loading a set. Each region is filled with the data
// of the files that are loaded into it.
type Image struct {
	Set     *Set
	BIOS    string
	Regions map[string][]uint8
}

// locations searched for a file, in order of preference
func searchPaths(s *Set, dir string, file string) []string {
	p := []string{filepath.Join(dir, s.Name, file)}
	if s.Parent != "" {
		p = append(p, filepath.Join(dir, s.Parent, file))
	}
	return append(p, filepath.Join(dir, file))
}

// find and load a file from the set
func load(s *Set, dir string, f File) (Loader, error) {
	var err error
	for _, pth := range searchPaths(s, dir, f.Name) {
		ld := NewLoader(pth)
		err = ld.Load()
		if err == nil {
			return ld, nil
		}
		if !curated.Is(err, MissingFile) {
			return Loader{}, err
		}
	}
	return Loader{}, curated.Errorf(MissingFile, f.Name)
}

// check the loaded data against the file description. bad dumps are never
// rejected but any discrepancy is logged
func check(f File, ld Loader) error {
	var err error
	switch {
	case uint32(len(ld.Data)) != f.Size:
		err = curated.Errorf(BadSize, f.Name, len(ld.Data), f.Size)
	case ld.CRC != f.CRC:
		err = curated.Errorf(BadHash, f.Name, "crc32", fmt.Sprintf("%08x", ld.CRC), fmt.Sprintf("%08x", f.CRC))
	case ld.SHA1 != f.SHA1:
		err = curated.Errorf(BadHash, f.Name, "sha1", ld.SHA1, f.SHA1)
	}
	if err != nil && f.BadDump {
		logger.Logf(logger.Allow, "romset", "%v (known bad dump)", err)
		return nil
	}
	return err
}

// LoadSet loads every file required by the set and the selected BIOS. Files
// are searched for in a subdirectory named after the set, then in a
// subdirectory named after the parent set, and then in dir itself.
func LoadSet(s *Set, dir string, bios string) (*Image, error) {
	if !s.HasBIOS(bios) {
		return nil, curated.Errorf(UnknownBIOS, s.Name, bios)
	}

	img := &Image{
		Set:     s,
		BIOS:    bios,
		Regions: make(map[string][]uint8),
	}
	for _, r := range s.Regions {
		img.Regions[r.Name] = make([]uint8, r.Size)
	}

	for _, f := range s.FilesFor(bios) {
		ld, err := load(s, dir, f)
		if err != nil {
			return nil, err
		}
		err = check(f, ld)
		if err != nil {
			return nil, err
		}

		r, ok := img.Regions[f.Region]
		if !ok {
			return nil, curated.Errorf("romset: %v", fmt.Sprintf("%s: unknown region %s", f.Name, f.Region))
		}
		if f.Offset+f.Size > uint32(len(r)) {
			return nil, curated.Errorf("romset: %v", fmt.Sprintf("%s: does not fit in region %s", f.Name, f.Region))
		}
		copy(r[f.Offset:f.Offset+f.Size], ld.Data)

		logger.Logf(logger.Allow, "romset", "%s loaded into %s at %05x", f.Name, f.Region, f.Offset)
	}

	return img, nil
}

// Result of verifying a single file.
type Result struct {
	File File
	Err  error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%-16s %v", r.File.Name, r.Err)
	}
	return fmt.Sprintf("%-16s ok", r.File.Name)
}

// Verify every file in the set, including the files for every BIOS option.
// Unlike LoadSet() verification continues after a failure.
func Verify(s *Set, dir string) []Result {
	res := make([]Result, 0, len(s.Files))
	for _, f := range s.Files {
		ld, err := load(s, dir, f)
		if err == nil {
			err = check(f, ld)
		}
		res = append(res, Result{File: f, Err: err})
	}
	return res
}
