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

package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/modalflag"
)

// Sentinal errors for NVRAM mode.
const (
	NoNVRAM    = "%s has no NVRAM"
	NotCleared = "NVRAM for %s could not be cleared"
)

func nvram(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("DUMP", "CLEAR")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	md.NewMode()
	machine := md.AddString("machine", "umk3", "ROM set of the NVRAM")
	if md.Mode() == "DUMP" {
		md.AdditionalHelp("the dump is of the NVRAM as it is stored on disk")
	}

	p, err = md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(TooManyArguments, md)
	}

	// the ROMs are not needed to access the NVRAM
	cab, err := newCabinet(setup{machine: *machine, blank: true}, output)
	if err != nil {
		return err
	}

	if cab.WolfUnit == nil {
		return curated.Errorf(NoNVRAM, cab.Name())
	}
	cmos := cab.WolfUnit.CMOS

	switch md.Mode() {
	case "DUMP":
		d := make([]uint8, len(cmos.Data)*2)
		for i, v := range cmos.Data {
			binary.LittleEndian.PutUint16(d[i*2:], v)
		}
		_, err = io.WriteString(output, hex.Dump(d))
		return err

	case "CLEAR":
		for i := range cmos.Data {
			cmos.Poke(uint32(i), 0)
		}
		cmos.Save()
		if !cmos.IsSaved() {
			return curated.Errorf(NotCleared, cab.Name())
		}
		fmt.Fprintf(output, "NVRAM for %s cleared\n", cab.Name())
	}

	return nil
}
