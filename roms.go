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
	"fmt"
	"io"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/modalflag"
	"github.com/cabinet-emu/cabinet/romset"
)

// Sentinal error returned by VERIFY when one or more files fail.
const VerifyFailed = "%d of %d files failed verification"

func roms(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("LIST", "VERIFY")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "LIST":
		return listSets(md, output)
	case "VERIFY":
		return verifySet(md, output)
	}

	return nil
}

func listSets(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("child sets are indented beneath their parent")

	files := md.AddBool("files", false, "list the files in each set")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(TooManyArguments, md)
	}

	var list func(name string, indent string)
	list = func(name string, indent string) {
		s, err := romset.Lookup(name)
		if err != nil {
			return
		}
		fmt.Fprintf(output, "%s%s\n", indent, s)
		if *files {
			for _, f := range s.Files {
				fmt.Fprintf(output, "%s    %s\n", indent, f)
			}
		}
		for _, c := range romset.Children(name) {
			list(c, indent+"  ")
		}
	}

	for _, n := range romset.Names() {
		s, err := romset.Lookup(n)
		if err != nil {
			return err
		}
		if s.Parent == "" {
			list(n, "")
		}
	}

	return nil
}

func verifySet(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	romDir := md.AddString("roms", "roms", "directory containing ROM sets")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf(ArgumentRequired, md, "at least one ROM set name")
	}

	var failed, total int
	for _, name := range md.RemainingArgs() {
		s, err := romset.Lookup(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(output, "%s\n", s)
		for _, r := range romset.Verify(s, *romDir) {
			fmt.Fprintf(output, "  %s\n", r)
			if r.Err != nil {
				failed++
			}
			total++
		}
	}

	if failed > 0 {
		return curated.Errorf(VerifyFailed, failed, total)
	}

	return nil
}
