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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments. This allows the same
// arguments to be parsed in stages, one stage for every mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TRACE", "ROMS", "NVRAM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default and is selected if the first argument
// after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper case name.
//
// Once the mode has been decided, NewMode() starts a new stage. Flags for the
// mode are added and Parse() is called again:
//
//	switch md.Mode() {
//	case "TRACE":
//		md.NewMode()
//		machine := md.AddString("machine", "mm4", "ROM set to run")
//		echo := md.AddBool("echo", false, "echo log to stdout")
//		p, err := md.Parse()
//		...
//		switch len(md.RemainingArgs()) {
//		case 0:
//			return fmt.Errorf("trace file required for %s mode", md)
//		case 1:
//			return runTrace(md.GetArg(0), *machine, *echo)
//		}
//	}
//
// Modes can be chained together as deep as required. The Path() function
// returns every mode encountered, separated by a slash.
package modalflag
