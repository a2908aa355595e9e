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
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/environment"
	"github.com/cabinet-emu/cabinet/govern"
	"github.com/cabinet-emu/cabinet/hardware"
	"github.com/cabinet-emu/cabinet/hardware/preferences"
	"github.com/cabinet-emu/cabinet/hardware/scheduler"
	"github.com/cabinet-emu/cabinet/logger"
	"github.com/cabinet-emu/cabinet/modalflag"
	"github.com/cabinet-emu/cabinet/notifications"
	"github.com/cabinet-emu/cabinet/paths"
	"github.com/cabinet-emu/cabinet/prefs"
	"github.com/cabinet-emu/cabinet/romset"
	"github.com/cabinet-emu/cabinet/runner"
	"github.com/cabinet-emu/cabinet/statsview"
	"github.com/cabinet-emu/cabinet/trace"
	"github.com/cabinet-emu/cabinet/wavwriter"
)

// Sentinal errors for the command line.
const (
	ArgumentRequired = "%s mode requires %s"
	TooManyArguments = "too many arguments for %s mode"
	NoBeeper         = "%s has no beeper to record"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("TRACE", "ROMS", "NVRAM")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "TRACE":
		err = playTrace(md, output)
	case "ROMS":
		err = roms(md, output)
	case "NVRAM":
		err = nvram(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// notices from the hardware are printed as they happen
type noticePrinter struct {
	output io.Writer
}

func (n noticePrinter) Notify(notice notifications.Notice) error {
	fmt.Fprintf(n.output, "! %s\n", notice)
	return nil
}

// setup describes how a cabinet is to be created
type setup struct {
	machine  string
	romDir   string
	bios     string
	blank    bool
	security bool
	prefs    string
}

// cabinetFlags are the flags shared by every mode that creates a cabinet
type cabinetFlags struct {
	machine  *string
	romDir   *string
	bios     *string
	blank    *bool
	security *bool
	prefs    *string
}

func addCabinetFlags(md *modalflag.Modes, defMachine string) cabinetFlags {
	return cabinetFlags{
		machine:  md.AddString("machine", defMachine, "ROM set to emulate"),
		romDir:   md.AddString("roms", "roms", "directory containing ROM sets"),
		bios:     md.AddString("bios", "", "BIOS option. defaults to the first option for the ROM set"),
		blank:    md.AddBool("blank", false, "do not load ROM files. all regions are zero"),
		security: md.AddBool("security", false, "fit the serial number security chip (Wolf-unit only)"),
		prefs:    md.AddString("prefs", "", "preferences for this run. format: key::value; key::value"),
	}
}

func (fl cabinetFlags) setup() setup {
	return setup{
		machine:  *fl.machine,
		romDir:   *fl.romDir,
		bios:     *fl.bios,
		blank:    *fl.blank,
		security: *fl.security,
		prefs:    *fl.prefs,
	}
}

// newCabinet creates and resets a cabinet for the named ROM set
func newCabinet(su setup, output io.Writer) (*hardware.Cabinet, error) {
	set, err := romset.Lookup(su.machine)
	if err != nil {
		return nil, err
	}

	if su.prefs != "" {
		prefs.PushCommandLineStack(su.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	sched := scheduler.NewScheduler()
	env, err := environment.NewEnvironment(environment.MainEmulation, sched, p, noticePrinter{output: output})
	if err != nil {
		return nil, err
	}

	var img *romset.Image
	if su.blank {
		img = &romset.Image{Set: set, Regions: make(map[string][]uint8)}
		for _, r := range set.Regions {
			img.Regions[r.Name] = make([]uint8, r.Size)
		}
	} else {
		bios := su.bios
		if bios == "" {
			bios = set.DefaultBIOS()
		}
		img, err = romset.LoadSet(set, su.romDir, bios)
		if err != nil {
			return nil, err
		}
	}

	cab, err := hardware.NewCabinet(env, sched, img, hardware.Options{Security: su.security})
	if err != nil {
		return nil, err
	}
	cab.Reset()

	return cab, nil
}

func playTrace(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the trace is read from the named file or from stdin if the file is -")

	fl := addCabinetFlags(md, "mm4")
	echo := md.AddBool("echo", false, "echo log to stdout")
	wav := md.AddString("wav", "", "record beeper to wav file. a unique filename is created if the value is a directory")
	dump := md.AddBool("dump", false, "dump cabinet state on completion")
	viz := md.AddString("memviz", "", "write graph of cabinet state to file (graphviz dot format)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	step := md.AddBool("step", false, "step through the trace one command at a time")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var input io.Reader
	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(ArgumentRequired, md, "a trace file")
	case 1:
		if md.GetArg(0) == "-" {
			input = os.Stdin
		} else {
			f, err := os.Open(md.GetArg(0))
			if err != nil {
				return err
			}
			defer f.Close()
			input = f
		}
	default:
		return curated.Errorf(TooManyArguments, md)
	}

	if *echo {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(output)
	}

	cmds, err := trace.Parse(input)
	if err != nil {
		return err
	}

	cab, err := newCabinet(fl.setup(), output)
	if err != nil {
		return err
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		if cab.Mephisto == nil {
			return curated.Errorf(NoBeeper, cab.Name())
		}
		fn := *wav
		if st, err := os.Stat(fn); err == nil && st.IsDir() {
			fn = filepath.Join(fn, fmt.Sprintf("%s.wav", paths.UniqueFilename("beeper", cab.Name())))
		}
		aw, err = wavwriter.New(fn, cab.Env.Prefs.BeeperSampleRate.Get().(int))
		if err != nil {
			return err
		}
		cab.Mephisto.Beeper.SetRecorder(aw)
	}

	pl := trace.NewPlayer(cab, output)
	r := runner.NewRunner(pl)

	// ctrl-c ends playback at the next command
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	check := func(_ trace.Command) (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	}

	if *step {
		st, err := trace.NewStepper(pl, output)
		if err != nil {
			_ = r.Stop()
			return err
		}
		defer st.Close()
		check = st.Check
	}

	playErr := r.Play(cmds, check)

	err = r.Do(func(cab *hardware.Cabinet) error {
		if *dump {
			cfg := spew.ConfigState{Indent: "  ", MaxDepth: 4, DisablePointerAddresses: true, SortKeys: true}
			cfg.Fdump(output, cab.Snapshot())
		}

		if *viz != "" {
			f, err := os.Create(*viz)
			if err != nil {
				return err
			}
			defer f.Close()
			memviz.Map(f, cab.Snapshot())
		}

		return cab.Shutdown()
	})

	if stopErr := r.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}

	if aw != nil {
		if wavErr := aw.EndMixing(); wavErr != nil && err == nil {
			err = wavErr
		}
	}

	if playErr != nil {
		return playErr
	}
	return err
}
