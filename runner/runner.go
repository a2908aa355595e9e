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

package runner

import (
	"gopkg.in/tomb.v2"

	"github.com/cabinet-emu/cabinet/curated"
	"github.com/cabinet-emu/cabinet/govern"
	"github.com/cabinet-emu/cabinet/hardware"
	"github.com/cabinet-emu/cabinet/logger"
	"github.com/cabinet-emu/cabinet/trace"
)

// Sentinal error returned when a request is made of a runner that has
// stopped.
const Stopped = "runner: stopped"

// Runner executes requests on the goroutine that owns the cabinet.
type Runner struct {
	player  *trace.Player
	reqchan chan any
	tomb    tomb.Tomb
}

type executeReq struct {
	cmd          trace.Command
	responseChan chan error
}

type doReq struct {
	f            func(cab *hardware.Cabinet) error
	responseChan chan error
}

// NewRunner starts a new goroutine which takes ownership of the player and
// the cabinet being driven by it.
func NewRunner(player *trace.Player) *Runner {
	r := &Runner{
		player:  player,
		reqchan: make(chan any),
	}
	r.tomb.Go(r.loop)
	return r
}

func (r *Runner) loop() error {
	for {
		select {
		case req := <-r.reqchan:
			switch req := req.(type) {
			case executeReq:
				req.responseChan <- r.player.Execute(req.cmd)
			case doReq:
				req.responseChan <- req.f(r.player.Cabinet())
			}
		case <-r.tomb.Dying():
			logger.Logf(logger.Allow, "runner", "stopped after %d commands", r.player.Executed)
			return nil
		}
	}
}

func (r *Runner) request(req any, responseChan chan error) error {
	select {
	case r.reqchan <- req:
	case <-r.tomb.Dying():
		return curated.Errorf(Stopped)
	}
	return <-responseChan
}

// Execute a single command. The function returns when the command has been
// executed.
func (r *Runner) Execute(cmd trace.Command) error {
	req := executeReq{cmd: cmd, responseChan: make(chan error, 1)}
	return r.request(req, req.responseChan)
}

// Do runs the function on the runner's goroutine. Used to inspect the cabinet
// safely.
func (r *Runner) Do(f func(cab *hardware.Cabinet) error) error {
	req := doReq{f: f, responseChan: make(chan error, 1)}
	return r.request(req, req.responseChan)
}

// Play executes the commands in order, stopping at the first error. The
// continueCheck function is called on the calling goroutine before every
// command and can be nil.
func (r *Runner) Play(cmds []trace.Command, continueCheck func(cmd trace.Command) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ trace.Command) (govern.State, error) { return govern.Running, nil }
	}

	for _, cmd := range cmds {
		state, err := continueCheck(cmd)
		for err == nil && state == govern.Paused {
			state, err = continueCheck(cmd)
		}
		if err != nil {
			return err
		}
		if state == govern.Ending {
			return nil
		}

		if err := r.Execute(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Alive returns true if the runner has not been stopped.
func (r *Runner) Alive() bool {
	return r.tomb.Alive()
}

// Stop the runner and wait for the goroutine to end.
func (r *Runner) Stop() error {
	r.tomb.Kill(nil)
	return r.tomb.Wait()
}
