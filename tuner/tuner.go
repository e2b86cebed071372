// This file is part of Clockport.
//
// Clockport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Clockport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Clockport.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows
// +build !windows

// Package tuner is an interactive terminal session for stepwise adjustment
// of a single core's clock multiplier. The terminal is put into raw mode and
// single keypresses nudge the multiplier up and down, each step committed to
// hardware immediately. Useful when probing for a stable overclock: small
// steps, instant feedback, no retyping of the full command.
package tuner

import (
	"fmt"
	"io"
	"os"

	"github.com/clockport/clockport/curated"
	"github.com/clockport/clockport/logger"
	"github.com/clockport/clockport/multiplier"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// keys recognised during a tuning session.
const (
	keyUp    = '+'
	keyUpAlt = '='
	keyDown  = '-'
	keyQuit  = 'q'
	keyETX   = 0x03 // ctrl-c. delivered as a plain byte in raw mode
	keyEOT   = 0x04 // ctrl-d
)

// Tuner is a single interactive tuning session.
type Tuner struct {
	engine *multiplier.Engine

	input  *os.File
	output io.Writer

	// terminal attributes on entry, restored when the session ends
	canAttr unix.Termios
	rawAttr unix.Termios
}

// NewTuner creates a tuning session driving the supplied engine. Input is
// read from stdin, which must be a terminal.
func NewTuner(engine *multiplier.Engine) *Tuner {
	return &Tuner{
		engine: engine,
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// Run the tuning session. The starting multiplier is applied to the core
// immediately so that the display and the hardware agree from the first
// moment. The session then loops until the user quits or a hardware write
// fails.
//
// min and max bound the reachable multipliers; nudges beyond them are
// ignored.
func (tn *Tuner) Run(core int, mult int, min int, max int) error {
	if err := termios.Tcgetattr(tn.input.Fd(), &tn.canAttr); err != nil {
		return curated.Errorf("tuner: %v", err)
	}
	tn.rawAttr = tn.canAttr
	termios.Cfmakeraw(&tn.rawAttr)

	if err := termios.Tcsetattr(tn.input.Fd(), termios.TCIFLUSH, &tn.rawAttr); err != nil {
		return curated.Errorf("tuner: %v", err)
	}
	defer func() {
		termios.Tcsetattr(tn.input.Fd(), termios.TCIFLUSH, &tn.canAttr)
		fmt.Fprintf(tn.output, "\r\n")
	}()

	logger.Logf("tuner", "session start: core %d at x%d", core, mult)

	fmt.Fprintf(tn.output, "tuning core %d   [+] raise  [-] lower  [q] quit\r\n", core)

	if err := tn.apply(core, mult); err != nil {
		return err
	}

	b := make([]byte, 1)
	for {
		n, err := tn.input.Read(b)
		if err != nil {
			return curated.Errorf("tuner: %v", err)
		}
		if n == 0 {
			continue
		}

		switch b[0] {
		case keyUp, keyUpAlt:
			if mult < max {
				mult++
				if err := tn.apply(core, mult); err != nil {
					return err
				}
			}

		case keyDown:
			if mult > min {
				mult--
				if err := tn.apply(core, mult); err != nil {
					return err
				}
			}

		case keyQuit, keyETX, keyEOT:
			logger.Logf("tuner", "session end: core %d at x%d", core, mult)
			return nil
		}
	}
}

func (tn *Tuner) apply(core int, mult int) error {
	if err := tn.engine.SetCoreMultiplier(core, mult); err != nil {
		return err
	}
	fmt.Fprintf(tn.output, "\rcore %d: multiplier x%-3d", core, mult)
	return nil
}
