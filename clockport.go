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

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/clockport/clockport/chipset"
	"github.com/clockport/clockport/curated"
	"github.com/clockport/clockport/logger"
	"github.com/clockport/clockport/modalflag"
	"github.com/clockport/clockport/multiplier"
	"github.com/clockport/clockport/portio"
	"github.com/clockport/clockport/statsview"
	"github.com/clockport/clockport/tuner"
	"github.com/clockport/clockport/version"
)

// the range of core selectors and multiplier requests accepted on the
// command line. this is the only place in the program where ranges are
// enforced; the multiplier engine trusts its caller.
const (
	coreMin = 0
	coreMax = 15
	multMin = 8
	multMax = 255
)

// Sentinal error for command line validation failures.
const invalidArgument = "invalid argument: %v"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("SET", "TUNE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "SET":
		err = set(md)

	case "TUNE":
		err = tune(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func set(md *modalflag.Modes) error {
	md.NewMode()

	echoLog := md.AddBool("log", false, "echo log entries to stderr")
	md.AdditionalHelp(
		`The set mode takes exactly two arguments: the core to target and the clock
multiplier to apply to it. Both are base-10 integers. Cores 0 to 15 and
multipliers 8 to 255 are accepted.

Direct port access requires elevated rights (root or CAP_SYS_RAWIO).`)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil

	case modalflag.ParseError:
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	args := md.RemainingArgs()
	if len(args) != 2 {
		return curated.Errorf(invalidArgument, fmt.Sprintf("expected 2 arguments, got %d", len(args)))
	}

	core, mult, err := parseRequest(args[0], args[1])
	if err != nil {
		return err
	}

	// the confirmation is reported as the writes are issued. the chipset
	// offers no acknowledgment so there is nothing more definite to wait for
	fmt.Println(chipset.Setting{Core: core, Multiplier: mult}.String())

	eng := multiplier.NewEngine(portio.Hardware{})
	return eng.SetCoreMultiplier(core, mult)
}

func tune(md *modalflag.Modes) error {
	md.NewMode()

	echoLog := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("stats", false, fmt.Sprintf("launch statsview server (available: %t)", statsview.Available()))
	start := md.AddInt("start", multMin, "starting multiplier")
	md.AdditionalHelp(
		`The tune mode takes one argument: the core to target. The starting
multiplier is applied immediately and single keypresses then nudge it up and
down, each step committed to hardware as it happens.`)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil

	case modalflag.ParseError:
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	args := md.RemainingArgs()
	if len(args) != 1 {
		return curated.Errorf(invalidArgument, fmt.Sprintf("expected 1 argument, got %d", len(args)))
	}

	core, mult, err := parseRequest(args[0], strconv.Itoa(*start))
	if err != nil {
		return err
	}

	tn := tuner.NewTuner(multiplier.NewEngine(portio.Hardware{}))
	return tn.Run(core, mult, multMin, multMax)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	rev := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil

	case modalflag.ParseError:
		return err
	}

	ver, revision, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, ver)
	if *rev {
		fmt.Println(revision)
	}

	return nil
}

// parseRequest converts and bounds-checks the core and multiplier arguments.
// rejection happens here, before any engine is created, so an out-of-range
// request never reaches the hardware.
func parseRequest(coreArg string, multArg string) (int, int, error) {
	core, err := strconv.Atoi(coreArg)
	if err != nil {
		return 0, 0, curated.Errorf(invalidArgument, fmt.Sprintf("core must be a base-10 integer (%s)", coreArg))
	}
	if core < coreMin || core > coreMax {
		return 0, 0, curated.Errorf(invalidArgument, fmt.Sprintf("core must be between %d and %d (%d)", coreMin, coreMax, core))
	}

	mult, err := strconv.Atoi(multArg)
	if err != nil {
		return 0, 0, curated.Errorf(invalidArgument, fmt.Sprintf("multiplier must be a base-10 integer (%s)", multArg))
	}
	if mult < multMin || mult > multMax {
		return 0, 0, curated.Errorf(invalidArgument, fmt.Sprintf("multiplier must be between %d and %d (%d)", multMin, multMax, mult))
	}

	return core, mult, nil
}
