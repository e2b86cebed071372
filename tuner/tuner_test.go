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

package tuner

import (
	"os"
	"testing"

	"github.com/clockport/clockport/multiplier"
	"github.com/clockport/clockport/test"
)

type portWrite struct {
	port  uint16
	value uint32
}

type recorder struct {
	writes []portWrite
}

func (rec *recorder) Acquire() error {
	return nil
}

func (rec *recorder) Write(port uint16, value uint32) {
	rec.writes = append(rec.writes, portWrite{port: port, value: value})
}

// a nudge commits the change through the engine and redraws the status line
func TestApply(t *testing.T) {
	rec := &recorder{}

	tw := &test.CompareWriter{}
	tn := &Tuner{
		engine: multiplier.NewEngine(rec),
		output: tw,
	}

	test.ExpectedSuccess(t, tn.apply(3, 40))
	test.Equate(t, len(rec.writes), 2)
	test.Equate(t, rec.writes[0].value, 0x19c)
	test.Equate(t, rec.writes[1].value, 0x10028)
	test.ExpectedSuccess(t, tw.Compare("\rcore 3: multiplier x40 "))
}

// a tuning session needs a real terminal on stdin. a pipe is not one and the
// session must fail before any hardware write is issued
func TestRunRequiresTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.ExpectedSuccess(t, err)
	defer r.Close()
	defer w.Close()

	rec := &recorder{}

	tw := &test.CompareWriter{}
	tn := &Tuner{
		engine: multiplier.NewEngine(rec),
		input:  r,
		output: tw,
	}

	test.ExpectedFailure(t, tn.Run(0, 8, 8, 255))
	test.Equate(t, len(rec.writes), 0)
}
