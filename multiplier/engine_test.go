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

package multiplier_test

import (
	"errors"
	"testing"

	"github.com/clockport/clockport/chipset"
	"github.com/clockport/clockport/curated"
	"github.com/clockport/clockport/multiplier"
	"github.com/clockport/clockport/portio"
	"github.com/clockport/clockport/test"
)

type portWrite struct {
	port  uint16
	value uint32
}

// recorder is a fake Ports capability. it records every write it receives in
// the order it receives them and can be told to refuse acquisition.
type recorder struct {
	writes []portWrite

	// the error pattern Acquire() should fail with. empty means success
	refuse string
}

func (rec *recorder) Acquire() error {
	if rec.refuse != "" {
		return curated.Errorf(rec.refuse, errors.New("operation not permitted"))
	}
	return nil
}

func (rec *recorder) Write(port uint16, value uint32) {
	rec.writes = append(rec.writes, portWrite{port: port, value: value})
}

func TestWritePair(t *testing.T) {
	rec := &recorder{}
	eng := multiplier.NewEngine(rec)

	err := eng.SetCoreMultiplier(0, 8)
	test.ExpectedSuccess(t, err)

	// exactly two writes. index port strictly before data port
	test.Equate(t, len(rec.writes), 2)
	test.Equate(t, rec.writes[0].port, chipset.PortIndex)
	test.Equate(t, rec.writes[0].value, 0x199)
	test.Equate(t, rec.writes[1].port, chipset.PortData)
	test.Equate(t, rec.writes[1].value, 0x10008)
}

func TestWritePairUpperBound(t *testing.T) {
	rec := &recorder{}
	eng := multiplier.NewEngine(rec)

	err := eng.SetCoreMultiplier(15, 255)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(rec.writes), 2)
	test.Equate(t, rec.writes[0].value, 0x1a8)
	test.Equate(t, rec.writes[1].value, 0x100ff)
}

// repeating a call issues the same two writes both times. the engine carries
// no state between calls
func TestIdempotence(t *testing.T) {
	rec := &recorder{}
	eng := multiplier.NewEngine(rec)

	test.ExpectedSuccess(t, eng.SetCoreMultiplier(3, 40))
	test.ExpectedSuccess(t, eng.SetCoreMultiplier(3, 40))

	test.Equate(t, len(rec.writes), 4)
	test.Equate(t, rec.writes[0].port, rec.writes[2].port)
	test.Equate(t, rec.writes[0].value, rec.writes[2].value)
	test.Equate(t, rec.writes[1].port, rec.writes[3].port)
	test.Equate(t, rec.writes[1].value, rec.writes[3].value)
}

// a failed acquisition means zero port writes. there are no partial writes
// on failure
func TestPrivilegeDenied(t *testing.T) {
	rec := &recorder{refuse: portio.PrivilegeDenied}
	eng := multiplier.NewEngine(rec)

	err := eng.SetCoreMultiplier(0, 8)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, portio.PrivilegeDenied))
	test.Equate(t, len(rec.writes), 0)
}

func TestUnsupportedPlatform(t *testing.T) {
	rec := &recorder{refuse: portio.UnsupportedPlatform}
	eng := multiplier.NewEngine(rec)

	err := eng.SetCoreMultiplier(0, 8)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, portio.UnsupportedPlatform))
	test.ExpectedFailure(t, curated.Has(err, portio.PrivilegeDenied))
	test.Equate(t, len(rec.writes), 0)
}
