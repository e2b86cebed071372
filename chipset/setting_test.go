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

package chipset_test

import (
	"testing"

	"github.com/clockport/clockport/chipset"
	"github.com/clockport/clockport/test"
)

func TestWorkedExamples(t *testing.T) {
	// lowest accepted core and multiplier
	set := chipset.Setting{Core: 0, Multiplier: 8}
	test.Equate(t, set.Address(), 0x199)
	test.Equate(t, set.Value(), 0x10008)

	// highest accepted core and multiplier
	set = chipset.Setting{Core: 15, Multiplier: 255}
	test.Equate(t, set.Address(), 0x1a8)
	test.Equate(t, set.Value(), 0x100ff)
}

// address and value are pure functions of core and multiplier over the entire
// accepted range
func TestEncodingPurity(t *testing.T) {
	for core := 0; core <= 15; core++ {
		for mult := 8; mult <= 255; mult++ {
			set := chipset.Setting{Core: core, Multiplier: mult}
			test.Equate(t, set.Address(), 0x199+core)
			test.Equate(t, set.Value(), mult&0xff|0x10000)

			// repeated derivation gives the same answer. there is no hidden
			// state in the Setting type
			test.Equate(t, set.Address(), set.Address())
			test.Equate(t, set.Value(), set.Value())
		}
	}
}

// the enable flag is set regardless of multiplier value
func TestEnableFlag(t *testing.T) {
	for mult := 0; mult <= 255; mult++ {
		set := chipset.Setting{Core: 0, Multiplier: mult}
		test.ExpectedSuccess(t, set.Value()&chipset.EnableFlag == chipset.EnableFlag)
	}
}

func TestString(t *testing.T) {
	set := chipset.Setting{Core: 3, Multiplier: 40}
	test.Equate(t, set.String(), "core 3: multiplier x40 (0x19c <- 0x10028)")
}
