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

package chipset

import "fmt"

// port numbers for the index/data protocol.
const (
	// the index (or "protect") port. receives the register address and
	// selects the target of the next write to PortData
	PortIndex = 0xcf8

	// the data port. receives the encoded register value
	PortData = 0xcfc
)

// MSRBaseOC is the address of core zero's overclock register. the register
// for core N is at MSRBaseOC+N.
const MSRBaseOC = 0x199

// bit layout of the encoded register value. the low byte carries the
// multiplier and the enable bit tells the chipset to latch the new value.
const (
	MultiplierMask = 0x000000ff
	EnableFlag     = 0x00010000
)

// Setting is a multiplier change for a single core, expressed as the
// address/value pair required by the index/data protocol. It is transient; a
// Setting does not outlive the call that commits it and no Setting is ever
// read back from hardware.
type Setting struct {
	Core       int
	Multiplier int
}

// Address of the overclock register for the selected core. This is the value
// written to PortIndex.
func (set Setting) Address() uint32 {
	return uint32(MSRBaseOC + set.Core)
}

// Value is the encoded register value. the multiplier occupies the low byte
// and the enable flag is always set. This is the value written to PortData.
func (set Setting) Value() uint32 {
	return uint32(set.Multiplier)&MultiplierMask | EnableFlag
}

// String returns a summary of the setting suitable for the command line
// confirmation message.
func (set Setting) String() string {
	return fmt.Sprintf("core %d: multiplier x%d (%#x <- %#x)",
		set.Core, set.Multiplier, set.Address(), set.Value())
}
