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

// Package chipset describes the register protocol of the target chipset
// family. The chipset exposes an MSR-like, per-core overclock register
// through an index/data port convention: a write to the index port selects
// the register and a subsequent write to the data port sets its value.
//
// The Setting type encodes a multiplier change for a single core into the
// address/value pair expected by the protocol. It is a pure description; no
// hardware access happens in this package.
//
// The bit layout and port numbers are fixed properties of the chipset family
// and must be preserved exactly by anything that talks to the same hardware.
package chipset
