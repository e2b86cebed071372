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

// Package multiplier commits clock multiplier changes to the CPU. It is the
// only package in the project that issues hardware writes and it issues
// exactly two per change: the register address to the chipset's index port
// followed by the encoded value to the data port.
//
// The engine trusts its caller to have bounds-checked the core and
// multiplier arguments. Range enforcement belongs at the outermost entry
// point (the command line in this project); the engine faithfully encodes
// whatever it is given.
//
// A successful return means the writes were issued, not that the hardware
// confirmed the change. The chipset protocol offers no acknowledgment and
// the engine deliberately does not read back the register.
package multiplier
