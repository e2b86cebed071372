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

package portio

// Sentinal errors returned by Acquire().
const (
	// the platform has a path to direct port access but refused it for this
	// process. running with elevated rights may resolve the refusal
	PrivilegeDenied = "privilege denied: %v"

	// the platform structurally cannot perform direct port I/O from user
	// mode. no amount of privilege will change the answer
	UnsupportedPlatform = "unsupported platform: %v"
)

// Ports is the capability required to commit register writes to the chipset.
type Ports interface {
	// Acquire the privilege required for direct port access. all-or-nothing:
	// on success the process can write ports for the rest of its lifetime,
	// on failure no port access is possible and Write() must not be called.
	//
	// Acquire() is safe to call more than once.
	Acquire() error

	// Write a 32-bit value to a hardware port. a raw port write has no
	// failure status and so no error is returned; any fault at this level is
	// a process-terminating condition.
	Write(port uint16, value uint32)
}
