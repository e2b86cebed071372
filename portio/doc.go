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

// Package portio is the capability to perform raw I/O port writes from user
// mode. The Ports interface separates the question of *whether* the process
// may touch the hardware (Acquire) from the act of touching it (Write),
// allowing the multiplier engine to be tested against a fake implementation
// that records the writes it receives.
//
// The Hardware type is the real implementation. It has two build-time
// variants. On linux/amd64 and linux/386, Acquire() raises the I/O privilege
// level of the process with iopl(2) and Write() executes an actual OUT
// instruction. On every other platform Acquire() refuses with the
// UnsupportedPlatform error; there is no user-mode path to port I/O and no
// hardware access of any kind is attempted.
//
// Privilege elevation is all-or-nothing. Once granted it lasts for the
// remaining lifetime of the process; there is no way to hand it back.
package portio
