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

//go:build linux && (amd64 || 386)
// +build linux
// +build amd64 386

package portio

import (
	"github.com/clockport/clockport/curated"
	"github.com/clockport/clockport/logger"

	"golang.org/x/sys/unix"
)

// iopl level 3 grants unrestricted port access to the process.
const ioPrivilegeLevel = 3

// Hardware performs real port I/O through the processor's OUT instruction.
type Hardware struct{}

// Acquire raises the I/O privilege level of the process. Requires root or
// CAP_SYS_RAWIO. The elevation persists for the remaining lifetime of the
// process.
func (hw Hardware) Acquire() error {
	if err := unix.Iopl(ioPrivilegeLevel); err != nil {
		logger.Logf("portio", "iopl(%d): %v", ioPrivilegeLevel, err)
		return curated.Errorf(PrivilegeDenied, err)
	}
	return nil
}

// Write executes an OUTL instruction. Acquire() must have succeeded first or
// the instruction will fault and the kernel will kill the process.
func (hw Hardware) Write(port uint16, value uint32) {
	outl(port, value)
}

// implemented in outl_x86.s
func outl(port uint16, value uint32)
