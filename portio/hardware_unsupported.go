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

//go:build !linux || (!amd64 && !386)
// +build !linux !amd64,!386

package portio

import (
	"fmt"
	"runtime"

	"github.com/clockport/clockport/curated"
)

// Hardware on this platform is a guarded rejection path. There is no
// user-mode route to the I/O ports so Acquire() always refuses and no
// hardware access of any kind takes place.
type Hardware struct{}

// Acquire always fails with the UnsupportedPlatform error.
func (hw Hardware) Acquire() error {
	return curated.Errorf(UnsupportedPlatform, fmt.Sprintf("no user-mode port access on %s/%s", runtime.GOOS, runtime.GOARCH))
}

// Write is never reached on this platform. Acquire() always fails first and
// callers honouring the Ports contract will not call Write() after a failed
// Acquire().
func (hw Hardware) Write(port uint16, value uint32) {
}
