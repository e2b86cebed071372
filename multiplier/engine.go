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

package multiplier

import (
	"sync"

	"github.com/clockport/clockport/chipset"
	"github.com/clockport/clockport/curated"
	"github.com/clockport/clockport/logger"
	"github.com/clockport/clockport/portio"
)

// the chipset protocol is stateful across the index/data pair. the address
// write selects the register that the following data write targets, so the
// pair must never interleave with another goroutine's pair. the ports are a
// process-wide resource which is why the lock is too.
var crit sync.Mutex

// Engine commits multiplier settings through a Ports capability. The zero
// value is not useful; use NewEngine().
type Engine struct {
	ports portio.Ports
}

// NewEngine creates an engine that writes through the supplied Ports
// capability. For real hardware use portio.Hardware{}.
func NewEngine(ports portio.Ports) *Engine {
	return &Engine{ports: ports}
}

// SetCoreMultiplier applies a clock multiplier to a single CPU core.
//
// The engine does not validate the arguments. Callers are responsible for
// keeping core and multiplier inside the ranges accepted by the platform;
// see the command line contract in the main package.
//
// On failure to acquire port access no write is issued at all and the
// returned error can be inspected with curated.Has() for the
// portio.PrivilegeDenied and portio.UnsupportedPlatform patterns. The engine
// never terminates the process; what to do about a failure is the caller's
// decision.
func (eng *Engine) SetCoreMultiplier(core int, mult int) error {
	set := chipset.Setting{Core: core, Multiplier: mult}

	// privilege is acquired immediately before use. a second acquisition by
	// the same process is cheap and keeps the engine free of state between
	// calls
	if err := eng.ports.Acquire(); err != nil {
		return curated.Errorf("multiplier: %v", err)
	}

	crit.Lock()
	defer crit.Unlock()

	// index first, data second. the order is dictated by the protocol
	eng.ports.Write(chipset.PortIndex, set.Address())
	eng.ports.Write(chipset.PortData, set.Value())

	logger.Logf("multiplier", "%s", set.String())

	return nil
}

// Set is a convenience for embedding callers that have no use for an
// explicit Engine. It commits the change through the real hardware
// capability.
func Set(core int, mult int) error {
	return NewEngine(portio.Hardware{}).SetCoreMultiplier(core, mult)
}
