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

//go:build windows
// +build windows

// Package tuner is not available under windows. The platform has no
// user-mode port access for the engine to drive in any case.
package tuner

import (
	"github.com/clockport/clockport/curated"
	"github.com/clockport/clockport/multiplier"
)

// Tuner is a single interactive tuning session.
type Tuner struct {
}

// NewTuner creates a tuning session driving the supplied engine.
func NewTuner(engine *multiplier.Engine) *Tuner {
	return &Tuner{}
}

// Run always fails on windows.
func (tn *Tuner) Run(core int, mult int, min int, max int) error {
	return curated.Errorf("tuner: %v", "interactive tuning not available on windows")
}
