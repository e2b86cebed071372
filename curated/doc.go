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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like the
// Errorf() function in the fmt package except that the formatting pattern
// doubles as the identity of the error. The Is() function answers whether an
// error is a curated error with a specific pattern:
//
//	e := curated.Errorf("port access: %v", underlying)
//
//	if curated.Is(e, "port access: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, not just at the outermost layer.
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, in the package that creates them. See the portio package for
// examples.
//
// The Error() function implementation normalises the message chain so that
// adjacent duplicate parts are not repeated when errors are wrapped as they
// pass back up the call stack. Chains are considered to be composed of parts
// separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
