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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// A "mode" in this context is a special command line argument that when
// specified puts the program into a different mode of operation, in the
// manner of the go command (build, doc, get, test, etc.). Modes are declared
// with the AddSubModes() function; the first mode in the list is the default
// when no mode is named on the command line. All sub-mode comparisons are
// case insensitive.
//
//	md.AddSubModes("set", "tune", "version")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "SET":
//		...
//	}
//
// After selecting on Mode(), NewMode() starts a fresh flag layer for the
// selected mode and Parse() can be called again for any mode-specific flags
// and arguments.
package modalflag
