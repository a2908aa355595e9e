// This file is part of Cabinet.
//
// Cabinet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cabinet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cabinet.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, in the same way as fmt.Errorf().
//
// The pattern string given to Errorf() identifies the error. Sentinal
// patterns should be stored as const strings, suitably named and commented,
// and tested for with the Is() and Has() functions:
//
//	const BadROMSize = "rom: %s: size is %d bytes, expected %d"
//
//	if curated.Is(err, BadROMSize) {
//		...
//	}
//
// Has() checks the entire chain of wrapped curated errors whereas Is() only
// checks the outermost error. IsAny() answers whether the error was created by
// Errorf() at all. We can think of the difference as being between 'expected'
// and 'unexpected' errors.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. This alleviates the problem of when and how to wrap errors
// as they move up the call stack. A chain is thought of as parts separated by
// the sub-string ": ". For example:
//
//	nvram: nvram: file is the wrong size
//
// is normalised to:
//
//	nvram: file is the wrong size
package curated
