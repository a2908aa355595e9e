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

// Package paths contains functions to prepare paths to cabinet resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the CMOS file for the umk3 machine.
//
//	d, err := paths.ResourcePath("nvram", "umk3")
//
// For development builds the base path is ".cabinet" in the current
// directory. For release builds (built with the "release" tag) the base path
// is "cabinet" in the user's config directory, as reported by
// os.UserConfigDir().
//
// In both cases the sub-path (but not the file) is created if it does not
// already exist.
package paths
