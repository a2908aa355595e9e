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

// Package environment provides the context for an emulated machine: its
// preferences, its source of random numbers and where notices intended for the
// user are sent.
//
// The Environment type implements the logger.Permission interface. Machines
// that are not the main emulation do not add entries to the central log.
package environment
