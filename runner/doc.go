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

// Package runner owns a cabinet on a goroutine of its own. Trace commands and
// any other access to the cabinet are passed to the goroutine as requests, so
// commands are always executed in the order they are submitted and the
// cabinet is never touched by two goroutines at once.
//
// The lifetime of the goroutine is managed with a tomb.
package runner
