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

// Package logger is the central log for the emulation. Drivers report
// diagnostics here rather than returning errors. For example, a write to
// battery-backed memory that was not preceded by a write-enable is logged and
// otherwise ignored.
//
// Log entries are made with the Log() and Logf() functions. Both functions
// take a Permission argument which allows the caller to control whether the
// entry should be made. The Allow value can be used for entries that should
// always be made.
//
// Entries are a tag and a detail string. Consecutive identical entries are
// collapsed into a single entry with a repeat count.
package logger
