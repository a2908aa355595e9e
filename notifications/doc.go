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

// Package notifications allow communication from the emulated hardware
// directly to the emulation front-end. This is useful, for example, to
// indicate to the user that the battery-backed CMOS has rejected a write.
//
// Notifications are transient and are not part of the emulation state. How
// they are presented, if at all, is up to the front-end.
package notifications
