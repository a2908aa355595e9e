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

package notifications

// Notice describes events that the user might want to know about.
type Notice string

// List of defined notifications.
const (
	// a write to battery-backed CMOS was attempted without first being
	// enabled
	NotifyBadCMOSWrite Notice = "Bad CMOS write"

	// the contents of the battery-backed CMOS have been loaded from or saved
	// to disk
	NotifyNVRAMLoaded Notice = "NVRAM loaded"
	NotifyNVRAMSaved  Notice = "NVRAM saved"

	// the output latch has changed the artwork/layout selection
	NotifyLayoutChanged Notice = "Layout changed"
)

// Notify is used for direct communication between the hardware and the
// front-end.
type Notify interface {
	Notify(notice Notice) error
}

// Discard is an implementation of Notify that ignores all notices.
var Discard Notify = discard{}

type discard struct{}

func (discard) Notify(_ Notice) error {
	return nil
}
