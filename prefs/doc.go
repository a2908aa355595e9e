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

// Package prefs facilitates the storage of preferential values in the cabinet
// system. It is a key/value store that is backed by a file on disk.
//
// Values are typed (Bool, Int, Float and String) and each value can have hook
// functions that are called immediately before and after the value is
// changed. Values are added to a Disk instance with a key. The key is the
// name of the value in the file on disk.
//
//	var p prefs.Bool
//	dsk, _ := prefs.NewDisk("prefs")
//	dsk.Add("mephisto.randomram", &p)
//	dsk.Load(true)
//
// The prefs file contains one value per line in the format "key :: value".
// Keys that are not added to the Disk instance are preserved in the file
// when the Disk is saved. This allows more than one Disk instance to share a
// file.
//
// Values can be overridden from the command line with the
// PushCommandLineStack() function. Overridden values are applied on the next
// call to Load().
package prefs
