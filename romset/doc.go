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

// Package romset describes the ROM sets for every machine supported by the
// emulator and loads ROM data from disk.
//
// A Set describes the memory regions of a machine and the files that are
// loaded into those regions. Files are identified by their CRC32 and SHA1
// hashes and the loader will reject any file whose hashes do not match,
// unless the file is known to be a bad dump.
//
// Some sets have optional files that are selected by BIOS name. The Mephisto
// chess computers for example can be fitted with an opening library module.
// Files with an empty BIOS field are always loaded.
package romset
