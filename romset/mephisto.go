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

package romset

// the name of the region loaded into the 65C02 address space
const MephistoCPU = "maincpu"

const mephistoFlags = NotWorking | RequiresArtwork | ClickableArtwork

var mephistoRegions = []Region{{Name: MephistoCPU, Size: 0x10000}}

var noLibrary = BIOS{Name: "none", Description: "No Opening Library"}

var hg440 = BIOS{Name: "hg440", Description: "HG440 Opening Library"}

var hg550 = BIOS{Name: "hg550", Description: "HG550 Opening Library"}

var hg440File = File{
	Name: "hg440.rom", Region: MephistoCPU, Offset: 0x4000, Size: 0x4000,
	CRC: 0x81ffcdfd, SHA1: "b0f7bcc11d1e821daf92cde31e3446c8be0bbe19",
	BIOS: "hg440",
}

var hg550File = File{
	Name: "hg550.rom", Region: MephistoCPU, Offset: 0x4000, Size: 0x4000,
	CRC: 0x0359f13d, SHA1: "833cef8302ad8d283d3f95b1d325353c7e3b8614",
	BIOS: "hg550",
}

func init() {
	register(&Set{
		Name: "mm4", Year: 1987, Manufacturer: "Hegener & Glaser",
		Description: "Mephisto 4 Schachcomputer", Flags: mephistoFlags,
		Driver: "mephisto", Regions: mephistoRegions,
		Files: []File{
			{
				Name: "mephisto4.rom", Region: MephistoCPU, Offset: 0x8000, Size: 0x8000,
				CRC: 0xf68a4124, SHA1: "d1d03a9aacc291d5cb720d2ee2a209eeba13a36c",
			},
			hg440File,
		},
		BIOS: []BIOS{noLibrary, hg440},
	})

	register(&Set{
		Name: "mm2", Parent: "mm4", Year: 1984, Manufacturer: "Hegener & Glaser",
		Description: "Mephisto MM2 Schachcomputer", Flags: mephistoFlags,
		Driver: "mephisto", Regions: mephistoRegions,
		Files: []File{
			{
				Name: "mm2_1.bin", Region: MephistoCPU, Offset: 0x8000, Size: 0x4000,
				CRC: 0xe2daac82, SHA1: "c9fa59ca92362f8ee770733073bfa2ab8c7904ad",
			},
			{
				Name: "mm2_2.bin", Region: MephistoCPU, Offset: 0xc000, Size: 0x4000,
				CRC: 0x5e296939, SHA1: "badd2a377259cf738cd076d8fb245c3dc284c24d",
			},
		},
	})

	register(&Set{
		Name: "rebel5", Parent: "mm4", Year: 1986, Manufacturer: "Hegener & Glaser",
		Description: "Mephisto Rebell 5,0 Schachcomputer", Flags: mephistoFlags,
		Driver: "mephisto", Regions: mephistoRegions,
		Files: []File{
			{
				Name: "rebel5.rom", Region: MephistoCPU, Offset: 0x8000, Size: 0x8000,
				CRC: 0x8d02e1ef, SHA1: "9972c75936613bd68cfd3fe62bd222e90e8b1083",
			},
		},
	})

	register(&Set{
		Name: "mm4tk", Parent: "mm4", Year: 1987, Manufacturer: "Hegener & Glaser",
		Description: "Mephisto 4 Schachcomputer Turbo Kit + HG440", Flags: mephistoFlags,
		Driver: "mephisto", Regions: mephistoRegions,
		Files: []File{
			{
				Name: "mm4tk.rom", Region: MephistoCPU, Offset: 0x8000, Size: 0x8000,
				CRC: 0x51cb36a4, SHA1: "9e184b4e85bb721e794b88d8657ae8d2ff5a24af",
			},
			hg440File,
		},
		BIOS: []BIOS{noLibrary, hg440},
	})

	register(&Set{
		Name: "mm5", Parent: "mm4", Year: 1990, Manufacturer: "Hegener & Glaser",
		Description: "Mephisto 5.1 Schachcomputer", Flags: mephistoFlags,
		Driver: "mephisto", Regions: mephistoRegions,
		Files: []File{
			{
				Name: "mephisto5.rom", Region: MephistoCPU, Offset: 0x8000, Size: 0x8000,
				CRC: 0x89c3d9d2, SHA1: "77cd6f8eeb03c713249db140d2541e3264328048",
			},
			hg550File,
		},
		BIOS: []BIOS{noLibrary, hg550},
	})

	register(&Set{
		Name: "mm50", Parent: "mm4", Year: 1990, Manufacturer: "Hegener & Glaser",
		Description: "Mephisto 5.0 Schachcomputer", Flags: mephistoFlags,
		Driver: "mephisto", Regions: mephistoRegions,
		Files: []File{
			{
				Name: "mm50.rom", Region: MephistoCPU, Offset: 0x8000, Size: 0x8000,
				CRC: 0xfcfa7e6e, SHA1: "afeac3a8c957ba58cefaa27b11df974f6f2066da",
			},
			hg550File,
		},
		BIOS: []BIOS{noLibrary, hg550},
	})

	register(&Set{
		Name: "mm5tk", Parent: "mm4", Year: 1990, Manufacturer: "Hegener & Glaser",
		Description: "Mephisto 5.1 Schachcomputer Turbo Kit + HG550", Flags: mephistoFlags,
		Driver: "mephisto", Regions: mephistoRegions,
		Files: []File{
			{
				Name: "mephisto5.rom", Region: MephistoCPU, Offset: 0x8000, Size: 0x8000,
				CRC: 0x89c3d9d2, SHA1: "77cd6f8eeb03c713249db140d2541e3264328048",
				BadDump: true,
			},
			hg550File,
		},
		BIOS: []BIOS{noLibrary, hg550},
	})
}
