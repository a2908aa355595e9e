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

// Regions used by the Wolf-unit sets.
const (
	WolfUnitProgram = "maincpu"
	WolfUnitSound   = "dcs"
	WolfUnitGfx     = "gfxrom"
)

var wolfUnitRegions = []Region{
	{Name: WolfUnitProgram, Size: 0x100000},
	{Name: WolfUnitSound, Size: 0x1000000},
	{Name: WolfUnitGfx, Size: 0x2000000},
}

// the Wolf-unit sets do not list individual files. the driver only requires
// the region layout
func init() {
	register(&Set{
		Name: "mk3", Year: 1994, Manufacturer: "Midway",
		Description: "Mortal Kombat 3 (rev 2.1)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "mk3r20", Parent: "mk3", Year: 1994, Manufacturer: "Midway",
		Description: "Mortal Kombat 3 (rev 2.0)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "mk3r10", Parent: "mk3", Year: 1994, Manufacturer: "Midway",
		Description: "Mortal Kombat 3 (rev 1.0)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "umk3", Year: 1994, Manufacturer: "Midway",
		Description: "Ultimate Mortal Kombat 3 (rev 1.2)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "umk3r11", Parent: "umk3", Year: 1994, Manufacturer: "Midway",
		Description: "Ultimate Mortal Kombat 3 (rev 1.1)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "wwfmania", Year: 1995, Manufacturer: "Midway",
		Description: "WWF: Wrestlemania (rev 1.30 08/10/95)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "openice", Year: 1995, Manufacturer: "Midway",
		Description: "2 On 2 Open Ice Challenge (rev 1.21)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "nbahangt", Year: 1996, Manufacturer: "Midway",
		Description: "NBA Hangtime (rev L1.1 04/16/96)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
	register(&Set{
		Name: "rmpgwt", Year: 1997, Manufacturer: "Midway",
		Description: "Rampage: World Tour (rev 1.3)",
		Driver:      "wolfunit", Regions: wolfUnitRegions,
	})
}
