// ARFCN - Channel number to carrier frequency conversion for cellular radio.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package nr

import (
	"sort"

	"github.com/bemasher/arfcn/rat"
)

func init() {
	sort.SliceStable(bandTable, func(i, j int) bool {
		return bandTable[i].key() < bandTable[j].key()
	})
}

// Declared by band number, sorted by range start during init. Band columns
// are {Number, Uplink, Downlink}.
var bandTable = []Band{
	{1, rat.Range{First: 384000, Last: 396000}, rat.Range{First: 422000, Last: 434000}},
	{2, rat.Range{First: 370000, Last: 382000}, rat.Range{First: 386000, Last: 398000}},
	{3, rat.Range{First: 342000, Last: 357000}, rat.Range{First: 361000, Last: 376000}},
	{5, rat.Range{First: 164800, Last: 169800}, rat.Range{First: 173800, Last: 178800}},
	{7, rat.Range{First: 500000, Last: 514000}, rat.Range{First: 524000, Last: 538000}},
	{8, rat.Range{First: 176000, Last: 183000}, rat.Range{First: 185000, Last: 192000}},
	{12, rat.Range{First: 139800, Last: 143200}, rat.Range{First: 145800, Last: 149200}},
	{13, rat.Range{First: 155400, Last: 157400}, rat.Range{First: 149200, Last: 151200}},
	{14, rat.Range{First: 157600, Last: 159600}, rat.Range{First: 151600, Last: 153600}},
	{18, rat.Range{First: 163000, Last: 166000}, rat.Range{First: 172000, Last: 175000}},
	{20, rat.Range{First: 166400, Last: 172400}, rat.Range{First: 158200, Last: 164200}},
	{24, rat.Range{First: 325300, Last: 332100}, rat.Range{First: 305000, Last: 311800}},
	{25, rat.Range{First: 370000, Last: 383000}, rat.Range{First: 386000, Last: 399000}},
	{26, rat.Range{First: 162800, Last: 169800}, rat.Range{First: 171800, Last: 178800}},
	{28, rat.Range{First: 140600, Last: 149600}, rat.Range{First: 151600, Last: 160600}},
	{29, rat.NoRange, rat.Range{First: 143400, Last: 145600}},
	{30, rat.Range{First: 461000, Last: 463000}, rat.Range{First: 470000, Last: 472000}},
	{34, rat.Range{First: 402000, Last: 405000}, rat.Range{First: 402000, Last: 405000}},
	{38, rat.Range{First: 514000, Last: 524000}, rat.Range{First: 514000, Last: 524000}},
	{39, rat.Range{First: 376000, Last: 384000}, rat.Range{First: 376000, Last: 384000}},
	{40, rat.Range{First: 460000, Last: 480000}, rat.Range{First: 460000, Last: 480000}},
	{41, rat.Range{First: 499200, Last: 537999}, rat.Range{First: 499200, Last: 537999}},
	{46, rat.Range{First: 743334, Last: 795000}, rat.Range{First: 743334, Last: 795000}},
	{48, rat.Range{First: 636667, Last: 646666}, rat.Range{First: 636667, Last: 646666}},
	{50, rat.Range{First: 286400, Last: 303400}, rat.Range{First: 286400, Last: 303400}},
	{51, rat.Range{First: 285400, Last: 286400}, rat.Range{First: 285400, Last: 286400}},
	{53, rat.Range{First: 496700, Last: 499000}, rat.Range{First: 496700, Last: 499000}},
	{65, rat.Range{First: 384000, Last: 402000}, rat.Range{First: 422000, Last: 440000}},
	{66, rat.Range{First: 342000, Last: 356000}, rat.Range{First: 422000, Last: 440000}},
	{67, rat.NoRange, rat.Range{First: 147600, Last: 151600}},
	{70, rat.Range{First: 339000, Last: 342000}, rat.Range{First: 399000, Last: 404000}},
	{71, rat.Range{First: 132600, Last: 139600}, rat.Range{First: 123400, Last: 130400}},
	{74, rat.Range{First: 285400, Last: 294000}, rat.Range{First: 295000, Last: 303600}},
	{75, rat.NoRange, rat.Range{First: 286400, Last: 303400}},
	{76, rat.NoRange, rat.Range{First: 285400, Last: 286400}},
	{77, rat.Range{First: 620000, Last: 680000}, rat.Range{First: 620000, Last: 680000}},
	{78, rat.Range{First: 620000, Last: 653333}, rat.Range{First: 620000, Last: 653333}},
	{79, rat.Range{First: 693334, Last: 733333}, rat.Range{First: 693334, Last: 733333}},
	{80, rat.Range{First: 342000, Last: 357000}, rat.NoRange},
	{81, rat.Range{First: 176000, Last: 183000}, rat.NoRange},
	{82, rat.Range{First: 166400, Last: 172400}, rat.NoRange},
	{83, rat.Range{First: 140600, Last: 149600}, rat.NoRange},
	{84, rat.Range{First: 384000, Last: 396000}, rat.NoRange},
	{85, rat.Range{First: 139600, Last: 143200}, rat.Range{First: 145600, Last: 149200}},
	{86, rat.Range{First: 342000, Last: 356000}, rat.NoRange},
	{89, rat.Range{First: 164800, Last: 169800}, rat.NoRange},
	{90, rat.Range{First: 499200, Last: 538000}, rat.Range{First: 499200, Last: 538000}},
	{91, rat.Range{First: 166400, Last: 172400}, rat.Range{First: 285400, Last: 286400}},
	{92, rat.Range{First: 166400, Last: 172400}, rat.Range{First: 286400, Last: 303400}},
	{93, rat.Range{First: 176000, Last: 183000}, rat.Range{First: 285400, Last: 286400}},
	{94, rat.Range{First: 176000, Last: 183000}, rat.Range{First: 286400, Last: 303400}},
	{95, rat.Range{First: 402000, Last: 405000}, rat.NoRange},
	{96, rat.Range{First: 795000, Last: 875000}, rat.Range{First: 795000, Last: 875000}},
	{97, rat.Range{First: 460000, Last: 480000}, rat.NoRange},
	{98, rat.Range{First: 376000, Last: 384000}, rat.NoRange},
	{99, rat.Range{First: 325300, Last: 332100}, rat.NoRange},
	{100, rat.Range{First: 174880, Last: 176000}, rat.Range{First: 183880, Last: 185000}},
	{101, rat.Range{First: 380000, Last: 382000}, rat.Range{First: 380000, Last: 382000}},
	{102, rat.Range{First: 795000, Last: 828333}, rat.Range{First: 795000, Last: 828333}},
	{104, rat.Range{First: 828334, Last: 875000}, rat.Range{First: 828334, Last: 875000}},
	{257, rat.Range{First: 2054166, Last: 2104165}, rat.Range{First: 2054166, Last: 2104165}},
	{258, rat.Range{First: 2016667, Last: 2070832}, rat.Range{First: 2016667, Last: 2070832}},
	{259, rat.Range{First: 2270833, Last: 2337499}, rat.Range{First: 2270833, Last: 2337499}},
	{260, rat.Range{First: 2229166, Last: 2279165}, rat.Range{First: 2229166, Last: 2279165}},
	{261, rat.Range{First: 2070833, Last: 2084999}, rat.Range{First: 2070833, Last: 2084999}},
	{262, rat.Range{First: 2399166, Last: 2415832}, rat.Range{First: 2399166, Last: 2415832}},
	{263, rat.Range{First: 2562499, Last: 2795832}, rat.Range{First: 2562499, Last: 2795832}},
}
