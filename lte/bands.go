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

package lte

import "github.com/bemasher/arfcn/rat"

const noUplink = rat.Unavailable

// TDD bands share one carrier in both directions, so their uplink columns
// repeat the downlink ones.
var bandTable = []Band{
	{1, rat.Range{First: 0, Last: 599}, 2110, 0, 1920, 18000},
	{2, rat.Range{First: 600, Last: 1199}, 1930, 600, 1850, 18600},
	{3, rat.Range{First: 1200, Last: 1949}, 1805, 1200, 1710, 19200},
	{4, rat.Range{First: 1950, Last: 2399}, 2110, 1950, 1710, 19950},
	{5, rat.Range{First: 2400, Last: 2649}, 869, 2400, 824, 20400},
	{6, rat.Range{First: 2650, Last: 2749}, 875, 2650, 830, 20650},
	{7, rat.Range{First: 2750, Last: 3449}, 2620, 2750, 2500, 20750},
	{8, rat.Range{First: 3450, Last: 3799}, 925, 3450, 880, 21450},
	{9, rat.Range{First: 3800, Last: 4149}, 1844.9, 3800, 1749.9, 21800},
	{10, rat.Range{First: 4150, Last: 4749}, 2110, 4150, 1710, 22150},
	{11, rat.Range{First: 4750, Last: 4949}, 1475.9, 4750, 1427.9, 22750},
	{12, rat.Range{First: 5010, Last: 5179}, 729, 5010, 699, 23010},
	{13, rat.Range{First: 5180, Last: 5279}, 746, 5180, 777, 23180},
	{14, rat.Range{First: 5280, Last: 5379}, 758, 5280, 788, 23280},
	{17, rat.Range{First: 5730, Last: 5849}, 734, 5730, 704, 23730},
	{18, rat.Range{First: 5850, Last: 5999}, 860, 5850, 815, 23850},
	{19, rat.Range{First: 6000, Last: 6149}, 875, 6000, 830, 24000},
	{20, rat.Range{First: 6150, Last: 6449}, 791, 6150, 832, 24150},
	{21, rat.Range{First: 6450, Last: 6599}, 1495.9, 6450, 1447.9, 24450},
	{22, rat.Range{First: 6600, Last: 7399}, 3510, 6600, 3410, 24600},
	{23, rat.Range{First: 7500, Last: 7699}, 2180, 7500, 2000, 25500},
	{24, rat.Range{First: 7700, Last: 8039}, 1525, 7700, 1626.5, 25700},
	{25, rat.Range{First: 8040, Last: 8689}, 1930, 8040, 1850, 26040},
	{26, rat.Range{First: 8690, Last: 9039}, 859, 8690, 814, 26690},
	{27, rat.Range{First: 9040, Last: 9209}, 852, 9040, 807, 27040},
	{28, rat.Range{First: 9210, Last: 9659}, 758, 9210, 703, 27210},
	{29, rat.Range{First: 9660, Last: 9769}, 717, 9660, noUplink, noUplink},
	{30, rat.Range{First: 9770, Last: 9869}, 2350, 9770, 2305, 27660},
	{31, rat.Range{First: 9870, Last: 9919}, 462.5, 9870, 452.5, 27760},
	{32, rat.Range{First: 9920, Last: 10359}, 1452, 9920, noUplink, noUplink},
	{33, rat.Range{First: 36000, Last: 36199}, 1900, 36000, 1900, 36000},
	{34, rat.Range{First: 36200, Last: 36349}, 2010, 36200, 2010, 36200},
	{35, rat.Range{First: 36350, Last: 36949}, 1850, 36350, 1850, 36350},
	{36, rat.Range{First: 36950, Last: 37549}, 1930, 36950, 1930, 36950},
	{37, rat.Range{First: 37550, Last: 37749}, 1910, 37550, 1910, 37550},
	{38, rat.Range{First: 37750, Last: 38249}, 2570, 37750, 2570, 37750},
	{39, rat.Range{First: 38250, Last: 38649}, 1880, 38250, 1880, 38250},
	{40, rat.Range{First: 38650, Last: 39649}, 2300, 38650, 2300, 38650},
	{41, rat.Range{First: 39650, Last: 41589}, 2496, 39650, 2496, 39650},
	{42, rat.Range{First: 41590, Last: 43589}, 3400, 41590, 3400, 41590},
	{43, rat.Range{First: 43590, Last: 45589}, 3600, 43590, 3600, 43590},
	{44, rat.Range{First: 45590, Last: 46589}, 703, 45590, 703, 45590},
	{45, rat.Range{First: 46590, Last: 46789}, 1447, 46590, 1447, 46590},
	{46, rat.Range{First: 46790, Last: 54539}, 5150, 46790, 5150, 46790},
	{47, rat.Range{First: 54540, Last: 55239}, 5855, 54540, 5855, 54540},
	{48, rat.Range{First: 55240, Last: 56739}, 3550, 55240, 3550, 55240},
	{49, rat.Range{First: 56740, Last: 58239}, 3550, 56740, 3550, 56740},
	{50, rat.Range{First: 58240, Last: 59089}, 1432, 58240, 1432, 58240},
	{51, rat.Range{First: 59090, Last: 59139}, 1427, 59090, 1427, 59090},
	{52, rat.Range{First: 59140, Last: 60139}, 3300, 59140, 3300, 59140},
	{53, rat.Range{First: 60140, Last: 60254}, 2483.5, 60140, 2483.5, 60140},
	{54, rat.Range{First: 60255, Last: 60304}, 1670, 60255, 1670, 60255},
	{65, rat.Range{First: 65536, Last: 66435}, 2110, 65536, 1920, 131072},
	{66, rat.Range{First: 66436, Last: 67335}, 2110, 66436, 1710, 131972},
	{67, rat.Range{First: 67336, Last: 67535}, 738, 67336, noUplink, noUplink},
	{68, rat.Range{First: 67536, Last: 67835}, 753, 67536, 698, 132672},
	{69, rat.Range{First: 67836, Last: 68335}, 2570, 67836, noUplink, noUplink},
	{70, rat.Range{First: 68336, Last: 68585}, 1995, 68336, 1695, 132972},
	{71, rat.Range{First: 68586, Last: 68935}, 617, 68586, 663, 133122},
	{72, rat.Range{First: 68936, Last: 68985}, 461, 68936, 451, 133472},
	{73, rat.Range{First: 68986, Last: 69035}, 460, 68986, 450, 133522},
	{74, rat.Range{First: 69036, Last: 69465}, 1475, 69036, 1427, 133572},
	{75, rat.Range{First: 69466, Last: 70315}, 1432, 69466, noUplink, noUplink},
	{76, rat.Range{First: 70316, Last: 70365}, 1427, 70316, noUplink, noUplink},
	{85, rat.Range{First: 70366, Last: 70545}, 728, 70366, 698, 134002},
	{87, rat.Range{First: 70546, Last: 70595}, 420, 70546, 410, 134182},
	{88, rat.Range{First: 70596, Last: 70645}, 422, 70596, 412, 134232},
}
