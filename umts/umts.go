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

package umts

import (
	"strconv"

	"github.com/bemasher/arfcn/rat"
)

func init() {
	rat.Register(rat.WCDMA, rat.CalculatorFunc(Calculate))
}

// Band is one UTRA FDD operating band from TS 25.101 tables 5.1 and 5.2,
// general channels only. Downlink and uplink UARFCN ranges are indexed in
// parallel: the n-th downlink channel pairs with the n-th uplink channel.
type Band struct {
	Number   int
	Downlink rat.Range
	Uplink   rat.Range

	DLOffset float64
	ULOffset float64
}

func (b Band) Name() string {
	return strconv.Itoa(b.Number)
}

// UplinkChannel returns the uplink UARFCN paired with a downlink UARFCN.
func (b Band) UplinkChannel(uarfcn int) int {
	return b.Uplink.First + (uarfcn - b.Downlink.First)
}

// DownlinkFrequency returns F_DL = F_DL_Offset + 0.2 N_DL.
func (b Band) DownlinkFrequency(uarfcn int) float64 {
	return b.DLOffset + 0.2*float64(uarfcn)
}

// UplinkFrequency returns F_UL = F_UL_Offset + 0.2 N_UL for the uplink
// channel paired with a downlink UARFCN.
func (b Band) UplinkFrequency(uarfcn int) float64 {
	return b.ULOffset + 0.2*float64(b.UplinkChannel(uarfcn))
}

// Lookup returns every band whose downlink range contains uarfcn, ascending
// by range start.
func Lookup(uarfcn int) (bands []Band) {
	for _, b := range bandTable {
		if b.Downlink.Contains(uarfcn) {
			bands = append(bands, b)
		}
	}
	return bands
}

func Calculate(uarfcn int) (infos []rat.Info) {
	for _, b := range Lookup(uarfcn) {
		infos = append(infos, rat.Info{
			Band:     b.Name(),
			Downlink: b.DownlinkFrequency(uarfcn),
			Uplink:   b.UplinkFrequency(uarfcn),
		})
	}
	return infos
}

// Bands returns a copy of the band table.
func Bands() []Band {
	return append([]Band(nil), bandTable...)
}

// Sorted by downlink range start.
var bandTable = []Band{
	{19, rat.Range{First: 712, Last: 763}, rat.Range{First: 312, Last: 363}, 735, 770},
	{21, rat.Range{First: 862, Last: 912}, rat.Range{First: 462, Last: 512}, 1326, 1358},
	{3, rat.Range{First: 1162, Last: 1513}, rat.Range{First: 937, Last: 1288}, 1575, 1525},
	{4, rat.Range{First: 1537, Last: 1738}, rat.Range{First: 1312, Last: 1513}, 1805, 1450},
	{7, rat.Range{First: 2237, Last: 2563}, rat.Range{First: 2012, Last: 2338}, 2175, 2100},
	{8, rat.Range{First: 2937, Last: 3088}, rat.Range{First: 2712, Last: 2863}, 340, 340},
	{10, rat.Range{First: 3112, Last: 3388}, rat.Range{First: 2887, Last: 3163}, 1490, 1135},
	{11, rat.Range{First: 3712, Last: 3787}, rat.Range{First: 3487, Last: 3562}, 736, 733},
	{12, rat.Range{First: 3842, Last: 3903}, rat.Range{First: 3617, Last: 3678}, -37, -22},
	{13, rat.Range{First: 4017, Last: 4043}, rat.Range{First: 3792, Last: 3818}, -55, 21},
	{14, rat.Range{First: 4117, Last: 4143}, rat.Range{First: 3892, Last: 3918}, -63, 12},
	{5, rat.Range{First: 4357, Last: 4458}, rat.Range{First: 4132, Last: 4233}, 0, 0},
	{6, rat.Range{First: 4387, Last: 4413}, rat.Range{First: 4162, Last: 4188}, 0, 0},
	{20, rat.Range{First: 4512, Last: 4638}, rat.Range{First: 4287, Last: 4413}, -109, -23},
	{22, rat.Range{First: 4662, Last: 5038}, rat.Range{First: 4437, Last: 4813}, 2580, 2525},
	{25, rat.Range{First: 5112, Last: 5413}, rat.Range{First: 4887, Last: 5188}, 910, 875},
	{26, rat.Range{First: 5762, Last: 5913}, rat.Range{First: 5537, Last: 5688}, -291, -291},
	{9, rat.Range{First: 9237, Last: 9387}, rat.Range{First: 8762, Last: 8912}, 0, 0},
	{2, rat.Range{First: 9662, Last: 9938}, rat.Range{First: 9262, Last: 9538}, 0, 0},
	{1, rat.Range{First: 10562, Last: 10838}, rat.Range{First: 9612, Last: 9888}, 0, 0},
}
