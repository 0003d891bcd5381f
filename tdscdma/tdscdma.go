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

package tdscdma

import "github.com/bemasher/arfcn/rat"

func init() {
	rat.Register(rat.TDSCDMA, rat.CalculatorFunc(Calculate))
}

// Band is one UTRA TDD 1.28 Mcps channel range from TS 25.102. Bands A and B
// span two ranges each.
type Band struct {
	Name  string
	Range rat.Range
}

// Frequency returns F = N / 5, shared by both directions since TD-SCDMA is
// unpaired.
func Frequency(uarfcn int) float64 {
	return float64(uarfcn) / 5.0
}

// Lookup returns every band containing uarfcn, ascending by range start.
func Lookup(uarfcn int) (bands []Band) {
	for _, b := range bandTable {
		if b.Range.Contains(uarfcn) {
			bands = append(bands, b)
		}
	}
	return bands
}

func Calculate(uarfcn int) (infos []rat.Info) {
	for _, b := range Lookup(uarfcn) {
		f := Frequency(uarfcn)
		infos = append(infos, rat.Info{Band: b.Name, Downlink: f, Uplink: f})
	}
	return infos
}

// Bands returns a copy of the band table.
func Bands() []Band {
	return append([]Band(nil), bandTable...)
}

// Ranges around 9500..9650 overlap between A, B, C and F as allocated.
var bandTable = []Band{
	{"B", rat.Range{First: 9250, Last: 9550}},
	{"F", rat.Range{First: 9400, Last: 9600}},
	{"A", rat.Range{First: 9500, Last: 9600}},
	{"C", rat.Range{First: 9550, Last: 9650}},
	{"B", rat.Range{First: 9650, Last: 9950}},
	{"A", rat.Range{First: 10050, Last: 10125}},
	{"E", rat.Range{First: 11500, Last: 12000}},
	{"D", rat.Range{First: 12850, Last: 13100}},
}
