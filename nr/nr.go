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
	"strconv"

	"github.com/bemasher/arfcn/rat"
)

func init() {
	rat.Register(rat.NR, rat.CalculatorFunc(Calculate))
}

// Band is one NR operating band from TS 38.101-1 table 5.4.2.3-1 and
// 38.101-2 table 5.4.2.3-1. Supplementary downlink bands carry NoRange as
// their uplink, supplementary uplink bands carry NoRange as their downlink.
type Band struct {
	Number   int
	Uplink   rat.Range
	Downlink rat.Range
}

func (b Band) Name() string {
	return "n" + strconv.Itoa(b.Number)
}

// Contains reports whether either direction of the band holds nrarfcn.
func (b Band) Contains(nrarfcn int) bool {
	return b.Downlink.Contains(nrarfcn) || b.Uplink.Contains(nrarfcn)
}

// key orders the table: the downlink start, or the uplink start for
// supplementary uplink bands.
func (b Band) key() int {
	if b.Downlink.Valid() {
		return b.Downlink.First
	}
	return b.Uplink.First
}

// Lookup returns every band with a range containing nrarfcn, in table order.
func Lookup(nrarfcn int) (bands []Band) {
	for _, b := range bandTable {
		if b.Contains(nrarfcn) {
			bands = append(bands, b)
		}
	}
	return bands
}

// Calculate resolves the raster tier first; a channel outside the global
// raster yields nothing. Each direction is reported only if nrarfcn lies in
// that direction's range.
func Calculate(nrarfcn int) (infos []rat.Info) {
	f, ok := ReferenceFrequency(nrarfcn)
	if !ok {
		return nil
	}

	for _, b := range Lookup(nrarfcn) {
		info := rat.Info{
			Band:     b.Name(),
			Downlink: rat.Unavailable,
			Uplink:   rat.Unavailable,
		}
		if b.Downlink.Contains(nrarfcn) {
			info.Downlink = f
		}
		if b.Uplink.Contains(nrarfcn) {
			info.Uplink = f
		}
		infos = append(infos, info)
	}

	return infos
}

// Bands returns a copy of the band table.
func Bands() []Band {
	return append([]Band(nil), bandTable...)
}
