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

import (
	"strconv"

	"github.com/bemasher/arfcn/rat"
)

func init() {
	rat.Register(rat.LTE, rat.CalculatorFunc(Calculate))
}

// Band is one E-UTRA operating band from TS 36.101 table 5.7.3-1, keyed by
// its downlink EARFCN range. ULLow is rat.Unavailable for downlink-only
// bands.
type Band struct {
	Number   int
	Downlink rat.Range

	DLLow    float64
	DLOffset int
	ULLow    float64
	ULOffset int
}

func (b Band) Name() string {
	return strconv.Itoa(b.Number)
}

func (b Band) HasUplink() bool {
	return b.ULLow != rat.Unavailable
}

// DownlinkFrequency returns F_DL = F_DL_low + 0.1(N_DL - N_Offs-DL).
func (b Band) DownlinkFrequency(earfcn int) float64 {
	return b.DLLow + 0.1*float64(earfcn-b.DLOffset)
}

// UplinkFrequency returns the uplink carrier paired with a downlink EARFCN.
// Since N_UL = N_DL + (N_Offs-UL - N_Offs-DL), F_UL reduces to
// F_UL_low + 0.1(N_DL - N_Offs-DL).
func (b Band) UplinkFrequency(earfcn int) float64 {
	if !b.HasUplink() {
		return rat.Unavailable
	}
	return b.ULLow + 0.1*float64(earfcn-b.DLOffset)
}

// UplinkChannel returns the uplink EARFCN paired with a downlink EARFCN.
func (b Band) UplinkChannel(earfcn int) int {
	if !b.HasUplink() {
		return rat.Unavailable
	}
	return earfcn + b.ULOffset - b.DLOffset
}

// Lookup returns every band whose downlink range contains earfcn, ascending
// by range start.
func Lookup(earfcn int) (bands []Band) {
	for _, b := range bandTable {
		if b.Downlink.Contains(earfcn) {
			bands = append(bands, b)
		}
	}
	return bands
}

func Calculate(earfcn int) (infos []rat.Info) {
	for _, b := range Lookup(earfcn) {
		infos = append(infos, rat.Info{
			Band:     b.Name(),
			Downlink: b.DownlinkFrequency(earfcn),
			Uplink:   b.UplinkFrequency(earfcn),
		})
	}
	return infos
}

// Bands returns a copy of the band table.
func Bands() []Band {
	return append([]Band(nil), bandTable...)
}
