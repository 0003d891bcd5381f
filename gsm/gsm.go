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

package gsm

import (
	"fmt"

	"github.com/bemasher/arfcn/rat"
)

func init() {
	rat.Register(rat.GSM, rat.CalculatorFunc(Calculate))
}

// Formula selects the band-specific ARFCN to carrier mapping from TS 45.005
// section 2.
type Formula int

const (
	PGSM Formula = iota
	EGSM
	GSM450
	GSM480
	GSM750
	GSM850
	DCS1800
	PCS1900
)

var formulaNames = [...]string{
	PGSM:    "P-GSM",
	EGSM:    "E-GSM",
	GSM450:  "GSM450",
	GSM480:  "GSM480",
	GSM750:  "GSM750",
	GSM850:  "GSM850",
	DCS1800: "DCS1800",
	PCS1900: "PCS1900",
}

func (f Formula) String() string {
	if f < 0 || int(f) >= len(formulaNames) {
		return fmt.Sprintf("Formula(%d)", int(f))
	}
	return formulaNames[f]
}

// Uplink returns F_UL for arfcn. E-GSM (also used by R-GSM) wraps the upper
// channels 955..1023 below 890 MHz.
func (f Formula) Uplink(arfcn int) float64 {
	n := float64(arfcn)

	switch f {
	case PGSM:
		return 890 + 0.2*n
	case EGSM:
		if arfcn >= 955 {
			return 890 + 0.2*(n-1024)
		}
		return 890 + 0.2*n
	case GSM450:
		return 450.6 + 0.2*(n-259)
	case GSM480:
		return 479 + 0.2*(n-306)
	case GSM750:
		return 747.2 + 0.2*(n-438)
	case GSM850:
		return 824.2 + 0.2*(n-128)
	case DCS1800:
		return 1710.2 + 0.2*(n-512)
	case PCS1900:
		return 1850.2 + 0.2*(n-512)
	}

	return rat.Unavailable
}

// Duplex returns the downlink to uplink separation in MHz.
func (f Formula) Duplex() float64 {
	switch f {
	case GSM450, GSM480:
		return 10
	case GSM750:
		return 30
	case PGSM, EGSM, GSM850:
		return 45
	case DCS1800:
		return 95
	case PCS1900:
		return 80
	}

	return 0
}

// Downlink returns F_DL = F_UL + duplex separation.
func (f Formula) Downlink(arfcn int) float64 {
	ul := f.Uplink(arfcn)
	if ul == rat.Unavailable {
		return rat.Unavailable
	}
	return ul + f.Duplex()
}

// Band is one named channel range. Several names may claim the same
// channels.
type Band struct {
	Name    string
	Range   rat.Range
	Formula Formula
}

// Lookup returns one entry per named band containing arfcn, ascending by
// range start. Overlapping bands are all returned.
func Lookup(arfcn int) (bands []Band) {
	for _, b := range bandTable {
		if b.Range.Contains(arfcn) {
			bands = append(bands, b)
		}
	}
	return bands
}

func Calculate(arfcn int) (infos []rat.Info) {
	for _, b := range Lookup(arfcn) {
		infos = append(infos, rat.Info{
			Band:     b.Name,
			Downlink: b.Formula.Downlink(arfcn),
			Uplink:   b.Formula.Uplink(arfcn),
		})
	}
	return infos
}

// Bands returns a copy of the band table.
func Bands() []Band {
	return append([]Band(nil), bandTable...)
}

// Sorted by range start, declaration order breaks ties.
var bandTable = []Band{
	{"E-GSM 900", rat.Range{First: 0, Last: 124}, EGSM},
	{"R-GSM 900", rat.Range{First: 0, Last: 124}, EGSM},
	{"P-GSM 900", rat.Range{First: 1, Last: 124}, PGSM},
	{"GSM 850", rat.Range{First: 128, Last: 251}, GSM850},
	{"GSM 450", rat.Range{First: 259, Last: 293}, GSM450},
	{"GSM 480", rat.Range{First: 306, Last: 340}, GSM480},
	{"GSM 750", rat.Range{First: 438, Last: 511}, GSM750},
	{"DCS 1800", rat.Range{First: 512, Last: 885}, DCS1800},
	{"PCS 1900", rat.Range{First: 512, Last: 810}, PCS1900},
	{"R-GSM 900", rat.Range{First: 955, Last: 1023}, EGSM},
	{"E-GSM 900", rat.Range{First: 975, Last: 1023}, EGSM},
}
