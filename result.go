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

package main

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/bemasher/arfcn/arfcn"
	"github.com/bemasher/arfcn/csv"
	"github.com/bemasher/arfcn/gsm"
	"github.com/bemasher/arfcn/lte"
	"github.com/bemasher/arfcn/nr"
	"github.com/bemasher/arfcn/rat"
	"github.com/bemasher/arfcn/tdscdma"
	"github.com/bemasher/arfcn/umts"
)

// A Result associates a band match with the channel and technology it was
// computed for.
type Result struct {
	XMLName    xml.Name `json:"-" xml:"Result"`
	Channel    int      `json:"channel" xml:",attr"`
	Technology string   `json:"technology" xml:",attr"`
	arfcn.Info
}

func NewResults(channel int, t rat.Technology) (results []Result) {
	for _, info := range arfcn.GetInfo(channel, t) {
		results = append(results, Result{
			Channel:    channel,
			Technology: t.String(),
			Info:       info,
		})
	}
	return results
}

func (r Result) String() string {
	return fmt.Sprintf("{%s:%d %s}", r.Technology, r.Channel, r.Info)
}

var (
	_ csv.Recorder = Result{}
	_ csv.Recorder = BandRow{}
)

// ResultHeader names the columns of Result.Record.
var ResultHeader = []string{"channel", "technology", "band", "downlink", "uplink"}

func (r Result) Record() []string {
	return append([]string{strconv.Itoa(r.Channel), r.Technology}, r.Info.Record()...)
}

// BandRowHeader names the columns of BandRow.Record.
var BandRowHeader = []string{
	"band", "first", "last",
	"downlinkLow", "downlinkHigh", "uplinkLow", "uplinkHigh",
}

// A BandRow describes one band table entry by its channel range and the
// carriers at either end of it.
type BandRow struct {
	XMLName  xml.Name  `json:"-" xml:"Band"`
	Band     string    `json:"band" xml:",attr"`
	Channels rat.Range `json:"channels" xml:"-"`

	DownlinkLow  float64 `json:"downlinkLow" xml:",attr"`
	DownlinkHigh float64 `json:"downlinkHigh" xml:",attr"`
	UplinkLow    float64 `json:"uplinkLow" xml:",attr"`
	UplinkHigh   float64 `json:"uplinkHigh" xml:",attr"`
}

func (row BandRow) String() string {
	return fmt.Sprintf("{Band:%s Channels:%s Downlink:%s-%s Uplink:%s-%s}",
		row.Band, row.Channels,
		rat.FormatMHz(row.DownlinkLow), rat.FormatMHz(row.DownlinkHigh),
		rat.FormatMHz(row.UplinkLow), rat.FormatMHz(row.UplinkHigh),
	)
}

func (row BandRow) Record() []string {
	fmtFloat := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return []string{
		row.Band,
		strconv.Itoa(row.Channels.First),
		strconv.Itoa(row.Channels.Last),
		fmtFloat(row.DownlinkLow), fmtFloat(row.DownlinkHigh),
		fmtFloat(row.UplinkLow), fmtFloat(row.UplinkHigh),
	}
}

// BandRows lists the band table of t. NR bands produce one row per valid
// direction.
func BandRows(t rat.Technology) (rows []BandRow) {
	switch t {
	case rat.GSM:
		for _, b := range gsm.Bands() {
			f := b.Formula
			rows = append(rows, BandRow{
				Band: b.Name, Channels: b.Range,
				DownlinkLow: f.Downlink(b.Range.First), DownlinkHigh: f.Downlink(b.Range.Last),
				UplinkLow: f.Uplink(b.Range.First), UplinkHigh: f.Uplink(b.Range.Last),
			})
		}
	case rat.WCDMA:
		for _, b := range umts.Bands() {
			r := b.Downlink
			rows = append(rows, BandRow{
				Band: b.Name(), Channels: r,
				DownlinkLow: b.DownlinkFrequency(r.First), DownlinkHigh: b.DownlinkFrequency(r.Last),
				UplinkLow: b.UplinkFrequency(r.First), UplinkHigh: b.UplinkFrequency(r.Last),
			})
		}
	case rat.TDSCDMA:
		for _, b := range tdscdma.Bands() {
			lo, hi := tdscdma.Frequency(b.Range.First), tdscdma.Frequency(b.Range.Last)
			rows = append(rows, BandRow{
				Band: b.Name, Channels: b.Range,
				DownlinkLow: lo, DownlinkHigh: hi,
				UplinkLow: lo, UplinkHigh: hi,
			})
		}
	case rat.LTE:
		for _, b := range lte.Bands() {
			r := b.Downlink
			rows = append(rows, BandRow{
				Band: b.Name(), Channels: r,
				DownlinkLow: b.DownlinkFrequency(r.First), DownlinkHigh: b.DownlinkFrequency(r.Last),
				UplinkLow: b.UplinkFrequency(r.First), UplinkHigh: b.UplinkFrequency(r.Last),
			})
		}
	case rat.NR:
		for _, b := range nr.Bands() {
			if b.Downlink.Valid() {
				rows = append(rows, nrRow(b.Name(), b.Downlink, true))
			}
			if b.Uplink.Valid() {
				rows = append(rows, nrRow(b.Name(), b.Uplink, false))
			}
		}
	}

	return rows
}

func nrRow(name string, r rat.Range, downlink bool) BandRow {
	lo, _ := nr.ReferenceFrequency(r.First)
	hi, _ := nr.ReferenceFrequency(r.Last)

	row := BandRow{
		Band: name, Channels: r,
		DownlinkLow: rat.Unavailable, DownlinkHigh: rat.Unavailable,
		UplinkLow: rat.Unavailable, UplinkHigh: rat.Unavailable,
	}
	if downlink {
		row.DownlinkLow, row.DownlinkHigh = lo, hi
	} else {
		row.UplinkLow, row.UplinkHigh = lo, hi
	}

	return row
}
