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

import "github.com/bemasher/arfcn/rat"

// MaxARFCN is the highest NR-ARFCN of the global frequency raster.
const MaxARFCN = 3279165

// Raster is one tier of the NR global frequency raster, TS 38.104 table
// 5.4.2.1-1.
type Raster struct {
	Range rat.Range

	StepKHz       int     // ΔF_Global
	RefOffset     float64 // F_REF-Offs in MHz
	ChannelOffset int     // N_REF-Offs
}

// Frequency returns F_REF = F_REF-Offs + ΔF_Global (N_REF - N_REF-Offs).
func (r Raster) Frequency(nrarfcn int) float64 {
	return r.RefOffset + float64(r.StepKHz)/1000*float64(nrarfcn-r.ChannelOffset)
}

var rasters = [...]Raster{
	{rat.Range{First: 0, Last: 599999}, 5, 0, 0},
	{rat.Range{First: 600000, Last: 2016666}, 15, 3000, 600000},
	{rat.Range{First: 2016667, Last: MaxARFCN}, 60, 24250.08, 2016667},
}

// RasterFor returns the tier containing nrarfcn.
func RasterFor(nrarfcn int) (Raster, bool) {
	for _, r := range rasters {
		if r.Range.Contains(nrarfcn) {
			return r, true
		}
	}
	return Raster{}, false
}

// ReferenceFrequency converts an NR-ARFCN to MHz. It reports false outside
// 0..MaxARFCN.
func ReferenceFrequency(nrarfcn int) (float64, bool) {
	r, ok := RasterFor(nrarfcn)
	if !ok {
		return 0, false
	}
	return r.Frequency(nrarfcn), true
}
