// Package gen produces random channel numbers that fall inside the band
// tables, for property tests.
package gen

import (
	"math/rand"

	"github.com/bemasher/arfcn/gsm"
	"github.com/bemasher/arfcn/lte"
	"github.com/bemasher/arfcn/nr"
	"github.com/bemasher/arfcn/rat"
	"github.com/bemasher/arfcn/tdscdma"
	"github.com/bemasher/arfcn/umts"
)

// Ranges returns every channel range in the band table of t.
func Ranges(t rat.Technology) (ranges []rat.Range) {
	switch t {
	case rat.GSM:
		for _, b := range gsm.Bands() {
			ranges = append(ranges, b.Range)
		}
	case rat.WCDMA:
		for _, b := range umts.Bands() {
			ranges = append(ranges, b.Downlink)
		}
	case rat.TDSCDMA:
		for _, b := range tdscdma.Bands() {
			ranges = append(ranges, b.Range)
		}
	case rat.LTE:
		for _, b := range lte.Bands() {
			ranges = append(ranges, b.Downlink)
		}
	case rat.NR:
		for _, b := range nr.Bands() {
			for _, r := range []rat.Range{b.Downlink, b.Uplink} {
				if r.Valid() {
					ranges = append(ranges, r)
				}
			}
		}
	}

	return ranges
}

// Channel picks a range of t uniformly, then a channel inside it uniformly.
// It returns false if t has no table.
func Channel(r *rand.Rand, t rat.Technology) (int, bool) {
	ranges := Ranges(t)
	if len(ranges) == 0 {
		return 0, false
	}

	rng := ranges[r.Intn(len(ranges))]
	return rng.First + r.Intn(rng.Last-rng.First+1), true
}

// Unallocated returns a channel number in 0..limit that no range of t
// contains, or false after a bounded number of attempts.
func Unallocated(r *rand.Rand, t rat.Technology, limit int) (int, bool) {
	ranges := Ranges(t)

search:
	for attempt := 0; attempt < 1024; attempt++ {
		n := r.Intn(limit + 1)
		for _, rng := range ranges {
			if rng.Contains(n) {
				continue search
			}
		}
		return n, true
	}

	return 0, false
}
