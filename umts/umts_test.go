package umts

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParallelIndexing(t *testing.T) {
	infos := Calculate(10562)
	if len(infos) != 1 {
		t.Fatalf("Expected 1 match got %+v\n", infos)
	}

	// Uplink from channel 9612, not 10562.
	if !near(infos[0].Uplink, 0.2*9612) {
		t.Fatalf("Expected uplink %f got %f\n", 0.2*9612, infos[0].Uplink)
	}
	if !near(infos[0].Downlink, 2112.4) {
		t.Fatalf("Expected downlink 2112.4 got %f\n", infos[0].Downlink)
	}

	if n := Lookup(10700)[0].UplinkChannel(10700); n != 9750 {
		t.Fatalf("Expected uplink uarfcn 9750 got %d\n", n)
	}
}

func TestKnownCarriers(t *testing.T) {
	for _, tc := range []struct {
		uarfcn int
		band   string
		dl, ul float64
	}{
		{10700, "1", 2140.0, 1950.0},
		{9800, "2", 1960.0, 1880.0},
		{1162, "3", 1807.4, 1712.4},
		{3012, "8", 942.4, 897.4},
		{4400, "5", 880.0, 835.0},
		{2937, "8", 927.4, 882.4},
		{3842, "12", 731.4, 701.4},
		{5762, "26", 861.4, 816.4},
	} {
		infos := Calculate(tc.uarfcn)
		if len(infos) == 0 {
			t.Fatalf("%d: no match\n", tc.uarfcn)
		}

		info := infos[0]
		if info.Band != tc.band {
			t.Fatalf("%d: expected band %s got %s\n", tc.uarfcn, tc.band, info.Band)
		}
		if !near(info.Downlink, tc.dl) || !near(info.Uplink, tc.ul) {
			t.Fatalf("%d: expected %f/%f got %+v\n", tc.uarfcn, tc.dl, tc.ul, info)
		}
	}
}

func TestOverlap(t *testing.T) {
	// Band VI sits inside band V.
	infos := Calculate(4400)
	if len(infos) != 2 || infos[0].Band != "5" || infos[1].Band != "6" {
		t.Fatalf("Expected bands 5 and 6 got %+v\n", infos)
	}
}

func TestNoMatch(t *testing.T) {
	for _, uarfcn := range []int{-1, 0, 711, 9561, 10839, 16383} {
		if infos := Calculate(uarfcn); len(infos) != 0 {
			t.Fatalf("%d: expected no match got %+v\n", uarfcn, infos)
		}
	}
}

func TestRangeCoverage(t *testing.T) {
	for _, b := range Bands() {
		for _, n := range []int{b.Downlink.First, b.Downlink.Last} {
			found := false
			for _, info := range Calculate(n) {
				found = found || info.Band == b.Name()
			}
			if !found {
				t.Fatalf("band %d: uarfcn %d did not resolve\n", b.Number, n)
			}
		}
	}
}

func TestTable(t *testing.T) {
	bands := Bands()
	for idx, b := range bands {
		if !b.Downlink.Valid() || !b.Uplink.Valid() {
			t.Fatalf("band %d: invalid range\n", b.Number)
		}
		if b.Downlink.Last-b.Downlink.First != b.Uplink.Last-b.Uplink.First {
			t.Fatalf("band %d: downlink %s and uplink %s differ in width\n", b.Number, b.Downlink, b.Uplink)
		}
		if b.UplinkChannel(b.Downlink.Last) != b.Uplink.Last {
			t.Fatalf("band %d: last downlink does not pair with last uplink\n", b.Number)
		}
		if idx > 0 && b.Downlink.First < bands[idx-1].Downlink.First {
			t.Fatalf("band %d out of order\n", b.Number)
		}
	}
}
