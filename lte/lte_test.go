package lte

import (
	"math"
	"testing"

	"github.com/bemasher/arfcn/rat"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBand3(t *testing.T) {
	infos := Calculate(1300)
	if len(infos) != 1 {
		t.Fatalf("Expected 1 match got %d: %+v\n", len(infos), infos)
	}

	info := infos[0]
	if info.Band != "3" {
		t.Fatalf("Expected band 3 got %q\n", info.Band)
	}
	if !near(info.Downlink, 1815.0) {
		t.Fatalf("Expected downlink 1815.0 got %f\n", info.Downlink)
	}
	if !near(info.Uplink, 1720.0) {
		t.Fatalf("Expected uplink 1720.0 got %f\n", info.Uplink)
	}
}

func TestKnownCarriers(t *testing.T) {
	for _, tc := range []struct {
		earfcn   int
		band     string
		dl, ul   float64
		ulEARFCN int
	}{
		{0, "1", 2110.0, 1920.0, 18000},
		{300, "1", 2140.0, 1950.0, 18300},
		{2850, "7", 2630.0, 2510.0, 20850},
		{6300, "20", 806.0, 847.0, 24300},
		{5230, "13", 751.0, 782.0, 23230},
		{38000, "38", 2595.0, 2595.0, 38000},
		{60280, "54", 1672.5, 1672.5, 60280},
		{66786, "66", 2145.0, 1745.0, 132322},
	} {
		bands := Lookup(tc.earfcn)
		if len(bands) != 1 {
			t.Fatalf("%d: expected 1 band got %+v\n", tc.earfcn, bands)
		}

		b := bands[0]
		if b.Name() != tc.band {
			t.Fatalf("%d: expected band %s got %s\n", tc.earfcn, tc.band, b.Name())
		}
		if dl := b.DownlinkFrequency(tc.earfcn); !near(dl, tc.dl) {
			t.Fatalf("%d: expected downlink %f got %f\n", tc.earfcn, tc.dl, dl)
		}
		if ul := b.UplinkFrequency(tc.earfcn); !near(ul, tc.ul) {
			t.Fatalf("%d: expected uplink %f got %f\n", tc.earfcn, tc.ul, ul)
		}
		if n := b.UplinkChannel(tc.earfcn); n != tc.ulEARFCN {
			t.Fatalf("%d: expected uplink earfcn %d got %d\n", tc.earfcn, tc.ulEARFCN, n)
		}
	}
}

func TestDownlinkOnly(t *testing.T) {
	for _, earfcn := range []int{9660, 9920, 67336, 67836, 69466, 70316} {
		infos := Calculate(earfcn)
		if len(infos) != 1 {
			t.Fatalf("%d: expected 1 match got %+v\n", earfcn, infos)
		}
		if infos[0].Uplink != rat.Unavailable {
			t.Fatalf("%d: expected no uplink got %f\n", earfcn, infos[0].Uplink)
		}
		if infos[0].Downlink == rat.Unavailable {
			t.Fatalf("%d: expected downlink\n", earfcn)
		}
	}

	if n := Lookup(9660)[0].UplinkChannel(9660); n != rat.Unavailable {
		t.Fatalf("Expected no uplink earfcn got %d\n", n)
	}
}

func TestNoMatch(t *testing.T) {
	for _, earfcn := range []int{-1, 4950, 5009, 10360, 35999, 60305, 65535, 70646, 999999} {
		if infos := Calculate(earfcn); len(infos) != 0 {
			t.Fatalf("%d: expected no match got %+v\n", earfcn, infos)
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
				t.Fatalf("band %d: earfcn %d did not resolve\n", b.Number, n)
			}
		}
	}
}

func TestTableOrder(t *testing.T) {
	bands := Bands()
	for idx := 1; idx < len(bands); idx++ {
		prev, cur := bands[idx-1].Downlink, bands[idx].Downlink
		if cur.First <= prev.Last {
			t.Fatalf("band %d overlaps or precedes band %d\n", bands[idx].Number, bands[idx-1].Number)
		}
	}

	for _, b := range bands {
		if !b.Downlink.Valid() {
			t.Fatalf("band %d: invalid range %s\n", b.Number, b.Downlink)
		}
		if b.DLOffset != b.Downlink.First {
			t.Fatalf("band %d: offset %d does not start range %s\n", b.Number, b.DLOffset, b.Downlink)
		}
	}
}

func TestBandsCopy(t *testing.T) {
	bands := Bands()
	bands[0].DLLow = 0

	if Bands()[0].DLLow != 2110 {
		t.Fatalf("band table was modified through copy\n")
	}
}

func BenchmarkCalculate(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		Calculate(66786)
	}
}
