package arfcn

import (
	"math"
	"math/rand"
	"reflect"
	"sync"
	"testing"
	"testing/quick"

	"github.com/bemasher/arfcn/gen"
)

var technologies = []Technology{GSM, WCDMA, TDSCDMA, LTE, NR}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLTEBand3(t *testing.T) {
	infos := GetInfo(1300, LTE)
	if len(infos) != 1 {
		t.Fatalf("Expected 1 match got %+v\n", infos)
	}
	if infos[0].Band != "3" || !near(infos[0].Downlink, 1815.0) || !near(infos[0].Uplink, 1720.0) {
		t.Fatalf("Unexpected result %+v\n", infos[0])
	}
}

func TestWCDMAUplinkChannel(t *testing.T) {
	infos := GetInfo(10562, WCDMA)
	if len(infos) != 1 {
		t.Fatalf("Expected 1 match got %+v\n", infos)
	}
	if !near(infos[0].Uplink, 1922.4) {
		t.Fatalf("Expected uplink from uarfcn 9612 (1922.4) got %f\n", infos[0].Uplink)
	}
}

func TestNoMatch(t *testing.T) {
	for _, tc := range []struct {
		channel int
		tech    Technology
	}{
		{-1, LTE},
		{999999, GSM},
		{10839, WCDMA},
		{-5, NR},
		{3279166, NR},
		{1300, Technology(42)},
	} {
		if infos := GetInfo(tc.channel, tc.tech); len(infos) != 0 {
			t.Fatalf("%d %s: expected no match got %+v\n", tc.channel, tc.tech, infos)
		}
	}
}

func TestSentinel(t *testing.T) {
	// LTE band 29 is downlink only.
	infos := GetInfo(9700, LTE)
	if len(infos) != 1 || infos[0].Band != "29" {
		t.Fatalf("Expected band 29 got %+v\n", infos)
	}
	if infos[0].Uplink != Unavailable {
		t.Fatalf("Expected uplink %d got %f\n", Unavailable, infos[0].Uplink)
	}
}

func TestNRTiers(t *testing.T) {
	low := GetInfo(422000, NR)
	if len(low) == 0 || !near(low[0].Downlink, 2110.0) {
		t.Fatalf("Unexpected 5 kHz tier result %+v\n", low)
	}

	high := GetInfo(2016667, NR)
	if len(high) != 1 || high[0].Band != "n258" || !near(high[0].Downlink, 24250.08) {
		t.Fatalf("Unexpected 60 kHz tier result %+v\n", high)
	}
}

func TestDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	err := quick.Check(func(seed int64) bool {
		r.Seed(seed)
		tech := technologies[r.Intn(len(technologies))]
		n, _ := gen.Channel(r, tech)

		return reflect.DeepEqual(GetInfo(n, tech), GetInfo(n, tech))
	}, nil)

	if err != nil {
		t.Fatal("Error testing determinism:", err)
	}
}

// Any channel drawn from a table resolves to at least one band.
func TestTableChannelsResolve(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, tech := range technologies {
		for trial := 0; trial < 1024; trial++ {
			n, ok := gen.Channel(r, tech)
			if !ok {
				t.Fatalf("%s: no table\n", tech)
			}
			if len(GetInfo(n, tech)) == 0 {
				t.Fatalf("%s: channel %d from table did not resolve\n", tech, n)
			}
		}
	}
}

func TestUnallocatedChannels(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, tc := range []struct {
		tech  Technology
		limit int
	}{
		{GSM, 2048},
		{WCDMA, 16383},
		{TDSCDMA, 16383},
		{LTE, 262143},
	} {
		for trial := 0; trial < 64; trial++ {
			n, ok := gen.Unallocated(r, tc.tech, tc.limit)
			if !ok {
				t.Fatalf("%s: no unallocated channel found\n", tc.tech)
			}
			if infos := GetInfo(n, tc.tech); len(infos) != 0 {
				t.Fatalf("%s: unallocated %d resolved to %+v\n", tc.tech, n, infos)
			}
		}
	}
}

func TestConcurrent(t *testing.T) {
	expt := GetInfo(633334, NR)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 256; i++ {
				if !reflect.DeepEqual(GetInfo(633334, NR), expt) {
					errs <- "result changed under concurrent use"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}

func BenchmarkGetInfo(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		GetInfo(1300, LTE)
	}
}
