package gen

import (
	"math/rand"
	"testing"

	"github.com/bemasher/arfcn/rat"
)

var technologies = []rat.Technology{rat.GSM, rat.WCDMA, rat.TDSCDMA, rat.LTE, rat.NR}

func TestChannelInRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, tech := range technologies {
		ranges := Ranges(tech)
		if len(ranges) == 0 {
			t.Fatalf("%s: no ranges\n", tech)
		}

		for trial := 0; trial < 512; trial++ {
			n, ok := Channel(r, tech)
			if !ok {
				t.Fatalf("%s: no channel\n", tech)
			}

			found := false
			for _, rng := range ranges {
				found = found || rng.Contains(n)
			}
			if !found {
				t.Fatalf("%s: %d outside every range\n", tech, n)
			}
		}
	}
}

func TestUnallocated(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	n, ok := Unallocated(r, rat.LTE, 100000)
	if !ok {
		t.Fatalf("no unallocated earfcn found\n")
	}
	for _, rng := range Ranges(rat.LTE) {
		if rng.Contains(n) {
			t.Fatalf("%d is inside %s\n", n, rng)
		}
	}
}

func TestUnknownTechnology(t *testing.T) {
	if _, ok := Channel(rand.New(rand.NewSource(1)), rat.Technology(42)); ok {
		t.Fatalf("expected no channel for unknown technology\n")
	}
}
