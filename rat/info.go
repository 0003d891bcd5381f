package rat

import (
	"fmt"
	"strconv"
)

// Unavailable marks a direction with no carrier: a downlink-only band has no
// uplink, a supplementary uplink band has no downlink. The value is the
// integer -1 carried in a float64; no real band produces a -1 MHz carrier, so
// the collision is accepted rather than checked.
const Unavailable = -1

// Range is an inclusive interval of channel numbers.
type Range struct {
	First, Last int
}

// NoRange never contains anything.
var NoRange = Range{-1, -1}

func (r Range) Valid() bool {
	return r.First >= 0 && r.First <= r.Last
}

func (r Range) Contains(n int) bool {
	return r.Valid() && r.First <= n && n <= r.Last
}

func (r Range) String() string {
	if !r.Valid() {
		return "-"
	}
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

// Info is a single band match for a channel number. Frequencies are in MHz
// and unrounded.
type Info struct {
	Band     string  `json:"band" xml:",attr"`
	Downlink float64 `json:"downlink" xml:",attr"`
	Uplink   float64 `json:"uplink" xml:",attr"`
}

func (info Info) String() string {
	return fmt.Sprintf("{Band:%s Downlink:%s Uplink:%s}",
		info.Band, FormatMHz(info.Downlink), FormatMHz(info.Uplink),
	)
}

func (info Info) Record() []string {
	return []string{
		info.Band,
		strconv.FormatFloat(info.Downlink, 'f', -1, 64),
		strconv.FormatFloat(info.Uplink, 'f', -1, 64),
	}
}

// FormatMHz renders a frequency for display, "N/A" for Unavailable.
func FormatMHz(f float64) string {
	if f == Unavailable {
		return "N/A"
	}
	return strconv.FormatFloat(f, 'f', 3, 64)
}
