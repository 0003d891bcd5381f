// Package arfcn converts radio channel numbers into carrier frequencies for
// GSM, WCDMA, TD-SCDMA, LTE and NR.
//
//	for _, info := range arfcn.GetInfo(1300, arfcn.LTE) {
//		fmt.Println(info.Band, info.Downlink, info.Uplink)
//	}
//
// Every call reads only static band tables and is safe for concurrent use.
package arfcn

import (
	"github.com/bemasher/arfcn/rat"

	_ "github.com/bemasher/arfcn/gsm"
	_ "github.com/bemasher/arfcn/lte"
	_ "github.com/bemasher/arfcn/nr"
	_ "github.com/bemasher/arfcn/tdscdma"
	_ "github.com/bemasher/arfcn/umts"
)

type (
	Info       = rat.Info
	Technology = rat.Technology
)

const (
	GSM     = rat.GSM
	WCDMA   = rat.WCDMA
	TDSCDMA = rat.TDSCDMA
	LTE     = rat.LTE
	NR      = rat.NR
)

// Unavailable is the frequency reported for a direction a band lacks.
const Unavailable = rat.Unavailable

// GetInfo returns every band containing channel for the given technology
// with its downlink and uplink carriers in MHz. Negative channels, unknown
// technologies and unallocated channels all give an empty result.
func GetInfo(channel int, t Technology) []Info {
	if channel < 0 {
		return nil
	}

	c, err := rat.NewCalculator(t)
	if err != nil {
		return nil
	}

	return c.Calculate(channel)
}
