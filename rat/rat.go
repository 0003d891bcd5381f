// Package rat holds the types shared by every radio access technology and
// the registry technology packages add themselves to.
package rat

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Technology identifies a radio access technology.
type Technology int

const (
	GSM Technology = iota
	WCDMA
	TDSCDMA
	LTE
	NR
)

var technologyNames = map[Technology]string{
	GSM:     "GSM",
	WCDMA:   "WCDMA",
	TDSCDMA: "TDSCDMA",
	LTE:     "LTE",
	NR:      "NR",
}

var technologyAliases = map[string]Technology{
	"gsm":      GSM,
	"arfcn":    GSM,
	"wcdma":    WCDMA,
	"umts":     WCDMA,
	"uarfcn":   WCDMA,
	"tdscdma":  TDSCDMA,
	"td-scdma": TDSCDMA,
	"lte":      LTE,
	"eutra":    LTE,
	"earfcn":   LTE,
	"nr":       NR,
	"5g":       NR,
	"nrarfcn":  NR,
	"nr-arfcn": NR,
}

func (t Technology) String() string {
	if name, ok := technologyNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Technology(%d)", int(t))
}

// ErrUnknownTechnology is the cause of every error returned for a technology
// name or value that has no calculator.
var ErrUnknownTechnology = errors.New("unknown technology")

// ParseTechnology accepts canonical names and common aliases, ignoring case.
func ParseTechnology(name string) (Technology, error) {
	if t, ok := technologyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return 0, errors.Wrapf(ErrUnknownTechnology, "%q", name)
}

// A Calculator converts a channel number into every matching band and its
// carrier frequencies. No match is an empty result, not an error.
type Calculator interface {
	Calculate(channel int) []Info
}

// CalculatorFunc adapts an ordinary function to a Calculator.
type CalculatorFunc func(channel int) []Info

func (fn CalculatorFunc) Calculate(channel int) []Info {
	return fn(channel)
}

var (
	calculatorMutex sync.RWMutex
	calculators     = make(map[Technology]Calculator)
)

// Register makes a calculator available for a technology. Technology
// packages call it from init:
//
//	import _ "github.com/bemasher/arfcn/lte"
//
func Register(t Technology, c Calculator) {
	calculatorMutex.Lock()
	defer calculatorMutex.Unlock()

	if c == nil {
		panic("rat: calculator is nil")
	}
	if _, dup := calculators[t]; dup {
		panic(fmt.Sprintf("rat: calculator already registered (%s)", t))
	}
	calculators[t] = c
}

// NewCalculator looks up the calculator registered for t.
func NewCalculator(t Technology) (Calculator, error) {
	calculatorMutex.RLock()
	defer calculatorMutex.RUnlock()

	if c, exists := calculators[t]; exists {
		return c, nil
	}
	return nil, errors.Wrapf(ErrUnknownTechnology, "no calculator for %s", t)
}

// Technologies lists registered technologies in ascending order.
func Technologies() (ts []Technology) {
	calculatorMutex.RLock()
	defer calculatorMutex.RUnlock()

	for t := range calculators {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	return ts
}
