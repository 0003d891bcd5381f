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
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bemasher/arfcn/csv"
	"github.com/bemasher/arfcn/rat"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var techName = flag.String("tech", "lte", "radio access technology: gsm, wcdma, tdscdma, lte or nr")

var format = flag.String("format", "plain", "output format: plain, csv, json, or xml")

var list = flag.Bool("list", false, "print the band table of the selected technology instead of converting channels")

var tune = flag.Bool("tune", false, "tune rtl_tcp to the downlink carrier of the first match")

var sampleFilename = flag.String("samplefile", os.DevNull, "raw signal dump file while tuned")

var timeLimit = flag.Duration("duration", 0, "time to stay tuned for, 0 for infinite, ex. 1h5m10s")

var logLevel = flag.String("loglevel", "info", "log level: debug, info, warn or error")

var version = flag.Bool("version", false, "display build date and commit hash")

var (
	tech    rat.Technology
	encoder Encoder
)

func RegisterFlags() {
	arfcnFlags := map[string]bool{
		"tech":       true,
		"format":     true,
		"list":       true,
		"tune":       true,
		"samplefile": true,
		"duration":   true,
		"loglevel":   true,
		"version":    true,
	}

	printDefaults := func(validFlags map[string]bool, inclusion bool) {
		flag.CommandLine.VisitAll(func(f *flag.Flag) {
			if validFlags[f.Name] != inclusion {
				return
			}

			format := "  -%s=%s: %s\n"
			fmt.Fprintf(os.Stderr, format, f.Name, f.Value, f.Usage)
		})
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s: [flags] CHANNEL...\n", os.Args[0])
		printDefaults(arfcnFlags, true)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "rtltcp specific:")
		printDefaults(arfcnFlags, false)
	}
}

// EnvOverride lets ARFCN_<FLAG> environment variables set any flag.
func EnvOverride() {
	flag.VisitAll(func(f *flag.Flag) {
		envName := "ARFCN_" + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue == "" {
			return
		}

		fields := log.Fields{"env": envName, "flag": f.Name, "value": flagValue}
		if err := flag.Set(f.Name, flagValue); err != nil {
			log.WithFields(fields).WithError(err).Warn("environment variable failed to override flag")
			return
		}
		log.WithFields(fields).Info("environment variable overrides flag")
	})
}

func HandleFlags() (err error) {
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		return errors.Wrap(err, "loglevel")
	}
	log.SetLevel(level)

	tech, err = rat.ParseTechnology(*techName)
	if err != nil {
		return errors.Wrap(err, "tech")
	}

	header := ResultHeader
	if *list {
		header = BandRowHeader
	}

	encoder, err = NewEncoder(*format, os.Stdout, header...)
	return err
}

// JSON, XML and CSV all implement this interface so we can simplify output
// formatting.
type Encoder interface {
	Encode(interface{}) error
}

// NewEncoder returns the named output encoder. Only csv writes header, once
// before the first record.
func NewEncoder(name string, w io.Writer, header ...string) (Encoder, error) {
	switch strings.ToLower(name) {
	case "plain":
		return PlainEncoder{w}, nil
	case "csv":
		return csv.NewEncoderWithHeader(w, header...), nil
	case "json":
		return json.NewEncoder(w), nil
	case "xml":
		return LineEncoder{xml.NewEncoder(w), w}, nil
	}
	return nil, errors.Errorf("invalid format: %q", name)
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(v interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, v)
	return
}

// LineEncoder terminates each element with a newline, xml.Encoder does not.
type LineEncoder struct {
	Encoder
	w io.Writer
}

func (le LineEncoder) Encode(v interface{}) error {
	if err := le.Encoder.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(le.w, "\n")
	return err
}
