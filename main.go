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
	"flag"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

var rcvr Receiver

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

var (
	buildTag   = "dev"     // v#.#.#
	buildDate  = "unknown" // date -u '+%Y-%m-%d'
	commitHash = "unknown" // git rev-parse HEAD
)

// ParseChannels converts positional arguments to channel numbers, logging and
// skipping any that are not integers.
func ParseChannels(args []string) (channels []int) {
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			log.WithField("arg", arg).WithError(err).Warn("skipping invalid channel")
			continue
		}
		channels = append(channels, n)
	}
	return channels
}

// Convert writes every result for each channel to enc and returns the first
// result found, if any.
func Convert(enc Encoder, channels []int) (first *Result, err error) {
	for _, channel := range channels {
		results := NewResults(channel, tech)
		if len(results) == 0 {
			log.WithFields(log.Fields{"channel": channel, "tech": tech}).Debug("no band matches channel")
			continue
		}

		for idx := range results {
			if err := enc.Encode(results[idx]); err != nil {
				return first, err
			}
		}

		if first == nil {
			first = &results[0]
		}
	}

	return first, nil
}

func List(enc Encoder) error {
	for _, row := range BandRows(tech) {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	rcvr.RegisterFlags()
	RegisterFlags()
	EnvOverride()
	flag.Parse()

	if *version {
		fmt.Println("Build Tag: ", buildTag)
		fmt.Println("Build Date:", buildDate)
		fmt.Println("Commit:    ", commitHash)
		os.Exit(0)
	}

	if err := HandleFlags(); err != nil {
		log.Fatal(err)
	}

	if *list {
		if err := List(encoder); err != nil {
			log.Fatal(err)
		}
		return
	}

	channels := ParseChannels(flag.Args())
	if len(channels) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	first, err := Convert(encoder, channels)
	if err != nil {
		log.Fatal(err)
	}

	if !*tune {
		return
	}
	if first == nil {
		log.Fatal("nothing to tune to: no channel matched a band")
	}

	sampleFile, err := os.Create(*sampleFilename)
	if err != nil {
		log.Fatal("Error creating sample file: ", err)
	}
	defer sampleFile.Close()

	if err := rcvr.Tune(first.Downlink); err != nil {
		log.Fatal(err)
	}
	defer rcvr.Close()

	log.WithField("band", first.Band).Info("running")
	if err := rcvr.Run(sampleFile, *timeLimit); err != nil {
		log.Error(err)
	}
}
