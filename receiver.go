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
	"io"
	"math"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/bemasher/arfcn/rat"
	"github.com/bemasher/rtltcp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	blockSize         = 16384
	defaultSampleRate = 2400000
)

// Receiver holds an rtl_tcp connection tuned to a cellular carrier.
type Receiver struct {
	rtltcp.SDR
}

// CarrierHz converts a carrier in MHz to the tuner's integer Hz.
func CarrierHz(mhz float64) (uint32, error) {
	if mhz == rat.Unavailable || mhz <= 0 {
		return 0, errors.New("no carrier to tune to")
	}

	hz := math.Round(mhz * 1e6)
	if hz > math.MaxUint32 {
		return 0, errors.Errorf("carrier %.3f MHz exceeds tuner range", mhz)
	}

	return uint32(hz), nil
}

// Tune connects to rtl_tcp, sets the center frequency to the carrier and
// then applies any rtl_tcp flags given on the command line. Without a
// samplerate flag the dongle runs at 2.4 MHz, without a gain flag tuner AGC
// is enabled.
func (rcvr *Receiver) Tune(mhz float64) error {
	hz, err := CarrierHz(mhz)
	if err != nil {
		return err
	}

	if err := rcvr.Connect(nil); err != nil {
		return errors.Wrap(err, "rtl_tcp")
	}

	log.WithFields(log.Fields{
		"server":    rcvr.Flags.ServerAddr,
		"tuner":     rcvr.Info.Tuner,
		"gainCount": rcvr.Info.GainCount,
	}).Info("connected")

	if err := rcvr.SetCenterFreq(hz); err != nil {
		return errors.Wrap(err, "set center frequency")
	}

	sampleRateSet, gainFlagSet := false, false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "samplerate":
			sampleRateSet = true
		case "gainbyindex", "tunergainmode", "tunergain", "agcmode":
			gainFlagSet = true
		}
	})

	if !sampleRateSet {
		if err := rcvr.SetSampleRate(defaultSampleRate); err != nil {
			return errors.Wrap(err, "set sample rate")
		}
	}
	if !gainFlagSet {
		if err := rcvr.SetGainMode(true); err != nil {
			return errors.Wrap(err, "set gain mode")
		}
	}

	if err := rcvr.HandleFlags(); err != nil {
		return errors.Wrap(err, "rtl_tcp flags")
	}

	log.WithField("centerfreq", hz).Info("tuned")

	return nil
}

func (rcvr *Receiver) Close() {
	if rcvr.TCPConn != nil {
		rcvr.SDR.Close()
	}
}

// Run copies samples to w until interrupted, the time limit passes or the
// server closes the connection.
func (rcvr *Receiver) Run(w io.Writer, limit time.Duration) error {
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	tLimit := make(<-chan time.Time, 1)
	if limit != 0 {
		tLimit = time.After(limit)
	}

	start := time.Now()
	n, err := Stream(rcvr, w, sigint, tLimit)
	log.WithFields(log.Fields{"bytes": n, "elapsed": time.Since(start)}).Info("stopped")

	return err
}

// Stream copies r to w until r is exhausted or a signal arrives on either
// channel. Blocks are read in a separate goroutine so a stalled reader cannot
// hold off sigint or tLimit. Temporary network errors are retried.
func Stream(r io.Reader, w io.Writer, sigint <-chan os.Signal, tLimit <-chan time.Time) (n int64, err error) {
	stop := make(chan struct{})
	defer close(stop)

	blockCh := make(chan []byte)
	errCh := make(chan error, 1)

	go func() {
		defer close(blockCh)

		// One block is read into while the other is written out.
		blockA := make([]byte, blockSize)
		blockB := make([]byte, blockSize)

		for {
			read, err := r.Read(blockA)
			if read > 0 {
				select {
				case blockCh <- blockA[:read]:
				case <-stop:
					return
				}
				blockA, blockB = blockB, blockA
			}

			if err == io.EOF || err == io.ErrUnexpectedEOF {
				log.WithError(err).Debug("encountered eof")
				return
			}

			if opErr, ok := err.(*net.OpError); ok {
				if opErr.Temporary() {
					log.WithError(opErr).Warn("temporary network error")
					continue
				}
				errCh <- errors.Wrap(opErr, "read samples")
				return
			}

			if err != nil {
				errCh <- errors.Wrap(err, "read samples")
				return
			}

			select {
			case <-stop:
				return
			default:
			}
		}
	}()

	for {
		select {
		case <-sigint:
			return n, nil
		case <-tLimit:
			log.Debug("time limit reached")
			return n, nil
		case block, ok := <-blockCh:
			if !ok {
				select {
				case err = <-errCh:
				default:
				}
				return n, err
			}

			if _, err := w.Write(block); err != nil {
				return n, errors.Wrap(err, "write samples")
			}
			n += int64(len(block))
		}
	}
}
