package csv

import (
	"encoding/csv"
	"io"

	"golang.org/x/xerrors"
)

// Produces a list of fields making up a record.
type Recorder interface {
	Record() []string
}

// An Encoder writes CSV records to an output stream, optionally preceded by a
// single header row.
type Encoder struct {
	w *csv.Writer

	header      []string
	wroteHeader bool
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: csv.NewWriter(w)}
}

// NewEncoderWithHeader returns an encoder that writes header before the first
// record.
func NewEncoderWithHeader(w io.Writer, header ...string) *Encoder {
	return &Encoder{w: csv.NewWriter(w), header: header}
}

// Encode writes a CSV record representing v to the stream followed by a
// newline character. Value given must implement the Recorder interface.
func (enc *Encoder) Encode(v interface{}) (err error) {
	r, ok := v.(Recorder)
	if !ok {
		return xerrors.Errorf("csv: %T does not implement Recorder", v)
	}

	defer func() {
		if rec, _ := recover().(error); rec != nil {
			err = xerrors.Errorf("recovered: %w", rec)
		}
	}()

	if !enc.wroteHeader && len(enc.header) > 0 {
		if err = enc.w.Write(enc.header); err != nil {
			return xerrors.Errorf("csv header: %w", err)
		}
	}
	enc.wroteHeader = true

	if err = enc.w.Write(r.Record()); err != nil {
		return xerrors.Errorf("csv record: %w", err)
	}
	enc.w.Flush()

	return enc.w.Error()
}
