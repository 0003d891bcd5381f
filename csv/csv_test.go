package csv

import (
	"bytes"
	"runtime"
	"testing"

	"golang.org/x/xerrors"
)

type Msg struct{}

func (m Msg) Record() []string {
	return []string{"3", "1815", "1720"}
}

type NilRecorder struct {
	fields *[]string
}

func (n NilRecorder) Record() []string {
	return *n.fields
}

type NonRecorder struct{}

func TestRecorderNil(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{})

	if err := enc.Encode(nil); err == nil {
		t.Fatalf("expected error encoding nil\n")
	}
}

func TestRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := NewEncoder(buf)

	if err := enc.Encode(Msg{}); err != nil {
		t.Fatalf("%+v\n", err)
	}

	if expt := "3,1815,1720\n"; buf.String() != expt {
		t.Fatalf("Expected %q got %q\n", expt, buf.String())
	}
}

func TestNonRecorder(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{})

	if err := enc.Encode(NonRecorder{}); err == nil {
		t.Fatalf("expected error encoding %T\n", NonRecorder{})
	}
}

func TestRecorderPanic(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{})

	err := enc.Encode(NilRecorder{})

	var runtimeErr runtime.Error
	if !xerrors.As(err, &runtimeErr) {
		t.Fatalf("%+v\n", err)
	}
}

func TestHeaderOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := NewEncoderWithHeader(buf, "band", "downlink", "uplink")

	for i := 0; i < 2; i++ {
		if err := enc.Encode(Msg{}); err != nil {
			t.Fatalf("%+v\n", err)
		}
	}

	expt := "band,downlink,uplink\n3,1815,1720\n3,1815,1720\n"
	if buf.String() != expt {
		t.Fatalf("Expected %q got %q\n", expt, buf.String())
	}
}
