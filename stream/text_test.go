package stream

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/unio-sh/unio/charenc"
)

func TestTextReaderStripsBOM(t *testing.T) {
	src := append([]byte{0xef, 0xbb, 0xbf}, []byte("héllo")...)
	tr, err := NewTextReader(bytes.NewReader(src), "utf-8-sig", charenc.Replace)
	if err != nil {
		t.Fatalf("NewTextReader failed: %v", err)
	}
	got, err := io.ReadAll(tr)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != "héllo" {
		t.Errorf("got %q, want héllo without the mark", got)
	}
}

func TestTextReaderLatin1(t *testing.T) {
	src := []byte{'h', 0xe9, 'l', 'l', 'o'}
	tr, err := NewTextReader(bytes.NewReader(src), "iso-8859-1", charenc.Replace)
	if err != nil {
		t.Fatalf("NewTextReader failed: %v", err)
	}
	got, err := io.ReadAll(tr)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != "héllo" {
		t.Errorf("got %q, want héllo", got)
	}
}

func TestTextReaderStrictFailsOnBadInput(t *testing.T) {
	tr, err := NewTextReader(bytes.NewReader([]byte{'a', 0xff, 0xfe}), "utf-8", charenc.Strict)
	if err != nil {
		t.Fatalf("NewTextReader failed: %v", err)
	}
	if _, err := io.ReadAll(tr); !errors.Is(err, ErrDecode) {
		t.Errorf("strict read of invalid utf-8 returned %v, want ErrDecode", err)
	}
}

func TestTextReaderReplaceSubstitutesBadInput(t *testing.T) {
	tr, err := NewTextReader(bytes.NewReader([]byte{'a', 0xff, 'b'}), "utf-8", charenc.Replace)
	if err != nil {
		t.Fatalf("NewTextReader failed: %v", err)
	}
	got, err := io.ReadAll(tr)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != "a�b" {
		t.Errorf("got %q, want the replacement rune in the middle", got)
	}
}

func TestTextWriterLatin1(t *testing.T) {
	buf := &bytes.Buffer{}
	tw, err := NewTextWriter(buf, "iso-8859-1", charenc.Replace)
	if err != nil {
		t.Fatalf("NewTextWriter failed: %v", err)
	}
	if _, err := tw.WriteString("héllo"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if err := tw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	want := []byte{'h', 0xe9, 'l', 'l', 'o'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestTextWriterReplaceUnsupportedRune(t *testing.T) {
	buf := &bytes.Buffer{}
	tw, err := NewTextWriter(buf, "iso-8859-1", charenc.Replace)
	if err != nil {
		t.Fatalf("NewTextWriter failed: %v", err)
	}
	// U+20AC does not exist in latin-1; replace mode substitutes
	// rather than failing.
	if _, err := tw.WriteString("h€y"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if err := tw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	out := buf.Bytes()
	if len(out) != 3 || out[0] != 'h' || out[2] != 'y' {
		t.Errorf("got % x, want h, a substitute, y", out)
	}
}

func TestTextWriterSplitRuneAcrossWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	tw, err := NewTextWriter(buf, "utf-8", charenc.Replace)
	if err != nil {
		t.Fatalf("NewTextWriter failed: %v", err)
	}
	full := []byte("héllo")
	if _, err := tw.Write(full[:2]); err != nil { // splits é
		t.Fatalf("first write failed: %v", err)
	}
	if _, err := tw.Write(full[2:]); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if err := tw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if buf.String() != "héllo" {
		t.Errorf("got %q, want héllo", buf.String())
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestTextWriterDoesNotCloseUnderlying(t *testing.T) {
	rec := &closeRecorder{}
	tw, err := NewTextWriter(rec, "utf-8", charenc.Replace)
	if err != nil {
		t.Fatalf("NewTextWriter failed: %v", err)
	}
	if _, err := tw.WriteString("héllo"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if rec.closed {
		t.Errorf("adapter closed its underlying stream")
	}
	// The underlying stream must stay usable after the adapter is
	// gone.
	if _, err := rec.WriteString(" more"); err != nil {
		t.Fatalf("underlying stream unusable after adapter close: %v", err)
	}
	if rec.String() != "héllo more" {
		t.Errorf("got %q", rec.String())
	}
}

func TestTextWriterStrictRejectsIllFormed(t *testing.T) {
	tw, err := NewTextWriter(&bytes.Buffer{}, "utf-8", charenc.Strict)
	if err != nil {
		t.Fatalf("NewTextWriter failed: %v", err)
	}
	_, werr := tw.Write([]byte{'a', 0xff})
	ferr := tw.Flush()
	if werr == nil && ferr == nil {
		t.Errorf("strict writer accepted ill-formed input")
	}
}

func TestTextReaderDefaults(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	tr, err := NewTextReader(strings.NewReader("x"), "", charenc.ModeUnset)
	if err != nil {
		t.Fatalf("NewTextReader failed: %v", err)
	}
	if tr.Encoding() != "utf-8" {
		t.Errorf("default encoding = %q, want utf-8", tr.Encoding())
	}
	if tr.ErrorMode() != charenc.Replace {
		t.Errorf("default error mode = %v, want replace", tr.ErrorMode())
	}
}
