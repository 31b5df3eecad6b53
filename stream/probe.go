package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/unio-sh/unio/charenc"
)

// Capability is the result of probing a stream: confirmed binary,
// confirmed text, or unknown, in which case the caller's default
// applies.
type Capability int

const (
	CapUnknown Capability = iota
	CapBinary
	CapText
)

func (c Capability) String() string {
	switch c {
	case CapUnknown:
		return "unknown"
	case CapBinary:
		return "binary"
	case CapText:
		return "text"
	default:
		return fmt.Sprintf("<err: %d is not a capability>", int(c))
	}
}

// TextStream is the capability flag a text adapter carries: the
// character encoding it speaks and its error policy.
type TextStream interface {
	Encoding() string
	ErrorMode() charenc.ErrorMode
}

// BinaryBackedReader exposes the lower-level binary channel behind a
// text reader. Text adapters over standard input follow this pattern.
type BinaryBackedReader interface {
	BinaryReader() io.Reader
}

// BinaryBackedWriter exposes the lower-level binary channel behind a
// text writer.
type BinaryBackedWriter interface {
	BinaryWriter() io.Writer
}

// ProbeReader reports whether r is a binary or a text reader. A
// declared encoding wins. Otherwise a zero-length read distinguishes a
// usable byte reader from a broken one; when the probe itself fails
// (a closed stream, typically) def is returned.
func ProbeReader(r io.Reader, def Capability) Capability {
	if r == nil {
		return def
	}
	if ts, ok := r.(TextStream); ok && ts.Encoding() != "" {
		return CapText
	}
	if _, err := r.Read(nil); err != nil && !errors.Is(err, io.EOF) {
		return def
	}
	return CapBinary
}

// ProbeWriter is ProbeReader for writers, using a zero-length write.
func ProbeWriter(w io.Writer, def Capability) Capability {
	if w == nil {
		return def
	}
	if ts, ok := w.(TextStream); ok && ts.Encoding() != "" {
		return CapText
	}
	if _, err := w.Write(nil); err != nil {
		return def
	}
	return CapBinary
}

// FindBinaryReader locates the binary channel for r: r itself when it
// already reads bytes, otherwise the backing channel of a text
// adapter. It returns nil when no binary channel is available.
func FindBinaryReader(r io.Reader) io.Reader {
	if ProbeReader(r, CapUnknown) == CapBinary {
		return r
	}
	bb, ok := r.(BinaryBackedReader)
	if !ok {
		return nil
	}
	// A closed buffered channel commonly fails the probe; assume
	// binary in that case.
	if buf := bb.BinaryReader(); buf != nil && ProbeReader(buf, CapBinary) == CapBinary {
		return buf
	}
	return nil
}

// FindBinaryWriter is FindBinaryReader for writers.
func FindBinaryWriter(w io.Writer) io.Writer {
	if ProbeWriter(w, CapUnknown) == CapBinary {
		return w
	}
	bb, ok := w.(BinaryBackedWriter)
	if !ok {
		return nil
	}
	if buf := bb.BinaryWriter(); buf != nil && ProbeWriter(buf, CapBinary) == CapBinary {
		return buf
	}
	return nil
}

// Misconfigured reports whether v is a text stream whose declared
// encoding is ASCII, which this system treats as inherently broken.
func Misconfigured(v any) bool {
	ts, ok := v.(TextStream)
	return ok && charenc.IsASCIIEncoding(ts.Encoding())
}
