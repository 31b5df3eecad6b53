package stdio

import (
	"errors"
	"fmt"
	"io"

	"github.com/unio-sh/unio/debug"
	"github.com/unio-sh/unio/stream"
)

// StdStream names a process-wide standard stream slot.
type StdStream int

const (
	StdinStream StdStream = iota
	StdoutStream
	StderrStream
)

// ErrInvalidStream is returned when a replacement stream has the wrong
// shape for the slot it is meant to fill.
var ErrInvalidStream = errors.New("invalid stream")

// ParseStdStream parses a slot name.
func ParseStdStream(v string) (StdStream, error) {
	s, ok := map[string]StdStream{
		"stdin":  StdinStream,
		"stdout": StdoutStream,
		"stderr": StderrStream,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStream, v)
}

func (s StdStream) String() string {
	switch s {
	case StdinStream:
		return "stdin"
	case StdoutStream:
		return "stdout"
	case StderrStream:
		return "stderr"
	default:
		return fmt.Sprintf("<err: %d is not a standard stream>", int(s))
	}
}

// WrapStandardStream installs s as the given standard stream for the
// duration of fn and restores the previous stream on every exit path,
// including panics. Replacements must be text streams backed by a
// binary channel; a bare binary stream is a contract violation, as is
// one with no binary channel behind it. Nested wraps restore in LIFO
// order.
func WrapStandardStream(kind StdStream, s any, fn func() error) error {
	switch kind {
	case StdinStream:
		r, ok := s.(io.Reader)
		if !ok {
			return fmt.Errorf("%w: stdin replacement %T is not an io.Reader", ErrInvalidStream, s)
		}
		if stream.ProbeReader(r, stream.CapUnknown) == stream.CapBinary {
			return fmt.Errorf("%w: standard input cannot be set to a binary reader directly", ErrInvalidStream)
		}
		if stream.FindBinaryReader(r) == nil {
			return fmt.Errorf("%w: standard input needs to be backed by a binary stream", ErrInvalidStream)
		}
		old := stdin
		stdin = r
		debug.Logf("stdin wrapped with %T", r)
		defer func() {
			stdin = old
			debug.Logf("stdin restored to %T", old)
		}()
		return fn()
	case StdoutStream, StderrStream:
		w, ok := s.(io.Writer)
		if !ok {
			return fmt.Errorf("%w: %s replacement %T is not an io.Writer", ErrInvalidStream, kind, s)
		}
		if stream.ProbeWriter(w, stream.CapUnknown) == stream.CapBinary {
			return fmt.Errorf("%w: %s cannot be set to a binary writer directly", ErrInvalidStream, kind)
		}
		if stream.FindBinaryWriter(w) == nil {
			return fmt.Errorf("%w: %s needs to be backed by a binary stream", ErrInvalidStream, kind)
		}
		slot := &stdout
		if kind == StderrStream {
			slot = &stderr
		}
		old := *slot
		*slot = w
		debug.Logf("%s wrapped with %T", kind, w)
		defer func() {
			*slot = old
			debug.Logf("%s restored to %T", kind, old)
		}()
		return fn()
	default:
		return fmt.Errorf("%w: %d", ErrInvalidStream, int(kind))
	}
}
