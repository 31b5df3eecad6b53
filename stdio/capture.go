package stdio

import (
	"bytes"
	"io"

	"github.com/unio-sh/unio/charenc"
	"github.com/unio-sh/unio/stream"
)

// Captured gives access to output captured by CaptureStdout. Value
// retrieval flushes the text adapter first so buffered writes are not
// lost.
type Captured struct {
	buf *bytes.Buffer
	tw  *stream.TextWriter
}

// Bytes flushes and returns everything captured so far, in the capture
// stream's encoding.
func (c *Captured) Bytes() []byte {
	_ = c.tw.Flush()
	return c.buf.Bytes()
}

// String flushes and returns the captured bytes as a string.
func (c *Captured) String() string {
	return string(c.Bytes())
}

// CaptureStdout redirects standard output, and optionally standard
// error, into an in-memory buffer for the duration of fn. The capture
// stream inherits the current stdout's encoding and error mode when it
// declares one. Prior streams are restored unconditionally.
func CaptureStdout(andStderr bool, fn func() error) (*Captured, error) {
	enc, mode := "", charenc.ModeUnset
	if ts, ok := stdout.(stream.TextStream); ok {
		enc, mode = ts.Encoding(), ts.ErrorMode()
	}
	buf := &bytes.Buffer{}
	tw, err := stream.NewTextWriter(buf, enc, mode)
	if err != nil {
		// The inherited encoding resolves to nothing usable; capture
		// in UTF-8 rather than fail.
		tw, err = stream.NewTextWriter(buf, "utf-8", mode)
	}
	if err != nil {
		return nil, err
	}

	oldOut := stdout
	stdout = tw
	var oldErr io.Writer
	if andStderr {
		oldErr = stderr
		stderr = tw
	}
	defer func() {
		_ = tw.Flush()
		stdout = oldOut
		if andStderr {
			stderr = oldErr
		}
	}()
	return &Captured{buf: buf, tw: tw}, fn()
}
