package stdio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/unio-sh/unio/stream"
)

// ErrBrokenEnvironment is returned when the system is misconfigured
// beyond repair and an explicit binary stream request cannot be
// satisfied.
var ErrBrokenEnvironment = errors.New("broken environment")

// The process-wide standard stream slots. WrapStandardStream and
// CaptureStdout are the only mutators.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Stdin returns the current process-wide standard input.
func Stdin() io.Reader { return stdin }

// Stdout returns the current process-wide standard output.
func Stdout() io.Writer { return stdout }

// Stderr returns the current process-wide standard error.
func Stderr() io.Writer { return stderr }

// BinaryStdin returns the binary channel behind standard input.
func BinaryStdin() (io.Reader, error) {
	r := stream.FindBinaryReader(stdin)
	if r == nil {
		return nil, fmt.Errorf("%w: was not able to determine binary stream for stdin", ErrBrokenEnvironment)
	}
	return r, nil
}

// BinaryStdout returns the binary channel behind standard output.
func BinaryStdout() (io.Writer, error) {
	w := stream.FindBinaryWriter(stdout)
	if w == nil {
		return nil, fmt.Errorf("%w: was not able to determine binary stream for stdout", ErrBrokenEnvironment)
	}
	return w, nil
}

// BinaryStderr returns the binary channel behind standard error.
func BinaryStderr() (io.Writer, error) {
	w := stream.FindBinaryWriter(stderr)
	if w == nil {
		return nil, fmt.Errorf("%w: was not able to determine binary stream for stderr", ErrBrokenEnvironment)
	}
	return w, nil
}

// TextStdin returns a correctly decoding view of standard input. It
// never fails; a stream that cannot be repaired is returned as is.
func TextStdin(opts ...stream.TextOption) io.Reader {
	return stream.ForceTextReader(stdin, opts...)
}

// TextStdout returns a correctly encoding view of standard output. It
// never fails.
func TextStdout(opts ...stream.TextOption) io.Writer {
	return stream.ForceTextWriter(stdout, opts...)
}

// TextStderr returns a correctly encoding view of standard error. It
// never fails.
func TextStderr(opts ...stream.TextOption) io.Writer {
	return stream.ForceTextWriter(stderr, opts...)
}
