package stdio

import (
	"github.com/mattn/go-isatty"
)

// Fder is a stream that can report its file descriptor.
type Fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is backed by a terminal. Streams that
// cannot report a file descriptor are never terminals.
func IsTerminal(v any) bool {
	f, ok := v.(Fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StdinIsTerminal reports whether the current standard input is a
// terminal.
func StdinIsTerminal() bool { return IsTerminal(stdin) }

// StdoutIsTerminal reports whether the current standard output is a
// terminal.
func StdoutIsTerminal() bool { return IsTerminal(stdout) }

// StderrIsTerminal reports whether the current standard error is a
// terminal.
func StderrIsTerminal() bool { return IsTerminal(stderr) }
