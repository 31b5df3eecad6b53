package unio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/unio-sh/unio/charenc"
	"github.com/unio-sh/unio/stream"
	"github.com/unio-sh/unio/surrogate"
)

// ErrBadMode is returned for open modes this package does not
// understand.
var ErrBadMode = errors.New("bad open mode")

// OpenOption configures Open.
type OpenOption func(*openOpts)

type openOpts struct {
	encoding string
	mode     charenc.ErrorMode
}

// WithEncoding overrides the automatically resolved text encoding.
func WithEncoding(name string) OpenOption {
	return func(o *openOpts) {
		o.encoding = name
	}
}

// WithErrorMode overrides the codec error policy for text modes.
func WithErrorMode(m charenc.ErrorMode) OpenOption {
	return func(o *openOpts) {
		o.mode = m
	}
}

// File is an open file, with text transcoding applied when the mode is
// textual. Unlike the standard stream adapters, File owns its
// descriptor: Close flushes and closes it.
type File struct {
	f      *os.File
	r      io.Reader
	w      io.Writer
	tw     *stream.TextWriter
	binary bool
}

// Open opens a file either in text or binary mode. The mode is a
// combination of one of r/w/a/x with '+', 'b' and 't', in the usual
// scripting-runtime style. For text modes the encoding is detected
// automatically (UTF-8 for writing, BOM-tolerant UTF-8 for reading)
// unless overridden.
func Open(name, mode string, opts ...OpenOption) (*File, error) {
	var o openOpts
	for _, opt := range opts {
		opt(&o)
	}
	flag, writing, binary, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(fixupPath(name), flag, 0o666)
	if err != nil {
		return nil, err
	}
	file := &File{f: f, binary: binary}
	if binary {
		file.r, file.w = f, f
		return file, nil
	}
	encName := o.encoding
	if encName == "" {
		encName = charenc.FileEncoding(writing)
	}
	// Degrade to raw access rather than fail when the requested
	// encoding resolves to nothing usable.
	if tr, err := stream.NewTextReader(f, encName, o.mode); err == nil {
		file.r = tr
	} else {
		file.r = f
	}
	if tw, err := stream.NewTextWriter(f, encName, o.mode); err == nil {
		file.tw = tw
		file.w = tw
	} else {
		file.w = f
	}
	return file, nil
}

func (f *File) Read(p []byte) (int, error)  { return f.r.Read(p) }
func (f *File) Write(p []byte) (int, error) { return f.w.Write(p) }

// WriteString writes a string through the file's text adapter, if any.
func (f *File) WriteString(s string) (int, error) {
	return io.WriteString(f.w, s)
}

// Name returns the name of the underlying file.
func (f *File) Name() string { return f.f.Name() }

// Fd returns the underlying file descriptor.
func (f *File) Fd() uintptr { return f.f.Fd() }

// Binary reports whether the file was opened in binary mode.
func (f *File) Binary() bool { return f.binary }

// Close flushes any pending text and closes the file.
func (f *File) Close() error {
	var ferr error
	if f.tw != nil {
		ferr = f.tw.Flush()
	}
	cerr := f.f.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}

// fixupPath restores surrogate escapes in a path to raw bytes on
// platforms whose filesystem encoding reporting is unreliable, so a
// path that travelled through text handling reaches the kernel intact.
func fixupPath(name string) string {
	if !charenc.UnreliableFilesystem() {
		return name
	}
	return string(surrogate.Unescape(name))
}

func parseMode(mode string) (flag int, writing, binary bool, err error) {
	var main byte
	var plus bool
	for i := 0; i < len(mode); i++ {
		switch c := mode[i]; c {
		case 'r', 'w', 'a', 'x':
			if main != 0 {
				return 0, false, false, fmt.Errorf("%w: %q", ErrBadMode, mode)
			}
			main = c
		case '+':
			plus = true
		case 'b':
			binary = true
		case 't':
			// Text is the default.
		default:
			return 0, false, false, fmt.Errorf("%w: %q", ErrBadMode, mode)
		}
	}
	switch main {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		writing = true
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		writing = true
	case 'x':
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
		writing = true
	default:
		return 0, false, false, fmt.Errorf("%w: %q", ErrBadMode, mode)
	}
	if plus {
		flag = flag&^os.O_WRONLY | os.O_RDWR
	}
	return flag, writing, binary, nil
}
