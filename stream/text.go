package stream

import (
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/unio-sh/unio/charenc"
)

// ErrDecode is returned by a strict-mode TextReader when the source
// contains bytes its encoding cannot decode.
var ErrDecode = errors.New("undecodable input")

// TextReader decodes a binary channel into UTF-8 text. The adapter
// does not own the wrapped stream; discarding it leaves the stream
// usable.
type TextReader struct {
	src  io.Reader
	dec  *transform.Reader
	enc  string
	mode charenc.ErrorMode
}

// NewTextReader wraps r with a decoder for the named encoding. An
// empty name selects the standard stream encoding; an unset error mode
// resolves to replace.
func NewTextReader(r io.Reader, encName string, mode charenc.ErrorMode) (*TextReader, error) {
	if encName == "" {
		encName = charenc.StdStreamEncoding()
	}
	if mode == charenc.ModeUnset {
		mode = charenc.Replace
	}
	e, err := charenc.Lookup(encName)
	if err != nil {
		return nil, err
	}
	var t transform.Transformer = e.NewDecoder()
	if mode == charenc.Strict {
		t = transform.Chain(t, strictUTF8{})
	}
	return &TextReader{
		src:  r,
		dec:  transform.NewReader(r, t),
		enc:  encName,
		mode: mode,
	}, nil
}

func (t *TextReader) Read(p []byte) (int, error) { return t.dec.Read(p) }

// Encoding returns the declared character encoding.
func (t *TextReader) Encoding() string { return t.enc }

// ErrorMode returns the decode error policy.
func (t *TextReader) ErrorMode() charenc.ErrorMode { return t.mode }

// BinaryReader returns the wrapped binary channel.
func (t *TextReader) BinaryReader() io.Reader { return t.src }

// strictUTF8 turns the replacement runes a decoder substitutes for
// undecodable input into hard errors. A literal replacement rune in
// the source is indistinguishable from a substitution and trips this
// too.
type strictUTF8 struct{ transform.NopResetter }

func (strictUTF8) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !utf8.FullRune(src[nSrc:]) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError {
			return nDst, nSrc, ErrDecode
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// TextWriter encodes UTF-8 text onto a binary channel. The adapter
// does not own the wrapped stream: Close only flushes, it never closes
// the stream underneath.
type TextWriter struct {
	dst  io.Writer
	t    transform.Transformer
	pend []byte
	enc  string
	mode charenc.ErrorMode
}

// NewTextWriter wraps w with an encoder for the named encoding. An
// empty name selects the standard stream encoding; an unset error mode
// resolves to replace.
func NewTextWriter(w io.Writer, encName string, mode charenc.ErrorMode) (*TextWriter, error) {
	if encName == "" {
		encName = charenc.StdStreamEncoding()
	}
	if mode == charenc.ModeUnset {
		mode = charenc.Replace
	}
	e, err := charenc.Lookup(encName)
	if err != nil {
		return nil, err
	}
	var t transform.Transformer
	switch mode {
	case charenc.Strict:
		t = transform.Chain(encoding.UTF8Validator, e.NewEncoder())
	default:
		t = transform.Chain(runes.ReplaceIllFormed(), encoding.ReplaceUnsupported(e.NewEncoder()))
	}
	return &TextWriter{dst: w, t: t, enc: encName, mode: mode}, nil
}

// Write encodes p. Input that ends in a partial rune stays pending
// until the next write or a flush.
func (t *TextWriter) Write(p []byte) (int, error) {
	t.pend = append(t.pend, p...)
	if err := t.drain(false); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString encodes s.
func (t *TextWriter) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Flush encodes and writes out any pending input.
func (t *TextWriter) Flush() error {
	err := t.drain(true)
	t.t.Reset()
	return err
}

// Close flushes the adapter. The wrapped stream stays open.
func (t *TextWriter) Close() error { return t.Flush() }

// Encoding returns the declared character encoding.
func (t *TextWriter) Encoding() string { return t.enc }

// ErrorMode returns the encode error policy.
func (t *TextWriter) ErrorMode() charenc.ErrorMode { return t.mode }

// BinaryWriter returns the wrapped binary channel.
func (t *TextWriter) BinaryWriter() io.Writer { return t.dst }

func (t *TextWriter) drain(atEOF bool) error {
	var buf [1024]byte
	for {
		nDst, nSrc, err := t.t.Transform(buf[:], t.pend, atEOF)
		if nDst > 0 {
			if _, werr := t.dst.Write(buf[:nDst]); werr != nil {
				return werr
			}
		}
		t.pend = t.pend[nSrc:]
		switch {
		case err == nil:
			t.pend = nil
			return nil
		case errors.Is(err, transform.ErrShortDst):
			// Go around with a fresh output buffer.
		case errors.Is(err, transform.ErrShortSrc) && !atEOF:
			return nil
		default:
			return err
		}
	}
}
