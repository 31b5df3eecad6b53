package stream

import (
	"io"

	"github.com/unio-sh/unio/charenc"
	"github.com/unio-sh/unio/debug"
)

// ForceTextReader returns a reader that decodes text correctly even
// when the stream it is given is misconfigured. It never fails: a
// stream that cannot be repaired is returned unchanged, because
// mojibake beats an exception once the environment is this broken.
func ForceTextReader(r io.Reader, opts ...TextOption) io.Reader {
	o := evalTextOpts(opts)
	var bin io.Reader
	if ProbeReader(r, CapUnknown) == CapBinary {
		bin = r
	} else {
		// With no target encoding, a stream that is not misconfigured
		// needs no wrapping at all.
		if o.encoding == "" && !Misconfigured(r) {
			return r
		}
		if compatibleText(r, o.encoding, o.mode) {
			return r
		}
		bin = FindBinaryReader(r)
		if bin == nil {
			debug.Logf("no binary channel behind %T, passing through", r)
			return r
		}
	}
	// Nobody handles decode errors on a stream this far gone; replace
	// unless the caller insisted otherwise.
	if o.mode == charenc.ModeUnset {
		o.mode = charenc.Replace
	}
	tr, err := NewTextReader(bin, o.encoding, o.mode)
	if err != nil {
		debug.Logf("cannot wrap %T with encoding %q: %v", bin, o.encoding, err)
		return r
	}
	return tr
}

// ForceTextWriter is ForceTextReader for writers.
func ForceTextWriter(w io.Writer, opts ...TextOption) io.Writer {
	o := evalTextOpts(opts)
	var bin io.Writer
	if ProbeWriter(w, CapUnknown) == CapBinary {
		bin = w
	} else {
		if o.encoding == "" && !Misconfigured(w) {
			return w
		}
		if compatibleText(w, o.encoding, o.mode) {
			return w
		}
		bin = FindBinaryWriter(w)
		if bin == nil {
			debug.Logf("no binary channel behind %T, passing through", w)
			return w
		}
	}
	if o.mode == charenc.ModeUnset {
		o.mode = charenc.Replace
	}
	tw, err := NewTextWriter(bin, o.encoding, o.mode)
	if err != nil {
		debug.Logf("cannot wrap %T with encoding %q: %v", bin, o.encoding, err)
		return w
	}
	return tw
}

// compatibleText reports whether v is a text stream already configured
// the way the caller asked for. An encoding-less request is satisfied
// by any stream that declares some encoding.
func compatibleText(v any, enc string, mode charenc.ErrorMode) bool {
	ts, ok := v.(TextStream)
	if !ok {
		return false
	}
	if charenc.Equal(ts.Encoding(), enc) && ts.ErrorMode() == mode {
		return true
	}
	if enc == "" {
		return ts.Encoding() != ""
	}
	return false
}
