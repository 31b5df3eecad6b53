package stream

import "github.com/unio-sh/unio/charenc"

// TextOption configures text wrapping and correction.
type TextOption func(*textOpts)

type textOpts struct {
	encoding string
	mode     charenc.ErrorMode
}

// WithEncoding requests a specific character encoding. An empty name
// leaves the choice to the stream defaults.
func WithEncoding(name string) TextOption {
	return func(o *textOpts) {
		o.encoding = name
	}
}

// WithErrorMode requests a specific codec error policy.
func WithErrorMode(m charenc.ErrorMode) TextOption {
	return func(o *textOpts) {
		o.mode = m
	}
}

func evalTextOpts(opts []TextOption) textOpts {
	var o textOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
