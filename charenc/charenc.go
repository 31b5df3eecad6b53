// Package charenc decides which character encodings to use for files,
// standard streams and the filesystem, given a host environment whose
// self-reported encodings may be missing or wrong. ASCII defaults are
// treated as misconfiguration and silently promoted to UTF-8.
package charenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned by Lookup for names that resolve to no
// usable encoding.
var ErrUnknownEncoding = errors.New("unknown encoding")

// asciiNames lists the spellings ASCII travels under. The IANA index
// knows most of these, but a misconfigured libc can report vendor
// spellings the index does not carry.
var asciiNames = map[string]bool{
	"ascii":            true,
	"us-ascii":         true,
	"us":               true,
	"ansi_x3.4-1968":   true,
	"ansi_x3.4-1986":   true,
	"iso-ir-6":         true,
	"iso646-us":        true,
	"iso_646.irv:1991": true,
	"cp367":            true,
	"ibm367":           true,
	"csascii":          true,
	"646":              true,
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsASCIIEncoding reports whether name is one of the many spellings of
// ASCII. An empty or unrecognized name is not ASCII.
func IsASCIIEncoding(name string) bool {
	if name == "" {
		return false
	}
	n := normalize(name)
	if asciiNames[n] {
		return true
	}
	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return false
	}
	canon, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return false
	}
	return strings.EqualFold(canon, "US-ASCII")
}

// Lookup maps an encoding name to its implementation. The name
// "utf-8-sig" selects the BOM-aware UTF-8 variant used when reading
// text files. An empty name selects UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	switch normalize(name) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "utf-8-sig", "utf8-sig":
		return unicode.UTF8BOM, nil
	}
	enc, err := ianaindex.IANA.Encoding(normalize(name))
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Equal reports whether two encoding names select the same encoding
// once aliases are resolved.
func Equal(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == nb {
		return true
	}
	ca, aok := canonical(na)
	cb, bok := canonical(nb)
	return aok && bok && ca == cb
}

func canonical(n string) (string, bool) {
	switch n {
	case "utf-8", "utf8":
		return "utf-8", true
	case "utf-8-sig", "utf8-sig":
		return "utf-8-sig", true
	}
	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return "", false
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return "", false
	}
	return strings.ToLower(name), true
}
