package charenc

import (
	"testing"
)

func TestIsASCIIEncoding(t *testing.T) {
	aliases := []string{
		"ascii",
		"ASCII",
		"us-ascii",
		"US-ASCII",
		"ANSI_X3.4-1968",
		"ansi_x3.4-1968",
		"ISO646-US",
		"cp367",
		"csASCII",
		"646",
	}
	for _, name := range aliases {
		if !IsASCIIEncoding(name) {
			t.Errorf("IsASCIIEncoding(%q) = false, want true", name)
		}
	}
	notASCII := []string{
		"",
		"utf-8",
		"UTF-8",
		"utf-8-sig",
		"iso-8859-1",
		"no-such-encoding",
	}
	for _, name := range notASCII {
		if IsASCIIEncoding(name) {
			t.Errorf("IsASCIIEncoding(%q) = true, want false", name)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8", "utf-8-sig", "iso-8859-1"} {
		enc, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if enc == nil {
			t.Fatalf("Lookup(%q) returned nil encoding", name)
		}
	}
	if _, err := Lookup("no-such-encoding"); err == nil {
		t.Errorf("Lookup of unknown encoding did not fail")
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"utf-8", "utf-8", true},
		{"utf-8", "UTF8", true},
		{"utf-8-sig", "utf8-sig", true},
		{"utf-8", "utf-8-sig", false},
		{"iso-8859-1", "latin1", true},
		{"utf-8", "iso-8859-1", false},
		{"", "", true},
		{"utf-8", "no-such-encoding", false},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFileEncoding(t *testing.T) {
	if got := FileEncoding(true); got != "utf-8" {
		t.Errorf("FileEncoding(true) = %q, want utf-8", got)
	}
	if got := FileEncoding(false); got != "utf-8-sig" {
		t.Errorf("FileEncoding(false) = %q, want utf-8-sig", got)
	}
}

func TestStdStreamEncoding(t *testing.T) {
	// The C locale declares ASCII, which is always promoted.
	t.Setenv("LC_ALL", "C")
	if got := StdStreamEncoding(); got != "utf-8" {
		t.Errorf("StdStreamEncoding() in C locale = %q, want utf-8", got)
	}

	t.Setenv("LC_ALL", "en_US.UTF-8")
	if got := StdStreamEncoding(); got != "utf-8" {
		t.Errorf("StdStreamEncoding() = %q, want utf-8", got)
	}

	t.Setenv("LC_ALL", "de_DE.ISO-8859-1")
	if got := StdStreamEncoding(); got != "iso-8859-1" {
		t.Errorf("StdStreamEncoding() = %q, want iso-8859-1", got)
	}

	t.Setenv("LC_ALL", "ja_JP.UTF-8@mod")
	if got := StdStreamEncoding(); got != "utf-8" {
		t.Errorf("StdStreamEncoding() with modifier = %q, want utf-8", got)
	}
}

func TestFilesystemEncodingOnUnreliablePlatforms(t *testing.T) {
	if !UnreliableFilesystem() {
		t.Skip("platform reports a trustworthy filesystem encoding")
	}
	t.Setenv("LC_ALL", "de_DE.ISO-8859-1")
	if got := FilesystemEncoding(); got != "utf-8" {
		t.Errorf("FilesystemEncoding() = %q, want utf-8 regardless of locale", got)
	}
}

func TestParseErrorMode(t *testing.T) {
	m, err := ParseErrorMode("strict")
	if err != nil || m != Strict {
		t.Errorf("ParseErrorMode(strict) = %v, %v", m, err)
	}
	m, err = ParseErrorMode("replace")
	if err != nil || m != Replace {
		t.Errorf("ParseErrorMode(replace) = %v, %v", m, err)
	}
	if _, err := ParseErrorMode("ignore-all"); err == nil {
		t.Errorf("ParseErrorMode accepted a bogus mode")
	}
	if got := Replace.String(); got != "replace" {
		t.Errorf("Replace.String() = %q", got)
	}
}
