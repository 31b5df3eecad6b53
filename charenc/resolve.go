package charenc

import (
	"os"
	"runtime"
	"strings"
)

// The traditional unixes cannot be trusted to report a meaningful
// filesystem encoding. There we know better than the environment and
// declare UTF-8 unconditionally.
var unreliableFilesystems = map[string]bool{
	"linux":     true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
}

var hasUnreliableFilesystem = unreliableFilesystems[runtime.GOOS]

// UnreliableFilesystem reports whether the platform's native filesystem
// encoding reporting is considered unreliable.
func UnreliableFilesystem() bool {
	return hasUnreliableFilesystem
}

// localeCharset extracts the charset the locale environment declares,
// in LC_ALL, LC_CTYPE, LANG precedence order. The C and POSIX locales
// declare ASCII. An empty result means the environment declares
// nothing.
func localeCharset() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" {
			return "us-ascii"
		}
		i := strings.IndexByte(v, '.')
		if i < 0 {
			return ""
		}
		cs := v[i+1:]
		if j := strings.IndexByte(cs, '@'); j >= 0 {
			cs = cs[:j]
		}
		return cs
	}
	return ""
}

// FilesystemEncoding returns the encoding to use for filesystem paths.
// On platforms with unreliable reporting this is UTF-8 no questions
// asked; elsewhere the locale charset, promoted from ASCII to UTF-8.
func FilesystemEncoding() string {
	if hasUnreliableFilesystem {
		return "utf-8"
	}
	cs := localeCharset()
	if cs == "" || IsASCIIEncoding(cs) {
		return "utf-8"
	}
	return normalize(cs)
}

// FileEncoding returns the encoding for text file data. This is the
// same on all operating systems because it is the only thing that
// makes data exchange feasible: UTF-8. Files opened for reading
// additionally tolerate a leading byte order mark.
func FileEncoding(forWriting bool) string {
	if forWriting {
		return "utf-8"
	}
	return "utf-8-sig"
}

// StdStreamEncoding returns the default encoding for standard streams:
// the locale charset, promoted from ASCII (or nothing) to UTF-8.
func StdStreamEncoding() string {
	cs := localeCharset()
	if cs == "" || IsASCIIEncoding(cs) {
		return "utf-8"
	}
	return normalize(cs)
}
