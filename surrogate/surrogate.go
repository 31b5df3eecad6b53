// Package surrogate moves raw bytes through text values without loss.
// Bytes that are not valid UTF-8 are mapped to escape runes in the low
// surrogate range (U+DC80..U+DCFF), so a byte string survives a round
// trip through text handling and back.
package surrogate

import (
	"strings"
	"unicode/utf8"
)

const (
	escLo = 0xdc80
	escHi = 0xdcff
)

// Escape converts raw bytes to text. Valid UTF-8 passes through; every
// other byte becomes its escape rune. Unescape(Escape(b)) == b for all
// b.
func Escape(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			writeEscape(&sb, b[i])
			i++
			continue
		}
		sb.Write(b[i : i+size])
		i += size
	}
	return sb.String()
}

// Unescape converts text back to raw bytes, turning escape runes into
// the bytes they stand for. Text without escapes passes through
// byte-for-byte.
func Unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if cp, ok := escapeAt(s, i); ok {
			out = append(out, byte(cp))
			i += 3
			continue
		}
		out = append(out, s[i])
		i++
	}
	return out
}

// writeEscape emits the escape rune for x. The rune is a surrogate,
// which the utf8 package refuses to encode, so the three byte sequence
// is written by hand.
func writeEscape(sb *strings.Builder, x byte) {
	cp := 0xdc00 | int(x)
	sb.WriteByte(0xe0 | byte(cp>>12))
	sb.WriteByte(0x80 | byte(cp>>6)&0x3f)
	sb.WriteByte(0x80 | byte(cp)&0x3f)
}

// escapeAt decodes an escape rune at byte offset i, if one is there.
func escapeAt(s string, i int) (int, bool) {
	if i+2 >= len(s) {
		return 0, false
	}
	if s[i] != 0xed || s[i+1]&0xc0 != 0x80 || s[i+2]&0xc0 != 0x80 {
		return 0, false
	}
	cp := int(s[i]&0x0f)<<12 | int(s[i+1]&0x3f)<<6 | int(s[i+2]&0x3f)
	if cp < escLo || cp > escHi {
		return 0, false
	}
	return cp & 0xff, true
}
