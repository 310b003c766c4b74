// Package textcodec escapes text for the quoted string fields of album manifests
// and impression files.
package textcodec

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Escape makes s safe to embed between double quotes. Only backslash, the double
// quote, and control characters are rewritten; everything else (including
// non-ASCII text) is written through as raw UTF-8.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	// All rewritten characters are ASCII, so walking bytes leaves multi-byte
	// sequences (valid or not) untouched.
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape reverses Escape. It never fails: a trailing lone backslash is kept,
// an unknown escape letter yields the letter itself, and a \u escape without
// four hex digits is copied through unchanged.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		next := s[i+1]
		i++
		switch next {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, ok := hex4(s, i+1)
			if !ok {
				b.WriteString(`\u`)
				continue
			}
			i += 4

			// Combine a surrogate pair written as two consecutive escapes.
			if utf16.IsSurrogate(r) && i+2 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
				if lo, ok := hex4(s, i+3); ok {
					if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
						b.WriteRune(pair)
						i += 6
						continue
					}
				}
			}
			b.WriteRune(r)
		default:
			// Covers \\ and \" as well as lenient pass-through of unknown letters.
			b.WriteByte(next)
		}
	}
	return b.String()
}

// hex4 decodes exactly four hex digits starting at s[at].
func hex4(s string, at int) (rune, bool) {
	if at+4 > len(s) {
		return 0, false
	}

	var r rune
	for _, c := range []byte(s[at : at+4]) {
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}
