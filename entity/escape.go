package entity

import "strings"

// Reserved holds the characters that carry structure on the wire and must
// be %XX escaped inside names and data values.
const Reserved = "([])="

func isReserved(c byte) bool {
	switch c {
	case '(', '[', ']', ')', '=':
		return true
	}
	return false
}

// Escape replaces each reserved character in s with its two-digit
// uppercase hex escape code, e.g. "(" becomes "%28".
func Escape(s string) string {
	if !strings.ContainsAny(s, Reserved) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*strings.Count(s, "="))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isReserved(c) {
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Unescape replaces each %XX escape of a reserved character with the
// literal character. Escape codes for anything other than the five
// reserved characters pass through untouched, as does a bare '%'.
func Unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo && isReserved(hi<<4|lo) {
				b.WriteByte(hi<<4 | lo)
				i += 3
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
