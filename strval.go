package lispy

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// newString builds a KindString value. Str holds exactly the bytes it
// is given: a String is arbitrary bytes, so construction must not
// rewrite them. Normalization is applied only where two Strings meet,
// in stringsEqual and printEscapedString, never to storage.
func newString(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

// stringsEqual compares two String values the way == should: two
// byte sequences that differ only in how they compose combining
// characters are the same text, so both sides are normalized to NFC
// before comparing. The stored bytes themselves are left untouched.
func stringsEqual(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// printEscapedString writes s double-quoted with C-style escapes,
// following the structure of t73fde-sx/string.go's Print (scan for a
// run of plain bytes, flush it, emit an escape, repeat) but restricted
// to \n \t \r \" \\. Normalizes to Unicode NFC first: this is a display
// nicety only, so combining-character differences in the source never
// leak into what's stored or compared, only into what's shown.
func printEscapedString(w io.Writer, str string) (int, error) {
	s := norm.NFC.String(str)
	total, err := io.WriteString(w, "\"")
	if err != nil {
		return total, err
	}
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '"':
			esc = `\"`
		case '\\':
			esc = `\\`
		case '\n':
			esc = `\n`
		case '\t':
			esc = `\t`
		case '\r':
			esc = `\r`
		default:
			continue
		}
		n, err := io.WriteString(w, s[last:i])
		total += n
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, esc)
		total += n
		if err != nil {
			return total, err
		}
		last = i + 1
	}
	n, err := io.WriteString(w, s[last:])
	total += n
	if err != nil {
		return total, err
	}
	n, err = io.WriteString(w, "\"")
	total += n
	return total, err
}

// unescapeString reverses the escapes the reader encounters in a
// quoted string token. Unknown escape sequences pass the escaped
// character through literally, matching the original lispy.c reader's
// leniency (src/lispy.c's unescape table via mpc's string rule).
func unescapeString(raw string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("invalid string: dangling escape")
		}
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte(raw[i])
		}
	}
	return sb.String(), nil
}
