// Package grammar holds the character-class primitives the Accept-header
// parser is built on (RFC 9110 §5.6.2 and §5.6.3).
package grammar

import "strings"

// byteClass classifies a single byte for the parser's purposes.
type byteClass byte

const (
	cOther byteClass = iota
	cToken
	cOWS
	cWhitespace
)

var classes [256]byteClass

func init() {
	for c := 0; c < 256; c++ {
		b := byte(c)
		switch {
		case b == ' ' || b == '\t':
			classes[b] = cOWS
		case b >= 0x09 && b <= 0x0D:
			classes[b] = cWhitespace
		case b >= 0x21 && b <= 0x7E && !strings.ContainsRune(`"(),/:;<=>?@[\]{|}`, rune(b)):
			classes[b] = cToken
		default:
			classes[b] = cOther
		}
	}
}

// IsTokenChar reports whether b may appear in an RFC 9110 token: any byte in
// 0x21-0x7E excluding the delimiters `"(),/:;<=>?@[\]{|}`.
func IsTokenChar(b byte) bool {
	return classes[b] == cToken
}

// IsOWS reports whether b is optional whitespace (space or horizontal tab).
func IsOWS(b byte) bool {
	return classes[b] == cOWS
}

// IsWhitespace reports whether b is whitespace in the lenient sense this
// parser accepts in OWS positions: space, or any byte in 0x09-0x0D (tab, LF,
// VT, FF, CR). We accept this superset of strict OWS deliberately, for
// robustness against servers and clients that emit bare LF or CR.
func IsWhitespace(b byte) bool {
	return classes[b] == cOWS || classes[b] == cWhitespace
}
