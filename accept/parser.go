package accept

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/trpc-ecosystem/negotiate/grammar"
)

// state is the parser's current position in the Accept-header grammar. It
// maps onto the finite state machine described by the media-range ABNF
// (RFC 9110 §12.5.1): a media range is a type, a slash, a subtype, and zero
// or more ";"-separated parameters, possibly repeated as a comma-separated
// list. stateAfterStarExpectSlash and stateAfterSlashExpectSubtypeOrStar
// exist to spell out, byte by byte, the "'*' requires '/', then '*' or
// token" clause of the ExpectType row.
type state int

const (
	stateExpectType state = iota
	stateAfterStarExpectSlash
	stateAfterSlashExpectSubtypeOrStar
	stateContinueType
	stateExpectSubtype
	stateContinueSubtype
	stateExpectCommaOrSemi
	stateExpectParamName
	stateContinueParamName
	stateExpectParamValue
	stateContinueParamValue
	stateContinueQuotedParamValue
)

// Sentinel and typed errors. Use errors.Is / errors.As to distinguish kinds.
var (
	ErrUnexpectedEndOfInput = fmt.Errorf("accept: unexpected end of input")
	ErrExpectedSlash        = fmt.Errorf("accept: expected '/' after '*'")
)

// UnexpectedCharacterError reports a byte that violated the grammar at the
// given offset into the header.
type UnexpectedCharacterError struct {
	Byte   byte
	Offset int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("accept: unexpected character %q at offset %d", e.Byte, e.Offset)
}

// QOutOfRangeError reports a q parameter that did not parse to a finite
// number in [0, 1].
type QOutOfRangeError struct {
	Value string
}

func (e *QOutOfRangeError) Error() string {
	return fmt.Sprintf("accept: q value %q is not a finite number in [0, 1]", e.Value)
}

// parser walks an Accept header byte by byte, accumulating the range
// currently under construction in typ/subtyp/name/value and committing
// finished ranges into ranges.
type parser struct {
	header string
	state  state
	escape bool // true immediately after a '\' inside a quoted parameter value

	typ, subtyp strings.Builder
	name, value strings.Builder
	haveParam   bool // true once '=' has been consumed for the current parameter

	cur    Range
	ranges []Range
}

// Parse parses an Accept header value into its constituent media ranges.
// It returns MalformedAccept-class errors (UnexpectedCharacterError,
// ErrExpectedSlash, ErrUnexpectedEndOfInput, QOutOfRangeError) on any byte
// or value that violates the grammar; it never attempts to recover from
// malformed input. An empty header parses to a nil result (zero ranges, no
// error), since the empty string never leaves stateExpectType.
func Parse(header string) ([]Range, error) {
	p := &parser{header: header}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.ranges, nil
}

func (p *parser) run() error {
	for i := 0; i < len(p.header); i++ {
		if err := p.step(p.header[i], i); err != nil {
			return err
		}
	}
	if p.state == stateContinueQuotedParamValue && p.escape {
		return ErrUnexpectedEndOfInput
	}
	if p.state == stateAfterStarExpectSlash || p.state == stateAfterSlashExpectSubtypeOrStar {
		return ErrExpectedSlash
	}
	if p.state != stateExpectType {
		return p.finish()
	}
	return nil
}

func (p *parser) step(b byte, offset int) error {
	switch p.state {
	case stateExpectType:
		switch {
		case grammar.IsWhitespace(b):
			// stay
		case b == '*':
			p.typ.Reset()
			p.typ.WriteByte('*')
			p.state = stateAfterStarExpectSlash
		case grammar.IsTokenChar(b):
			p.typ.WriteByte(b)
			p.state = stateContinueType
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateAfterStarExpectSlash:
		if b != '/' {
			return ErrExpectedSlash
		}
		p.state = stateAfterSlashExpectSubtypeOrStar

	case stateAfterSlashExpectSubtypeOrStar:
		switch {
		case b == '*':
			p.subtyp.WriteByte('*')
			p.state = stateExpectCommaOrSemi
		case grammar.IsTokenChar(b):
			p.subtyp.WriteByte(b)
			p.state = stateContinueSubtype
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateContinueType:
		switch {
		case grammar.IsTokenChar(b):
			p.typ.WriteByte(b)
		case b == '/':
			p.state = stateExpectSubtype
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateExpectSubtype:
		if grammar.IsTokenChar(b) {
			p.subtyp.WriteByte(b)
			p.state = stateContinueSubtype
			return nil
		}
		return &UnexpectedCharacterError{b, offset}

	case stateContinueSubtype:
		switch {
		case grammar.IsTokenChar(b):
			p.subtyp.WriteByte(b)
		case grammar.IsWhitespace(b):
			p.state = stateExpectCommaOrSemi
		case b == ';':
			p.state = stateExpectParamName
		case b == ',':
			if err := p.finish(); err != nil {
				return err
			}
			p.state = stateExpectType
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateExpectCommaOrSemi:
		switch {
		case grammar.IsWhitespace(b):
			// stay
		case b == ';':
			p.state = stateExpectParamName
		case b == ',':
			if err := p.finish(); err != nil {
				return err
			}
			p.state = stateExpectType
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateExpectParamName:
		switch {
		case grammar.IsOWS(b):
			// stay
		case grammar.IsTokenChar(b):
			p.name.WriteByte(b)
			p.state = stateContinueParamName
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateContinueParamName:
		switch {
		case grammar.IsTokenChar(b):
			p.name.WriteByte(b)
		case b == '=':
			p.value.Reset()
			p.haveParam = true
			p.state = stateExpectParamValue
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateExpectParamValue:
		switch {
		case b == '"':
			p.state = stateContinueQuotedParamValue
		case grammar.IsTokenChar(b):
			p.value.WriteByte(b)
			p.state = stateContinueParamValue
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateContinueParamValue:
		switch {
		case grammar.IsTokenChar(b):
			p.value.WriteByte(b)
		case grammar.IsWhitespace(b):
			p.commitParam()
			p.state = stateExpectCommaOrSemi
		case b == ';':
			p.commitParam()
			p.state = stateExpectParamName
		case b == ',':
			p.commitParam()
			if err := p.finish(); err != nil {
				return err
			}
			p.state = stateExpectType
		default:
			return &UnexpectedCharacterError{b, offset}
		}

	case stateContinueQuotedParamValue:
		if p.escape {
			p.value.WriteByte(b)
			p.escape = false
			return nil
		}
		switch b {
		case '"':
			p.commitParam()
			p.state = stateExpectCommaOrSemi
		case '\\':
			p.escape = true
		default:
			p.value.WriteByte(b)
		}

	default:
		panic("accept: unreachable parser state")
	}
	return nil
}

func (p *parser) commitParam() {
	if p.haveParam {
		p.cur.set(p.name.String(), p.value.String())
	}
	p.name.Reset()
	p.value.Reset()
	p.haveParam = false
}

// finish commits the range currently under construction: it resolves the
// "q" parameter (if present) into Q, removes it from Parameters, and
// appends the completed range to p.ranges.
func (p *parser) finish() error {
	// A parameter may be mid-flight (name=value with no trailing ';' or ',')
	// when a comma or end-of-input triggers commit; flush it first.
	if p.state == stateContinueParamValue || p.state == stateContinueQuotedParamValue {
		p.commitParam()
	}

	p.cur.Type = p.typ.String()
	p.cur.Subtype = p.subtyp.String()

	if qstr, ok := p.cur.Get("q"); ok {
		q, err := parseQ(qstr)
		if err != nil {
			return err
		}
		p.cur.Q = q
		p.cur.delete("q")
	} else {
		p.cur.Q = 1.0
	}

	p.ranges = append(p.ranges, p.cur)
	p.resetRange()
	return nil
}

func (p *parser) resetRange() {
	p.cur = Range{}
	p.typ.Reset()
	p.subtyp.Reset()
	p.name.Reset()
	p.value.Reset()
	p.haveParam = false
}

func parseQ(s string) (float64, error) {
	q, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) || q < 0 || q > 1 {
		return 0, &QOutOfRangeError{Value: s}
	}
	return q, nil
}
