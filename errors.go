package negotiate

import "github.com/trpc-ecosystem/negotiate/accept"

// Error kinds produced by SelectOrError's Accept-header parse, re-exported
// from the accept package so callers need not import it directly. Use
// errors.Is / errors.As against these.
var (
	ErrUnexpectedEndOfInput = accept.ErrUnexpectedEndOfInput
	ErrExpectedSlash        = accept.ErrExpectedSlash
)

// UnexpectedCharacterError and QOutOfRangeError are the accept package's
// typed parse errors, aliased here for convenience.
type (
	UnexpectedCharacterError = accept.UnexpectedCharacterError
	QOutOfRangeError         = accept.QOutOfRangeError
)
