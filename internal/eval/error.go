package eval

import (
	"fmt"

	"polish/internal/source"
)

// ErrorKind identifies the class of an evaluation failure.
type ErrorKind uint8

// Stable kinds - consumers match on these, never on message text.
const (
	noError ErrorKind = iota

	// EmptyInput: the input is empty or all whitespace.
	EmptyInput
	// UnexpectedEnd: the token stream ran out while an operand was expected.
	UnexpectedEnd
	// InvalidToken: a fragment is neither an active operator nor a number.
	InvalidToken
	// DivisionByZero: '/' or '%' applied with a zero right operand.
	DivisionByZero
	// TrailingTokens: extra tokens remain after one complete expression.
	TrailingTokens
	// TooDeep: operator nesting exceeded the configured maximum.
	TooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case InvalidToken:
		return "InvalidToken"
	case DivisionByZero:
		return "DivisionByZero"
	case TrailingTokens:
		return "TrailingTokens"
	case TooDeep:
		return "TooDeep"
	}
	return "Unknown"
}

// Error is the single error type returned by evaluation. Token holds the
// offending fragment when one exists; Span locates it in the normalized
// input.
type Error struct {
	Kind  ErrorKind
	Token string
	Span  source.Span
}

// Error renders the short stable message for the kind.
func (e *Error) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "empty input"
	case UnexpectedEnd:
		return "unexpected end of input"
	case InvalidToken:
		return fmt.Sprintf("invalid token: %s", e.Token)
	case DivisionByZero:
		return "division by zero"
	case TrailingTokens:
		return fmt.Sprintf("trailing tokens: %s", e.Token)
	case TooDeep:
		return "expression too deep"
	}
	return "unknown evaluation error"
}
