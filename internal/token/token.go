package token

import (
	"polish/internal/source"
)

// Token represents a single whitespace-delimited fragment with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsOperator reports whether the token is one of the operator symbols.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Caret:
		return true
	default:
		return false
	}
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }
