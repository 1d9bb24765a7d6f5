package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"polish/internal/token"
)

// scanFragment consumes one maximal run of non-whitespace bytes and
// classifies it. Classification order matters: an operator lookup wins,
// then the full strconv float grammar (sign, fraction, exponent), then
// Invalid. "+5" parses as a number, "+" alone as an operator.
func (lx *Lexer) scanFragment() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if unicode.IsSpace(r) {
			break
		}
		lx.cursor.BumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.input.Slice(sp)

	if kind, ok := token.LookupOperator(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}

	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return token.Token{Kind: token.Number, Span: sp, Text: text}
	}

	lx.report("InvalidToken", sp, fmt.Sprintf("invalid token: %s", text))
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}
