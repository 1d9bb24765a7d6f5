package lexer

import (
	"unicode"

	"polish/internal/source"
	"polish/internal/token"
)

// Lexer splits a normalized expression input into whitespace-delimited
// fragments and classifies each as an operator or a number. Fragments
// that are neither come back as token.Invalid, with a report to the
// configured Reporter.
type Lexer struct {
	input  *source.Input
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(in *source.Input, opts Options) *Lexer {
	return &Lexer{
		input:  in,
		cursor: NewCursor(in),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	return lx.scanFragment()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Scan consumes the whole input and returns every token including the
// trailing EOF.
func Scan(in *source.Input, opts Options) []token.Token {
	lx := New(in, opts)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if !unicode.IsSpace(r) {
			return
		}
		lx.cursor.BumpRune()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}
