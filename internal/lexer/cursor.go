package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"polish/internal/source"
)

// Cursor is a byte position within an expression input.
type Cursor struct {
	Input *source.Input
	Off   uint32
	// Limit is the exclusive upper bound for Off; set from len(Input.Content).
	Limit uint32
}

// NewCursor creates a cursor over the provided input.
func NewCursor(in *source.Input) Cursor {
	limit, err := safecast.Conv[uint32](len(in.Content))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Cursor{
		Input: in,
		Off:   0,
		Limit: limit,
	}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Input.Content[c.Off]
}

// PeekRune decodes the rune at the cursor without consuming it.
// Returns utf8.RuneError with size 0 at EOF.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.Input.Content[c.Off:c.Limit])
}

// Bump advances the cursor one byte and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Input.Content[c.Off]
	c.Off++
	return b
}

// BumpRune advances the cursor one rune and returns the rune read.
func (c *Cursor) BumpRune() rune {
	r, size := c.PeekRune()
	c.Off += uint32(size)
	return r
}

// Mark is a saved cursor position for building spans.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span from a mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset rewinds the cursor to a mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
