package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInvalidToken Code = 1001

	// Evaluation
	EvalEmptyInput     Code = 2001
	EvalUnexpectedEnd  Code = 2002
	EvalInvalidToken   Code = 2003
	EvalDivisionByZero Code = 2004
	EvalTrailingTokens Code = 2005
	EvalTooDeep        Code = 2006

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInvalidToken: "fragment is neither an operator nor a number",

	EvalEmptyInput:     "input is empty or all whitespace",
	EvalUnexpectedEnd:  "token stream ended while an operand was expected",
	EvalInvalidToken:   "token is neither an active operator nor a number",
	EvalDivisionByZero: "division or remainder with a zero right operand",
	EvalTrailingTokens: "extra tokens after a complete expression",
	EvalTooDeep:        "operator nesting exceeds the configured maximum",

	IOLoadFileError: "failed to load input file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("EVAL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
