// Package eval reduces a Polish-notation expression to one float64.
//
// The input is split on whitespace and classified by the lexer; reduction
// walks the token stream left to right with an explicit operator stack, so
// nesting depth costs heap frames rather than goroutine stack and can be
// capped for untrusted input. Evaluation is pure: no state survives a call,
// and one Evaluator may be shared across goroutines.
package eval

import (
	"strconv"

	"polish/internal/lexer"
	"polish/internal/source"
	"polish/internal/token"
)

// DefaultMaxDepth caps operator nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Options configures an Evaluator.
type Options struct {
	// MaxDepth is the maximum number of pending operators; 0 means
	// DefaultMaxDepth. Exceeding it fails with TooDeep.
	MaxDepth int
	// Power enables the '^' operator (math.Pow). Off by default.
	Power bool
}

// Evaluator evaluates prefix expressions with a fixed operator table.
type Evaluator struct {
	ops      map[token.Kind]opFunc
	maxDepth int
}

// New builds an Evaluator from options.
func New(opts Options) *Evaluator {
	ops := defaultOps()
	if opts.Power {
		ops[token.Caret] = opPow
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Evaluator{ops: ops, maxDepth: maxDepth}
}

// Evaluate normalizes input and reduces it to a single value.
func (e *Evaluator) Evaluate(input string) (float64, error) {
	return e.EvaluateInput(source.New("<arg>", input))
}

// EvaluateInput evaluates an already-normalized input.
func (e *Evaluator) EvaluateInput(in *source.Input) (float64, error) {
	v, evalErr := e.run(in)
	if evalErr != nil {
		return 0, evalErr
	}
	return v, nil
}

// Evaluate runs input through an Evaluator with default options.
func Evaluate(input string) (float64, error) {
	return New(Options{}).Evaluate(input)
}

// frame is one pending operator waiting for its operands.
type frame struct {
	op   token.Token
	fn   opFunc
	left float64
	have bool // left operand already reduced
}

// run walks the token stream. Each completed value is folded into the top
// frame; a frame whose both operands arrived pops and becomes a value
// itself. The stream must yield exactly one residual value ending at EOF.
func (e *Evaluator) run(in *source.Input) (float64, *Error) {
	lx := lexer.New(in, lexer.Options{})

	if first := lx.Peek(); first.Kind == token.EOF {
		return 0, &Error{Kind: EmptyInput, Span: first.Span}
	}

	var stack []frame
	for {
		tok := lx.Next()

		var val float64
		switch {
		case tok.Kind == token.EOF:
			return 0, &Error{Kind: UnexpectedEnd, Span: tok.Span}

		case tok.IsOperator():
			fn, ok := e.ops[tok.Kind]
			if !ok {
				// Lexed as an operator symbol, but not active in this table.
				return 0, &Error{Kind: InvalidToken, Token: tok.Text, Span: tok.Span}
			}
			if len(stack) >= e.maxDepth {
				return 0, &Error{Kind: TooDeep, Token: tok.Text, Span: tok.Span}
			}
			stack = append(stack, frame{op: tok, fn: fn})
			continue

		case tok.Kind == token.Number:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return 0, &Error{Kind: InvalidToken, Token: tok.Text, Span: tok.Span}
			}
			val = v

		default:
			return 0, &Error{Kind: InvalidToken, Token: tok.Text, Span: tok.Span}
		}

		for {
			if len(stack) == 0 {
				if next := lx.Next(); next.Kind != token.EOF {
					return 0, &Error{Kind: TrailingTokens, Token: next.Text, Span: next.Span}
				}
				return val, nil
			}
			top := &stack[len(stack)-1]
			if !top.have {
				top.left = val
				top.have = true
				break
			}
			res, kind := top.fn(top.left, val)
			if kind != noError {
				return 0, &Error{Kind: kind, Token: top.op.Text, Span: top.op.Span}
			}
			stack = stack[:len(stack)-1]
			val = res
		}
	}
}
