// Package driver wires the lexer, evaluator and diagnostics together for
// the CLI surfaces. It owns no logic of its own: it builds inputs, runs a
// phase and collects diagnostics into bags.
package driver

import (
	"polish/internal/diag"
	"polish/internal/eval"
	"polish/internal/lexer"
	"polish/internal/source"
	"polish/internal/token"
)

// DefaultMaxDiagnostics caps the bag size when Options.MaxDiagnostics is 0.
const DefaultMaxDiagnostics = 100

// Options configures evaluation and diagnostic collection.
type Options struct {
	MaxDepth       int
	Power          bool
	MaxDiagnostics int
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) evaluator() *eval.Evaluator {
	return eval.New(eval.Options{MaxDepth: o.MaxDepth, Power: o.Power})
}

// diagReporter adapts the lexer's thin Reporter to the diag pipeline.
type diagReporter struct {
	next diag.Reporter
}

func (r diagReporter) Report(kind string, span source.Span, msg string) {
	code := diag.UnknownCode
	if kind == "InvalidToken" {
		code = diag.LexInvalidToken
	}
	diag.ReportError(r.next, code, span, msg)
}

// TokenizeResult holds the token stream of one input plus diagnostics.
type TokenizeResult struct {
	Input  *source.Input
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize scans one expression into tokens. Invalid fragments come back
// as tokens and as diagnostics in the bag.
func Tokenize(name, text string, opts Options) TokenizeResult {
	in := source.New(name, text)
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diagReporter{next: diag.BagReporter{Bag: bag}}
	tokens := lexer.Scan(in, lexer.Options{Reporter: reporter})
	return TokenizeResult{Input: in, Tokens: tokens, Bag: bag}
}

// EvalResult holds the outcome of evaluating one input. Value is only
// meaningful when Ok reports true.
type EvalResult struct {
	Input *source.Input
	Value float64
	Bag   *diag.Bag
}

// Ok reports whether evaluation produced a value.
func (r EvalResult) Ok() bool {
	return !r.Bag.HasErrors()
}

// Eval evaluates one expression, turning any evaluation error into a
// diagnostic in the result bag.
func Eval(name, text string, opts Options) EvalResult {
	in := source.New(name, text)
	bag := diag.NewBag(opts.maxDiagnostics())

	v, err := opts.evaluator().EvaluateInput(in)
	if err != nil {
		bag.Add(diag.FromError(err))
		return EvalResult{Input: in, Bag: bag}
	}
	return EvalResult{Input: in, Value: v, Bag: bag}
}
