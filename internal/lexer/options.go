package lexer

import (
	"polish/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; the outer layer decides how to format.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
