package diag

import (
	"errors"

	"polish/internal/eval"
	"polish/internal/source"
)

var kindCodes = map[eval.ErrorKind]Code{
	eval.EmptyInput:     EvalEmptyInput,
	eval.UnexpectedEnd:  EvalUnexpectedEnd,
	eval.InvalidToken:   EvalInvalidToken,
	eval.DivisionByZero: EvalDivisionByZero,
	eval.TrailingTokens: EvalTrailingTokens,
	eval.TooDeep:        EvalTooDeep,
}

// FromError turns an evaluation error into an error diagnostic.
// Non-eval errors map to UnknownCode with the raw message.
func FromError(err error) Diagnostic {
	var evalErr *eval.Error
	if errors.As(err, &evalErr) {
		return NewError(kindCodes[evalErr.Kind], evalErr.Span, evalErr.Error())
	}
	return NewError(UnknownCode, source.Span{}, err.Error())
}
