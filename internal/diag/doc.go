// Package diag carries diagnostics from the lexer and evaluator to the
// output layer.
//
// Phases never print; they report. A Reporter receives (code, severity,
// span, message) tuples and an implementation decides what to do with
// them: BagReporter stores into a Bag for later sorting and rendering,
// test reporters collect them for assertions.
//
// Codes are stable numeric identifiers grouped by phase:
//
//	1xxx  lexical (LEX....)
//	2xxx  evaluation (EVAL....)
//	4xxx  I/O (IO....)
//
// Renderings live in diagfmt; this package holds only the data model.
package diag
