package diagfmt_test

import (
	"strings"
	"testing"

	"polish/internal/diag"
	"polish/internal/diagfmt"
	"polish/internal/eval"
	"polish/internal/source"
)

func renderError(t *testing.T, input string) string {
	t.Helper()
	in := source.New("<arg>", input)
	_, err := eval.New(eval.Options{}).EvaluateInput(in)
	if err == nil {
		t.Fatalf("Evaluate(%q) unexpectedly succeeded", input)
	}
	bag := diag.NewBag(8)
	bag.Add(diag.FromError(err))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, in, diagfmt.PrettyOpts{})
	return sb.String()
}

func TestPretty_InvalidToken(t *testing.T) {
	got := renderError(t, "+ 5 abc")
	want := "<arg>:5: ERROR EVAL2003: invalid token: abc\n" +
		"  + 5 abc\n" +
		"      ^~~\n"
	if got != want {
		t.Errorf("Pretty output:\n%q\nwant:\n%q", got, want)
	}
}

func TestPretty_DivisionByZero(t *testing.T) {
	got := renderError(t, "/ 1 0")
	if !strings.Contains(got, "ERROR EVAL2004: division by zero") {
		t.Errorf("missing header in:\n%s", got)
	}
	if !strings.Contains(got, "  ^") {
		t.Errorf("missing caret under operator in:\n%s", got)
	}
}

func TestPretty_EmptyInputHasNoCaretLine(t *testing.T) {
	got := renderError(t, "")
	if !strings.Contains(got, "EVAL2001: empty input") {
		t.Errorf("missing header in:\n%s", got)
	}
	if strings.Contains(got, "^") {
		t.Errorf("caret rendered for empty input:\n%s", got)
	}
}

func TestPretty_SortsStable(t *testing.T) {
	in := source.New("<arg>", "x y")
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.LexInvalidToken, source.Span{Start: 2, End: 3}, "invalid token: y"))
	bag.Add(diag.NewError(diag.LexInvalidToken, source.Span{Start: 0, End: 1}, "invalid token: x"))
	bag.Sort()

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, in, diagfmt.PrettyOpts{})
	first := strings.Index(sb.String(), "invalid token: x")
	second := strings.Index(sb.String(), "invalid token: y")
	if first < 0 || second < 0 || first > second {
		t.Errorf("diagnostics out of order:\n%s", sb.String())
	}
}
