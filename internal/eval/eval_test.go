package eval_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"polish/internal/eval"
	"polish/internal/source"
)

func evalOK(t *testing.T, input string) float64 {
	t.Helper()
	v, err := eval.Evaluate(input)
	if err != nil {
		t.Fatalf("Evaluate(%q) failed: %v", input, err)
	}
	return v
}

func evalKind(t *testing.T, input string) eval.ErrorKind {
	t.Helper()
	_, err := eval.Evaluate(input)
	if err == nil {
		t.Fatalf("Evaluate(%q) unexpectedly succeeded", input)
	}
	var evalErr *eval.Error
	if !errors.As(err, &evalErr) {
		t.Fatalf("Evaluate(%q) returned %T, want *eval.Error", input, err)
	}
	return evalErr.Kind
}

func TestEvaluate_Values(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5", 5},
		{"-1", -1},
		{"2.5", 2.5},
		{"1e3", 1000},
		{"+ 5 1", 6},
		{"- 5 2", 3},
		{"* 5 2", 10},
		{"/ 5 2", 2.5},
		{"% 5 2", 1},
		{"* + 1 2 3", 9},
		{"+ 1 * 2 3", 7},
		{"/ - 10 4 + 1 2", 2},
		{"- -1 -2", 1},
		{"  + 5   1  ", 6},
		{"+ 5 2 ", 7},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := evalOK(t, tt.input); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  eval.ErrorKind
	}{
		{"", eval.EmptyInput},
		{"   \t ", eval.EmptyInput},
		{"+ 5", eval.UnexpectedEnd},
		{"+", eval.UnexpectedEnd},
		{"* + 5 1 - 7", eval.UnexpectedEnd},
		{"5 5", eval.TrailingTokens},
		{"+ 1 2 3", eval.TrailingTokens},
		{"/ 1 0", eval.DivisionByZero},
		{"% 3 0", eval.DivisionByZero},
		{"+ 5 x", eval.InvalidToken},
		{"abc", eval.InvalidToken},
		{"* [ 5 1", eval.InvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := evalKind(t, tt.input); got != tt.kind {
				t.Errorf("Evaluate(%q) kind = %v, want %v", tt.input, got, tt.kind)
			}
		})
	}
}

func TestEvaluate_ErrorMessages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "empty input"},
		{"+ 5", "unexpected end of input"},
		{"+ 5 x", "invalid token: x"},
		{"/ 1 0", "division by zero"},
		{"5 5", "trailing tokens: 5"},
	}
	for _, tt := range tests {
		_, err := eval.Evaluate(tt.input)
		if err == nil {
			t.Fatalf("Evaluate(%q) unexpectedly succeeded", tt.input)
		}
		if err.Error() != tt.want {
			t.Errorf("Evaluate(%q) error = %q, want %q", tt.input, err.Error(), tt.want)
		}
	}
}

func TestEvaluate_ErrorSpans(t *testing.T) {
	_, err := eval.Evaluate("+ 5 abc")
	var evalErr *eval.Error
	if !errors.As(err, &evalErr) {
		t.Fatalf("got %T, want *eval.Error", err)
	}
	if evalErr.Span != (source.Span{Start: 4, End: 7}) {
		t.Errorf("span = %v, want 4-7", evalErr.Span)
	}
	if evalErr.Token != "abc" {
		t.Errorf("token = %q, want %q", evalErr.Token, "abc")
	}
}

func TestEvaluate_PowerDisabledByDefault(t *testing.T) {
	if got := evalKind(t, "^ 2 3"); got != eval.InvalidToken {
		t.Fatalf("kind = %v, want InvalidToken", got)
	}
}

func TestEvaluate_PowerEnabled(t *testing.T) {
	e := eval.New(eval.Options{Power: true})
	v, err := e.Evaluate("^ 2 10")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if v != 1024 {
		t.Errorf("^ 2 10 = %v, want 1024", v)
	}
}

func TestEvaluate_DepthLimit(t *testing.T) {
	e := eval.New(eval.Options{MaxDepth: 4})

	deep := strings.Repeat("+ 1 ", 4) + "1"
	if _, err := e.Evaluate(deep); err != nil {
		t.Fatalf("depth 4 should pass: %v", err)
	}

	tooDeep := strings.Repeat("+ 1 ", 5) + "1"
	_, err := e.Evaluate(tooDeep)
	var evalErr *eval.Error
	if !errors.As(err, &evalErr) || evalErr.Kind != eval.TooDeep {
		t.Fatalf("got %v, want TooDeep", err)
	}
}

func TestEvaluate_DeepNesting(t *testing.T) {
	// 1000 pending operators stay well under the default limit.
	input := strings.Repeat("+ 1 ", 1000) + "0"
	if got := evalOK(t, input); got != 1000 {
		t.Errorf("got %v, want 1000", got)
	}
}

func TestEvaluate_OverflowIsNotAnError(t *testing.T) {
	v, err := eval.Evaluate("* 1e308 1e308")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !math.IsInf(v, 1) {
		t.Errorf("got %v, want +Inf", v)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := eval.New(eval.Options{})
	first, err := e.Evaluate("* + 1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Evaluate("* + 1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("results differ: %v vs %v", first, second)
	}
}

func TestEvaluate_ConcurrentCallers(t *testing.T) {
	e := eval.New(eval.Options{})
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 200; j++ {
				v, err := e.Evaluate("* + 1 2 3")
				if err != nil {
					done <- err
					return
				}
				if v != 9 {
					done <- errors.New("wrong value")
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := map[eval.ErrorKind]string{
		eval.EmptyInput:     "EmptyInput",
		eval.UnexpectedEnd:  "UnexpectedEnd",
		eval.InvalidToken:   "InvalidToken",
		eval.DivisionByZero: "DivisionByZero",
		eval.TrailingTokens: "TrailingTokens",
		eval.TooDeep:        "TooDeep",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
