package diag

import (
	"testing"

	"polish/internal/source"
)

func TestBag_LimitAndLen(t *testing.T) {
	bag := NewBag(2)
	d := NewError(EvalInvalidToken, source.Span{Start: 0, End: 1}, "invalid token: x")

	if !bag.Add(d) || !bag.Add(d) {
		t.Fatal("first two adds must succeed")
	}
	if bag.Add(d) {
		t.Fatal("third add must be rejected")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
	if bag.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", bag.Cap())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag has no errors or warnings")
	}
	bag.Add(New(SevWarning, UnknownCode, source.Span{}, "w"))
	if bag.HasErrors() {
		t.Fatal("warning is not an error")
	}
	if !bag.HasWarnings() {
		t.Fatal("warning should register")
	}
	bag.Add(NewError(EvalDivisionByZero, source.Span{}, "division by zero"))
	if !bag.HasErrors() {
		t.Fatal("error should register")
	}
}

func TestBag_Sort(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(EvalTrailingTokens, source.Span{Start: 6, End: 7}, "trailing tokens: 5"))
	bag.Add(NewError(LexInvalidToken, source.Span{Start: 2, End: 5}, "invalid token: abc"))
	bag.Add(New(SevWarning, UnknownCode, source.Span{Start: 2, End: 5}, "w"))
	bag.Sort()

	items := bag.Items()
	if items[0].Code != LexInvalidToken {
		t.Errorf("first item code = %v", items[0].Code)
	}
	if items[1].Severity != SevWarning {
		t.Errorf("same-span error must sort before warning; got %v then %v",
			items[0].Severity, items[1].Severity)
	}
	if items[2].Code != EvalTrailingTokens {
		t.Errorf("last item code = %v", items[2].Code)
	}
}

func TestBag_Merge(t *testing.T) {
	a := NewBag(1)
	b := NewBag(1)
	a.Add(NewError(EvalEmptyInput, source.Span{}, "empty input"))
	b.Add(NewError(EvalTooDeep, source.Span{}, "expression too deep"))
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len() after merge = %d, want 2", a.Len())
	}
}

func TestCode_ID(t *testing.T) {
	tests := map[Code]string{
		LexInvalidToken:    "LEX1001",
		EvalEmptyInput:     "EVAL2001",
		EvalTooDeep:        "EVAL2006",
		IOLoadFileError:    "IO4001",
		UnknownCode:        "E0000",
		EvalDivisionByZero: "EVAL2004",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("Code(%d).ID() = %q, want %q", code, got, want)
		}
	}
}
