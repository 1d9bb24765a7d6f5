package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "other inside span",
			span:     Span{Start: 2, End: 10},
			other:    Span{Start: 4, End: 6},
			expected: Span{Start: 2, End: 10},
		},
		{
			name:     "other extends end",
			span:     Span{Start: 2, End: 10},
			other:    Span{Start: 8, End: 14},
			expected: Span{Start: 2, End: 14},
		},
		{
			name:     "other extends start",
			span:     Span{Start: 5, End: 10},
			other:    Span{Start: 1, End: 7},
			expected: Span{Start: 1, End: 10},
		},
		{
			name:     "disjoint spans cover the gap",
			span:     Span{Start: 0, End: 1},
			other:    Span{Start: 8, End: 9},
			expected: Span{Start: 0, End: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Cover(tt.other)
			if got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("zero-width span should be empty")
	}
	if (Span{Start: 3, End: 5}).Empty() {
		t.Error("non-zero span must not be empty")
	}
	if got := (Span{Start: 3, End: 8}).Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestSpan_String(t *testing.T) {
	if got := (Span{Start: 2, End: 7}).String(); got != "2-7" {
		t.Errorf("String() = %q, want %q", got, "2-7")
	}
}
