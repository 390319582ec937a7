// internal/diff/reranking_test.go
package diff

import (
	"strings"
	"testing"

	"github.com/mwiater/lmdiff/internal/logs"
	"github.com/mwiater/lmdiff/internal/rerank"
)

func TestClassifyCorrection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		pre, base, post bool
		want            Style
	}{
		{name: "unchanged to miscorrected", pre: true, base: true, post: false, want: Style{Color: Red, Bold: true}},
		{name: "corrected to uncorrected", pre: false, base: true, post: false, want: Style{Color: Red}},
		{name: "miscorrected to unchanged", pre: true, base: false, post: true, want: Style{Color: Green, Bold: true}},
		{name: "uncorrected to corrected", pre: false, base: false, post: true, want: Style{Color: Green}},
		{name: "still miscorrected", pre: true, base: false, post: false, want: Style{Color: Black, Bold: true}},
		{name: "still uncorrected", pre: false, base: false, post: false, want: Style{Color: Black, Bold: true}},
		{name: "still unchanged", pre: true, base: true, post: true, want: Style{Color: Black}},
		{name: "still corrected", pre: false, base: true, post: true, want: Style{Color: Black}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := classifyCorrection(tt.pre, tt.base, tt.post)
			if !ok {
				t.Fatalf("transition (%t,%t,%t) should be in the table", tt.pre, tt.base, tt.post)
			}
			if got != tt.want {
				t.Fatalf("style %+v want %+v", got, tt.want)
			}
		})
	}
}

// fixedPredicate ignores its input, standing in for a fitted model.
func fixedPredicate(v bool) rerank.Predicate {
	return func(string, []logs.Candidate) bool { return v }
}

// rerankPair builds a pair whose baseline identity decision is controlled:
// preCorrect decides whether the unmodified top candidate equals the target.
func rerankPair(preCorrect bool) *Pair {
	top := "other"
	if preCorrect {
		top = "word"
	}
	results := []logs.Candidate{
		{Text: top, ErrorScore: 0, LMScore: -2},
		{Text: "filler", ErrorScore: -5, LMScore: -1},
	}
	return &Pair{
		Target:    "word",
		Baseline:  &logs.Record{Target: "word", Results: results},
		Candidate: &logs.Record{Target: "word", Results: results},
	}
}

func TestRerankingComparatorStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		preCorrect bool
		base       bool
		post       bool
		want       Style
	}{
		{name: "bold red regression", preCorrect: true, base: true, post: false, want: Style{Color: Red, Bold: true}},
		{name: "plain red regression", preCorrect: false, base: true, post: false, want: Style{Color: Red}},
		{name: "bold green improvement", preCorrect: true, base: false, post: true, want: Style{Color: Green, Bold: true}},
		{name: "plain green improvement", preCorrect: false, base: false, post: true, want: Style{Color: Green}},
		{name: "unchanged bad", preCorrect: true, base: false, post: false, want: Style{Color: Black, Bold: true}},
		{name: "unchanged good", preCorrect: true, base: true, post: true, want: Style{Color: Black}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmp := NewRerankingComparator(fixedPredicate(tt.base), fixedPredicate(tt.post))
			sink := &captureSink{}
			if err := cmp.Compare(rerankPair(tt.preCorrect), sink); err != nil {
				t.Fatalf("Compare: %v", err)
			}
			want := []segment{{style: tt.want, text: "word"}}
			assertSegments(t, sink.segments, want)
		})
	}
}

func TestInvariantViolationDiagnostic(t *testing.T) {
	t.Parallel()

	err := &InvariantViolation{Target: "offending token", Pre: true, Base: false, Post: false}
	msg := err.Error()
	for _, want := range []string{"pre=true", "base=false", "post=false", "offending token"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("diagnostic %q missing %q", msg, want)
		}
	}
}

func TestInvariantViolationTruncatesLongTargets(t *testing.T) {
	t.Parallel()

	err := &InvariantViolation{Target: strings.Repeat("x", 200)}
	if len(err.Error()) > 200 {
		t.Fatalf("diagnostic should truncate the target, got %d bytes", len(err.Error()))
	}
}
