// internal/diff/entropy_test.go
package diff

import (
	"testing"

	"github.com/mwiater/lmdiff/internal/logs"
)

func entropyPair(base, cand *float64) *Pair {
	return &Pair{
		Target:    "token",
		Baseline:  &logs.Record{Target: "token", LogProb: base},
		Candidate: &logs.Record{Target: "token", LogProb: cand},
	}
}

func TestEntropyBands(t *testing.T) {
	t.Parallel()

	// interval 6 puts the band width x at 1.
	cmp := NewEntropyComparator(6)

	tests := []struct {
		name string
		base *float64
		cand *float64
		want Style
	}{
		{name: "large gain", base: logProb(-10), cand: logProb(-6), want: Style{Color: Green, Bold: true}},
		{name: "moderate gain", base: logProb(-10), cand: logProb(-8), want: Style{Color: Green}},
		{name: "small drift", base: logProb(-10), cand: logProb(-9.5), want: Style{Color: Yellow}},
		{name: "moderate loss", base: logProb(-10), cand: logProb(-12), want: Style{Color: Red}},
		{name: "large loss", base: logProb(-10), cand: logProb(-14), want: Style{Color: Red, Bold: true}},
		{name: "zero drift is neutral", base: logProb(-3), cand: logProb(-3), want: Style{Color: Yellow}},
		{name: "both unscored", base: nil, cand: nil, want: Style{Color: Magenta}},
		{name: "token became scored", base: nil, cand: logProb(-2.1), want: Style{Color: White}},
		{name: "token became unscored", base: logProb(-2.1), cand: nil, want: Style{Color: White, Bold: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sink := &captureSink{}
			if err := cmp.Compare(entropyPair(tt.base, tt.cand), sink); err != nil {
				t.Fatalf("Compare: %v", err)
			}
			want := []segment{{style: tt.want, text: "token"}}
			assertSegments(t, sink.segments, want)
		})
	}
}

func TestEntropyBandBoundaries(t *testing.T) {
	t.Parallel()

	// Boundaries belong to the less-extreme band: a drift of exactly 3x is
	// plain green, exactly x is yellow, exactly -x is plain red and exactly
	// -3x is bold red.
	cmp := NewEntropyComparator(6)

	tests := []struct {
		name  string
		drift float64
		want  Style
	}{
		{name: "upper outer boundary", drift: 3, want: Style{Color: Green}},
		{name: "upper inner boundary", drift: 1, want: Style{Color: Yellow}},
		{name: "lower inner boundary", drift: -1, want: Style{Color: Red}},
		{name: "lower outer boundary", drift: -3, want: Style{Color: Red, Bold: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sink := &captureSink{}
			base := logProb(-10)
			cand := logProb(-10 + tt.drift)
			if err := cmp.Compare(entropyPair(base, cand), sink); err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if len(sink.segments) != 1 || sink.segments[0].style != tt.want {
				t.Fatalf("drift %v: got %+v want style %+v", tt.drift, sink.segments, tt.want)
			}
		})
	}
}
