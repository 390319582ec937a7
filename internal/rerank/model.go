// internal/rerank/model.go
// Package rerank fits the correctness predicates the reranking challenge
// depends on.
package rerank

import (
	"github.com/mwiater/lmdiff/internal/logs"
	"github.com/mwiater/lmdiff/internal/util"
)

// Predicate answers whether a ranked result list corrects to the target text
// under a fitted model's criterion. Predicates are immutable once built and
// safe to share across the whole paired stream.
type Predicate func(target string, results []logs.Candidate) bool

// Model scores a candidate by interpolating its language-model score into
// its error-model score. Alpha 0 is the identity decision rule: the
// unmodified output wins.
type Model struct {
	Alpha float64
}

// Score returns the combined score the model assigns to a candidate.
func (m Model) Score(c logs.Candidate) float64 {
	return c.ErrorScore + m.Alpha*c.LMScore
}

// Best returns the candidate the model would choose: highest combined score,
// earlier entry winning ties. The second result is false for an empty list.
func (m Model) Best(results []logs.Candidate) (logs.Candidate, bool) {
	if len(results) == 0 {
		return logs.Candidate{}, false
	}
	best := results[0]
	bestScore := m.Score(best)
	for _, c := range results[1:] {
		if s := m.Score(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, true
}

// Predicate returns the correctness predicate for this model.
func (m Model) Predicate() Predicate {
	return func(target string, results []logs.Candidate) bool {
		best, ok := m.Best(results)
		return ok && best.Text == target
	}
}

// Identity is the no-reranking decision rule: score by the error model alone.
func Identity() Predicate {
	return Model{}.Predicate()
}

// Fit searches for the interpolation weight that corrects the most examples
// across an entire log: a coarse sweep followed by a refining sweep around
// the best coarse weight. Equal counts keep the smaller weight.
func Fit(records []*logs.Record) Predicate {
	best := Model{}
	bestCount := correctCount(best, records)

	for _, alpha := range sweep(0, 10, 101) {
		m := Model{Alpha: alpha}
		if c := correctCount(m, records); c > bestCount {
			best, bestCount = m, c
		}
	}

	lo := best.Alpha - 0.1
	if lo < 0 {
		lo = 0
	}
	for _, alpha := range sweep(lo, best.Alpha+0.1, 41) {
		m := Model{Alpha: alpha}
		if c := correctCount(m, records); c > bestCount {
			best, bestCount = m, c
		}
	}

	return best.Predicate()
}

func correctCount(m Model, records []*logs.Record) int {
	pred := m.Predicate()
	count := 0
	for _, rec := range records {
		count += util.BoolToInt(pred(rec.Target, rec.Results))
	}
	return count
}

func sweep(lo, hi float64, steps int) []float64 {
	out := make([]float64, 0, steps)
	if steps < 2 || hi <= lo {
		return append(out, lo)
	}
	step := (hi - lo) / float64(steps-1)
	for i := 0; i < steps; i++ {
		out = append(out, lo+float64(i)*step)
	}
	return out
}
