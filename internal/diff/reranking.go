// internal/diff/reranking.go
package diff

import (
	"fmt"

	"github.com/mwiater/lmdiff/internal/rerank"
	"github.com/mwiater/lmdiff/internal/util"
)

// InvariantViolation reports a correction transition outside the modeled
// table. Reaching it means a correctness predicate contradicted the
// identity rule in a way the table does not admit; it aborts the run
// rather than defaulting to a style.
type InvariantViolation struct {
	Target string
	Pre    bool
	Base   bool
	Post   bool
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("unreachable correction transition (pre=%t base=%t post=%t) for target %q",
		e.Pre, e.Base, e.Post, util.TruncateRunes(e.Target, 40))
}

// RerankingComparator classifies the correction-state transition between the
// two logs using one fitted correctness predicate per log.
type RerankingComparator struct {
	baseModel rerank.Predicate
	candModel rerank.Predicate
}

func NewRerankingComparator(baseModel, candModel rerank.Predicate) *RerankingComparator {
	return &RerankingComparator{baseModel: baseModel, candModel: candModel}
}

// classifyCorrection maps a correction transition to its display style. The
// second result is false for combinations outside the table, which callers
// must treat as a fatal internal error.
func classifyCorrection(pre, base, post bool) (Style, bool) {
	switch {
	case pre && base && !post:
		// unchanged -> miscorrected
		return Style{Color: Red, Bold: true}, true
	case !pre && base && !post:
		// corrected -> uncorrected
		return Style{Color: Red}, true
	case pre && !base && post:
		// miscorrected -> unchanged
		return Style{Color: Green, Bold: true}, true
	case !pre && !base && post:
		// uncorrected -> corrected
		return Style{Color: Green}, true
	case !base && !post:
		// still miscorrected/uncorrected
		return Style{Color: Black, Bold: true}, true
	case base && post:
		// still corrected/unchanged
		return Style{Color: Black}, true
	}
	return Style{}, false
}

// Compare evaluates the pre/base/post correction states for one pair and
// renders the target under the transition's style.
func (r *RerankingComparator) Compare(pair *Pair, out StyleSink) error {
	baseResults := pair.Baseline.Results

	pre := rerank.Identity()(pair.Target, baseResults)
	base := r.baseModel(pair.Target, baseResults)
	post := r.candModel(pair.Target, pair.Candidate.Results)

	style, ok := classifyCorrection(pre, base, post)
	if !ok {
		return &InvariantViolation{Target: pair.Target, Pre: pre, Base: base, Post: post}
	}

	out.SetStyle(style.Color, style.Bold)
	out.Write(pair.Target)
	return nil
}
