// internal/diff/diff.go
package diff

import (
	"errors"
	"fmt"
	"io"

	"github.com/mwiater/lmdiff/internal/logs"
	"github.com/mwiater/lmdiff/internal/rerank"
)

// Challenge selects which comparator interprets the paired logs.
type Challenge string

const (
	ChallengeCompletion Challenge = "completion"
	ChallengeEntropy    Challenge = "entropy"
	ChallengeReranking  Challenge = "reranking"
	ChallengeAuto       Challenge = "auto"
)

// ParseChallenge validates a challenge name from flags or config.
func ParseChallenge(s string) (Challenge, error) {
	switch c := Challenge(s); c {
	case ChallengeCompletion, ChallengeEntropy, ChallengeReranking, ChallengeAuto:
		return c, nil
	}
	return "", fmt.Errorf("unknown challenge %q (want completion, entropy, reranking or auto)", s)
}

// Comparator classifies one aligned pair and writes the styled target text.
type Comparator interface {
	Compare(pair *Pair, out StyleSink) error
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc func(pair *Pair, out StyleSink) error

func (f ComparatorFunc) Compare(pair *Pair, out StyleSink) error {
	return f(pair, out)
}

// Options carries the per-run inputs the comparator constructors need.
type Options struct {
	EntropyInterval float64
	BaselineModel   rerank.Predicate
	CandidateModel  rerank.Predicate
}

// constructors is the dispatch table from challenge mode to comparator.
var constructors = map[Challenge]func(opts Options) (Comparator, error){
	ChallengeCompletion: func(Options) (Comparator, error) {
		return ComparatorFunc(CompareCompletion), nil
	},
	ChallengeEntropy: func(opts Options) (Comparator, error) {
		if opts.EntropyInterval <= 0 {
			return nil, fmt.Errorf("entropy interval must be positive, got %v", opts.EntropyInterval)
		}
		return NewEntropyComparator(opts.EntropyInterval), nil
	},
	ChallengeReranking: func(opts Options) (Comparator, error) {
		if opts.BaselineModel == nil || opts.CandidateModel == nil {
			return nil, fmt.Errorf("reranking needs a fitted correctness model per log")
		}
		return NewRerankingComparator(opts.BaselineModel, opts.CandidateModel), nil
	},
}

// NewComparator builds the comparator for a resolved (non-auto) challenge.
func NewComparator(c Challenge, opts Options) (Comparator, error) {
	build, ok := constructors[c]
	if !ok {
		return nil, fmt.Errorf("no comparator for challenge %q", c)
	}
	return build(opts)
}

// Detect resolves the challenge a record's schema belongs to. An ambiguous
// or unrecognized schema is a usage error, surfaced before any output.
func Detect(rec *logs.Record) (Challenge, error) {
	var found []Challenge
	if rec.HasCompletions() {
		found = append(found, ChallengeCompletion)
	}
	if rec.HasLogProb() {
		found = append(found, ChallengeEntropy)
	}
	if rec.HasResults() {
		found = append(found, ChallengeReranking)
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", fmt.Errorf("cannot detect challenge: record has none of completions, logp or results")
	default:
		return "", fmt.Errorf("cannot detect challenge: record matches %v, pass --challenge to pick one", found)
	}
}

// Run streams pairs through the comparator, emitting one styled line per
// record. It stops at the first error with no rendering guarantee past the
// divergence point.
func Run(pairer *Pairer, cmp Comparator, out StyleSink) error {
	for {
		pair, err := pairer.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cmp.Compare(pair, out); err != nil {
			return err
		}
		out.SetStyle(Default, false)
		out.Write("\n")
	}
}
