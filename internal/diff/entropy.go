// internal/diff/entropy.go
package diff

// EntropyComparator classifies log-probability drift between the two logs,
// banded by a sensitivity interval. The interval spans the six bands, so
// each band is interval/6 wide and band boundaries belong to the
// less-extreme band.
type EntropyComparator struct {
	interval float64
}

func NewEntropyComparator(interval float64) *EntropyComparator {
	return &EntropyComparator{interval: interval}
}

// Compare styles the whole target by the drift between the two logp values.
// A token unscored by both runs is magenta; a token scored by exactly one
// run is white, bold when it is the candidate that stopped scoring it.
func (e *EntropyComparator) Compare(pair *Pair, out StyleSink) error {
	base := pair.Baseline.LogProb
	cand := pair.Candidate.LogProb

	switch {
	case base == nil && cand == nil:
		out.SetStyle(Magenta, false)
	case base == nil || cand == nil:
		out.SetStyle(White, cand == nil)
	default:
		drift := *cand - *base
		x := e.interval / 6
		switch {
		case drift > 3*x:
			out.SetStyle(Green, true)
		case drift > x:
			out.SetStyle(Green, false)
		case drift > -x:
			out.SetStyle(Yellow, false)
		case drift > -3*x:
			out.SetStyle(Red, false)
		default:
			out.SetStyle(Red, true)
		}
	}

	out.Write(pair.Target)
	return nil
}
