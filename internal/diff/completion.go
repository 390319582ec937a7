// internal/diff/completion.go
package diff

import "github.com/mwiater/lmdiff/internal/util"

// rank returns the 1-based position of text within candidates, or 0 when the
// text never appears.
func rank(candidates []string, text string) int {
	for i, c := range candidates {
		if c == text {
			return i + 1
		}
	}
	return 0
}

// Ntyped returns the number of leading runes of target a user would have to
// type before the ranked completion lists surface the remaining suffix at an
// acceptable rank. The first position accepts rank <= 3, since it reflects a
// cold-start prediction; every later position requires rank <= 2. When no
// prefix qualifies the whole target must be typed, so the rune count of
// target is returned.
func Ntyped(target string, completions [][]string) int {
	runes := []rune(target)
	positions := util.Min(len(runes), len(completions))
	for i := 0; i < positions; i++ {
		limit := 2
		if i == 0 {
			limit = 3
		}
		if r := rank(completions[i], string(runes[i:])); r > 0 && r <= limit {
			return i
		}
	}
	return len(runes)
}

// CompareCompletion renders the keystroke-savings difference between the two
// logs for one pair: the prefix both models predict equally well draws grey,
// the remainder shows which side needed more typing.
func CompareCompletion(pair *Pair, out StyleSink) error {
	base := Ntyped(pair.Target, pair.Baseline.Completions)
	cand := Ntyped(pair.Target, pair.Candidate.Completions)
	n := util.Min(base, cand)
	runes := []rune(pair.Target)

	out.SetStyle(Black, false)
	out.Write(string(runes[:n]))

	switch {
	case base < cand:
		out.SetStyle(Red, true)
	case cand < base:
		out.SetStyle(Green, true)
	default:
		out.SetStyle(Default, false)
	}
	out.Write(string(runes[n:]))
	return nil
}
