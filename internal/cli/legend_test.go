// internal/cli/legend_test.go
package lmdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mwiater/lmdiff/internal/diff"
)

func TestLegendRowsCoverEveryChallenge(t *testing.T) {
	t.Parallel()

	for _, challenge := range legendOrder {
		rows, ok := legendRows[challenge]
		if !ok {
			t.Fatalf("no legend rows for %s", challenge)
		}
		if len(rows) == 0 {
			t.Fatalf("empty legend for %s", challenge)
		}
	}
	if _, ok := legendRows[diff.ChallengeAuto]; ok {
		t.Fatalf("auto must not carry a legend")
	}
}

func TestPrintLegend(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	printLegend(&buf, diff.ChallengeEntropy)

	out := buf.String()
	if !strings.Contains(out, "entropy:") {
		t.Fatalf("missing heading in %q", out)
	}
	if strings.Count(out, "sample") != len(legendRows[diff.ChallengeEntropy]) {
		t.Fatalf("expected one swatch per row, got %q", out)
	}
	if !strings.Contains(out, "no significant drift") {
		t.Fatalf("missing label in %q", out)
	}
}
