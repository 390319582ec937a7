// internal/cli/diff.go
package lmdiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/lmdiff/internal/ansi"
	"github.com/mwiater/lmdiff/internal/appconfig"
	"github.com/mwiater/lmdiff/internal/diff"
	"github.com/mwiater/lmdiff/internal/logging"
	"github.com/mwiater/lmdiff/internal/logs"
	"github.com/mwiater/lmdiff/internal/rerank"
)

// diffCmd renders the comparison of two evaluation logs to stdout.
var diffCmd = &cobra.Command{
	Use:   "diff BASELINE CANDIDATE",
	Short: "Render an ANSI-colored diff of two evaluation logs",
	Long: `Compare two JSONL evaluation logs generated over the same text and render
a token-by-token diff to stdout, one line per paired record. Colors mark
where the candidate log improved or regressed against the baseline.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		applyColorMode(cfg.Color)
		return runDiff(args[0], args[1], cfg, ansi.NewWriter(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

// applyColorMode maps the color config onto the fatih/color global toggle.
// "auto" leaves the library's own terminal detection in charge.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// runDiff wires the full pipeline: resolve the challenge, open or
// materialize both logs, build the comparator and stream the paired records
// into the sink.
func runDiff(basePath, candPath string, cfg *appconfig.Config, sink diff.StyleSink) error {
	challenge, err := diff.ParseChallenge(cfg.Challenge)
	if err != nil {
		return err
	}

	readerOpts := logs.ReaderOptions{Strict: cfg.Strict}

	if challenge == diff.ChallengeAuto {
		challenge, err = detectChallenge(basePath, readerOpts)
		if err != nil {
			return err
		}
		if cfg.Debug {
			logging.LogEvent("auto-detected %s challenge from %s", challenge, basePath)
		}
	}

	buildOpts := diff.Options{EntropyInterval: cfg.EntropyInterval}

	var pairer *diff.Pairer
	if challenge == diff.ChallengeReranking {
		// Reranking fits one correctness model per log, which needs the
		// whole log up front.
		baseRecords, err := logs.ReadAll(basePath, readerOpts)
		if err != nil {
			return err
		}
		candRecords, err := logs.ReadAll(candPath, readerOpts)
		if err != nil {
			return err
		}
		buildOpts.BaselineModel = rerank.Fit(baseRecords)
		buildOpts.CandidateModel = rerank.Fit(candRecords)
		pairer = diff.NewPairer(diff.NewSliceSource(baseRecords), diff.NewSliceSource(candRecords))
	} else {
		baseReader, err := logs.Open(basePath, readerOpts)
		if err != nil {
			return err
		}
		defer baseReader.Close()
		candReader, err := logs.Open(candPath, readerOpts)
		if err != nil {
			return err
		}
		defer candReader.Close()
		pairer = diff.NewPairer(baseReader, candReader)
	}

	cmp, err := diff.NewComparator(challenge, buildOpts)
	if err != nil {
		return err
	}

	if err := diff.Run(pairer, cmp, sink); err != nil {
		var violation *diff.InvariantViolation
		if cfg.Debug && errors.As(err, &violation) {
			logging.DumpValue("invariant violation", violation)
		}
		return err
	}
	return nil
}

// detectChallenge resolves the auto challenge from the baseline log's first
// record, before any output is produced.
func detectChallenge(path string, opts logs.ReaderOptions) (diff.Challenge, error) {
	r, err := logs.Open(path, opts)
	if err != nil {
		return "", err
	}
	defer r.Close()

	rec, err := r.Peek()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%s is empty, cannot detect challenge", path)
	}
	if err != nil {
		return "", err
	}
	return diff.Detect(rec)
}
