// internal/cli/legend.go
package lmdiff

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/lmdiff/internal/ansi"
	"github.com/mwiater/lmdiff/internal/diff"
)

// legendRow describes one entry of a challenge's color key.
type legendRow struct {
	style diff.Style
	label string
}

var legendRows = map[diff.Challenge][]legendRow{
	diff.ChallengeCompletion: {
		{style: diff.Style{Color: diff.Black}, label: "prefix predicted by both runs"},
		{style: diff.Style{Color: diff.Green, Bold: true}, label: "candidate needs less typing"},
		{style: diff.Style{Color: diff.Red, Bold: true}, label: "candidate needs more typing"},
		{style: diff.Style{Color: diff.Default}, label: "no difference"},
	},
	diff.ChallengeEntropy: {
		{style: diff.Style{Color: diff.Magenta}, label: "unscored in both runs"},
		{style: diff.Style{Color: diff.White}, label: "token became scored"},
		{style: diff.Style{Color: diff.White, Bold: true}, label: "token became unscored"},
		{style: diff.Style{Color: diff.Green, Bold: true}, label: "large log-probability gain"},
		{style: diff.Style{Color: diff.Green}, label: "moderate gain"},
		{style: diff.Style{Color: diff.Yellow}, label: "no significant drift"},
		{style: diff.Style{Color: diff.Red}, label: "moderate loss"},
		{style: diff.Style{Color: diff.Red, Bold: true}, label: "large loss"},
	},
	diff.ChallengeReranking: {
		{style: diff.Style{Color: diff.Red, Bold: true}, label: "unchanged -> miscorrected"},
		{style: diff.Style{Color: diff.Red}, label: "corrected -> uncorrected"},
		{style: diff.Style{Color: diff.Green, Bold: true}, label: "miscorrected -> unchanged"},
		{style: diff.Style{Color: diff.Green}, label: "uncorrected -> corrected"},
		{style: diff.Style{Color: diff.Black, Bold: true}, label: "still miscorrected/uncorrected"},
		{style: diff.Style{Color: diff.Black}, label: "still corrected/unchanged"},
	},
}

// legendOrder keeps the printout stable.
var legendOrder = []diff.Challenge{
	diff.ChallengeCompletion,
	diff.ChallengeEntropy,
	diff.ChallengeReranking,
}

// legendCmd prints the color key each challenge diff uses.
var legendCmd = &cobra.Command{
	Use:   "legend [completion|entropy|reranking]",
	Short: "Print the color key used by each challenge diff",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		applyColorMode(cfg.Color)

		challenges := legendOrder
		if len(args) == 1 {
			challenge, err := diff.ParseChallenge(args[0])
			if err != nil {
				return err
			}
			if challenge == diff.ChallengeAuto {
				return fmt.Errorf("legend needs a concrete challenge, not auto")
			}
			challenges = []diff.Challenge{challenge}
		}

		for _, challenge := range challenges {
			printLegend(cmd.OutOrStdout(), challenge)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(legendCmd)
}

func printLegend(out io.Writer, challenge diff.Challenge) {
	headingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s:", challenge)))

	w := ansi.NewWriter(out)
	for _, row := range legendRows[challenge] {
		fmt.Fprint(out, "  ")
		w.SetStyle(row.style.Color, row.style.Bold)
		w.Write("sample")
		w.SetStyle(diff.Default, false)
		fmt.Fprintf(out, "  %s\n", row.label)
	}
	fmt.Fprintln(out)
}
