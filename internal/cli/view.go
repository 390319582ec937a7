// internal/cli/view.go
package lmdiff

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/lmdiff/internal/ansi"
)

// viewCmd renders the same diff as diffCmd into a scrollable pager, which
// helps with long logs that would otherwise fly past the terminal.
var viewCmd = &cobra.Command{
	Use:   "view BASELINE CANDIDATE",
	Short: "Browse the diff of two evaluation logs in a scrollable pager",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		// The pager draws into an alternate screen, so terminal detection
		// would disable colors; force them on unless explicitly off.
		if cfg.Color != "never" {
			color.NoColor = false
		} else {
			color.NoColor = true
		}

		var buf bytes.Buffer
		if err := runDiff(args[0], args[1], cfg, ansi.NewWriter(&buf)); err != nil {
			return err
		}

		title := fmt.Sprintf("lmdiff: %s vs %s", args[0], args[1])
		program := tea.NewProgram(newViewModel(title, buf.String()), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("pager error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

var (
	viewTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	viewFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// viewModel is the Bubble Tea model backing the pager.
type viewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newViewModel(title, content string) viewModel {
	return viewModel{title: title, content: content}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := viewTitleStyle.Render(m.title)
	footer := viewFooterStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll · q quit", m.viewport.ScrollPercent()*100))
	return header + "\n\n" + m.viewport.View() + "\n" + footer
}
