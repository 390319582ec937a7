// internal/cli/view_test.go
package lmdiff

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewModelSizesOnWindowMsg(t *testing.T) {
	t.Parallel()

	m := newViewModel("title", "line1\nline2\n")
	if m.View() != "loading..." {
		t.Fatalf("unsized model should show the loading placeholder")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(viewModel)
	if !m.ready {
		t.Fatalf("model should be ready after a window size message")
	}

	view := m.View()
	if !strings.Contains(view, "title") {
		t.Fatalf("view missing title: %q", view)
	}
	if !strings.Contains(view, "line1") {
		t.Fatalf("view missing content: %q", view)
	}
}

func TestViewModelQuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		m := newViewModel("t", "c")
		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q should quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q should produce a quit message", key)
		}
	}
}
