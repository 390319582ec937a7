// internal/ansi/writer_test.go
package ansi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/mwiater/lmdiff/internal/diff"
)

// forceColor pins the package-global color toggle for the duration of a
// test, so results do not depend on the terminal running the tests.
func forceColor(t *testing.T, enabled bool) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = orig })
}

func TestWriterEmitsEscapes(t *testing.T) {
	forceColor(t, true)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetStyle(diff.Red, true)
	w.Write("bad")

	out := buf.String()
	if !strings.Contains(out, "bad") {
		t.Fatalf("text missing from output: %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected escape sequences, got %q", out)
	}
	if !strings.Contains(out, "31") || !strings.Contains(out, "1") {
		t.Fatalf("expected red+bold attributes, got %q", out)
	}
}

func TestWriterDefaultStyleIsPlain(t *testing.T) {
	forceColor(t, true)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetStyle(diff.Green, false)
	w.Write("styled")
	w.SetStyle(diff.Default, false)
	w.Write("\n")

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("default-style newline should pass through unstyled: %q", out)
	}
}

func TestWriterNoColorMode(t *testing.T) {
	forceColor(t, false)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetStyle(diff.Magenta, false)
	w.Write("plain")
	w.SetStyle(diff.Default, false)
	w.Write("\n")

	if got := buf.String(); got != "plain\n" {
		t.Fatalf("no-color output: %q", got)
	}
}

func TestWriterEveryColorMapped(t *testing.T) {
	forceColor(t, true)

	colors := []diff.Color{
		diff.Black, diff.Red, diff.Green, diff.Yellow,
		diff.Blue, diff.Magenta, diff.White,
	}
	for _, c := range colors {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.SetStyle(c, false)
		w.Write("x")
		if !strings.Contains(buf.String(), "\x1b[") {
			t.Fatalf("color %v produced no escape: %q", c, buf.String())
		}
	}
}
