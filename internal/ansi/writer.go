// internal/ansi/writer.go
// Package ansi renders styled diff segments as terminal escape sequences.
package ansi

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mwiater/lmdiff/internal/diff"
)

var foregrounds = map[diff.Color]color.Attribute{
	diff.Black:   color.FgBlack,
	diff.Red:     color.FgRed,
	diff.Green:   color.FgGreen,
	diff.Yellow:  color.FgYellow,
	diff.Blue:    color.FgBlue,
	diff.Magenta: color.FgMagenta,
	diff.White:   color.FgWhite,
}

// Writer is a diff.StyleSink backed by fatih/color. The plain default style
// writes text straight through.
type Writer struct {
	out io.Writer
	cur *color.Color
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// SetStyle switches the style applied to subsequent Write calls.
func (w *Writer) SetStyle(c diff.Color, bold bool) {
	if c == diff.Default && !bold {
		w.cur = nil
		return
	}
	attrs := make([]color.Attribute, 0, 2)
	if fg, ok := foregrounds[c]; ok {
		attrs = append(attrs, fg)
	}
	if bold {
		attrs = append(attrs, color.Bold)
	}
	w.cur = color.New(attrs...)
}

// Write emits text under the current style.
func (w *Writer) Write(text string) {
	if w.cur == nil {
		fmt.Fprint(w.out, text)
		return
	}
	w.cur.Fprint(w.out, text)
}
