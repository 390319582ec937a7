// internal/diff/style.go
// Package diff contains the comparison core: the pairer that aligns two
// evaluation logs and the per-challenge comparators that classify each
// aligned pair into a display style.
package diff

// Color identifies a terminal foreground color. Default means the
// terminal's own foreground.
type Color int

const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	White
)

func (c Color) String() string {
	switch c {
	case Default:
		return "default"
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case White:
		return "white"
	}
	return "unknown"
}

// Style pairs a color with a boldness flag.
type Style struct {
	Color Color
	Bold  bool
}

// StyleSink receives styled text segments from a comparator. Implementations
// own the actual escape-sequence formatting; the core only guarantees that a
// reader can recover the intended style of every character from the calls.
type StyleSink interface {
	SetStyle(c Color, bold bool)
	Write(text string)
}
