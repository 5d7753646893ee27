package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// MaxLines caps the length of a Lines sequence.
const MaxLines = 1 << 20

const tabWidth = 8

// ErrExhausted reports that a sequence could not grow to the requested size.
var ErrExhausted = errors.New("text: resource exhausted")

// Lines is an ordered sequence of elements, one per line of text.
type Lines []Element

// Strings returns the plain content of every line.
func (l Lines) Strings() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.String()
	}
	return out
}

// Grow returns a copy of lines resized to n entries. Existing entries are
// kept and new ones are empty. On failure lines is returned unchanged.
func Grow(lines Lines, n int) (Lines, error) {
	if n < 0 || n > MaxLines {
		return lines, fmt.Errorf("%w: %d lines", ErrExhausted, n)
	}
	out := make(Lines, n)
	copy(out, lines)
	return out, nil
}

// Longest returns the length of the longest line, 0 for an empty sequence.
func Longest(lines Lines) int {
	longest := 0
	for _, e := range lines {
		longest = max(longest, e.Len())
	}
	return longest
}

// FromText splits s at '\n' into lines, dropping one trailing '\r' from
// each. A final '\n' does not start another line; empty input yields none.
func FromText(s string) (Lines, error) {
	if s == "" {
		return nil, nil
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	lines, err := Grow(nil, n)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		line, next, _ := strings.Cut(s, "\n")
		lines[i].Assign(strings.TrimSuffix(line, "\r"))
		s = next
	}
	return lines, nil
}

// Sanitize makes s paintable on a glyph-per-cell display: tabs expand to the
// next tab stop, other control bytes become '?', and runes outside ASCII
// become one '?' per column they would occupy.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			i++
		case c < 0x20 || c == 0x7f:
			b.WriteByte('?')
			col++
			i++
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			col++
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			w := runewidth.RuneWidth(r)
			if r == utf8.RuneError && size == 1 {
				w = 1
			}
			b.WriteString(strings.Repeat("?", w))
			col += w
			i += size
		}
	}
	return b.String()
}
