// Package text holds the bounded text types widgets store their strings in,
// and the painting helpers that put them on a Surface.
package text

import "fmt"

// MaxElementLen is the number of bytes an Element can hold.
const MaxElementLen = 255

// Element is a bounded string. Input longer than MaxElementLen is cut and
// the cut is recorded, so callers can tell truncation happened.
type Element struct {
	text      string
	truncated bool
}

// NewElement returns an Element holding s.
func NewElement(s string) Element {
	var e Element
	e.Assign(s)
	return e
}

// Assign replaces the content with s and reports whether it was truncated.
func (e *Element) Assign(s string) bool {
	e.truncated = len(s) > MaxElementLen
	if e.truncated {
		s = s[:MaxElementLen]
	}
	e.text = s
	return e.truncated
}

// Assignf formats then assigns.
func (e *Element) Assignf(format string, args ...any) bool {
	return e.Assign(fmt.Sprintf(format, args...))
}

func (e Element) String() string {
	return e.text
}

// Len returns the stored length in bytes.
func (e Element) Len() int {
	return len(e.text)
}

// Truncated reports whether the last assignment was cut.
func (e Element) Truncated() bool {
	return e.truncated
}
