package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pkt.systems/tmui/internal/terminal"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiHome        = "\x1b[H"
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiReset       = "\x1b[0m"
)

// ansiIndex maps the low half of the palette onto ANSI color numbers, which
// order red and blue the other way round.
var ansiIndex = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// Encoder writes ANSI escape sequences for driver operations. The first
// write error sticks and turns later calls into no-ops.
type Encoder struct {
	w   io.Writer
	err error
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Err returns the first write error.
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// Color selects the background and foreground colors.
func (e *Encoder) Color(bg, fg terminal.Color) {
	e.write(sgr(bg, fg))
}

// MoveTo places the cursor at zero-based (x, y). Negative coordinates are
// clamped to the origin, since the terminal has nothing left of or above it.
func (e *Encoder) MoveTo(x, y int) {
	e.write(fmt.Sprintf("\x1b[%d;%dH", max(y, 0)+1, max(x, 0)+1))
}

// Repeat writes glyph count times.
func (e *Encoder) Repeat(glyph byte, count int) {
	if count <= 0 {
		return
	}
	e.write(strings.Repeat(string(rune(glyph)), count))
}

// Text writes s as is.
func (e *Encoder) Text(s string) {
	e.write(s)
}

func (e *Encoder) HideCursor() {
	e.write(ansiHideCursor)
}

func (e *Encoder) ShowCursor() {
	e.write(ansiShowCursor)
}

// Reset returns the terminal to its default colors.
func (e *Encoder) Reset() {
	e.write(ansiReset)
}

// Clear erases the screen and homes the cursor.
func (e *Encoder) Clear() {
	e.write(ansiClearScreen + ansiHome)
}

// Snapshot renders a snapshot to the writer using ANSI escapes: a cleared
// screen, every row in order, then the cursor and active colors.
func Snapshot(w io.Writer, snap terminal.Snapshot) error {
	if snap.Cols <= 0 || snap.Rows <= 0 {
		return nil
	}
	enc := NewEncoder(w)
	enc.Reset()
	enc.HideCursor()
	enc.Clear()

	first := true
	var bg, fg terminal.Color
	for y := 0; y < snap.Rows; y++ {
		enc.MoveTo(0, y)
		var row strings.Builder
		for x := 0; x < snap.Cols; x++ {
			cell, err := snap.CellAt(x, y)
			if err != nil {
				break
			}
			if first || cell.BG != bg || cell.FG != fg {
				bg, fg = cell.BG, cell.FG
				row.WriteString(sgr(bg, fg))
				first = false
			}
			row.WriteRune(cell.Rune())
		}
		enc.Text(row.String())
	}

	cursorX := min(max(snap.Cursor.X, 0), snap.Cols-1)
	cursorY := min(max(snap.Cursor.Y, 0), snap.Rows-1)
	enc.Color(snap.Cursor.BG, snap.Cursor.FG)
	enc.MoveTo(cursorX, cursorY)
	return enc.Err()
}

func sgr(bg, fg terminal.Color) string {
	codes := []string{"0"}
	codes = append(codes, colorCode(true, fg))
	codes = append(codes, colorCode(false, bg))
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCode(fg bool, c terminal.Color) string {
	c = c.Normalize()
	base := 40
	if fg {
		base = 30
	}
	if c.Bright() {
		base += 60
	}
	return strconv.Itoa(base + ansiIndex[c&7])
}
