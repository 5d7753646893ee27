package terminal

import (
	"fmt"
	"strings"
)

// Driver is the platform output driver consumed by the screen layer.
//
// Output methods never fail individually; buffered I/O errors are reported
// by Flush. Every method must be safe to call at any time after Init.
type Driver interface {
	// Init performs terminal or video-mode setup and reports the display geometry.
	Init() (width, height int, err error)
	// Restore re-applies the toolkit's input mode and hides the cursor, e.g.
	// after an external program changed the console mode.
	Restore() error
	// Deinit restores the original console mode and shows the cursor.
	Deinit() error

	SetColor(bg, fg Color)
	SetCursorPosition(x, y int)
	PutChar(glyph byte, count int)
	PutString(s string)
	Flush() error

	// GetKey blocks until one logical key event is available.
	GetKey() (Key, error)
}

// Cell is one character position: a glyph plus its color pair.
// A zero Glyph marks a cell that was never written and renders as a space.
type Cell struct {
	Glyph byte
	FG    Color
	BG    Color
}

// Rune returns the glyph to display for the cell.
func (c Cell) Rune() rune {
	if c.Glyph == 0 {
		return ' '
	}
	return rune(c.Glyph)
}

// Cursor is a cursor position plus the active color pair.
type Cursor struct {
	X  int
	Y  int
	FG Color
	BG Color
}

// Snapshot is a copy of a cell grid and its cursor.
type Snapshot struct {
	Cols   int
	Rows   int
	Cursor Cursor
	Cells  []Cell
}

// CellAt returns the cell at (x, y).
func (s Snapshot) CellAt(x, y int) (Cell, error) {
	if x < 0 || y < 0 || x >= s.Cols || y >= s.Rows {
		return Cell{}, fmt.Errorf("cell out of range")
	}
	idx := y*s.Cols + x
	if idx >= len(s.Cells) {
		return Cell{}, fmt.Errorf("cell out of range")
	}
	return s.Cells[idx], nil
}

// Row returns the glyphs of row y as a string.
func (s Snapshot) Row(y int) string {
	if y < 0 || y >= s.Rows {
		return ""
	}
	var b strings.Builder
	b.Grow(s.Cols)
	for x := 0; x < s.Cols; x++ {
		cell, err := s.CellAt(x, y)
		if err != nil {
			break
		}
		b.WriteRune(cell.Rune())
	}
	return b.String()
}

// IsPrintable reports whether b is a glyph the toolkit can place in a cell.
func IsPrintable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// Advance moves (x, y) forward n cells on a grid width columns wide. A
// column left of the grid walks to 0 first, and a column at or past the
// width wraps to the next row.
func Advance(x, y, width, n int) (int, int) {
	if x < 0 {
		d := min(n, -x)
		x += d
		n -= d
	}
	if n <= 0 || width <= 0 {
		return x, y
	}
	if x >= width {
		x = 0
		y++
		n--
	}
	x += n
	return x % width, y + x/width
}

// Offgrid returns how many of the next limit cells from (x, y) are passed
// before the cursor enters the grid. Rows below the grid are the caller's
// concern.
func Offgrid(x, y, width, limit int) int {
	if limit <= 0 || width <= 0 {
		return 0
	}
	switch {
	case x < 0:
		return min(limit, -x)
	case x >= width:
		return 1
	case y < 0:
		if -y > limit/width+1 {
			return limit
		}
		return min(limit, -y*width-x)
	}
	return 0
}
