package render

import (
	"io"
	"strings"

	"pkt.systems/tmui/internal/terminal"
)

// Stream turns driver output calls into ANSI for a terminal of a fixed
// size. It tracks the cursor the same way the shadow grid does and only
// emits glyphs that land inside the grid, so the terminal never wraps or
// scrolls on its own.
type Stream struct {
	enc    *Encoder
	width  int
	height int
	x      int
	y      int
	// placed is true while the terminal cursor sits at (x, y).
	placed bool
}

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer, width, height int) *Stream {
	return &Stream{enc: NewEncoder(w), width: width, height: height}
}

// Encoder exposes the underlying encoder for out-of-band sequences.
func (s *Stream) Encoder() *Encoder {
	return s.enc
}

// Err returns the first write error.
func (s *Stream) Err() error {
	return s.enc.Err()
}

// Position returns the tracked cursor.
func (s *Stream) Position() (int, int) {
	return s.x, s.y
}

func (s *Stream) SetColor(bg, fg terminal.Color) {
	s.enc.Color(bg, fg)
}

func (s *Stream) SetCursorPosition(x, y int) {
	s.x, s.y = x, y
	s.placed = false
}

func (s *Stream) PutChar(glyph byte, count int) {
	g := string(rune(glyph))
	s.put(count, func(n int) {
		s.enc.Text(strings.Repeat(g, n))
	}, func(int) {})
}

func (s *Stream) PutString(text string) {
	s.put(len(text), func(n int) {
		s.enc.Text(text[:n])
		text = text[n:]
	}, func(n int) {
		text = text[n:]
	})
}

// Sync moves the terminal cursor to the tracked position when it is inside
// the grid and not already there.
func (s *Stream) Sync() {
	if !s.placed && s.visible() {
		s.enc.MoveTo(s.x, s.y)
		s.placed = true
	}
}

// Invalidate forgets where the terminal cursor is, e.g. after something
// else wrote to the terminal.
func (s *Stream) Invalidate() {
	s.placed = false
}

func (s *Stream) visible() bool {
	return s.x >= 0 && s.y >= 0 && s.x < s.width && s.y < s.height
}

// put advances over count cells, handing visible runs to emit and the
// cells that fall outside the grid to drop.
func (s *Stream) put(count int, emit, drop func(n int)) {
	if s.width <= 0 || s.height <= 0 {
		return
	}
	for count > 0 {
		if s.y >= s.height {
			drop(count)
			s.skip(count)
			return
		}
		if !s.visible() {
			n := max(1, terminal.Offgrid(s.x, s.y, s.width, count))
			drop(n)
			s.skip(n)
			count -= n
			continue
		}
		n := min(count, s.width-s.x)
		s.Sync()
		emit(n)
		s.step(n)
		count -= n
	}
}

func (s *Stream) step(n int) {
	s.x += n
	if s.x >= s.width {
		s.x = 0
		s.y++
		s.placed = false
	}
}

// skip advances n cells arithmetically without emitting anything.
func (s *Stream) skip(n int) {
	s.x, s.y = terminal.Advance(s.x, s.y, s.width, n)
	s.placed = false
}
