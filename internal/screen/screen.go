// Package screen keeps the shadow copy of everything written to the display.
//
// A State mirrors each color, cursor and glyph operation into an in-memory
// cell grid before forwarding it to the platform driver. Because drivers are
// write-only, the grid is the only way to bring earlier content back: Save
// copies it into a single snapshot slot and Load repaints the whole display
// from that copy.
//
// A State is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call, since no operation is atomic with
// respect to both the grid and the device.
package screen

import (
	"errors"
	"fmt"

	"pkt.systems/pslog"
	"pkt.systems/tmui/internal/terminal"
)

// MaxCells caps the grid size accepted by New.
const MaxCells = 1 << 22

var (
	// ErrExhausted reports that the grid storage could not be provided.
	ErrExhausted = errors.New("screen: resource exhausted")
	// ErrInvalidGeometry reports a zero or negative width or height.
	ErrInvalidGeometry = fmt.Errorf("%w: invalid geometry", ErrExhausted)
	// ErrNonPrintable reports an attempt to write a control or non-ASCII glyph.
	ErrNonPrintable = errors.New("screen: non-printable glyph")
	// ErrNoSnapshot reports Load without a preceding Save.
	ErrNoSnapshot = errors.New("screen: no saved state")
)

// Output is the part of the platform driver the screen forwards to.
type Output interface {
	SetColor(bg, fg terminal.Color)
	SetCursorPosition(x, y int)
	PutChar(glyph byte, count int)
	PutString(s string)
}

// Options configures a State.
type Options struct {
	Logger pslog.Logger
	// DumpFile, when set, receives a debug dump of the grid on every Save.
	DumpFile string
}

// State is the shadow buffer, cursor and snapshot slot of one display.
type State struct {
	out    Output
	logger pslog.Logger
	opts   Options

	width  int
	height int
	cells  []terminal.Cell
	cursor terminal.Cursor

	backup   []terminal.Cell
	snapshot *snapshot
}

type snapshot struct {
	cells  []terminal.Cell
	cursor terminal.Cursor
}

// New allocates a zero-filled grid and backup grid of width*height cells.
func New(width, height int, out Output, opts Options) (*State, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrExhausted, width, height, MaxCells)
	}
	if out == nil {
		return nil, fmt.Errorf("screen: output is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	total := width * height
	return &State{
		out:    out,
		logger: logger,
		opts:   opts,
		width:  width,
		height: height,
		cells:  make([]terminal.Cell, total),
		backup: make([]terminal.Cell, total),
	}, nil
}

// Close releases both grids. Later writes still reach the driver but no
// longer touch memory.
func (s *State) Close() {
	s.cells = nil
	s.backup = nil
	s.snapshot = nil
}

// Size returns the grid dimensions.
func (s *State) Size() (int, int) {
	return s.width, s.height
}

// Cursor returns the shadow cursor and active colors.
func (s *State) Cursor() terminal.Cursor {
	return s.cursor
}

// CellAt returns the shadow cell at (x, y).
func (s *State) CellAt(x, y int) (terminal.Cell, error) {
	idx, ok := s.index(x, y)
	if !ok {
		return terminal.Cell{}, fmt.Errorf("cell (%d,%d) out of range", x, y)
	}
	return s.cells[idx], nil
}

// Snapshot returns a copy of the live grid.
func (s *State) Snapshot() terminal.Snapshot {
	cells := make([]terminal.Cell, len(s.cells))
	copy(cells, s.cells)
	return terminal.Snapshot{
		Cols:   s.width,
		Rows:   s.height,
		Cursor: s.cursor,
		Cells:  cells,
	}
}

// HasSaved reports whether the snapshot slot is filled.
func (s *State) HasSaved() bool {
	return s.snapshot != nil
}

// SetColor sets the active color pair. Values are folded into the palette.
func (s *State) SetColor(bg, fg terminal.Color) {
	bg, fg = bg.Normalize(), fg.Normalize()
	s.out.SetColor(bg, fg)
	s.cursor.BG = bg
	s.cursor.FG = fg
}

// SetCursorPosition moves the cursor. Positions outside the grid are
// accepted; glyphs written there are dropped.
func (s *State) SetCursorPosition(x, y int) {
	s.out.SetCursorPosition(x, y)
	s.cursor.X = x
	s.cursor.Y = y
}

// PutChar writes count copies of glyph at the cursor in the active color.
func (s *State) PutChar(glyph byte, count int) error {
	if !terminal.IsPrintable(glyph) {
		s.logger.Warn("rejected non-printable glyph", "glyph", int(glyph), "x", s.cursor.X, "y", s.cursor.Y)
		return fmt.Errorf("%w: 0x%02x", ErrNonPrintable, glyph)
	}
	if count <= 0 {
		return nil
	}
	s.out.PutChar(glyph, count)
	for count > 0 && s.cursor.Y < s.height {
		if n := terminal.Offgrid(s.cursor.X, s.cursor.Y, s.width, count); n > 0 {
			s.skip(n)
			count -= n
			continue
		}
		s.store(glyph)
		count--
	}
	s.skip(count)
	return nil
}

// PutString writes text at the cursor. A string containing a non-printable
// byte is rejected as a whole.
func (s *State) PutString(text string) error {
	for i := 0; i < len(text); i++ {
		if !terminal.IsPrintable(text[i]) {
			s.logger.Warn("rejected non-printable string", "glyph", int(text[i]), "offset", i)
			return fmt.Errorf("%w: 0x%02x at offset %d", ErrNonPrintable, text[i], i)
		}
	}
	if text == "" {
		return nil
	}
	s.out.PutString(text)
	for i := 0; i < len(text); i++ {
		s.store(text[i])
	}
	return nil
}

// store places one glyph at the cursor and advances it, wrapping to column 0
// of the next row once the column reaches the width.
func (s *State) store(glyph byte) {
	if idx, ok := s.index(s.cursor.X, s.cursor.Y); ok {
		s.cells[idx] = terminal.Cell{Glyph: glyph, FG: s.cursor.FG, BG: s.cursor.BG}
	}
	s.cursor.X++
	if s.cursor.X >= s.width {
		s.cursor.X = 0
		s.cursor.Y++
	}
}

// skip advances the cursor by n cells without touching the grid.
func (s *State) skip(n int) {
	s.cursor.X, s.cursor.Y = terminal.Advance(s.cursor.X, s.cursor.Y, s.width, n)
}

func (s *State) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, false
	}
	idx := y*s.width + x
	if idx >= len(s.cells) {
		return 0, false
	}
	return idx, true
}
