package driver

import (
	"io"

	"pkt.systems/tmui/internal/terminal"
)

// Counters tallies the output calls a Memory driver received.
type Counters struct {
	SetColor          int
	SetCursorPosition int
	PutChar           int
	PutString         int
	Flush             int
}

// Memory is a headless driver that writes straight into a cell grid, the
// way a text-mode adapter exposes video memory. Keys come from a scripted
// queue; GetKey returns io.EOF once it is drained.
type Memory struct {
	width  int
	height int

	cells  []terminal.Cell
	x      int
	y      int
	bg     terminal.Color
	fg     terminal.Color
	keys   []terminal.Key
	active bool
	hidden bool

	Calls Counters
}

// NewMemory returns a Memory driver with the given geometry and key script.
func NewMemory(width, height int, keys ...terminal.Key) *Memory {
	m := &Memory{width: width, height: height}
	if width > 0 && height > 0 {
		m.cells = make([]terminal.Cell, width*height)
	}
	m.keys = append(m.keys, keys...)
	return m
}

// Init reports the configured geometry.
func (m *Memory) Init() (int, int, error) {
	m.active = true
	m.hidden = true
	return m.width, m.height, nil
}

// Restore hides the cursor again.
func (m *Memory) Restore() error {
	m.hidden = true
	return nil
}

// Deinit shows the cursor and marks the driver inactive.
func (m *Memory) Deinit() error {
	m.active = false
	m.hidden = false
	return nil
}

// Active reports whether Init ran without a matching Deinit.
func (m *Memory) Active() bool {
	return m.active
}

// CursorHidden reports the cursor visibility.
func (m *Memory) CursorHidden() bool {
	return m.hidden
}

func (m *Memory) SetColor(bg, fg terminal.Color) {
	m.Calls.SetColor++
	m.bg, m.fg = bg, fg
}

func (m *Memory) SetCursorPosition(x, y int) {
	m.Calls.SetCursorPosition++
	m.x, m.y = x, y
}

func (m *Memory) PutChar(glyph byte, count int) {
	m.Calls.PutChar++
	for count > 0 && m.y < m.height {
		if n := terminal.Offgrid(m.x, m.y, m.width, count); n > 0 {
			m.x, m.y = terminal.Advance(m.x, m.y, m.width, n)
			count -= n
			continue
		}
		m.put(glyph)
		count--
	}
	m.x, m.y = terminal.Advance(m.x, m.y, m.width, count)
}

func (m *Memory) PutString(s string) {
	m.Calls.PutString++
	for i := 0; i < len(s); i++ {
		m.put(s[i])
	}
}

func (m *Memory) Flush() error {
	m.Calls.Flush++
	return nil
}

// GetKey pops the next scripted key.
func (m *Memory) GetKey() (terminal.Key, error) {
	if len(m.keys) == 0 {
		return 0, io.EOF
	}
	k := m.keys[0]
	m.keys = m.keys[1:]
	return k, nil
}

// PushKeys appends keys to the script.
func (m *Memory) PushKeys(keys ...terminal.Key) {
	m.keys = append(m.keys, keys...)
}

// Pending returns the number of unread scripted keys.
func (m *Memory) Pending() int {
	return len(m.keys)
}

// Snapshot returns a copy of the device grid and cursor.
func (m *Memory) Snapshot() terminal.Snapshot {
	cells := make([]terminal.Cell, len(m.cells))
	copy(cells, m.cells)
	return terminal.Snapshot{
		Cols:   m.width,
		Rows:   m.height,
		Cursor: terminal.Cursor{X: m.x, Y: m.y, BG: m.bg, FG: m.fg},
		Cells:  cells,
	}
}

// Row returns the glyphs on row y.
func (m *Memory) Row(y int) string {
	return m.Snapshot().Row(y)
}

func (m *Memory) put(glyph byte) {
	if m.x >= 0 && m.y >= 0 && m.x < m.width && m.y < m.height {
		m.cells[m.y*m.width+m.x] = terminal.Cell{Glyph: glyph, BG: m.bg, FG: m.fg}
	}
	m.x++
	if m.x >= m.width {
		m.x = 0
		m.y++
	}
}
