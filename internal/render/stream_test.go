package render

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/x/vt"

	"pkt.systems/pslog"
	"pkt.systems/tmui/internal/screen"
	"pkt.systems/tmui/internal/terminal"
)

func newStreamState(t *testing.T, buf *bytes.Buffer, width, height int) (*screen.State, *Stream) {
	t.Helper()
	var logs bytes.Buffer
	logger := pslog.NewWithOptions(&logs, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
	stream := NewStream(buf, width, height)
	s, err := screen.New(width, height, stream, screen.Options{Logger: logger})
	if err != nil {
		t.Fatalf("screen.New: %v", err)
	}
	return s, stream
}

func assertVTMatches(t *testing.T, out []byte, snap terminal.Snapshot) {
	t.Helper()
	emu := vt.NewEmulator(snap.Cols, snap.Rows)
	if _, err := emu.Write(out); err != nil {
		t.Fatalf("vt write: %v", err)
	}
	for y := 0; y < snap.Rows; y++ {
		var row strings.Builder
		for x := 0; x < snap.Cols; x++ {
			content := " "
			if cell := emu.CellAt(x, y); cell != nil && cell.Content != "" {
				content = cell.Content
			}
			row.WriteString(content)
		}
		if got, want := row.String(), snap.Row(y); got != want {
			t.Fatalf("terminal row %d = %q, shadow %q", y, got, want)
		}
	}
}

func TestStreamClipsAtLastRow(t *testing.T) {
	var buf bytes.Buffer
	s, stream := newStreamState(t, &buf, 5, 3)
	s.SetColor(terminal.Blue, terminal.White)
	s.SetCursorPosition(0, 0)
	_ = s.PutString("top")
	s.SetCursorPosition(3, 2)
	_ = s.PutChar('#', 9)
	s.SetCursorPosition(-2, 1)
	_ = s.PutString("xymid")
	stream.Sync()

	snap := s.Snapshot()
	if got := snap.Row(0); got != "top  " {
		t.Fatalf("shadow row0 = %q", got)
	}
	if got := snap.Row(1); got != "mid  " {
		t.Fatalf("shadow row1 = %q", got)
	}
	assertVTMatches(t, buf.Bytes(), snap)

	x, y := stream.Position()
	if cur := s.Cursor(); cur.X != x || cur.Y != y {
		t.Fatalf("stream cursor (%d,%d), shadow (%d,%d)", x, y, cur.X, cur.Y)
	}
}

func TestStreamMatchesShadowRandomWrites(t *testing.T) {
	const width, height = 9, 4
	rng := rand.New(rand.NewSource(7))
	var buf bytes.Buffer
	s, stream := newStreamState(t, &buf, width, height)
	for i := 0; i < 200; i++ {
		s.SetColor(terminal.Color(rng.Intn(16)), terminal.Color(rng.Intn(16)))
		s.SetCursorPosition(rng.Intn(width+4)-2, rng.Intn(height+2)-1)
		glyph := byte('a' + rng.Intn(26))
		if rng.Intn(2) == 0 {
			_ = s.PutChar(glyph, rng.Intn(3*width))
		} else {
			_ = s.PutString(strings.Repeat(string(rune(glyph)), rng.Intn(2*width)))
		}
		x, y := stream.Position()
		if cur := s.Cursor(); cur.X != x || cur.Y != y {
			t.Fatalf("step %d: stream cursor (%d,%d), shadow (%d,%d)", i, x, y, cur.X, cur.Y)
		}
	}
	stream.Sync()
	assertVTMatches(t, buf.Bytes(), s.Snapshot())
}

func TestStreamSkipsFarOffGridCursor(t *testing.T) {
	const far = 1_000_000_000_000
	var buf bytes.Buffer
	s, stream := newStreamState(t, &buf, 5, 3)
	s.SetColor(terminal.Black, terminal.LightGray)
	s.SetCursorPosition(-far, 1)
	_ = s.PutChar('>', far+3)
	s.SetCursorPosition(2, -far)
	_ = s.PutChar('^', 5*far-2+2)
	if x, y := stream.Position(); x != 2 || y != 0 {
		t.Fatalf("stream cursor (%d,%d), want (2,0)", x, y)
	}
	if got := s.Snapshot().Row(1); got != ">>>  " {
		t.Fatalf("row 1 = %q", got)
	}
	stream.Sync()
	assertVTMatches(t, buf.Bytes(), s.Snapshot())
}

func TestStreamLoadRepaintsTerminal(t *testing.T) {
	var buf bytes.Buffer
	s, stream := newStreamState(t, &buf, 6, 2)
	s.SetColor(terminal.Black, terminal.LightGray)
	s.SetCursorPosition(0, 0)
	_ = s.PutString("before")
	s.Save()
	s.SetCursorPosition(0, 0)
	_ = s.PutChar('!', 12)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	stream.Sync()
	assertVTMatches(t, buf.Bytes(), s.Snapshot())
}
