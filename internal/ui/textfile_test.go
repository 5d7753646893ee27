package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/tmui/internal/terminal"
)

func numberedLines(n int) string {
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "line %02d\r\n", i)
	}
	return b.String()
}

func TestTextBoxScrolling(t *testing.T) {
	c, mem := openTestConsole(t, 80, 25, terminal.KeyPgDn, terminal.KeyDown, terminal.KeyUp, terminal.KeyUp)
	tb, err := c.newTextBox("Log", numberedLines(30))
	if err != nil {
		t.Fatalf("new text box: %v", err)
	}
	if err := tb.execute(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected end of key script, got %v", err)
	}
	if tb.visible != c.MaxContentHeight() || tb.highest != 30-tb.visible {
		t.Fatalf("visible = %d, highest = %d", tb.visible, tb.highest)
	}
	want := tb.highest - 2
	if tb.top != want {
		t.Fatalf("top = %d, want %d", tb.top, want)
	}
	first := fmt.Sprintf("line %02d", want)
	_, y, ok := findText(mem, first)
	if !ok {
		t.Fatalf("%s not on screen", first)
	}
	if y != tb.obj.ContentY() {
		t.Fatalf("%s on row %d, want %d", first, y, tb.obj.ContentY())
	}
	if _, _, ok := findText(mem, fmt.Sprintf("line %02d", want-1)); ok {
		t.Fatalf("line above the window still visible")
	}
}

func TestTextBoxClampsAtTop(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25, terminal.KeyUp, terminal.KeyPgUp)
	tb, err := c.newTextBox("Short", "short\nfile\n")
	if err != nil {
		t.Fatalf("new text box: %v", err)
	}
	if err := tb.execute(); !errors.Is(err, io.EOF) {
		t.Fatalf("execute: %v", err)
	}
	if tb.top != 0 || tb.highest != 0 {
		t.Fatalf("top = %d, highest = %d", tb.top, tb.highest)
	}
}

func TestTextFileBox(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("first\tcolumn\nsecond line\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, mem := openTestConsole(t, 80, 25, terminal.KeyDown, terminal.KeyEsc)
	if err := c.TextFileBox("Notes", path); err != nil {
		t.Fatalf("text file box: %v", err)
	}
	if _, _, ok := findText(mem, "second line"); ok {
		t.Fatalf("box not removed after close")
	}

	c2, _ := openTestConsole(t, 80, 25, terminal.KeyEnter)
	if err := c2.TextFileBox("Missing", filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := c2.TextFileBox("Empty", empty); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestTextBoxSanitizesContent(t *testing.T) {
	c, mem := openTestConsole(t, 80, 25)
	tb, err := c.newTextBox("Raw", "a\tb\x07c\n")
	if err != nil {
		t.Fatalf("new text box: %v", err)
	}
	if err := tb.execute(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected end of key script, got %v", err)
	}
	if _, _, ok := findText(mem, "a       b?c"); !ok {
		t.Fatalf("sanitized line not on screen")
	}
	if err := c.TextBox("None", ""); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile for empty body, got %v", err)
	}
}
