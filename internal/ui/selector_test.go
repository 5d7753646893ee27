package ui

import (
	"errors"
	"testing"

	"pkt.systems/tmui/internal/terminal"
)

func newTestSelector(t *testing.T, c *Console, cancelable bool) *MultiSelector {
	t.Helper()
	ms, err := c.NewMultiSelector("Options", "Choose settings", cancelable)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	if _, err := ms.AddItem("Color", []string{"red", "green", "blue"}, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := ms.AddItem("Size", []string{"S", "M"}, 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	return ms
}

func TestMultiSelectorCyclesOptions(t *testing.T) {
	c, mem := openTestConsole(t, 80, 25,
		terminal.KeyRight, terminal.KeyRight, terminal.KeyDown, terminal.KeyLeft, terminal.KeyDown, terminal.KeyEnter)
	ms := newTestSelector(t, c, false)
	if ms.Selected(1) != 0 {
		t.Fatalf("out of range default not reset: %d", ms.Selected(1))
	}
	if err := ms.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := ms.Selected(0); got != 0 {
		t.Fatalf("color = %d, want 0 after wrapping right", got)
	}
	if got := ms.Selected(1); got != 1 {
		t.Fatalf("size = %d, want 1 after wrapping left", got)
	}
	if s, ok := ms.SelectedText(1); !ok || s != "M" {
		t.Fatalf("size text = %q", s)
	}
	if ms.Selected(9) != 0 || ms.Selected(-1) != 0 {
		t.Fatalf("out of range index not 0")
	}
	if _, ok := ms.SelectedText(9); ok {
		t.Fatalf("out of range text reported")
	}

	// Down from the last item wrapped back to the first.
	x, y, ok := findText(mem, "red")
	if !ok {
		t.Fatalf("option not painted")
	}
	if cell := cellAt(t, mem, x, y); cell.BG != terminal.Black {
		t.Fatalf("current option not highlighted: %+v", cell)
	}
	lx, ly, ok := findText(mem, "Color")
	if !ok || ly != y || lx <= x {
		t.Fatalf("label not right of its option")
	}
	if cell := cellAt(t, mem, lx, ly); cell.BG != terminal.LightGray {
		t.Fatalf("label highlighted: %+v", cell)
	}
}

func TestMultiSelectorCancel(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25, terminal.KeyRight, terminal.KeyEsc)
	ms := newTestSelector(t, c, true)
	if err := ms.Execute(); !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected cancel, got %v", err)
	}
	if ms.Selected(0) != 2 {
		t.Fatalf("change before cancel lost")
	}
	if err := ms.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestMultiSelectorValidation(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25)
	ms, err := c.NewMultiSelector("Empty", "", false)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	if err := ms.Execute(); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	if _, err := ms.AddItem("None", nil, 0); err == nil {
		t.Fatalf("expected error for item without options")
	}
	if ms.ItemCount() != 0 {
		t.Fatalf("invalid item added")
	}
}
