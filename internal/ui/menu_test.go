package ui

import (
	"errors"
	"io"
	"strings"
	"testing"

	"pkt.systems/tmui/internal/terminal"
)

func newTestMenu(t *testing.T, c *Console, cancelable, fkeys bool) *Menu {
	t.Helper()
	m, err := c.NewMenu("Main", "Pick one", cancelable, fkeys)
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	for _, item := range []string{"Alpha", "Beta", "Gamma"} {
		m.AddItem(item)
	}
	return m
}

func TestMenuNavigationWraps(t *testing.T) {
	c, mem := openTestConsole(t, 80, 25,
		terminal.KeyDown, terminal.KeyDown, terminal.KeyDown, terminal.KeyUp, terminal.KeyEnter)
	m := newTestMenu(t, c, false, false)
	choice, err := m.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if choice != 2 {
		t.Fatalf("choice = %d, want 2", choice)
	}

	x, y, ok := findText(mem, "Gamma")
	if !ok {
		t.Fatalf("selected item not on screen")
	}
	if cell := cellAt(t, mem, x, y); cell.BG != terminal.Black || cell.FG != terminal.LightGray {
		t.Fatalf("selected item not highlighted: %+v", cell)
	}
	x, y, _ = findText(mem, "Alpha")
	if cell := cellAt(t, mem, x, y); cell.BG != terminal.LightGray || cell.FG != terminal.Black {
		t.Fatalf("unselected item highlighted: %+v", cell)
	}
	if _, py, ok := findText(mem, "Pick one"); !ok || py != y-2 {
		t.Fatalf("prompt not two rows above the first item")
	}
	if _, _, ok := findText(mem, " Main "); !ok {
		t.Fatalf("title missing from the frame")
	}
	if _, fy, ok := findText(mem, footerMenu); !ok || fy != 24 {
		t.Fatalf("footer hint not on the bottom row")
	}
}

func TestMenuCancel(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25, terminal.KeyEsc)
	m := newTestMenu(t, c, true, false)
	if _, err := m.Execute(); !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected cancel, got %v", err)
	}
}

func TestMenuIgnoresEscWhenNotCancelable(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25, terminal.KeyEsc, terminal.KeyDown, terminal.KeyEnter)
	m := newTestMenu(t, c, false, false)
	choice, err := m.Execute()
	if err != nil || choice != 1 {
		t.Fatalf("execute = %d, %v", choice, err)
	}
}

func TestMenuFunctionKeys(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25, terminal.KeyF3)
	m := newTestMenu(t, c, false, true)
	_, err := m.Execute()
	if FunctionKey(err) != 3 {
		t.Fatalf("expected F3, got %v", err)
	}

	c2, _ := openTestConsole(t, 80, 25, terminal.KeyF3, terminal.KeyEnter)
	m2 := newTestMenu(t, c2, false, false)
	if choice, err := m2.Execute(); err != nil || choice != 0 {
		t.Fatalf("disabled function key: %d, %v", choice, err)
	}
}

func TestMenuWithoutItems(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25)
	m, err := c.NewMenu("Empty", "", true, false)
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if _, err := m.Execute(); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestMenuEndOfInput(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25)
	m := newTestMenu(t, c, false, false)
	if _, err := m.Execute(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestMenuItems(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25)
	m, err := c.NewMenu("Items", "", false, false)
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if idx := m.AddItemf("Disk %d (%s)", 2, "sdb"); idx != 0 {
		t.Fatalf("index = %d", idx)
	}
	m.AddItem("tab\there")
	if m.ItemCount() != 2 {
		t.Fatalf("count = %d", m.ItemCount())
	}
	if s, ok := m.ItemText(0); !ok || s != "Disk 2 (sdb)" {
		t.Fatalf("item 0 = %q, %v", s, ok)
	}
	if s, _ := m.ItemText(1); s != "tab     here" {
		t.Fatalf("item 1 = %q", s)
	}
	if _, ok := m.ItemText(2); ok {
		t.Fatalf("out of range item reported")
	}
}

func TestMenuScrollsLongLists(t *testing.T) {
	keys := make([]terminal.Key, 0, 8)
	for range 7 {
		keys = append(keys, terminal.KeyDown)
	}
	keys = append(keys, terminal.KeyEnter)
	c, mem := openTestConsole(t, 40, 12, keys...)
	m, err := c.NewMenu("Long", "", false, false)
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	for i := range 10 {
		m.AddItemf("Item %d", i)
	}
	choice, err := m.Execute()
	if err != nil || choice != 7 {
		t.Fatalf("execute = %d, %v", choice, err)
	}
	if m.visible != c.MaxContentHeight() {
		t.Fatalf("visible rows = %d, want %d", m.visible, c.MaxContentHeight())
	}
	if _, _, ok := findText(mem, "Item 0"); ok {
		t.Fatalf("first item still visible after scrolling")
	}
	x, y, ok := findText(mem, "Item 7")
	if !ok {
		t.Fatalf("selected item not visible")
	}
	if cell := cellAt(t, mem, x, y); cell.BG != terminal.Black {
		t.Fatalf("selected item not highlighted")
	}
	if _, y2, ok := findText(mem, "Item 2"); !ok || y2 != y-5 {
		t.Fatalf("window does not start at item 2")
	}
}

func TestYesNo(t *testing.T) {
	c, mem := openTestConsole(t, 80, 25, terminal.KeyDown, terminal.KeyEnter)
	answer, err := c.YesNo("Confirm", false, "Format disk?")
	if err != nil {
		t.Fatalf("yesno: %v", err)
	}
	if answer != No {
		t.Fatalf("answer = %d, want No", answer)
	}
	if _, _, ok := findText(mem, "Format disk?"); ok {
		t.Fatalf("dialog not removed after answer")
	}
	for y := 1; y < 24; y++ {
		if row := mem.Row(y); strings.TrimSpace(row) != "" {
			t.Fatalf("row %d not background after close: %q", y, row)
		}
	}
}

func TestOK(t *testing.T) {
	c, _ := openTestConsole(t, 80, 25, terminal.KeyEnter)
	if err := c.OK("Done", false, "All files copied.\nPress Enter."); err != nil {
		t.Fatalf("ok: %v", err)
	}
	c2, _ := openTestConsole(t, 80, 25, terminal.KeyEsc)
	if err := c2.OK("Done", true, "Bye"); !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected cancel, got %v", err)
	}
}

func TestExecuteDirectlyRestoresFooter(t *testing.T) {
	c, mem := openTestConsole(t, 80, 25, terminal.KeyEnter)
	if err := c.SetFooter("Ready"); err != nil {
		t.Fatalf("footer: %v", err)
	}
	choice, err := c.ExecuteDirectly("Pick", false, []string{"One", "Two"}, "")
	if err != nil || choice != 0 {
		t.Fatalf("execute = %d, %v", choice, err)
	}
	if got := mem.Row(24); !strings.HasPrefix(got, " Ready ") {
		t.Fatalf("footer = %q", got)
	}
	if c.footer != "Ready" {
		t.Fatalf("console footer = %q", c.footer)
	}
}
