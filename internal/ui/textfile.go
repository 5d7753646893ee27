package ui

import (
	"fmt"
	"os"

	"pkt.systems/tmui/internal/terminal"
	"pkt.systems/tmui/internal/text"
)

const footerTextBox = "UP/DOWN/PGUP/PGDN = Scroll, ENTER = Close"

type textBox struct {
	con     *Console
	obj     *Object
	lines   text.Lines
	top     int
	highest int
	visible int
}

// TextFileBox shows the file at path in a scrollable box until the user
// presses Enter or Esc.
func (c *Console) TextFileBox(title, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("read %s: %w", path, ErrEmptyFile)
	}
	return c.TextBox(title, string(data))
}

// TextBox shows body in a scrollable box until the user presses Enter or
// Esc.
func (c *Console) TextBox(title, body string) error {
	tb, err := c.newTextBox(title, body)
	if err != nil {
		return err
	}
	err = tb.execute()
	if uerr := tb.obj.Unpaint(); uerr != nil && err == nil {
		err = uerr
	}
	return err
}

func (c *Console) newTextBox(title, body string) (*textBox, error) {
	lines, err := text.FromText(body)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyFile
	}
	for i := range lines {
		lines[i].Assign(text.Sanitize(lines[i].String()))
	}
	return &textBox{
		con:   c,
		obj:   c.newObject(title, footerTextBox),
		lines: lines,
	}, nil
}

func (tb *textBox) execute() error {
	tb.obj.Layout(text.Longest(tb.lines), len(tb.lines))
	if err := tb.obj.Paint(); err != nil {
		return err
	}
	tb.visible = tb.obj.ContentHeight()
	tb.highest = max(0, len(tb.lines)-tb.visible)
	if err := tb.redraw(); err != nil {
		return err
	}
	for {
		k, err := tb.con.readKey()
		if err != nil {
			return err
		}
		switch k {
		case terminal.KeyUp:
			err = tb.move(-1)
		case terminal.KeyDown:
			err = tb.move(1)
		case terminal.KeyPgUp:
			err = tb.move(-tb.visible)
		case terminal.KeyPgDn:
			err = tb.move(tb.visible)
		case terminal.KeyEnter, terminal.KeyEsc:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (tb *textBox) move(delta int) error {
	top := min(max(tb.top+delta, 0), tb.highest)
	if top == tb.top {
		return nil
	}
	tb.top = top
	return tb.redraw()
}

func (tb *textBox) redraw() error {
	end := min(tb.top+tb.visible, len(tb.lines))
	if err := tb.obj.displayLines(tb.obj.ContentX(), tb.obj.ContentY(), tb.obj.ContentWidth(), tb.lines[tb.top:end]); err != nil {
		return err
	}
	return tb.con.flush()
}
