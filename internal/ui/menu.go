package ui

import (
	"fmt"

	"pkt.systems/tmui/internal/terminal"
	"pkt.systems/tmui/internal/text"
)

// Answers returned by YesNo.
const (
	Yes = 0
	No  = 1
)

const (
	footerMenu           = "UP/DOWN = Select, ENTER = Confirm"
	footerMenuCancelable = "UP/DOWN = Select, ENTER = Confirm, ESC = Cancel"
)

// Menu is a vertical list of items with an optional prompt above it.
type Menu struct {
	con        *Console
	obj        *Object
	prompt     text.Lines
	items      text.Lines
	cancelable bool
	fkeys      bool

	selected  int
	top       int
	visible   int
	itemX     int
	itemY     int
	itemWidth int
}

// NewMenu creates a menu. Esc cancels it when cancelable is set; function
// keys end it with a *FunctionKeyError when fkeys is set.
func (c *Console) NewMenu(title, prompt string, cancelable, fkeys bool) (*Menu, error) {
	lines, err := promptLines(prompt)
	if err != nil {
		return nil, err
	}
	footer := footerMenu
	if cancelable {
		footer = footerMenuCancelable
	}
	return &Menu{
		con:        c,
		obj:        c.newObject(title, footer),
		prompt:     lines,
		cancelable: cancelable,
		fkeys:      fkeys,
	}, nil
}

func promptLines(prompt string) (text.Lines, error) {
	lines, err := text.FromText(prompt)
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	for i := range lines {
		lines[i].Assign(text.Sanitize(lines[i].String()))
	}
	return lines, nil
}

// AddItem appends an item and returns its index.
func (m *Menu) AddItem(label string) int {
	m.items = append(m.items, text.NewElement(text.Sanitize(label)))
	return len(m.items) - 1
}

// AddItemf formats and appends an item.
func (m *Menu) AddItemf(format string, args ...any) int {
	return m.AddItem(fmt.Sprintf(format, args...))
}

// ItemText returns the label of item i.
func (m *Menu) ItemText(i int) (string, bool) {
	if i < 0 || i >= len(m.items) {
		return "", false
	}
	return m.items[i].String(), true
}

func (m *Menu) ItemCount() int {
	return len(m.items)
}

// Execute paints the menu and lets the user choose. It returns the chosen
// index, ErrCanceled, or a *FunctionKeyError. Execute may be called again
// after it returns.
func (m *Menu) Execute() (int, error) {
	if len(m.items) == 0 {
		return 0, ErrNoItems
	}
	if err := m.paint(); err != nil {
		return 0, err
	}
	for {
		k, err := m.con.readKey()
		if err != nil {
			return 0, err
		}
		switch {
		case k == terminal.KeyUp:
			next := m.selected - 1
			if next < 0 {
				next = len(m.items) - 1
			}
			err = m.selectItem(next)
		case k == terminal.KeyDown:
			err = m.selectItem((m.selected + 1) % len(m.items))
		case k == terminal.KeyEnter:
			return m.selected, nil
		case k == terminal.KeyEsc && m.cancelable:
			return 0, ErrCanceled
		case m.fkeys && k.FunctionIndex() > 0:
			return 0, &FunctionKeyError{N: k.FunctionIndex()}
		}
		if err != nil {
			return 0, err
		}
	}
}

// Selected returns the highlighted item.
func (m *Menu) Selected() int {
	return m.selected
}

// Close removes the menu from the screen.
func (m *Menu) Close() error {
	return m.obj.Unpaint()
}

func (m *Menu) paint() error {
	contentW := max(text.Longest(m.items)+2*itemPaddingH, text.Longest(m.prompt))
	promptRows := 0
	if len(m.prompt) > 0 {
		promptRows = len(m.prompt) + 1
	}
	m.obj.Layout(contentW, len(m.items)+promptRows)
	if err := m.obj.Paint(); err != nil {
		return err
	}

	avail := m.obj.ContentHeight()
	shown := min(len(m.prompt), max(0, avail-2))
	promptRows = 0
	if shown > 0 {
		promptRows = shown + 1
		if err := m.obj.displayLines(m.obj.ContentX(), m.obj.ContentY(), m.obj.ContentWidth(), m.prompt[:shown]); err != nil {
			return err
		}
	}

	m.itemX = m.obj.ContentX() + itemPaddingH
	m.itemY = m.obj.ContentY() + promptRows
	m.itemWidth = max(1, m.obj.ContentWidth()-2*itemPaddingH)
	m.visible = max(1, avail-promptRows)
	m.selected = 0
	m.top = 0
	if err := m.drawItems(); err != nil {
		return err
	}
	return m.con.flush()
}

func (m *Menu) drawItems() error {
	for row := 0; row < m.visible && m.top+row < len(m.items); row++ {
		if err := m.drawItem(m.top + row); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) drawItem(i int) error {
	th := m.con.theme
	bg, fg := th.ObjectBG, th.ObjectFG
	if i == m.selected {
		bg, fg = fg, bg
	}
	return text.DisplayCropped(m.con.screen, m.items[i].String(), m.itemX, m.itemY+i-m.top, m.itemWidth, bg, fg)
}

func (m *Menu) selectItem(next int) error {
	prev := m.selected
	m.selected = next
	top := m.top
	switch {
	case next < top:
		top = next
	case next >= top+m.visible:
		top = next - m.visible + 1
	}
	if top != m.top {
		m.top = top
		if err := m.drawItems(); err != nil {
			return err
		}
		return m.con.flush()
	}
	if err := m.drawItem(prev); err != nil {
		return err
	}
	if err := m.drawItem(next); err != nil {
		return err
	}
	return m.con.flush()
}

// ExecuteDirectly shows a one-shot menu with the given options.
func (c *Console) ExecuteDirectly(title string, cancelable bool, options []string, prompt string) (int, error) {
	m, err := c.NewMenu(title, prompt, cancelable, false)
	if err != nil {
		return 0, err
	}
	for _, opt := range options {
		m.AddItem(opt)
	}
	choice, err := m.Execute()
	if cerr := m.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return choice, err
}

// YesNo asks a yes/no question and returns Yes or No.
func (c *Console) YesNo(title string, cancelable bool, prompt string) (int, error) {
	return c.ExecuteDirectly(title, cancelable, []string{"Yes", "No"}, prompt)
}

// OK shows a message until the user confirms it.
func (c *Console) OK(title string, cancelable bool, prompt string) error {
	_, err := c.ExecuteDirectly(title, cancelable, []string{"OK"}, prompt)
	return err
}
