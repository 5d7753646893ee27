package ui

import (
	"errors"

	"pkt.systems/tmui/internal/terminal"
	"pkt.systems/tmui/internal/text"
)

const (
	footerSelector           = "UP/DOWN = Select, LEFT/RIGHT = Change, ENTER = Confirm"
	footerSelectorCancelable = "UP/DOWN = Select, LEFT/RIGHT = Change, ENTER = Confirm, ESC = Cancel"
)

type selectorItem struct {
	label    text.Element
	options  text.Lines
	selected int
}

// MultiSelector is a list of labels, each with a set of options the user
// cycles through with Left and Right. Options are shown in a column left of
// the labels.
type MultiSelector struct {
	con        *Console
	obj        *Object
	prompt     text.Lines
	items      []selectorItem
	cancelable bool

	current     int
	top         int
	visible     int
	optionX     int
	optionWidth int
	itemX       int
	itemWidth   int
	rowY        int
}

// NewMultiSelector creates a selector. Esc cancels it when cancelable is set.
func (c *Console) NewMultiSelector(title, prompt string, cancelable bool) (*MultiSelector, error) {
	lines, err := promptLines(prompt)
	if err != nil {
		return nil, err
	}
	footer := footerSelector
	if cancelable {
		footer = footerSelectorCancelable
	}
	return &MultiSelector{
		con:        c,
		obj:        c.newObject(title, footer),
		prompt:     lines,
		cancelable: cancelable,
	}, nil
}

// AddItem appends a label with its options. defaultOption is the option
// selected initially; an out of range value selects the first one.
func (ms *MultiSelector) AddItem(label string, options []string, defaultOption int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("ui: selector item needs at least one option")
	}
	item := selectorItem{label: text.NewElement(text.Sanitize(label))}
	for _, opt := range options {
		item.options = append(item.options, text.NewElement(text.Sanitize(opt)))
	}
	if defaultOption >= 0 && defaultOption < len(options) {
		item.selected = defaultOption
	}
	ms.items = append(ms.items, item)
	return len(ms.items) - 1, nil
}

func (ms *MultiSelector) ItemCount() int {
	return len(ms.items)
}

// Selected returns the option index chosen for item i, or 0 when i is out of
// range.
func (ms *MultiSelector) Selected(i int) int {
	if i < 0 || i >= len(ms.items) {
		return 0
	}
	return ms.items[i].selected
}

// SelectedText returns the option text chosen for item i.
func (ms *MultiSelector) SelectedText(i int) (string, bool) {
	if i < 0 || i >= len(ms.items) {
		return "", false
	}
	it := ms.items[i]
	return it.options[it.selected].String(), true
}

// Execute paints the selector and lets the user change options until Enter
// (nil) or, when cancelable, Esc (ErrCanceled). Changes made before a cancel
// are kept.
func (ms *MultiSelector) Execute() error {
	if len(ms.items) == 0 {
		return ErrNoItems
	}
	if err := ms.paint(); err != nil {
		return err
	}
	for {
		k, err := ms.con.readKey()
		if err != nil {
			return err
		}
		it := &ms.items[ms.current]
		switch {
		case k == terminal.KeyUp:
			next := ms.current - 1
			if next < 0 {
				next = len(ms.items) - 1
			}
			err = ms.move(next)
		case k == terminal.KeyDown:
			err = ms.move((ms.current + 1) % len(ms.items))
		case k == terminal.KeyRight:
			it.selected = (it.selected + 1) % len(it.options)
			err = ms.redrawRow(ms.current)
		case k == terminal.KeyLeft:
			it.selected--
			if it.selected < 0 {
				it.selected = len(it.options) - 1
			}
			err = ms.redrawRow(ms.current)
		case k == terminal.KeyEnter:
			return nil
		case k == terminal.KeyEsc && ms.cancelable:
			return ErrCanceled
		}
		if err != nil {
			return err
		}
	}
}

// Close removes the selector from the screen.
func (ms *MultiSelector) Close() error {
	return ms.obj.Unpaint()
}

func (ms *MultiSelector) paint() error {
	labels := make(text.Lines, len(ms.items))
	ms.optionWidth = 0
	for i, it := range ms.items {
		labels[i] = it.label
		ms.optionWidth = max(ms.optionWidth, text.Longest(it.options))
	}
	contentW := max(text.Longest(labels)+1+ms.optionWidth+2*itemPaddingH, text.Longest(ms.prompt))
	promptRows := 0
	if len(ms.prompt) > 0 {
		promptRows = len(ms.prompt) + 1
	}
	ms.obj.Layout(contentW, len(ms.items)+promptRows)
	if err := ms.obj.Paint(); err != nil {
		return err
	}

	avail := ms.obj.ContentHeight()
	shown := min(len(ms.prompt), max(0, avail-2))
	promptRows = 0
	if shown > 0 {
		promptRows = shown + 1
		if err := ms.obj.displayLines(ms.obj.ContentX(), ms.obj.ContentY(), ms.obj.ContentWidth(), ms.prompt[:shown]); err != nil {
			return err
		}
	}

	inner := max(2, ms.obj.ContentWidth()-2*itemPaddingH)
	ms.optionWidth = min(ms.optionWidth, inner/2)
	ms.optionX = ms.obj.ContentX() + itemPaddingH
	ms.itemX = ms.optionX + ms.optionWidth + 1
	ms.itemWidth = max(1, inner-ms.optionWidth-1)
	ms.rowY = ms.obj.ContentY() + promptRows
	ms.visible = max(1, avail-promptRows)
	ms.current = 0
	ms.top = 0
	if err := ms.redrawAll(); err != nil {
		return err
	}
	return ms.con.flush()
}

func (ms *MultiSelector) redrawAll() error {
	for row := 0; row < ms.visible && ms.top+row < len(ms.items); row++ {
		if err := ms.drawRow(ms.top + row); err != nil {
			return err
		}
	}
	return nil
}

func (ms *MultiSelector) drawRow(i int) error {
	th := ms.con.theme
	it := ms.items[i]
	y := ms.rowY + i - ms.top
	bg, fg := th.ObjectBG, th.ObjectFG
	if i == ms.current {
		bg, fg = fg, bg
	}
	if err := text.DisplayCropped(ms.con.screen, it.options[it.selected].String(), ms.optionX, y, ms.optionWidth, bg, fg); err != nil {
		return err
	}
	return text.DisplayCropped(ms.con.screen, it.label.String(), ms.itemX, y, ms.itemWidth, th.ObjectBG, th.ObjectFG)
}

func (ms *MultiSelector) redrawRow(i int) error {
	if err := ms.drawRow(i); err != nil {
		return err
	}
	return ms.con.flush()
}

func (ms *MultiSelector) move(next int) error {
	prev := ms.current
	ms.current = next
	top := ms.top
	switch {
	case next < top:
		top = next
	case next >= top+ms.visible:
		top = next - ms.visible + 1
	}
	if top != ms.top {
		ms.top = top
		if err := ms.redrawAll(); err != nil {
			return err
		}
		return ms.con.flush()
	}
	if err := ms.drawRow(prev); err != nil {
		return err
	}
	return ms.redrawRow(next)
}
