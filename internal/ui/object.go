package ui

import (
	"pkt.systems/tmui/internal/text"
)

// Frame geometry around object content.
const (
	objectMarginH  = 2
	objectMarginV  = 1
	objectPaddingH = 1
	objectBorder   = 1
	itemPaddingH   = 2
)

// Object is a centered window frame: a border with the title in the top
// edge and a content area inside. While an object is painted its footer
// hint replaces the console footer.
type Object struct {
	con    *Console
	title  string
	footer string

	x, y, w, h         int
	contentW, contentH int
	painted            bool
}

func (c *Console) newObject(title, footer string) *Object {
	return &Object{
		con:    c,
		title:  text.NewElement(text.Sanitize(title)).String(),
		footer: text.NewElement(text.Sanitize(footer)).String(),
	}
}

// MaxContentWidth is the widest content area an object can have.
func (c *Console) MaxContentWidth() int {
	return max(1, c.width-2*objectMarginH-2*objectBorder-2*objectPaddingH)
}

// MaxContentHeight is the tallest content area an object can have. The
// header and footer rows are never covered.
func (c *Console) MaxContentHeight() int {
	return max(1, c.height-2-2*objectMarginV-2*objectBorder)
}

// Layout sizes the content area, clamped to the console, and centers the
// frame.
func (o *Object) Layout(contentWidth, contentHeight int) {
	c := o.con
	o.contentW = min(max(contentWidth, 1), c.MaxContentWidth())
	o.contentH = min(max(contentHeight, 1), c.MaxContentHeight())
	o.w = o.contentW + 2*objectBorder + 2*objectPaddingH
	o.h = o.contentH + 2*objectBorder
	o.x = max(0, (c.width-o.w)/2)
	o.y = max(1, (c.height-o.h)/2)
}

func (o *Object) ContentX() int      { return o.x + objectBorder + objectPaddingH }
func (o *Object) ContentY() int      { return o.y + objectBorder }
func (o *Object) ContentWidth() int  { return o.contentW }
func (o *Object) ContentHeight() int { return o.contentH }

// Paint draws the frame with an empty content area.
func (o *Object) Paint() error {
	c := o.con
	th := c.theme
	for row := o.y; row < o.y+o.h; row++ {
		if err := text.Fill(c.screen, o.w, ' ', o.x, row, th.ObjectBG, th.ObjectFG); err != nil {
			return err
		}
	}
	if err := text.Box(c.screen, o.x, o.y, o.w, o.h, th.ObjectBG, th.ObjectFG); err != nil {
		return err
	}
	if o.title != "" && o.w > 6 {
		title := " " + o.title + " "
		width := min(len(title), o.w-4)
		if err := text.PrintCentered(c.screen, title, o.x+2+text.Padding(o.w-4, width), o.y, width, th.ObjectBG, th.TitleFG); err != nil {
			return err
		}
	}
	if o.footer != "" {
		if err := c.paintFooter(o.footer); err != nil {
			return err
		}
	}
	o.painted = true
	return c.flush()
}

// Unpaint fills the frame area with the background and puts the console
// footer back.
func (o *Object) Unpaint() error {
	if !o.painted {
		return nil
	}
	o.painted = false
	c := o.con
	for row := o.y; row < o.y+o.h; row++ {
		if err := text.Fill(c.screen, o.w, ' ', o.x, row, c.theme.Background, c.theme.Background); err != nil {
			return err
		}
	}
	if o.footer != "" {
		if err := c.paintFooter(c.footer); err != nil {
			return err
		}
	}
	return c.flush()
}

// displayLines paints lines on consecutive rows in the object colors.
func (o *Object) displayLines(x, y, width int, lines text.Lines) error {
	th := o.con.theme
	return text.DisplayLines(o.con.screen, x, y, width, lines, th.ObjectBG, th.ObjectFG)
}
