package ui

import (
	"fmt"
	"math"

	"pkt.systems/tmui/internal/text"
)

// progressMinWidth is the default bar width.
const progressMinWidth = 50

type progressItem struct {
	label    text.Element
	outOf    uint32
	progress uint32
	currentX int
}

// ProgressBox shows one bar, or several labelled bars, below a prompt.
type ProgressBox struct {
	con    *Console
	obj    *Object
	prompt text.Lines
	items  []progressItem
	// shown is how many bars fit in the content area.
	shown int

	labelX   int
	boxX     int
	boxY     int
	boxWidth int
	painted  bool
}

// NewProgress creates a single-bar progress box and paints it.
func (c *Console) NewProgress(title string, total uint32, prompt string) (*ProgressBox, error) {
	pb, err := c.NewMultiProgress(title, prompt)
	if err != nil {
		return nil, err
	}
	pb.AddItem("", total)
	if err := pb.Paint(); err != nil {
		return nil, err
	}
	return pb, nil
}

// NewMultiProgress creates an empty progress box. Add bars with AddItem and
// call Paint once they are all there.
func (c *Console) NewMultiProgress(title, prompt string) (*ProgressBox, error) {
	lines, err := promptLines(prompt)
	if err != nil {
		return nil, err
	}
	return &ProgressBox{
		con:    c,
		obj:    c.newObject(title, ""),
		prompt: lines,
	}, nil
}

// AddItem appends a bar that is full at total.
func (pb *ProgressBox) AddItem(label string, total uint32) int {
	pb.items = append(pb.items, progressItem{
		label: text.NewElement(text.Sanitize(label)),
		outOf: total,
	})
	return len(pb.items) - 1
}

// SetMax changes the full value of bar i. The bar is redrawn on the next
// UpdateItem.
func (pb *ProgressBox) SetMax(i int, total uint32) {
	if i < 0 || i >= len(pb.items) {
		return
	}
	pb.items[i].outOf = total
}

func (pb *ProgressBox) labelWidth() int {
	width := 0
	for _, it := range pb.items {
		width = max(width, it.label.Len())
	}
	return width
}

// Paint draws the frame, the prompt and every bar at its current fill.
func (pb *ProgressBox) Paint() error {
	if len(pb.items) == 0 {
		return ErrNoItems
	}
	c := pb.con
	th := c.theme

	promptRows := 0
	if len(pb.prompt) > 0 {
		promptRows = len(pb.prompt) + 1
	}
	pb.obj.Layout(max(progressMinWidth, text.Longest(pb.prompt)), promptRows+len(pb.items))
	if err := pb.obj.Paint(); err != nil {
		return err
	}

	pb.labelX = pb.obj.ContentX()
	pb.boxY = pb.obj.ContentY()
	pb.boxX = pb.labelX
	pb.boxWidth = pb.obj.ContentWidth()
	labelWidth := 0
	if len(pb.items) > 1 {
		labelWidth = min(pb.labelWidth(), pb.boxWidth/2)
		pb.boxX += labelWidth + 2
		pb.boxWidth = max(1, pb.boxWidth-labelWidth-2)
	}

	if promptRows > 0 {
		shown := min(len(pb.prompt), max(0, pb.obj.ContentHeight()-2))
		if err := pb.obj.displayLines(pb.labelX, pb.boxY, pb.obj.ContentWidth(), pb.prompt[:shown]); err != nil {
			return err
		}
		pb.boxY += shown + 1
	}

	pb.shown = min(len(pb.items), max(0, pb.obj.ContentY()+pb.obj.ContentHeight()-pb.boxY))
	for i := range pb.items[:pb.shown] {
		it := &pb.items[i]
		it.currentX = fillWidth(pb.boxWidth, it.progress, it.outOf)
		y := pb.boxY + i
		if err := text.Fill(c.screen, pb.boxWidth, th.ProgressChar, pb.boxX, y, th.ProgressBlankBG, th.ProgressBlankFG); err != nil {
			return err
		}
		if err := text.Fill(c.screen, it.currentX, th.ProgressChar, pb.boxX, y, th.ProgressFillBG, th.ProgressFillFG); err != nil {
			return err
		}
		if labelWidth > 0 {
			if err := text.DisplayCropped(c.screen, it.label.String(), pb.labelX, y, labelWidth, th.ObjectBG, th.ObjectFG); err != nil {
				return err
			}
		}
	}
	pb.painted = true
	return c.flush()
}

// Update sets the progress of the first bar.
func (pb *ProgressBox) Update(progress uint32) error {
	return pb.UpdateItem(0, progress)
}

// UpdateItem sets the progress of bar i and paints only the cells that
// changed. Progress beyond the bar maximum fills the bar; a zero maximum
// leaves it empty. Bars that did not fit in the box are tracked but not
// drawn.
func (pb *ProgressBox) UpdateItem(i int, progress uint32) error {
	if i < 0 || i >= len(pb.items) {
		return fmt.Errorf("progress item %d out of range", i)
	}
	it := &pb.items[i]
	it.progress = progress
	if !pb.painted || i >= pb.shown {
		return nil
	}
	newX := fillWidth(pb.boxWidth, progress, it.outOf)
	if newX == it.currentX {
		return nil
	}

	c := pb.con
	th := c.theme
	var err error
	if newX > it.currentX {
		err = text.Fill(c.screen, newX-it.currentX, th.ProgressChar, pb.boxX+it.currentX, pb.boxY+i, th.ProgressFillBG, th.ProgressFillFG)
	} else {
		err = text.Fill(c.screen, it.currentX-newX, th.ProgressChar, pb.boxX+newX, pb.boxY+i, th.ProgressBlankBG, th.ProgressBlankFG)
	}
	if err != nil {
		return err
	}
	it.currentX = newX
	return c.flush()
}

func fillWidth(width int, progress, outOf uint32) int {
	if outOf == 0 || width <= 0 {
		return 0
	}
	x := int(math.Round(float64(width) * float64(progress) / float64(outOf)))
	return min(max(x, 0), width)
}

// Close removes the box from the screen.
func (pb *ProgressBox) Close() error {
	pb.painted = false
	return pb.obj.Unpaint()
}
