package text

import (
	"strings"

	"pkt.systems/tmui/internal/terminal"
)

const ellipsis = "..."

// Surface is what the painting helpers draw on. *screen.State satisfies it.
type Surface interface {
	SetColor(bg, fg terminal.Color)
	SetCursorPosition(x, y int)
	PutChar(glyph byte, count int) error
	PutString(text string) error
}

// Padding returns the left padding that centers length within total.
func Padding(total, length int) int {
	return (total - length) / 2
}

// DisplayCropped paints s at (x, y) in exactly maxWidth columns. Longer text
// keeps its first maxWidth-3 bytes followed by "...". When maxWidth is below
// 3 and the text does not fit, only dots are painted. Shorter text is left
// aligned and padded with spaces.
func DisplayCropped(surf Surface, s string, x, y, maxWidth int, bg, fg terminal.Color) error {
	if maxWidth <= 0 {
		return nil
	}
	surf.SetColor(bg, fg)
	surf.SetCursorPosition(x, y)

	if len(s) > maxWidth {
		if maxWidth < len(ellipsis) {
			return surf.PutChar('.', maxWidth)
		}
		return surf.PutString(s[:maxWidth-len(ellipsis)] + ellipsis)
	}
	if err := surf.PutString(s); err != nil {
		return err
	}
	return surf.PutChar(' ', maxWidth-len(s))
}

// PrintCentered paints s centered in width columns at (x, y). An odd
// remainder goes to the right. Text that does not fit is cropped.
func PrintCentered(surf Surface, s string, x, y, width int, bg, fg terminal.Color) error {
	if len(s) >= width {
		return DisplayCropped(surf, s, x, y, width, bg, fg)
	}
	left := Padding(width, len(s))
	surf.SetCursorPosition(x, y)
	surf.SetColor(bg, fg)
	if err := surf.PutChar(' ', left); err != nil {
		return err
	}
	if err := surf.PutString(s); err != nil {
		return err
	}
	return surf.PutChar(' ', width-len(s)-left)
}

// Fill writes length copies of glyph starting at (x, y).
func Fill(surf Surface, length int, glyph byte, x, y int, bg, fg terminal.Color) error {
	surf.SetCursorPosition(x, y)
	surf.SetColor(bg, fg)
	return surf.PutChar(glyph, length)
}

// DisplayLines paints each line cropped to width on consecutive rows.
func DisplayLines(surf Surface, x, y, width int, lines Lines, bg, fg terminal.Color) error {
	for i, line := range lines {
		if err := DisplayCropped(surf, line.String(), x, y+i, width, bg, fg); err != nil {
			return err
		}
	}
	return nil
}

// Box draws an ASCII frame of w by h cells with its top-left corner at (x, y).
func Box(surf Surface, x, y, w, h int, bg, fg terminal.Color) error {
	if w < 2 || h < 2 {
		return nil
	}
	edge := "+" + strings.Repeat("-", w-2) + "+"
	surf.SetColor(bg, fg)
	surf.SetCursorPosition(x, y)
	if err := surf.PutString(edge); err != nil {
		return err
	}
	for row := y + 1; row < y+h-1; row++ {
		surf.SetCursorPosition(x, row)
		if err := surf.PutChar('|', 1); err != nil {
			return err
		}
		surf.SetCursorPosition(x+w-1, row)
		if err := surf.PutChar('|', 1); err != nil {
			return err
		}
	}
	surf.SetCursorPosition(x, y+h-1)
	return surf.PutString(edge)
}
