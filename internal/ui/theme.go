package ui

import "pkt.systems/tmui/internal/terminal"

// Theme holds the colors and fill glyphs the console paints with.
type Theme struct {
	HeaderBG   terminal.Color
	HeaderFG   terminal.Color
	Background terminal.Color
	FooterBG   terminal.Color
	FooterFG   terminal.Color
	ObjectBG   terminal.Color
	ObjectFG   terminal.Color
	TitleFG    terminal.Color

	ProgressChar    byte
	ProgressBlankBG terminal.Color
	ProgressBlankFG terminal.Color
	ProgressFillBG  terminal.Color
	ProgressFillFG  terminal.Color
}

// DefaultTheme is the blue-screen installer look.
func DefaultTheme() Theme {
	return Theme{
		HeaderBG:        terminal.LightGray,
		HeaderFG:        terminal.Black,
		Background:      terminal.Blue,
		FooterBG:        terminal.LightGray,
		FooterFG:        terminal.Black,
		ObjectBG:        terminal.LightGray,
		ObjectFG:        terminal.Black,
		TitleFG:         terminal.Red,
		ProgressChar:    ' ',
		ProgressBlankBG: terminal.Black,
		ProgressBlankFG: terminal.LightGray,
		ProgressFillBG:  terminal.Cyan,
		ProgressFillFG:  terminal.White,
	}
}

func (t Theme) withDefaults() Theme {
	if !terminal.IsPrintable(t.ProgressChar) {
		t.ProgressChar = ' '
	}
	return t
}
