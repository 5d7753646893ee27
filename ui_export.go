package tmui

import (
	"pkt.systems/tmui/internal/terminal"
	"pkt.systems/tmui/internal/ui"
)

type (
	// Console owns the display and paints the widgets.
	Console = ui.Console
	// Menu is a list of items the user picks one from.
	Menu = ui.Menu
	// ProgressBox shows one or more progress bars.
	ProgressBox = ui.ProgressBox
	// MultiSelector lets the user pick one option for each of several items.
	MultiSelector = ui.MultiSelector
	// Theme holds the console colors.
	Theme = ui.Theme
	// FunctionKeyError reports a function key pressed in a menu.
	FunctionKeyError = ui.FunctionKeyError

	// Color is a 16-color palette index.
	Color = terminal.Color
	// Key is a normalized key code.
	Key = terminal.Key
	// Cell is one character position of a Snapshot.
	Cell = terminal.Cell
	// Snapshot is a copy of the display contents.
	Snapshot = terminal.Snapshot
)

// Answers returned by Console.YesNo.
const (
	Yes = ui.Yes
	No  = ui.No
)

// Palette colors.
const (
	Black        = terminal.Black
	Blue         = terminal.Blue
	Green        = terminal.Green
	Cyan         = terminal.Cyan
	Red          = terminal.Red
	Magenta      = terminal.Magenta
	Brown        = terminal.Brown
	LightGray    = terminal.LightGray
	DarkGray     = terminal.DarkGray
	LightBlue    = terminal.LightBlue
	LightGreen   = terminal.LightGreen
	LightCyan    = terminal.LightCyan
	LightRed     = terminal.LightRed
	LightMagenta = terminal.LightMagenta
	Yellow       = terminal.Yellow
	White        = terminal.White
)

// Keys understood by the widgets.
const (
	KeyUp    = terminal.KeyUp
	KeyDown  = terminal.KeyDown
	KeyLeft  = terminal.KeyLeft
	KeyRight = terminal.KeyRight
	KeyEnter = terminal.KeyEnter
	KeyEsc   = terminal.KeyEsc
	KeyPgUp  = terminal.KeyPgUp
	KeyPgDn  = terminal.KeyPgDn
	KeyF1    = terminal.KeyF1
	KeyF2    = terminal.KeyF2
	KeyF3    = terminal.KeyF3
	KeyF4    = terminal.KeyF4
	KeyF5    = terminal.KeyF5
	KeyF6    = terminal.KeyF6
	KeyF7    = terminal.KeyF7
	KeyF8    = terminal.KeyF8
	KeyF9    = terminal.KeyF9
	KeyF10   = terminal.KeyF10
	KeyF11   = terminal.KeyF11
	KeyF12   = terminal.KeyF12
)

var (
	// ErrCanceled is returned when the user leaves a cancelable widget with Esc.
	ErrCanceled = ui.ErrCanceled
	// ErrNoItems is returned when a widget without items is executed.
	ErrNoItems = ui.ErrNoItems
	// ErrEmptyFile is returned by TextFileBox for a file without content.
	ErrEmptyFile = ui.ErrEmptyFile
)

// DefaultTheme returns the blue-screen installer theme.
func DefaultTheme() Theme {
	return ui.DefaultTheme()
}

// FunctionKey returns the function key number carried by err, or 0.
func FunctionKey(err error) int {
	return ui.FunctionKey(err)
}

// ParseKey resolves a key name such as "Down", "PgUp" or "F3".
func ParseKey(name string) (Key, error) {
	return terminal.ParseKey(name)
}

// ParseColor resolves a palette color by name or index.
func ParseColor(name string) (Color, error) {
	return terminal.ParseColor(name)
}
