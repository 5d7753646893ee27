package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an index into the 16-entry text-mode palette.
type Color uint8

// Palette colors, in text-mode attribute order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// PaletteSize is the number of palette entries.
const PaletteSize = 16

var colorNames = [PaletteSize]string{
	"black",
	"blue",
	"green",
	"cyan",
	"red",
	"magenta",
	"brown",
	"lightgray",
	"darkgray",
	"lightblue",
	"lightgreen",
	"lightcyan",
	"lightred",
	"lightmagenta",
	"yellow",
	"white",
}

// Valid reports whether c is inside the palette.
func (c Color) Valid() bool {
	return c < PaletteSize
}

// Normalize folds c into the palette (modulo the palette size).
func (c Color) Normalize() Color {
	return c % PaletteSize
}

// Bright reports whether c is in the upper half of the palette.
func (c Color) Bright() bool {
	return c.Normalize() >= DarkGray
}

func (c Color) String() string {
	return colorNames[c.Normalize()]
}

// ParseColor resolves a palette color by name (case-insensitive, "-", "_"
// and spaces ignored) or by decimal index.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if key == "" {
		return 0, fmt.Errorf("empty color")
	}
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	switch key {
	case "grey", "lightgrey":
		return LightGray, nil
	case "darkgrey":
		return DarkGray, nil
	}
	if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && idx < PaletteSize {
		return Color(idx), nil
	}
	return 0, fmt.Errorf("unknown color %q", name)
}
