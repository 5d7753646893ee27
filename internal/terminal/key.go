package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is one logical key event. Values below KeyUp are raw pass-through
// codes: a single byte, or the packed bytes of an unrecognized sequence.
type Key uint32

// Normalized key codes.
const (
	KeyUp Key = 0x80000000 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyPgUp
	KeyPgDn
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",
	KeyEnter: "Enter",
	KeyEsc:   "Esc",
	KeyPgUp:  "PgUp",
	KeyPgDn:  "PgDn",
}

// FunctionIndex returns 1..12 for F1..F12 and 0 otherwise.
func (k Key) FunctionIndex() int {
	if k < KeyF1 || k > KeyF12 {
		return 0
	}
	return int(k-KeyF1) + 1
}

// Raw reports whether k is a pass-through code.
func (k Key) Raw() bool {
	return k < KeyUp
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if n := k.FunctionIndex(); n > 0 {
		return fmt.Sprintf("F%d", n)
	}
	if k < 0x80 && IsPrintable(byte(k)) {
		return string(rune(k))
	}
	return fmt.Sprintf("0x%08x", uint32(k))
}

// ParseKey resolves a key name as printed by String ("Up", "PgDn", "F5"),
// case-insensitively. A single printable character maps to its raw code.
func ParseKey(name string) (Key, error) {
	key := strings.TrimSpace(name)
	if len(key) == 1 && IsPrintable(key[0]) {
		return Key(key[0]), nil
	}
	for k, n := range keyNames {
		if strings.EqualFold(n, key) {
			return k, nil
		}
	}
	if len(key) > 1 && (key[0] == 'F' || key[0] == 'f') {
		if n, err := strconv.Atoi(key[1:]); err == nil && n >= 1 && n <= 12 {
			return KeyF1 + Key(n-1), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
