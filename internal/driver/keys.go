package driver

import "pkt.systems/tmui/internal/terminal"

const esc = 0x1b

// tildeKeys maps the numeric parameter of "ESC [ n ~" sequences.
var tildeKeys = map[int]terminal.Key{
	5:  terminal.KeyPgUp,
	6:  terminal.KeyPgDn,
	11: terminal.KeyF1,
	12: terminal.KeyF2,
	13: terminal.KeyF3,
	14: terminal.KeyF4,
	15: terminal.KeyF5,
	17: terminal.KeyF6,
	18: terminal.KeyF7,
	19: terminal.KeyF8,
	20: terminal.KeyF9,
	21: terminal.KeyF10,
	23: terminal.KeyF11,
	24: terminal.KeyF12,
}

var csiKeys = map[byte]terminal.Key{
	'A': terminal.KeyUp,
	'B': terminal.KeyDown,
	'C': terminal.KeyRight,
	'D': terminal.KeyLeft,
}

// DecodeKey decodes the first key event in b and returns it together with
// the number of bytes it used. It returns 0, 0 for empty input.
//
// Recognized sequences become normalized keys. Anything else is passed
// through raw: a plain byte as itself, an unknown sequence as its first four
// bytes packed big-endian.
func DecodeKey(b []byte) (terminal.Key, int) {
	if len(b) == 0 {
		return 0, 0
	}
	switch b[0] {
	case '\r', '\n':
		return terminal.KeyEnter, 1
	case esc:
	default:
		return terminal.Key(b[0]), 1
	}
	if len(b) == 1 {
		return terminal.KeyEsc, 1
	}
	switch b[1] {
	case esc:
		return terminal.KeyEsc, 2
	case 'O':
		return decodeSS3(b)
	case '[':
		return decodeCSI(b)
	}
	return pack(b[:2]), 2
}

func decodeSS3(b []byte) (terminal.Key, int) {
	if len(b) < 3 {
		return pack(b), len(b)
	}
	if b[2] >= 'P' && b[2] <= 'S' {
		return terminal.KeyF1 + terminal.Key(b[2]-'P'), 3
	}
	return pack(b[:3]), 3
}

func decodeCSI(b []byte) (terminal.Key, int) {
	// Linux console function keys: ESC [ [ A..E.
	if len(b) >= 4 && b[2] == '[' && b[3] >= 'A' && b[3] <= 'E' {
		return terminal.KeyF1 + terminal.Key(b[3]-'A'), 4
	}

	param := 0
	first := true
	for i := 2; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= '0' && c <= '9':
			if first {
				param = param*10 + int(c-'0')
			}
		case c == ';':
			first = false
		case c >= 0x40 && c <= 0x7e:
			n := i + 1
			if c == '~' {
				if k, ok := tildeKeys[param]; ok {
					return k, n
				}
			} else if k, ok := csiKeys[c]; ok {
				return k, n
			}
			return pack(b[:n]), n
		default:
			return pack(b[:i+1]), i + 1
		}
	}
	return pack(b), len(b)
}

func pack(b []byte) terminal.Key {
	var k terminal.Key
	for i := 0; i < len(b) && i < 4; i++ {
		k = k<<8 | terminal.Key(b[i])
	}
	return k
}
