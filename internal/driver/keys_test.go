package driver

import (
	"testing"

	"pkt.systems/tmui/internal/terminal"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  terminal.Key
		used int
	}{
		{"letter", "q", terminal.Key('q'), 1},
		{"enter lf", "\n", terminal.KeyEnter, 1},
		{"enter cr", "\rx", terminal.KeyEnter, 1},
		{"lone esc", "\x1b", terminal.KeyEsc, 1},
		{"double esc", "\x1b\x1b", terminal.KeyEsc, 2},
		{"up", "\x1b[A", terminal.KeyUp, 3},
		{"down", "\x1b[B", terminal.KeyDown, 3},
		{"right", "\x1b[C", terminal.KeyRight, 3},
		{"left", "\x1b[D", terminal.KeyLeft, 3},
		{"modified up", "\x1b[1;5A", terminal.KeyUp, 6},
		{"page up", "\x1b[5~", terminal.KeyPgUp, 4},
		{"page down", "\x1b[6~x", terminal.KeyPgDn, 4},
		{"f1 ss3", "\x1bOP", terminal.KeyF1, 3},
		{"f4 ss3", "\x1bOS", terminal.KeyF4, 3},
		{"f1 tilde", "\x1b[11~", terminal.KeyF1, 5},
		{"f3 linux console", "\x1b[[C", terminal.KeyF3, 4},
		{"f5 linux console", "\x1b[[E", terminal.KeyF5, 4},
		{"f5", "\x1b[15~", terminal.KeyF5, 5},
		{"f6", "\x1b[17~", terminal.KeyF6, 5},
		{"f10", "\x1b[21~", terminal.KeyF10, 5},
		{"f11", "\x1b[23~", terminal.KeyF11, 5},
		{"f12", "\x1b[24~", terminal.KeyF12, 5},
		{"unknown tilde", "\x1b[3~", terminal.Key(0x1b5b337e), 4},
		{"unknown final", "\x1b[H", terminal.Key(0x1b5b48), 3},
		{"alt key", "\x1bx", terminal.Key(0x1b78), 2},
		{"unknown ss3", "\x1bOx", terminal.Key(0x1b4f78), 3},
		{"truncated csi", "\x1b[1", terminal.Key(0x1b5b31), 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, used := DecodeKey([]byte(tc.in))
			if key != tc.key || used != tc.used {
				t.Fatalf("DecodeKey(%q) = %v/%d, want %v/%d", tc.in, key, used, tc.key, tc.used)
			}
		})
	}
}

func TestDecodeKeyEmpty(t *testing.T) {
	if key, used := DecodeKey(nil); key != 0 || used != 0 {
		t.Fatalf("DecodeKey(nil) = %v/%d", key, used)
	}
}

func TestDecodedRawKeysStayBelowNormalizedRange(t *testing.T) {
	key, _ := DecodeKey([]byte("\x1b[99;99;99Z"))
	if !key.Raw() {
		t.Fatalf("unknown sequence decoded to normalized key %v", key)
	}
}
