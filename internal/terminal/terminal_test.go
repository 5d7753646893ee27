package terminal

import "testing"

func TestSnapshotCellAtRange(t *testing.T) {
	snap := Snapshot{Cols: 2, Rows: 1, Cells: []Cell{{Glyph: 'a'}, {}}}
	cell, err := snap.CellAt(0, 0)
	if err != nil {
		t.Fatalf("CellAt: %v", err)
	}
	if cell.Glyph != 'a' {
		t.Fatalf("glyph = %q", cell.Glyph)
	}
	if _, err := snap.CellAt(2, 0); err == nil {
		t.Fatalf("expected range error")
	}
	if got := snap.Row(0); got != "a " {
		t.Fatalf("Row(0) = %q", got)
	}
}

func TestIsPrintable(t *testing.T) {
	cases := map[byte]bool{
		0x00: false,
		'\t': false,
		0x1f: false,
		' ':  true,
		'~':  true,
		0x7f: false,
		0xb0: false,
	}
	for b, want := range cases {
		if got := IsPrintable(b); got != want {
			t.Fatalf("IsPrintable(0x%02x) = %v, want %v", b, got, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"black", Black},
		{"Light-Blue", LightBlue},
		{"light_gray", LightGray},
		{"grey", LightGray},
		{"15", White},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "purple", "16", "-1"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) expected error", bad)
		}
	}
}

func TestColorNormalize(t *testing.T) {
	if got := Color(17).Normalize(); got != Blue {
		t.Fatalf("Normalize(17) = %v", got)
	}
	if !Yellow.Bright() || Brown.Bright() {
		t.Fatalf("Bright() mismatch")
	}
}

func TestKeyFunctionIndex(t *testing.T) {
	if KeyF1.FunctionIndex() != 1 || KeyF12.FunctionIndex() != 12 {
		t.Fatalf("function index mismatch")
	}
	if KeyEnter.FunctionIndex() != 0 {
		t.Fatalf("Enter is not a function key")
	}
	if !Key('q').Raw() || KeyUp.Raw() {
		t.Fatalf("Raw() mismatch")
	}
	if KeyF10.String() != "F10" || Key('x').String() != "x" {
		t.Fatalf("String() mismatch: %s %s", KeyF10, Key('x'))
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		name string
		want Key
	}{
		{"up", KeyUp},
		{"PGDN", KeyPgDn},
		{" Enter ", KeyEnter},
		{"esc", KeyEsc},
		{"f1", KeyF1},
		{"F12", KeyF12},
		{"y", Key('y')},
	}
	for _, tc := range cases {
		got, err := ParseKey(tc.name)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParseKey(%q) = %s, want %s", tc.name, got, tc.want)
		}
		if tc.want.String() != "y" {
			if back, _ := ParseKey(got.String()); back != got {
				t.Fatalf("String round trip for %s", got)
			}
		}
	}
	for _, bad := range []string{"", "F0", "F13", "home", "\t"} {
		if _, err := ParseKey(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestAdvance(t *testing.T) {
	cases := []struct {
		x, y, width, n int
		wantX, wantY   int
	}{
		{0, 0, 4, 3, 3, 0},
		{2, 0, 4, 5, 3, 1},
		{-3, 1, 4, 2, -1, 1},
		{-3, 1, 4, 5, 2, 1},
		{4, 0, 4, 1, 0, 1},
		{6, 0, 4, 3, 2, 1},
		{1, -2, 4, 9, 2, 0},
		{1, 1, 0, 5, 1, 1},
	}
	for _, tc := range cases {
		x, y := Advance(tc.x, tc.y, tc.width, tc.n)
		if x != tc.wantX || y != tc.wantY {
			t.Fatalf("Advance(%d, %d, %d, %d) = (%d,%d), want (%d,%d)", tc.x, tc.y, tc.width, tc.n, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestOffgrid(t *testing.T) {
	cases := []struct {
		x, y, width, limit int
		want               int
	}{
		{0, 0, 4, 10, 0},
		{3, 2, 4, 10, 0},
		{-3, 0, 4, 10, 3},
		{-30, 0, 4, 10, 10},
		{4, 0, 4, 10, 1},
		{9, 0, 4, 10, 1},
		{1, -2, 4, 10, 7},
		{1, -2, 4, 5, 5},
		{1, -1 << 50, 4, 1 << 40, 1 << 40},
		{0, 0, 0, 10, 0},
		{-1, 0, 4, 0, 0},
	}
	for _, tc := range cases {
		if got := Offgrid(tc.x, tc.y, tc.width, tc.limit); got != tc.want {
			t.Fatalf("Offgrid(%d, %d, %d, %d) = %d, want %d", tc.x, tc.y, tc.width, tc.limit, got, tc.want)
		}
	}
}
