package tmui

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testSnapshot() Snapshot {
	snap := Snapshot{Cols: 4, Rows: 2}
	snap.Cursor.X = 1
	snap.Cursor.Y = 1
	snap.Cursor.FG = White
	snap.Cursor.BG = Blue
	snap.Cells = make([]Cell, 8)
	for i, g := range []byte("ab  cd  ") {
		snap.Cells[i] = Cell{Glyph: g, FG: Black, BG: LightGray}
	}
	snap.Cells[2].BG = Blue
	snap.Cells[3].BG = Blue
	return snap
}

func TestDumpRoundTripAndDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.dump")
	snap := testSnapshot()
	if err := WriteDump(path, snap); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadDump(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Row(0) != "ab  " || got.Row(1) != "cd  " {
		t.Fatalf("rows = %q %q", got.Row(0), got.Row(1))
	}

	data, err := MarshalDump(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc DumpDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Cols != 4 || doc.Rows != 2 || len(doc.Lines) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.Cursor.X != 1 || doc.Cursor.BG != "blue" || doc.Cursor.FG != "white" {
		t.Fatalf("cursor = %+v", doc.Cursor)
	}
	want := []DumpColors{
		{Row: 0, Col: 0, Len: 2, FG: "black", BG: "lightgray"},
		{Row: 0, Col: 2, Len: 2, FG: "black", BG: "blue"},
		{Row: 1, Col: 0, Len: 4, FG: "black", BG: "lightgray"},
	}
	if len(doc.Colors) != len(want) {
		t.Fatalf("colors = %+v", doc.Colors)
	}
	for i := range want {
		if doc.Colors[i] != want[i] {
			t.Fatalf("run %d = %+v, want %+v", i, doc.Colors[i], want[i])
		}
	}

	var out bytes.Buffer
	if err := RenderDump(&out, got); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("ab")) {
		t.Fatalf("rendered dump misses text: %q", out.String())
	}
}

func TestReadDumpRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dump")
	if err := os.WriteFile(path, []byte{0xff, 0xff, 0xff}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadDump(path); !errors.Is(err, ErrCorruptDump) {
		t.Fatalf("expected corrupt dump error, got %v", err)
	}
}
