package tmui

import (
	"encoding/json"
	"io"

	"pkt.systems/tmui/internal/dump"
	"pkt.systems/tmui/internal/render"
)

// ErrCorruptDump reports a dump file that does not decode.
var ErrCorruptDump = dump.ErrCorrupt

// ReadDump loads a screen dump written by Console.Save.
func ReadDump(path string) (Snapshot, error) {
	return dump.ReadFile(path)
}

// WriteDump stores snap in the dump format.
func WriteDump(path string, snap Snapshot) error {
	return dump.WriteFile(path, snap)
}

// RenderDump replays snap as ANSI escape sequences on w.
func RenderDump(w io.Writer, snap Snapshot) error {
	return render.Snapshot(w, snap)
}

// DumpDocument is the JSON form of a screen dump.
type DumpDocument struct {
	Cols   int          `json:"cols"`
	Rows   int          `json:"rows"`
	Cursor DumpCursor   `json:"cursor"`
	Lines  []string     `json:"lines"`
	Colors []DumpColors `json:"colors"`
}

// DumpCursor is the cursor position and color pair of a dump.
type DumpCursor struct {
	X  int    `json:"x"`
	Y  int    `json:"y"`
	FG string `json:"fg"`
	BG string `json:"bg"`
}

// DumpColors is a run of cells on one row sharing a color pair.
type DumpColors struct {
	Row int    `json:"row"`
	Col int    `json:"col"`
	Len int    `json:"len"`
	FG  string `json:"fg"`
	BG  string `json:"bg"`
}

// NewDumpDocument converts snap into its JSON form.
func NewDumpDocument(snap Snapshot) DumpDocument {
	doc := DumpDocument{
		Cols: snap.Cols,
		Rows: snap.Rows,
		Cursor: DumpCursor{
			X:  snap.Cursor.X,
			Y:  snap.Cursor.Y,
			FG: snap.Cursor.FG.String(),
			BG: snap.Cursor.BG.String(),
		},
		Lines:  make([]string, 0, snap.Rows),
		Colors: []DumpColors{},
	}
	for y := 0; y < snap.Rows; y++ {
		doc.Lines = append(doc.Lines, snap.Row(y))
		var run *DumpColors
		for x := 0; x < snap.Cols; x++ {
			cell, err := snap.CellAt(x, y)
			if err != nil {
				break
			}
			fg, bg := cell.FG.String(), cell.BG.String()
			if run != nil && run.FG == fg && run.BG == bg {
				run.Len++
				continue
			}
			doc.Colors = append(doc.Colors, DumpColors{Row: y, Col: x, Len: 1, FG: fg, BG: bg})
			run = &doc.Colors[len(doc.Colors)-1]
		}
	}
	return doc
}

// MarshalDump returns the compact JSON form of snap.
func MarshalDump(snap Snapshot) ([]byte, error) {
	return json.Marshal(NewDumpDocument(snap))
}
