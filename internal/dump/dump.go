// Package dump encodes screen snapshots into the on-disk debug artifact.
//
// The file is a single protobuf-wire message:
//
//	1: cols      (varint)
//	2: rows      (varint)
//	3: cursor x  (zigzag varint)
//	4: cursor y  (zigzag varint)
//	5: color     (varint, bg<<4 | fg)
//	6: cells     (bytes, glyph/color pairs in row-major order)
package dump

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protowire"

	"pkt.systems/tmui/internal/terminal"
)

const (
	fieldCols    protowire.Number = 1
	fieldRows    protowire.Number = 2
	fieldCursorX protowire.Number = 3
	fieldCursorY protowire.Number = 4
	fieldColor   protowire.Number = 5
	fieldCells   protowire.Number = 6
)

// maxCells bounds decoded grids so a corrupt header cannot force a huge allocation.
const maxCells = 1 << 22

// ErrCorrupt reports a dump that does not decode into a consistent grid.
var ErrCorrupt = errors.New("dump: corrupt data")

// Encode serializes snap.
func Encode(snap terminal.Snapshot) []byte {
	cells := make([]byte, 0, 2*len(snap.Cells))
	for _, cell := range snap.Cells {
		cells = append(cells, cell.Glyph, packColor(cell.BG, cell.FG))
	}

	b := make([]byte, 0, len(cells)+32)
	b = protowire.AppendTag(b, fieldCols, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(snap.Cols))
	b = protowire.AppendTag(b, fieldRows, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(snap.Rows))
	b = protowire.AppendTag(b, fieldCursorX, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(snap.Cursor.X)))
	b = protowire.AppendTag(b, fieldCursorY, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(snap.Cursor.Y)))
	b = protowire.AppendTag(b, fieldColor, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(packColor(snap.Cursor.BG, snap.Cursor.FG)))
	b = protowire.AppendTag(b, fieldCells, protowire.BytesType)
	b = protowire.AppendBytes(b, cells)
	return b
}

// Decode parses data produced by Encode. Unknown fields are skipped.
func Decode(data []byte) (terminal.Snapshot, error) {
	var snap terminal.Snapshot
	var cells []byte
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return terminal.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case typ == protowire.VarintType && num >= fieldCols && num <= fieldColor:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return terminal.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
			}
			data = data[n:]
			switch num {
			case fieldCols:
				snap.Cols = int(v)
			case fieldRows:
				snap.Rows = int(v)
			case fieldCursorX:
				snap.Cursor.X = int(protowire.DecodeZigZag(v))
			case fieldCursorY:
				snap.Cursor.Y = int(protowire.DecodeZigZag(v))
			case fieldColor:
				snap.Cursor.BG, snap.Cursor.FG = unpackColor(byte(v))
			}
		case typ == protowire.BytesType && num == fieldCells:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return terminal.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
			}
			data = data[n:]
			cells = v
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return terminal.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}

	if snap.Cols <= 0 || snap.Rows <= 0 || snap.Cols > maxCells/snap.Rows {
		return terminal.Snapshot{}, fmt.Errorf("%w: geometry %dx%d", ErrCorrupt, snap.Cols, snap.Rows)
	}
	total := snap.Cols * snap.Rows
	if len(cells) != 2*total {
		return terminal.Snapshot{}, fmt.Errorf("%w: %d cell bytes for %dx%d", ErrCorrupt, len(cells), snap.Cols, snap.Rows)
	}
	snap.Cells = make([]terminal.Cell, total)
	for i := range snap.Cells {
		bg, fg := unpackColor(cells[2*i+1])
		snap.Cells[i] = terminal.Cell{Glyph: cells[2*i], BG: bg, FG: fg}
	}
	return snap, nil
}

// WriteFile writes the dump for snap to path, replacing it atomically.
func WriteFile(path string, snap terminal.Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(Encode(snap)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// ReadFile loads and decodes the dump at path.
func ReadFile(path string) (terminal.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return terminal.Snapshot{}, err
	}
	snap, err := Decode(data)
	if err != nil {
		return terminal.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

func packColor(bg, fg terminal.Color) byte {
	return byte(bg.Normalize())<<4 | byte(fg.Normalize())
}

func unpackColor(v byte) (bg, fg terminal.Color) {
	return terminal.Color(v >> 4), terminal.Color(v & 0x0f)
}
