package screen

import (
	"pkt.systems/tmui/internal/dump"
	"pkt.systems/tmui/internal/terminal"
)

// Save copies the grid, cursor and active colors into the snapshot slot,
// replacing whatever an earlier Save left there.
func (s *State) Save() {
	if s.cells == nil {
		return
	}
	copy(s.backup, s.cells)
	s.snapshot = &snapshot{cells: s.backup, cursor: s.cursor}

	if s.opts.DumpFile != "" {
		if err := dump.WriteFile(s.opts.DumpFile, s.Snapshot()); err != nil {
			s.logger.Warn("screen dump failed", "path", s.opts.DumpFile, "err", err)
		} else {
			s.logger.Debug("screen dumped", "path", s.opts.DumpFile)
		}
	}
}

// Load copies the snapshot back into the grid, repaints every cell on the
// driver, then restores the saved cursor and colors. The snapshot stays in
// place, so Load may be repeated.
func (s *State) Load() error {
	if s.snapshot == nil || s.cells == nil {
		return ErrNoSnapshot
	}
	copy(s.cells, s.snapshot.cells)
	s.replay()

	saved := s.snapshot.cursor
	s.SetColor(saved.BG, saved.FG)
	s.SetCursorPosition(saved.X, saved.Y)
	return nil
}

// Repaint sends the live grid to the driver again without touching the
// snapshot, e.g. after an external program scribbled over the display.
func (s *State) Repaint() {
	if s.cells == nil {
		return
	}
	cur := s.cursor
	s.replay()
	s.SetColor(cur.BG, cur.FG)
	s.SetCursorPosition(cur.X, cur.Y)
}

// replay writes the grid row by row, changing color only where it differs
// from the previous cell.
func (s *State) replay() {
	first := true
	var bg, fg terminal.Color
	for y := 0; y < s.height; y++ {
		s.out.SetCursorPosition(0, y)
		row := s.cells[y*s.width : (y+1)*s.width]
		for _, cell := range row {
			if first || cell.BG != bg || cell.FG != fg {
				bg, fg = cell.BG, cell.FG
				s.out.SetColor(bg, fg)
				first = false
			}
			s.out.PutChar(byte(cell.Rune()), 1)
		}
	}
}
