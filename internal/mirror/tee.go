package mirror

import (
	"bytes"
	"fmt"

	"pkt.systems/pslog"
	"pkt.systems/tmui/internal/render"
	"pkt.systems/tmui/internal/screen"
	"pkt.systems/tmui/internal/terminal"
)

// Tee is a terminal.Driver that forwards every call to the wrapped driver
// and mirrors the output to a Hub. It keeps its own shadow grid so that
// late viewers can be sent a full repaint.
type Tee struct {
	drv    terminal.Driver
	hub    *Hub
	logger pslog.Logger

	pending bytes.Buffer
	stream  *render.Stream
	shadow  *screen.State
}

// NewTee wraps drv.
func NewTee(drv terminal.Driver, hub *Hub, logger pslog.Logger) *Tee {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	return &Tee{drv: drv, hub: hub, logger: logger}
}

// Init initializes the wrapped driver and sizes the mirror to match.
func (t *Tee) Init() (int, int, error) {
	width, height, err := t.drv.Init()
	if err != nil {
		return 0, 0, err
	}
	t.pending.Reset()
	t.stream = render.NewStream(&t.pending, width, height)
	shadow, err := screen.New(width, height, t.stream, screen.Options{Logger: t.logger})
	if err != nil {
		_ = t.drv.Deinit()
		return 0, 0, fmt.Errorf("mirror: %w", err)
	}
	t.shadow = shadow
	return width, height, nil
}

func (t *Tee) Restore() error {
	return t.drv.Restore()
}

// Deinit deinitializes the wrapped driver. Viewers stay connected until the
// hub is closed.
func (t *Tee) Deinit() error {
	err := t.drv.Deinit()
	if t.shadow != nil {
		t.shadow.Close()
	}
	return err
}

func (t *Tee) SetColor(bg, fg terminal.Color) {
	t.drv.SetColor(bg, fg)
	t.shadow.SetColor(bg, fg)
}

func (t *Tee) SetCursorPosition(x, y int) {
	t.drv.SetCursorPosition(x, y)
	t.shadow.SetCursorPosition(x, y)
}

func (t *Tee) PutChar(glyph byte, count int) {
	t.drv.PutChar(glyph, count)
	if err := t.shadow.PutChar(glyph, count); err != nil {
		t.logger.Debug("mirror dropped glyph", "err", err)
	}
}

func (t *Tee) PutString(s string) {
	t.drv.PutString(s)
	if err := t.shadow.PutString(s); err != nil {
		t.logger.Debug("mirror dropped string", "err", err)
	}
}

// Flush flushes the wrapped driver and publishes the output pending since
// the previous flush.
func (t *Tee) Flush() error {
	err := t.drv.Flush()
	t.stream.Sync()
	data := bytes.Clone(t.pending.Bytes())
	t.pending.Reset()
	t.hub.Broadcast(data, t.repaint)
	return err
}

func (t *Tee) GetKey() (terminal.Key, error) {
	return t.drv.GetKey()
}

func (t *Tee) repaint() []byte {
	var b bytes.Buffer
	if err := render.Snapshot(&b, t.shadow.Snapshot()); err != nil {
		t.logger.Warn("mirror repaint failed", "err", err)
		return nil
	}
	t.stream.Invalidate()
	return b.Bytes()
}
