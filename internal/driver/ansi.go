// Package driver holds the platform output drivers: an ANSI terminal driver
// and a headless in-memory driver.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"pkt.systems/pslog"
	"pkt.systems/tmui/internal/render"
	"pkt.systems/tmui/internal/terminal"
)

// Fallback geometry when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// ErrNotInitialized reports a call that needs Init first.
var ErrNotInitialized = errors.New("driver: not initialized")

// ANSIOptions configures an ANSI driver.
type ANSIOptions struct {
	In     *os.File
	Out    *os.File
	Logger pslog.Logger
}

// ANSI drives a terminal with escape sequences. Output is buffered until
// Flush; input is read with canonical mode and echo switched off.
type ANSI struct {
	in     *os.File
	out    *os.File
	logger pslog.Logger

	w      *bufio.Writer
	stream *render.Stream
	saved  *termState

	pending []byte
	buf     [64]byte
}

// NewANSI returns a driver for the given files, defaulting to stdin/stdout.
func NewANSI(opts ANSIOptions) *ANSI {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	return &ANSI{
		in:     in,
		out:    out,
		logger: logger.With("component", "driver.ansi"),
		w:      bufio.NewWriterSize(out, 32*1024),
	}
}

// Init reads the terminal size, remembers the input mode for Deinit and
// switches to the toolkit's input mode.
func (a *ANSI) Init() (int, int, error) {
	width, height := DefaultWidth, DefaultHeight
	outFD := int(a.out.Fd())
	if term.IsTerminal(outFD) {
		cols, rows, err := term.GetSize(outFD)
		switch {
		case err != nil:
			a.logger.Warn("terminal size unavailable", "err", err)
		case cols > 0 && rows > 0:
			width, height = cols, rows
		}
	}
	a.stream = render.NewStream(a.w, width, height)

	inFD := int(a.in.Fd())
	if term.IsTerminal(inFD) {
		state, err := getTermState(inFD)
		if err != nil {
			return 0, 0, fmt.Errorf("read terminal mode: %w", err)
		}
		a.saved = state
	}
	if err := a.Restore(); err != nil {
		return 0, 0, err
	}
	a.logger.Debug("terminal initialized", "width", width, "height", height, "tty", a.saved != nil)
	return width, height, nil
}

// Restore re-applies the input mode and hides the cursor.
func (a *ANSI) Restore() error {
	if a.stream == nil {
		return ErrNotInitialized
	}
	if a.saved != nil {
		if err := enterInputMode(int(a.in.Fd())); err != nil {
			return fmt.Errorf("set terminal mode: %w", err)
		}
	}
	a.stream.Invalidate()
	a.stream.Encoder().HideCursor()
	return a.Flush()
}

// Deinit resets colors, shows the cursor and puts the original input mode back.
func (a *ANSI) Deinit() error {
	if a.stream == nil {
		return ErrNotInitialized
	}
	enc := a.stream.Encoder()
	enc.Reset()
	enc.ShowCursor()
	enc.Text("\n")
	err := a.Flush()
	if a.saved != nil {
		if rerr := setTermState(int(a.in.Fd()), a.saved); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal mode: %w", rerr)
		}
		a.saved = nil
	}
	a.stream = nil
	return err
}

func (a *ANSI) SetColor(bg, fg terminal.Color) {
	if a.stream != nil {
		a.stream.SetColor(bg, fg)
	}
}

func (a *ANSI) SetCursorPosition(x, y int) {
	if a.stream != nil {
		a.stream.SetCursorPosition(x, y)
	}
}

func (a *ANSI) PutChar(glyph byte, count int) {
	if a.stream != nil {
		a.stream.PutChar(glyph, count)
	}
}

func (a *ANSI) PutString(s string) {
	if a.stream != nil {
		a.stream.PutString(s)
	}
}

// Flush writes buffered output to the terminal.
func (a *ANSI) Flush() error {
	if a.stream == nil {
		return ErrNotInitialized
	}
	a.stream.Sync()
	if err := a.stream.Err(); err != nil {
		return err
	}
	return a.w.Flush()
}

// GetKey blocks until a key arrives. Bytes read past the first key event
// are kept for the next call.
func (a *ANSI) GetKey() (terminal.Key, error) {
	for len(a.pending) == 0 {
		n, err := a.in.Read(a.buf[:])
		if n > 0 {
			a.pending = append(a.pending[:0], a.buf[:n]...)
			break
		}
		if err != nil {
			return 0, err
		}
	}
	key, n := DecodeKey(a.pending)
	a.pending = a.pending[n:]
	return key, nil
}
