// Package ui implements the console and its modal widgets on top of the
// screen state: menus, yes/no and OK boxes, progress boxes, a text file
// viewer, a command output box and a multi-option selector.
//
// Widgets run on the calling goroutine. A Console and everything created
// from it must be used from one goroutine at a time.
package ui

import (
	"errors"
	"fmt"

	"pkt.systems/pslog"
	"pkt.systems/tmui/internal/screen"
	"pkt.systems/tmui/internal/terminal"
	"pkt.systems/tmui/internal/text"
)

// Options configures a Console.
type Options struct {
	Title  string
	Theme  *Theme
	Logger pslog.Logger
	// DumpFile receives a debug dump of the screen on every Save.
	DumpFile string
}

// Console owns the driver, the screen state and the theme.
type Console struct {
	drv    terminal.Driver
	screen *screen.State
	theme  Theme
	logger pslog.Logger

	title  string
	footer string
	width  int
	height int
	closed bool
}

// Open initializes drv, allocates the screen state for the geometry the
// driver reports and paints the background.
func Open(drv terminal.Driver, opts Options) (*Console, error) {
	if drv == nil {
		return nil, errors.New("ui: driver is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	width, height, err := drv.Init()
	if err != nil {
		return nil, fmt.Errorf("init console: %w", err)
	}
	st, err := screen.New(width, height, drv, screen.Options{
		Logger:   logger.With("component", "screen"),
		DumpFile: opts.DumpFile,
	})
	if err != nil {
		_ = drv.Deinit()
		return nil, fmt.Errorf("init console: %w", err)
	}

	c := &Console{
		drv:    drv,
		screen: st,
		theme:  theme.withDefaults(),
		logger: logger.With("component", "console"),
		title:  text.Sanitize(opts.Title),
		width:  width,
		height: height,
	}
	if err := c.drawBackground(); err != nil {
		_ = c.Close()
		return nil, err
	}
	c.logger.Info("console opened", "width", width, "height", height)
	return c, nil
}

// Restore puts the driver back into the toolkit's input mode, e.g. after
// an external program ran on the same terminal.
func (c *Console) Restore() error {
	if c.closed {
		return ErrClosed
	}
	return c.drv.Restore()
}

// Close restores the terminal and releases the screen state.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.drv.Deinit()
	c.screen.Close()
	c.logger.Info("console closed")
	return err
}

// Screen returns the shadow screen state.
func (c *Console) Screen() *screen.State {
	return c.screen
}

// Logger returns the console logger.
func (c *Console) Logger() pslog.Logger {
	return c.logger
}

func (c *Console) Width() int {
	return c.width
}

func (c *Console) Height() int {
	return c.height
}

// Theme returns the active theme.
func (c *Console) Theme() Theme {
	return c.theme
}

// SetProgressStyle changes the fill glyph and colors of progress bars
// painted from now on.
func (c *Console) SetProgressStyle(fill byte, blankBG, blankFG, fillBG, fillFG terminal.Color) {
	c.theme.ProgressChar = fill
	c.theme.ProgressBlankBG = blankBG
	c.theme.ProgressBlankFG = blankFG
	c.theme.ProgressFillBG = fillBG
	c.theme.ProgressFillFG = fillFG
	c.theme = c.theme.withDefaults()
}

// Save snapshots the screen, for example before popping up an error box.
func (c *Console) Save() {
	c.screen.Save()
}

// Load repaints the screen from the last Save.
func (c *Console) Load() error {
	if err := c.screen.Load(); err != nil {
		return err
	}
	return c.flush()
}

// SetFooter shows text on the bottom row.
func (c *Console) SetFooter(footer string) error {
	c.footer = text.Sanitize(footer)
	return c.paintFooter(c.footer)
}

// ClearFooter blanks the bottom row.
func (c *Console) ClearFooter() error {
	c.footer = ""
	return c.paintFooter("")
}

func (c *Console) paintFooter(footer string) error {
	if c.height < 2 {
		return nil
	}
	y := c.height - 1
	var err error
	if footer == "" {
		err = text.Fill(c.screen, c.width, ' ', 0, y, c.theme.Background, c.theme.Background)
	} else {
		err = text.DisplayCropped(c.screen, " "+footer, 0, y, c.width, c.theme.FooterBG, c.theme.FooterFG)
	}
	if err != nil {
		return err
	}
	return c.flush()
}

func (c *Console) drawBackground() error {
	if err := text.PrintCentered(c.screen, c.title, 0, 0, c.width, c.theme.HeaderBG, c.theme.HeaderFG); err != nil {
		return err
	}
	for y := 1; y < c.height; y++ {
		if err := text.Fill(c.screen, c.width, ' ', 0, y, c.theme.Background, c.theme.Background); err != nil {
			return err
		}
	}
	return c.flush()
}

func (c *Console) flush() error {
	if err := c.drv.Flush(); err != nil {
		c.logger.Warn("flush failed", "err", err)
		return err
	}
	return nil
}

// readKey blocks for the next key event.
func (c *Console) readKey() (terminal.Key, error) {
	if c.closed {
		return 0, ErrClosed
	}
	k, err := c.drv.GetKey()
	if err != nil {
		return 0, err
	}
	c.logger.Debug("key", "key", k.String())
	return k, nil
}
