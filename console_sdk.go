package tmui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"pkt.systems/pslog"
	"pkt.systems/tmui/internal/driver"
	"pkt.systems/tmui/internal/terminal"
	"pkt.systems/tmui/internal/ui"
)

// OpenOptions configures Open.
type OpenOptions struct {
	Config Config
	Logger pslog.Logger

	// Keys scripts the input of the memory driver. Once the script is
	// exhausted the widgets return io.EOF.
	Keys []Key
	// In and Out replace stdin and stdout for the ANSI driver.
	In  *os.File
	Out *os.File
	// Mirror starts the websocket mirror on Config.Mirror.Listen.
	Mirror bool
	// MirrorReady is called with the viewer URL once the mirror listens,
	// before the console takes over the display.
	MirrorReady func(url string)
}

// Session is an open console plus the driver and mirror behind it.
type Session struct {
	*Console

	mem    *driver.Memory
	mirror *mirrorRuntime
	logger pslog.Logger
}

// Open initializes the configured driver, wraps it with the mirror when
// requested and opens the console on it.
func Open(ctx context.Context, opts OpenOptions) (*Session, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return nil, err
	}
	title := cfg.Console.Title
	if title == "" {
		title = DefaultTitle
	}

	s := &Session{logger: logger.With("component", "session")}
	var drv terminal.Driver
	switch strings.ToLower(strings.TrimSpace(cfg.Console.Driver)) {
	case DriverMemory:
		width, height := cfg.Console.Width, cfg.Console.Height
		if width <= 0 || height <= 0 {
			width, height = DefaultWidth, DefaultHeight
		}
		s.mem = driver.NewMemory(width, height, opts.Keys...)
		drv = s.mem
	case DriverANSI, "":
		drv = driver.NewANSI(driver.ANSIOptions{
			In:     opts.In,
			Out:    opts.Out,
			Logger: logger,
		})
	default:
		return nil, fmt.Errorf("unknown console driver %q", cfg.Console.Driver)
	}

	if opts.Mirror {
		m, err := startMirror(ctx, cfg.Mirror, drv, logger)
		if err != nil {
			return nil, err
		}
		s.mirror = m
		drv = m.tee
		if opts.MirrorReady != nil {
			opts.MirrorReady(m.url)
		}
	}

	console, err := ui.Open(drv, ui.Options{
		Title:    title,
		Theme:    &theme,
		Logger:   logger,
		DumpFile: cfg.Console.DumpFile,
	})
	if err != nil {
		if s.mirror != nil {
			_ = s.mirror.stop(ctx)
		}
		return nil, err
	}
	s.Console = console
	return s, nil
}

// MirrorURL returns the websocket URL viewers connect to, or "" when the
// mirror is off.
func (s *Session) MirrorURL() string {
	if s.mirror == nil {
		return ""
	}
	return s.mirror.url
}

// Headless reports whether the session runs on the memory driver.
func (s *Session) Headless() bool {
	return s.mem != nil
}

// Display returns what the memory driver shows, or the shadow screen state
// for a terminal session.
func (s *Session) Display() Snapshot {
	if s.mem != nil {
		return s.mem.Snapshot()
	}
	return s.Screen().Snapshot()
}

// Close closes the console and stops the mirror.
func (s *Session) Close() error {
	var errs []error
	if s.Console != nil {
		errs = append(errs, s.Console.Close())
	}
	if s.mirror != nil {
		errs = append(errs, s.mirror.stop(context.Background()))
		s.mirror = nil
	}
	return errors.Join(errs...)
}
