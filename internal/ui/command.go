package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"pkt.systems/tmui/internal/pty"
	"pkt.systems/tmui/internal/text"
)

// CommandBox runs command through the shell and shows the most recent lines
// of its combined output until it exits. It returns the exit code.
func (c *Console) CommandBox(ctx context.Context, title, command string) (int, error) {
	obj := c.newObject(title, fmt.Sprintf("Running: '%s'...", command))
	obj.Layout(c.MaxContentWidth()*80/100, c.MaxContentHeight()*60/100)
	if err := obj.Paint(); err != nil {
		return -1, err
	}
	defer func() { _ = obj.Unpaint() }()

	ring := make([]string, obj.ContentHeight())
	out, cmd, err := c.startCommand(ctx, command, obj.ContentWidth(), len(ring))
	if err != nil {
		return -1, err
	}
	defer out.Close()

	write := len(ring) - 1
	readErr := readOutputLines(out, func(line string) error {
		ring[write%len(ring)] = line
		write++
		for row := range ring {
			line := ring[(write+row)%len(ring)]
			if err := text.DisplayCropped(c.screen, line, obj.ContentX(), obj.ContentY()+row, obj.ContentWidth(), c.theme.ObjectBG, c.theme.ObjectFG); err != nil {
				return err
			}
		}
		return c.flush()
	})
	if readErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return -1, readErr
	}
	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		c.logger.Info("command exited", "command", command, "code", exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	}
	if waitErr != nil {
		return -1, fmt.Errorf("run %q: %w", command, waitErr)
	}
	c.logger.Info("command exited", "command", command, "code", 0)
	return 0, nil
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "/bin/sh", "-c", command)
	}
	cmd.Env = append(os.Environ(), "TERM=dumb")
	return cmd
}

// startCommand starts command on a PTY sized to the output area, or on a
// pipe where PTYs are unavailable. The returned reader yields the combined
// output.
func (c *Console) startCommand(ctx context.Context, command string, cols, rows int) (io.ReadCloser, *exec.Cmd, error) {
	cmd := shellCommand(ctx, command)
	master, err := pty.Start(cmd, cols, rows)
	if err == nil {
		c.logger.Debug("command started", "command", command, "pty", true)
		return master, cmd, nil
	}
	c.logger.Debug("pty unavailable, using pipe", "err", err)

	cmd = shellCommand(ctx, command)
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, nil, fmt.Errorf("run %q: %w", command, err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw
	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return nil, nil, fmt.Errorf("run %q: %w", command, err)
	}
	_ = pw.Close()
	c.logger.Debug("command started", "command", command, "pty", false)
	return pr, cmd, nil
}

// readOutputLines calls fn with every complete or trailing line of r after
// removing escape sequences. A carriage return inside a line keeps only the
// text after it, the way a progress indicator overwrites itself.
func readOutputLines(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			line := strings.TrimRight(raw, "\r\n")
			if i := strings.LastIndexByte(line, '\r'); i >= 0 {
				line = line[i+1:]
			}
			line = text.NewElement(text.Sanitize(ansi.Strip(line))).String()
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err != nil {
			if pty.Closed(err) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		}
	}
}
