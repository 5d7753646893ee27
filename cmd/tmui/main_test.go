package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/tmui"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	var logs bytes.Buffer
	logger := pslog.NewWithOptions(&logs, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
	root := NewRootCommand(tmui.NewLoader())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	root.SetContext(pslog.ContextWithLogger(context.Background(), logger))
	err := root.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return -1
}

func TestMenuCommandPrintsChoice(t *testing.T) {
	out, err := runCLI(t, "menu", "--headless", "--keys", "down,enter", "alpha", "beta", "gamma")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if out != "1\tbeta\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestMenuCommandCancel(t *testing.T) {
	out, err := runCLI(t, "menu", "--headless", "--keys", "esc", "alpha")
	if exitCode(err) != 1 {
		t.Fatalf("expected exit status 1, got %v", err)
	}
	if out != "" {
		t.Fatalf("output = %q", out)
	}
}

func TestYesNoCommandExitStatus(t *testing.T) {
	if _, err := runCLI(t, "yesno", "--headless", "--keys", "enter", "Proceed?"); err != nil {
		t.Fatalf("yes: %v", err)
	}
	if _, err := runCLI(t, "yesno", "--headless", "--keys", "down,enter", "Proceed?"); exitCode(err) != 1 {
		t.Fatalf("no: %v", err)
	}
}

func TestOKCommandPrintsScreen(t *testing.T) {
	out, err := runCLI(t, "ok", "--headless", "--keys", "enter", "--print-screen", "--title", "CLI Test", "--width", "40", "--height", "10", "Hello")
	if err != nil {
		t.Fatalf("ok: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("printed %d rows: %q", len(lines), out)
	}
	if strings.TrimSpace(lines[0]) != "CLI Test" {
		t.Fatalf("header = %q", lines[0])
	}
}

func TestKeysNeedHeadless(t *testing.T) {
	if _, err := runCLI(t, "ok", "--keys", "enter", "Hello"); err == nil {
		t.Fatalf("expected error for --keys without --headless")
	}
}

func TestDemoEndsWithKeyScript(t *testing.T) {
	if _, err := runCLI(t, "--headless", "--command", "", "--step", "0"); err != nil {
		t.Fatalf("demo: %v", err)
	}
}

func TestRunCommandExitCode(t *testing.T) {
	if _, err := runCLI(t, "run", "--headless", "exit 3"); exitCode(err) != 3 {
		t.Fatalf("expected exit status 3, got %v", err)
	}
	if _, err := runCLI(t, "run", "--headless", "true"); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestDumpCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.dump")
	snap := tmui.Snapshot{Cols: 3, Rows: 1, Cells: []tmui.Cell{
		{Glyph: 'a', FG: tmui.White, BG: tmui.Blue},
		{Glyph: 'b', FG: tmui.White, BG: tmui.Blue},
		{Glyph: ' ', FG: tmui.White, BG: tmui.Blue},
	}}
	if err := tmui.WriteDump(path, snap); err != nil {
		t.Fatalf("write dump: %v", err)
	}

	out, err := runCLI(t, "dump", "--plain", path)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if out != "ab\n" {
		t.Fatalf("plain output = %q", out)
	}

	out, err = runCLI(t, "dump", "--json", path)
	if err != nil {
		t.Fatalf("dump json: %v", err)
	}
	for _, want := range []string{"cols", "lines", "blue"} {
		if !strings.Contains(out, want) {
			t.Fatalf("json output misses %q: %q", want, out)
		}
	}

	if _, err := runCLI(t, "dump", "--json", "--plain", path); err == nil {
		t.Fatalf("expected error for --json with --plain")
	}
}

func TestBootstrapCommand(t *testing.T) {
	out, err := runCLI(t, "bootstrap")
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	path := strings.TrimSpace(out)
	if filepath.Base(path) != tmui.DefaultConfigFileName {
		t.Fatalf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
}
