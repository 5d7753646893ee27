package tmui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"pkt.systems/pslog"
)

func testLogger(buf *bytes.Buffer) pslog.Logger {
	return pslog.NewWithOptions(buf, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
}

func memoryConfig(t *testing.T) Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Console.Driver = DriverMemory
	cfg.Console.Title = "SDK Test"
	cfg.Console.Width = 60
	cfg.Console.Height = 20
	return cfg
}

func TestOpenMemorySession(t *testing.T) {
	var logs bytes.Buffer
	s, err := Open(context.Background(), OpenOptions{
		Config: memoryConfig(t),
		Logger: testLogger(&logs),
		Keys:   []Key{KeyDown, KeyEnter},
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if !s.Headless() || s.MirrorURL() != "" {
		t.Fatalf("headless = %v, mirror = %q", s.Headless(), s.MirrorURL())
	}
	if s.Width() != 60 || s.Height() != 20 {
		t.Fatalf("geometry = %dx%d", s.Width(), s.Height())
	}
	if row := s.Display().Row(0); strings.TrimSpace(row) != "SDK Test" {
		t.Fatalf("header = %q", row)
	}
	answer, err := s.YesNo("Question", false, "Continue?")
	if err != nil {
		t.Fatalf("yesno: %v", err)
	}
	if answer != No {
		t.Fatalf("answer = %d, want No", answer)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenRejectsBadTheme(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Theme.Background = "chartreuse"
	var logs bytes.Buffer
	if _, err := Open(context.Background(), OpenOptions{Config: cfg, Logger: testLogger(&logs)}); err == nil {
		t.Fatalf("expected theme error")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Console.Driver = "vga"
	var logs bytes.Buffer
	if _, err := Open(context.Background(), OpenOptions{Config: cfg, Logger: testLogger(&logs)}); err == nil {
		t.Fatalf("expected driver error")
	}
}

func TestSessionMirror(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Mirror.Listen = "127.0.0.1:0"
	cfg.Mirror.BasePath = "/view"
	var logs bytes.Buffer
	s, err := Open(context.Background(), OpenOptions{
		Config: cfg,
		Logger: testLogger(&logs),
		Mirror: true,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	url := s.MirrorURL()
	if !strings.HasPrefix(url, "ws://127.0.0.1:") || !strings.HasSuffix(url, "/view/ws") {
		t.Fatalf("mirror url = %q", url)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	for s.mirror.hub.Count() == 0 {
		select {
		case <-ctx.Done():
			t.Fatalf("viewer never joined")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if err := s.SetFooter("Mirrored footer"); err != nil {
		t.Fatalf("footer: %v", err)
	}
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"SDK Test", "Mirrored footer"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Fatalf("repaint misses %q", want)
		}
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, _, err := conn.Read(ctx); err == nil {
		t.Fatalf("viewer still connected after close")
	}
}
