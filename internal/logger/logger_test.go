package logger

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/storygram/internal/config"
)

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("debug"); err != nil || l != slog.LevelDebug {
		t.Fatalf("expected debug, got %v %v", l, err)
	}
	if l, err := ParseLevel(" WARN "); err != nil || l != slog.LevelWarn {
		t.Fatalf("expected warn, got %v %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storygram.log")
	log, closer, err := New(config.LogConfig{Path: path, Level: "info"}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Debug("hidden")
	log.Info("story opened", "story", "1")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, `"message":"story opened"`) || !strings.Contains(out, `"story":"1"`) {
		t.Fatalf("expected JSON record, got %s", out)
	}
}

func TestRelayGetsWarningsOnly(t *testing.T) {
	relay := NewRelay()
	var got []string
	relay.Attach(func(level slog.Level, msg string) {
		got = append(got, level.String()+" "+msg)
	})
	log, closer, err := New(config.LogConfig{Level: "debug"}, relay)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer closer.Close()

	log.Info("quiet")
	log.Warn("catalog fallback")
	log.Error("load failed", "error", errors.New("boom"))

	if len(got) != 2 {
		t.Fatalf("expected two relayed records, got %v", got)
	}
	if got[0] != "WARN catalog fallback" || got[1] != "ERROR load failed: boom" {
		t.Fatalf("unexpected relayed records %v", got)
	}
}

func TestRelayDropsUntilAttached(t *testing.T) {
	relay := NewRelay()
	log, closer, err := New(config.LogConfig{Level: "info"}, relay)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer closer.Close()
	log.Warn("nobody listening")
}
