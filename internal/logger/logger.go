// Package logger builds the application's slog logger. Records go to a
// zerolog JSON file (the terminal belongs to the UI) and, from warn up, to a
// relay the UI uses for its status bar.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"github.com/jask/storygram/internal/config"
)

// Relay forwards log records to whoever is attached. It drops records until
// something attaches.
type Relay struct {
	mu sync.RWMutex
	fn func(level slog.Level, msg string)
}

func NewRelay() *Relay { return &Relay{} }

func (r *Relay) Attach(fn func(level slog.Level, msg string)) {
	r.mu.Lock()
	r.fn = fn
	r.mu.Unlock()
}

func (r *Relay) emit(level slog.Level, msg string) {
	r.mu.RLock()
	fn := r.fn
	r.mu.RUnlock()
	if fn != nil {
		fn(level, msg)
	}
}

type relayHandler struct {
	relay *Relay
	level slog.Leveler
}

func (h relayHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h relayHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "error" || a.Key == "err" {
			msg += ": " + a.Value.String()
			return false
		}
		return true
	})
	h.relay.emit(r.Level, msg)
	return nil
}

func (h relayHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h relayHandler) WithGroup(string) slog.Handler      { return h }

// ParseLevel accepts debug, info, warn and error. Unknown values are errors.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// New opens the log file and returns the logger plus the file to close on
// shutdown. An empty path discards file output.
func New(cfg config.LogConfig, relay *Relay) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.WriteCloser = nopCloser{io.Discard}
	if path := strings.TrimSpace(cfg.Path); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	zl := zerolog.New(out).With().Timestamp().Logger()
	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}
	if relay != nil {
		handlers = append(handlers, relayHandler{relay: relay, level: slog.LevelWarn})
	}
	return slog.New(slogmulti.Fanout(handlers...)), out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
