// Package logging builds the slog logger used by columns and tables.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/paveg/colframe/internal/config"
	"github.com/paveg/colframe/internal/version"
	slogseq "github.com/sokkalf/slog-seq"
)

var (
	mu      sync.RWMutex
	current *slog.Logger
)

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// ParseLevel maps a configured level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w according to cfg. When cfg.SeqURL is set the
// records are also shipped to Seq; the returned function flushes and closes that sink.
func New(cfg config.Config, w io.Writer) (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var console slog.Handler
	if cfg.LogFormat == "json" {
		console = slog.NewJSONHandler(w, opts)
	} else {
		console = slog.NewTextHandler(w, opts)
	}

	handler := console
	closeFn := func() {}

	if cfg.SeqURL != "" {
		_, seqHandler := slogseq.NewLogger(
			cfg.SeqURL,
			slogseq.WithBatchSize(50),
			slogseq.WithFlushInterval(500*time.Millisecond),
			slogseq.WithHandlerOptions(opts),
		)
		if seqHandler != nil {
			handler = &multiHandler{handlers: []slog.Handler{console, seqHandler}}
			closeFn = func() {
				seqHandler.Close()
			}
		}
	}

	logger := slog.New(handler).With(
		slog.String("component", "colframe"),
		slog.String("version", version.Info().Version),
	)
	return logger, closeFn
}

// Configure replaces the library logger with one built from cfg, writing to stderr.
func Configure(cfg config.Config) func() {
	logger, closeFn := New(cfg, os.Stderr)
	SetLogger(logger)
	return closeFn
}

// SetLogger replaces the library logger.
func SetLogger(logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = logger
}

// Logger returns the library logger, building it from the global configuration
// on first use.
func Logger() *slog.Logger {
	mu.RLock()
	logger := current
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current, _ = New(config.GetGlobalConfig(), os.Stderr)
	}
	return current
}
