// Package logging builds the slog logger used by every roster command.
package logging

import (
	"io"
	"log/slog"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ajitpratap0/roster/internal/config"
)

// New returns a logger configured from cfg and a closer for its sink.
// Output goes to fallback unless cfg.File is set, in which case a rotating
// file is used. The closer must be called before exit.
func New(cfg config.LoggingConfig, fallback io.Writer) (*slog.Logger, io.Closer) {
	var (
		w      = fallback
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		f := &lj.Logger{
			Filename:   cfg.File,
			MaxSize:    valOr(cfg.MaxSizeMB, config.DefaultLogMaxSizeMB),
			MaxBackups: valOr(cfg.MaxBackups, config.DefaultLogMaxBackups),
			MaxAge:     valOr(cfg.MaxAgeDays, config.DefaultLogMaxAgeDays),
			Compress:   cfg.Compress,
		}
		w, closer = f, f
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), closer
	}
	return slog.New(slog.NewTextHandler(w, opts)), closer
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func valOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
