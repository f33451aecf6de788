// Package logging builds the structured loggers used by the bookscan CLI and
// the solver dispatcher.
//
// It is a thin layer over log/slog: a Level type that the config file and
// command-line flags can name, and a Config that picks the handler.
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true})
//	logger.Info("run finished", "algo", "greedy", "score", 18)
//
// Library code never logs on its own; it receives a *slog.Logger (or nil,
// which callers replace with Discard).
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug adds per-stage and per-generation progress.
	LevelDebug Level = iota
	// LevelInfo reports run start and finish.
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel converts l to the slog equivalent. Unknown levels map to Info.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts the level names case-insensitively, plus "warning".
// The empty string means LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Config selects the handler. The zero value writes Info and above to stderr
// as text.
type Config struct {
	// Level is the minimum level emitted.
	Level Level

	// JSON switches from the text handler to the JSON handler.
	JSON bool

	// Output receives the records. Default: os.Stderr.
	Output io.Writer

	// Service, when set, is attached to every record as "service".
	Service string
}

// New returns a logger configured by cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: cfg.Level.SlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, ho)
	} else {
		h = slog.NewTextHandler(out, ho)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger
}

// Default is New(Config{}).
func Default() *slog.Logger {
	return New(Config{})
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}

	return l
}
