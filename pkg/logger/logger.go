package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextKey namespaces the values this package reads from a context.
type ContextKey string

// The key strings double as log attribute names.
const (
	RequestIDKey ContextKey = "request_id"
	UsernameKey  ContextKey = "username"
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w.
func New(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init installs a logger writing to w as the slog default. A nil w means
// stdout.
func Init(w io.Writer, cfg *Config) {
	if w == nil {
		w = os.Stdout
	}
	slog.SetDefault(New(w, cfg))
}

// WithContext returns the default logger annotated with the request ID and
// username carried by ctx, when present.
func WithContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	for _, key := range []ContextKey{RequestIDKey, UsernameKey} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			l = l.With(string(key), v)
		}
	}
	return l
}

func logAt(ctx context.Context, level slog.Level, msg string, args []any) {
	WithContext(ctx).Log(ctx, level, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelDebug, msg, args) }
func Info(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelInfo, msg, args) }
func Warn(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelWarn, msg, args) }
func Error(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelError, msg, args) }
