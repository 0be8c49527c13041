// Package logging configures the demo command's structured logger and
// adapts it to chi's request-logging middleware.
package logging

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Conf is the demo command's own logging configuration, validated with
// struct tags by the command's Config, independently of the dynamic
// property schema this repository's core library validates for callers.
type Conf struct {
	Format string `json:"format" validate:"omitempty,oneof=json text"`
	Level  string `json:"level" validate:"omitempty,oneof=debug info warn error"`
}

// GetLogLevel maps the configured level name to a slog.Level, defaulting
// to Info for an empty or unrecognized value.
func (c Conf) GetLogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
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

// NewLogger configures a *slog.Logger based on cfg's format and level.
func NewLogger(cfg Conf) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.GetLogLevel()}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// SlogFormatter adapts a *slog.Logger to chi's middleware.LogFormatter.
type SlogFormatter struct {
	Logger *slog.Logger
}

// NewLogEntry creates a new log entry for an HTTP request.
func (sf *SlogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &SlogLogEntry{Logger: sf.Logger, req: r}
}

// SlogLogEntry is a chi middleware.LogEntry backed by slog.
type SlogLogEntry struct {
	Logger *slog.Logger
	req    *http.Request
}

// Write logs the completed request's outcome.
func (l *SlogLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	l.Logger.Info("HTTP Request",
		"method", l.req.Method, "uri", l.req.RequestURI, "status", status,
		"bytes", bytes, "elapsed", elapsed.String(), "remote", l.req.RemoteAddr)
}

// Panic logs a request handler panic.
func (l *SlogLogEntry) Panic(v interface{}, stack []byte) {
	l.Logger.Error("HTTP Request Panic",
		"method", l.req.Method, "uri", l.req.RequestURI, "panic", v, "stack", string(stack))
}
