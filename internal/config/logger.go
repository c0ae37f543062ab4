package config

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	sessionIDKey ctxKey = "session_id"
)

var Logger = logrus.New()

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// InitLogger points the shared logger at cfg.LogFile. The terminal belongs to
// the UI, so an empty file name discards logs instead of writing to stdout.
func InitLogger(cfg *Config) (io.Closer, error) {
	Logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if cfg.LogFile == "" {
		Logger.SetOutput(io.Discard)
		return noopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Logger.SetOutput(io.Discard)
		return noopCloser{}, err
	}
	Logger.SetOutput(f)
	return f, nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if id := RequestIDFromContext(ctx); id != "" {
		entry = entry.WithField(string(requestIDKey), id)
	}
	if id, ok := ctx.Value(sessionIDKey).(string); ok && id != "" {
		entry = entry.WithField(string(sessionIDKey), id)
	}
	return entry
}
