package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

var keys = []string{
	"QUIZ_SERVICE_URL", "QUIZ_TYPE", "QUIZ_QUESTIONS", "QUIZ_TIMEOUT",
	"QUIZ_HISTORY_SIZE", "LOG_LEVEL", "LOG_FILE", "OTEL_ENABLED",
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, k := range keys {
			t.Setenv(k, "")
		}
		cfg := config.Load()

		assert.Equal(t, config.DefaultServiceURL, cfg.ServiceURL)
		assert.Equal(t, config.DefaultQuizType, cfg.QuizType)
		assert.Equal(t, config.DefaultQuestions, cfg.Questions)
		assert.Zero(t, cfg.Timeout)
		assert.Equal(t, config.DefaultHistorySize, cfg.HistorySize)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, config.DefaultLogFile, cfg.LogFile)
	})

	t.Run("FromEnvironment", func(t *testing.T) {
		t.Setenv("QUIZ_SERVICE_URL", "http://quiz.local:8080/")
		t.Setenv("QUIZ_TYPE", "flashcard")
		t.Setenv("QUIZ_QUESTIONS", "8")
		t.Setenv("QUIZ_TIMEOUT", "30s")
		t.Setenv("QUIZ_HISTORY_SIZE", "10")
		t.Setenv("OTEL_ENABLED", "true")
		cfg := config.Load()

		assert.Equal(t, "http://quiz.local:8080", cfg.ServiceURL)
		assert.Equal(t, "flashcard", cfg.QuizType)
		assert.Equal(t, 8, cfg.Questions)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 10, cfg.HistorySize)
		assert.True(t, cfg.Tracing)
	})

	t.Run("InvalidNumbersFallBack", func(t *testing.T) {
		t.Setenv("QUIZ_QUESTIONS", "many")
		t.Setenv("QUIZ_TIMEOUT", "soon")
		cfg := config.Load()

		assert.Equal(t, config.DefaultQuestions, cfg.Questions)
		assert.Zero(t, cfg.Timeout)
	})
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { config.Logger.SetOutput(io.Discard) })

	path := filepath.Join(t.TempDir(), "quizdeck.log")
	closer, err := config.InitLogger(&config.Config{LogLevel: "debug", LogFile: path})
	require.NoError(t, err)

	ctx := config.WithRequestID(context.Background(), "req-1")
	ctx = config.WithSessionID(ctx, "sess-1")
	config.WithContext(ctx).Info("hello")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "sess-1", line["session_id"])
}

func TestInitLoggerWithoutFileDiscards(t *testing.T) {
	closer, err := config.InitLogger(&config.Config{LogLevel: "nonsense"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, io.Discard, config.Logger.Out)
}

func TestInitTracing(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		var buf bytes.Buffer
		shutdown, err := config.InitTracing(ctx, &config.Config{}, &buf)
		require.NoError(t, err)
		require.NoError(t, shutdown(ctx))
		assert.Zero(t, buf.Len())
	})

	t.Run("ExportsSpans", func(t *testing.T) {
		var buf bytes.Buffer
		shutdown, err := config.InitTracing(ctx, &config.Config{Tracing: true}, &buf)
		require.NoError(t, err)

		_, span := otel.Tracer("config_test").Start(ctx, "generate quiz")
		span.End()
		require.NoError(t, shutdown(ctx))

		assert.Contains(t, buf.String(), "generate quiz")
		assert.Contains(t, buf.String(), "quizdeck")
	})
}
