package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/saulo-duarte/quizdeck/internal/container"
	"github.com/saulo-duarte/quizdeck/internal/tui"
	"github.com/urfave/cli/v2"
)

func quizFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Usage:   "base URL of the quiz service",
			Value:   cfg.ServiceURL,
			EnvVars: []string{"QUIZ_SERVICE_URL"},
		},
		&cli.PathFlag{
			Name:    "notes",
			Usage:   "file whose contents are preloaded into the notes editor",
			EnvVars: []string{"QUIZ_NOTES_FILE"},
		},
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "quiz type: mcq or flashcard",
			Value:   cfg.QuizType,
			EnvVars: []string{"QUIZ_TYPE"},
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of questions to request (1-10)",
			Value:   cfg.Questions,
			EnvVars: []string{"QUIZ_QUESTIONS"},
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "HTTP timeout for quiz service calls, 0 for none",
			Value:   cfg.Timeout,
			EnvVars: []string{"QUIZ_TIMEOUT"},
		},
		&cli.IntFlag{
			Name:    "history-size",
			Usage:   "number of finished quizzes kept in the session history",
			Value:   cfg.HistorySize,
			EnvVars: []string{"QUIZ_HISTORY_SIZE"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   cfg.LogLevel,
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "trace",
			Usage:   "write OpenTelemetry spans for quiz service calls to the log",
			Value:   cfg.Tracing,
			EnvVars: []string{"OTEL_ENABLED"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "file receiving JSON logs, empty to discard",
			Value:   cfg.LogFile,
			EnvVars: []string{"LOG_FILE"},
		},
	}
}

// applyFlags copies flag values over the environment configuration.
func applyFlags(c *cli.Context, cfg *config.Config) {
	cfg.ServiceURL = strings.TrimRight(c.String("url"), "/")
	cfg.QuizType = c.String("kind")
	cfg.Questions = c.Int("count")
	cfg.Timeout = c.Duration("timeout")
	cfg.HistorySize = c.Int("history-size")
	cfg.LogLevel = c.String("log-level")
	cfg.LogFile = c.String("log-file")
	cfg.Tracing = c.Bool("trace")
}

func runQuiz(c *cli.Context, cfg *config.Config) error {
	applyFlags(c, cfg)

	closer, err := config.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()

	shutdown, err := config.InitTracing(c.Context, cfg, config.Logger.Out)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			config.Logger.WithError(err).Warn("Failed to flush traces")
		}
	}()

	var notes string
	if path := c.Path("notes"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read notes: %w", err)
		}
		notes = string(b)
	}

	cont := container.New(cfg)
	config.Logger.Infof("[QUIZDECK] Starting against %s", cfg.ServiceURL)

	model := tui.New(c.Context, cont.Controller, notes, cont.Kind)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(c.Context)).Run(); err != nil {
		config.Logger.WithError(err).Error("Terminal UI exited with error")
		return err
	}

	stats := cont.Controller.Snapshot().Stats
	config.Logger.WithField("completed", stats.QuizzesCompleted).Info("[QUIZDECK] Exiting")
	return nil
}
