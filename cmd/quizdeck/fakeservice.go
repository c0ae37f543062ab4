package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/quizdeck/internal/aiquiz/fakeservice"
	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func fakeServiceCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "fake-service",
		Usage: "serve fixture questions on the quiz service API for local runs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":5000",
				EnvVars: []string{"FAKE_SERVICE_ADDR"},
			},
			&cli.PathFlag{
				Name:  "fixtures",
				Usage: "YAML question bank replacing the built-in questions",
			},
			&cli.BoolFlag{
				Name:  "ai-available",
				Usage: "report an AI backend in /api/test",
			},
			&cli.IntFlag{
				Name:  "max-requests",
				Usage: "generate requests allowed per window before answering 429, 0 for unlimited",
				Value: 10,
			},
			&cli.DurationFlag{
				Name:  "window",
				Value: time.Minute,
			},
		},
		Action: func(c *cli.Context) error {
			cfg.LogLevel = c.String("log-level")
			cfg.LogFile = ""
			if _, err := config.InitLogger(cfg); err != nil {
				return err
			}
			config.Logger.SetOutput(os.Stdout)

			opts := fakeservice.Options{
				AIAvailable: c.Bool("ai-available"),
				MaxRequests: c.Int("max-requests"),
				Window:      c.Duration("window"),
			}
			if path := c.Path("fixtures"); path != "" {
				fixtures, err := loadFixtures(path)
				if err != nil {
					return err
				}
				opts.Fixtures = fixtures
			}

			srv := &http.Server{
				Addr:              c.String("addr"),
				Handler:           fakeservice.Routes(fakeservice.NewHandler(opts)),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return serve(c.Context, srv)
		},
	}
}

func loadFixtures(path string) (*fakeservice.Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return fakeservice.LoadFixtures(f)
}

// serve runs srv until ctx is cancelled or the process is interrupted.
func serve(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		config.Logger.Infof("[FAKE-SERVICE] Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		config.Logger.Info("[FAKE-SERVICE] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
