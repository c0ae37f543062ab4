package main

import (
	"fmt"
	"os"

	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:   "quizdeck",
		Usage:  "turn study notes into a quiz in your terminal",
		Flags:  quizFlags(cfg),
		Action: func(c *cli.Context) error { return runQuiz(c, cfg) },
		Commands: []*cli.Command{
			fakeServiceCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "quizdeck:", err)
		os.Exit(1)
	}
}
