package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pseudomuto/sqlast/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cmd.New(&cmd.Version{
		Version:   version,
		Commit:    commit,
		Timestamp: date,
	})

	if err := app.Run(ctx, os.Args); err != nil {
		slog.Error("Error running command", "err", err)
		return 1
	}

	return 0
}
