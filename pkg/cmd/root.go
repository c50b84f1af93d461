package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pseudomuto/sqlast/pkg/config"
	"github.com/pseudomuto/sqlast/pkg/consts"
	"github.com/urfave/cli/v3"
)

// Version describes the build, as set by the release tooling.
type Version struct {
	Version   string
	Commit    string
	Timestamp string
}

// New creates the sqlast CLI application.
//
// The application registers the parse, fmt and check commands and a global --config
// flag. Before any subcommand runs, the config file is loaded (when it exists) into
// the configuration shared by all commands.
//
// Example usage:
//
//	app := cmd.New(&cmd.Version{Version: "v1.0.0"})
//	if err := app.Run(ctx, os.Args); err != nil {
//		slog.Error("Error running command", "err", err)
//	}
func New(v *Version) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", v.Timestamp)
	}

	cfg := config.Default()

	return &cli.Command{
		Name:  "sqlast",
		Usage: "A tool for parsing, formatting and checking SQL statements",
		Description: `sqlast parses SQL statements into typed syntax trees. It can print a
statement as formatted SQL or as a YAML tree, format SQL files in place, and
check whole directories of SQL files for syntax errors.`,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlast config file",
				Sources: cli.EnvVars("SQLAST_CONFIG"),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			loaded, err := config.LoadConfigFileIfExists(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			*cfg = *loaded
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(cfg),
			fmtCmd(cfg),
			checkCmd(cfg),
		},
	}
}

func output(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

func input(cmd *cli.Command) io.Reader {
	return cmd.Root().Reader
}
