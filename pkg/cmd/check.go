package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/config"
	"github.com/pseudomuto/sqlast/pkg/parser"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// checkCmd creates a CLI command that parses every given SQL file and reports each
// syntax error as "file:line:column: message".
//
// Files are parsed concurrently, at most check.concurrency at a time. Failures are
// reported in the order the files were found, and the command fails when any file does
// not parse. Directories are searched recursively for .sql files.
//
// Examples:
//
//	sqlast check queries/
//	sqlast check a.sql b.sql reports/
func checkCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check SQL files for syntax errors",
		ArgsUsage: "<path>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("at least one path argument is required")
			}

			files, err := sqlFiles(cmd.Args().Slice()...)
			if err != nil {
				return err
			}

			return checkFiles(ctx, files, cfg, output(cmd))
		},
	}
}

// checkFiles parses files concurrently and writes one line per parse failure to w.
// Failures to read a file abort the check.
func checkFiles(ctx context.Context, files []string, cfg *config.Config, w io.Writer) error {
	failures := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Check.Concurrency)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			_, err := parseFile(file, cfg)

			var perr *parser.Error
			switch {
			case err == nil:
				return nil
			case errors.As(err, &perr):
				failures[i] = fmt.Sprintf("%s:%s", file, perr.Error())
				return nil
			default:
				return err
			}
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "failed to check SQL files")
	}

	failed := 0
	for _, failure := range failures {
		if failure == "" {
			continue
		}

		failed++
		if _, err := fmt.Fprintln(w, failure); err != nil {
			return errors.Wrap(err, "failed to write check results")
		}
	}

	slog.Info("Checked SQL files", "files", len(files), "failed", failed)

	if failed > 0 {
		return errors.Errorf("%d of %d files failed to parse", failed, len(files))
	}

	return nil
}
