package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/config"
	"github.com/pseudomuto/sqlast/pkg/consts"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting SQL files. This command provides
// goimports-like functionality for SQL files, allowing users to format individual files
// or entire directory trees recursively. Each file holds a single statement.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Path handling:
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//
// Examples:
//
//	# Format single file to stdout
//	sqlast fmt query.sql
//
//	# Format all SQL files in directory tree in-place
//	sqlast fmt -w queries/
//
// Formatting uses the format section of the configuration. Files with syntax errors
// cause the command to fail.
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			files, err := sqlFiles(cmd.Args().First())
			if err != nil {
				return err
			}

			for _, file := range files {
				if err := formatFile(file, cfg, cmd.Bool("write"), output(cmd)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// formatFile formats a single SQL file and either writes to the writer or back to the
// file. Formatted output always ends with a newline.
func formatFile(path string, cfg *config.Config, writeBack bool, writer io.Writer) error {
	stmt, err := parseFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "failed to parse SQL in file: %s", path)
	}

	var buf strings.Builder
	if err := cfg.GetFormatter().Format(&buf, stmt); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}
	buf.WriteString("\n")

	if writeBack {
		if err := os.WriteFile(path, []byte(buf.String()), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	if _, err := io.WriteString(writer, buf.String()); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
