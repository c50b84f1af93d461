package cmd

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/config"
	"github.com/pseudomuto/sqlast/pkg/parser"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	outputSQL  = "sql"
	outputYAML = "yaml"
)

// parseCmd creates a CLI command that parses a single statement, given as an argument
// or read from stdin when the argument is "-", and prints it.
//
// Output formats:
//   - sql (default): The statement formatted with the configured formatter
//   - yaml: The syntax tree, one mapping per node
//
// Examples:
//
//	sqlast parse "select a from t where a > 1"
//	cat query.sql | sqlast parse -o yaml -
func parseCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a SQL statement and print it",
		ArgsUsage: "<sql | ->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format (sql or yaml)",
				Value:   outputSQL,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one statement argument is required")
			}

			format := cmd.String("output")
			if format != outputSQL && format != outputYAML {
				return errors.Errorf("unknown output format: %s", format)
			}

			sql := cmd.Args().First()
			if sql == "-" {
				data, err := io.ReadAll(input(cmd))
				if err != nil {
					return errors.Wrap(err, "failed to read SQL from stdin")
				}
				sql = string(data)
			}

			stmt, err := parser.ParseString(sql, cfg.ParserOptions()...)
			if err != nil {
				return err
			}

			w := output(cmd)
			if format == outputYAML {
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(statementTree(stmt)); err != nil {
					return errors.Wrap(err, "failed to encode syntax tree")
				}
				return enc.Close()
			}

			if err := cfg.GetFormatter().Format(w, stmt); err != nil {
				return err
			}

			_, err = io.WriteString(w, "\n")
			return err
		},
	}
}
