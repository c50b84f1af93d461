// Package cmd provides CLI commands for the sqlast tool.
//
// This package implements the command-line interface for sqlast, which parses SQL
// statements into syntax trees, pretty-prints them, and validates SQL files in bulk.
//
// # Available Commands
//
//   - parse: Parse a single statement and print it as formatted SQL or a YAML tree
//   - fmt: Format SQL files to stdout or in place
//   - check: Parse many SQL files concurrently and report every failure
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a *cli.Command,
// following the urfave/cli/v3 pattern. Commands receive the loaded *config.Config,
// which the root command fills in before any subcommand runs.
//
// # Global Options
//
//   - --config, -c: The sqlast config file (defaults to sqlast.yaml, env SQLAST_CONFIG).
//     A missing file is not an error; defaults are used instead.
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlast parse "select a, count(b) from t group by a"
//	echo "select * from t" | sqlast parse --output yaml -
//	sqlast fmt -w queries/
//	sqlast check queries/ reports/daily.sql
package cmd
