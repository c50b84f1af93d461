package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/ast"
	"github.com/pseudomuto/sqlast/pkg/config"
	"github.com/pseudomuto/sqlast/pkg/consts"
	"github.com/pseudomuto/sqlast/pkg/parser"
)

// sqlFiles expands paths into a list of SQL files. Files are kept as given; directories
// are walked recursively for files with the .sql extension, in lexicographical order.
func sqlFiles(paths ...string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		found := 0
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.SQLExt) {
				files = append(files, p)
				found++
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
		}

		if found == 0 {
			return nil, errors.Errorf("no SQL files found in directory: %s", path)
		}
	}

	return files, nil
}

// parseFile reads and parses the single statement held in path. Parse failures are
// returned unwrapped so callers can inspect the *parser.Error.
func parseFile(path string, cfg *config.Config) (ast.Statement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	return parser.ParseString(string(content), cfg.ParserOptions()...)
}
