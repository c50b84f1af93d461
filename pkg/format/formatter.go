package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/ast"
	"github.com/pseudomuto/sqlast/pkg/consts"
	"github.com/pseudomuto/sqlast/pkg/utils"
)

// FormatterOptions controls formatting behavior
type FormatterOptions struct {
	// IndentSize specifies the number of spaces for each indent level
	IndentSize int
	// UppercaseKeywords whether to uppercase SQL keywords
	UppercaseKeywords bool
	// BacktickIdentifiers quotes every identifier, not only those that require it
	BacktickIdentifiers bool
}

// Defaults are the standard formatting options.
var Defaults = FormatterOptions{
	IndentSize:        consts.DefaultIndentSize,
	UppercaseKeywords: true,
}

// Formatter handles SQL statement formatting with configurable options
type Formatter struct {
	options FormatterOptions
}

// New creates a new Formatter with the specified options. An IndentSize of zero or less
// selects the default.
func New(options FormatterOptions) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = consts.DefaultIndentSize
	}

	return &Formatter{options: options}
}

// Format writes stmts to w using the given options.
func Format(w io.Writer, options FormatterOptions, stmts ...ast.Statement) error {
	return New(options).Format(w, stmts...)
}

// Format writes each statement followed by a semicolon. Statements are separated by a
// blank line and nil statements are skipped. Nothing is written after the final
// semicolon.
func (f *Formatter) Format(w io.Writer, stmts ...ast.Statement) error {
	written := 0
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}

		sql, err := f.statement(stmt)
		if err != nil {
			return err
		}

		if written > 0 {
			sql = "\n\n" + sql
		}

		if _, err := io.WriteString(w, sql+";"); err != nil {
			return errors.Wrap(err, "failed to write formatted SQL")
		}
		written++
	}

	return nil
}

func (f *Formatter) statement(stmt ast.Statement) (string, error) {
	switch stmt := stmt.(type) {
	case *ast.SelectStatement:
		return f.selectStatement(stmt), nil
	case *ast.InsertStatement:
		return f.insertStatement(stmt), nil
	case *ast.UpdateStatement:
		return f.updateStatement(stmt), nil
	case *ast.DeleteStatement:
		return f.deleteStatement(stmt), nil
	case *ast.DropStatement:
		return f.dropStatement(stmt), nil
	default:
		return "", errors.Errorf("unsupported statement type %T", stmt)
	}
}

// keyword formats a keyword according to the formatter options
func (f *Formatter) keyword(kw string) string {
	if f.options.UppercaseKeywords {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

// indent returns the specified number of indent levels as spaces
func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.options.IndentSize)
}

// indentLines prefixes every non-empty line of s with one indent level.
func (f *Formatter) indentLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = f.indent(1) + line
		}
	}

	return strings.Join(lines, "\n")
}

// identifier formats a single identifier, quoting it when required or configured
func (f *Formatter) identifier(id ast.Identifier) string {
	if f.options.BacktickIdentifiers {
		return utils.Backtick(string(id))
	}
	return id.SQL()
}

func (f *Formatter) column(c ast.Column) string {
	if c.IsQualified() {
		return f.identifier(c.Table) + "." + f.identifier(c.Column)
	}
	return f.identifier(c.Column)
}

func (f *Formatter) table(t ast.Table) string {
	if t.IsQualified() {
		return f.identifier(t.Database) + "." + f.identifier(t.Name)
	}
	return f.identifier(t.Name)
}

// list renders a clause head followed by its items: on the same line when there is only
// one, otherwise one indented item per line.
func (f *Formatter) list(head string, items []string) []string {
	if len(items) == 1 {
		return []string{head + " " + items[0]}
	}

	lines := make([]string, 0, len(items)+1)
	lines = append(lines, head)
	for i, item := range items {
		if i < len(items)-1 {
			item += ","
		}
		lines = append(lines, f.indentLines(item))
	}

	return lines
}
