package format

import (
	"strings"

	"github.com/pseudomuto/sqlast/pkg/ast"
)

func (f *Formatter) insertStatement(stmt *ast.InsertStatement) string {
	head := f.keyword("INSERT INTO") + " " + f.table(stmt.Table)
	if len(stmt.Columns) > 0 {
		cols := make([]string, len(stmt.Columns))
		for i, c := range stmt.Columns {
			cols[i] = f.column(c)
		}
		head += " (" + strings.Join(cols, ", ") + ")"
	}

	rows := make([]string, len(stmt.Rows))
	for i, row := range stmt.Rows {
		values := make([]string, len(row))
		for j, v := range row {
			values[j] = f.expression(v)
		}
		rows[i] = "(" + strings.Join(values, ", ") + ")"
	}

	lines := append([]string{head}, f.list(f.keyword("VALUES"), rows)...)
	return strings.Join(lines, "\n")
}

func (f *Formatter) updateStatement(stmt *ast.UpdateStatement) string {
	fields := make([]string, len(stmt.Fields))
	for i, field := range stmt.Fields {
		fields[i] = f.column(field.Column) + " = " + f.expression(field.Value)
	}

	lines := []string{f.keyword("UPDATE") + " " + f.table(stmt.Table)}
	lines = append(lines, f.list(f.keyword("SET"), fields)...)
	if stmt.Where != nil {
		lines = append(lines, f.keyword("WHERE")+" "+f.expression(stmt.Where))
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) deleteStatement(stmt *ast.DeleteStatement) string {
	result := f.keyword("DELETE FROM") + " " + f.table(stmt.Table)
	if stmt.Where != nil {
		result += "\n" + f.keyword("WHERE") + " " + f.expression(stmt.Where)
	}

	return result
}

func (f *Formatter) dropStatement(stmt *ast.DropStatement) string {
	result := f.keyword("DROP TABLE")
	if stmt.IfExists {
		result += " " + f.keyword("IF EXISTS")
	}

	return result + " " + f.table(stmt.Table)
}
