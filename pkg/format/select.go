package format

import (
	"strconv"
	"strings"

	"github.com/pseudomuto/sqlast/pkg/ast"
)

// selectStatement formats a SELECT statement, one clause per line
func (f *Formatter) selectStatement(stmt *ast.SelectStatement) string {
	body := stmt.Body

	selectLine := f.keyword("SELECT")
	if body.Distinct {
		selectLine += " " + f.keyword("DISTINCT")
	}

	columns := make([]string, len(body.Projection))
	for i, e := range body.Projection {
		columns[i] = f.expression(e)
	}
	lines := f.list(selectLine, columns)

	if body.From != nil {
		lines = append(lines, f.fromClause(body.From))
	}

	if body.Where != nil {
		lines = append(lines, f.keyword("WHERE")+" "+f.expression(body.Where))
	}

	if len(body.GroupBy) > 0 {
		lines = append(lines, f.keyword("GROUP BY")+" "+f.expressions(body.GroupBy))
	}

	if body.Having != nil {
		lines = append(lines, f.keyword("HAVING")+" "+f.expression(body.Having))
	}

	if len(stmt.OrderBy) > 0 {
		lines = append(lines, f.orderByClause(stmt.OrderBy))
	}

	if stmt.Limit != nil {
		lines = append(lines, f.keyword("LIMIT")+" "+strconv.FormatUint(*stmt.Limit, 10))
	}

	if stmt.Offset != nil {
		lines = append(lines, f.keyword("OFFSET")+" "+strconv.FormatUint(*stmt.Offset, 10))
	}

	return strings.Join(lines, "\n")
}

// fromClause formats the FROM clause with each join of the left-deep chain on its own
// line
func (f *Formatter) fromClause(ref ast.TableReference) string {
	var joins []*ast.Join
	for {
		j, ok := ref.(*ast.Join)
		if !ok {
			break
		}
		joins = append(joins, j)
		ref = j.Left
	}

	lines := []string{f.keyword("FROM") + " " + f.tablePrimary(ref)}
	for i := len(joins) - 1; i >= 0; i-- {
		lines = append(lines, f.joinClause(joins[i]))
	}

	return strings.Join(lines, "\n")
}

// tableReference formats a table reference used inside parentheses
func (f *Formatter) tableReference(ref ast.TableReference) string {
	j, ok := ref.(*ast.Join)
	if !ok {
		return f.tablePrimary(ref)
	}

	return f.tableReference(j.Left) + " " + f.joinClause(j)
}

func (f *Formatter) tablePrimary(ref ast.TableReference) string {
	switch ref := ref.(type) {
	case *ast.BaseRelation:
		return f.table(ref.Table)
	case *ast.SubQuery:
		result := "(\n" + f.indentLines(f.selectStatement(ref.Select)) + "\n)"
		if ref.Alias != "" {
			result += " " + f.keyword("AS") + " " + f.identifier(ref.Alias)
		}
		return result
	case *ast.Join:
		return "(" + f.tableReference(ref) + ")"
	default:
		return ref.String()
	}
}

// joinClause formats the join keyword, the right side and the condition of j
func (f *Formatter) joinClause(j *ast.Join) string {
	result := f.keyword(j.Type.String()) + " " + f.tablePrimary(j.Right)

	switch cond := j.Condition.(type) {
	case *ast.On:
		result += " " + f.keyword("ON") + " " + f.expressions(cond.Exprs)
	case *ast.Using:
		cols := make([]string, len(cond.Columns))
		for i, c := range cond.Columns {
			cols[i] = f.identifier(c)
		}
		result += " " + f.keyword("USING") + " (" + strings.Join(cols, ", ") + ")"
	}

	return result
}

// orderByClause formats ORDER BY groups. Every group but the last carries an explicit
// direction so the groups read back unchanged.
func (f *Formatter) orderByClause(groups []ast.OrderBy) string {
	items := make([]string, len(groups))
	for i, g := range groups {
		items[i] = f.expressions(g.Exprs)
		if g.Direction != nil || i < len(groups)-1 {
			items[i] += " " + f.keyword(g.Order().String())
		}
	}

	return f.keyword("ORDER BY") + " " + strings.Join(items, ", ")
}
