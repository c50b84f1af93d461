package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlast/pkg/ast"
	"github.com/pseudomuto/sqlast/pkg/keywords"
	"github.com/pseudomuto/sqlast/pkg/utils"
)

// builder converts a grammar tree into an ast tree. The first error encountered is kept
// and every later one is dropped; callers must check err before using the result.
type builder struct {
	tokens []lexer.Token
	err    error
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) statement(s *statement) ast.Statement {
	switch {
	case s.Select != nil:
		return b.selectStatement(s.Select)
	case s.Insert != nil:
		return b.insertStatement(s.Insert)
	case s.Update != nil:
		return b.updateStatement(s.Update)
	case s.Delete != nil:
		return b.deleteStatement(s.Delete)
	default:
		return b.dropStatement(s.Drop)
	}
}

func (b *builder) selectStatement(s *selectStatement) *ast.SelectStatement {
	out := &ast.SelectStatement{
		Body: ast.SelectClause{
			Distinct:   s.Distinct,
			Projection: b.expressions(s.Projection),
			Where:      b.optionalExpression(s.Where),
			GroupBy:    b.expressions(s.GroupBy),
			Having:     b.optionalExpression(s.Having),
		},
	}

	if s.From != nil {
		out.Body.From = b.tableRef(s.From)
	}

	for _, o := range s.OrderBy {
		group := ast.OrderBy{Exprs: b.expressions(o.Exprs)}
		switch strings.ToUpper(o.Direction) {
		case "ASC":
			group.Direction = utils.Ptr(ast.Asc)
		case "DESC":
			group.Direction = utils.Ptr(ast.Desc)
		}
		out.OrderBy = append(out.OrderBy, group)
	}

	if s.Limit != nil {
		v, err := parseCount("LIMIT", s.Limit)
		b.fail(err)
		out.Limit = &v
	}

	if s.Offset != nil {
		v, err := parseCount("OFFSET", s.Offset)
		b.fail(err)
		out.Offset = &v
	}

	return out
}

func (b *builder) tableRef(t *tableRef) ast.TableReference {
	left := b.tablePrimary(t.Primary)

	for _, j := range t.Joins {
		joined := &ast.Join{
			Left:  left,
			Type:  joinType(j.Kind),
			Right: b.tablePrimary(j.Right),
		}

		switch {
		case len(j.Using) > 0:
			using := &ast.Using{Columns: make([]ast.Identifier, 0, len(j.Using))}
			for _, id := range j.Using {
				using.Columns = append(using.Columns, b.identifier(id))
			}
			joined.Condition = using
		case len(j.On) > 0:
			joined.Condition = &ast.On{Exprs: b.expressions(j.On)}
		case joined.Type != ast.CrossJoin:
			b.fail(b.missingCondition(j.EndPos))
		}

		left = joined
	}

	return left
}

func (b *builder) tablePrimary(p *tablePrimary) ast.TableReference {
	switch {
	case p.Subquery != nil:
		sub := &ast.SubQuery{Select: b.selectStatement(p.Subquery.Select)}
		if p.Subquery.Alias != nil {
			sub.Alias = b.identifier(p.Subquery.Alias)
		}
		return sub
	case p.Nested != nil:
		return b.tableRef(p.Nested)
	default:
		return &ast.BaseRelation{Table: b.table(p.Table)}
	}
}

func joinType(kind string) ast.JoinType {
	switch strings.ToUpper(kind) {
	case "LEFT":
		return ast.LeftJoin
	case "RIGHT":
		return ast.RightJoin
	case "FULL":
		return ast.FullOuterJoin
	case "CROSS":
		return ast.CrossJoin
	default:
		return ast.InnerJoin
	}
}

// missingCondition reports the first significant token at or after pos, which is where
// ON or USING was expected.
func (b *builder) missingCondition(pos lexer.Position) error {
	for _, t := range b.tokens {
		if t.Pos.Offset < pos.Offset {
			continue
		}

		if t.EOF() {
			return newError(UnexpectedEndOfInput, t.Pos, `unexpected end of input (expected "ON" or "USING")`)
		}

		return newError(UnexpectedToken, t.Pos, `unexpected token %q (expected "ON" or "USING")`, t.Value)
	}

	return newError(UnexpectedEndOfInput, pos, `unexpected end of input (expected "ON" or "USING")`)
}

func (b *builder) expressions(in []*expression) []ast.Expression {
	out := make([]ast.Expression, 0, len(in))
	for _, e := range in {
		out = append(out, b.expression(e))
	}

	return out
}

func (b *builder) optionalExpression(e *expression) ast.Expression {
	if e == nil {
		return nil
	}

	return b.expression(e)
}

func (b *builder) expression(e *expression) ast.Expression {
	out := b.operand(e.Operand)

	switch {
	case e.In != nil:
		out = &ast.InExpr{Expr: out, List: b.expressions(e.In.List), Not: e.In.Not}
	case e.Binary != nil:
		out = &ast.BinaryExpr{Left: out, Op: binaryOp(e.Binary.Op), Right: b.operand(e.Binary.Right)}
	}

	if e.Alias != nil {
		out = &ast.Alias{Expr: out, Name: b.identifier(e.Alias)}
	}

	return out
}

func (b *builder) operand(o *operand) ast.Expression {
	switch {
	case o.Function != nil:
		fn, _ := ast.LookupAggregate(o.Function.Name)
		return &ast.FunctionExpr{Func: fn, Args: b.expressions(o.Function.Args)}
	case o.Unary != nil:
		op := ast.Negate
		if o.Unary.Op == "!" {
			op = ast.LogicalNot
		}
		return &ast.UnaryExpr{Op: op, Expr: b.operand(o.Unary.Operand)}
	case o.Paren != nil:
		return b.expression(o.Paren)
	case o.Literal != nil:
		return b.literal(o.Literal)
	default:
		return b.columnRef(o.Column)
	}
}

func binaryOp(op string) ast.BinaryOp {
	switch op {
	case "+":
		return ast.Add
	case "*":
		return ast.Multiply
	case ">":
		return ast.Greater
	case "<":
		return ast.Less
	default:
		return ast.Equals
	}
}

func (b *builder) literal(l *literal) ast.Literal {
	switch {
	case l.Null:
		return &ast.NullLiteral{}
	case l.Date != nil:
		return &ast.DateLiteral{Value: *l.Date}
	case l.Number != nil:
		lit, err := parseNumber(*l.Number, l.Pos)
		if err != nil {
			b.fail(err)
			return &ast.NullLiteral{}
		}
		return lit
	default:
		return &ast.StringLiteral{Value: unquoteString(*l.String)}
	}
}

func (b *builder) columnRef(c *columnRef) ast.Expression {
	switch {
	case c.Wildcard:
		return &ast.Wildcard{}
	case c.Star:
		return &ast.QualifiedWildcard{Table: b.identifier(c.First)}
	default:
		col := b.column(&columnName{First: c.First, Second: c.Second})
		return &col
	}
}

func (b *builder) column(c *columnName) ast.Column {
	if c.Second != nil {
		return ast.Column{Table: b.identifier(c.First), Column: b.identifier(c.Second)}
	}

	return ast.Column{Column: b.identifier(c.First)}
}

func (b *builder) table(t *tableName) ast.Table {
	if t.Second != nil {
		return ast.Table{Database: b.identifier(t.First), Name: b.identifier(t.Second)}
	}

	return ast.Table{Name: b.identifier(t.First)}
}

// identifier unquotes a backticked name and rejects reserved words written bare.
func (b *builder) identifier(id *ident) ast.Identifier {
	if utils.IsBackticked(id.Name) {
		name := utils.StripBackticks(id.Name)
		if name == "" {
			b.fail(newError(UnexpectedToken, id.Pos, "empty quoted identifier"))
		}
		return ast.Identifier(name)
	}

	if keywords.IsReserved(id.Name) {
		b.fail(reservedWordError(id.Pos, id.Name))
	}

	return ast.Identifier(id.Name)
}

func (b *builder) insertStatement(s *insertStatement) *ast.InsertStatement {
	out := &ast.InsertStatement{Table: b.table(s.Table)}

	for _, c := range s.Columns {
		out.Columns = append(out.Columns, b.column(c))
	}

	want := len(out.Columns)
	for i, r := range s.Rows {
		if want == 0 && i == 0 {
			want = len(r.Values)
		}

		if len(r.Values) != want {
			b.fail(newError(ColumnCountMismatch, r.Pos, "row %d has %d values, expected %d", i+1, len(r.Values), want))
		}

		values := make([]ast.Literal, 0, len(r.Values))
		for _, v := range r.Values {
			values = append(values, b.literal(v))
		}
		out.Rows = append(out.Rows, values)
	}

	return out
}

func (b *builder) updateStatement(s *updateStatement) *ast.UpdateStatement {
	out := &ast.UpdateStatement{
		Table: b.table(s.Table),
		Where: b.optionalExpression(s.Where),
	}

	seen := make(map[ast.Column]bool, len(s.Fields))
	for _, f := range s.Fields {
		col := b.column(f.Column)
		if seen[col] {
			b.fail(newError(DuplicateAssignment, f.Pos, "column %s is assigned more than once", col))
		}
		seen[col] = true

		out.Fields = append(out.Fields, ast.SetField{Column: col, Value: b.expression(f.Value)})
	}

	return out
}

func (b *builder) deleteStatement(s *deleteStatement) *ast.DeleteStatement {
	return &ast.DeleteStatement{
		Table: b.table(s.Table),
		Where: b.optionalExpression(s.Where),
	}
}

func (b *builder) dropStatement(s *dropStatement) *ast.DropStatement {
	return &ast.DropStatement{Table: b.table(s.Table), IfExists: s.IfExists}
}
