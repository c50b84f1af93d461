package ast

import "github.com/pseudomuto/sqlast/pkg/compare"

// EqualStatements reports whether two statements are structurally equal.
func EqualStatements(a, b Statement) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *SelectStatement:
		y, ok := b.(*SelectStatement)
		return ok && x.Equal(y)
	case *InsertStatement:
		y, ok := b.(*InsertStatement)
		return ok && x.Equal(y)
	case *UpdateStatement:
		y, ok := b.(*UpdateStatement)
		return ok && x.Equal(y)
	case *DeleteStatement:
		y, ok := b.(*DeleteStatement)
		return ok && x.Equal(y)
	case *DropStatement:
		y, ok := b.(*DropStatement)
		return ok && x.Equal(y)
	}

	return false
}

// EqualExpressions reports whether two expressions are structurally equal. Two nil
// expressions are equal.
func EqualExpressions(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Column:
		y, ok := b.(*Column)
		return ok && compare.Pointers(x, y)
	case *Wildcard:
		_, ok := b.(*Wildcard)
		return ok
	case *QualifiedWildcard:
		y, ok := b.(*QualifiedWildcard)
		return ok && compare.Pointers(x, y)
	case *Alias:
		y, ok := b.(*Alias)
		return ok && x.Name == y.Name && EqualExpressions(x.Expr, y.Expr)
	case *UnaryExpr:
		y, ok := b.(*UnaryExpr)
		return ok && x.Op == y.Op && EqualExpressions(x.Expr, y.Expr)
	case *BinaryExpr:
		y, ok := b.(*BinaryExpr)
		return ok && x.Op == y.Op && EqualExpressions(x.Left, y.Left) &&
			EqualExpressions(x.Right, y.Right)
	case *InExpr:
		y, ok := b.(*InExpr)
		return ok && x.Not == y.Not && EqualExpressions(x.Expr, y.Expr) &&
			compare.Slices(x.List, y.List, EqualExpressions)
	case *FunctionExpr:
		y, ok := b.(*FunctionExpr)
		return ok && x.Func == y.Func && compare.Slices(x.Args, y.Args, EqualExpressions)
	case Literal:
		y, ok := b.(Literal)
		return ok && EqualLiterals(x, y)
	}

	return false
}

// EqualLiterals reports whether two literals have the same variant and value.
func EqualLiterals(a, b Literal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *NullLiteral:
		_, ok := b.(*NullLiteral)
		return ok
	case *StringLiteral:
		y, ok := b.(*StringLiteral)
		return ok && compare.Pointers(x, y)
	case *IntegerLiteral:
		y, ok := b.(*IntegerLiteral)
		return ok && compare.Pointers(x, y)
	case *FloatLiteral:
		y, ok := b.(*FloatLiteral)
		return ok && compare.Pointers(x, y)
	case *DateLiteral:
		y, ok := b.(*DateLiteral)
		return ok && compare.Pointers(x, y)
	}

	return false
}

// EqualTableReferences reports whether two table references are structurally equal.
func EqualTableReferences(a, b TableReference) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *BaseRelation:
		y, ok := b.(*BaseRelation)
		return ok && compare.Pointers(x, y)
	case *SubQuery:
		y, ok := b.(*SubQuery)
		return ok && x.Alias == y.Alias && x.Select.Equal(y.Select)
	case *Join:
		y, ok := b.(*Join)
		return ok && x.Type == y.Type &&
			EqualTableReferences(x.Left, y.Left) &&
			EqualTableReferences(x.Right, y.Right) &&
			EqualJoinConditions(x.Condition, y.Condition)
	}

	return false
}

// EqualJoinConditions reports whether two join conditions are structurally equal.
func EqualJoinConditions(a, b JoinCondition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Using:
		y, ok := b.(*Using)
		return ok && compare.Slices(x.Columns, y.Columns, func(a, b Identifier) bool { return a == b })
	case *On:
		y, ok := b.(*On)
		return ok && compare.Slices(x.Exprs, y.Exprs, EqualExpressions)
	}

	return false
}

// Equal reports whether two select statements are structurally equal. ORDER BY groups
// compare by their effective direction, so an omitted direction equals ASC.
func (s *SelectStatement) Equal(other *SelectStatement) bool {
	if eq, needsMoreChecks := compare.NilCheck(s, other); !needsMoreChecks {
		return eq
	}

	return s.Body.Equal(other.Body) &&
		compare.Slices(s.OrderBy, other.OrderBy, OrderBy.Equal) &&
		compare.Pointers(s.Limit, other.Limit) &&
		compare.Pointers(s.Offset, other.Offset)
}

// Equal reports whether two select clauses are structurally equal. A nil GROUP BY list
// equals an empty one.
func (c SelectClause) Equal(other SelectClause) bool {
	return c.Distinct == other.Distinct &&
		compare.Slices(c.Projection, other.Projection, EqualExpressions) &&
		EqualTableReferences(c.From, other.From) &&
		EqualExpressions(c.Where, other.Where) &&
		compare.Slices(c.GroupBy, other.GroupBy, EqualExpressions) &&
		EqualExpressions(c.Having, other.Having)
}

func (o OrderBy) Equal(other OrderBy) bool {
	return o.Order() == other.Order() && compare.Slices(o.Exprs, other.Exprs, EqualExpressions)
}

func (s *InsertStatement) Equal(other *InsertStatement) bool {
	if eq, needsMoreChecks := compare.NilCheck(s, other); !needsMoreChecks {
		return eq
	}

	return s.Table == other.Table &&
		compare.Slices(s.Columns, other.Columns, func(a, b Column) bool { return a == b }) &&
		compare.Slices(s.Rows, other.Rows, func(a, b []Literal) bool {
			return compare.Slices(a, b, EqualLiterals)
		})
}

// Equal reports whether two updates are structurally equal. Assignments are compared
// without regard to order.
func (s *UpdateStatement) Equal(other *UpdateStatement) bool {
	if eq, needsMoreChecks := compare.NilCheck(s, other); !needsMoreChecks {
		return eq
	}

	return s.Table == other.Table &&
		compare.SlicesUnordered(s.Fields, other.Fields, SetField.Equal) &&
		EqualExpressions(s.Where, other.Where)
}

func (f SetField) Equal(other SetField) bool {
	return f.Column == other.Column && EqualExpressions(f.Value, other.Value)
}

func (s *DeleteStatement) Equal(other *DeleteStatement) bool {
	if eq, needsMoreChecks := compare.NilCheck(s, other); !needsMoreChecks {
		return eq
	}

	return s.Table == other.Table && EqualExpressions(s.Where, other.Where)
}

func (s *DropStatement) Equal(other *DropStatement) bool {
	if eq, needsMoreChecks := compare.NilCheck(s, other); !needsMoreChecks {
		return eq
	}

	return *s == *other
}
