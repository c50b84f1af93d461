package ast_test

import (
	"testing"

	. "github.com/pseudomuto/sqlast/pkg/ast"
	"github.com/pseudomuto/sqlast/pkg/utils"
	"github.com/stretchr/testify/require"
)

func col(name string) *Column { return &Column{Column: Identifier(name)} }

func TestIdentifierSQL(t *testing.T) {
	require.Equal(t, "users", Identifier("users").SQL())
	require.Equal(t, "`order`", Identifier("order").SQL())
	require.Equal(t, "`select`", Identifier("select").SQL())
	require.Equal(t, "`first name`", Identifier("first name").SQL())
}

func TestColumnAndTable(t *testing.T) {
	c := Column{Column: "id", Table: "users"}
	require.True(t, c.IsQualified())
	require.Equal(t, "users.id", c.String())
	require.False(t, Column{Column: "id"}.IsQualified())

	tbl := Table{Name: "events", Database: "analytics"}
	require.True(t, tbl.IsQualified())
	require.Equal(t, "analytics.events", tbl.String())
	require.Equal(t, "`group`", Table{Name: "group"}.String())
}

func TestExpressionString(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expression
		expected string
	}{
		{name: "wildcard", expr: &Wildcard{}, expected: "*"},
		{name: "qualified wildcard", expr: &QualifiedWildcard{Table: "t"}, expected: "t.*"},
		{name: "alias", expr: &Alias{Expr: col("a"), Name: "x"}, expected: "a AS x"},
		{
			name:     "alias of binary",
			expr:     &Alias{Expr: &BinaryExpr{Left: col("a"), Op: Add, Right: col("b")}, Name: "total"},
			expected: "(a + b) AS total",
		},
		{name: "negation", expr: &UnaryExpr{Op: Negate, Expr: &IntegerLiteral{Value: 1}}, expected: "-1"},
		{
			name:     "double negation",
			expr:     &UnaryExpr{Op: Negate, Expr: &UnaryExpr{Op: Negate, Expr: col("a")}},
			expected: "-(-a)",
		},
		{name: "logical not", expr: &UnaryExpr{Op: LogicalNot, Expr: col("ok")}, expected: "!ok"},
		{
			name:     "binary",
			expr:     &BinaryExpr{Left: col("a"), Op: Equals, Right: &StringLiteral{Value: "it's"}},
			expected: `a = 'it\'s'`,
		},
		{
			name: "nested binary",
			expr: &BinaryExpr{
				Left:  &BinaryExpr{Left: col("a"), Op: Multiply, Right: col("b")},
				Op:    Greater,
				Right: &FloatLiteral{Value: 2},
			},
			expected: "(a * b) > 2.0",
		},
		{
			name:     "in",
			expr:     &InExpr{Expr: col("a"), List: []Expression{&IntegerLiteral{Value: 1}, &NullLiteral{}}},
			expected: "a IN (1, NULL)",
		},
		{
			name:     "not in",
			expr:     &InExpr{Expr: col("a"), List: []Expression{&DateLiteral{Value: "2024-01-13"}}, Not: true},
			expected: "a NOT IN (2024-01-13)",
		},
		{
			name:     "function",
			expr:     &FunctionExpr{Func: Count, Args: []Expression{&Wildcard{}}},
			expected: "COUNT(*)",
		},
		{name: "float", expr: &FloatLiteral{Value: 20.24}, expected: "20.24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func TestLookupAggregate(t *testing.T) {
	f, ok := LookupAggregate("count")
	require.True(t, ok)
	require.Equal(t, Count, f)

	f, ok = LookupAggregate("Max")
	require.True(t, ok)
	require.Equal(t, Max, f)

	_, ok = LookupAggregate("median")
	require.False(t, ok)
}

func TestSelectStatementString(t *testing.T) {
	desc := Desc
	stmt := &SelectStatement{
		Body: SelectClause{
			Distinct:   true,
			Projection: []Expression{col("a"), &FunctionExpr{Func: Sum, Args: []Expression{col("b")}}},
			From: &Join{
				Left:      &BaseRelation{Table: Table{Name: "t"}},
				Type:      LeftJoin,
				Right:     &SubQuery{Select: &SelectStatement{Body: SelectClause{Projection: []Expression{&Wildcard{}}, From: &BaseRelation{Table: Table{Name: "u"}}}}, Alias: "sub"},
				Condition: &Using{Columns: []Identifier{"id"}},
			},
			Where:   &BinaryExpr{Left: col("a"), Op: Greater, Right: &IntegerLiteral{Value: 1}},
			GroupBy: []Expression{col("a")},
			Having:  &BinaryExpr{Left: &FunctionExpr{Func: Sum, Args: []Expression{col("b")}}, Op: Less, Right: &IntegerLiteral{Value: 10}},
		},
		OrderBy: []OrderBy{{Exprs: []Expression{col("a")}}, {Exprs: []Expression{col("b")}, Direction: &desc}},
		Limit:   utils.Ptr(uint64(10)),
		Offset:  utils.Ptr(uint64(5)),
	}

	require.Equal(t,
		"SELECT DISTINCT a, SUM(b) FROM t LEFT JOIN (SELECT * FROM u) AS sub USING (id) "+
			"WHERE a > 1 GROUP BY a HAVING SUM(b) < 10 ORDER BY a ASC, b DESC LIMIT 10 OFFSET 5",
		stmt.String(),
	)
}

func TestJoinString(t *testing.T) {
	j := &Join{
		Left: &BaseRelation{Table: Table{Name: "a"}},
		Type: InnerJoin,
		Right: &Join{
			Left:  &BaseRelation{Table: Table{Name: "b"}},
			Type:  CrossJoin,
			Right: &BaseRelation{Table: Table{Name: "c"}},
		},
		Condition: &On{Exprs: []Expression{
			&BinaryExpr{Left: col("x"), Op: Equals, Right: col("y")},
			&BinaryExpr{Left: col("z"), Op: Greater, Right: &IntegerLiteral{Value: 0}},
		}},
	}

	require.Equal(t, "a INNER JOIN (b CROSS JOIN c) ON x = y, z > 0", j.String())
}

func TestOrderByDefaultsToAsc(t *testing.T) {
	desc := Desc
	require.Equal(t, Asc, OrderBy{}.Order())
	require.Equal(t, Desc, OrderBy{Direction: &desc}.Order())
}

func TestOtherStatementsString(t *testing.T) {
	tests := []struct {
		name     string
		stmt     Statement
		expected string
	}{
		{
			name: "insert",
			stmt: &InsertStatement{
				Table:   Table{Name: "t"},
				Columns: []Column{{Column: "a"}, {Column: "b"}},
				Rows: [][]Literal{
					{&IntegerLiteral{Value: 1}, &StringLiteral{Value: "x"}},
					{&NullLiteral{}, &DateLiteral{Value: "2024-01-13"}},
				},
			},
			expected: "INSERT INTO t (a, b) VALUES (1, 'x'), (NULL, 2024-01-13)",
		},
		{
			name: "update",
			stmt: &UpdateStatement{
				Table:  Table{Name: "t", Database: "db"},
				Fields: []SetField{{Column: Column{Column: "a"}, Value: &IntegerLiteral{Value: 1}}},
				Where:  &BinaryExpr{Left: col("id"), Op: Equals, Right: &IntegerLiteral{Value: 2}},
			},
			expected: "UPDATE db.t SET a = 1 WHERE id = 2",
		},
		{
			name:     "delete",
			stmt:     &DeleteStatement{Table: Table{Name: "t"}},
			expected: "DELETE FROM t",
		},
		{
			name:     "drop if exists",
			stmt:     &DropStatement{Table: Table{Name: "t"}, IfExists: true},
			expected: "DROP TABLE IF EXISTS t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}
}
