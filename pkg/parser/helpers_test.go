package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pseudomuto/sqlast/pkg/ast"
	"github.com/stretchr/testify/require"
)

// requireTree fails the test with a readable diff when got is not the expected tree.
// Nil and empty slices are treated as equal; GROUP BY normalization is tested separately.
func requireTree(t *testing.T, expected, got any) {
	t.Helper()

	if diff := cmp.Diff(expected, got, cmpopts.EquateEmpty()); diff != "" {
		require.Fail(t, "unexpected tree (-want +got)", diff)
	}
}

func col(name string) *ast.Column { return &ast.Column{Column: ast.Identifier(name)} }

func qcol(table, name string) *ast.Column {
	return &ast.Column{Table: ast.Identifier(table), Column: ast.Identifier(name)}
}

func rel(name string) *ast.BaseRelation {
	return &ast.BaseRelation{Table: ast.Table{Name: ast.Identifier(name)}}
}

func integer(v uint64) *ast.IntegerLiteral { return &ast.IntegerLiteral{Value: v} }

func binary(left ast.Expression, op ast.BinaryOp, right ast.Expression) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: left, Op: op, Right: right}
}

func exprs(e ...ast.Expression) []ast.Expression { return e }

func selectFrom(from ast.TableReference, projection ...ast.Expression) *ast.SelectStatement {
	return &ast.SelectStatement{
		Body: ast.SelectClause{Projection: projection, From: from, GroupBy: []ast.Expression{}},
	}
}
