package format

import (
	"strings"

	"github.com/pseudomuto/sqlast/pkg/ast"
)

// expression formats an expression on a single line
func (f *Formatter) expression(e ast.Expression) string {
	switch e := e.(type) {
	case *ast.Column:
		return f.column(*e)
	case *ast.Wildcard:
		return "*"
	case *ast.QualifiedWildcard:
		return f.identifier(e.Table) + ".*"
	case *ast.Alias:
		return f.operand(e.Expr) + " " + f.keyword("AS") + " " + f.identifier(e.Name)
	case *ast.UnaryExpr:
		if _, nested := e.Expr.(*ast.UnaryExpr); nested {
			return e.Op.String() + "(" + f.expression(e.Expr) + ")"
		}
		return e.Op.String() + f.operand(e.Expr)
	case *ast.BinaryExpr:
		return f.operand(e.Left) + " " + e.Op.String() + " " + f.operand(e.Right)
	case *ast.InExpr:
		kw := f.keyword("IN")
		if e.Not {
			kw = f.keyword("NOT IN")
		}
		return f.operand(e.Expr) + " " + kw + " (" + f.expressions(e.List) + ")"
	case *ast.FunctionExpr:
		return f.keyword(e.Func.String()) + "(" + f.expressions(e.Args) + ")"
	case *ast.NullLiteral:
		return f.keyword("NULL")
	default:
		return e.String()
	}
}

// operand parenthesizes expressions that would otherwise absorb their neighbours
func (f *Formatter) operand(e ast.Expression) string {
	switch e.(type) {
	case *ast.BinaryExpr, *ast.InExpr, *ast.Alias:
		return "(" + f.expression(e) + ")"
	default:
		return f.expression(e)
	}
}

func (f *Formatter) expressions(exprs []ast.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = f.expression(e)
	}

	return strings.Join(parts, ", ")
}
