package ast

import "strings"

type (
	// UnaryOp is a prefix operator.
	UnaryOp int

	// BinaryOp is an infix operator. All binary operators share one precedence level.
	BinaryOp int

	// AggregateFunc names an aggregation function.
	AggregateFunc int
)

const (
	// Negate is the arithmetic negation operator "-".
	Negate UnaryOp = iota + 1
	// LogicalNot is the logical negation operator "!".
	LogicalNot
)

const (
	Add BinaryOp = iota + 1
	Multiply
	Greater
	Less
	Equals
)

const (
	Count AggregateFunc = iota + 1
	Sum
	Avg
	Max
	Min
)

type (
	// Wildcard is the bare "*" column reference.
	Wildcard struct{}

	// QualifiedWildcard is a "table.*" column reference.
	QualifiedWildcard struct {
		Table Identifier
	}

	// Alias names an expression: "<expr> AS <name>".
	Alias struct {
		Expr Expression
		Name Identifier
	}

	// UnaryExpr applies a prefix operator to an expression.
	UnaryExpr struct {
		Op   UnaryOp
		Expr Expression
	}

	// BinaryExpr applies an infix operator to two expressions.
	BinaryExpr struct {
		Left  Expression
		Op    BinaryOp
		Right Expression
	}

	// InExpr is "<expr> IN (<list>)", or "<expr> NOT IN (<list>)" when Not is set.
	InExpr struct {
		Expr Expression
		List []Expression
		Not  bool
	}

	// FunctionExpr is a call to an aggregation function.
	FunctionExpr struct {
		Func AggregateFunc
		Args []Expression
	}
)

func (*Wildcard) node()                   {}
func (*Wildcard) expressionNode()         {}
func (*QualifiedWildcard) node()          {}
func (*QualifiedWildcard) expressionNode() {}
func (*Alias) node()                      {}
func (*Alias) expressionNode()            {}
func (*UnaryExpr) node()                  {}
func (*UnaryExpr) expressionNode()        {}
func (*BinaryExpr) node()                 {}
func (*BinaryExpr) expressionNode()       {}
func (*InExpr) node()                     {}
func (*InExpr) expressionNode()           {}
func (*FunctionExpr) node()               {}
func (*FunctionExpr) expressionNode()     {}

func (op UnaryOp) String() string {
	switch op {
	case Negate:
		return "-"
	case LogicalNot:
		return "!"
	default:
		return "?"
	}
}

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Greater:
		return ">"
	case Less:
		return "<"
	case Equals:
		return "="
	default:
		return "?"
	}
}

func (f AggregateFunc) String() string {
	switch f {
	case Count:
		return "COUNT"
	case Sum:
		return "SUM"
	case Avg:
		return "AVG"
	case Max:
		return "MAX"
	case Min:
		return "MIN"
	default:
		return "?"
	}
}

// LookupAggregate returns the aggregation function with the given name, ignoring case.
func LookupAggregate(name string) (AggregateFunc, bool) {
	for f := Count; f <= Min; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}

	return 0, false
}

func (*Wildcard) String() string { return "*" }

func (w *QualifiedWildcard) String() string { return w.Table.SQL() + ".*" }

func (a *Alias) String() string {
	return operand(a.Expr) + " AS " + a.Name.SQL()
}

func (u *UnaryExpr) String() string {
	if _, nested := u.Expr.(*UnaryExpr); nested {
		// "--" would start a comment
		return u.Op.String() + "(" + u.Expr.String() + ")"
	}

	return u.Op.String() + operand(u.Expr)
}

func (b *BinaryExpr) String() string {
	return operand(b.Left) + " " + b.Op.String() + " " + operand(b.Right)
}

func (in *InExpr) String() string {
	kw := " IN ("
	if in.Not {
		kw = " NOT IN ("
	}

	return operand(in.Expr) + kw + joinNodes(in.List, ", ") + ")"
}

func (f *FunctionExpr) String() string {
	return f.Func.String() + "(" + joinNodes(f.Args, ", ") + ")"
}

// operand renders e so that it reads back as a single operand.
func operand(e Expression) string {
	switch e.(type) {
	case *BinaryExpr, *InExpr, *Alias:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}
