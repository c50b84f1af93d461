package ast

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/sqlast/pkg/utils"
)

type (
	// Node is implemented by every syntax tree node.
	Node interface {
		fmt.Stringer
		node()
	}

	// Statement is a complete top-level SQL statement.
	Statement interface {
		Node
		statementNode()
	}

	// Expression is any value-producing node.
	Expression interface {
		Node
		expressionNode()
	}

	// TableReference is an operand of a FROM clause.
	TableReference interface {
		Node
		tableReferenceNode()
	}

	// JoinCondition qualifies how the two sides of a Join are matched.
	JoinCondition interface {
		Node
		joinConditionNode()
	}

	// Identifier is a non-empty name. The empty Identifier is used by Column, Table and
	// SubQuery to mean "not specified".
	Identifier string

	// Column is a reference to a column, optionally qualified by a table name. An
	// unqualified column is left for a later binder to resolve.
	Column struct {
		Column Identifier
		Table  Identifier
	}

	// Table names a relation, optionally qualified by a database name.
	Table struct {
		Name     Identifier
		Database Identifier
	}
)

// String returns the raw identifier text.
func (i Identifier) String() string { return string(i) }

// SQL returns the identifier as it must be written in SQL, backtick-quoting it when it
// would otherwise not read back as the same identifier.
func (i Identifier) SQL() string { return utils.BacktickIfNeeded(string(i)) }

// IsQualified reports whether the column names its table.
func (c Column) IsQualified() bool { return c.Table != "" }

func (c Column) String() string {
	if c.IsQualified() {
		return c.Table.SQL() + "." + c.Column.SQL()
	}

	return c.Column.SQL()
}

// IsQualified reports whether the table names its database.
func (t Table) IsQualified() bool { return t.Database != "" }

func (t Table) String() string {
	if t.IsQualified() {
		return t.Database.SQL() + "." + t.Name.SQL()
	}

	return t.Name.SQL()
}

func (*Column) node()           {}
func (*Column) expressionNode() {}

func joinNodes[T Node](nodes []T, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}

	return strings.Join(parts, sep)
}
