// Package ast defines the typed syntax tree produced by package parser.
//
// Every variant family of the grammar is modeled as a marker interface with unexported
// tag methods, so only the types in this package can satisfy it:
//
//   - Statement: *SelectStatement, *InsertStatement, *UpdateStatement,
//     *DeleteStatement, *DropStatement
//   - Expression: *Column, *Wildcard, *QualifiedWildcard, *Alias, *UnaryExpr,
//     *BinaryExpr, *InExpr, *FunctionExpr, and every Literal
//   - Literal: *NullLiteral, *StringLiteral, *IntegerLiteral, *FloatLiteral,
//     *DateLiteral
//   - TableReference: *BaseRelation, *SubQuery, *Join
//   - JoinCondition: *Using, *On
//
// Nodes are plain data. A tree owns its children exclusively; the parser never shares a
// node between two parents and never returns a partially built tree. Callers that build
// trees by hand should follow the same rule.
//
// Every node renders itself as canonical single-line SQL through String. Parsing that
// output yields a tree that is Equal to the original:
//
//	stmt, _ := parser.ParseString("select a AS x from t join u on a = b")
//	fmt.Println(stmt)
//	// SELECT a AS x FROM t INNER JOIN u ON a = b
package ast
